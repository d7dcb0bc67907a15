package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devpopsdotin/kge/internal/ui"
)

type selectionKind int

const (
	selectQuit selectionKind = iota
	selectAll
	selectNonNormal
	selectIndex
)

// selection is the tagged result of the interactive menu
type selection struct {
	kind  selectionKind
	index int // 1-based, set for selectIndex
}

// parseSelection validates one line of menu input. The menu is 1-based;
// zero, negative, out-of-range and non-integer input are rejected.
func parseSelection(input string, menuSize int) (selection, error) {
	trimmed := strings.TrimSpace(input)

	if strings.EqualFold(trimmed, "q") {
		return selection{kind: selectQuit}, nil
	}
	switch trimmed {
	case "a":
		return selection{kind: selectAll}, nil
	case "e":
		return selection{kind: selectNonNormal}, nil
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return selection{}, fmt.Errorf("please enter a valid number, a, e or q to quit")
	}
	if n < 1 || n > menuSize {
		return selection{}, fmt.Errorf("invalid selection, enter a number between 1 and %d or q to quit", menuSize)
	}
	return selection{kind: selectIndex, index: n}, nil
}

// menuModel drives the selection loop: show the menu, read a line,
// re-prompt on invalid input, quit or dispatch on a valid choice.
type menuModel struct {
	resources []string
	input     textinput.Model
	errMsg    string
	choice    selection
	done      bool
}

func newMenuModel(resources []string) menuModel {
	ti := textinput.New()
	ti.Prompt = "Enter selection: "
	ti.CharLimit = 16
	ti.Focus()

	return menuModel{
		resources: resources,
		input:     ti,
	}
}

func (m menuModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			// Interrupt is a graceful quit
			m.choice = selection{kind: selectQuit}
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			sel, err := parseSelection(m.input.Value(), len(m.resources))
			if err != nil {
				m.errMsg = err.Error()
				m.input.Reset()
				return m, nil
			}
			m.choice = sel
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m menuModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(ui.StyleHeader.Render("Select a pod:") + "\n")
	b.WriteString(fmt.Sprintf("  %s) Abnormal events for all pods\n", ui.StyleKey.Render("e")))
	b.WriteString(fmt.Sprintf("  %s) All pods, all events\n", ui.StyleKey.Render("a")))
	for i, name := range m.resources {
		b.WriteString(fmt.Sprintf("%s) %s\n", ui.StyleKey.Render(fmt.Sprintf("%3d", i+1)), name))
	}
	b.WriteString(fmt.Sprintf("  %s) Quit\n", ui.StyleKey.Render("q")))
	if m.errMsg != "" {
		b.WriteString(ui.StyleErr.Render(m.errMsg) + "\n")
	}
	b.WriteString(m.input.View())
	return b.String()
}

// promptSelection runs the menu until the user picks a resource, one of
// the reserved choices, or quits.
func promptSelection(resources []string) (selection, error) {
	final, err := tea.NewProgram(newMenuModel(resources)).Run()
	if err != nil {
		return selection{}, err
	}
	return final.(menuModel).choice, nil
}
