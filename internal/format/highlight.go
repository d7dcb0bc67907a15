package format

import (
	"bytes"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/mattn/go-isatty"
)

// highlight applies syntax highlighting when stdout is a terminal.
// Piped output stays plain so scripts can parse it.
func highlight(content, format string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return content
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, content, format, "terminal256", "dracula"); err != nil {
		return content
	}
	return buf.String()
}
