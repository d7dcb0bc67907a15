package format

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"sigs.k8s.io/yaml"

	"github.com/devpopsdotin/kge/internal/k8s"
	"github.com/devpopsdotin/kge/internal/ui"
)

// Output encodings
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Options control how a fetched event list is rendered
type Options struct {
	Output   string    // text, json or yaml
	Absolute bool      // absolute timestamps instead of relative ages
	Now      time.Time // reference instant for relative ages
}

// Events renders events in the requested encoding. Text output is one
// line per event, oldest first; json and yaml marshal the event records.
func Events(events []k8s.Event, opts Options) (string, error) {
	SortByLastSeen(events)

	switch opts.Output {
	case OutputJSON:
		data, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			return "", err
		}
		return highlight(string(data), "json"), nil
	case OutputYAML:
		data, err := yaml.Marshal(events)
		if err != nil {
			return "", err
		}
		return highlight(string(data), "yaml"), nil
	default:
		return strings.Join(Lines(events, opts), "\n"), nil
	}
}

// SortByLastSeen orders events ascending by last-seen timestamp. Events
// without a timestamp sort last. The sort is stable so same-instant
// events keep their API order.
func SortByLastSeen(events []k8s.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i].LastSeen, events[j].LastSeen
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})
}

// Lines renders one display line per event. An empty listing renders a
// single "No events found" line rather than no output.
func Lines(events []k8s.Event, opts Options) []string {
	if len(events) == 0 {
		return []string{ui.StyleEmpty.Render("No events found")}
	}

	lines := make([]string, len(events))
	for i, e := range events {
		lines[i] = line(e, opts)
	}
	return lines
}

func line(e k8s.Event, opts Options) string {
	ts := "<unknown>"
	if e.LastSeen != nil {
		if opts.Absolute {
			ts = e.LastSeen.Format(time.RFC3339)
		} else {
			ts = relativeAge(opts.Now, *e.LastSeen)
		}
	}

	severity := ui.StyleWarning
	if e.IsNormal() {
		severity = ui.StyleNormal
	}

	object := e.Name
	if e.Kind != "" {
		object = e.Kind + "/" + e.Name
	}

	var count string
	if e.Count > 1 {
		count = fmt.Sprintf(" (x%d)", e.Count)
	}

	return fmt.Sprintf("%s %s %s %s: %s%s",
		ui.StyleTimestamp.Render(ts),
		severity.Render(e.Type),
		object,
		ui.StyleReason.Render(e.Reason),
		e.Message,
		count)
}

// relativeAge buckets elapsed time into the coarsest unit that has fully
// elapsed: exactly 3600s renders "1h ago", not "60m ago".
func relativeAge(now, last time.Time) string {
	secs := int64(now.Sub(last) / time.Second)
	if secs < 0 {
		secs = 0
	}
	switch {
	case secs < 60:
		return fmt.Sprintf("%ds ago", secs)
	case secs < 3600:
		return fmt.Sprintf("%dm ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%dh ago", secs/3600)
	default:
		return fmt.Sprintf("%dd ago", secs/86400)
	}
}
