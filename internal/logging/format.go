package logging

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// FormatEventLine renders an event as a single uncoloured line.
func FormatEventLine(event Event) string {
	ts := event.Time.Format("15:04:05")
	level := strings.ToUpper(event.Level.String())
	fields := ""
	if len(event.Fields) > 0 {
		keys := orderedFieldKeys(event.Fields)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, formatFieldValue(event.Fields[key])))
		}
		fields = " " + strings.Join(parts, " ")
	}
	return ansi.Strip(fmt.Sprintf("%s [%s] %s%s", ts, level, event.Message, fields)) + "\n"
}

func formatFieldValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "<nil>"
	case error:
		return quoteIfSpaced(v.Error())
	case string:
		if v == "" {
			return "<empty>"
		}
		return quoteIfSpaced(v)
	case fmt.Stringer:
		return quoteIfSpaced(v.String())
	default:
		return fmt.Sprintf("%v", value)
	}
}

func quoteIfSpaced(s string) string {
	if strings.ContainsAny(s, " \t\n\"") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// orderedFieldKeys sorts keys, keeping "error" last so it is easy to spot.
func orderedFieldKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	hasErr := false
	for key := range fields {
		if key == "error" {
			hasErr = true
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if hasErr {
		keys = append(keys, "error")
	}
	return keys
}
