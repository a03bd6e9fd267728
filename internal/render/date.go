package render

import (
	"strings"
	"time"
)

// DisplayLayout is the en-US short date form ("Mar 1, 2024").
const DisplayLayout = "Jan 2, 2006"

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01",
	DisplayLayout,
	"January 2, 2006",
}

// FormatDate renders a content date for display.
// Empty input renders empty; input in no known layout is returned unchanged.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DisplayLayout)
		}
	}
	return s
}
