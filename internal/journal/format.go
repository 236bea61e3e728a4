package journal

import (
	"fmt"
	"strings"

	"github.com/moodscape/moodscape/internal/moods"
)

// FormatLogbook renders entries as a markdown logbook, most recent day
// first. This is the data feed for the document exporter: pagination
// and final layout stay with the exporter.
func FormatLogbook(entries []EntryWithCategory) string {
	if len(entries) == 0 {
		return "No moods logged yet.\n"
	}

	var b strings.Builder
	b.WriteString("# Moodscape Logbook\n\n")

	for _, e := range entries {
		fmt.Fprintf(&b, "## %s — %s %s (%d/5)\n",
			DayLabel(e.DayKey), e.Symbol, moods.DisplayName(e.Symbol), e.Score)
		if e.CategoryName != nil {
			fmt.Fprintf(&b, "Category: %s\n", *e.CategoryName)
		}
		if e.Note != "" {
			fmt.Fprintf(&b, "%s\n", e.Note)
		}
		b.WriteString("\n")
	}

	return b.String()
}
