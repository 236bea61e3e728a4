package moodtools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/moodscape/moodscape/internal/insights"
	"github.com/moodscape/moodscape/internal/journal"
)

// InsightsTool handles the mood_insights MCP tool.
type InsightsTool struct {
	store *journal.Store
}

// NewInsightsTool creates an InsightsTool.
func NewInsightsTool(store *journal.Store) *InsightsTool {
	return &InsightsTool{store: store}
}

// Definition returns the MCP tool definition for mood_insights.
func (t *InsightsTool) Definition() mcp.Tool {
	return mcp.NewTool("mood_insights",
		mcp.WithDescription(
			"Generate insights from the mood history: week-over-week trend, "+
				"day-of-week pattern, and keyword themes from notes.",
		),
	)
}

// Handle processes the mood_insights tool call.
func (t *InsightsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries, err := t.store.Entries()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read entries: %v", err)), nil
	}

	result := insights.Generate(entries)

	var b strings.Builder
	b.WriteString("## Mood Insights\n\n")
	fmt.Fprintf(&b, "- **Trend**: %s\n", result.Trend)
	fmt.Fprintf(&b, "- **Weekly pattern**: %s\n", result.DayOfWeek)
	fmt.Fprintf(&b, "- **Themes**: %s\n", result.Keyword)

	return mcp.NewToolResultText(b.String()), nil
}
