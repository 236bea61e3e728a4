package moodtools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/moodscape/moodscape/internal/journal"
)

// SearchTool handles the search_notes MCP tool.
type SearchTool struct {
	store *journal.Store
}

// NewSearchTool creates a SearchTool.
func NewSearchTool(store *journal.Store) *SearchTool {
	return &SearchTool{store: store}
}

// Definition returns the MCP tool definition for search_notes.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("search_notes",
		mcp.WithDescription(
			"Search mood entry notes. A note matches when it contains every "+
				"word of the query (case-insensitive, whole words).",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Words to look for, e.g. 'work deadline'."),
		),
	)
}

// Handle processes the search_notes tool call.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}

	results, err := t.store.SearchNotes(query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	if len(results) == 0 {
		return mcp.NewToolResultText("No notes match your query."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d matching entries:\n\n", len(results))
	for _, e := range results {
		fmt.Fprintf(&b, "- %s: %s (%d/5) — %s\n",
			journal.DayLabel(e.DayKey), e.Symbol, e.Score, e.Note)
	}

	return mcp.NewToolResultText(b.String()), nil
}
