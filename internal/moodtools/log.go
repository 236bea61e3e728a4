package moodtools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/moodscape/moodscape/internal/journal"
	"github.com/moodscape/moodscape/internal/moods"
)

// LogMoodTool handles the log_mood MCP tool.
type LogMoodTool struct {
	store *journal.Store
}

// NewLogMoodTool creates a LogMoodTool with the given journal store.
func NewLogMoodTool(store *journal.Store) *LogMoodTool {
	return &LogMoodTool{store: store}
}

// Definition returns the MCP tool definition for log_mood.
func (t *LogMoodTool) Definition() mcp.Tool {
	return mcp.NewTool("log_mood",
		mcp.WithDescription(
			"Log today's mood (or a specific day's). One entry per day — "+
				"logging the same day again replaces the earlier entry.",
		),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Mood glyph or label, e.g. 😊 or 'calm'. Custom moods are allowed."),
		),
		mcp.WithNumber("score",
			mcp.Description("Mood score 1-5. Defaults to the built-in score for known symbols, else 3."),
		),
		mcp.WithString("note",
			mcp.Description("Free-text note for the day (optional, searchable)."),
		),
		mcp.WithNumber("category_id",
			mcp.Description("Category id from list_categories (optional)."),
		),
		mcp.WithString("day",
			mcp.Description("Day to log, YYYY-MM-DD local time (default: today)."),
		),
	)
}

// Handle processes the log_mood tool call.
func (t *LogMoodTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol := req.GetString("symbol", "")
	if symbol == "" {
		return mcp.NewToolResultError("'symbol' is required"), nil
	}

	dayKey, err := dayArg(req, "day")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	score := intArg(req, "score", defaultScore(symbol))

	entry := journal.Entry{
		DayKey: dayKey,
		Symbol: symbol,
		Note:   req.GetString("note", ""),
		Score:  score,
	}
	if id := intArg(req, "category_id", 0); id != 0 {
		cid := int64(id)
		entry.CategoryID = &cid
	}

	if err := t.store.SaveEntry(entry); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save entry: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Logged %s %s (%d/5) for %s.",
		symbol, moods.DisplayName(symbol), score, journal.DayLabel(dayKey),
	)), nil
}

// defaultScore returns the built-in score for a known symbol, else a
// neutral 3.
func defaultScore(symbol string) int {
	for _, o := range moods.Defaults {
		if o.Symbol == symbol {
			return o.Score
		}
	}
	return 3
}

// ─── DeleteMoodTool ──────────────────────────────────────────────────────────

// DeleteMoodTool handles the delete_mood MCP tool.
type DeleteMoodTool struct {
	store *journal.Store
}

// NewDeleteMoodTool creates a DeleteMoodTool.
func NewDeleteMoodTool(store *journal.Store) *DeleteMoodTool {
	return &DeleteMoodTool{store: store}
}

// Definition returns the MCP tool definition for delete_mood.
func (t *DeleteMoodTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_mood",
		mcp.WithDescription("Delete the mood entry for a day. Deleting a day with no entry is a no-op."),
		mcp.WithString("day",
			mcp.Description("Day to clear, YYYY-MM-DD local time (default: today)."),
		),
	)
}

// Handle processes the delete_mood tool call.
func (t *DeleteMoodTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dayKey, err := dayArg(req, "day")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := t.store.DeleteEntry(dayKey); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete entry: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Cleared %s.", journal.DayLabel(dayKey))), nil
}
