package moodtools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/moodscape/moodscape/internal/journal"
)

// LogbookTool handles the logbook MCP tool.
type LogbookTool struct {
	store *journal.Store
}

// NewLogbookTool creates a LogbookTool.
func NewLogbookTool(store *journal.Store) *LogbookTool {
	return &LogbookTool{store: store}
}

// Definition returns the MCP tool definition for logbook.
func (t *LogbookTool) Definition() mcp.Tool {
	return mcp.NewTool("logbook",
		mcp.WithDescription(
			"List logged moods with their categories, most recent day first.",
		),
		mcp.WithNumber("limit",
			mcp.Description("Max entries to show (default: all)."),
		),
	)
}

// Handle processes the logbook tool call.
func (t *LogbookTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries, err := t.store.Entries()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list entries: %v", err)), nil
	}

	if len(entries) == 0 {
		return mcp.NewToolResultText("No moods logged yet."), nil
	}

	if limit := intArg(req, "limit", 0); limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Logbook (%d entries):\n\n", len(entries))
	for _, e := range entries {
		category := ""
		if e.CategoryName != nil {
			category = fmt.Sprintf(" [%s]", *e.CategoryName)
		}
		note := ""
		if e.Note != "" {
			note = " — " + e.Note
		}
		fmt.Fprintf(&b, "- %s: %s (%d/5)%s%s\n",
			journal.DayLabel(e.DayKey), e.Symbol, e.Score, category, note)
	}

	return mcp.NewToolResultText(b.String()), nil
}

// ─── ExportTool ──────────────────────────────────────────────────────────────

// ExportTool handles the export_logbook MCP tool. It supplies the
// ordered, formatted logbook the document exporter consumes.
type ExportTool struct {
	store *journal.Store
}

// NewExportTool creates an ExportTool.
func NewExportTool(store *journal.Store) *ExportTool {
	return &ExportTool{store: store}
}

// Definition returns the MCP tool definition for export_logbook.
func (t *ExportTool) Definition() mcp.Tool {
	return mcp.NewTool("export_logbook",
		mcp.WithDescription(
			"Export the full logbook as a markdown document, most recent day first.",
		),
	)
}

// Handle processes the export_logbook tool call.
func (t *ExportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries, err := t.store.Entries()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list entries: %v", err)), nil
	}
	return mcp.NewToolResultText(journal.FormatLogbook(entries)), nil
}

// ─── TodayTool ───────────────────────────────────────────────────────────────

// TodayTool handles the mood_today MCP tool — the reminder scheduler's
// "does today have an entry?" check.
type TodayTool struct {
	store *journal.Store
}

// NewTodayTool creates a TodayTool.
func NewTodayTool(store *journal.Store) *TodayTool {
	return &TodayTool{store: store}
}

// Definition returns the MCP tool definition for mood_today.
func (t *TodayTool) Definition() mcp.Tool {
	return mcp.NewTool("mood_today",
		mcp.WithDescription("Check whether a mood has been logged for a day (default: today)."),
		mcp.WithString("day",
			mcp.Description("Day to check, YYYY-MM-DD local time (default: today)."),
		),
	)
}

// Handle processes the mood_today tool call.
func (t *TodayTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dayKey, err := dayArg(req, "day")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	logged, err := t.store.HasEntryForDay(dayKey)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to check day: %v", err)), nil
	}

	if logged {
		return mcp.NewToolResultText(fmt.Sprintf("A mood is logged for %s.", journal.DayLabel(dayKey))), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("No mood logged for %s yet.", journal.DayLabel(dayKey))), nil
}
