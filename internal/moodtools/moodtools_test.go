package moodtools

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/moodscape/moodscape/internal/journal"
)

// ─── Test helpers ────────────────────────────────────────────────────────────

// newTestStore creates a journal.Store in a temp directory for testing.
func newTestStore(t *testing.T) *journal.Store {
	t.Helper()
	store, err := journal.Open(journal.Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// makeReq builds a mcp.CallToolRequest with the given arguments.
func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultText extracts the text content from a tool result.
func resultText(r *mcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// ─── LogMoodTool ─────────────────────────────────────────────────────────────

func TestLogMoodTool_Definition(t *testing.T) {
	tool := NewLogMoodTool(newTestStore(t))
	def := tool.Definition()

	if def.Name != "log_mood" {
		t.Errorf("tool name = %q, want log_mood", def.Name)
	}
}

func TestLogMoodTool_SavesEntry(t *testing.T) {
	store := newTestStore(t)
	tool := NewLogMoodTool(store)

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"symbol": "😊",
		"score":  float64(5),
		"note":   "sunny walk",
		"day":    "2026-03-10",
	}))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(res))
	}

	key := journal.StartOfDay(time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local))
	has, err := store.HasEntryForDay(key)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !has {
		t.Error("entry not persisted for the requested day")
	}
}

func TestLogMoodTool_SameDayReplaces(t *testing.T) {
	store := newTestStore(t)
	tool := NewLogMoodTool(store)

	for _, symbol := range []string{"😢", "😊"} {
		res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
			"symbol": symbol,
			"day":    "2026-03-11",
		}))
		if err != nil || res.IsError {
			t.Fatalf("handle %s: err=%v result=%s", symbol, err, resultText(res))
		}
	}

	entries, err := store.Entries()
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Symbol != "😊" {
		t.Errorf("symbol = %q, want the replacement", entries[0].Symbol)
	}
}

func TestLogMoodTool_DefaultScoreFromSymbol(t *testing.T) {
	store := newTestStore(t)
	tool := NewLogMoodTool(store)

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"symbol": "😴",
		"day":    "2026-03-12",
	}))
	if err != nil || res.IsError {
		t.Fatalf("handle: err=%v result=%s", err, resultText(res))
	}

	entries, _ := store.Entries()
	if len(entries) != 1 || entries[0].Score != 2 {
		t.Errorf("entries = %+v, want one entry with the built-in Tired score 2", entries)
	}
}

func TestLogMoodTool_RequiresSymbol(t *testing.T) {
	tool := NewLogMoodTool(newTestStore(t))

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !res.IsError {
		t.Error("missing symbol should be a tool error")
	}
}

func TestLogMoodTool_RejectsBadDay(t *testing.T) {
	tool := NewLogMoodTool(newTestStore(t))

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"symbol": "😊",
		"day":    "March 10th",
	}))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !res.IsError {
		t.Error("malformed day should be a tool error")
	}
}

// ─── DeleteMoodTool ──────────────────────────────────────────────────────────

func TestDeleteMoodTool_AbsentDayIsNoop(t *testing.T) {
	tool := NewDeleteMoodTool(newTestStore(t))

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"day": "2026-03-13",
	}))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if res.IsError {
		t.Errorf("deleting an absent day should not error: %s", resultText(res))
	}
}

// ─── TodayTool ───────────────────────────────────────────────────────────────

func TestTodayTool_ReportsLoggedState(t *testing.T) {
	store := newTestStore(t)
	tool := NewTodayTool(store)

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"day": "2026-03-14",
	}))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !strings.Contains(resultText(res), "No mood logged") {
		t.Errorf("result = %q, want the unlogged message", resultText(res))
	}

	key := journal.StartOfDay(time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local))
	if err := store.SaveEntry(journal.Entry{DayKey: key, Symbol: "😊", Score: 5}); err != nil {
		t.Fatalf("save: %v", err)
	}

	res, err = tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"day": "2026-03-14",
	}))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !strings.Contains(resultText(res), "A mood is logged") {
		t.Errorf("result = %q, want the logged message", resultText(res))
	}
}

// ─── SearchTool ──────────────────────────────────────────────────────────────

func TestSearchTool_FindsMatchingNotes(t *testing.T) {
	store := newTestStore(t)
	key := journal.StartOfDay(time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local))
	if err := store.SaveEntry(journal.Entry{DayKey: key, Symbol: "😠", Note: "work deadline crunch", Score: 2}); err != nil {
		t.Fatalf("save: %v", err)
	}

	tool := NewSearchTool(store)
	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"query": "work deadline",
	}))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !strings.Contains(resultText(res), "Found 1 matching") {
		t.Errorf("result = %q, want one match", resultText(res))
	}
}

func TestSearchTool_NoMatches(t *testing.T) {
	tool := NewSearchTool(newTestStore(t))

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{
		"query": "vacation",
	}))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !strings.Contains(resultText(res), "No notes match") {
		t.Errorf("result = %q, want the no-matches message", resultText(res))
	}
}

// ─── InsightsTool ────────────────────────────────────────────────────────────

func TestInsightsTool_EmitsAllThreeSections(t *testing.T) {
	tool := NewInsightsTool(newTestStore(t))

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	text := resultText(res)
	for _, section := range []string{"Trend", "Weekly pattern", "Themes"} {
		if !strings.Contains(text, section) {
			t.Errorf("result missing %q section: %q", section, text)
		}
	}
	// Empty store degrades to guidance, never an error.
	if res.IsError {
		t.Errorf("insights on empty store errored: %s", text)
	}
}

// ─── Category tools ──────────────────────────────────────────────────────────

func TestCategoryTools_AddListDelete(t *testing.T) {
	store := newTestStore(t)

	add := NewAddCategoryTool(store)
	res, err := add.Handle(context.Background(), makeReq(map[string]interface{}{
		"name":  "Work",
		"color": "#FF5722",
	}))
	if err != nil || res.IsError {
		t.Fatalf("add: err=%v result=%s", err, resultText(res))
	}

	list := NewListCategoriesTool(store)
	res, err = list.Handle(context.Background(), makeReq(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(resultText(res), "Work") {
		t.Errorf("list = %q, want Work", resultText(res))
	}

	categories, err := store.Categories()
	if err != nil || len(categories) != 1 {
		t.Fatalf("categories: %v (%d)", err, len(categories))
	}

	del := NewDeleteCategoryTool(store)
	for i := 0; i < 2; i++ { // idempotent
		res, err = del.Handle(context.Background(), makeReq(map[string]interface{}{
			"id": float64(categories[0].ID),
		}))
		if err != nil || res.IsError {
			t.Fatalf("delete #%d: err=%v result=%s", i+1, err, resultText(res))
		}
	}
}

// ─── Logbook / export ────────────────────────────────────────────────────────

func TestLogbookTool_EmptyStore(t *testing.T) {
	tool := NewLogbookTool(newTestStore(t))

	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !strings.Contains(resultText(res), "No moods logged yet") {
		t.Errorf("result = %q, want the empty message", resultText(res))
	}
}

func TestExportTool_RendersMarkdownLogbook(t *testing.T) {
	store := newTestStore(t)
	key := journal.StartOfDay(time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local))
	if err := store.SaveEntry(journal.Entry{DayKey: key, Symbol: "😊", Note: "good day", Score: 5}); err != nil {
		t.Fatalf("save: %v", err)
	}

	tool := NewExportTool(store)
	res, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{}))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	text := resultText(res)
	if !strings.Contains(text, "# Moodscape Logbook") {
		t.Errorf("export missing title: %q", text)
	}
	if !strings.Contains(text, "Happy") {
		t.Errorf("export missing the symbol display name: %q", text)
	}
}
