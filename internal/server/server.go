// Package server wires the journal store and tool handlers into the
// MCP server instance.
//
// This is the composition root: it creates concrete implementations
// and injects them into the tools that depend on them. No business
// logic lives here — only wiring.
package server

import (
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/server"

	"github.com/moodscape/moodscape/internal/journal"
	"github.com/moodscape/moodscape/internal/moodtools"
	"github.com/moodscape/moodscape/internal/settings"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all mood tools
// registered.
//
// The returned cleanup function closes the journal store's database
// connection and must be called on shutdown (typically via defer).
// It is always non-nil and safe to call.
func New() (*server.MCPServer, func(), error) {
	cfg := journal.DefaultConfig()

	// Settings are collaborator policy (reminder hour, custom moods);
	// a broken file must not block the journal itself.
	st, err := settings.NewFileStore(cfg.DataDir).Load()
	if err != nil {
		log.Printf("WARNING: settings unavailable, using defaults: %v", err)
		st = settings.Default()
	}

	store, err := journal.Open(cfg)
	if err != nil {
		return nil, func() {}, fmt.Errorf("opening journal store: %w", err)
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			log.Printf("WARNING: journal store close: %v", err)
		}
	}

	s := server.NewMCPServer(
		"moodscape",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions(st)),
	)

	registerMoodTools(s, store)

	return s, cleanup, nil
}

// registerMoodTools registers all journal MCP tools with the server.
func registerMoodTools(s *server.MCPServer, store *journal.Store) {
	// --- Logging ---
	logMood := moodtools.NewLogMoodTool(store)
	s.AddTool(logMood.Definition(), logMood.Handle)

	deleteMood := moodtools.NewDeleteMoodTool(store)
	s.AddTool(deleteMood.Definition(), deleteMood.Handle)

	// --- Reading ---
	logbook := moodtools.NewLogbookTool(store)
	s.AddTool(logbook.Definition(), logbook.Handle)

	search := moodtools.NewSearchTool(store)
	s.AddTool(search.Definition(), search.Handle)

	today := moodtools.NewTodayTool(store)
	s.AddTool(today.Definition(), today.Handle)

	export := moodtools.NewExportTool(store)
	s.AddTool(export.Definition(), export.Handle)

	// --- Insights ---
	insightsTool := moodtools.NewInsightsTool(store)
	s.AddTool(insightsTool.Definition(), insightsTool.Handle)

	// --- Categories ---
	addCategory := moodtools.NewAddCategoryTool(store)
	s.AddTool(addCategory.Definition(), addCategory.Handle)

	listCategories := moodtools.NewListCategoriesTool(store)
	s.AddTool(listCategories.Definition(), listCategories.Handle)

	deleteCategory := moodtools.NewDeleteCategoryTool(store)
	s.AddTool(deleteCategory.Definition(), deleteCategory.Handle)
}

func serverInstructions(st settings.Settings) string {
	var b strings.Builder
	b.WriteString(`Moodscape is a personal mood journal.

Log one mood per day with log_mood (logging a day again replaces it).
Read the history with logbook, search notes with search_notes, and ask
mood_insights for trend, weekly-pattern, and keyword-theme analysis.
Categories tag entries; deleting a category never deletes its entries.
mood_today tells a reminder whether today still needs an entry, and
export_logbook produces the markdown document feed for exports.

Mood palette (custom symbols are also accepted):
`)
	for _, o := range st.Palette() {
		fmt.Fprintf(&b, "  %s %s (%d/5)\n", o.Symbol, o.Name, o.Score)
	}
	return b.String()
}
