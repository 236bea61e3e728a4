// Package moodtools provides MCP tool handlers for the mood journal.
//
// Each tool handler follows the same pattern:
// - A struct with dependencies (journal.Store) injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
//
// Tools are thin glue: they parse arguments, call the store or the
// insight engine, and format results. No analytical logic lives here.
package moodtools

import (
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/moodscape/moodscape/internal/journal"
)

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// dayArg resolves an optional "day" argument ("2006-01-02", local time)
// to a day key, defaulting to today.
func dayArg(req mcp.CallToolRequest, key string) (int64, error) {
	raw := req.GetString(key, "")
	if raw == "" {
		return journal.Today(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: use YYYY-MM-DD", raw)
	}
	return journal.StartOfDay(t), nil
}
