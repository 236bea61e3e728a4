// Package journal implements the persistent mood store for Moodscape.
//
// It uses SQLite with an FTS5 full-text index over entry notes to store
// one mood record per calendar day, plus user-defined categories. The
// insight engine (internal/insights) consumes snapshots read from here.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// schemaVersion is stored in PRAGMA user_version. On an incompatible
// bump the store drops and rebuilds its tables instead of migrating —
// acceptable for local, user-owned data.
const schemaVersion = 2

// ErrUnavailable marks a storage-layer failure (I/O, corruption).
// Callers can distinguish it from "zero matches", which is always an
// empty result with a nil error.
var ErrUnavailable = errors.New("journal: storage unavailable")

// ─── Types ───────────────────────────────────────────────────────────────────

// Entry is one mood record. DayKey is the primary key: milliseconds at
// local midnight of the calendar day the entry belongs to, so there is
// at most one entry per day.
type Entry struct {
	DayKey     int64  `json:"day_key"`
	Symbol     string `json:"symbol"`
	Note       string `json:"note"`
	CategoryID *int64 `json:"category_id,omitempty"`
	Score      int    `json:"score"`
}

// Category is a user-defined tag for entries. Entries hold a weak
// reference to it: deleting a category leaves referencing entries in
// place with a dangling id.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// EntryWithCategory is an Entry left-joined with its Category. Both
// category fields are nil when the entry has no category or the
// reference dangles.
type EntryWithCategory struct {
	Entry
	CategoryName  *string `json:"category_name,omitempty"`
	CategoryColor *string `json:"category_color,omitempty"`
}

// ─── Config ──────────────────────────────────────────────────────────────────

// Config holds journal store configuration.
type Config struct {
	DataDir string
}

// DefaultConfig returns the default configuration for the journal store.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir: filepath.Join(home, ".moodscape"),
	}
}

// ─── Store ───────────────────────────────────────────────────────────────────

// Store is the persistent mood journal backed by SQLite + FTS5.
//
// database/sql over a WAL-mode database gives the single-writer /
// multi-reader discipline the store needs: a replace is atomic from any
// reader's perspective, and reads don't block on unrelated writes.
type Store struct {
	db  *sql.DB
	cfg Config

	subMu sync.Mutex
	subs  map[chan struct{}]struct{}
}

// Open creates a Store with the given configuration. It creates the
// data directory if needed, opens SQLite with WAL mode, and builds the
// schema (destructively rebuilding on an incompatible version).
func Open(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", ErrUnavailable, err)
	}

	dbPath := filepath.Join(cfg.DataDir, "moodscape.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", ErrUnavailable, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("%w: pragma %q: %v", ErrUnavailable, p, err)
		}
	}

	s := &Store{db: db, cfg: cfg, subs: make(map[chan struct{}]struct{})}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("%w: schema: %v", ErrUnavailable, err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ─── Schema ──────────────────────────────────────────────────────────────────

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return err
	}

	if version != 0 && version != schemaVersion {
		// Incompatible schema: destructive rebuild rather than migrate.
		drop := []string{
			"DROP TRIGGER IF EXISTS entry_fts_insert",
			"DROP TRIGGER IF EXISTS entry_fts_delete",
			"DROP TRIGGER IF EXISTS entry_fts_update",
			"DROP TABLE IF EXISTS mood_entries_fts",
			"DROP TABLE IF EXISTS mood_entries",
			"DROP TABLE IF EXISTS mood_categories",
		}
		for _, stmt := range drop {
			if _, err := s.db.Exec(stmt); err != nil {
				return err
			}
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS mood_entries (
			day_key     INTEGER PRIMARY KEY,
			symbol      TEXT    NOT NULL,
			note        TEXT    NOT NULL DEFAULT '',
			category_id INTEGER,
			score       INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS mood_categories (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			name  TEXT NOT NULL,
			color TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_categories_name ON mood_categories(name);

		CREATE VIRTUAL TABLE IF NOT EXISTS mood_entries_fts USING fts5(
			note,
			content='mood_entries',
			content_rowid='day_key'
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// FTS triggers (idempotent)
	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='trigger' AND name='entry_fts_insert'",
	).Scan(&name)

	if err == sql.ErrNoRows {
		triggers := `
			CREATE TRIGGER entry_fts_insert AFTER INSERT ON mood_entries BEGIN
				INSERT INTO mood_entries_fts(rowid, note)
				VALUES (new.day_key, new.note);
			END;

			CREATE TRIGGER entry_fts_delete AFTER DELETE ON mood_entries BEGIN
				INSERT INTO mood_entries_fts(mood_entries_fts, rowid, note)
				VALUES ('delete', old.day_key, old.note);
			END;

			CREATE TRIGGER entry_fts_update AFTER UPDATE ON mood_entries BEGIN
				INSERT INTO mood_entries_fts(mood_entries_fts, rowid, note)
				VALUES ('delete', old.day_key, old.note);
				INSERT INTO mood_entries_fts(rowid, note)
				VALUES (new.day_key, new.note);
			END;
		`
		if _, err := s.db.Exec(triggers); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	return err
}

// ─── Entries ─────────────────────────────────────────────────────────────────

// SaveEntry upserts a mood entry. An existing entry for the same day
// key is replaced wholesale (last write wins, no merge).
func (s *Store) SaveEntry(e Entry) error {
	// Upsert via ON CONFLICT so the UPDATE trigger keeps the FTS index
	// in sync (INSERT OR REPLACE would skip the delete trigger).
	_, err := s.db.Exec(
		`INSERT INTO mood_entries (day_key, symbol, note, category_id, score)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(day_key) DO UPDATE SET
		     symbol = excluded.symbol,
		     note = excluded.note,
		     category_id = excluded.category_id,
		     score = excluded.score`,
		e.DayKey, e.Symbol, e.Note, e.CategoryID, e.Score,
	)
	if err != nil {
		return fmt.Errorf("%w: save entry: %v", ErrUnavailable, err)
	}
	s.notify()
	return nil
}

// DeleteEntry removes the entry for a day key. Deleting an absent day
// is a no-op, not an error.
func (s *Store) DeleteEntry(dayKey int64) error {
	res, err := s.db.Exec(`DELETE FROM mood_entries WHERE day_key = ?`, dayKey)
	if err != nil {
		return fmt.Errorf("%w: delete entry: %v", ErrUnavailable, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.notify()
	}
	return nil
}

// Entries returns all entries joined with their categories, most recent
// day first. Entries whose category was deleted come back with nil
// category fields; the entry itself is untouched.
func (s *Store) Entries() ([]EntryWithCategory, error) {
	rows, err := s.db.Query(`
		SELECT e.day_key, e.symbol, e.note, e.category_id, e.score,
		       c.name, c.color
		FROM mood_entries e
		LEFT JOIN mood_categories c ON e.category_id = c.id
		ORDER BY e.day_key DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: list entries: %v", ErrUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	var results []EntryWithCategory
	for rows.Next() {
		var e EntryWithCategory
		if err := rows.Scan(
			&e.DayKey, &e.Symbol, &e.Note, &e.CategoryID, &e.Score,
			&e.CategoryName, &e.CategoryColor,
		); err != nil {
			return nil, fmt.Errorf("%w: scan entry: %v", ErrUnavailable, err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list entries: %v", ErrUnavailable, err)
	}
	return results, nil
}

// HasEntryForDay reports whether an entry exists whose day key equals
// the given normalized day start. Point lookup on the primary key, used
// by the reminder collaborator.
func (s *Store) HasEntryForDay(dayStart int64) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM mood_entries WHERE day_key = ?)`, dayStart,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: day lookup: %v", ErrUnavailable, err)
	}
	return exists, nil
}

// SearchNotes returns entries whose note contains every token of the
// query (case-insensitive, token-level AND match, not substring). An
// empty or all-punctuation query matches nothing.
func (s *Store) SearchNotes(query string) ([]Entry, error) {
	ftsQuery := sanitizeFTS(query)
	if ftsQuery == "" {
		return nil, nil
	}

	rows, err := s.db.Query(`
		SELECT e.day_key, e.symbol, e.note, e.category_id, e.score
		FROM mood_entries_fts fts
		JOIN mood_entries e ON e.day_key = fts.rowid
		WHERE mood_entries_fts MATCH ?
	`, ftsQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: search: %v", ErrUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	var results []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.DayKey, &e.Symbol, &e.Note, &e.CategoryID, &e.Score); err != nil {
			return nil, fmt.Errorf("%w: scan search result: %v", ErrUnavailable, err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: search: %v", ErrUnavailable, err)
	}
	return results, nil
}

// ─── Categories ──────────────────────────────────────────────────────────────

// SaveCategory inserts a category, returning it with its generated id.
// A nonzero id replaces the existing row with that id, mirroring entry
// upsert semantics.
func (s *Store) SaveCategory(c Category) (Category, error) {
	if c.ID != 0 {
		_, err := s.db.Exec(
			`INSERT OR REPLACE INTO mood_categories (id, name, color) VALUES (?, ?, ?)`,
			c.ID, c.Name, c.Color,
		)
		if err != nil {
			return Category{}, fmt.Errorf("%w: save category: %v", ErrUnavailable, err)
		}
		s.notify()
		return c, nil
	}

	res, err := s.db.Exec(
		`INSERT INTO mood_categories (name, color) VALUES (?, ?)`,
		c.Name, c.Color,
	)
	if err != nil {
		return Category{}, fmt.Errorf("%w: save category: %v", ErrUnavailable, err)
	}
	c.ID, err = res.LastInsertId()
	if err != nil {
		return Category{}, fmt.Errorf("%w: save category: %v", ErrUnavailable, err)
	}
	s.notify()
	return c, nil
}

// Categories returns all categories sorted by name ascending.
func (s *Store) Categories() ([]Category, error) {
	rows, err := s.db.Query(`SELECT id, name, color FROM mood_categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: list categories: %v", ErrUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	var results []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color); err != nil {
			return nil, fmt.Errorf("%w: scan category: %v", ErrUnavailable, err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list categories: %v", ErrUnavailable, err)
	}
	return results, nil
}

// DeleteCategory removes a category by id. Idempotent: an absent id is
// a no-op. Entries referencing the category keep their dangling id and
// surface nil category fields on subsequent reads.
func (s *Store) DeleteCategory(id int64) error {
	res, err := s.db.Exec(`DELETE FROM mood_categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: delete category: %v", ErrUnavailable, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.notify()
	}
	return nil
}

// ─── Subscriptions ───────────────────────────────────────────────────────────

// Subscribe returns a channel that carries the current joined entry
// list immediately, then again after every completed write. Emissions
// coalesce under load but the terminal state is never missed. The
// subscription ends when ctx is cancelled.
func (s *Store) Subscribe(ctx context.Context) <-chan []EntryWithCategory {
	signal := make(chan struct{}, 1)
	signal <- struct{}{} // prime the initial emission

	s.subMu.Lock()
	s.subs[signal] = struct{}{}
	s.subMu.Unlock()

	out := make(chan []EntryWithCategory)
	go func() {
		defer close(out)
		defer func() {
			s.subMu.Lock()
			delete(s.subs, signal)
			s.subMu.Unlock()
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case <-signal:
			}
			entries, err := s.Entries()
			if err != nil {
				continue // transient read failure; next write re-signals
			}
			select {
			case <-ctx.Done():
				return
			case out <- entries:
			}
		}
	}()
	return out
}

// notify wakes every subscriber. The one-slot signal channel coalesces
// bursts of writes into a single re-query.
func (s *Store) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for signal := range s.subs {
		select {
		case signal <- struct{}{}:
		default:
		}
	}
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// sanitizeFTS wraps each token in quotes for a safe FTS5 query.
// "work deadline" → `"work" "deadline"` (implicit AND).
func sanitizeFTS(query string) string {
	words := strings.FieldsFunc(query, func(r rune) bool {
		return !isWordRune(r)
	})
	for i, w := range words {
		words[i] = `"` + w + `"`
	}
	return strings.Join(words, " ")
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		r > 127
}
