// Package settings persists user-tunable options as a JSON file under
// the data directory. The core store never reads these; they belong to
// the collaborators (reminder scheduler policy, mood picker palette).
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moodscape/moodscape/internal/moods"
)

// SettingsFile is the filename under the data directory.
const SettingsFile = "settings.json"

// Settings holds user options.
type Settings struct {
	// ReminderHour is the local hour (0-23) the reminder scheduler
	// checks whether today has an entry.
	ReminderHour int `json:"reminder_hour"`
	// CustomMoods extends the built-in mood palette.
	CustomMoods []moods.Option `json:"custom_moods,omitempty"`
}

// Default returns the settings used when no file exists yet.
func Default() Settings {
	return Settings{ReminderHour: 20}
}

// FileStore reads and writes settings under a data directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a settings store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the absolute path of the settings file.
func (fs *FileStore) Path() string {
	return filepath.Join(fs.dir, SettingsFile)
}

// Load reads settings from disk. A missing file yields defaults.
func (fs *FileStore) Load() (Settings, error) {
	data, err := os.ReadFile(fs.Path())
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	return s, nil
}

// Save writes settings to disk, creating the directory if needed.
func (fs *FileStore) Save(s Settings) error {
	if err := os.MkdirAll(fs.dir, 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(fs.Path(), data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// Palette returns the full mood palette: built-in options followed by
// any custom moods.
func (s Settings) Palette() []moods.Option {
	return append(append([]moods.Option{}, moods.Defaults...), s.CustomMoods...)
}
