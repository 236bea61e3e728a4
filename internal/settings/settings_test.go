package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/moodscape/moodscape/internal/moods"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	s, err := fs.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.ReminderHour != 20 {
		t.Errorf("ReminderHour = %d, want the default 20", s.ReminderHour)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	in := Settings{
		ReminderHour: 9,
		CustomMoods:  []moods.Option{{Symbol: "🤩", Name: "Thrilled", Score: 5}},
	}
	if err := fs.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := fs.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.ReminderHour != 9 {
		t.Errorf("ReminderHour = %d, want 9", out.ReminderHour)
	}
	if len(out.CustomMoods) != 1 || out.CustomMoods[0].Name != "Thrilled" {
		t.Errorf("CustomMoods = %+v, want the saved custom mood", out.CustomMoods)
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	fs := NewFileStore(dir)

	if err := fs.Save(Default()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(fs.Path()); err != nil {
		t.Errorf("settings file not written: %v", err)
	}
}

func TestLoad_CorruptFileErrors(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir)
	if err := os.WriteFile(fs.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := fs.Load(); err == nil {
		t.Error("corrupt settings file should error, not silently default")
	}
}

func TestPalette_AppendsCustomMoods(t *testing.T) {
	s := Settings{CustomMoods: []moods.Option{{Symbol: "🫠", Name: "Melting", Score: 2}}}

	palette := s.Palette()
	if len(palette) != len(moods.Defaults)+1 {
		t.Fatalf("palette size = %d, want %d", len(palette), len(moods.Defaults)+1)
	}
	if palette[len(palette)-1].Name != "Melting" {
		t.Errorf("custom mood not appended: %+v", palette[len(palette)-1])
	}
}
