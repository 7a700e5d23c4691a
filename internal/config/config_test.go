package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg.Editor.HistoryLimit != DefaultHistoryLimit {
		t.Errorf("HistoryLimit = %d, want %d", cfg.Editor.HistoryLimit, DefaultHistoryLimit)
	}
	if !cfg.Session.Enabled {
		t.Error("session must default to enabled")
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
[editor]
history_limit = 25
read_only = true
init_script = "init.lua"

[session]
enabled = false
path = "/tmp/s.json"

[[keymap]]
chord = "Ctrl+d"
action = "edit.delete"

[[keymap]]
chord = "i"
action = "number.add"
param = 10
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Editor.HistoryLimit != 25 || !cfg.Editor.ReadOnly || cfg.Editor.InitScript != "init.lua" {
		t.Errorf("editor section = %+v", cfg.Editor)
	}
	if cfg.Session.Enabled || cfg.Session.Path != "/tmp/s.json" {
		t.Errorf("session section = %+v", cfg.Session)
	}
	if len(cfg.Keymap) != 2 {
		t.Fatalf("keymap entries = %d, want 2", len(cfg.Keymap))
	}
	if cfg.Keymap[0].Chord != "Ctrl+d" || cfg.Keymap[0].Action != "edit.delete" {
		t.Errorf("first binding = %+v", cfg.Keymap[0])
	}
	if cfg.Keymap[1].Param != int64(10) {
		t.Errorf("param = %v (%T), want 10", cfg.Keymap[1].Param, cfg.Keymap[1].Param)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[editor]\nread_only = true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Editor.ReadOnly {
		t.Error("read_only not applied")
	}
	if cfg.Editor.HistoryLimit != DefaultHistoryLimit {
		t.Errorf("HistoryLimit = %d, want the default", cfg.Editor.HistoryLimit)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "[editor\nhistory_limit = ???\n")
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("malformed TOML must error")
	}
	// The caller still gets a runnable configuration.
	if cfg.Editor.HistoryLimit != DefaultHistoryLimit {
		t.Errorf("fallback HistoryLimit = %d", cfg.Editor.HistoryLimit)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero history", "[editor]\nhistory_limit = 0\n"},
		{"empty chord", "[[keymap]]\nchord = \"\"\naction = \"edit.delete\"\n"},
		{"empty action", "[[keymap]]\nchord = \"g\"\naction = \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("invalid config must error")
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	p, err := DefaultPath()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	if filepath.Base(p) != "config.toml" {
		t.Errorf("DefaultPath() = %q", p)
	}
}
