package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/Gregoor/upcode/internal/config"
	"github.com/Gregoor/upcode/internal/engine/path"
)

// Session persists the last opened file and selection across runs in a
// small JSON state file. Fields are updated individually so unknown
// keys written by other versions survive a round trip.
type Session struct {
	cfg  config.Session
	path string
	data []byte
}

// NewSession loads the session file. A missing or unreadable file
// starts an empty session.
func NewSession(cfg config.Session) *Session {
	s := &Session{cfg: cfg, data: []byte("{}")}

	s.path = cfg.Path
	if s.path == "" {
		if dir, err := config.DefaultPath(); err == nil {
			s.path = filepath.Join(filepath.Dir(dir), "session.json")
		}
	}
	if s.path == "" || !cfg.Enabled {
		return s
	}

	if data, err := os.ReadFile(s.path); err == nil && gjson.ValidBytes(data) {
		s.data = data
	}
	return s
}

// LastFile returns the file of the previous session, or "".
func (s *Session) LastFile() string {
	if !s.cfg.Enabled {
		return ""
	}
	return gjson.GetBytes(s.data, "lastFile").String()
}

// SelectionFor returns the stored selection when file matches the last
// session's file.
func (s *Session) SelectionFor(file string) path.Path {
	if !s.cfg.Enabled || file == "" {
		return nil
	}
	if gjson.GetBytes(s.data, "lastFile").String() != file {
		return nil
	}
	return path.Parse(gjson.GetBytes(s.data, "selection").String())
}

// Record updates the session state in memory.
func (s *Session) Record(file string, sel path.Path) {
	if file == "" {
		return
	}
	s.data, _ = sjson.SetBytes(s.data, "lastFile", file)
	s.data, _ = sjson.SetBytes(s.data, "selection", sel.String())
	s.data, _ = sjson.SetBytes(s.data, "savedAt", time.Now().Format(time.RFC3339))
}

// Save writes the session file.
func (s *Session) Save() error {
	if !s.cfg.Enabled || s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	if err := os.WriteFile(s.path, s.data, 0o644); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}
