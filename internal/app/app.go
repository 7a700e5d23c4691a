// Package app wires the engine, keymap, dispatcher and renderer into
// a running editor and owns the terminal event loop.
package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/Gregoor/upcode/internal/codec"
	"github.com/Gregoor/upcode/internal/config"
	"github.com/Gregoor/upcode/internal/dispatcher"
	"github.com/Gregoor/upcode/internal/engine"
	"github.com/Gregoor/upcode/internal/input/key"
	"github.com/Gregoor/upcode/internal/input/keymap"
	"github.com/Gregoor/upcode/internal/plugin/lua"
	"github.com/Gregoor/upcode/internal/renderer"
)

// Actions the app layer adds on top of the engine's.
const (
	ActionSave = "app.save"
	ActionQuit = "app.quit"
)

// Options configures the application.
type Options struct {
	// ConfigPath overrides the config file location.
	ConfigPath string

	// File is the document to open. Empty starts an unsaved null
	// document.
	File string

	// ReadOnly rejects all mutations regardless of the config.
	ReadOnly bool

	// Debug enables verbose logging.
	Debug bool
}

// Application coordinates the editor components.
type Application struct {
	opts Options
	cfg  config.Config

	eng     *engine.Engine
	keys    *keymap.Table
	disp    *dispatcher.Dispatcher
	session *Session

	term *renderer.Terminal
	view *renderer.View

	file     string
	modified atomic.Bool
	running  atomic.Bool
	done     chan struct{}
}

// New loads the configuration and builds the editor around the given
// document.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts: opts,
		done: make(chan struct{}),
	}
	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

func (app *Application) bootstrap() error {
	if err := app.loadConfig(); err != nil {
		return err
	}

	app.session = NewSession(app.cfg.Session)
	app.file = app.opts.File
	if app.file == "" {
		app.file = app.session.LastFile()
	}

	text, err := app.readDocument()
	if err != nil {
		return err
	}

	engOpts := []engine.Option{
		engine.WithMaxHistory(app.cfg.Editor.HistoryLimit),
		engine.WithOnChange(func(string) { app.modified.Store(true) }),
	}
	if app.opts.ReadOnly || app.cfg.Editor.ReadOnly {
		engOpts = append(engOpts, engine.WithReadOnly())
	}
	app.eng, err = engine.New(text, codec.Parse, codec.Generate, engOpts...)
	if err != nil {
		return fmt.Errorf("opening %s: %w", app.file, err)
	}

	app.keys = keymap.Default()
	app.keys.Prepend(
		keymap.Mapping{Keys: []string{"s"}, Modifiers: []string{"ctrl"}, Action: ActionSave},
		keymap.Mapping{Keys: []string{"q"}, Modifiers: []string{"ctrl"}, Action: ActionQuit},
	)
	app.applyConfigBindings()
	app.runInitScript()

	app.disp = dispatcher.New(app.eng, app.keys)
	app.disp.Register(ActionSave, func(any, key.Event) bool { return app.Save() == nil })
	app.disp.Register(ActionQuit, func(any, key.Event) bool { app.Quit(); return true })

	if sel := app.session.SelectionFor(app.file); len(sel) > 0 {
		app.eng.Select(sel)
	}
	return nil
}

func (app *Application) loadConfig() error {
	path := app.opts.ConfigPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			log.Printf("app: %v, using default config", err)
			app.cfg = config.Default()
			return nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	app.cfg = cfg
	return nil
}

// readDocument loads the document file. A missing or unnamed file
// starts an empty document.
func (app *Application) readDocument() (string, error) {
	if app.file == "" {
		return "", nil
	}
	data, err := os.ReadFile(app.file)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", app.file, err)
	}
	return string(data), nil
}

func (app *Application) applyConfigBindings() {
	// Later entries win, so they are prepended last.
	for _, b := range app.cfg.Keymap {
		m, err := keymap.ParseBinding(b.Chord, b.Action, b.Param)
		if err != nil {
			log.Printf("app: skipping keymap entry %q: %v", b.Chord, err)
			continue
		}
		app.keys.Prepend(m)
	}
}

// runInitScript executes the Lua init script when configured. Script
// failures are logged, never fatal.
func (app *Application) runInitScript() {
	script := app.cfg.Editor.InitScript
	if script == "" {
		return
	}
	if !filepath.IsAbs(script) {
		if dir, err := config.DefaultPath(); err == nil {
			script = filepath.Join(filepath.Dir(dir), script)
		}
	}
	if _, err := os.Stat(script); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("app: init script: %v", err)
		}
		return
	}

	state := lua.NewState()
	defer state.Close()
	lua.Install(state, app.keys)
	if err := state.DoFile(script); err != nil {
		log.Printf("app: init script %s: %v", script, err)
	}
}

// Engine exposes the editing engine, mainly for tests.
func (app *Application) Engine() *engine.Engine { return app.eng }

// Dispatcher exposes the action dispatcher, mainly for tests.
func (app *Application) Dispatcher() *dispatcher.Dispatcher { return app.disp }

// Save writes the generated document text back to the file.
func (app *Application) Save() error {
	if app.eng.IsReadOnly() {
		return engine.ErrReadOnly
	}
	if app.file == "" {
		return fmt.Errorf("no file to save to")
	}
	if err := os.WriteFile(app.file, []byte(app.eng.Text()+"\n"), 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", app.file, err)
	}
	app.modified.Store(false)
	return nil
}

// Quit asks the event loop to exit. Safe to call from any goroutine.
func (app *Application) Quit() {
	if app.running.CompareAndSwap(true, false) {
		close(app.done)
		if app.term != nil {
			app.term.Interrupt()
		}
	}
}

// Run starts the terminal UI and blocks until quit.
func (app *Application) Run() error {
	term, err := renderer.NewTerminal()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	app.term = term
	app.view = renderer.NewView(term)
	app.running.Store(true)

	defer func() {
		term.Shutdown()
		app.session.Record(app.file, app.eng.Selection())
		if err := app.session.Save(); err != nil {
			log.Printf("app: saving session: %v", err)
		}
	}()

	app.redraw()
	for {
		select {
		case <-app.done:
			return nil
		default:
		}

		ev := term.PollEvent()
		switch ev.Kind {
		case renderer.EventQuit:
			return nil
		case renderer.EventKey:
			app.disp.HandleKey(ev.Key)
			app.redraw()
		case renderer.EventResize:
			app.redraw()
		}
	}
}

func (app *Application) redraw() {
	if app.view == nil {
		return
	}
	s := app.eng.State()
	text, start, end := codec.Render(s.Tree, s.Sel)
	app.view.Draw(renderer.Frame{
		Text:   text,
		Start:  start,
		End:    end,
		Status: app.statusLine(),
	})
}

func (app *Application) statusLine() string {
	name := app.file
	if name == "" {
		name = "[no file]"
	}
	flags := ""
	if app.modified.Load() {
		flags += " [+]"
	}
	if app.eng.IsReadOnly() {
		flags += " [ro]"
	}
	return fmt.Sprintf(" %s%s  %s  undo:%d", name, flags, app.eng.Selection(), app.eng.HistoryLen()-1)
}
