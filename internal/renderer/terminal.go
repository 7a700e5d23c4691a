// Package renderer draws the document view on a terminal through
// tcell and translates terminal input into key events.
package renderer

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/Gregoor/upcode/internal/input/key"
)

// EventKind discriminates the events the app loop consumes.
type EventKind int

const (
	// EventNone is an event the editor ignores (mouse, focus).
	EventNone EventKind = iota

	// EventKey carries a key press.
	EventKey

	// EventResize reports a new terminal size.
	EventResize

	// EventQuit asks the loop to exit (terminal closed).
	EventQuit
)

// Event is one input event from the terminal.
type Event struct {
	Kind   EventKind
	Key    key.Event
	Width  int
	Height int
}

// Terminal is the tcell-backed screen.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal allocates a terminal screen without initializing it.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen; tests pass a
// tcell.SimulationScreen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init puts the terminal into editor mode.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Init()
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Size returns the terminal dimensions.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

// PollEvent blocks for the next event. It returns EventQuit when the
// screen is finalized.
func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Kind: EventQuit}
	}
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{Kind: EventKey, Key: convertKey(e)}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Kind: EventResize, Width: w, Height: h}
	}
	return Event{Kind: EventNone}
}

// Interrupt wakes up a blocked PollEvent, used for shutdown.
func (t *Terminal) Interrupt() {
	t.screen.PostEventWait(tcell.NewEventInterrupt(nil))
}

// convertKey maps a tcell key event onto the editor's key model.
// tcell aliases the control keys onto Backspace, Tab and Enter, so
// those are resolved first and the remaining Ctrl+letter combinations
// become character events with ModCtrl set.
func convertKey(e *tcell.EventKey) key.Event {
	mods := convertMods(e.Modifiers())

	switch e.Key() {
	case tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	}

	if k := e.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + k - tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl))
	}
	return key.Event{}
}

func convertMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
