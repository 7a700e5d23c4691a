// Package dispatcher routes resolved keymap actions to engine
// operations. Handlers are registered by exact action name; unknown
// actions are logged and ignored so a stale Lua binding cannot crash
// the editor.
package dispatcher

import (
	"log"
	"sync"

	"github.com/Gregoor/upcode/internal/engine"
	"github.com/Gregoor/upcode/internal/engine/node"
	"github.com/Gregoor/upcode/internal/input/key"
	"github.com/Gregoor/upcode/internal/input/keymap"
)

// Handler executes one action. It reports whether the action changed
// the editor state.
type Handler func(param any, ev key.Event) bool

// Dispatcher connects key events, the keymap and the engine.
type Dispatcher struct {
	mu        sync.RWMutex
	handlers  map[string]Handler
	eng       *engine.Engine
	keys      *keymap.Table
	clipboard string
}

// New creates a dispatcher with the built-in handlers registered.
func New(eng *engine.Engine, keys *keymap.Table) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[string]Handler),
		eng:      eng,
		keys:     keys,
	}
	d.registerBuiltins()
	return d
}

// Register adds or replaces the handler for an action name.
func (d *Dispatcher) Register(name string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = h
}

// Has reports whether a handler exists for the action name.
func (d *Dispatcher) Has(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.handlers[name]
	return ok
}

// Clipboard returns the current clipboard text.
func (d *Dispatcher) Clipboard() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.clipboard
}

// HandleKey turns a key event into an action and executes it. Digit
// keys on a selected null literal bypass the keymap and start a
// numeric literal with the typed digit.
func (d *Dispatcher) HandleKey(ev key.Event) bool {
	if ev.IsDigit() {
		if n, ok := d.eng.SelectedNode(); ok && n.Kind() == node.KindNull {
			return d.eng.BeginNumber(ev.Rune)
		}
	}

	n, _ := d.eng.SelectedNode()
	action, ok := d.keys.Resolve(ev, n, d.eng.Selection())
	if !ok {
		return false
	}
	return d.Dispatch(action, ev)
}

// Dispatch executes a resolved action.
func (d *Dispatcher) Dispatch(action keymap.Action, ev key.Event) bool {
	d.mu.RLock()
	h, ok := d.handlers[action.Name]
	d.mu.RUnlock()
	if !ok {
		log.Printf("dispatcher: no handler for action %q", action.Name)
		return false
	}
	return h(action.Param, ev)
}

func (d *Dispatcher) registerBuiltins() {
	nav := func(dir engine.Direction) Handler {
		return func(any, key.Event) bool { return d.eng.Navigate(dir) }
	}
	d.handlers[keymap.ActionSelectUp] = nav(engine.DirUp)
	d.handlers[keymap.ActionSelectDown] = nav(engine.DirDown)
	d.handlers[keymap.ActionSelectLeft] = nav(engine.DirLeft)
	d.handlers[keymap.ActionSelectRight] = nav(engine.DirRight)

	d.handlers[keymap.ActionMoveUp] = func(any, key.Event) bool { return d.eng.Move(engine.DirUp) }
	d.handlers[keymap.ActionMoveDown] = func(any, key.Event) bool { return d.eng.Move(engine.DirDown) }

	d.handlers[keymap.ActionInsert] = func(any, key.Event) bool { return d.eng.Insert(node.Null()) }
	d.handlers[keymap.ActionDelete] = func(any, key.Event) bool { return d.eng.Delete() }

	d.handlers[keymap.ActionTextInput] = func(_ any, ev key.Event) bool {
		if !ev.IsChar() {
			return false
		}
		return d.eng.UpdateValue(func(s string) string { return s + string(ev.Rune) })
	}
	d.handlers[keymap.ActionTextBackspace] = func(any, key.Event) bool {
		return d.eng.UpdateValue(func(s string) string {
			r := []rune(s)
			if len(r) == 0 {
				return s
			}
			return string(r[:len(r)-1])
		})
	}

	d.handlers[keymap.ActionToString] = func(any, key.Event) bool { return d.eng.ToString() }
	d.handlers[keymap.ActionToNumber] = func(any, key.Event) bool { return d.eng.ToNumber() }
	d.handlers[keymap.ActionToArray] = func(any, key.Event) bool { return d.eng.ToArray() }
	d.handlers[keymap.ActionToObject] = func(any, key.Event) bool { return d.eng.ToObject() }
	d.handlers[keymap.ActionToNull] = func(any, key.Event) bool { return d.eng.ToNull() }

	d.handlers[keymap.ActionSetBool] = func(param any, _ key.Event) bool {
		v, ok := param.(bool)
		if !ok {
			return false
		}
		return d.eng.SetBoolean(v)
	}
	d.handlers[keymap.ActionAddNumber] = func(param any, _ key.Event) bool {
		delta, ok := toFloat(param)
		if !ok {
			return false
		}
		return d.eng.AddToNumber(delta)
	}
	d.handlers[keymap.ActionDeclKind] = func(param any, _ key.Event) bool {
		kind, ok := param.(string)
		if !ok {
			return false
		}
		return d.eng.ChangeDeclarationKind(kind)
	}

	d.handlers[keymap.ActionUndo] = func(any, key.Event) bool { return d.eng.Undo() }
	d.handlers[keymap.ActionRedo] = func(any, key.Event) bool { return d.eng.Redo() }

	d.handlers[keymap.ActionCopy] = func(any, key.Event) bool {
		text, ok := d.eng.Copy()
		if !ok {
			return false
		}
		d.setClipboard(text)
		return true
	}
	d.handlers[keymap.ActionCut] = func(any, key.Event) bool {
		text, ok := d.eng.Cut()
		if !ok {
			return false
		}
		d.setClipboard(text)
		return true
	}
	d.handlers[keymap.ActionPaste] = func(any, key.Event) bool {
		text := d.Clipboard()
		if text == "" {
			return false
		}
		return d.eng.Paste(text)
	}
}

func (d *Dispatcher) setClipboard(text string) {
	d.mu.Lock()
	d.clipboard = text
	d.mu.Unlock()
}

// toFloat widens the numeric types a Lua binding or literal table can
// produce.
func toFloat(param any) (float64, bool) {
	switch v := param.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
