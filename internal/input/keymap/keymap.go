// Package keymap resolves key events into editor actions through a
// declarative, ordered table of nested rules.
//
// Each rule optionally constrains the literal key name, the required
// modifier set (fixed, or computed from the current selection), and a
// shape predicate over the selected node. Rules nest: a parent rule
// gates a subtree of refinements. Resolution walks the table depth
// first and short-circuits at the first fully matching leaf.
//
// The table itself is data. The defaults live in default.go and the
// Lua init script can prepend rules of its own; the dispatcher is the
// only component that interprets action names.
package keymap

import (
	"sync"

	"github.com/Gregoor/upcode/internal/engine/node"
	"github.com/Gregoor/upcode/internal/engine/path"
	"github.com/Gregoor/upcode/internal/input/key"
)

// Action is a resolved (name, parameter) pair.
type Action struct {
	Name  string
	Param any
}

// Predicate tests the shape of the current selection.
type Predicate func(n *node.Node, sel path.Path) bool

// ModifierFunc computes the required modifier names from the current
// selection, for rules whose modifiers depend on what is selected.
type ModifierFunc func(n *node.Node, sel path.Path) []string

// NoModifiers is the explicit empty requirement: the rule matches only
// unmodified keys. A nil Modifiers field leaves modifiers
// unconstrained.
var NoModifiers = []string{}

// Mapping is one rule of the table.
type Mapping struct {
	// Keys are literal key names this rule matches ("a", "Enter",
	// "Up", "BS"). Empty matches any key.
	Keys []string

	// Modifiers is the required modifier name set. nil leaves
	// modifiers unconstrained; NoModifiers requires none.
	Modifiers []string

	// ModifiersFunc computes the required modifiers from the
	// selection; it takes precedence over Modifiers when set.
	ModifiersFunc ModifierFunc

	// Test gates the rule on the selected node's shape.
	Test Predicate

	// Action names the resolved action when this rule is a leaf.
	Action string

	// Param is the fixed action parameter.
	Param any

	// Mappings are nested refinements tried before this rule's own
	// action.
	Mappings []Mapping
}

// Table is an ordered rule set safe for concurrent use.
type Table struct {
	mu       sync.RWMutex
	mappings []Mapping
}

// NewTable builds a table from the given rules.
func NewTable(mappings ...Mapping) *Table {
	return &Table{mappings: mappings}
}

// Prepend inserts rules ahead of the existing ones, giving them
// precedence. User and plugin bindings go through here.
func (t *Table) Prepend(mappings ...Mapping) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mappings = append(append([]Mapping{}, mappings...), t.mappings...)
}

// Resolve walks the table depth first and returns the first fully
// matching leaf action.
func (t *Table) Resolve(ev key.Event, n *node.Node, sel path.Path) (Action, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return resolve(t.mappings, ev, n, sel)
}

func resolve(mappings []Mapping, ev key.Event, n *node.Node, sel path.Path) (Action, bool) {
	for _, m := range mappings {
		if !m.matches(ev, n, sel) {
			continue
		}
		if len(m.Mappings) > 0 {
			if a, ok := resolve(m.Mappings, ev, n, sel); ok {
				return a, true
			}
		}
		if m.Action != "" {
			return Action{Name: m.Action, Param: m.Param}, true
		}
	}
	return Action{}, false
}

// matches checks this rule's own constraints.
func (m Mapping) matches(ev key.Event, n *node.Node, sel path.Path) bool {
	if len(m.Keys) > 0 && !containsKey(m.Keys, ev.Name()) {
		return false
	}

	required := m.Modifiers
	if m.ModifiersFunc != nil {
		required = m.ModifiersFunc(n, sel)
	}
	if required != nil && !modifiersEqual(required, ev) {
		return false
	}

	if m.Test != nil && !m.Test(n, sel) {
		return false
	}
	return true
}

func containsKey(keys []string, name string) bool {
	for _, k := range keys {
		if k == name {
			return true
		}
	}
	return false
}

// modifiersEqual reports whether the event carries exactly the
// required modifiers. On an unchorded character key shift is part of
// the character itself and is ignored; once ctrl, alt or meta is held
// the character no longer encodes it, so shift compares normally and
// Ctrl+Shift chords stay distinct from Ctrl ones.
func modifiersEqual(required []string, ev key.Event) bool {
	var want key.Modifier
	for _, name := range required {
		want = want.With(key.ParseModifier(name))
	}
	have := ev.Modifiers
	if ev.IsRune() && have&(key.ModCtrl|key.ModAlt|key.ModMeta) == 0 {
		want = want &^ key.ModShift
		have = have &^ key.ModShift
	}
	return want == have
}
