package keymap

import (
	"testing"

	"github.com/Gregoor/upcode/internal/engine/node"
	"github.com/Gregoor/upcode/internal/engine/path"
	"github.com/Gregoor/upcode/internal/input/key"
)

func runeEvent(r rune, mods key.Modifier) key.Event {
	return key.NewRuneEvent(r, mods)
}

func specialEvent(k key.Key, mods key.Modifier) key.Event {
	return key.NewSpecialEvent(k, mods)
}

func TestDefaultResolution(t *testing.T) {
	structural := node.Object()
	text := node.String("hi")
	numeric := node.Numeric("1")
	boolean := node.Boolean(true)
	decl := node.Declaration("let", node.Identifier("x"), node.Null())
	sel := path.Root()

	tests := []struct {
		name   string
		ev     key.Event
		n      *node.Node
		action string
		param  any
	}{
		{"arrow up", specialEvent(key.KeyUp, 0), structural, ActionSelectUp, nil},
		{"arrow right", specialEvent(key.KeyRight, 0), structural, ActionSelectRight, nil},
		{"alt arrow moves", specialEvent(key.KeyUp, key.ModAlt), structural, ActionMoveUp, nil},
		{"enter inserts", specialEvent(key.KeyEnter, 0), structural, ActionInsert, nil},
		{"esc selects up", specialEvent(key.KeyEscape, 0), structural, ActionSelectUp, nil},
		{"delete", specialEvent(key.KeyDelete, 0), structural, ActionDelete, nil},

		{"undo chord", runeEvent('z', key.ModCtrl), structural, ActionUndo, nil},
		{"undo chord while typing", runeEvent('z', key.ModCtrl), text, ActionUndo, nil},
		{"redo chord", runeEvent('y', key.ModCtrl), structural, ActionRedo, nil},
		{"redo shift chord", runeEvent('z', key.ModCtrl|key.ModShift), structural, ActionRedo, nil},

		{"t sets true on boolean", runeEvent('t', 0), boolean, ActionSetBool, true},
		{"f sets false on boolean", runeEvent('f', 0), boolean, ActionSetBool, false},
		{"t types into string", runeEvent('t', 0), text, ActionTextInput, nil},
		{"x types into string", runeEvent('x', 0), text, ActionTextInput, nil},
		{"x nulls elsewhere", runeEvent('x', 0), structural, ActionToNull, nil},

		{"plus increments numeric", runeEvent('+', 0), numeric, ActionAddNumber, float64(1)},
		{"minus decrements numeric", runeEvent('-', 0), numeric, ActionAddNumber, float64(-1)},

		{"quote converts", runeEvent('"', 0), structural, ActionToString, nil},
		{"hash converts", runeEvent('#', 0), structural, ActionToNumber, nil},
		{"bracket wraps", runeEvent('[', 0), structural, ActionToArray, nil},
		{"brace wraps", runeEvent('{', 0), structural, ActionToObject, nil},

		{"backspace while typing", specialEvent(key.KeyBackspace, 0), text, ActionTextBackspace, nil},
		{"backspace elsewhere deletes", specialEvent(key.KeyBackspace, 0), structural, ActionDelete, nil},

		{"decl kind let", runeEvent('l', 0), decl, ActionDeclKind, "let"},
		{"decl kind const", runeEvent('c', 0), decl, ActionDeclKind, "const"},

		{"copy", runeEvent('y', 0), structural, ActionCopy, nil},
		{"cut", runeEvent('d', 0), structural, ActionCut, nil},
		{"paste", runeEvent('p', 0), structural, ActionPaste, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := Default().Resolve(tt.ev, tt.n, sel)
			if !ok {
				t.Fatalf("Resolve(%v) found nothing", tt.ev)
			}
			if a.Name != tt.action {
				t.Errorf("action = %q, want %q", a.Name, tt.action)
			}
			if a.Param != tt.param {
				t.Errorf("param = %v, want %v", a.Param, tt.param)
			}
		})
	}
}

func TestDefaultUnmatched(t *testing.T) {
	tests := []struct {
		name string
		ev   key.Event
		n    *node.Node
	}{
		{"unbound rune", runeEvent('q', 0), node.Object()},
		{"shifted arrow", specialEvent(key.KeyUp, key.ModShift), node.Object()},
		{"decl key off a declaration", runeEvent('l', 0), node.Object()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if a, ok := Default().Resolve(tt.ev, tt.n, path.Root()); ok {
				t.Errorf("resolved %q, want no match", a.Name)
			}
		})
	}
}

func TestScalarFieldSelectionIsTextTarget(t *testing.T) {
	// The selection sits on a literal's text field: no node resolves,
	// but typing must still hit text input.
	sel := path.Parse("body.0.value")
	a, ok := Default().Resolve(runeEvent('t', 0), nil, sel)
	if !ok || a.Name != ActionTextInput {
		t.Errorf("resolved (%v, %v), want text input", a, ok)
	}

	a, ok = Default().Resolve(specialEvent(key.KeyBackspace, 0), nil, sel)
	if !ok || a.Name != ActionTextBackspace {
		t.Errorf("resolved (%v, %v), want text backspace", a, ok)
	}
}

func TestShiftDistinguishesControlChords(t *testing.T) {
	tests := []struct {
		mods key.Modifier
		want string
	}{
		{key.ModCtrl, ActionUndo},
		{key.ModCtrl | key.ModShift, ActionRedo},
	}
	for _, tt := range tests {
		a, ok := Default().Resolve(runeEvent('z', tt.mods), node.Object(), path.Root())
		if !ok || a.Name != tt.want {
			t.Errorf("z with %v resolved (%v, %v), want %q", tt.mods, a, ok, tt.want)
		}
	}
}

func TestShiftIgnoredOnRuneEvents(t *testing.T) {
	// Shift is part of the character; a pinned empty modifier set still
	// matches a shifted rune.
	a, ok := Default().Resolve(runeEvent('"', key.ModShift), node.Object(), path.Root())
	if !ok || a.Name != ActionToString {
		t.Errorf("resolved (%v, %v), want convert to string", a, ok)
	}
}

func TestPrependTakesPrecedence(t *testing.T) {
	table := Default()
	table.Prepend(Mapping{Keys: []string{"t"}, Action: "custom.t"})

	a, ok := table.Resolve(runeEvent('t', 0), node.Boolean(true), path.Root())
	if !ok || a.Name != "custom.t" {
		t.Errorf("resolved (%v, %v), want the prepended rule", a, ok)
	}
}

func TestNestedRulesResolveDepthFirst(t *testing.T) {
	table := NewTable(
		Mapping{Keys: []string{"g"}, Action: "outer", Mappings: []Mapping{
			{Keys: []string{"g"}, Modifiers: []string{"ctrl"}, Action: "inner"},
		}},
	)

	a, _ := table.Resolve(runeEvent('g', key.ModCtrl), nil, nil)
	if a.Name != "inner" {
		t.Errorf("chorded event resolved %q, want the nested rule", a.Name)
	}
	a, _ = table.Resolve(runeEvent('g', 0), nil, nil)
	if a.Name != "outer" {
		t.Errorf("plain event resolved %q, want the parent action", a.Name)
	}
}

func TestNilModifiersLeaveChordsUnconstrained(t *testing.T) {
	table := NewTable(Mapping{Keys: []string{"k"}, Action: "any"})
	for _, mods := range []key.Modifier{0, key.ModCtrl, key.ModAlt | key.ModShift} {
		if _, ok := table.Resolve(runeEvent('k', mods), nil, nil); !ok {
			t.Errorf("modifiers %v must match an unconstrained rule", mods)
		}
	}

	pinned := NewTable(Mapping{Keys: []string{"k"}, Modifiers: NoModifiers, Action: "bare"})
	if _, ok := pinned.Resolve(runeEvent('k', key.ModCtrl), nil, nil); ok {
		t.Error("NoModifiers rule must reject a chorded event")
	}
}
