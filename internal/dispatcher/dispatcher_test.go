package dispatcher

import (
	"testing"

	"github.com/Gregoor/upcode/internal/codec"
	"github.com/Gregoor/upcode/internal/engine"
	"github.com/Gregoor/upcode/internal/engine/node"
	"github.com/Gregoor/upcode/internal/engine/path"
	"github.com/Gregoor/upcode/internal/input/key"
	"github.com/Gregoor/upcode/internal/input/keymap"
)

func newFixture(t *testing.T, text string) (*Dispatcher, *engine.Engine) {
	t.Helper()
	eng, err := engine.New(text, codec.Parse, codec.Generate)
	if err != nil {
		t.Fatal(err)
	}
	return New(eng, keymap.Default()), eng
}

func TestDigitOnNullStartsNumber(t *testing.T) {
	d, eng := newFixture(t, `null`)

	if !d.HandleKey(key.NewRuneEvent('5', 0)) {
		t.Fatal("digit on a null literal must apply")
	}
	n, _ := node.GetNode(eng.Tree(), path.Root())
	if n.Kind() != node.KindNumeric || n.Text() != "5" {
		t.Errorf("document = (%v, %q), want the numeral 5", n.Kind(), n.Text())
	}
	if got := eng.Selection().String(); got != "body.0.value" {
		t.Errorf("selection = %q, want the value field", got)
	}

	// Further digits append through ordinary text input.
	if !d.HandleKey(key.NewRuneEvent('2', 0)) {
		t.Fatal("second digit declined")
	}
	n, _ = node.GetNode(eng.Tree(), path.Root())
	if n.Text() != "52" {
		t.Errorf("document = %q, want \"52\"", n.Text())
	}
}

func TestDigitElsewhereUsesKeymap(t *testing.T) {
	d, eng := newFixture(t, `{}`)
	if d.HandleKey(key.NewRuneEvent('5', 0)) {
		t.Error("digit on an object must not start a numeral")
	}
	n, _ := node.GetNode(eng.Tree(), path.Root())
	if n.Kind() != node.KindObject {
		t.Errorf("document changed to %v", n.Kind())
	}
}

func TestHandleKeyRoutesNavigation(t *testing.T) {
	d, eng := newFixture(t, `[1]`)
	if !d.HandleKey(key.NewSpecialEvent(key.KeyDown, 0)) {
		t.Fatal("down arrow declined")
	}
	if got := eng.Selection().String(); got != "body.0.elements.0" {
		t.Errorf("selection = %q", got)
	}
}

func TestHandleKeyUnmatchedEvent(t *testing.T) {
	d, _ := newFixture(t, `{}`)
	if d.HandleKey(key.NewRuneEvent('q', 0)) {
		t.Error("unbound key must report no change")
	}
}

func TestDispatchUnknownAction(t *testing.T) {
	d, _ := newFixture(t, `null`)
	if d.Dispatch(keymap.Action{Name: "no.such.action"}, key.Event{}) {
		t.Error("unknown action must be ignored")
	}
}

func TestRegisterOverridesHandler(t *testing.T) {
	d, _ := newFixture(t, `null`)

	var got any
	d.Register("custom.ping", func(param any, _ key.Event) bool {
		got = param
		return true
	})
	if !d.Has("custom.ping") {
		t.Fatal("registered handler missing")
	}
	if !d.Dispatch(keymap.Action{Name: "custom.ping", Param: 7}, key.Event{}) {
		t.Fatal("dispatch declined")
	}
	if got != 7 {
		t.Errorf("handler saw param %v, want 7", got)
	}
}

func TestTextInputAndBackspace(t *testing.T) {
	d, eng := newFixture(t, `["ab"]`)
	d.HandleKey(key.NewSpecialEvent(key.KeyDown, 0)) // onto the string

	if !d.HandleKey(key.NewRuneEvent('c', 0)) {
		t.Fatal("typing declined")
	}
	n, _ := eng.SelectedNode()
	if n.Text() != "abc" {
		t.Errorf("text = %q, want \"abc\"", n.Text())
	}

	if !d.HandleKey(key.NewSpecialEvent(key.KeyBackspace, 0)) {
		t.Fatal("backspace declined")
	}
	n, _ = eng.SelectedNode()
	if n.Text() != "ab" {
		t.Errorf("text = %q, want \"ab\"", n.Text())
	}
}

func TestClipboardFlow(t *testing.T) {
	d, eng := newFixture(t, `[true, 2]`)
	d.HandleKey(key.NewSpecialEvent(key.KeyDown, 0)) // select true

	if !d.HandleKey(key.NewRuneEvent('y', 0)) {
		t.Fatal("copy declined")
	}
	if d.Clipboard() != "true" {
		t.Fatalf("clipboard = %q after copy", d.Clipboard())
	}

	// Paste duplicates the copied value right after the selection.
	if !d.HandleKey(key.NewRuneEvent('p', 0)) {
		t.Fatal("paste declined")
	}
	arr, _ := node.GetNode(eng.Tree(), path.Root())
	if arr.Len() != 3 {
		t.Fatalf("array has %d elements, want 3", arr.Len())
	}
	if arr.Children()[1].Kind() != node.KindBoolean {
		t.Error("pasted element must follow the selection")
	}
}

func TestCutFillsClipboardAndRemoves(t *testing.T) {
	d, eng := newFixture(t, `[[1], 2]`)
	d.HandleKey(key.NewSpecialEvent(key.KeyDown, 0))

	if !d.HandleKey(key.NewRuneEvent('d', 0)) {
		t.Fatal("cut declined")
	}
	if d.Clipboard() == "" {
		t.Error("clipboard empty after cut")
	}
	arr, _ := node.GetNode(eng.Tree(), path.Root())
	if arr.Len() != 1 {
		t.Errorf("outer array has %d elements, want 1", arr.Len())
	}
}

func TestPasteWithEmptyClipboardDeclines(t *testing.T) {
	d, _ := newFixture(t, `[1]`)
	if d.HandleKey(key.NewRuneEvent('p', 0)) {
		t.Error("paste with an empty clipboard must decline")
	}
}

func TestUndoChord(t *testing.T) {
	d, eng := newFixture(t, `[]`)
	d.HandleKey(key.NewSpecialEvent(key.KeyDown, 0))
	d.HandleKey(key.NewSpecialEvent(key.KeyEnter, 0)) // insert null

	arr, _ := node.GetNode(eng.Tree(), path.Root())
	if arr.Len() != 1 {
		t.Fatalf("insert missing: %d elements", arr.Len())
	}

	if !d.HandleKey(key.NewRuneEvent('z', key.ModCtrl)) {
		t.Fatal("undo chord declined")
	}
	arr, _ = node.GetNode(eng.Tree(), path.Root())
	if arr.Len() != 0 {
		t.Error("undo must remove the inserted element")
	}
}

func TestToFloat(t *testing.T) {
	if v, ok := toFloat(float64(1.5)); !ok || v != 1.5 {
		t.Errorf("toFloat(1.5) = (%v, %v)", v, ok)
	}
	if v, ok := toFloat(3); !ok || v != 3 {
		t.Errorf("toFloat(3) = (%v, %v)", v, ok)
	}
	if _, ok := toFloat("x"); ok {
		t.Error("strings must not widen")
	}
}
