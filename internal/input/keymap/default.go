package keymap

import (
	"github.com/Gregoor/upcode/internal/engine/node"
	"github.com/Gregoor/upcode/internal/engine/path"
)

// Action names understood by the dispatcher.
const (
	ActionSelectUp    = "select.up"
	ActionSelectDown  = "select.down"
	ActionSelectLeft  = "select.left"
	ActionSelectRight = "select.right"

	ActionMoveUp   = "edit.moveUp"
	ActionMoveDown = "edit.moveDown"
	ActionInsert   = "edit.insert"
	ActionDelete   = "edit.delete"

	ActionTextInput     = "text.input"
	ActionTextBackspace = "text.backspace"

	ActionToString = "convert.string"
	ActionToNumber = "convert.number"
	ActionToArray  = "convert.array"
	ActionToObject = "convert.object"
	ActionToNull   = "convert.null"

	ActionSetBool   = "bool.set"
	ActionAddNumber = "number.add"
	ActionDeclKind  = "decl.kind"

	ActionUndo = "history.undo"
	ActionRedo = "history.redo"

	ActionCopy  = "clipboard.copy"
	ActionCut   = "clipboard.cut"
	ActionPaste = "clipboard.paste"
)

// isTextTarget reports whether typing should edit text rather than run
// a structural command: the selection sits on an editable leaf, or on
// the text field of one.
func isTextTarget(n *node.Node, sel path.Path) bool {
	if n != nil {
		return n.IsEditableLeaf()
	}
	if len(sel) == 0 || sel.HasEnd() {
		return false
	}
	last := sel.Last()
	return last.IsField(path.FieldValue) || last.IsField(path.FieldName)
}

func isNumeric(n *node.Node, sel path.Path) bool {
	return n != nil && n.Kind() == node.KindNumeric
}

func isDeclaration(n *node.Node, sel path.Path) bool {
	return n != nil && n.Kind() == node.KindDeclaration
}

// Default returns the built-in keymap. User and Lua bindings are
// prepended onto it.
func Default() *Table {
	return NewTable(
		// History and clipboard chords work everywhere, including
		// while editing text.
		Mapping{Keys: []string{"z"}, Modifiers: []string{"ctrl"}, Action: ActionUndo},
		Mapping{Keys: []string{"y"}, Modifiers: []string{"ctrl"}, Action: ActionRedo},
		Mapping{Keys: []string{"z"}, Modifiers: []string{"ctrl", "shift"}, Action: ActionRedo},

		// Navigation and structural movement.
		Mapping{Keys: []string{"Up"}, Modifiers: NoModifiers, Action: ActionSelectUp},
		Mapping{Keys: []string{"Down"}, Modifiers: NoModifiers, Action: ActionSelectDown},
		Mapping{Keys: []string{"Left"}, Modifiers: NoModifiers, Action: ActionSelectLeft},
		Mapping{Keys: []string{"Right"}, Modifiers: NoModifiers, Action: ActionSelectRight},
		Mapping{Keys: []string{"Up"}, Modifiers: []string{"alt"}, Action: ActionMoveUp},
		Mapping{Keys: []string{"Down"}, Modifiers: []string{"alt"}, Action: ActionMoveDown},

		Mapping{Keys: []string{"Enter"}, Action: ActionInsert},
		Mapping{Keys: []string{"Esc"}, Action: ActionSelectUp},
		Mapping{Keys: []string{"Del"}, Modifiers: NoModifiers, Action: ActionDelete},

		// Increment and decrement beat text input on numeric leaves.
		Mapping{Keys: []string{"+"}, Test: isNumeric, Action: ActionAddNumber, Param: float64(1)},
		Mapping{Keys: []string{"-"}, Test: isNumeric, Action: ActionAddNumber, Param: float64(-1)},

		// While a leaf's text is the target, unchorded keys type into
		// it. The catch-all leaf makes this block terminal for any key
		// not claimed above.
		Mapping{Test: isTextTarget, Mappings: []Mapping{
			{Keys: []string{"BS"}, Modifiers: NoModifiers, Action: ActionTextBackspace},
			{Action: ActionTextInput},
		}},

		Mapping{Keys: []string{"BS"}, Modifiers: NoModifiers, Action: ActionDelete},

		// Structural single-key commands, reachable only when not
		// editing text.
		Mapping{Keys: []string{`"`}, Action: ActionToString},
		Mapping{Keys: []string{"#"}, Action: ActionToNumber},
		Mapping{Keys: []string{"["}, Action: ActionToArray},
		Mapping{Keys: []string{"{"}, Action: ActionToObject},
		Mapping{Keys: []string{"x"}, Action: ActionToNull},
		Mapping{Keys: []string{"t"}, Action: ActionSetBool, Param: true},
		Mapping{Keys: []string{"f"}, Action: ActionSetBool, Param: false},

		Mapping{Test: isDeclaration, Mappings: []Mapping{
			{Keys: []string{"c"}, Action: ActionDeclKind, Param: "const"},
			{Keys: []string{"l"}, Action: ActionDeclKind, Param: "let"},
			{Keys: []string{"v"}, Action: ActionDeclKind, Param: "var"},
		}},

		Mapping{Keys: []string{"y"}, Modifiers: NoModifiers, Action: ActionCopy},
		Mapping{Keys: []string{"d"}, Modifiers: NoModifiers, Action: ActionCut},
		Mapping{Keys: []string{"p"}, Modifiers: NoModifiers, Action: ActionPaste},
	)
}
