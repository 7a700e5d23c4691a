package mutate

import (
	"math"
	"strconv"
	"strings"

	"github.com/Gregoor/upcode/internal/engine/node"
	"github.com/Gregoor/upcode/internal/engine/path"
	"github.com/Gregoor/upcode/internal/engine/selection"
)

// SetBoolean replaces the selected node with a boolean literal.
func SetBoolean(tree *node.Node, sel path.Path, v bool) (Result, bool) {
	return Replace(tree, sel, node.Boolean(v), nil)
}

// ToNull replaces the selected node with the null literal.
func ToNull(tree *node.Node, sel path.Path) (Result, bool) {
	return Replace(tree, sel, node.Null(), nil)
}

// ToString converts the selected node to a string literal, carrying
// over its scalar text.
func ToString(tree *node.Node, sel path.Path) (Result, bool) {
	n, ok := selectedNode(tree, sel)
	if !ok {
		return Result{}, false
	}
	return Replace(tree, sel, node.String(scalarText(n)), nil)
}

// ToNumber converts the selected node to a numeric literal. Text that
// does not parse as a number becomes 0.
func ToNumber(tree *node.Node, sel path.Path) (Result, bool) {
	n, ok := selectedNode(tree, sel)
	if !ok {
		return Result{}, false
	}
	return Replace(tree, sel, node.Numeric(node.CanonicalNumber(scalarText(n))), nil)
}

// ToArray wraps the selected node as the sole element of a new array.
func ToArray(tree *node.Node, sel path.Path) (Result, bool) {
	n, ok := selectedNode(tree, sel)
	if !ok {
		return Result{}, false
	}
	return Replace(tree, sel, node.Array(n), nil)
}

// ToObject wraps the selected node as the value of a single
// empty-keyed property, selecting that key.
func ToObject(tree *node.Node, sel path.Path) (Result, bool) {
	n, ok := selectedNode(tree, sel)
	if !ok {
		return Result{}, false
	}
	obj := node.Object(node.Property(node.String(""), n))
	sub := path.New(
		path.Field(path.FieldProperties),
		path.Index(0),
		path.Field(path.FieldKey),
	)
	return Replace(tree, sel, obj, sub)
}

// BeginNumber replaces the selected node with a numeric literal holding
// a single typed digit, selecting its value field for further text
// input. This backs the direct digit shortcut on null literals.
func BeginNumber(tree *node.Node, sel path.Path, digit rune) (Result, bool) {
	if digit < '0' || digit > '9' {
		return Result{}, false
	}
	sub := path.New(path.Field(path.FieldValue))
	return Replace(tree, sel, node.Numeric(string(digit)), sub)
}

// AddToNumber adds delta to the selected numeric value and
// re-stringifies it. Works both on a selected numeric literal and on
// its selected value field; unparseable text counts as 0.
func AddToNumber(tree *node.Node, sel path.Path, delta float64) (Result, bool) {
	text, atField, ok := numericText(tree, sel)
	if !ok {
		return Result{}, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	out := node.CanonicalNumber(strconv.FormatFloat(f+delta, 'g', -1, 64))
	if atField {
		newTree, ok := node.SetText(tree, sel, out)
		if !ok {
			return Result{}, false
		}
		return Result{Tree: newTree, Sel: sel}, true
	}
	return Replace(tree, sel, node.Numeric(out), nil)
}

// numericText resolves the numeric text under the selection and whether
// the selection addresses the value field rather than the literal.
func numericText(tree *node.Node, sel path.Path) (string, bool, bool) {
	if sel.HasEnd() {
		return "", false, false
	}
	v, ok := node.Get(tree, sel)
	if !ok {
		return "", false, false
	}
	if t, isText := v.Text(); isText {
		return t, true, true
	}
	if n, isNode := v.Node(); isNode && n.Kind() == node.KindNumeric {
		return n.Text(), false, true
	}
	return "", false, false
}

// ChangeDeclarationKind sets the kind keyword of the selected
// declaration. Declines on any other node.
func ChangeDeclarationKind(tree *node.Node, sel path.Path, kind string) (Result, bool) {
	n, ok := selectedNode(tree, sel)
	if !ok || n.Kind() != node.KindDeclaration {
		return Result{}, false
	}
	newTree, ok := node.SetText(tree, sel.Append(path.Field(path.FieldKind)), kind)
	if !ok {
		return Result{}, false
	}
	return Result{Tree: newTree, Sel: sel}, true
}

// Navigate commits a pure selection movement as a mutation result so it
// flows through the same history pipeline as structural edits.
func Navigate(tree *node.Node, sel path.Path, dir selection.Direction) (Result, bool) {
	newSel := selection.Navigate(tree, sel, dir)
	if newSel.Equal(sel) {
		return Result{}, false
	}
	return Result{Tree: tree, Sel: newSel}, true
}
