package mutate

import (
	"github.com/Gregoor/upcode/internal/engine/node"
	"github.com/Gregoor/upcode/internal/engine/path"
)

// Replace sets the node at the selection and appends subSel to the
// selection path, so conversions can land inside the new node (an
// object conversion selecting the fresh key, for instance). An empty
// selection replaces the whole tree.
func Replace(tree *node.Node, sel path.Path, n *node.Node, subSel path.Path) (Result, bool) {
	if sel.IsEmpty() {
		return Result{Tree: n, Sel: path.New(subSel...)}, true
	}
	if sel.HasEnd() {
		return Result{}, false
	}
	newTree, ok := node.Set(tree, sel, n)
	if !ok {
		return Result{}, false
	}
	return Result{Tree: newTree, Sel: sel.Concat(subSel)}, true
}

// UpdateValue applies fn to the editable text under the selection: the
// scalar field itself when selected, otherwise the selected leaf's own
// text field. The selection is unchanged.
func UpdateValue(tree *node.Node, sel path.Path, fn func(string) string) (Result, bool) {
	target := sel
	if n, ok := selectedNode(tree, sel); ok {
		switch n.Kind() {
		case node.KindNumeric, node.KindString:
			target = sel.Append(path.Field(path.FieldValue))
		case node.KindIdentifier:
			target = sel.Append(path.Field(path.FieldName))
		default:
			return Result{}, false
		}
	}
	newTree, ok := node.UpdateText(tree, target, fn)
	if !ok {
		return Result{}, false
	}
	return Result{Tree: newTree, Sel: sel}, true
}
