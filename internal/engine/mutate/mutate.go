// Package mutate implements the structural transformations of the
// editor: insert, delete, move, replace and type conversion.
//
// Every operation is a pure function over (tree, selection) returning a
// new Result and an applied flag. A false flag means the operation
// declined to act (boundary condition, unresolvable selection); it is
// distinct from producing an equal state, which the history manager
// detects separately. No operation ever returns a tree/selection pair
// that violates the selection-validity invariant.
package mutate

import (
	"github.com/Gregoor/upcode/internal/engine/node"
	"github.com/Gregoor/upcode/internal/engine/path"
)

// Result is the outcome of an applied mutation.
type Result struct {
	// Tree is the new document tree.
	Tree *node.Node

	// Sel is the new selection.
	Sel path.Path
}

// selectedNode resolves the selection to a node, ignoring scalar-field
// and sentinel selections.
func selectedNode(tree *node.Node, sel path.Path) (*node.Node, bool) {
	if sel.HasEnd() {
		return nil, false
	}
	return node.GetNode(tree, sel)
}

// scalarText returns the carried-over text when converting a node to
// another scalar kind. Collections and non-textual literals carry
// nothing.
func scalarText(n *node.Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind() {
	case node.KindNumeric, node.KindString, node.KindIdentifier:
		return n.Text()
	}
	return ""
}
