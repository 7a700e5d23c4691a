package mutate

import (
	"github.com/Gregoor/upcode/internal/engine/node"
	"github.com/Gregoor/upcode/internal/engine/path"
)

// Insert places n into the closest enclosing collection: the selected
// node's own collection when it is an array or object, otherwise the
// nearest ancestor elements/properties collection. The node lands
// immediately after the selected element (at the head when no element
// is selected, at the tail when the selection is the end sentinel).
//
// Inserting into an object wraps n as a property with an empty-string
// key and selects that key; inserting into an array selects the new
// element. Without an enclosing collection the operation declines.
func Insert(tree *node.Node, sel path.Path, n *node.Node) (Result, bool) {
	collPath, index, ok := insertionPoint(tree, sel)
	if !ok {
		return Result{}, false
	}

	owner, ok := node.GetNode(tree, collPath.Parent())
	if !ok {
		return Result{}, false
	}

	elem := n
	var subSel path.Path
	if owner.Kind() == node.KindObject {
		elem = node.Property(node.String(""), n)
		subSel = path.New(path.Field(path.FieldKey))
	}

	newTree, ok := node.InsertAt(tree, collPath, index, elem)
	if !ok {
		return Result{}, false
	}
	newSel := collPath.Append(path.Index(index)).Concat(subSel)
	return Result{Tree: newTree, Sel: newSel}, true
}

// insertionPoint finds the collection path and index for an insert.
func insertionPoint(tree *node.Node, sel path.Path) (path.Path, int, bool) {
	// End sentinel: append after the last element of its collection.
	if sel.HasEnd() {
		collPath := sel.Parent()
		kids, ok := node.Collection(tree, collPath)
		if !ok {
			return nil, 0, false
		}
		return collPath, len(kids), true
	}

	// A selected array or object receives the insert itself, at the head.
	if n, ok := selectedNode(tree, sel); ok {
		switch n.Kind() {
		case node.KindArray:
			return sel.Append(path.Field(path.FieldElements)), 0, true
		case node.KindObject:
			return sel.Append(path.Field(path.FieldProperties)), 0, true
		}
	}

	// Otherwise insert after the selected element of the nearest
	// ancestor collection.
	k := sel.LastCollection()
	if k < 0 {
		return nil, 0, false
	}
	collPath := path.New(sel[:k+1]...)
	index := 0
	if k+1 < len(sel) && sel[k+1].Kind() == path.KindIndex {
		index = sel[k+1].Index() + 1
	}
	return collPath, index, true
}
