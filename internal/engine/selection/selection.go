// Package selection computes selection movement over a document tree.
//
// Navigation is a pure function of (tree, selected path, direction): it
// never mutates the tree, and a move with no valid target returns the
// selection unchanged.
package selection

import (
	"github.com/Gregoor/upcode/internal/engine/node"
	"github.com/Gregoor/upcode/internal/engine/path"
)

// Direction is a selection movement.
type Direction uint8

const (
	// DirUp exits to the enclosing entry.
	DirUp Direction = iota
	// DirDown enters the selected node.
	DirDown
	// DirLeft moves to the previous collection sibling.
	DirLeft
	// DirRight moves to the next collection sibling.
	DirRight
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Navigate returns the selection after moving in the given direction.
// Moves with no valid target return sel unchanged.
func Navigate(tree *node.Node, sel path.Path, dir Direction) path.Path {
	switch dir {
	case DirUp:
		return up(sel)
	case DirDown:
		return down(tree, sel)
	case DirLeft:
		return horizontal(tree, sel, -1)
	case DirRight:
		return horizontal(tree, sel, +1)
	}
	return sel
}

// up exits the nearest enclosing entry: a collection slot exits to the
// collection's owner, a field exits to the owning node. No-op at the
// root.
func up(sel path.Path) path.Path {
	if sel.IsEmpty() {
		return sel
	}
	last := sel.Last()
	if last.Kind() == path.KindIndex || last.Kind() == path.KindEnd {
		// Drop the index together with its collection field step.
		p := sel.Parent()
		if !p.IsEmpty() && p.Last().IsCollectionField() {
			return p.Parent()
		}
		return p
	}
	return sel.Parent()
}

// down enters the selected node: collections at slot 0 (or the end
// sentinel when empty), properties and declarations at their value.
// Editable leaves do not descend.
func down(tree *node.Node, sel path.Path) path.Path {
	if sel.HasEnd() {
		return sel
	}
	n, ok := node.GetNode(tree, sel)
	if !ok {
		return sel
	}
	switch n.Kind() {
	case node.KindArray:
		return enterCollection(sel, path.FieldElements, n.Len())
	case node.KindObject:
		return enterCollection(sel, path.FieldProperties, n.Len())
	case node.KindProgram:
		return enterCollection(sel, path.FieldBody, n.Len())
	case node.KindProperty, node.KindDeclaration:
		return sel.Append(path.Field(path.FieldValue))
	}
	return sel
}

func enterCollection(sel path.Path, field string, size int) path.Path {
	if size == 0 {
		return sel.Append(path.Field(field), path.End)
	}
	return sel.Append(path.Field(field), path.Index(0))
}

// horizontal moves to the previous or next slot of the nearest
// enclosing elements/properties collection. Any deeper sub-selection is
// dropped: the sibling element itself becomes selected. Moving right
// past the last element lands on the end sentinel; moving left from the
// sentinel lands on the last real element.
func horizontal(tree *node.Node, sel path.Path, delta int) path.Path {
	k := sel.LastCollection()
	if k < 0 || k+1 >= len(sel) {
		return sel
	}
	collPath := sel[:k+1]
	kids, ok := node.Collection(tree, collPath)
	if !ok {
		return sel
	}
	slot := sel[k+1]
	switch slot.Kind() {
	case path.KindEnd:
		if delta < 0 && len(kids) > 0 {
			return collPath.Append(path.Index(len(kids) - 1))
		}
		return sel
	case path.KindIndex:
		i := slot.Index() + delta
		switch {
		case i < 0:
			return sel
		case i >= len(kids):
			// Only one step past the end is meaningful.
			if slot.Index() == len(kids)-1 && delta > 0 {
				return collPath.Append(path.End)
			}
			return sel
		default:
			return collPath.Append(path.Index(i))
		}
	}
	return sel
}
