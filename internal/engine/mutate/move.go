package mutate

import (
	"github.com/Gregoor/upcode/internal/engine/node"
	"github.com/Gregoor/upcode/internal/engine/path"
	"github.com/Gregoor/upcode/internal/engine/selection"
)

// Move reorders the element at the nearest indexable ancestor of the
// selection relative to its sibling in the given direction. Three cases
// apply, in priority order:
//
//  1. When both the element and its target sibling are properties and
//     the sibling's value is an object, the element relocates into that
//     nested object (head when moving up, tail when moving down).
//  2. When there is no sibling in that direction and the enclosing
//     collection belongs to an object that is itself a property value,
//     the element moves out into the outer object, placed immediately
//     before (up) or after (down) the parent property.
//  3. Otherwise the element and its sibling swap positions.
//
// Any deeper sub-selection is preserved across the move. Only DirUp and
// DirDown are meaningful; everything else declines.
func Move(tree *node.Node, sel path.Path, dir selection.Direction) (Result, bool) {
	var delta int
	switch dir {
	case selection.DirUp:
		delta = -1
	case selection.DirDown:
		delta = +1
	default:
		return Result{}, false
	}

	if sel.HasEnd() {
		return Result{}, false
	}
	k := sel.LastIndex()
	if k < 0 {
		return Result{}, false
	}

	elemPath := path.New(sel[:k+1]...)
	collPath := path.New(sel[:k]...)
	subSel := path.New(sel[k+1:]...)
	i := sel[k].Index()

	kids, ok := node.Collection(tree, collPath)
	if !ok || i >= len(kids) {
		return Result{}, false
	}
	elem := kids[i]
	target := i + delta

	if target < 0 || target >= len(kids) {
		return moveAcrossBoundary(tree, elemPath, collPath, subSel, elem, delta)
	}

	if res, ok := moveIntoSibling(tree, elemPath, collPath, subSel, elem, kids[target], i, target, delta); ok {
		return res, true
	}

	return swapSiblings(tree, collPath, subSel, elem, kids[target], i, target)
}

// moveIntoSibling relocates a property into an adjacent property whose
// value is an object.
func moveIntoSibling(tree *node.Node, elemPath, collPath, subSel path.Path, elem, target *node.Node, i, targetIdx, delta int) (Result, bool) {
	if elem.Kind() != node.KindProperty || target.Kind() != node.KindProperty {
		return Result{}, false
	}
	nested := target.Value()
	if nested == nil || nested.Kind() != node.KindObject {
		return Result{}, false
	}

	removed, ok := node.RemoveAt(tree, elemPath)
	if !ok {
		return Result{}, false
	}

	adjTarget := targetIdx
	if targetIdx > i {
		adjTarget--
	}
	nestedColl := collPath.Append(
		path.Index(adjTarget),
		path.Field(path.FieldValue),
		path.Field(path.FieldProperties),
	)
	insertIdx := 0
	if delta > 0 {
		insertIdx = nested.Len()
	}

	newTree, ok := node.InsertAt(removed, nestedColl, insertIdx, elem)
	if !ok {
		return Result{}, false
	}
	newSel := nestedColl.Append(path.Index(insertIdx)).Concat(subSel)
	return Result{Tree: newTree, Sel: newSel}, true
}

// moveAcrossBoundary moves a property out of a nested object into the
// outer object's properties, next to the parent property. Anything
// other than a property inside an object-valued property declines.
func moveAcrossBoundary(tree *node.Node, elemPath, collPath, subSel path.Path, elem *node.Node, delta int) (Result, bool) {
	if elem.Kind() != node.KindProperty {
		return Result{}, false
	}
	if collPath.IsEmpty() || !collPath.Last().IsField(path.FieldProperties) {
		return Result{}, false
	}

	// The inner object must sit in the value slot of a property that
	// itself lives in an outer properties collection.
	objPath := collPath.Parent()
	if objPath.IsEmpty() || !objPath.Last().IsField(path.FieldValue) {
		return Result{}, false
	}
	propPath := objPath.Parent()
	if propPath.IsEmpty() || propPath.Last().Kind() != path.KindIndex {
		return Result{}, false
	}
	outerColl := propPath.Parent()
	if outerColl.IsEmpty() || !outerColl.Last().IsField(path.FieldProperties) {
		return Result{}, false
	}

	j := propPath.Last().Index()
	insertIdx := j
	if delta > 0 {
		insertIdx = j + 1
	}

	removed, ok := node.RemoveAt(tree, elemPath)
	if !ok {
		return Result{}, false
	}
	newTree, ok := node.InsertAt(removed, path.New(outerColl...), insertIdx, elem)
	if !ok {
		return Result{}, false
	}
	newSel := outerColl.Append(path.Index(insertIdx)).Concat(subSel)
	return Result{Tree: newTree, Sel: newSel}, true
}

// swapSiblings exchanges two adjacent elements of the same collection.
func swapSiblings(tree *node.Node, collPath, subSel path.Path, elem, target *node.Node, i, targetIdx int) (Result, bool) {
	t1, ok := node.Set(tree, collPath.Append(path.Index(i)), target)
	if !ok {
		return Result{}, false
	}
	t2, ok := node.Set(t1, collPath.Append(path.Index(targetIdx)), elem)
	if !ok {
		return Result{}, false
	}
	newSel := collPath.Append(path.Index(targetIdx)).Concat(subSel)
	return Result{Tree: t2, Sel: newSel}, true
}
