package mutate

import (
	"github.com/Gregoor/upcode/internal/engine/node"
	"github.com/Gregoor/upcode/internal/engine/path"
	"github.com/Gregoor/upcode/internal/engine/selection"
)

// Delete removes the element at the nearest indexable ancestor of the
// selection. Without one the whole document is replaced by a null
// literal and the selection resets to the root. Deleting at the end
// sentinel removes nothing: it clears the selection, or performs the
// root delete when nothing but the sentinel is selected.
//
// After an element removal the new selection re-resolves a valid
// neighbor: navigate up in the old tree, then down into the new one.
func Delete(tree *node.Node, sel path.Path) (Result, bool) {
	if sel.HasEnd() {
		if len(sel) == 1 {
			return Result{Tree: node.Null(), Sel: nil}, true
		}
		return Result{Tree: tree, Sel: nil}, true
	}

	k := sel.LastIndex()
	if k < 0 {
		return Result{Tree: node.Null(), Sel: nil}, true
	}

	elemPath := path.New(sel[:k+1]...)
	newTree, ok := node.RemoveAt(tree, elemPath)
	if !ok {
		return Result{}, false
	}

	upPath := selection.Navigate(tree, elemPath, selection.DirUp)
	newSel := selection.Navigate(newTree, upPath, selection.DirDown)
	return Result{Tree: newTree, Sel: newSel}, true
}
