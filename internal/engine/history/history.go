// Package history maintains the undo/redo stacks of editor states.
//
// Each recorded entry is a full (tree, selection) snapshot; snapshots
// are cheap because the tree store shares structure between versions.
// The undo stack is bounded (oldest entries age out past the cap) and
// the redo stack grows only through undo, shrinking through redo and
// clearing whenever a fresh edit commits.
package history

import (
	"sync"

	"github.com/Gregoor/upcode/internal/engine/node"
	"github.com/Gregoor/upcode/internal/engine/path"
)

// DefaultMaxEntries caps the undo stack.
const DefaultMaxEntries = 100

// EditorState is an immutable (tree, selection) snapshot.
type EditorState struct {
	Tree *node.Node
	Sel  path.Path
}

// UpdateFunc transforms the current state into a new one. Returning
// false declines the edit entirely; nothing is recorded.
type UpdateFunc func(tree *node.Node, sel path.Path) (*node.Node, path.Path, bool)

// CommitResult describes what a commit recorded.
type CommitResult struct {
	// Applied is true when a new entry was pushed.
	Applied bool

	// TreeChanged is true when the document tree differs from the
	// previous entry; this is what gates the change notification.
	TreeChanged bool

	// SelectionChanged is true when the selection differs.
	SelectionChanged bool
}

// History holds the bounded undo stack and the redo stack. The undo
// stack always contains at least the current state at its head.
type History struct {
	mu sync.Mutex

	states []EditorState // head first
	future []EditorState // head first

	maxEntries int
}

// New creates a history seeded with the initial state.
func New(initial EditorState, maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		states:     []EditorState{initial},
		maxEntries: maxEntries,
	}
}

// Head returns the current state.
func (h *History) Head() EditorState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.states[0]
}

// Commit runs update against the current state and records the result
// when it changed anything. Before the update runs, a numeric literal
// left in partial text form by the previous selection is re-normalized,
// and a selection that no longer resolves falls back to the empty path
// (end-sentinel selections stay put as long as their collection
// exists).
func (h *History) Commit(update UpdateFunc) CommitResult {
	h.mu.Lock()
	defer h.mu.Unlock()

	head := h.states[0]
	tree := node.NormalizeNumberAt(head.Tree, head.Sel)
	sel := ResolveSelection(tree, head.Sel)

	newTree, newSel, ok := update(tree, sel)
	if !ok {
		return CommitResult{}
	}
	if newTree == nil {
		newTree = tree
	}

	treeChanged := !node.Equal(newTree, head.Tree)
	selChanged := !newSel.Equal(head.Sel)
	if !treeChanged && !selChanged {
		return CommitResult{}
	}

	h.push(EditorState{Tree: newTree, Sel: newSel})
	return CommitResult{
		Applied:          true,
		TreeChanged:      treeChanged,
		SelectionChanged: selChanged,
	}
}

// push records a new head, clears the redo stack and enforces the cap.
func (h *History) push(s EditorState) {
	states := make([]EditorState, 0, len(h.states)+1)
	states = append(states, s)
	states = append(states, h.states...)
	if len(states) > h.maxEntries {
		states = states[:h.maxEntries]
	}
	h.states = states
	h.future = nil
}

// Undo moves the current head onto the redo stack and exposes the
// next-older entry. It declines when only one entry remains.
func (h *History) Undo() (EditorState, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.states) <= 1 {
		return EditorState{}, false
	}
	head := h.states[0]
	h.states = h.states[1:]
	h.future = append([]EditorState{head}, h.future...)
	return h.states[0], true
}

// Redo re-applies the most recently undone entry. It declines when the
// redo stack is empty.
func (h *History) Redo() (EditorState, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.future) == 0 {
		return EditorState{}, false
	}
	s := h.future[0]
	h.future = h.future[1:]
	h.states = append([]EditorState{s}, h.states...)
	return s, true
}

// CanUndo reports whether an older entry exists.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.states) > 1
}

// CanRedo reports whether an undone entry can be re-applied.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.future) > 0
}

// Len returns the undo stack length, current state included.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.states)
}

// FutureLen returns the redo stack length.
func (h *History) FutureLen() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.future)
}

// Oldest returns the oldest retained state.
func (h *History) Oldest() EditorState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.states[len(h.states)-1]
}

// ResolveSelection falls back to the empty path when the selection does
// not resolve against the tree: a node selection must address an
// existing node, an end-sentinel selection an existing collection.
// Commit applies it to the head state; callers accepting external paths
// (session restore, scripted jumps) apply it to those too.
func ResolveSelection(tree *node.Node, sel path.Path) path.Path {
	if sel.IsEmpty() {
		return sel
	}
	if sel.HasEnd() {
		if _, ok := node.Collection(tree, sel.Parent()); ok {
			return sel
		}
		return nil
	}
	if _, ok := node.Get(tree, sel); ok {
		return sel
	}
	return nil
}
