package engine

import (
	"fmt"
	"log"
	"sync"

	"github.com/Gregoor/upcode/internal/engine/history"
	"github.com/Gregoor/upcode/internal/engine/mutate"
	"github.com/Gregoor/upcode/internal/engine/node"
	"github.com/Gregoor/upcode/internal/engine/path"
	"github.com/Gregoor/upcode/internal/engine/selection"
)

// Re-export commonly used types for convenience.
type (
	// Direction is a selection or move direction.
	Direction = selection.Direction

	// EditorState is a (tree, selection) snapshot.
	EditorState = history.EditorState
)

// Re-export directions.
const (
	DirUp    = selection.DirUp
	DirDown  = selection.DirDown
	DirLeft  = selection.DirLeft
	DirRight = selection.DirRight
)

// ParseFunc converts document text into a tree. The engine treats it as
// an opaque external service.
type ParseFunc func(text string) (*node.Node, error)

// GenerateFunc renders a tree as document text.
type GenerateFunc func(n *node.Node) string

// ChangeFunc receives the generated document text once per committed
// tree-changing edit. Selection-only changes never fire it.
type ChangeFunc func(text string)

// Engine is the structural editing engine: it owns the history of
// (tree, selection) snapshots and exposes every structural command as a
// method that commits through it.
type Engine struct {
	mu sync.Mutex

	hist     *history.History
	parse    ParseFunc
	generate GenerateFunc
	onChange ChangeFunc

	maxHistory int
	readOnly   bool
}

// New builds an engine for the given document text. The text is parsed
// once and rooted in a program body; the initial selection is the first
// body slot.
func New(text string, parse ParseFunc, generate GenerateFunc, opts ...Option) (*Engine, error) {
	e := &Engine{
		parse:      parse,
		generate:   generate,
		maxHistory: history.DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.parse == nil {
		return nil, ErrNoParser
	}

	root, err := e.parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	initial := history.EditorState{
		Tree: node.Program(root),
		Sel:  path.Root(),
	}
	e.hist = history.New(initial, e.maxHistory)
	return e, nil
}

// State returns the current (tree, selection) snapshot.
func (e *Engine) State() EditorState {
	return e.hist.Head()
}

// Tree returns the current document tree.
func (e *Engine) Tree() *node.Node {
	return e.hist.Head().Tree
}

// Selection returns the current selection path.
func (e *Engine) Selection() path.Path {
	return e.hist.Head().Sel
}

// SelectedNode resolves the selection to a node when it addresses one.
func (e *Engine) SelectedNode() (*node.Node, bool) {
	s := e.hist.Head()
	if s.Sel.HasEnd() {
		return nil, false
	}
	return node.GetNode(s.Tree, s.Sel)
}

// Text returns the generated rendering of the current tree.
func (e *Engine) Text() string {
	return e.generate(e.hist.Head().Tree)
}

// IsReadOnly reports whether mutations are rejected.
func (e *Engine) IsReadOnly() bool {
	return e.readOnly
}

// commit funnels a mutation through the history manager and fires the
// change notification when the tree changed.
func (e *Engine) commit(op func(tree *node.Node, sel path.Path) (mutate.Result, bool)) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return false
	}
	return e.commitLocked(op)
}

// commitSelection records a pure selection movement. Read-only mode
// still allows these; only the tree is protected.
func (e *Engine) commitSelection(op func(tree *node.Node, sel path.Path) (mutate.Result, bool)) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.commitLocked(op)
}

func (e *Engine) commitLocked(op func(tree *node.Node, sel path.Path) (mutate.Result, bool)) bool {
	res := e.hist.Commit(func(tree *node.Node, sel path.Path) (*node.Node, path.Path, bool) {
		r, ok := op(tree, sel)
		if !ok {
			return nil, nil, false
		}
		return r.Tree, r.Sel, true
	})
	if res.TreeChanged {
		e.notify()
	}
	return res.Applied
}

func (e *Engine) notify() {
	if e.onChange != nil {
		e.onChange(e.generate(e.hist.Head().Tree))
	}
}

// Navigate moves the selection. The movement is recorded in history
// like any other commit but never fires the change notification.
func (e *Engine) Navigate(dir Direction) bool {
	return e.commitSelection(func(tree *node.Node, sel path.Path) (mutate.Result, bool) {
		return mutate.Navigate(tree, sel, dir)
	})
}

// Select jumps the selection to an absolute path. A path that resolves
// to nothing falls back to the empty selection, so the recorded state
// always holds a valid selection.
func (e *Engine) Select(sel path.Path) bool {
	return e.commitSelection(func(tree *node.Node, old path.Path) (mutate.Result, bool) {
		resolved := history.ResolveSelection(tree, sel)
		if resolved.Equal(old) {
			return mutate.Result{}, false
		}
		return mutate.Result{Tree: tree, Sel: resolved}, true
	})
}

// Insert places n into the closest enclosing collection.
func (e *Engine) Insert(n *node.Node) bool {
	return e.commit(func(tree *node.Node, sel path.Path) (mutate.Result, bool) {
		return mutate.Insert(tree, sel, n)
	})
}

// Delete removes the selected element, or resets the document to null
// when the whole document is selected.
func (e *Engine) Delete() bool {
	return e.commit(mutate.Delete)
}

// Move reorders the selected element relative to its sibling.
func (e *Engine) Move(dir Direction) bool {
	return e.commit(func(tree *node.Node, sel path.Path) (mutate.Result, bool) {
		return mutate.Move(tree, sel, dir)
	})
}

// Replace sets the selected node, then appends subSel to the selection.
func (e *Engine) Replace(n *node.Node, subSel path.Path) bool {
	return e.commit(func(tree *node.Node, sel path.Path) (mutate.Result, bool) {
		return mutate.Replace(tree, sel, n, subSel)
	})
}

// UpdateValue applies fn to the editable text under the selection.
func (e *Engine) UpdateValue(fn func(string) string) bool {
	return e.commit(func(tree *node.Node, sel path.Path) (mutate.Result, bool) {
		return mutate.UpdateValue(tree, sel, fn)
	})
}

// SetBoolean replaces the selected node with a boolean literal.
func (e *Engine) SetBoolean(v bool) bool {
	return e.commit(func(tree *node.Node, sel path.Path) (mutate.Result, bool) {
		return mutate.SetBoolean(tree, sel, v)
	})
}

// AddToNumber adds delta to the selected numeric value.
func (e *Engine) AddToNumber(delta float64) bool {
	return e.commit(func(tree *node.Node, sel path.Path) (mutate.Result, bool) {
		return mutate.AddToNumber(tree, sel, delta)
	})
}

// ToString converts the selected node to a string literal.
func (e *Engine) ToString() bool {
	return e.commit(mutate.ToString)
}

// ToNumber converts the selected node to a numeric literal.
func (e *Engine) ToNumber() bool {
	return e.commit(mutate.ToNumber)
}

// ToArray wraps the selected node as the sole element of an array.
func (e *Engine) ToArray() bool {
	return e.commit(mutate.ToArray)
}

// ToObject wraps the selected node as a single object property.
func (e *Engine) ToObject() bool {
	return e.commit(mutate.ToObject)
}

// ToNull replaces the selected node with the null literal.
func (e *Engine) ToNull() bool {
	return e.commit(mutate.ToNull)
}

// BeginNumber coerces the selected node to a numeric literal holding a
// single typed digit and selects its value field.
func (e *Engine) BeginNumber(digit rune) bool {
	return e.commit(func(tree *node.Node, sel path.Path) (mutate.Result, bool) {
		return mutate.BeginNumber(tree, sel, digit)
	})
}

// ChangeDeclarationKind sets the kind keyword of the selected declaration.
func (e *Engine) ChangeDeclarationKind(kind string) bool {
	return e.commit(func(tree *node.Node, sel path.Path) (mutate.Result, bool) {
		return mutate.ChangeDeclarationKind(tree, sel, kind)
	})
}

// Undo restores the previous snapshot. It fires the change notification
// when the restored tree differs from the current one.
func (e *Engine) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return false
	}
	before := e.hist.Head()
	s, ok := e.hist.Undo()
	if !ok {
		return false
	}
	if !node.Equal(before.Tree, s.Tree) {
		e.notify()
	}
	return true
}

// Redo re-applies the most recently undone snapshot.
func (e *Engine) Redo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return false
	}
	before := e.hist.Head()
	s, ok := e.hist.Redo()
	if !ok {
		return false
	}
	if !node.Equal(before.Tree, s.Tree) {
		e.notify()
	}
	return true
}

// CanUndo reports whether undo is available.
func (e *Engine) CanUndo() bool { return e.hist.CanUndo() }

// CanRedo reports whether redo is available.
func (e *Engine) CanRedo() bool { return e.hist.CanRedo() }

// HistoryLen returns the undo stack length, current state included.
func (e *Engine) HistoryLen() int { return e.hist.Len() }

// effectiveSelection backs an end-sentinel selection off to its
// enclosing element: the sentinel addresses no node, so clipboard
// operations act on the collection it belongs to.
func effectiveSelection(sel path.Path) path.Path {
	if sel.HasEnd() && len(sel) >= 2 {
		return sel[:len(sel)-2]
	}
	return sel
}

// Copy renders the subtree at the effective selection. Editable leaf
// selections are excluded; the caller falls back to plain text
// selection behavior for those.
func (e *Engine) Copy() (string, bool) {
	s := e.hist.Head()
	eff := effectiveSelection(s.Sel)
	n, ok := node.GetNode(s.Tree, eff)
	if !ok || n.IsEditableLeaf() {
		return "", false
	}
	return e.generate(n), true
}

// Cut copies the selected node and deletes it. Unlike Copy it declines
// at the end sentinel: deleting there would clear the selection without
// removing what was copied.
func (e *Engine) Cut() (string, bool) {
	if e.hist.Head().Sel.HasEnd() {
		return "", false
	}
	text, ok := e.Copy()
	if !ok {
		return "", false
	}
	if !e.Delete() {
		return "", false
	}
	return text, true
}

// Paste parses clipboard text and inserts the resulting node. A parse
// failure aborts without touching state.
func (e *Engine) Paste(text string) bool {
	n, err := e.parse(text)
	if err != nil {
		log.Printf("paste: discarding unparseable clipboard text: %v", err)
		return false
	}
	return e.Insert(n)
}
