// Package engine provides the core structural editing engine for upcode.
//
// The engine is the facade over the sub-packages:
//
//   - node: immutable document tree with persistent get/set/update/delete
//   - path: typed selection paths (field, index, end-sentinel steps)
//   - selection: directional selection movement
//   - mutate: insert/delete/move/replace/convert transformations
//   - history: bounded undo and redo stacks of (tree, selection) snapshots
//
// Every editing operation flows through a single commit pipeline: the
// mutation runs against the current snapshot, the result is compared by
// value against it, and only a real change is recorded and undoable.
// Operations that decline at a boundary (moving past the first element,
// inserting with no enclosing collection) record nothing and fire no
// notification.
//
// The engine does not own any concrete syntax. It consumes a parse
// function (document text to tree) and a generate function (tree to
// text) and treats both as opaque; the codec package provides the JSON
// pair used by the editor.
//
// All methods are safe for concurrent use, although the editor drives
// the engine from a single event loop.
package engine
