// Package node provides the document tree for the structural editor.
//
// A document is an immutable tree of tagged nodes: literals, identifiers,
// arrays, objects, object properties, declarations and the program root.
// Nodes are never modified in place. The tree store operations (Get, Set,
// Update, Delete, InsertAt, RemoveAt) return new trees that share every
// subtree the operation did not touch, so snapshots held by the history
// manager stay cheap.
//
// Identity is structural: Equal compares trees by value, which is what the
// history manager uses to suppress edits that change nothing.
package node
