// Package codec provides the default parse/generate pair the editor
// injects into the engine: JSON text to document tree and back.
//
// The engine treats both directions as opaque services; any other
// syntax could be plugged in without touching the core. Parsing is
// built on gjson, generation emits compact JSON and formats it with
// tidwall/pretty. Render additionally produces indented text together
// with the byte span of the current selection, which is what the
// terminal view highlights.
package codec
