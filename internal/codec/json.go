package codec

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/Gregoor/upcode/internal/engine/node"
)

// ErrInvalidJSON indicates input that does not parse as a JSON value.
var ErrInvalidJSON = errors.New("invalid JSON")

// Parse converts JSON text into a document tree.
func Parse(text string) (*node.Node, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return node.Null(), nil
	}
	if !gjson.Valid(trimmed) {
		return nil, ErrInvalidJSON
	}
	return fromResult(gjson.Parse(trimmed)), nil
}

// fromResult maps a gjson value onto the node union. Numbers keep
// their raw source text so formatting like "1e3" survives a round
// trip until the literal is edited.
func fromResult(r gjson.Result) *node.Node {
	switch r.Type {
	case gjson.Null:
		return node.Null()
	case gjson.True:
		return node.Boolean(true)
	case gjson.False:
		return node.Boolean(false)
	case gjson.Number:
		return node.Numeric(r.Raw)
	case gjson.String:
		return node.String(r.Str)
	}
	if r.IsArray() {
		var elems []*node.Node
		r.ForEach(func(_, v gjson.Result) bool {
			elems = append(elems, fromResult(v))
			return true
		})
		return node.Array(elems...)
	}
	if r.IsObject() {
		var props []*node.Node
		r.ForEach(func(k, v gjson.Result) bool {
			props = append(props, node.Property(node.String(k.Str), fromResult(v)))
			return true
		})
		return node.Object(props...)
	}
	return node.Null()
}

// Generate renders a tree as JSON text, formatted when the result is
// valid JSON. Partial numeric input renders as-is, mirroring the
// editing state.
func Generate(n *node.Node) string {
	var b strings.Builder
	writeCompact(&b, n)
	out := b.String()
	if gjson.Valid(out) {
		return strings.TrimRight(string(pretty.Pretty([]byte(out))), "\n")
	}
	return out
}

func writeCompact(b *strings.Builder, n *node.Node) {
	if n == nil {
		b.WriteString("null")
		return
	}
	switch n.Kind() {
	case node.KindNull:
		b.WriteString("null")
	case node.KindBoolean:
		b.WriteString(strconv.FormatBool(n.Bool()))
	case node.KindNumeric:
		if n.Text() == "" {
			b.WriteString("0")
		} else {
			b.WriteString(n.Text())
		}
	case node.KindString:
		b.WriteString(strconv.Quote(n.Text()))
	case node.KindIdentifier:
		b.WriteString(n.Text())
	case node.KindArray:
		b.WriteByte('[')
		for i, c := range n.Children() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCompact(b, c)
		}
		b.WriteByte(']')
	case node.KindObject:
		b.WriteByte('{')
		for i, p := range n.Children() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCompact(b, p)
		}
		b.WriteByte('}')
	case node.KindProperty:
		writeKey(b, n.Key())
		b.WriteByte(':')
		writeCompact(b, n.Value())
	case node.KindDeclaration:
		b.WriteString(n.Text())
		b.WriteByte(' ')
		writeCompact(b, n.Key())
		b.WriteString(" = ")
		writeCompact(b, n.Value())
	case node.KindProgram:
		for i, c := range n.Children() {
			if i > 0 {
				b.WriteByte('\n')
			}
			writeCompact(b, c)
		}
	}
}

// writeKey renders a property key. Keys are normally string literals
// but conversions can turn them into any node; non-string keys render
// like values.
func writeKey(b *strings.Builder, key *node.Node) {
	if key == nil {
		b.WriteString(`""`)
		return
	}
	if key.Kind() == node.KindString {
		b.WriteString(strconv.Quote(key.Text()))
		return
	}
	writeCompact(b, key)
}
