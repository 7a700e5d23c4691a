package codec

import (
	"strconv"
	"strings"

	"github.com/Gregoor/upcode/internal/engine/node"
	"github.com/Gregoor/upcode/internal/engine/path"
)

// Indent is the indentation unit of Render output.
const Indent = "  "

// Render produces indented document text together with the byte span
// [start, end) of the selection. An end-sentinel selection yields an
// empty span at the insertion point; a selection that resolves to
// nothing yields (-1, -1).
func Render(root *node.Node, sel path.Path) (string, int, int) {
	r := &renderState{target: sel, start: -1, end: -1}
	r.write(root, nil, 0)
	return r.b.String(), r.start, r.end
}

type renderState struct {
	b      strings.Builder
	target path.Path
	start  int
	end    int
}

// matches reports whether the node at p is the selected one. Scalar
// field selections (a literal's value, an identifier's name) highlight
// their owning leaf.
func (r *renderState) matches(n *node.Node, p path.Path) bool {
	if r.start >= 0 {
		return false
	}
	if p.Equal(r.target) {
		return true
	}
	if len(r.target) != len(p)+1 || !r.target.Parent().Equal(p) {
		return false
	}
	switch {
	case r.target.Last().IsField(path.FieldValue):
		return n.Kind() == node.KindNumeric || n.Kind() == node.KindString
	case r.target.Last().IsField(path.FieldName):
		return n.Kind() == node.KindIdentifier
	}
	return false
}

// atEndSentinel reports whether the selection is the append slot of the
// collection owned by the node at p.
func (r *renderState) atEndSentinel(p path.Path) bool {
	if r.start >= 0 || !r.target.HasEnd() || len(r.target) != len(p)+2 {
		return false
	}
	return r.target[:len(p)].Equal(p)
}

func (r *renderState) write(n *node.Node, p path.Path, indent int) {
	marked := r.matches(n, p)
	if marked {
		r.start = r.b.Len()
	}
	r.writeNode(n, p, indent)
	if marked {
		r.end = r.b.Len()
	}
}

func (r *renderState) writeNode(n *node.Node, p path.Path, indent int) {
	if n == nil {
		r.b.WriteString("null")
		return
	}
	switch n.Kind() {
	case node.KindNull:
		r.b.WriteString("null")
	case node.KindBoolean:
		r.b.WriteString(strconv.FormatBool(n.Bool()))
	case node.KindNumeric:
		if n.Text() == "" {
			r.b.WriteString("0")
		} else {
			r.b.WriteString(n.Text())
		}
	case node.KindString:
		r.b.WriteString(strconv.Quote(n.Text()))
	case node.KindIdentifier:
		r.b.WriteString(n.Text())
	case node.KindArray:
		r.writeCollection(n, p, indent, path.FieldElements, '[', ']')
	case node.KindObject:
		r.writeCollection(n, p, indent, path.FieldProperties, '{', '}')
	case node.KindProperty:
		r.write(n.Key(), p.Append(path.Field(path.FieldKey)), indent)
		r.b.WriteString(": ")
		r.write(n.Value(), p.Append(path.Field(path.FieldValue)), indent)
	case node.KindDeclaration:
		r.b.WriteString(n.Text())
		r.b.WriteByte(' ')
		r.write(n.Key(), p.Append(path.Field(path.FieldName)), indent)
		r.b.WriteString(" = ")
		r.write(n.Value(), p.Append(path.Field(path.FieldValue)), indent)
	case node.KindProgram:
		for i, c := range n.Children() {
			if i > 0 {
				r.b.WriteByte('\n')
			}
			r.write(c, p.Append(path.Field(path.FieldBody), path.Index(i)), indent)
		}
		if r.atEndSentinel(p) {
			r.start = r.b.Len()
			r.end = r.start
		}
	}
}

func (r *renderState) writeCollection(n *node.Node, p path.Path, indent int, field string, open, close byte) {
	r.b.WriteByte(open)
	multiline := n.Len() > 0
	for i, c := range n.Children() {
		if i > 0 {
			r.b.WriteByte(',')
		}
		r.b.WriteByte('\n')
		r.b.WriteString(strings.Repeat(Indent, indent+1))
		r.write(c, p.Append(path.Field(field), path.Index(i)), indent+1)
	}
	if r.atEndSentinel(p) {
		r.b.WriteByte('\n')
		r.b.WriteString(strings.Repeat(Indent, indent+1))
		r.start = r.b.Len()
		r.end = r.start
		multiline = true
	}
	if multiline {
		r.b.WriteByte('\n')
		r.b.WriteString(strings.Repeat(Indent, indent))
	}
	r.b.WriteByte(close)
}
