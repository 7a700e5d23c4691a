package node

import (
	"github.com/Gregoor/upcode/internal/engine/path"
)

// Value is the result of resolving a path: either a node or the scalar
// text of a leaf field (a literal's value, an identifier's name, a
// declaration's kind keyword).
type Value struct {
	node   *Node
	text   string
	isText bool
}

// NodeValue wraps a node as a Value.
func NodeValue(n *Node) Value { return Value{node: n} }

// TextValue wraps scalar field text as a Value.
func TextValue(s string) Value { return Value{text: s, isText: true} }

// Node returns the node and true when the value is a node.
func (v Value) Node() (*Node, bool) { return v.node, !v.isText && v.node != nil }

// Text returns the scalar text and true when the value is scalar.
func (v Value) Text() (string, bool) { return v.text, v.isText }

// collectionField returns the field name that addresses n's collection,
// or "" when n owns none.
func collectionField(n *Node) string {
	switch n.kind {
	case KindArray:
		return path.FieldElements
	case KindObject:
		return path.FieldProperties
	case KindProgram:
		return path.FieldBody
	}
	return ""
}

// hasScalarField reports whether name addresses n's scalar text.
func hasScalarField(n *Node, name string) bool {
	switch n.kind {
	case KindNumeric, KindString:
		return name == path.FieldValue
	case KindIdentifier:
		return name == path.FieldName
	case KindDeclaration:
		return name == path.FieldKind
	}
	return false
}

// nodeSlot returns the child node addressed by a field name, or nil
// when the field is not a node slot of n.
func nodeSlot(n *Node, name string) *Node {
	switch n.kind {
	case KindProperty:
		switch name {
		case path.FieldKey:
			return n.key
		case path.FieldValue:
			return n.value
		}
	case KindDeclaration:
		switch name {
		case path.FieldName:
			return n.key
		case path.FieldValue:
			return n.value
		}
	}
	return nil
}

// Get resolves a path against the tree. It returns false when the path
// addresses nothing: out-of-range indices, mismatched field names, a
// bare collection field, or any path containing the End sentinel.
func Get(root *Node, p path.Path) (Value, bool) {
	cur := root
	i := 0
	for i < len(p) {
		if cur == nil {
			return Value{}, false
		}
		s := p[i]
		switch s.Kind() {
		case path.KindEnd, path.KindIndex:
			return Value{}, false
		}
		name := s.Name()
		if cf := collectionField(cur); cf != "" && cf == name {
			if i+1 >= len(p) {
				return Value{}, false
			}
			next := p[i+1]
			if next.Kind() != path.KindIndex {
				return Value{}, false
			}
			idx := next.Index()
			if idx < 0 || idx >= len(cur.children) {
				return Value{}, false
			}
			cur = cur.children[idx]
			i += 2
			continue
		}
		if child := nodeSlot(cur, name); child != nil {
			cur = child
			i++
			continue
		}
		if hasScalarField(cur, name) && i == len(p)-1 {
			return TextValue(cur.text), true
		}
		return Value{}, false
	}
	if cur == nil {
		return Value{}, false
	}
	return NodeValue(cur), true
}

// GetNode resolves a path to a node, rejecting scalar-field paths.
func GetNode(root *Node, p path.Path) (*Node, bool) {
	v, ok := Get(root, p)
	if !ok {
		return nil, false
	}
	return v.Node()
}

// editFn rewrites a resolved value. Returning false aborts the edit and
// leaves the tree untouched.
type editFn func(old Value) (Value, bool)

// editAt rewrites the value addressed by p, copying nodes along the
// spine and sharing everything else. It returns false when the path
// does not resolve or fn declines.
func editAt(cur *Node, p path.Path, fn editFn) (*Node, bool) {
	if cur == nil {
		return nil, false
	}
	if len(p) == 0 {
		nv, ok := fn(NodeValue(cur))
		if !ok {
			return nil, false
		}
		n, isNode := nv.Node()
		if !isNode {
			return nil, false
		}
		return n, true
	}
	s := p[0]
	if s.Kind() != path.KindField {
		return nil, false
	}
	name := s.Name()
	if cf := collectionField(cur); cf != "" && cf == name {
		if len(p) < 2 || p[1].Kind() != path.KindIndex {
			return nil, false
		}
		idx := p[1].Index()
		if idx < 0 || idx >= len(cur.children) {
			return nil, false
		}
		child, ok := editAt(cur.children[idx], p[2:], fn)
		if !ok {
			return nil, false
		}
		kids := copyNodes(cur.children)
		kids[idx] = child
		return cur.withChildren(kids), true
	}
	switch {
	case cur.kind == KindProperty && name == path.FieldKey,
		cur.kind == KindDeclaration && name == path.FieldName:
		child, ok := editAt(cur.key, p[1:], fn)
		if !ok {
			return nil, false
		}
		return cur.withKey(child), true
	case (cur.kind == KindProperty || cur.kind == KindDeclaration) && name == path.FieldValue:
		child, ok := editAt(cur.value, p[1:], fn)
		if !ok {
			return nil, false
		}
		return cur.withValue(child), true
	}
	if hasScalarField(cur, name) && len(p) == 1 {
		nv, ok := fn(TextValue(cur.text))
		if !ok {
			return nil, false
		}
		t, isText := nv.Text()
		if !isText {
			return nil, false
		}
		return cur.withText(t), true
	}
	return nil, false
}

// Set replaces the node at p. A structural no-op when p does not
// resolve to a node slot.
func Set(root *Node, p path.Path, n *Node) (*Node, bool) {
	return editAt(root, p, func(Value) (Value, bool) {
		return NodeValue(n), true
	})
}

// SetText replaces the scalar text at p.
func SetText(root *Node, p path.Path, text string) (*Node, bool) {
	return editAt(root, p, func(Value) (Value, bool) {
		return TextValue(text), true
	})
}

// UpdateText applies fn to the scalar text at p.
func UpdateText(root *Node, p path.Path, fn func(string) string) (*Node, bool) {
	return editAt(root, p, func(old Value) (Value, bool) {
		t, isText := old.Text()
		if !isText {
			return Value{}, false
		}
		return TextValue(fn(t)), true
	})
}

// editCollection rewrites the children of the collection addressed by
// collPath, which must end at a collection field ("elements",
// "properties" or "body").
func editCollection(cur *Node, collPath path.Path, fn func(kids []*Node) ([]*Node, bool)) (*Node, bool) {
	if cur == nil || len(collPath) == 0 {
		return nil, false
	}
	s := collPath[0]
	if s.Kind() != path.KindField {
		return nil, false
	}
	name := s.Name()
	if cf := collectionField(cur); cf != "" && cf == name {
		if len(collPath) == 1 {
			kids, ok := fn(cur.children)
			if !ok {
				return nil, false
			}
			return cur.withChildren(kids), true
		}
		if collPath[1].Kind() != path.KindIndex {
			return nil, false
		}
		idx := collPath[1].Index()
		if idx < 0 || idx >= len(cur.children) {
			return nil, false
		}
		child, ok := editCollection(cur.children[idx], collPath[2:], fn)
		if !ok {
			return nil, false
		}
		kids := copyNodes(cur.children)
		kids[idx] = child
		return cur.withChildren(kids), true
	}
	switch {
	case cur.kind == KindProperty && name == path.FieldKey,
		cur.kind == KindDeclaration && name == path.FieldName:
		child, ok := editCollection(cur.key, collPath[1:], fn)
		if !ok {
			return nil, false
		}
		return cur.withKey(child), true
	case (cur.kind == KindProperty || cur.kind == KindDeclaration) && name == path.FieldValue:
		child, ok := editCollection(cur.value, collPath[1:], fn)
		if !ok {
			return nil, false
		}
		return cur.withValue(child), true
	}
	return nil, false
}

// Collection returns the children of the collection addressed by
// collPath (a path ending at a collection field).
func Collection(root *Node, collPath path.Path) ([]*Node, bool) {
	if len(collPath) == 0 {
		return nil, false
	}
	owner, ok := GetNode(root, collPath.Parent())
	if !ok {
		return nil, false
	}
	if cf := collectionField(owner); cf == "" || !collPath.Last().IsField(cf) {
		return nil, false
	}
	return owner.children, true
}

// InsertAt inserts elem into the collection at collPath. The index is
// clamped to [0, len].
func InsertAt(root *Node, collPath path.Path, index int, elem *Node) (*Node, bool) {
	return editCollection(root, collPath, func(kids []*Node) ([]*Node, bool) {
		if index < 0 {
			index = 0
		}
		if index > len(kids) {
			index = len(kids)
		}
		out := make([]*Node, 0, len(kids)+1)
		out = append(out, kids[:index]...)
		out = append(out, elem)
		out = append(out, kids[index:]...)
		return out, true
	})
}

// RemoveAt removes the element addressed by elemPath, a path ending in
// a collection index.
func RemoveAt(root *Node, elemPath path.Path) (*Node, bool) {
	if len(elemPath) < 2 || elemPath.Last().Kind() != path.KindIndex {
		return nil, false
	}
	index := elemPath.Last().Index()
	return editCollection(root, elemPath.Parent(), func(kids []*Node) ([]*Node, bool) {
		if index < 0 || index >= len(kids) {
			return nil, false
		}
		out := make([]*Node, 0, len(kids)-1)
		out = append(out, kids[:index]...)
		out = append(out, kids[index+1:]...)
		return out, true
	})
}

// Delete removes the collection element addressed by p. Paths not
// ending in an index are a structural no-op.
func Delete(root *Node, p path.Path) (*Node, bool) {
	return RemoveAt(root, p)
}
