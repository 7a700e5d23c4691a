package node

// Kind discriminates the node variants of the document tree.
type Kind uint8

const (
	// KindNull is the null literal.
	KindNull Kind = iota
	// KindBoolean is a true/false literal.
	KindBoolean
	// KindNumeric is a numeric literal. Its value is kept as text so the
	// editor can hold partial input (see CanonicalNumber).
	KindNumeric
	// KindString is a string literal.
	KindString
	// KindIdentifier is a bare name.
	KindIdentifier
	// KindArray is an ordered collection of element nodes.
	KindArray
	// KindObject is an ordered collection of property nodes.
	KindObject
	// KindProperty is a key/value pair inside an object.
	KindProperty
	// KindDeclaration is a declaration statement (kind keyword, name, value).
	KindDeclaration
	// KindProgram is the document root holding an ordered body.
	KindProgram
)

// String returns the AST-style name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "NullLiteral"
	case KindBoolean:
		return "BooleanLiteral"
	case KindNumeric:
		return "NumericLiteral"
	case KindString:
		return "StringLiteral"
	case KindIdentifier:
		return "Identifier"
	case KindArray:
		return "ArrayExpression"
	case KindObject:
		return "ObjectExpression"
	case KindProperty:
		return "ObjectProperty"
	case KindDeclaration:
		return "VariableDeclaration"
	case KindProgram:
		return "Program"
	default:
		return "Unknown"
	}
}

// Node is one tagged element of a document tree. Nodes are immutable;
// all mutation goes through the tree store functions in this package,
// which copy along the edited spine and share everything else.
type Node struct {
	kind     Kind
	boolVal  bool
	text     string  // numeric text, string content, identifier name, declaration keyword
	key      *Node   // property key, declaration name
	value    *Node   // property value, declaration value
	children []*Node // array elements, object properties, program body
}

// Null returns the null literal.
func Null() *Node {
	return &Node{kind: KindNull}
}

// Boolean returns a boolean literal.
func Boolean(v bool) *Node {
	return &Node{kind: KindBoolean, boolVal: v}
}

// Numeric returns a numeric literal holding the given text.
func Numeric(text string) *Node {
	return &Node{kind: KindNumeric, text: text}
}

// String returns a string literal.
func String(s string) *Node {
	return &Node{kind: KindString, text: s}
}

// Identifier returns an identifier node.
func Identifier(name string) *Node {
	return &Node{kind: KindIdentifier, text: name}
}

// Array returns an array expression with the given elements.
func Array(elements ...*Node) *Node {
	return &Node{kind: KindArray, children: copyNodes(elements)}
}

// Object returns an object expression with the given properties.
func Object(properties ...*Node) *Node {
	return &Node{kind: KindObject, children: copyNodes(properties)}
}

// Property returns an object property.
func Property(key, value *Node) *Node {
	return &Node{kind: KindProperty, key: key, value: value}
}

// Declaration returns a declaration with the given keyword ("let",
// "const", ...), name identifier and value.
func Declaration(keyword string, name, value *Node) *Node {
	return &Node{kind: KindDeclaration, text: keyword, key: name, value: value}
}

// Program returns a program root with the given body.
func Program(body ...*Node) *Node {
	return &Node{kind: KindProgram, children: copyNodes(body)}
}

// Kind returns the node's variant tag.
func (n *Node) Kind() Kind { return n.kind }

// Bool returns the value of a boolean literal.
func (n *Node) Bool() bool { return n.boolVal }

// Text returns the scalar text of the node: numeric text, string
// content, identifier name or declaration keyword.
func (n *Node) Text() string { return n.text }

// Key returns the property key or declaration name, nil otherwise.
func (n *Node) Key() *Node { return n.key }

// Value returns the property or declaration value, nil otherwise.
func (n *Node) Value() *Node { return n.value }

// Children returns the collection of an array, object or program. The
// returned slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Len returns the number of children.
func (n *Node) Len() int { return len(n.children) }

// IsCollection reports whether the node owns an ordered collection.
func (n *Node) IsCollection() bool {
	switch n.kind {
	case KindArray, KindObject, KindProgram:
		return true
	}
	return false
}

// IsEditableLeaf reports whether the node is a leaf whose text the user
// edits in place. The navigator refuses to descend into these.
func (n *Node) IsEditableLeaf() bool {
	switch n.kind {
	case KindString, KindNumeric, KindIdentifier:
		return true
	}
	return false
}

// Equal reports deep value equality. Two nils are equal.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind || a.boolVal != b.boolVal || a.text != b.text {
		return false
	}
	if !Equal(a.key, b.key) || !Equal(a.value, b.value) {
		return false
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

// withText returns a copy of n with its scalar text replaced.
func (n *Node) withText(text string) *Node {
	c := *n
	c.text = text
	return &c
}

// withKey returns a copy of n with its key slot replaced.
func (n *Node) withKey(key *Node) *Node {
	c := *n
	c.key = key
	return &c
}

// withValue returns a copy of n with its value slot replaced.
func (n *Node) withValue(value *Node) *Node {
	c := *n
	c.value = value
	return &c
}

// withChildren returns a copy of n owning the given collection. The
// slice is taken over, not copied; callers pass freshly built slices.
func (n *Node) withChildren(children []*Node) *Node {
	c := *n
	c.children = children
	return &c
}

func copyNodes(nodes []*Node) []*Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*Node, len(nodes))
	copy(out, nodes)
	return out
}
