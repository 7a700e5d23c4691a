// Package path provides value-typed addresses into a document tree.
//
// A Path is an ordered sequence of steps. Each step is either a field
// name (such as "value", "key", "properties", "elements" or "body"), a
// non-negative collection index, or the End sentinel. The End sentinel
// terminates a path and means "the insertion point immediately after the
// last element of the nearest enclosing collection"; it addresses no
// existing node.
package path

import (
	"strconv"
	"strings"
)

// StepKind discriminates the three step variants.
type StepKind uint8

const (
	// KindField is a named field step ("value", "properties", ...).
	KindField StepKind = iota
	// KindIndex is a collection index step.
	KindIndex
	// KindEnd is the end-of-collection sentinel.
	KindEnd
)

// Well-known field names used by the tree store.
const (
	FieldKey        = "key"
	FieldValue      = "value"
	FieldElements   = "elements"
	FieldProperties = "properties"
	FieldBody       = "body"
	FieldKind       = "kind"
	FieldName       = "name"
)

// Step is a single component of a Path.
type Step struct {
	kind  StepKind
	name  string
	index int
}

// Field creates a named field step.
func Field(name string) Step {
	return Step{kind: KindField, name: name}
}

// Index creates a collection index step.
func Index(i int) Step {
	return Step{kind: KindIndex, index: i}
}

// End is the end-of-collection sentinel step.
var End = Step{kind: KindEnd}

// Kind returns the step variant.
func (s Step) Kind() StepKind { return s.kind }

// Name returns the field name for a KindField step, "" otherwise.
func (s Step) Name() string { return s.name }

// Index returns the collection index for a KindIndex step, 0 otherwise.
func (s Step) Index() int { return s.index }

// IsField reports whether the step is a field with the given name.
func (s Step) IsField(name string) bool {
	return s.kind == KindField && s.name == name
}

// IsCollectionField reports whether the step names a collection field.
func (s Step) IsCollectionField() bool {
	if s.kind != KindField {
		return false
	}
	switch s.name {
	case FieldElements, FieldProperties, FieldBody:
		return true
	}
	return false
}

// String returns a debug representation of the step.
func (s Step) String() string {
	switch s.kind {
	case KindIndex:
		return strconv.Itoa(s.index)
	case KindEnd:
		return "end"
	default:
		return s.name
	}
}

// Path addresses a location in a document tree. The zero value is the
// empty path, which addresses the tree root.
type Path []Step

// New builds a path from the given steps.
func New(steps ...Step) Path {
	if len(steps) == 0 {
		return nil
	}
	p := make(Path, len(steps))
	copy(p, steps)
	return p
}

// Root is the canonical selection for a fresh document: the first slot
// of the program body collection.
func Root() Path {
	return Path{Field(FieldBody), Index(0)}
}

// IsEmpty reports whether the path addresses the tree root.
func (p Path) IsEmpty() bool { return len(p) == 0 }

// HasEnd reports whether the path terminates in the End sentinel.
func (p Path) HasEnd() bool {
	return len(p) > 0 && p[len(p)-1].kind == KindEnd
}

// Last returns the final step. It panics on the empty path; callers
// must check IsEmpty first.
func (p Path) Last() Step { return p[len(p)-1] }

// Parent returns the path with its final step removed.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Append returns a new path with the given steps added. The receiver is
// never modified; the result shares no tail storage with it.
func (p Path) Append(steps ...Step) Path {
	out := make(Path, 0, len(p)+len(steps))
	out = append(out, p...)
	out = append(out, steps...)
	return out
}

// Concat returns p followed by q.
func (p Path) Concat(q Path) Path {
	return p.Append(q...)
}

// Equal reports value equality of two paths.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether q is a (possibly equal) leading segment of p.
func (p Path) HasPrefix(q Path) bool {
	if len(q) > len(p) {
		return false
	}
	return p[:len(q)].Equal(q)
}

// LastIndex returns the position of the deepest KindIndex step, or -1
// if the path contains none. The element at p[:i+1] is the nearest
// indexable ancestor of the addressed location.
func (p Path) LastIndex() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].kind == KindIndex {
			return i
		}
	}
	return -1
}

// LastCollection returns the position of the deepest step naming an
// "elements" or "properties" collection, or -1 if there is none. This
// is the collection LEFT/RIGHT movement operates on.
func (p Path) LastCollection() int {
	for i := len(p) - 1; i >= 0; i-- {
		s := p[i]
		if s.kind == KindField && (s.name == FieldElements || s.name == FieldProperties) {
			return i
		}
	}
	return -1
}

// String renders the path as a dotted debug string, e.g. "body.0.properties.1.key".
func (p Path) String() string {
	if len(p) == 0 {
		return "."
	}
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// Parse converts the output of String back into a Path. Numeric
// segments become index steps, "end" becomes the sentinel and anything
// else a field step. The empty string and "." parse to the empty path.
func Parse(s string) Path {
	if s == "" || s == "." {
		return nil
	}
	segs := strings.Split(s, ".")
	p := make(Path, 0, len(segs))
	for _, seg := range segs {
		switch {
		case seg == "end":
			p = append(p, End)
		default:
			if n, err := strconv.Atoi(seg); err == nil && n >= 0 {
				p = append(p, Index(n))
			} else {
				p = append(p, Field(seg))
			}
		}
	}
	return p
}
