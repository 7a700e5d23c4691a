package node

import (
	"math"
	"strconv"
	"strings"

	"github.com/Gregoor/upcode/internal/engine/path"
)

// CanonicalNumber reduces numeric-literal text to its canonical form.
// Unparseable or non-finite input falls back to "0".
func CanonicalNumber(text string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// NormalizeNumberAt re-normalizes a numeric literal whose "value" field
// is the given selection. While that field is selected the literal may
// hold partial input ("1.", "-", "3e"); the history manager calls this
// as the selection moves away, before the next edit is recorded.
func NormalizeNumberAt(root *Node, sel path.Path) *Node {
	if sel.IsEmpty() || !sel.Last().IsField(path.FieldValue) {
		return root
	}
	owner, ok := GetNode(root, sel.Parent())
	if !ok || owner.kind != KindNumeric {
		return root
	}
	canonical := CanonicalNumber(owner.text)
	if canonical == owner.text {
		return root
	}
	if out, ok := SetText(root, sel, canonical); ok {
		return out
	}
	return root
}
