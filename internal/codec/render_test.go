package codec

import (
	"strings"
	"testing"

	"github.com/Gregoor/upcode/internal/engine/node"
	"github.com/Gregoor/upcode/internal/engine/path"
)

func renderTree() *node.Node {
	return node.Program(node.Object(
		node.Property(node.String("a"), node.Numeric("1")),
		node.Property(node.String("b"), node.Array(node.Boolean(true))),
	))
}

func TestRenderSpan(t *testing.T) {
	tests := []struct {
		name string
		sel  string
		want string
	}{
		{"element", "body.0.properties.0", `"a": 1`},
		{"key", "body.0.properties.0.key", `"a"`},
		{"value", "body.0.properties.0.value", "1"},
		{"nested element", "body.0.properties.1.value.elements.0", "true"},
		{"whole document", "body.0", "{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, start, end := Render(renderTree(), path.Parse(tt.sel))
			if start < 0 || end > len(text) || start > end {
				t.Fatalf("span = [%d, %d) in %d bytes", start, end, len(text))
			}
			got := text[start:end]
			if tt.name == "whole document" {
				if !strings.HasPrefix(got, tt.want) || end != len(text) {
					t.Errorf("span %q must cover the whole object", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("span = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderScalarFieldHighlightsLeaf(t *testing.T) {
	// Selecting a literal's text field marks the owning leaf.
	text, start, end := Render(node.Program(node.Numeric("42")), path.Parse("body.0.value"))
	if text[start:end] != "42" {
		t.Errorf("span = %q, want \"42\"", text[start:end])
	}

	text, start, end = Render(
		node.Program(node.Declaration("let", node.Identifier("x"), node.Null())),
		path.Parse("body.0.name"),
	)
	if text[start:end] != "x" {
		t.Errorf("span = %q, want \"x\"", text[start:end])
	}
}

func TestRenderEndSentinelIsEmptySpan(t *testing.T) {
	tree := node.Program(node.Array(node.Numeric("1")))
	text, start, end := Render(tree, path.Parse("body.0.elements.end"))
	if start < 0 || start != end {
		t.Fatalf("sentinel span = [%d, %d), want an empty span", start, end)
	}
	// The insertion point sits on its own indented line.
	if !strings.HasSuffix(text[:start], Indent) {
		t.Errorf("text before cursor = %q", text[:start])
	}
}

func TestRenderEmptyCollectionSentinel(t *testing.T) {
	text, start, end := Render(node.Program(node.Object()), path.Parse("body.0.properties.end"))
	if start < 0 || start != end {
		t.Fatalf("sentinel span = [%d, %d)", start, end)
	}
	if !strings.Contains(text, "{") || !strings.Contains(text, "}") {
		t.Errorf("text = %q", text)
	}
}

func TestRenderUnresolvedSelection(t *testing.T) {
	_, start, end := Render(renderTree(), path.Parse("body.9"))
	if start != -1 || end != -1 {
		t.Errorf("span = [%d, %d), want (-1, -1)", start, end)
	}
}

func TestRenderIndentation(t *testing.T) {
	text, _, _ := Render(renderTree(), nil)
	want := "{\n" +
		"  \"a\": 1,\n" +
		"  \"b\": [\n" +
		"    true\n" +
		"  ]\n" +
		"}"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}
