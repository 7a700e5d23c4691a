package path

import "testing"

func TestRoot(t *testing.T) {
	r := Root()
	if got, want := r.String(), "body.0"; got != want {
		t.Errorf("Root() = %q, want %q", got, want)
	}
}

func TestStepAccessors(t *testing.T) {
	f := Field(FieldValue)
	if f.Kind() != KindField || f.Name() != FieldValue {
		t.Errorf("Field step = (%v, %q)", f.Kind(), f.Name())
	}
	if !f.IsField(FieldValue) || f.IsField(FieldKey) {
		t.Error("IsField mismatch")
	}

	i := Index(3)
	if i.Kind() != KindIndex || i.Index() != 3 {
		t.Errorf("Index step = (%v, %d)", i.Kind(), i.Index())
	}

	if End.Kind() != KindEnd {
		t.Errorf("End.Kind() = %v", End.Kind())
	}
}

func TestIsCollectionField(t *testing.T) {
	tests := []struct {
		step Step
		want bool
	}{
		{Field(FieldElements), true},
		{Field(FieldProperties), true},
		{Field(FieldBody), true},
		{Field(FieldValue), false},
		{Field(FieldKey), false},
		{Index(0), false},
		{End, false},
	}
	for _, tt := range tests {
		if got := tt.step.IsCollectionField(); got != tt.want {
			t.Errorf("IsCollectionField(%v) = %v, want %v", tt.step, got, tt.want)
		}
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	tests := []string{
		".",
		"body.0",
		"body.0.properties.1.key",
		"body.0.elements.end",
		"body.2.value.properties.0.value.value",
	}
	for _, s := range tests {
		p := Parse(s)
		if got := p.String(); got != s {
			t.Errorf("Parse(%q).String() = %q", s, got)
		}
	}
}

func TestHasEnd(t *testing.T) {
	if Parse("body.0").HasEnd() {
		t.Error("body.0 should not have end sentinel")
	}
	if !Parse("body.0.elements.end").HasEnd() {
		t.Error("elements.end should have end sentinel")
	}
	if (Path{}).HasEnd() {
		t.Error("empty path should not have end sentinel")
	}
}

func TestParentAndAppend(t *testing.T) {
	p := Parse("body.0.properties.1")
	if got, want := p.Parent().String(), "body.0.properties"; got != want {
		t.Errorf("Parent() = %q, want %q", got, want)
	}

	q := p.Append(Field(FieldKey))
	if got, want := q.String(), "body.0.properties.1.key"; got != want {
		t.Errorf("Append() = %q, want %q", got, want)
	}
	// The receiver must be unchanged and share no tail with the result.
	if got, want := p.String(), "body.0.properties.1"; got != want {
		t.Errorf("receiver changed to %q", got)
	}
	q[0] = Field("other")
	if p[0] != Field(FieldBody) {
		t.Error("Append result shares storage with receiver")
	}
}

func TestConcat(t *testing.T) {
	p := Parse("body.0").Concat(Parse("properties.0.key"))
	if got, want := p.String(), "body.0.properties.0.key"; got != want {
		t.Errorf("Concat = %q, want %q", got, want)
	}
	if got := Parse("body.0").Concat(nil).String(); got != "body.0" {
		t.Errorf("Concat(nil) = %q", got)
	}
}

func TestEqualAndHasPrefix(t *testing.T) {
	a := Parse("body.0.properties.1")
	b := Parse("body.0.properties.1")
	c := Parse("body.0.properties.2")

	if !a.Equal(b) {
		t.Error("equal paths reported unequal")
	}
	if a.Equal(c) {
		t.Error("unequal paths reported equal")
	}
	if !a.HasPrefix(Parse("body.0")) {
		t.Error("HasPrefix(body.0) = false")
	}
	if a.HasPrefix(c) {
		t.Error("HasPrefix should fail for diverging path")
	}
	if !a.HasPrefix(nil) {
		t.Error("every path has the empty prefix")
	}
}

func TestLastIndex(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"body.0", 1},
		{"body.0.properties.1.key", 3},
		{"body.0.elements.end", 1},
		{".", -1},
	}
	for _, tt := range tests {
		if got := Parse(tt.path).LastIndex(); got != tt.want {
			t.Errorf("LastIndex(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestLastCollection(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		// The program body is deliberately not a horizontal target.
		{"body.0", -1},
		{"body.0.properties.1", 2},
		{"body.0.properties.1.value.elements.0", 5},
		{"body.0.elements.end", 2},
	}
	for _, tt := range tests {
		if got := Parse(tt.path).LastCollection(); got != tt.want {
			t.Errorf("LastCollection(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}
