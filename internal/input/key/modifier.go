package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS).
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a "+"-joined list of modifier names.
func (m Modifier) String() string {
	if m.IsEmpty() {
		return ""
	}
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// ParseModifier resolves a lowercase modifier name. Unknown names map
// to ModNone.
func ParseModifier(name string) Modifier {
	switch strings.ToLower(name) {
	case "shift":
		return ModShift
	case "ctrl", "control":
		return ModCtrl
	case "alt", "option":
		return ModAlt
	case "meta", "cmd":
		return ModMeta
	}
	return ModNone
}
