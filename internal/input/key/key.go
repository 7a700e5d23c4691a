// Package key models keyboard input events independently of the
// terminal backend that produced them.
package key

// Key identifies a keyboard key. Character keys use KeyRune together
// with the Rune field of an Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyRune is a character key; the Event carries the rune.
	KeyRune

	// Special keys.
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	// Arrow keys.
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns the canonical key name.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "BS"
	case KeyDelete:
		return "Del"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "None"
	}
}

// IsArrow reports whether the key is an arrow key.
func (k Key) IsArrow() bool {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		return true
	}
	return false
}
