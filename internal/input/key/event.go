package key

import (
	"time"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsDigit returns true if this is a plain digit key.
func (e Event) IsDigit() bool {
	return e.IsRune() && e.Rune >= '0' && e.Rune <= '9' &&
		!e.Modifiers.Has(ModCtrl) && !e.Modifiers.Has(ModAlt) && !e.Modifiers.Has(ModMeta)
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// Name returns the canonical name the keymap matches against: the
// literal character for rune events, the key name otherwise.
func (e Event) Name() string {
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			return "Space"
		}
		return string(e.Rune)
	}
	return e.Key.String()
}

// String returns a canonical representation such as "Ctrl+Z" or "a".
func (e Event) String() string {
	mods := e.Modifiers
	if e.IsRune() {
		// Shift is part of the character itself.
		mods = mods &^ ModShift
	}
	if mods.IsEmpty() {
		return e.Name()
	}
	return mods.String() + "+" + e.Name()
}
