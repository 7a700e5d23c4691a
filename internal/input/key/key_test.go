package key

import "testing"

func TestEventName(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('+', ModNone), "+"},
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewSpecialEvent(KeyEscape, ModNone), "Esc"},
		{NewSpecialEvent(KeyBackspace, ModNone), "BS"},
		{NewSpecialEvent(KeyUp, ModNone), "Up"},
	}
	for _, tt := range tests {
		if got := tt.ev.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{NewRuneEvent('z', ModCtrl), "Ctrl+z"},
		{NewRuneEvent('Z', ModShift), "Z"},
		{NewSpecialEvent(KeyUp, ModAlt|ModShift), "Alt+Shift+Up"},
		{NewSpecialEvent(KeyEnter, ModNone), "Enter"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsDigit(t *testing.T) {
	if !NewRuneEvent('7', ModNone).IsDigit() {
		t.Error("plain 7 is a digit")
	}
	if !NewRuneEvent('0', ModShift).IsDigit() {
		t.Error("shift does not disqualify a digit")
	}
	if NewRuneEvent('7', ModCtrl).IsDigit() {
		t.Error("ctrl chords are not digit input")
	}
	if NewRuneEvent('a', ModNone).IsDigit() {
		t.Error("letters are not digits")
	}
	if NewSpecialEvent(KeyUp, ModNone).IsDigit() {
		t.Error("special keys are not digits")
	}
}

func TestParseModifier(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"ctrl", ModCtrl},
		{"Ctrl", ModCtrl},
		{"CONTROL", ModCtrl},
		{"shift", ModShift},
		{"alt", ModAlt},
		{"option", ModAlt},
		{"meta", ModMeta},
		{"cmd", ModMeta},
		{"bogus", ModNone},
	}
	for _, tt := range tests {
		if got := ParseModifier(tt.name); got != tt.want {
			t.Errorf("ParseModifier(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsArrow(t *testing.T) {
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight} {
		if !k.IsArrow() {
			t.Errorf("%v.IsArrow() = false", k)
		}
	}
	if KeyEnter.IsArrow() {
		t.Error("Enter is not an arrow")
	}
}
