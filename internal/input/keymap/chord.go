package keymap

import (
	"fmt"
	"strings"
)

// ParseChord splits a chord such as "Ctrl+Shift+g" into the key name
// and its modifier names. A chord always pins its modifier set: an
// unmodified chord matches only unmodified keys.
func ParseChord(chord string) (string, []string, error) {
	if chord == "" {
		return "", nil, fmt.Errorf("empty key chord")
	}
	if chord == "+" {
		return "+", NoModifiers, nil
	}

	parts := strings.Split(chord, "+")
	// A trailing empty part means the key itself is "+", as in "Ctrl++".
	if parts[len(parts)-1] == "" {
		parts = append(parts[:len(parts)-2], "+")
	}

	keyName := parts[len(parts)-1]
	if keyName == "" {
		return "", nil, fmt.Errorf("invalid key chord %q", chord)
	}
	mods := NoModifiers
	if len(parts) > 1 {
		mods = parts[:len(parts)-1]
	}
	return keyName, mods, nil
}

// ParseBinding turns a (chord, action, param) triple into a rule.
func ParseBinding(chord, action string, param any) (Mapping, error) {
	keyName, mods, err := ParseChord(chord)
	if err != nil {
		return Mapping{}, err
	}
	return Mapping{
		Keys:      []string{keyName},
		Modifiers: mods,
		Action:    action,
		Param:     param,
	}, nil
}
