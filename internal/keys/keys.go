// Package keys models keyboard shortcuts as a set of modifiers plus a key.
package keys

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Modifier is a bit set of modifier keys.
type Modifier uint8

const (
	Ctrl Modifier = 1 << iota
	Alt
	Shift
)

// Combo is a key combination. The zero value means "no shortcut".
type Combo struct {
	Mods Modifier
	Key  string
}

// None is the empty combination.
var None = Combo{}

var titler = cases.Title(language.English)

// IsNone reports whether c carries no key.
func (c Combo) IsNone() bool { return c.Key == "" }

// HasModifier reports whether at least one of Ctrl, Alt, or Shift is held.
func (c Combo) HasModifier() bool { return c.Mods&(Ctrl|Alt|Shift) != 0 }

// String formats c as "Ctrl+Shift+H". None formats as "None".
func (c Combo) String() string {
	if c.IsNone() {
		return "None"
	}
	var parts []string
	if c.Mods&Ctrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if c.Mods&Alt != 0 {
		parts = append(parts, "Alt")
	}
	if c.Mods&Shift != 0 {
		parts = append(parts, "Shift")
	}
	return strings.Join(append(parts, c.Key), "+")
}

// MarshalText implements encoding.TextMarshaler.
func (c Combo) MarshalText() ([]byte, error) {
	if c.IsNone() {
		return []byte{}, nil
	}
	return []byte(c.String()), nil
}

// Parse reads a combination such as "ctrl+h", "Alt+Shift+F2" or "X".
// The empty string and "none" parse to None.
func Parse(s string) (Combo, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return None, nil
	}

	parts := strings.Split(s, "+")
	var c Combo
	for i, raw := range parts {
		part := strings.TrimSpace(raw)
		if part == "" {
			return None, fmt.Errorf("parsing shortcut %q: empty key segment", s)
		}
		mod, isMod := modifierNames[strings.ToLower(part)]
		if i == len(parts)-1 {
			if isMod {
				return None, fmt.Errorf("parsing shortcut %q: missing key after modifier %q", s, part)
			}
			c.Key = normalizeKey(part)
			break
		}
		if !isMod {
			return None, fmt.Errorf("parsing shortcut %q: unknown modifier %q", s, part)
		}
		c.Mods |= mod
	}
	return c, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Combo {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

var modifierNames = map[string]Modifier{
	"ctrl":    Ctrl,
	"control": Ctrl,
	"alt":     Alt,
	"shift":   Shift,
}

// normalizeKey upper-cases single characters and function keys (F1..F24)
// and title-cases named keys such as "delete" or "forward".
func normalizeKey(k string) string {
	if len(k) == 1 || isFunctionKey(k) {
		return strings.ToUpper(k)
	}
	return titler.String(strings.ToLower(k))
}

func isFunctionKey(k string) bool {
	if len(k) < 2 || (k[0] != 'f' && k[0] != 'F') {
		return false
	}
	for _, r := range k[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
