package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Named special keys accepted in config
var specialKeyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"insert":    tcell.KeyInsert,
	"delete":    tcell.KeyDelete,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
}

// Rune aliases for keys that are awkward to write bare
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// ParseKey converts a config key name into a Binding
// Accepts a single printable character, a rune alias or a special key name
func ParseKey(name string) (Binding, error) {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if r == 'q' || r == 'Q' {
			return Binding{}, fmt.Errorf("key %q is reserved for quit", name)
		}
		return RuneBinding(r), nil
	}

	lower := strings.ToLower(strings.TrimSpace(name))
	if r, ok := runeAliases[lower]; ok {
		return RuneBinding(r), nil
	}
	if k, ok := specialKeyNames[lower]; ok {
		return KeyBinding(k), nil
	}
	return Binding{}, fmt.Errorf("unknown key name %q", name)
}
