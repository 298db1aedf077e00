package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-pong/engine"
)

// Binding is a single key: either a special key or a rune (Key == tcell.KeyRune)
type Binding struct {
	Key  tcell.Key
	Rune rune
}

// RuneBinding binds a printable key; matched case-insensitively
func RuneBinding(r rune) Binding {
	return Binding{Key: tcell.KeyRune, Rune: unicode.ToLower(r)}
}

// KeyBinding binds a special key
func KeyBinding(k tcell.Key) Binding {
	return Binding{Key: k}
}

// Matches reports whether a key event hits this binding
func (b Binding) Matches(key tcell.Key, r rune) bool {
	if b.Key == tcell.KeyRune {
		return key == tcell.KeyRune && unicode.ToLower(r) == b.Rune
	}
	return key == b.Key
}

// KeyTable maps each action to one or more keys
type KeyTable [engine.ActionCount][]Binding

// DefaultKeyTable binds W/S to the left paddle and arrows to the right paddle
func DefaultKeyTable() KeyTable {
	var kt KeyTable
	kt[engine.ActionP1Up] = []Binding{RuneBinding('w')}
	kt[engine.ActionP1Down] = []Binding{RuneBinding('s')}
	kt[engine.ActionP2Up] = []Binding{KeyBinding(tcell.KeyUp)}
	kt[engine.ActionP2Down] = []Binding{KeyBinding(tcell.KeyDown)}
	return kt
}

// Lookup finds the action bound to a key event
// First match in action order wins when a key is bound twice
func (kt *KeyTable) Lookup(key tcell.Key, r rune) (engine.Action, bool) {
	for a := engine.Action(0); a < engine.ActionCount; a++ {
		for _, b := range kt[a] {
			if b.Matches(key, r) {
				return a, true
			}
		}
	}
	return engine.ActionCount, false
}

// IsQuit reports whether a key event ends the game: Esc, Ctrl-C or q
func IsQuit(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}
	return false
}
