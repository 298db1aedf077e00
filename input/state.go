package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-pong/engine"
)

// KeyState derives held keys from press-only terminal events
// An action counts as held for the hold window after its latest press;
// auto-repeat keeps refreshing the press while the key stays down
// Implements engine.InputSource; owned by the loop goroutine
type KeyState struct {
	table KeyTable
	hold  time.Duration
	clock engine.Clock

	lastPress [engine.ActionCount]time.Time
}

// NewKeyState creates key tracking over a key table
func NewKeyState(table KeyTable, hold time.Duration, clock engine.Clock) *KeyState {
	return &KeyState{
		table: table,
		hold:  hold,
		clock: clock,
	}
}

// Press marks an action pressed at t and releases the opposite direction
func (k *KeyState) Press(a engine.Action, at time.Time) {
	if a >= engine.ActionCount {
		return
	}
	k.lastPress[a] = at
	if o := opposite(a); o < engine.ActionCount {
		k.lastPress[o] = time.Time{}
	}
}

// Reset releases everything, e.g. after focus loss or resize
func (k *KeyState) Reset() {
	k.lastPress = [engine.ActionCount]time.Time{}
}

// HandleKey records a key event; returns false when the key is unbound
func (k *KeyState) HandleKey(key tcell.Key, r rune, at time.Time) bool {
	a, ok := k.table.Lookup(key, r)
	if !ok {
		return false
	}
	k.Press(a, at)
	return true
}

// Held reports whether a was pressed within the hold window
func (k *KeyState) Held(a engine.Action) bool {
	if a >= engine.ActionCount {
		return false
	}
	last := k.lastPress[a]
	if last.IsZero() {
		return false
	}
	return k.clock.Now().Sub(last) < k.hold
}
