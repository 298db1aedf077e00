package engine

import (
	"github.com/lixenwraith/term-pong/vmath"
)

// GameState is the complete mutable state of a match
// Owned exclusively by the loop driver; not safe for concurrent use
type GameState struct {
	Paddle1 vmath.Vec2F // left paddle center
	Paddle2 vmath.Vec2F // right paddle center
	BallPos vmath.Vec2F // ball center
	BallVel vmath.Vec2F // unit direction, never zero

	Score1 int
	Score2 int

	// Playfield the positions were last fitted to
	Screen Size

	// Unconsumed real time in seconds, fixed-step mode only
	Accumulator float64
}

// Snapshot returns a value copy for read-only consumers
func (s *GameState) Snapshot() GameState {
	return *s
}
