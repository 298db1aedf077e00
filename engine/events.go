// Package engine runs the Pong simulation.
//
// The simulation is a pure step over an explicit GameState: the loop driver
// owns the state, passes it in by pointer together with an input snapshot,
// the step duration and the current screen size, and reads it back to draw.
// Randomness comes from an injected RandSource so tests are deterministic.
//
// Step Order (same dt throughout):
//  0. Refit to a resized playfield: positions clamped inside, no points awarded
//  1. Paddle movement, clamped to the screen
//  2. Ball integration along its unit direction at BallSpeed
//  3. Side exit: point to the opposite player, ball re-served from center
//  4. Top/bottom bounce: clamp and reflect away from the wall
//  5. Paddle contact: AABB overlap forces the ball away from the paddle
//
// Known limitation: there is no positional correction or swept test, so a
// large dt can carry the ball through a paddle in a single step. Playfields
// smaller than Params.MinScreen are not simulated at all.
package engine

// Events reports what happened during one or more steps
type Events uint8

const (
	EventPaddleHit Events = 1 << iota
	EventWallBounce
	EventScoreP1
	EventScoreP2
)

// EventNone is the empty set
const EventNone Events = 0

// Has reports whether all bits in e are set
func (ev Events) Has(e Events) bool {
	return ev&e == e
}

// Scored reports whether either player scored
func (ev Events) Scored() bool {
	return ev&(EventScoreP1|EventScoreP2) != 0
}

func (ev Events) String() string {
	if ev == EventNone {
		return "none"
	}
	s := ""
	add := func(name string) {
		if s != "" {
			s += "|"
		}
		s += name
	}
	if ev.Has(EventPaddleHit) {
		add("paddle")
	}
	if ev.Has(EventWallBounce) {
		add("wall")
	}
	if ev.Has(EventScoreP1) {
		add("score1")
	}
	if ev.Has(EventScoreP2) {
		add("score2")
	}
	return s
}
