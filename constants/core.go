package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickInterval is the fixed simulation step (1/60s)
	TickInterval = time.Second / 60

	// MaxFrameDelta caps a single frame's contribution to the tick accumulator
	// A stalled terminal otherwise queues hundreds of catch-up ticks
	MaxFrameDelta = 250 * time.Millisecond
)

// Event channel sizing for the terminal poller
const (
	EventChannelSize = 256
)
