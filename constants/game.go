package constants

// Paddle geometry in logical pixels
const (
	RacketWidth  = 20.0
	RacketHeight = 100.0
)

// Ball geometry in logical pixels
const (
	BallSize = 30.0
)

// Motion in logical pixels per second
const (
	PlayerSpeed = 600.0
	BallSpeed   = 400.0
)

// Padding is the gap between a screen side and its paddle's outer face
const Padding = 40.0
