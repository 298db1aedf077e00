package constants

import "time"

// Logical pixels covered by one terminal cell
// Terminal cells are roughly twice as tall as wide
const (
	CellWidth  = 10
	CellHeight = 20
)

// Scene layout in logical pixels
const (
	MiddleLineWidth = 2.0
	ScoreTextY      = 40.0
)

// ScoreSeparator sits between the two score digits ("P1    P2")
const ScoreSeparator = "    "

// TooSmallText replaces the playfield while the terminal cannot fit it
const TooSmallText = "terminal too small"

// KeyHoldWindow is how long a key press counts as held
// Covers the gap between terminal auto-repeat events
const KeyHoldWindow = 180 * time.Millisecond
