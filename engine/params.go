package engine

import (
	"time"

	"github.com/lixenwraith/term-pong/constants"
)

// Size is the drawable area in logical pixels
type Size struct {
	W, H float64
}

// Center returns the midpoint of the area
func (s Size) Center() (float64, float64) {
	return s.W * 0.5, s.H * 0.5
}

// Covers reports whether s is at least min on both axes
func (s Size) Covers(min Size) bool {
	return s.W >= min.W && s.H >= min.H
}

// Params holds the tunables of the simulation
type Params struct {
	RacketWidth  float64
	RacketHeight float64
	BallSize     float64
	PlayerSpeed  float64 // logical px/sec
	BallSpeed    float64 // logical px/sec
	Padding      float64

	// Fixed-step settings; FixedStep=false steps once per frame with the real delta
	FixedStep     bool
	TickInterval  time.Duration
	MaxFrameDelta time.Duration
}

// DefaultParams returns the stock arcade tuning
func DefaultParams() Params {
	return Params{
		RacketWidth:   constants.RacketWidth,
		RacketHeight:  constants.RacketHeight,
		BallSize:      constants.BallSize,
		PlayerSpeed:   constants.PlayerSpeed,
		BallSpeed:     constants.BallSpeed,
		Padding:       constants.Padding,
		FixedStep:     true,
		TickInterval:  constants.TickInterval,
		MaxFrameDelta: constants.MaxFrameDelta,
	}
}

// MinScreen is the smallest playfield that fits both paddles with a ball between them
func (p *Params) MinScreen() Size {
	return Size{
		W: 2*(p.Padding+p.RacketWidth) + p.BallSize,
		H: p.BallSize,
	}
}

func (p *Params) racketHalf() (float64, float64) {
	return p.RacketWidth * 0.5, p.RacketHeight * 0.5
}

func (p *Params) ballHalf() float64 {
	return p.BallSize * 0.5
}
