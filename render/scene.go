package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/term-pong/constants"
	"github.com/lixenwraith/term-pong/engine"
	"github.com/lixenwraith/term-pong/vmath"
)

// ScoreText formats the score line ("P1    P2")
func ScoreText(score1, score2 int) string {
	return fmt.Sprintf("%d%s%d", score1, constants.ScoreSeparator, score2)
}

// Scene draws a GameState onto a Canvas; it never mutates the state
type Scene struct {
	canvas  Canvas
	palette Palette

	racketW, racketH float64
	ballRadius       float64
}

// NewScene sizes entities from the simulation params
func NewScene(canvas Canvas, params engine.Params, palette Palette) *Scene {
	return &Scene{
		canvas:     canvas,
		palette:    palette,
		racketW:    params.RacketWidth,
		racketH:    params.RacketHeight,
		ballRadius: params.BallSize * 0.5,
	}
}

// Draw renders one frame: center line, paddles, ball, score
func (s *Scene) Draw(st *engine.GameState, screen engine.Size) {
	c := s.canvas
	c.Clear(s.palette.Background)

	// Center line goes first so the ball passes over it
	c.FillRect(screen.W*0.5-constants.MiddleLineWidth*0.5, 0, constants.MiddleLineWidth, screen.H, s.palette.MiddleLine)

	for _, p := range [2]vmath.Vec2F{st.Paddle1, st.Paddle2} {
		c.FillRect(p.X-s.racketW*0.5, p.Y-s.racketH*0.5, s.racketW, s.racketH, s.palette.Paddle)
	}

	c.FillCircle(st.BallPos.X, st.BallPos.Y, s.ballRadius, s.palette.Ball)

	text := ScoreText(st.Score1, st.Score2)
	tw, th := c.MeasureText(text)
	c.DrawText(screen.W*0.5-tw*0.5, constants.ScoreTextY-th*0.5, text, s.palette.Score)

	c.Present()
}

// DrawNotice replaces the playfield with one line of text centered on screen
// Text wider than the screen starts at the left edge
func (s *Scene) DrawNotice(text string, screen engine.Size) {
	c := s.canvas
	c.Clear(s.palette.Background)

	tw, th := c.MeasureText(text)
	x := math.Max(0, screen.W*0.5-tw*0.5)
	c.DrawText(x, screen.H*0.5-th*0.5, text, s.palette.Notice)

	c.Present()
}
