package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/term-pong/vmath"
)

// Simulation applies Params to a GameState
// Holds no match state of its own besides the random source
type Simulation struct {
	params Params
	rng    RandSource
}

// NewSimulation binds tuning and a random source
func NewSimulation(params Params, rng RandSource) *Simulation {
	return &Simulation{
		params: params,
		rng:    rng,
	}
}

// Params returns a copy of the active tuning
func (s *Simulation) Params() Params {
	return s.params
}

// NewState serves a fresh match: paddles centered on their sides, ball centered
func (s *Simulation) NewState(screen Size) *GameState {
	cx, cy := screen.Center()
	st := &GameState{
		Paddle1: vmath.V2F(0, cy),
		Paddle2: vmath.V2F(0, cy),
		BallPos: vmath.V2F(cx, cy),
		BallVel: RandomDirection(s.rng),
	}
	s.Fit(st, screen)
	return st
}

// Playable reports whether screen is large enough to simulate on
func (s *Simulation) Playable(screen Size) bool {
	return screen.Covers(s.params.MinScreen())
}

// Fit moves paddles and ball inside a new playfield without scoring
func (s *Simulation) Fit(st *GameState, screen Size) {
	_, halfH := s.params.racketHalf()
	ballHalf := s.params.ballHalf()

	s.anchorPaddles(st, screen)
	st.Paddle1.Y = ClampPaddleY(st.Paddle1.Y, halfH, screen.H)
	st.Paddle2.Y = ClampPaddleY(st.Paddle2.Y, halfH, screen.H)
	st.BallPos.X = vmath.ClampF(st.BallPos.X, ballHalf, screen.W-ballHalf)
	st.BallPos.Y = vmath.ClampF(st.BallPos.Y, ballHalf, screen.H-ballHalf)
	st.Screen = screen
}

// ClampPaddleY keeps a paddle center inside [halfH, screenH-halfH]
func ClampPaddleY(y, halfH, screenH float64) float64 {
	return vmath.ClampF(y, halfH, screenH-halfH)
}

// Step advances the state by dt seconds and reports what happened
// A playfield below MinScreen leaves the state untouched
func (s *Simulation) Step(st *GameState, in Input, dt float64, screen Size) Events {
	if !s.Playable(screen) {
		return EventNone
	}
	if st.Screen != screen {
		s.Fit(st, screen)
	}

	var ev Events
	p := &s.params
	_, halfH := p.racketHalf()
	ballHalf := p.ballHalf()

	// Paddles
	st.Paddle1.Y = ClampPaddleY(st.Paddle1.Y+s.paddleDelta(in.P1Up, in.P1Down, dt), halfH, screen.H)
	st.Paddle2.Y = ClampPaddleY(st.Paddle2.Y+s.paddleDelta(in.P2Up, in.P2Down, dt), halfH, screen.H)

	// Ball integration
	dir := vmath.V2FNormalize(st.BallVel)
	if dir.IsZero() {
		dir = RandomDirection(s.rng)
	}
	st.BallVel = dir
	st.BallPos = vmath.V2FAdd(st.BallPos, vmath.V2FScale(dir, p.BallSpeed*dt))

	// Side exit
	if st.BallPos.X < ballHalf {
		st.Score2++
		s.serve(st, screen)
		ev |= EventScoreP2
	} else if st.BallPos.X > screen.W-ballHalf {
		st.Score1++
		s.serve(st, screen)
		ev |= EventScoreP1
	}

	// Top/bottom walls
	if st.BallPos.Y < ballHalf {
		st.BallPos.Y = ballHalf
		st.BallVel.Y = math.Abs(st.BallVel.Y)
		ev |= EventWallBounce
	}
	if st.BallPos.Y > screen.H-ballHalf {
		st.BallPos.Y = screen.H - ballHalf
		st.BallVel.Y = -math.Abs(st.BallVel.Y)
		ev |= EventWallBounce
	}

	// Paddle contact
	ball := vmath.NewBoxF(st.BallPos, ballHalf, ballHalf)
	if ball.Overlaps(s.paddleBox(st.Paddle1)) && st.BallVel.X < 0 {
		st.BallVel.X = -st.BallVel.X
		ev |= EventPaddleHit
	}
	if ball.Overlaps(s.paddleBox(st.Paddle2)) && st.BallVel.X > 0 {
		st.BallVel.X = -st.BallVel.X
		ev |= EventPaddleHit
	}

	return ev
}

// TickResult summarizes one Advance call
type TickResult struct {
	Ticks  int
	Events Events
}

// Advance feeds a real frame delta into the simulation
// Fixed-step mode runs whole ticks out of the accumulator and polls src once per tick;
// variable mode runs a single step with the (capped) frame delta
func (s *Simulation) Advance(st *GameState, src InputSource, frameDelta time.Duration, screen Size) TickResult {
	var res TickResult

	if frameDelta < 0 {
		frameDelta = 0
	}
	if s.params.MaxFrameDelta > 0 && frameDelta > s.params.MaxFrameDelta {
		frameDelta = s.params.MaxFrameDelta
	}

	// Nothing to simulate; drop the backlog so a restored screen does not burst
	if !s.Playable(screen) {
		st.Accumulator = 0
		return res
	}

	if !s.params.FixedStep {
		if frameDelta == 0 {
			return res
		}
		res.Events = s.Step(st, PollInput(src), frameDelta.Seconds(), screen)
		res.Ticks = 1
		return res
	}

	dt := s.params.TickInterval.Seconds()
	if dt <= 0 {
		return res
	}
	st.Accumulator += frameDelta.Seconds()
	for st.Accumulator > dt {
		res.Events |= s.Step(st, PollInput(src), dt, screen)
		st.Accumulator -= dt
		res.Ticks++
	}
	return res
}

// serve re-centers the ball with a fresh diagonal
func (s *Simulation) serve(st *GameState, screen Size) {
	cx, cy := screen.Center()
	st.BallPos = vmath.V2F(cx, cy)
	st.BallVel = RandomDirection(s.rng)
}

// anchorPaddles pins paddle X to the padding offset of each side
func (s *Simulation) anchorPaddles(st *GameState, screen Size) {
	halfW, _ := s.params.racketHalf()
	st.Paddle1.X = s.params.Padding + halfW
	st.Paddle2.X = screen.W - s.params.Padding - halfW
}

func (s *Simulation) paddleDelta(up, down bool, dt float64) float64 {
	var d float64
	if up {
		d -= s.params.PlayerSpeed * dt
	}
	if down {
		d += s.params.PlayerSpeed * dt
	}
	return d
}

func (s *Simulation) paddleBox(center vmath.Vec2F) vmath.BoxF {
	halfW, halfH := s.params.racketHalf()
	return vmath.NewBoxF(center, halfW, halfH)
}
