// Package session drives one continuous match: it owns the game state, feeds
// terminal key events into held-key tracking, advances the simulation on a
// frame ticker and draws the result
package session

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/term-pong/constants"
	"github.com/lixenwraith/term-pong/engine"
	"github.com/lixenwraith/term-pong/input"
	"github.com/lixenwraith/term-pong/render"
)

// SoundPlayer receives the events of each frame
type SoundPlayer interface {
	PlayEvents(ev engine.Events)
}

type silentPlayer struct{}

func (silentPlayer) PlayEvents(engine.Events) {}

// Options configures a Session; zero values fall back to defaults
type Options struct {
	FrameInterval time.Duration
	CellWidth     int
	CellHeight    int
	HoldWindow    time.Duration
	Keys          *input.KeyTable
	Palette       *render.Palette

	Sound  SoundPlayer
	Clock  engine.Clock
	Logger *zap.Logger

	// CrashHandler runs when the event poller panics; nil re-panics
	CrashHandler func(r any)
}

// Session is the single owner of the game state
type Session struct {
	screen tcell.Screen
	canvas *render.TerminalRenderer
	scene  *render.Scene
	sim    *engine.Simulation
	state  *engine.GameState
	keys   *input.KeyState

	sound   SoundPlayer
	clock   engine.Clock
	log     *zap.Logger
	onCrash func(r any)

	matchID       string
	frameInterval time.Duration
	lastFrame     time.Time
	frames        uint64
}

// New creates a session over an initialized screen
func New(screen tcell.Screen, sim *engine.Simulation, opts Options) *Session {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = constants.FrameUpdateInterval
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = constants.CellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = constants.CellHeight
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = constants.KeyHoldWindow
	}
	keys := input.DefaultKeyTable()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	palette := render.DefaultPalette()
	if opts.Palette != nil {
		palette = *opts.Palette
	}
	if opts.Sound == nil {
		opts.Sound = silentPlayer{}
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewMonotonicClock()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	matchID := uuid.NewString()
	canvas := render.NewTerminalRenderer(screen, opts.CellWidth, opts.CellHeight)

	s := &Session{
		screen:        screen,
		canvas:        canvas,
		scene:         render.NewScene(canvas, sim.Params(), palette),
		sim:           sim,
		keys:          input.NewKeyState(keys, opts.HoldWindow, opts.Clock),
		sound:         opts.Sound,
		clock:         opts.Clock,
		log:           opts.Logger.With(zap.String("match_id", matchID)),
		onCrash:       opts.CrashHandler,
		matchID:       matchID,
		frameInterval: opts.FrameInterval,
	}
	s.state = sim.NewState(s.size())
	s.lastFrame = s.clock.Now()
	return s
}

// MatchID identifies this session in logs
func (s *Session) MatchID() string {
	return s.matchID
}

// Snapshot returns a copy of the current game state
func (s *Session) Snapshot() engine.GameState {
	return s.state.Snapshot()
}

// Frames is the number of frames drawn so far
func (s *Session) Frames() uint64 {
	return s.frames
}

func (s *Session) size() engine.Size {
	w, h := s.canvas.LogicalSize()
	return engine.Size{W: w, H: h}
}

// HandleEvent applies one terminal event; returns false when the player quits
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if input.IsQuit(ev.Key(), ev.Rune()) {
			s.log.Info("quit requested", zap.Int("score1", s.state.Score1), zap.Int("score2", s.state.Score2))
			return false
		}
		s.keys.HandleKey(ev.Key(), ev.Rune(), s.clock.Now())

	case *tcell.EventResize:
		s.screen.Sync()
		// Held keys straddling a resize would otherwise keep the paddle moving
		s.keys.Reset()
		cols, rows := ev.Size()
		s.log.Debug("terminal resized", zap.Int("cols", cols), zap.Int("rows", rows))
	}
	return true
}

// Frame advances the simulation by the real time since the previous frame and draws it
func (s *Session) Frame() {
	now := s.clock.Now()
	delta := now.Sub(s.lastFrame)
	s.lastFrame = now

	screen := s.size()
	if !s.sim.Playable(screen) {
		s.sim.Advance(s.state, s.keys, delta, screen)
		s.scene.DrawNotice(constants.TooSmallText, screen)
		s.frames++
		return
	}
	score1, score2 := s.state.Score1, s.state.Score2

	res := s.sim.Advance(s.state, s.keys, delta, screen)
	if res.Events != engine.EventNone {
		s.sound.PlayEvents(res.Events)
	}
	if res.Events.Scored() {
		s.log.Info("point scored",
			zap.Int("score1", s.state.Score1),
			zap.Int("score2", s.state.Score2),
			zap.Int("p1_delta", s.state.Score1-score1),
			zap.Int("p2_delta", s.state.Score2-score2),
		)
	}
	if res.Ticks > 0 && res.Events.Has(engine.EventPaddleHit) {
		s.log.Debug("paddle hit", zap.Stringer("events", res.Events), zap.Int("ticks", res.Ticks))
	}

	s.scene.Draw(s.state, screen)
	s.frames++
}

// Run plays until the player quits, the screen closes or ctx is cancelled
// Returns ctx.Err() on cancellation and nil otherwise
func (s *Session) Run(ctx context.Context) error {
	events := make(chan tcell.Event, constants.EventChannelSize)
	done := make(chan struct{})
	defer close(done)

	go s.pollEvents(events, done)

	ticker := time.NewTicker(s.frameInterval)
	defer ticker.Stop()

	s.log.Info("match started",
		zap.Float64("width", s.size().W),
		zap.Float64("height", s.size().H),
		zap.Bool("fixed_step", s.sim.Params().FixedStep),
	)

	s.lastFrame = s.clock.Now()
	s.Frame()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("match cancelled", zap.Error(ctx.Err()))
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				s.log.Info("screen closed")
				return nil
			}
			if !s.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			s.Frame()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done closes
func (s *Session) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			if s.onCrash == nil {
				panic(r)
			}
			s.onCrash(r)
		}
	}()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
