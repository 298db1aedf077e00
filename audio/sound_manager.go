package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/term-pong/engine"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Cue identifies a sound effect
type Cue uint8

const (
	CuePaddleHit Cue = iota
	CueWallBounce
	CueScore
)

func (c Cue) String() string {
	switch c {
	case CuePaddleHit:
		return "paddle"
	case CueWallBounce:
		return "wall"
	case CueScore:
		return "score"
	}
	return "unknown"
}

// tone is one sine segment of a cue
type tone struct {
	freq     float64
	duration time.Duration
}

var cueTones = map[Cue][]tone{
	CuePaddleHit:  {{880, 50 * time.Millisecond}},
	CueWallBounce: {{440, 40 * time.Millisecond}},
	CueScore:      {{660, 80 * time.Millisecond}, {330, 160 * time.Millisecond}},
}

// NewCueStreamer builds the finite streamer for a cue at the given rate
func NewCueStreamer(c Cue, sr beep.SampleRate) (beep.Streamer, error) {
	tones, ok := cueTones[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", c)
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sr, t.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", c, err)
		}
		parts = append(parts, beep.Take(sr.N(t.duration), sine))
	}
	return beep.Seq(parts...), nil
}

// SoundManager manages all game audio
// All Play calls are no-ops until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // base-2 exponent, 0 = unity gain
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether the speaker is live
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues a cue on the mixer
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := NewCueStreamer(c, sampleRate)
	if err != nil {
		return
	}
	vol := &effects.Volume{Streamer: s, Base: 2, Volume: sm.volume}

	speaker.Lock()
	sm.mixer.Add(vol)
	speaker.Unlock()
}

// PlayEvents plays at most one cue per frame; scoring outranks hits and bounces
func (sm *SoundManager) PlayEvents(ev engine.Events) {
	if c, ok := CueForEvents(ev); ok {
		sm.Play(c)
	}
}

// CueForEvents picks the cue for a set of simulation events
func CueForEvents(ev engine.Events) (Cue, bool) {
	switch {
	case ev.Scored():
		return CueScore, true
	case ev.Has(engine.EventPaddleHit):
		return CuePaddleHit, true
	case ev.Has(engine.EventWallBounce):
		return CueWallBounce, true
	}
	return 0, false
}
