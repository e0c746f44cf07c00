package loop

import (
	"errors"
	"time"

	"github.com/tomz197/spaceduel/internal/draw"
	"github.com/tomz197/spaceduel/internal/input"
)

// scriptedInput replays one slice of events per frame and sends quit once
// the script runs out.
type scriptedInput struct {
	frames [][]input.Event
	held   []input.Held
	frame  int
}

func (s *scriptedInput) Drain() []input.Event {
	defer func() { s.frame++ }()
	if s.frame < len(s.frames) {
		return s.frames[s.frame]
	}
	return []input.Event{{Type: input.EventQuit}}
}

func (s *scriptedInput) Held() input.Held {
	i := s.frame - 1
	if i >= 0 && i < len(s.held) {
		return s.held[i]
	}
	return input.Held{}
}

type recordingRenderer struct {
	frames  []draw.Frame
	winners []string
	err     error
}

func (r *recordingRenderer) DrawFrame(f draw.Frame) error {
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, f)
	return nil
}

func (r *recordingRenderer) DrawWinner(text string) error {
	if r.err != nil {
		return r.err
	}
	r.winners = append(r.winners, text)
	return nil
}

type countingAudio struct {
	shoots int
	hits   int
}

func (a *countingAudio) PlayShoot() { a.shoots++ }
func (a *countingAudio) PlayHit()   { a.hits++ }

type fakeClock struct {
	ticks int
	slept []time.Duration
}

func (c *fakeClock) Tick()                 { c.ticks++ }
func (c *fakeClock) Sleep(d time.Duration) { c.slept = append(c.slept, d) }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var errClosedSession = errors.New("session closed")

func events(types ...input.EventType) []input.Event {
	evs := make([]input.Event, len(types))
	for i, t := range types {
		evs[i] = input.Event{Type: t}
	}
	return evs
}

type harness struct {
	input    *scriptedInput
	renderer *recordingRenderer
	audio    *countingAudio
	clock    *fakeClock
	app      *App
}

func newHarness(frames [][]input.Event, held []input.Held) *harness {
	h := &harness{
		input:    &scriptedInput{frames: frames, held: held},
		renderer: &recordingRenderer{},
		audio:    &countingAudio{},
		clock:    &fakeClock{},
	}
	h.app = &App{
		Input:    h.input,
		Renderer: h.renderer,
		Audio:    h.audio,
		Clock:    h.clock,
	}
	return h
}
