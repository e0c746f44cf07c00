// Package input turns a raw terminal byte stream into the per-frame input the
// duel consumes: a snapshot of held movement keys and an ordered list of
// discrete events.
package input

import (
	"bufio"
	"time"
)

// EventType identifies a discrete input event.
type EventType int

const (
	EventQuit       EventType = iota // Quit key, closed stream or cancelled session
	EventYellowFire                  // Yellow's fire key went down
	EventRedFire                     // Red's fire key went down
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventYellowFire:
		return "yellow-fire"
	case EventRedFire:
		return "red-fire"
	default:
		return "unknown"
	}
}

// Event is a single discrete input event.
type Event struct {
	Type EventType
}

// Held is the snapshot of movement keys considered held down this frame.
type Held struct {
	YellowLeft  bool // A
	YellowRight bool // D
	YellowUp    bool // W
	YellowDown  bool // S

	RedLeft  bool // Left arrow
	RedRight bool // Right arrow
	RedUp    bool // Up arrow
	RedDown  bool // Down arrow
}

// keyState tracks the last time each movement key was seen.
type keyState struct {
	yellowLeft  time.Time
	yellowRight time.Time
	yellowUp    time.Time
	yellowDown  time.Time
	redLeft     time.Time
	redRight    time.Time
	redUp       time.Time
	redDown     time.Time
}

// Stream delivers input bytes via a channel and tracks key state so that
// auto-repeated bytes read as a held key.
type Stream struct {
	ch       chan byte
	state    keyState
	hold     time.Duration
	now      func() time.Time
	lastSeen time.Time

	// pending holds an escape sequence cut off at the end of the last
	// Drain. The reader delivers bytes one at a time, so ESC [ and the
	// final byte can arrive in different frames.
	pending []byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. hold is how long a movement key stays held after its last byte.
func StartStream(r *bufio.Reader, hold time.Duration) *Stream {
	s := newStream(hold)
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream(hold time.Duration) *Stream {
	return &Stream{
		ch:   make(chan byte, 128),
		hold: hold,
		now:  time.Now,
	}
}

// Drain reads all available bytes without blocking and returns the discrete
// events they contain, in arrival order. Movement bytes update the held-key
// state read by Held. A closed stream yields a single quit event.
func (s *Stream) Drain() []Event {
	buf := append([]byte(nil), s.pending...)
	s.pending = s.pending[:0]
	closed := false

drain:
	for s.ch != nil {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.ch = nil
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	events := s.apply(buf, s.now())
	if closed {
		events = append(events, Event{Type: EventQuit})
	}
	return events
}

// Held returns the movement keys seen within the hold duration of the last
// Drain call.
func (s *Stream) Held() Held {
	at := s.lastSeen
	held := func(t time.Time) bool {
		return !t.IsZero() && at.Sub(t) < s.hold
	}
	return Held{
		YellowLeft:  held(s.state.yellowLeft),
		YellowRight: held(s.state.yellowRight),
		YellowUp:    held(s.state.yellowUp),
		YellowDown:  held(s.state.yellowDown),
		RedLeft:     held(s.state.redLeft),
		RedRight:    held(s.state.redRight),
		RedUp:       held(s.state.redUp),
		RedDown:     held(s.state.redDown),
	}
}

// apply parses buf, updating key timestamps and collecting discrete events.
// Handles CSI (ESC [) and SS3 (ESC O) arrow key sequences.
func (s *Stream) apply(buf []byte, now time.Time) []Event {
	s.lastSeen = now
	var events []Event

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && partialEscape(buf[i:]) {
			s.pending = append(s.pending, buf[i:]...)
			break
		}

		if b == '\x1b' && i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			if s.applyArrow(buf[i+2], now) {
				i += 2
				continue
			}
		}

		if ev, ok := s.applyByte(b, now); ok {
			events = append(events, ev)
		}
	}

	return events
}

// partialEscape reports whether tail is the start of an arrow key sequence
// still waiting for its final byte.
func partialEscape(tail []byte) bool {
	switch len(tail) {
	case 1:
		return true
	case 2:
		return tail[1] == '[' || tail[1] == 'O'
	}
	return false
}

// applyArrow records an arrow key. Returns false for unknown final bytes.
func (s *Stream) applyArrow(code byte, now time.Time) bool {
	switch code {
	case 'A':
		s.state.redUp = now
	case 'B':
		s.state.redDown = now
	case 'C':
		s.state.redRight = now
	case 'D':
		s.state.redLeft = now
	default:
		return false
	}
	return true
}

// applyByte updates key state for a single byte and reports any discrete
// event it produces.
func (s *Stream) applyByte(b byte, now time.Time) (Event, bool) {
	switch b {
	case 'q', 'Q', '\x03':
		return Event{Type: EventQuit}, true
	case 'f', 'F', ' ':
		return Event{Type: EventYellowFire}, true
	case '\r', '/', '0':
		return Event{Type: EventRedFire}, true
	case 'a', 'A':
		s.state.yellowLeft = now
	case 'd', 'D':
		s.state.yellowRight = now
	case 'w', 'W':
		s.state.yellowUp = now
	case 's', 'S':
		s.state.yellowDown = now
	}
	return Event{}, false
}
