// Package audio provides the fire-and-forget sound cues played when a ship
// fires or is hit, and the PCM samples behind them.
package audio

import "io"

// Sample format shared by every cue: stereo float32 little-endian.
const (
	SampleRate   = 44100
	ChannelCount = 2
)

// Bell rings the terminal bell for every cue. Used where the players'
// speakers are on the far side of an SSH connection.
type Bell struct {
	w io.Writer
}

// NewBell creates a Bell writing to the player's terminal.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// PlayShoot rings the bell.
func (b *Bell) PlayShoot() {
	_, _ = io.WriteString(b.w, "\a")
}

// PlayHit rings the bell.
func (b *Bell) PlayHit() {
	_, _ = io.WriteString(b.w, "\a")
}

// Mute discards every cue.
type Mute struct{}

// PlayShoot does nothing.
func (Mute) PlayShoot() {}

// PlayHit does nothing.
func (Mute) PlayHit() {}

// Reader streams a generated cue.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a reader over samples.
func NewReader(samples []byte) *Reader {
	return &Reader{data: samples}
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
