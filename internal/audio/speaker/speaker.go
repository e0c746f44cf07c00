// Package speaker plays the duel's cues on the local audio device.
package speaker

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/tomz197/spaceduel/internal/audio"
)

// Speaker plays cues through oto. Samples are generated once; each cue
// gets its own player so overlapping cues mix.
type Speaker struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	shoot  []byte
	hit    []byte
}

// New opens the audio device. volume is in [0, 1].
func New(volume float64) (*Speaker, error) {
	ctx, ready, err := oto.NewContext(audio.SampleRate, audio.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	return &Speaker{
		ctx:    ctx,
		ready:  ready,
		volume: volume,
		shoot:  audio.Shoot(),
		hit:    audio.Hit(),
	}, nil
}

// PlayShoot plays the laser cue.
func (s *Speaker) PlayShoot() {
	s.play(s.shoot)
}

// PlayHit plays the explosion cue.
func (s *Speaker) PlayHit() {
	s.play(s.hit)
}

// Close suspends the audio device.
func (s *Speaker) Close() error {
	return s.ctx.Suspend()
}

// play starts samples without blocking. Cues requested before the device
// is ready are dropped.
func (s *Speaker) play(samples []byte) {
	select {
	case <-s.ready:
	default:
		return
	}
	go func() {
		player := s.ctx.NewPlayer(audio.NewReader(samples))
		player.SetVolume(s.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		_ = player.Close()
	}()
}
