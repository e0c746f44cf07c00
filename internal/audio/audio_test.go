package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

func TestGeneratedCues(t *testing.T) {
	tests := []struct {
		name    string
		gen     func() []byte
		seconds float64
	}{
		{"shoot", Shoot, 0.16},
		{"hit", Hit, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.gen()
			want := int(tt.seconds*SampleRate) * 8
			if len(buf) != want {
				t.Fatalf("len = %d bytes, want %d", len(buf), want)
			}

			peak := 0.0
			for i := 0; i < len(buf); i += 4 {
				s := float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[i:])))
				if math.IsNaN(s) || s < -1 || s > 1 {
					t.Fatalf("sample %d = %v, outside [-1,1]", i/4, s)
				}
				peak = max(peak, math.Abs(s))
			}
			if peak < 0.05 {
				t.Errorf("peak amplitude %v, cue is silent", peak)
			}
		})
	}
}

func TestStereoChannelsMatch(t *testing.T) {
	buf := makeBuf(1)
	putStereoF32(buf, 0, 0.5)

	if !bytes.Equal(buf[:4], buf[4:]) {
		t.Errorf("left %v and right %v differ", buf[:4], buf[4:])
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf)); got != 0.5 {
		t.Errorf("sample = %v, want 0.5", got)
	}
}

func TestReader(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("ReadAll = %v", got)
	}
}

func TestBell(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)

	b.PlayShoot()
	b.PlayHit()
	if buf.String() != "\a\a" {
		t.Errorf("Bell wrote %q, want two BEL bytes", buf.String())
	}
}
