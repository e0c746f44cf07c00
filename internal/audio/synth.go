package audio

import "math"

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels
// at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		off := i*8 + ch*4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
}

// softSat applies gentle saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

// Shoot generates the laser cue: a short falling sweep.
func Shoot() []byte {
	n := int(0.16 * SampleRate)
	buf := makeBuf(n)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := 1400 * math.Pow(220.0/1400.0, p)
		phase += 2 * math.Pi * freq / SampleRate
		tone := math.Tanh(3 * math.Sin(phase))
		env := math.Exp(-p*5) * (1 - p)
		putStereoF32(buf, i, softSat(tone*env*0.45))
	}
	return buf
}

// Hit generates the explosion cue: a noise burst over a dropping sub tone.
func Hit() []byte {
	n := int(0.4 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(91872)
	lp := 0.0
	subPhase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)

		subFreq := 140 * math.Pow(40.0/140.0, p)
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*6) * 0.5

		lp = lp*0.8 + lcg(&seed)*0.2
		body := lp * math.Exp(-p*7) * 0.9

		putStereoF32(buf, i, softSat(sub+body))
	}
	return buf
}
