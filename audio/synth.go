package audio

import "math"

// Generate synthesizes s as interleaved stereo float32 little-endian frames.
func Generate(s Sound) []byte {
	switch s {
	case SoundEat:
		return genEat()
	case SoundGameOver:
		return genGameOver()
	case SoundWin:
		return genWin()
	case SoundClick:
		return genClick()
	}
	return nil
}

// putStereoF32 writes a [-1,1] sample to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < ChannelCount; c++ {
		o := i*ChannelCount*4 + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

func makeBuf(frames int) []byte { return make([]byte, frames*ChannelCount*4) }

// softSat clamps x into [-1,1] with a gentle knee.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

type note struct{ freq, onset float64 }

// genNotes mixes FM notes that each ring until the end of dur.
func genNotes(dur float64, notes []note, gain float64) []byte {
	n := int(dur * SampleRate)
	mix := make([]float64, n)
	for _, nt := range notes {
		start := int(nt.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.01, 0.25, 0.3, 0.45)
			mix[i] += fm(t, nt.freq, 2.0, 2.0*env) * env * gain
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genEat: short upward FM pop.
func genEat() []byte {
	n := int(0.09 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		s := fm(t, freq, 2.0, 3.5*env) * env * 0.5
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: falling E-C-A.
func genGameOver() []byte {
	return genNotes(0.75, []note{
		{329.63, 0.00},
		{261.63, 0.14},
		{220.00, 0.28},
	}, 0.32)
}

// genWin: rising C-E-G-C.
func genWin() []byte {
	return genNotes(0.9, []note{
		{523.25, 0.00},
		{659.25, 0.10},
		{783.99, 0.20},
		{1046.50, 0.30},
	}, 0.25)
}

// genClick: brief high tick for pause and restart.
func genClick() []byte {
	n := SampleRate * 40 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.3, 0.0, 0.1)
		putStereoF32(buf, i, math.Sin(2*math.Pi*1800*t)*env*0.3)
	}
	return buf
}
