package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is an oscillator whose frequency glides linearly from one value to
// another over its duration.
type sweep struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	total    int
	pos      int
	phase    float64
	rng      *rand.Rand
}

// NewSweep returns a finite oscillator gliding from one frequency to another.
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:  from,
		to:    to,
		wave:  wave,
		rate:  rate,
		total: rate.N(d),
		rng:   rand.New(rand.NewSource(int64(from*1000 + to))), //#nosec G404 -- audio noise
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (s.phase - 0.5)
		case WaveNoise:
			val = s.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*t
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope applies a linear attack/release shape to s.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.pos < e.attack && e.attack > 0 {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; left < e.release && e.release > 0 {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// drone is the endless background track: a slow two-chord bass pulse.
type drone struct {
	rate  beep.SampleRate
	pos   int
	cycle int
}

func newDrone(rate beep.SampleRate) *drone {
	return &drone{rate: rate, cycle: rate.N(4 * time.Second)}
}

func (d *drone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(d.pos) / float64(d.rate)
		root := 55.0
		if d.pos%d.cycle >= d.cycle/2 {
			root = 65.41 // C2 after A1
		}
		beat := float64(d.pos%d.rate.N(500*time.Millisecond)) / float64(d.rate.N(500*time.Millisecond))
		pulse := 0.6 + 0.4*math.Exp(-beat*6)

		val := pulse * (0.5*math.Sin(2*math.Pi*root*t) + 0.25*math.Sin(2*math.Pi*root*2*t))
		samples[i][0] = val * 0.8
		samples[i][1] = val * 0.8
		d.pos++
	}
	return len(samples), true
}

func (d *drone) Err() error { return nil }

// volume wraps s at a linear gain.
func volume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, gain)
	return v
}

// setGain sets a linear gain on v. Zero or less silences it.
func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(gain)
}

// Sound effects. Each returns a finite streamer.

func laserSound(rate beep.SampleRate, gain float64) beep.Streamer {
	const d = 180 * time.Millisecond
	osc := NewSweep(1400, 300, d, WaveSaw, rate)
	return volume(NewEnvelope(osc, d, 5*time.Millisecond, 120*time.Millisecond, rate), gain*0.6)
}

func hitSound(rate beep.SampleRate, gain float64) beep.Streamer {
	const d = 120 * time.Millisecond
	noise := NewEnvelope(NewSweep(0, 0, d, WaveNoise, rate), d, 0, 100*time.Millisecond, rate)

	var tone beep.Streamer
	if sine, err := generators.SineTone(rate, 880); err == nil {
		tone = NewEnvelope(beep.Take(rate.N(d), sine), d, 2*time.Millisecond, 80*time.Millisecond, rate)
	} else {
		tone = NewEnvelope(NewSweep(880, 880, d, WaveSine, rate), d, 2*time.Millisecond, 80*time.Millisecond, rate)
	}
	return volume(beep.Mix(volume(noise, 0.35), volume(tone, 0.55)), gain)
}

func deathSound(rate beep.SampleRate, gain float64) beep.Streamer {
	const d = 700 * time.Millisecond
	osc := NewSweep(420, 60, d, WaveSquare, rate)
	return volume(NewEnvelope(osc, d, 10*time.Millisecond, 400*time.Millisecond, rate), gain*0.5)
}

func unlockSound(rate beep.SampleRate, gain float64) beep.Streamer {
	const n1, n2 = 120 * time.Millisecond, 260 * time.Millisecond
	first := NewEnvelope(NewSweep(659.25, 659.25, n1, WaveSquare, rate), n1, 5*time.Millisecond, 40*time.Millisecond, rate)
	second := NewEnvelope(NewSweep(987.77, 987.77, n2, WaveSquare, rate), n2, 5*time.Millisecond, 180*time.Millisecond, rate)
	return volume(beep.Seq(first, second), gain*0.4)
}
