package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/ant-attack/constant"
	"github.com/lixenwraith/ant-attack/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length wave, optionally gliding between two frequencies
type oscillator struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a constant-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(from*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// decay fades a stream exponentially, rate is the decay constant per second
type decay struct {
	streamer beep.Streamer
	position int
	k        float64
	rate     beep.SampleRate
}

func newDecay(s beep.Streamer, k float64, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, k: k, rate: rate}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := math.Exp(-d.k * float64(d.position) / float64(d.rate))
		samples[i][0] *= g
		samples[i][1] *= g
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales s by a linear gain
// math.Log2(0) is -Inf, so zero gain is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a single enveloped note
// Sine notes come from beep's generator, other shapes and out-of-range pitches from the oscillator
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	if wave == WaveSine {
		if sine, err := generators.SineTone(rate, freq); err == nil {
			s = beep.Take(rate.N(d), sine)
		}
	}
	if s == nil {
		s = NewOscillator(freq, d, wave, rate)
	}
	return NewEnvelope(s, d, constant.SoundAttack, constant.SoundRelease, rate)
}

// melody plays notes back to back, each lasting d
func melody(d time.Duration, wave WaveType, rate beep.SampleRate, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = tone(f, d, wave, rate)
	}
	return beep.Seq(notes...)
}

// Synthesize builds the raw streamer for a sound, nil for unknown sounds
// Every streamer is finite
func Synthesize(s core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch s {
	case core.SoundFanfare:
		// C5 E5 G5 C6
		return melody(constant.FanfareNoteDuration, WaveSquare, rate, 523.25, 659.25, 783.99, 1046.50)
	case core.SoundOuch:
		return NewEnvelope(NewSweep(520, 260, constant.OuchDuration, WaveSaw, rate),
			constant.OuchDuration, constant.SoundAttack, constant.SoundRelease, rate)
	case core.SoundStep:
		return newVolume(newDecay(NewOscillator(0, constant.StepDuration, WaveNoise, rate), 80, rate), 0.5)
	case core.SoundJump:
		return NewEnvelope(NewSweep(300, 700, constant.JumpDuration, WaveSquare, rate),
			constant.JumpDuration, constant.SoundAttack, constant.SoundRelease, rate)
	case core.SoundBlip:
		return tone(1200, constant.BlipDuration, WaveSquare, rate)
	case core.SoundRescue:
		// G5 B5 D6
		return melody(constant.RescueNoteDuration, WaveSine, rate, 783.99, 987.77, 1174.66)
	case core.SoundWasted:
		return NewEnvelope(NewSweep(440, 55, constant.WastedDuration, WaveSaw, rate),
			constant.WastedDuration, constant.SoundAttack, constant.SoundRelease, rate)
	case core.SoundOver:
		// E4 C4 A3
		return melody(constant.OverNoteDuration, WaveSquare, rate, 329.63, 261.63, 220.00)
	case core.SoundBoom:
		noise := newDecay(NewOscillator(0, constant.BoomDuration, WaveNoise, rate), 5, rate)
		rumble := newDecay(NewSweep(90, 40, constant.BoomDuration, WaveSine, rate), 3, rate)
		return beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.8))
	case core.SoundAnt:
		return NewEnvelope(NewSweep(180, 120, constant.AntDuration, WaveSquare, rate),
			constant.AntDuration, constant.SoundAttack, constant.SoundRelease, rate)
	default:
		return nil
	}
}
