package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with the given attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		att = total / 2
		rel = total - att
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: total - att - rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream by a linear factor
// math.Log2(0) is -Inf, so zero volume is rendered silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// sineTone returns a timed sine tone from beep's generator, falling back to the
// local oscillator when the generator rejects the frequency
func sineTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, duration, WaveSine, rate)
	}
	return beep.Take(rate.N(duration), tone)
}

// CreateToggleSound generates a short high blip
func CreateToggleSound(rate beep.SampleRate) beep.Streamer {
	tone := sineTone(toggleFrequencyHz, toggleDuration, rate)
	return NewEnvelope(tone, toggleDuration, toggleAttack, toggleRelease, rate)
}

// CreateStepSound generates a soft tick per generation
func CreateStepSound(rate beep.SampleRate) beep.Streamer {
	tone := sineTone(stepFrequencyHz, stepDuration, rate)
	return NewEnvelope(tone, stepDuration, stepAttack, stepRelease, rate)
}

// createChime builds a two-note sequence
func createChime(first, second float64, rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(sineTone(first, chimeNoteDuration, rate), chimeNoteDuration, chimeAttack, chimeRelease, rate)
	n2 := NewEnvelope(sineTone(second, chimeNoteDuration, rate), chimeNoteDuration, chimeAttack, chimeRelease, rate)
	return beep.Seq(n1, n2)
}

// CreateSaveSound generates a rising two-tone chime
func CreateSaveSound(rate beep.SampleRate) beep.Streamer {
	return createChime(chimeLowHz, chimeHighHz, rate)
}

// CreateLoadSound generates a falling two-tone chime
func CreateLoadSound(rate beep.SampleRate) beep.Streamer {
	return createChime(chimeHighHz, chimeLowHz, rate)
}

// CreateResetSound generates a low square buzz
func CreateResetSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(resetFrequencyHz, resetDuration, WaveSquare, rate)
	return NewEnvelope(osc, resetDuration, resetAttack, resetRelease, rate)
}

// GetSoundEffect returns the streamer for a cue scaled by its mix level and master volume
func GetSoundEffect(soundType SoundType, master float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch soundType {
	case SoundToggle:
		s = CreateToggleSound(rate)
	case SoundStep:
		s = CreateStepSound(rate)
	case SoundSave:
		s = CreateSaveSound(rate)
	case SoundLoad:
		s = CreateLoadSound(rate)
	case SoundReset:
		s = CreateResetSound(rate)
	default:
		return nil
	}
	return newVolume(s, cueLevels[soundType]*master)
}
