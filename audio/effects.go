package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/bubble-slicer/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves with an optional linear pitch glide
type oscillator struct {
	freq     float64
	glide    float64 // Frequency change per sample
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a new fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates an oscillator sweeping linearly from one frequency to another
func NewGlide(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	glide := 0.0
	if samples > 0 {
		glide = (to - from) / float64(samples)
	}
	return &oscillator{
		freq:     from,
		glide:    glide,
		duration: samples,
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(samples))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := o.duration - o.position
	if remaining <= 0 {
		return 0, false
	}
	n = min(len(samples), remaining)
	for i := range samples[:n] {
		v := o.sample()
		samples[i] = [2]float64{v, v}
	}
	o.position += n
	return n, true
}

// sample returns the current wave value and advances phase and pitch
func (o *oscillator) sample() float64 {
	var v float64
	switch o.wave {
	case WaveSine:
		v = math.Sin(2 * math.Pi * o.phase)
	case WaveSquare:
		v = 1
		if o.phase >= 0.5 {
			v = -1
		}
	case WaveSaw:
		v = 2*o.phase - 1
	case WaveNoise:
		v = 2*o.noise.Float64() - 1
	}

	_, o.phase = math.Modf(o.phase + o.freq/float64(o.rate))
	o.freq += o.glide
	return v
}

func (o *oscillator) Err() error { return nil }

// envelope ramps gain up over attack and down over release, and ends the stream at its duration
type envelope struct {
	source   beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s in an attack/release envelope lasting duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		source:  s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := e.total - e.position
	if remaining <= 0 {
		return 0, false
	}

	n, ok = e.source.Stream(samples[:min(len(samples), remaining)])
	for i := range samples[:n] {
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

// gain is linear in both ramps, release wins where they overlap
func (e *envelope) gain(pos int) float64 {
	if left := e.total - pos; left < e.release {
		return float64(left) / float64(e.release)
	}
	if pos < e.attack {
		return float64(pos) / float64(e.attack)
	}
	return 1
}

func (e *envelope) Err() error { return e.source.Err() }

// newVolume wraps a stream with a linear gain, 0 means silent
// math.Log2(0) is -Inf, so zero volume is handled as silence
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// SlicePitch returns the slice tone frequency for a combo multiplier
// Pitch rises one step per combo level up to a ceiling
func SlicePitch(combo int) float64 {
	steps := min(max(combo-1, 0), constants.SliceSoundMaxCombo)
	return constants.SliceSoundBaseFreq * math.Pow(constants.SliceSoundComboStep, float64(steps))
}

// Sound effect generators

// CreateSliceSound generates a short upward chirp, higher for longer combos
func CreateSliceSound(rate beep.SampleRate, combo int) beep.Streamer {
	freq := SlicePitch(combo)
	osc := NewGlide(freq, freq*1.5, constants.SliceSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.SliceSoundDuration, 3*time.Millisecond, 40*time.Millisecond, rate)
	return newVolume(shaped, 0.4)
}

// CreatePoisonSound generates a falling saw with a noise burst
func CreatePoisonSound(rate beep.SampleRate) beep.Streamer {
	d := constants.PoisonSoundDuration
	saw := NewEnvelope(NewGlide(constants.PoisonSoundFreq*2, constants.PoisonSoundFreq/2, d, WaveSaw, rate),
		d, 5*time.Millisecond, d/2, rate)
	noise := NewEnvelope(NewOscillator(0, d/4, WaveNoise, rate), d/4, time.Millisecond, d/8, rate)
	return newVolume(beep.Mix(newVolume(saw, 0.5), newVolume(noise, 0.3)), 0.6)
}

// CreateLifeLostSound generates a low square thud
func CreateLifeLostSound(rate beep.SampleRate) beep.Streamer {
	d := constants.LifeLostSoundDuration
	osc := NewOscillator(constants.LifeLostSoundFreq, d, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate), 0.25)
}

// CreateLevelUpSound generates an ascending sine arpeggio
func CreateLevelUpSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(arpeggio(rate, constants.LevelUpNotes), 0.35)
}

// CreateGameOverSound plays the level up arpeggio backwards and slower
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	notes := make([]float64, len(constants.LevelUpNotes))
	for i, f := range constants.LevelUpNotes {
		notes[len(notes)-1-i] = f / 2
	}
	return newVolume(arpeggio(rate, notes), 0.35)
}

func arpeggio(rate beep.SampleRate, notes []float64) beep.Streamer {
	d := constants.LevelUpNoteDuration
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		tone, err := generators.SineTone(rate, f)
		if err != nil {
			// Note above Nyquist, skip it
			continue
		}
		parts = append(parts, NewEnvelope(tone, d, 5*time.Millisecond, d/2, rate))
	}
	return beep.Seq(parts...)
}
