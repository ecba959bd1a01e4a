package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/mars-arcade/internal/entity"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// note is one step of a cue: a tone sliding from freq to slide over dur.
type note struct {
	wave   Wave
	freq   float64
	slide  float64 // end frequency; 0 keeps freq
	dur    time.Duration
	volume float64
}

var cueNotes = map[entity.Cue][]note{
	entity.CueJump: {
		{wave: WaveSquare, freq: 330, slide: 660, dur: 90 * time.Millisecond, volume: 0.25},
	},
	entity.CueFire: {
		{wave: WaveSquare, freq: 900, slide: 400, dur: 50 * time.Millisecond, volume: 0.2},
	},
	entity.CueHurt: {
		{wave: WaveSaw, freq: 220, slide: 110, dur: 150 * time.Millisecond, volume: 0.35},
	},
	entity.CueDeath: {
		{wave: WaveSaw, freq: 440, slide: 220, dur: 200 * time.Millisecond, volume: 0.35},
		{wave: WaveSaw, freq: 220, slide: 55, dur: 400 * time.Millisecond, volume: 0.35},
	},
	entity.CueExplosion: {
		{wave: WaveNoise, dur: 250 * time.Millisecond, volume: 0.4},
	},
	entity.CuePickup: {
		{wave: WaveSine, freq: 988, dur: 70 * time.Millisecond, volume: 0.3},
		{wave: WaveSine, freq: 1319, dur: 140 * time.Millisecond, volume: 0.3},
	},
	entity.CueDash: {
		{wave: WaveNoise, dur: 80 * time.Millisecond, volume: 0.2},
	},
	entity.CueSwitch: {
		{wave: WaveSquare, freq: 196, dur: 60 * time.Millisecond, volume: 0.25},
		{wave: WaveSquare, freq: 294, dur: 60 * time.Millisecond, volume: 0.25},
	},
}

// oscillator generates one note.
type oscillator struct {
	note  note
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
	rng   *rand.Rand
}

func newOscillator(n note, rate beep.SampleRate) *oscillator {
	return &oscillator{
		note:  n,
		rate:  rate,
		total: rate.N(n.dur),
		rng:   rand.New(rand.NewPCG(uint64(n.freq), uint64(n.dur))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.pos >= o.total {
		return 0, false
	}
	for i := range samples {
		if o.pos >= o.total {
			return i, true
		}
		progress := float64(o.pos) / float64(o.total)

		var val float64
		switch o.note.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		// Short attack, linear release.
		env := min(progress/0.05, 1) * (1 - progress)
		val *= env

		samples[i][0] = val
		samples[i][1] = val

		freq := o.note.freq
		if o.note.slide > 0 {
			freq += (o.note.slide - o.note.freq) * progress
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// withVolume scales s linearly by vol.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Tone returns the synthesized sound of c scaled by master, or nil for an
// unknown cue.
func Tone(c entity.Cue, rate beep.SampleRate, master float64) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = withVolume(newOscillator(n, rate), n.volume*master)
	}
	return beep.Seq(parts...)
}
