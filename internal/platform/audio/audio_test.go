package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/mars-arcade/internal/entity"
)

var allCues = []entity.Cue{
	entity.CueJump,
	entity.CueFire,
	entity.CueHurt,
	entity.CueDeath,
	entity.CueExplosion,
	entity.CuePickup,
	entity.CueDash,
	entity.CueSwitch,
}

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 1000 {
		n, ok := s.Stream(buf)
		for i := range n {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("tone did not end")
	return 0, 0
}

func TestToneEveryCue(t *testing.T) {
	for _, c := range allCues {
		t.Run(string(c), func(t *testing.T) {
			tone := Tone(c, sampleRate, 1)
			if tone == nil {
				t.Fatalf("Tone(%q) = nil", c)
			}

			var want int
			for _, n := range cueNotes[c] {
				want += sampleRate.N(n.dur)
			}
			n, peak := drain(t, tone)
			if n != want {
				t.Errorf("Tone(%q) streamed %d samples, expected %d", c, n, want)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("Tone(%q) peak = %f, expected within (0, 1]", c, peak)
			}
		})
	}
}

func TestToneUnknownCue(t *testing.T) {
	if Tone("bogus", sampleRate, 1) != nil {
		t.Error("Tone() of an unknown cue should be nil")
	}
}

func TestToneVolume(t *testing.T) {
	_, loud := drain(t, Tone(entity.CueHurt, sampleRate, 1))
	_, quiet := drain(t, Tone(entity.CueHurt, sampleRate, 0.25))
	if math.Abs(quiet-loud*0.25) > 1e-6 {
		t.Errorf("peak at 0.25 volume = %f, expected %f", quiet, loud*0.25)
	}
}

func TestSpeakerThrottlesRepeats(t *testing.T) {
	s := newSpeaker(1)
	clock := time.Unix(0, 0)
	s.now = func() time.Time { return clock }

	if s.take(entity.CueFire) == nil {
		t.Fatal("first cue should play")
	}
	if s.take(entity.CueFire) != nil {
		t.Error("repeat within the gap should be dropped")
	}
	if s.take(entity.CueJump) == nil {
		t.Error("a different cue should play")
	}

	clock = clock.Add(minGap)
	if s.take(entity.CueFire) == nil {
		t.Error("cue after the gap should play")
	}
}

func TestSpeakerMuted(t *testing.T) {
	s := newSpeaker(-3)
	if s.take(entity.CueJump) != nil {
		t.Error("a muted speaker should drop every cue")
	}
}
