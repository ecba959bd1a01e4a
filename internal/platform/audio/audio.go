// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/mars-arcade/internal/entity"
)

const sampleRate = beep.SampleRate(44100)

// Cues of one kind closer together than this play once.
const minGap = 40 * time.Millisecond

// Speaker is an entity.CueSink that mixes cues onto the speaker.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	last   map[entity.Cue]time.Time
	now    func() time.Time
	closed bool
}

// Open initializes the speaker. volume scales every cue and is clamped to
// [0, 1].
func Open(volume float64) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	s := newSpeaker(volume)
	speaker.Play(s.mixer)
	return s, nil
}

func newSpeaker(volume float64) *Speaker {
	return &Speaker{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
		last:   make(map[entity.Cue]time.Time),
		now:    time.Now,
	}
}

// Play implements entity.CueSink. It queues the cue and returns at once.
func (s *Speaker) Play(c entity.Cue) {
	tone := s.take(c)
	if tone == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(tone)
	speaker.Unlock()
}

// take returns the tone to queue for c, or nil when c is muted, unknown or
// repeated within minGap.
func (s *Speaker) take(c entity.Cue) beep.Streamer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.volume == 0 {
		return nil
	}
	now := s.now()
	if prev, ok := s.last[c]; ok && now.Sub(prev) < minGap {
		return nil
	}
	tone := Tone(c, sampleRate, s.volume)
	if tone != nil {
		s.last[c] = now
	}
	return tone
}

// Close silences the speaker. Later cues are dropped.
func (s *Speaker) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	speaker.Clear()
}
