// Package anim holds sprite-sheet frame timing: which clip a state plays and
// which frame of that clip is visible on a given tick.
package anim

// Clip describes a run of frames on a sprite sheet.
// Speed is the number of ticks a frame stays visible before the next one.
type Clip struct {
	Start  int // first frame index on the sheet
	Frames int // number of frames in the clip
	Speed  int // ticks per frame
}

// Duration returns the number of ticks the clip takes to play once.
func (c Clip) Duration() int {
	return c.Frames * c.Speed
}

// Table maps a state key to the clip it plays.
type Table[K comparable] struct {
	clips    map[K]Clip
	fallback Clip
}

// NewTable builds a table. Keys without an entry play fallback.
func NewTable[K comparable](clips map[K]Clip, fallback Clip) Table[K] {
	copied := make(map[K]Clip, len(clips))
	for k, c := range clips {
		copied[k] = c
	}
	return Table[K]{clips: copied, fallback: fallback}
}

// Clip returns the clip for key.
func (t Table[K]) Clip(key K) Clip {
	if c, ok := t.clips[key]; ok {
		return c
	}
	return t.fallback
}

// Cursor tracks playback of the clip selected by the current key.
type Cursor[K comparable] struct {
	Key     K
	Frame   int // offset within the clip
	Counter int // ticks spent on the current frame
}

// Set switches the cursor to key. Switching to a different key restarts
// playback; setting the same key again keeps the current frame.
func (c *Cursor[K]) Set(key K) {
	if c.Key == key {
		return
	}
	c.Key = key
	c.Frame = 0
	c.Counter = 0
}

// Restart forces playback of key from its first frame.
func (c *Cursor[K]) Restart(key K) {
	c.Key = key
	c.Frame = 0
	c.Counter = 0
}

// Advance moves playback forward one tick.
// The frame advances once the counter exceeds the clip speed and wraps to 0
// at the clip's frame count.
func (c *Cursor[K]) Advance(t Table[K]) {
	clip := t.Clip(c.Key)
	c.Counter++
	if c.Counter > clip.Speed {
		c.Frame++
		c.Counter = 0
	}
	if clip.Frames <= 0 || c.Frame >= clip.Frames {
		c.Frame = 0
	}
}

// SheetFrame returns the absolute sprite-sheet frame currently visible.
func (c Cursor[K]) SheetFrame(t Table[K]) int {
	return t.Clip(c.Key).Start + c.Frame
}
