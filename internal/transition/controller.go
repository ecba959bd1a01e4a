// Package transition scrolls from one map to the next when the player walks
// through an exit.
//
// A transition runs Idle → Previewing → Scrolling → Idle. Begin loads the
// destination without committing it, Capture takes the two views the scroll
// slides between, and Tick reports the arrival once the scroll has finished.
package transition

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/tile"
)

// DefaultFrames is the scroll length in ticks.
const DefaultFrames = 30

// ErrBusy is returned when Begin is called during a transition.
var ErrBusy = errors.New("transition: already in progress")

// Phase is the controller state.
type Phase int

const (
	Idle Phase = iota
	Previewing
	Scrolling
)

func (p Phase) String() string {
	switch p {
	case Previewing:
		return "previewing"
	case Scrolling:
		return "scrolling"
	default:
		return "idle"
	}
}

// MapSource loads maps by ID.
type MapSource interface {
	Load(id string) (*tile.Map, error)
}

// Arrival is where a finished transition lands.
type Arrival struct {
	Map      *tile.Map
	Side     tile.Direction
	Entrance tile.Entrance
}

// Controller drives one transition at a time.
type Controller struct {
	src    MapSource
	frames int
	logger *log.Logger

	phase   Phase
	dir     tile.Direction
	arrival Arrival
	frame   int

	from *core.Screen
	to   *core.Screen
}

// New creates an idle controller. frames <= 0 selects DefaultFrames.
func New(src MapSource, frames int, logger *log.Logger) *Controller {
	if frames <= 0 {
		frames = DefaultFrames
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{src: src, frames: frames, logger: logger}
}

// Phase returns the current state.
func (c *Controller) Phase() Phase { return c.phase }

// Active reports whether gameplay is blocked by a transition.
func (c *Controller) Active() bool { return c.phase != Idle }

// Frames returns the scroll length in ticks.
func (c *Controller) Frames() int { return c.frames }

// Pending returns the destination of the transition in progress.
func (c *Controller) Pending() (Arrival, bool) {
	if c.phase == Idle {
		return Arrival{}, false
	}
	return c.arrival, true
}

// Begin starts a transition through exit. The destination must load and have
// an entrance on the side opposite the exit; otherwise the controller stays
// Idle and the error is returned.
func (c *Controller) Begin(exit tile.Exit) error {
	if c.phase != Idle {
		return ErrBusy
	}
	if err := exit.Validate(); err != nil {
		c.logger.Warn("transition refused", "dest", exit.Dest, "dir", exit.Dir, "err", err)
		return fmt.Errorf("transition: exit to %q: %w", exit.Dest, err)
	}

	m, err := c.src.Load(exit.Dest)
	if err != nil {
		c.logger.Warn("transition refused", "dest", exit.Dest, "err", err)
		return fmt.Errorf("transition: load %q: %w", exit.Dest, err)
	}

	side := exit.Dir.Opposite()
	ent, err := m.Entrance(side)
	if err != nil {
		c.logger.Warn("transition refused", "dest", exit.Dest, "side", side, "err", err)
		return fmt.Errorf("transition: %w", err)
	}

	c.phase = Previewing
	c.dir = exit.Dir
	c.arrival = Arrival{Map: m, Side: side, Entrance: ent}
	c.frame = 0
	c.logger.Debug("transition started", "dest", m.ID, "dir", exit.Dir)
	return nil
}

// Capture records the outgoing and incoming views and starts scrolling.
// It is ignored outside Previewing. Both views should have the same size.
func (c *Controller) Capture(from, to *core.Screen) {
	if c.phase != Previewing {
		return
	}
	c.from = from.Clone()
	c.to = to.Clone()
	c.phase = Scrolling
	c.frame = 0
}

// Tick advances the scroll. Once the last frame has been shown it returns the
// arrival and the controller is Idle again.
func (c *Controller) Tick() (Arrival, bool) {
	if c.phase != Scrolling {
		return Arrival{}, false
	}
	c.frame++
	if c.frame < c.frames {
		return Arrival{}, false
	}

	out := c.arrival
	c.reset()
	c.logger.Debug("transition finished", "map", out.Map.ID, "side", out.Side)
	return out, true
}

// Cancel abandons the transition in progress.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) reset() {
	c.phase = Idle
	c.arrival = Arrival{}
	c.dir = tile.DirNone
	c.frame = 0
	c.from = nil
	c.to = nil
}

// Offset returns how far, in cells, the views have slid along the exit
// direction for a screen of w×h cells.
func (c *Controller) Offset(w, h int) (dx, dy int) {
	sx, sy := c.dir.Step()
	return sx * w * c.frame / c.frames, sy * h * c.frame / c.frames
}

// Compose draws the current scroll position into dst. The outgoing view
// slides away from the exit side and the incoming view follows it in.
func (c *Controller) Compose(dst *core.Screen) {
	if c.phase != Scrolling || c.from == nil {
		return
	}
	w, h := c.from.Width(), c.from.Height()
	dx, dy := c.Offset(w, h)
	sx, sy := c.dir.Step()

	dst.Blit(c.from, -dx, -dy)
	dst.Blit(c.to, sx*w-dx, sy*h-dy)
}
