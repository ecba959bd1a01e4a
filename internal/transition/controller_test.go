package transition

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/tile"
)

var errMissing = errors.New("missing")

type fakeSource map[string]*tile.Map

func (f fakeSource) Load(id string) (*tile.Map, error) {
	m, ok := f[id]
	if !ok {
		return nil, errMissing
	}
	return m, nil
}

func newSource(t *testing.T) fakeSource {
	t.Helper()
	b, err := tile.NewMap("b", "B", []string{"....", "####"}, 32, []tile.Object{
		{Kind: tile.ObjectEntrance, Dir: tile.DirLeft, Bounds: core.RectF{X: 0, Y: 0, W: 32, H: 32}},
	})
	if err != nil {
		t.Fatalf("NewMap() failed: %v", err)
	}
	return fakeSource{"b": b}
}

func TestBeginLoadsDestination(t *testing.T) {
	c := New(newSource(t), 4, nil)

	if err := c.Begin(tile.Exit{Dest: "b", Dir: tile.DirRight}); err != nil {
		t.Fatalf("Begin() failed: %v", err)
	}

	if c.Phase() != Previewing {
		t.Errorf("Phase() = %v, expected previewing", c.Phase())
	}
	a, ok := c.Pending()
	if !ok || a.Map.ID != "b" || a.Side != tile.DirLeft {
		t.Errorf("Pending() = %+v, %v, expected map b arriving from the left", a, ok)
	}

	if err := c.Begin(tile.Exit{Dest: "b", Dir: tile.DirRight}); !errors.Is(err, ErrBusy) {
		t.Errorf("second Begin() error = %v, expected ErrBusy", err)
	}
}

func TestBeginRefusals(t *testing.T) {
	tests := []struct {
		name string
		exit tile.Exit
		want error
	}{
		{"no destination", tile.Exit{Dir: tile.DirRight}, tile.ErrBadExit},
		{"no direction", tile.Exit{Dest: "b", Dir: tile.DirNone}, tile.ErrBadExit},
		{"load failure", tile.Exit{Dest: "zz", Dir: tile.DirRight}, errMissing},
		{"no matching entrance", tile.Exit{Dest: "b", Dir: tile.DirDown}, tile.ErrNoEntrance},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(newSource(t), 4, nil)
			err := c.Begin(tc.exit)
			if !errors.Is(err, tc.want) {
				t.Errorf("Begin() error = %v, expected %v", err, tc.want)
			}
			if c.Phase() != Idle || c.Active() {
				t.Errorf("Phase() = %v, a refused transition should stay idle", c.Phase())
			}
		})
	}
}

func TestScrollRunsForConfiguredFrames(t *testing.T) {
	c := New(newSource(t), 0, nil)
	if c.Frames() != DefaultFrames {
		t.Fatalf("Frames() = %d, expected %d", c.Frames(), DefaultFrames)
	}
	if err := c.Begin(tile.Exit{Dest: "b", Dir: tile.DirRight}); err != nil {
		t.Fatalf("Begin() failed: %v", err)
	}

	if _, done := c.Tick(); done {
		t.Fatal("Tick() before Capture should not finish")
	}
	c.Capture(core.NewScreen(4, 1), core.NewScreen(4, 1))

	for i := 1; i < DefaultFrames; i++ {
		if _, done := c.Tick(); done {
			t.Fatalf("Tick() finished early at frame %d", i)
		}
		if !c.Active() {
			t.Fatalf("frame %d: gameplay should stay blocked", i)
		}
	}

	a, done := c.Tick()
	if !done {
		t.Fatal("Tick() should finish on the last frame")
	}
	if a.Map.ID != "b" || a.Entrance.Dir != tile.DirLeft {
		t.Errorf("arrival = %+v, expected the left entrance of b", a)
	}
	if c.Phase() != Idle {
		t.Errorf("Phase() = %v, expected idle", c.Phase())
	}
}

func TestComposeSlidesViews(t *testing.T) {
	tests := []struct {
		dir    tile.Direction
		first  string
		second string
	}{
		{tile.DirRight, "aaab", "aabb"},
		{tile.DirLeft, "baaa", "bbaa"},
	}

	for _, tc := range tests {
		t.Run(string(tc.dir), func(t *testing.T) {
			src := newSource(t)
			b, err := tile.NewMap("b2", "", []string{"...."}, 32, []tile.Object{
				{Kind: tile.ObjectEntrance, Dir: tc.dir.Opposite(), Bounds: core.RectF{W: 32, H: 32}},
			})
			if err != nil {
				t.Fatalf("NewMap() failed: %v", err)
			}
			src["b2"] = b

			c := New(src, 4, nil)
			if err := c.Begin(tile.Exit{Dest: "b2", Dir: tc.dir}); err != nil {
				t.Fatalf("Begin() failed: %v", err)
			}
			from := core.NewScreen(4, 1)
			from.DrawText(0, 0, "aaaa")
			to := core.NewScreen(4, 1)
			to.DrawText(0, 0, "bbbb")
			c.Capture(from, to)

			dst := core.NewScreen(4, 1)
			c.Tick()
			c.Compose(dst)
			if got := dst.Row(0); got != tc.first {
				t.Errorf("frame 1 = %q, expected %q", got, tc.first)
			}

			c.Tick()
			c.Compose(dst)
			if got := dst.Row(0); got != tc.second {
				t.Errorf("frame 2 = %q, expected %q", got, tc.second)
			}
		})
	}
}
