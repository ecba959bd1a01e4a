package tile

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mars-arcade/internal/core"
)

func testMap(t *testing.T) *Map {
	t.Helper()
	rows := []string{
		"......",
		"..==..",
		".^..A.",
		"######",
	}
	objects := []Object{
		{Kind: ObjectEntrance, Dir: DirLeft, Bounds: core.RectF{X: 0, Y: 64, W: 32, H: 32}},
		{Kind: ObjectExit, Dir: DirRight, Dest: "crater", Bounds: core.RectF{X: 160, Y: 0, W: 32, H: 96}},
		{Kind: ObjectEnemySpawn, Spawn: "crawler", Bounds: core.RectF{X: 96, Y: 64, W: 32, H: 32}},
	}
	m, err := NewMap("base", "Base", rows, 32, objects)
	if err != nil {
		t.Fatalf("NewMap() failed: %v", err)
	}
	return m
}

func TestPropertiesAt(t *testing.T) {
	m := testMap(t)

	tests := []struct {
		name     string
		x, y     float64
		expected Properties
	}{
		{"empty", 10, 10, Properties{}},
		{"platform", 70, 40, Properties{Platform: true}},
		{"small spike", 40, 70, Properties{Solid: true, SpikeSmall: true}},
		{"large spike", 140, 70, Properties{Solid: true, SpikeLarge: true}},
		{"floor", 100, 100, Properties{Solid: true}},
		{"tile boundary belongs to next tile", 64, 32, Properties{Platform: true}},
		{"left of map", -0.5, 10, Properties{Solid: true}},
		{"right of map", 192, 10, Properties{Solid: true}},
		{"above map", 10, -1, Properties{Solid: true}},
		{"below map", 10, 500, Properties{Solid: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.PropertiesAt(tc.x, tc.y); got != tc.expected {
				t.Errorf("PropertiesAt(%v, %v) = %+v, expected %+v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestNewMapRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"ragged rows", []string{"...", ".."}},
		{"unknown glyph", []string{".?."}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewMap("bad", "", tc.rows, 32, nil); err == nil {
				t.Error("NewMap() should fail")
			}
		})
	}
}

func TestEntranceLookup(t *testing.T) {
	m := testMap(t)

	e, err := m.Entrance(DirLeft)
	if err != nil {
		t.Fatalf("Entrance(left) failed: %v", err)
	}
	if e.Bounds.Y != 64 {
		t.Errorf("Entrance(left).Bounds.Y = %v, expected 64", e.Bounds.Y)
	}

	if _, err := m.Entrance(DirUp); !errors.Is(err, ErrNoEntrance) {
		t.Errorf("Entrance(up) error = %v, expected ErrNoEntrance", err)
	}
}

func TestExitAt(t *testing.T) {
	m := testMap(t)

	exit, ok := m.ExitAt(core.RectF{X: 150, Y: 40, W: 32, H: 32})
	if !ok {
		t.Fatal("ExitAt() should find the right-hand exit")
	}
	if exit.Dest != "crater" || exit.Dir != DirRight {
		t.Errorf("ExitAt() = %+v, expected crater/right", exit)
	}

	none, ok := m.ExitAt(core.RectF{X: 0, Y: 0, W: 32, H: 32})
	if ok || none.Dir != DirNone {
		t.Errorf("ExitAt() away from exits = %+v, %v, expected none", none, ok)
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirLeft:  DirRight,
		DirRight: DirLeft,
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirNone:  DirNone,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, expected %s", d, got, want)
		}
	}
}

func TestSpawnsAndExitValidation(t *testing.T) {
	m := testMap(t)

	spawns := m.Spawns()
	if len(spawns) != 1 || spawns[0].Name != "crawler" {
		t.Fatalf("Spawns() = %+v, expected one crawler", spawns)
	}
	if spawns[0].Pos != core.V(96, 64) {
		t.Errorf("spawn position = %v, expected (96, 64)", spawns[0].Pos)
	}

	if err := (Exit{Dir: DirLeft}).Validate(); !errors.Is(err, ErrBadExit) {
		t.Errorf("Validate() without destination = %v, expected ErrBadExit", err)
	}
	if err := m.Exits()[0].Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}
