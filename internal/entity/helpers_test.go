package entity

import (
	"testing"

	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/tile"
)

// Floor top is at y=224. Walls close row 6 at both ends, a platform spans
// cols 6-7 on row 4, and the floor carries a small spike (col 3) and a
// large spike (col 8).
var testRows = []string{
	"............",
	"............",
	"............",
	"............",
	"......==....",
	"............",
	"#..........#",
	"###^####A###",
}

const floorTop = 224

func testMap(t *testing.T) *tile.Map {
	t.Helper()
	m, err := tile.NewMap("test", "Test", testRows, 32, nil)
	if err != nil {
		t.Fatalf("NewMap() failed: %v", err)
	}
	return m
}

func newSoldier(x float64) *Player {
	return NewPlayer(SpecFor(Soldier), DefaultTuning(), core.V(x, floorTop-soldierSize), 4)
}

func newTank(x float64) *Player {
	return NewPlayer(SpecFor(Tank), DefaultTuning(), core.V(x, floorTop-tankSize), 4)
}

func step(p *Player, q tile.Query, in core.InputState) {
	p.ApplyInput(in)
	p.Update(q)
}

func mapFromRows(t *testing.T, rows []string) *tile.Map {
	t.Helper()
	m, err := tile.NewMap("rows", "", rows, 32, nil)
	if err != nil {
		t.Fatalf("NewMap() failed: %v", err)
	}
	return m
}
