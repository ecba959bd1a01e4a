package maps

import (
	"fmt"

	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/entity"
	"github.com/vovakirdan/mars-arcade/internal/tile"
)

// ValidationError describes one authoring problem in a map.
type ValidationError struct {
	Code    string
	Map     string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Map, e.Message)
}

// Check validates every map of the catalog and the links between them.
// Checks:
//   - Every map has at least one entrance
//   - Entrances are open and do not put a form inside an exit
//   - Every exit leads to a known map with an entrance on the opposite side
//   - Spawns name known enemies or pickups and sit on open tiles
func Check(c *Catalog) []ValidationError {
	var problems []ValidationError
	for _, e := range c.Entries() {
		problems = append(problems, checkMap(c, e.Map)...)
	}
	return problems
}

func checkMap(c *Catalog, m *tile.Map) []ValidationError {
	var problems []ValidationError
	report := func(code, format string, args ...any) {
		problems = append(problems, ValidationError{Code: code, Map: m.ID, Message: fmt.Sprintf(format, args...)})
	}

	exits := m.Exits()
	entrances := 0
	for _, o := range m.Objects() {
		if o.Kind != tile.ObjectEntrance {
			continue
		}
		entrances++
		if m.PropertiesAt(o.Bounds.X+1, o.Bounds.Bottom()-1).Solid {
			report("ENTRANCE_BLOCKED", "entrance %s is inside rock", o.Dir)
		}
		for _, k := range []entity.PlayerKind{entity.Soldier, entity.Tank} {
			spec := entity.SpecFor(k)
			box := core.RectF{X: o.Bounds.X, Y: o.Bounds.Bottom() - spec.Height, W: spec.Width, H: spec.Height}
			for _, x := range exits {
				if x.Bounds.Intersects(box) {
					report("ENTRANCE_IN_EXIT", "the %s arriving at entrance %s overlaps the exit to %s", spec.Name, o.Dir, x.Dest)
				}
			}
		}
	}
	if entrances == 0 {
		report("NO_ENTRANCE", "map has no entrance")
	}

	for _, x := range exits {
		if err := x.Validate(); err != nil {
			report("BAD_EXIT", "%v", err)
			continue
		}
		dest, err := c.Load(x.Dest)
		if err != nil {
			report("EXIT_DEST", "exit %s leads to unknown map %q", x.Dir, x.Dest)
			continue
		}
		if _, err := dest.Entrance(x.Dir.Opposite()); err != nil {
			report("EXIT_ENTRANCE", "exit %s to %s has no %s entrance there", x.Dir, x.Dest, x.Dir.Opposite())
		}
	}

	for _, s := range m.Spawns() {
		var err error
		switch s.Kind {
		case tile.ObjectEnemySpawn:
			_, err = entity.NewEnemy(s.Name, s.Pos, entity.DefaultTuning())
		case tile.ObjectDoodad:
			_, err = entity.NewDoodad(s.Name, s.Pos)
		}
		if err != nil {
			report("UNKNOWN_SPAWN", "%v", err)
		}
		if m.PropertiesAt(s.Pos.X+1, s.Pos.Y+1).Solid {
			report("SPAWN_BLOCKED", "%s %q at (%v, %v) is inside rock", s.Kind, s.Name, s.Pos.X, s.Pos.Y)
		}
	}
	return problems
}
