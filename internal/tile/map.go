package tile

import (
	"fmt"

	"github.com/vovakirdan/mars-arcade/internal/core"
)

// DefaultTileSize is the edge length of a tile in world pixels.
const DefaultTileSize = 32

// Map is a loaded, read-only tile map with its object layer.
type Map struct {
	ID      string
	Name    string
	cols    int
	rows    int
	size    float64
	tiles   []Kind
	objects []Object
}

// NewMap builds a map from rows of glyphs. Every row must have the same width.
func NewMap(id, name string, rows []string, tileSize float64, objects []Object) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("tile: map %s: no rows", id)
	}
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	cols := len([]rune(rows[0]))
	if cols == 0 {
		return nil, fmt.Errorf("tile: map %s: empty first row", id)
	}

	tiles := make([]Kind, 0, cols*len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != cols {
			return nil, fmt.Errorf("tile: map %s: row %d has width %d, expected %d", id, y, len(runes), cols)
		}
		for x, r := range runes {
			k, ok := KindForGlyph(r)
			if !ok {
				return nil, fmt.Errorf("tile: map %s: unknown glyph %q at (%d, %d)", id, r, x, y)
			}
			tiles = append(tiles, k)
		}
	}

	objs := make([]Object, len(objects))
	copy(objs, objects)

	return &Map{
		ID:      id,
		Name:    name,
		cols:    cols,
		rows:    len(rows),
		size:    tileSize,
		tiles:   tiles,
		objects: objs,
	}, nil
}

// Cols returns the map width in tiles.
func (m *Map) Cols() int { return m.cols }

// Rows returns the map height in tiles.
func (m *Map) Rows() int { return m.rows }

// TileSize returns the tile edge length in world pixels.
func (m *Map) TileSize() float64 { return m.size }

// PixelWidth returns the map width in world pixels.
func (m *Map) PixelWidth() float64 { return float64(m.cols) * m.size }

// PixelHeight returns the map height in world pixels.
func (m *Map) PixelHeight() float64 { return float64(m.rows) * m.size }

// KindAt returns the tile kind at a grid cell. Out-of-range cells are Rock.
func (m *Map) KindAt(col, row int) Kind {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return Rock
	}
	return m.tiles[row*m.cols+col]
}

// PropertiesAt returns the flags of the tile containing the world point.
func (m *Map) PropertiesAt(x, y float64) Properties {
	return m.KindAt(core.FloorDiv(x, m.size), core.FloorDiv(y, m.size)).Properties()
}

// Objects returns the object layer in authored order.
func (m *Map) Objects() []Object {
	out := make([]Object, len(m.objects))
	copy(out, m.objects)
	return out
}

// Entrance returns the entrance for travellers arriving on side dir.
func (m *Map) Entrance(dir Direction) (Entrance, error) {
	for _, o := range m.objects {
		if o.Kind == ObjectEntrance && o.Dir == dir {
			return Entrance{Dir: o.Dir, Bounds: o.Bounds}, nil
		}
	}
	return Entrance{}, fmt.Errorf("%w: map %s, side %s", ErrNoEntrance, m.ID, dir)
}

// Exits returns every exit in authored order.
func (m *Map) Exits() []Exit {
	var out []Exit
	for _, o := range m.objects {
		if o.Kind == ObjectExit {
			out = append(out, Exit{Dest: o.Dest, Dir: o.Dir, Bounds: o.Bounds})
		}
	}
	return out
}

// ExitAt returns the first exit intersecting box.
func (m *Map) ExitAt(box core.RectF) (Exit, bool) {
	for _, o := range m.objects {
		if o.Kind == ObjectExit && o.Bounds.Intersects(box) {
			return Exit{Dest: o.Dest, Dir: o.Dir, Bounds: o.Bounds}, true
		}
	}
	return Exit{Dir: DirNone}, false
}

// Spawns returns enemy and doodad placements in authored order.
func (m *Map) Spawns() []Spawn {
	var out []Spawn
	for _, o := range m.objects {
		if o.Kind == ObjectEnemySpawn || o.Kind == ObjectDoodad {
			out = append(out, Spawn{Kind: o.Kind, Name: o.Spawn, Pos: core.V(o.Bounds.X, o.Bounds.Y)})
		}
	}
	return out
}
