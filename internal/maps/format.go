package maps

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/tile"
)

// YAMLMap is the on-disk layout of a map file.
type YAMLMap struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	TileSize float64      `yaml:"tile_size,omitempty"`
	Tiles    []string     `yaml:"tiles"`
	Objects  []YAMLObject `yaml:"objects"`
}

// YAMLObject is one entry of the object layer. Positions and sizes are in
// tiles; W and H default to 1.
type YAMLObject struct {
	Kind  string `yaml:"kind"`
	Dir   string `yaml:"dir,omitempty"`
	Dest  string `yaml:"dest,omitempty"`
	Spawn string `yaml:"spawn,omitempty"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	W     int    `yaml:"w,omitempty"`
	H     int    `yaml:"h,omitempty"`
}

// ParseYAML parses a map file. Maps without their own tile_size use
// tileSize, or tile.DefaultTileSize when tileSize is not positive.
func ParseYAML(data []byte, tileSize float64) (*tile.Map, error) {
	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ym.ID == "" {
		return nil, errors.New("map has no id")
	}

	size := ym.TileSize
	if size <= 0 {
		size = tileSize
	}
	if size <= 0 {
		size = tile.DefaultTileSize
	}

	objects := make([]tile.Object, 0, len(ym.Objects))
	for i, yo := range ym.Objects {
		o, err := yo.toObject(size)
		if err != nil {
			return nil, fmt.Errorf("map %s: object %d: %w", ym.ID, i, err)
		}
		objects = append(objects, o)
	}

	return tile.NewMap(ym.ID, ym.Name, ym.Tiles, size, objects)
}

func (yo YAMLObject) toObject(size float64) (tile.Object, error) {
	w, h := yo.W, yo.H
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	o := tile.Object{
		Kind:   tile.ObjectKind(yo.Kind),
		Bounds: core.RectF{X: float64(yo.X) * size, Y: float64(yo.Y) * size, W: float64(w) * size, H: float64(h) * size},
		Dir:    tile.DirNone,
		Dest:   yo.Dest,
		Spawn:  yo.Spawn,
	}

	switch o.Kind {
	case tile.ObjectEntrance, tile.ObjectExit:
		d := tile.Direction(yo.Dir)
		if !d.Valid() {
			return o, fmt.Errorf("%s has invalid dir %q", yo.Kind, yo.Dir)
		}
		o.Dir = d
	case tile.ObjectEnemySpawn, tile.ObjectDoodad:
		if yo.Spawn == "" {
			return o, fmt.Errorf("%s has no spawn name", yo.Kind)
		}
	default:
		return o, fmt.Errorf("unknown object kind %q", yo.Kind)
	}
	return o, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
