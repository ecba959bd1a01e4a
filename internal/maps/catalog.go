// Package maps loads tile maps from YAML files. The built-in campaign is
// embedded in the binary; a directory of map files can add maps or replace
// built-in ones by ID.
package maps

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/mars-arcade/internal/tile"
)

//go:embed defaults/*.yaml
var defaultMaps embed.FS

// ErrMapNotFound is returned by Load for unknown map IDs.
var ErrMapNotFound = errors.New("maps: map not found")

// Entry is a parsed map together with where it came from.
type Entry struct {
	Map      *tile.Map
	FilePath string
	Builtin  bool
}

// Catalog holds every map of a campaign, keyed by ID.
type Catalog struct {
	entries  map[string]Entry
	tileSize float64 // for maps that do not set their own
}

// NewCatalog loads the built-in maps and then every map file under dir.
// An empty dir loads only the built-in maps. Maps without a tile_size of
// their own get tileSize.
func NewCatalog(dir string, tileSize float64) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]Entry), tileSize: tileSize}
	if err := c.loadFS(defaultMaps, "defaults", true); err != nil {
		return nil, err
	}
	if dir != "" {
		if err := c.loadFS(os.DirFS(dir), ".", false); err != nil {
			return nil, fmt.Errorf("maps: walking directory %s: %w", dir, err)
		}
	}
	return c, nil
}

func (c *Catalog) loadFS(fsys fs.FS, root string, builtin bool) error {
	return fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading file %s: %w", path, err)
		}
		m, err := ParseYAML(data, c.tileSize)
		if err != nil {
			return fmt.Errorf("parsing file %s: %w", path, err)
		}
		c.entries[m.ID] = Entry{Map: m, FilePath: path, Builtin: builtin}
		return nil
	})
}

// Add registers a map, replacing any map with the same ID.
func (c *Catalog) Add(m *tile.Map) {
	c.entries[m.ID] = Entry{Map: m}
}

// Load returns the map with the given ID.
func (c *Catalog) Load(id string) (*tile.Map, error) {
	e, ok := c.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMapNotFound, id)
	}
	return e.Map, nil
}

// Entries returns every map sorted by ID.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Map.ID < out[j].Map.ID
	})
	return out
}

// IDs returns all map IDs in sorted order.
func (c *Catalog) IDs() []string {
	entries := c.Entries()
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.Map.ID
	}
	return ids
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
