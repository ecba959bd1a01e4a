// Package tile answers questions about the tile map: what occupies a world
// position and which authored trigger regions it carries.
package tile

// Properties are the collision flags of a single tile.
type Properties struct {
	Solid      bool // blocks movement from every side
	Platform   bool // can be stood on
	SpikeSmall bool // hurts the soldier
	SpikeLarge bool // hurts the tank
}

// Walkable reports whether the tile supports an entity standing on it.
func (p Properties) Walkable() bool {
	return p.Solid || p.Platform
}

// Query is the read-only view of a map used by collision code.
type Query interface {
	// PropertiesAt returns the flags of the tile containing the world point.
	// Points outside the map report a solid tile.
	PropertiesAt(x, y float64) Properties
	// TileSize is the edge length of a tile in world pixels.
	TileSize() float64
}

// Kind is a tile type as authored in a map file.
type Kind uint8

const (
	Empty Kind = iota
	Rock
	Platform
	SpikeSmall
	SpikeLarge
)

var kindProperties = [...]Properties{
	Empty:      {},
	Rock:       {Solid: true},
	Platform:   {Platform: true},
	SpikeSmall: {Solid: true, SpikeSmall: true},
	SpikeLarge: {Solid: true, SpikeLarge: true},
}

// Properties returns the collision flags for the kind.
func (k Kind) Properties() Properties {
	if int(k) >= len(kindProperties) {
		return Properties{}
	}
	return kindProperties[k]
}

// Glyphs used by map files, one rune per tile.
var glyphKinds = map[rune]Kind{
	'.': Empty,
	' ': Empty,
	'#': Rock,
	'=': Platform,
	'^': SpikeSmall,
	'A': SpikeLarge,
}

// KindForGlyph maps a map-file rune to its tile kind.
func KindForGlyph(r rune) (Kind, bool) {
	k, ok := glyphKinds[r]
	return k, ok
}

// Direction is the side of the screen an exit leads through.
type Direction string

const (
	DirNone  Direction = "none"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
)

// Opposite returns the side a traveller arrives on after leaving through d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

// Valid reports whether d names a screen side.
func (d Direction) Valid() bool {
	switch d {
	case DirLeft, DirRight, DirUp, DirDown:
		return true
	}
	return false
}

// Step returns the unit screen offset for scrolling in direction d.
func (d Direction) Step() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	}
	return 0, 0
}
