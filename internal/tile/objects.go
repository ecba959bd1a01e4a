package tile

import (
	"errors"

	"github.com/vovakirdan/mars-arcade/internal/core"
)

var (
	// ErrNoEntrance is returned when a map has no entrance for the requested side.
	ErrNoEntrance = errors.New("tile: no entrance for direction")
	// ErrBadExit is returned for exits without a destination or direction.
	ErrBadExit = errors.New("tile: malformed exit")
)

// ObjectKind is the type of an authored trigger region.
type ObjectKind string

const (
	ObjectEntrance   ObjectKind = "entrance"
	ObjectExit       ObjectKind = "exit"
	ObjectEnemySpawn ObjectKind = "enemy_spawn"
	ObjectDoodad     ObjectKind = "doodad"
)

// Object is an authored region on the map's object layer.
type Object struct {
	Kind   ObjectKind
	Bounds core.RectF
	Dir    Direction // entrance/exit side
	Dest   string    // exit destination map ID
	Spawn  string    // enemy or doodad kind
}

// Entrance is where travellers land when arriving from Dir.
type Entrance struct {
	Dir    Direction
	Bounds core.RectF
}

// Exit is a trigger region leading to another map.
type Exit struct {
	Dest   string
	Dir    Direction
	Bounds core.RectF
}

// Validate checks that the exit can drive a transition.
func (e Exit) Validate() error {
	if e.Dest == "" || !e.Dir.Valid() {
		return ErrBadExit
	}
	return nil
}

// Spawn is a map-authored enemy or doodad placement.
type Spawn struct {
	Kind ObjectKind
	Name string
	Pos  core.Vec
}
