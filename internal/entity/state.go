// Package entity implements the simulated objects of a map: the player forms,
// their projectiles, enemies, pickups and purely visual effects.
//
// Entities never create other entities. They queue SpawnRequests and sound
// Cues which the registry drains once per tick.
package entity

import "github.com/vovakirdan/mars-arcade/internal/core"

// BehaviorState is the gameplay state of an entity. It doubles as the key of
// the animation table, although the animation shown may differ from the
// behavior (a firing pose over a walk, for example).
type BehaviorState int

const (
	Standing BehaviorState = iota
	Walking
	Crouching
	Jumping
	FiringHoriz
	FiringDown
	FiringUp
	Damaged
	PogoDown
	PogoUp
	FiringBubble
	Dying
	Dashing
	Warping
	RotateBarrelUp
	BarrelUp
	JumpWindup
	Dead
	// Alive is the single live state of projectiles, effects, enemies and doodads.
	Alive
)

var stateNames = [...]string{
	Standing:       "standing",
	Walking:        "walking",
	Crouching:      "crouching",
	Jumping:        "jumping",
	FiringHoriz:    "firing_horiz",
	FiringDown:     "firing_down",
	FiringUp:       "firing_up",
	Damaged:        "damaged",
	PogoDown:       "pogo_down",
	PogoUp:         "pogo_up",
	FiringBubble:   "firing_bubble",
	Dying:          "dying",
	Dashing:        "dashing",
	Warping:        "warping",
	RotateBarrelUp: "rotate_barrel_up",
	BarrelUp:       "barrel_up",
	JumpWindup:     "jump_windup",
	Dead:           "dead",
	Alive:          "alive",
}

func (s BehaviorState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Gone reports whether the entity is dying or dead.
func (s BehaviorState) Gone() bool {
	return s == Dying || s == Dead
}

// Facing is the horizontal direction a sprite looks toward.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns +1 for right and -1 for left.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// FacingFor returns the facing matching the sign of vx, or current when vx is 0.
func FacingFor(vx float64, current Facing) Facing {
	switch core.Sign(vx) {
	case -1:
		return FacingLeft
	case 1:
		return FacingRight
	}
	return current
}

// SpawnKind is the registry collection a spawn request targets.
type SpawnKind string

const (
	SpawnPlayerProjectile SpawnKind = "player_projectile"
	SpawnEnemyProjectile  SpawnKind = "enemy_projectile"
	SpawnEffect           SpawnKind = "effect"
)

// SpawnRequest asks the registry to create an entity.
type SpawnRequest struct {
	Kind   SpawnKind
	Name   string
	Pos    core.Vec
	Vel    core.Vec
	Facing Facing
}

// Cue is a fire-and-forget sound event.
type Cue string

const (
	CueJump      Cue = "jump"
	CueFire      Cue = "fire"
	CueHurt      Cue = "hurt"
	CueDeath     Cue = "death"
	CueExplosion Cue = "explosion"
	CuePickup    Cue = "pickup"
	CueDash      Cue = "dash"
	CueSwitch    Cue = "switch"
)

// CueSink plays sound cues. Implementations must not block.
type CueSink interface {
	Play(c Cue)
}

// NopCueSink discards every cue.
type NopCueSink struct{}

// Play implements CueSink.
func (NopCueSink) Play(Cue) {}
