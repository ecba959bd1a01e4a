package entity

import (
	"fmt"

	"github.com/vovakirdan/mars-arcade/internal/anim"
	"github.com/vovakirdan/mars-arcade/internal/tile"
)

// PlayerKind selects one of the two controllable forms.
type PlayerKind int

const (
	Soldier PlayerKind = iota
	Tank
)

func (k PlayerKind) String() string {
	switch k {
	case Soldier:
		return "soldier"
	case Tank:
		return "tank"
	default:
		return fmt.Sprintf("PlayerKind(%d)", int(k))
	}
}

// Hazard selects which spike tiles hurt a form.
type Hazard int

const (
	HazardNone Hazard = iota
	HazardSmallSpikes
	HazardLargeSpikes
)

// Hurts reports whether a tile with props damages a form sensitive to h.
func (h Hazard) Hurts(props tile.Properties) bool {
	switch h {
	case HazardSmallSpikes:
		return props.SpikeSmall
	case HazardLargeSpikes:
		return props.SpikeLarge
	}
	return false
}

// KindSpec is the static description of a player form. One Player type reads
// everything form-specific from here.
type KindSpec struct {
	Kind   PlayerKind
	Name   string
	Width  float64
	Height float64

	MaxSpeed    float64
	Accel       float64
	JumpImpulse float64
	// WindupTicks delays the jump impulse. Zero jumps on the press.
	WindupTicks int

	FloorSamples int
	WallOffsets  [3]float64 // probe heights below the top edge
	Hazard       Hazard
	CanDash      bool

	Anim anim.Table[BehaviorState]
}

// Box sizes in world pixels.
const (
	soldierSize = 32
	tankSize    = 56 // 1.75 tiles
)

var soldierAnim = anim.NewTable(map[BehaviorState]anim.Clip{
	Standing:     {Start: 0, Frames: 3, Speed: 15},
	Walking:      {Start: 3, Frames: 4, Speed: 12},
	Crouching:    {Start: 7, Frames: 1, Speed: 30},
	Jumping:      {Start: 8, Frames: 1, Speed: 30},
	FiringHoriz:  {Start: 9, Frames: 3, Speed: 10},
	FiringDown:   {Start: 12, Frames: 3, Speed: 8},
	FiringUp:     {Start: 15, Frames: 3, Speed: 8},
	Damaged:      {Start: 18, Frames: 1, Speed: 8},
	PogoDown:     {Start: 19, Frames: 1, Speed: 30},
	PogoUp:       {Start: 20, Frames: 1, Speed: 30},
	FiringBubble: {Start: 21, Frames: 5, Speed: 20},
	Dying:        {Start: 26, Frames: 12, Speed: 10},
	Dashing:      {Start: 38, Frames: 1, Speed: 30},
	Warping:      {Start: 39, Frames: 8, Speed: 10},
	Dead:         {Start: 37, Frames: 1, Speed: 99},
}, anim.Clip{Start: 0, Frames: 1, Speed: 99})

var tankAnim = anim.NewTable(map[BehaviorState]anim.Clip{
	Standing:       {Start: 0, Frames: 1, Speed: 99},
	Walking:        {Start: 11, Frames: 4, Speed: 10},
	Crouching:      {Start: 8, Frames: 2, Speed: 10},
	Jumping:        {Start: 10, Frames: 1, Speed: 99},
	FiringHoriz:    {Start: 15, Frames: 5, Speed: 10},
	FiringUp:       {Start: 3, Frames: 5, Speed: 10},
	RotateBarrelUp: {Start: 1, Frames: 2, Speed: 15},
	BarrelUp:       {Start: 2, Frames: 1, Speed: 99},
	JumpWindup:     {Start: 8, Frames: 2, Speed: 10},
}, anim.Clip{Start: 0, Frames: 1, Speed: 99})

var kindSpecs = map[PlayerKind]KindSpec{
	Soldier: {
		Kind:         Soldier,
		Name:         "soldier",
		Width:        soldierSize,
		Height:       soldierSize,
		MaxSpeed:     2,
		Accel:        0.2,
		JumpImpulse:  -4.5,
		FloorSamples: 3,
		WallOffsets:  [3]float64{soldierSize / 4, soldierSize / 2, soldierSize - 1},
		Hazard:       HazardSmallSpikes,
		CanDash:      true,
		Anim:         soldierAnim,
	},
	Tank: {
		Kind:         Tank,
		Name:         "tank",
		Width:        tankSize,
		Height:       tankSize,
		MaxSpeed:     3,
		Accel:        0.2,
		JumpImpulse:  -6,
		WindupTicks:  tankAnim.Clip(JumpWindup).Duration(),
		FloorSamples: 4,
		WallOffsets:  [3]float64{16, 32, tankSize - 1},
		Hazard:       HazardLargeSpikes,
		Anim:         tankAnim,
	},
}

// SpecFor returns the built-in spec of a form.
func SpecFor(k PlayerKind) KindSpec {
	return kindSpecs[k]
}

// Tuning holds the numbers shared by both forms and the combat rules.
type Tuning struct {
	Gravity          float64
	TerminalVelocity float64

	InvulnTicks   int
	BlinkInterval int
	FireCooldown  int
	DamagedTicks  int
	KnockbackX    float64
	KnockbackY    float64

	DashTicks    int
	DashCooldown int
}

// DefaultTuning returns the stock physics and combat numbers at 60 ticks/s.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:          0.2,
		TerminalVelocity: 4,
		InvulnTicks:      60,
		BlinkInterval:    3,
		FireCooldown:     10,
		DamagedTicks:     8,
		KnockbackX:       5,
		KnockbackY:       2,
		DashTicks:        12,
		DashCooldown:     40,
	}
}
