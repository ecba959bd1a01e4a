package entity

import (
	"fmt"

	"github.com/vovakirdan/mars-arcade/internal/anim"
	"github.com/vovakirdan/mars-arcade/internal/core"
)

var burstClip = anim.Clip{Start: 0, Frames: 6, Speed: 3}

var effectSpecs = map[string]spriteSpec{
	"pellet_burst": {Size: 64, Offset: 16, Clip: burstClip},
	"tank_jump":    {Size: 128, Offset: 16, Clip: burstClip},
	"explosion":    {Size: 64, Offset: 16, Clip: burstClip},
}

// Effect is a purely visual sprite that plays its clip once and dies.
type Effect struct {
	Body
	Name     string
	Lifespan int
	Anim     anim.Cursor[BehaviorState]

	table anim.Table[BehaviorState]
}

// NewEffect builds the named effect around the requested point.
func NewEffect(name string, pos core.Vec, facing Facing) (*Effect, error) {
	spec, ok := effectSpecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: effect %q", ErrUnknownKind, name)
	}
	e := &Effect{
		Body: Body{
			Pos:    core.V(pos.X-spec.Offset, pos.Y-spec.Offset),
			W:      spec.Size,
			H:      spec.Size,
			State:  Alive,
			Facing: facing,
		},
		Name:     name,
		Lifespan: spec.Clip.Duration(),
		table:    anim.NewTable[BehaviorState](nil, spec.Clip),
	}
	e.Anim.Restart(Alive)
	return e, nil
}

// Update advances the clip and retires the effect once it has played.
func (e *Effect) Update() {
	if e.State == Dead {
		return
	}
	e.Anim.Advance(e.table)
	e.Lifespan--
	if e.Lifespan <= 0 {
		e.Kill()
	}
}

// SheetFrame returns the sprite-sheet frame currently visible.
func (e *Effect) SheetFrame() int { return e.Anim.SheetFrame(e.table) }
