package entity

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/mars-arcade/internal/anim"
	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/tile"
)

// ErrUnknownKind is returned when asked to build an entity with an unknown name.
var ErrUnknownKind = errors.New("entity: unknown kind")

// spriteSpec sizes an entity whose box is offset from the requested spawn point.
type spriteSpec struct {
	Size     float64
	Offset   float64
	Power    int
	Lifespan int
	Clip     anim.Clip
}

var projectileSpecs = map[string]spriteSpec{
	"small_bullet": {Size: 64, Offset: 16, Power: 1, Lifespan: 30, Clip: anim.Clip{Start: 0, Frames: 2, Speed: 8}},
	"spore":        {Size: 16, Offset: 8, Power: 1, Lifespan: 120, Clip: anim.Clip{Start: 0, Frames: 2, Speed: 8}},
}

// Projectile flies in a straight line until its lifespan runs out or its
// centre enters solid rock.
type Projectile struct {
	Body
	Name     string
	Power    int
	Lifespan int
	Anim     anim.Cursor[BehaviorState]

	table anim.Table[BehaviorState]
}

// NewProjectile builds the named projectile around the requested point.
func NewProjectile(name string, pos, vel core.Vec, facing Facing) (*Projectile, error) {
	spec, ok := projectileSpecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: projectile %q", ErrUnknownKind, name)
	}
	p := &Projectile{
		Body: Body{
			Pos:    core.V(pos.X-spec.Offset, pos.Y-spec.Offset),
			Vel:    vel,
			W:      spec.Size,
			H:      spec.Size,
			State:  Alive,
			Facing: facing,
		},
		Name:     name,
		Power:    spec.Power,
		Lifespan: spec.Lifespan,
		table:    anim.NewTable[BehaviorState](nil, spec.Clip),
	}
	p.Anim.Restart(Alive)
	return p, nil
}

// Update moves the projectile and ages it.
func (p *Projectile) Update(q tile.Query) {
	if p.State == Dead {
		return
	}
	p.Pos = p.Pos.Add(p.Vel)
	p.Anim.Advance(p.table)

	p.Lifespan--
	if p.Lifespan <= 0 {
		p.Kill()
		return
	}
	c := p.Box().Center()
	if q.PropertiesAt(c.X, c.Y).Solid {
		p.Kill()
	}
}

// SheetFrame returns the sprite-sheet frame currently visible.
func (p *Projectile) SheetFrame() int { return p.Anim.SheetFrame(p.table) }
