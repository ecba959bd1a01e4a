package entity

import (
	"fmt"

	"github.com/vovakirdan/mars-arcade/internal/core"
)

// Doodad is a map-authored pickup.
type Doodad struct {
	Body
	Name string
	Heal int
}

var doodadHeal = map[string]int{
	"health": 1,
}

// NewDoodad builds the named pickup with its top-left corner at pos.
func NewDoodad(name string, pos core.Vec) (*Doodad, error) {
	heal, ok := doodadHeal[name]
	if !ok {
		return nil, fmt.Errorf("%w: doodad %q", ErrUnknownKind, name)
	}
	return &Doodad{
		Body: Body{Pos: pos, W: 32, H: 32, State: Alive},
		Name: name,
		Heal: heal,
	}, nil
}

// Collect applies the pickup to p and retires it.
func (d *Doodad) Collect(p *Player) {
	if d.State != Alive {
		return
	}
	p.Heal(d.Heal)
	d.Kill()
}
