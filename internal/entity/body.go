package entity

import "github.com/vovakirdan/mars-arcade/internal/core"

// Body holds what every entity has: a box, a velocity, a state and the
// outgoing spawn and cue queues.
type Body struct {
	Pos    core.Vec
	Vel    core.Vec
	W, H   float64
	State  BehaviorState
	Facing Facing

	spawns []SpawnRequest
	cues   []Cue
}

// Box returns the bounding box in world pixels.
func (b *Body) Box() core.RectF {
	return core.NewRectF(b.Pos, b.W, b.H)
}

// IsDead reports whether the registry should drop the entity.
func (b *Body) IsDead() bool {
	return b.State == Dead
}

// Kill marks the entity for removal.
func (b *Body) Kill() {
	b.State = Dead
}

func (b *Body) emit(req SpawnRequest) {
	b.spawns = append(b.spawns, req)
}

func (b *Body) cue(c Cue) {
	b.cues = append(b.cues, c)
}

// DrainSpawns returns and clears the pending spawn requests.
func (b *Body) DrainSpawns() []SpawnRequest {
	out := b.spawns
	b.spawns = nil
	return out
}

// DrainCues returns and clears the pending sound cues.
func (b *Body) DrainCues() []Cue {
	out := b.cues
	b.cues = nil
	return out
}
