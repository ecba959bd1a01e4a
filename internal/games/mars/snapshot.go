package mars

import (
	"fmt"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/mars-arcade/internal/entity"
)

// Phase is the coarse state of a run.
type Phase string

const (
	PhasePlaying    Phase = "playing"
	PhasePaused     Phase = "paused"
	PhaseTransition Phase = "transition"
	PhaseDying      Phase = "dying"
	PhaseGameOver   Phase = "game_over"
)

// PlayerSnapshot is the state of one player form.
type PlayerSnapshot struct {
	X, Y     float64
	VX, VY   float64
	State    entity.BehaviorState
	Anim     entity.BehaviorState
	Frame    int
	Facing   entity.Facing
	HP       int
	IFrames  int
	Grounded bool
}

// BodySnapshot is the state of an enemy, projectile, pickup or effect.
type BodySnapshot struct {
	Name  string
	X, Y  float64
	VX    float64
	VY    float64
	State entity.BehaviorState
	HP    int
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	MapID      string
	Control    string
	Boarded    bool
	Score      int
	Kills      int
	Visited    int
	DeathTicks int

	Players     [2]PlayerSnapshot
	Enemies     []BodySnapshot
	PlayerShots []BodySnapshot
	EnemyShots  []BodySnapshot
	Doodads     []BodySnapshot
	Effects     []BodySnapshot
}

// Phase returns the coarse state of the run.
func (g *Game) Phase() Phase {
	switch {
	case g.gameOver:
		return PhaseGameOver
	case g.paused:
		return PhasePaused
	case g.scroll.Active():
		return PhaseTransition
	case g.world.Active(g.control).State.Gone():
		return PhaseDying
	}
	return PhasePlaying
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Phase:      g.Phase(),
		MapID:      g.State().MapID,
		Control:    g.control.String(),
		Boarded:    g.world.Boarded(),
		Score:      g.Score(),
		Kills:      g.world.Kills(),
		Visited:    len(g.visited),
		DeathTicks: g.deathTicks,
	}

	for _, k := range []entity.PlayerKind{entity.Soldier, entity.Tank} {
		p := g.world.Player(k)
		s.Players[k] = PlayerSnapshot{
			X: p.Pos.X, Y: p.Pos.Y,
			VX: p.Vel.X, VY: p.Vel.Y,
			State:    p.State,
			Anim:     p.AnimState(),
			Frame:    p.SheetFrame(),
			Facing:   p.Facing,
			HP:       p.HP,
			IFrames:  p.IFrames,
			Grounded: p.Grounded,
		}
	}

	for _, e := range g.world.Enemies() {
		s.Enemies = append(s.Enemies, bodySnap(e.Name, &e.Body, e.HP))
	}
	for _, p := range g.world.PlayerProjectiles() {
		s.PlayerShots = append(s.PlayerShots, bodySnap(p.Name, &p.Body, p.Lifespan))
	}
	for _, p := range g.world.EnemyProjectiles() {
		s.EnemyShots = append(s.EnemyShots, bodySnap(p.Name, &p.Body, p.Lifespan))
	}
	for _, d := range g.world.Doodads() {
		s.Doodads = append(s.Doodads, bodySnap(d.Name, &d.Body, d.Heal))
	}
	for _, fx := range g.world.Effects() {
		s.Effects = append(s.Effects, bodySnap(fx.Name, &fx.Body, fx.Lifespan))
	}
	return s
}

func bodySnap(name string, b *entity.Body, hp int) BodySnapshot {
	return BodySnapshot{
		Name: name,
		X:    b.Pos.X, Y: b.Pos.Y,
		VX: b.Vel.X, VY: b.Vel.Y,
		State: b.State,
		HP:    hp,
	}
}

// Hash returns an FNV-1a hash of the snapshot. Floats are hashed by their
// bit patterns.
func (s *Snapshot) Hash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "T:%d;P:%s;M:%s;C:%s;B:%t;", s.Tick, s.Phase, s.MapID, s.Control, s.Boarded)
	fmt.Fprintf(h, "S:%d;K:%d;V:%d;D:%d;", s.Score, s.Kills, s.Visited, s.DeathTicks)

	for i, p := range s.Players {
		fmt.Fprintf(h, "F%d:%x,%x,%x,%x,%d,%d,%d,%d,%d,%d,%t;", i,
			math.Float64bits(p.X), math.Float64bits(p.Y),
			math.Float64bits(p.VX), math.Float64bits(p.VY),
			p.State, p.Anim, p.Frame, p.Facing, p.HP, p.IFrames, p.Grounded)
	}

	groups := []struct {
		tag    string
		bodies []BodySnapshot
	}{
		{"E", s.Enemies},
		{"PS", s.PlayerShots},
		{"ES", s.EnemyShots},
		{"DD", s.Doodads},
		{"FX", s.Effects},
	}
	for _, g := range groups {
		fmt.Fprintf(h, "%s:", g.tag)
		for _, b := range g.bodies {
			fmt.Fprintf(h, "%s:%x,%x,%x,%x,%d,%d,", b.Name,
				math.Float64bits(b.X), math.Float64bits(b.Y),
				math.Float64bits(b.VX), math.Float64bits(b.VY),
				b.State, b.HP)
		}
		fmt.Fprint(h, ";")
	}

	return h.Sum64()
}
