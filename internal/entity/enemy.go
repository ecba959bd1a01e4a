package entity

import (
	"fmt"

	"github.com/vovakirdan/mars-arcade/internal/anim"
	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/tile"
)

// EnemySpec is the static description of an enemy type.
type EnemySpec struct {
	Name      string
	Size      float64
	HP        int
	Speed     float64 // patrol speed; zero for stationary enemies
	FireEvery int     // ticks between shots; zero never fires
	Anim      anim.Table[BehaviorState]
}

var enemySpecs = map[string]EnemySpec{
	"crawler": {
		Name:  "crawler",
		Size:  32,
		HP:    1,
		Speed: 0.5,
		Anim: anim.NewTable(map[BehaviorState]anim.Clip{
			Alive: {Start: 0, Frames: 2, Speed: 10},
			Dying: {Start: 2, Frames: 4, Speed: 4},
		}, anim.Clip{Start: 0, Frames: 1, Speed: 99}),
	},
	"turret": {
		Name:      "turret",
		Size:      32,
		HP:        3,
		FireEvery: 90,
		Anim: anim.NewTable(map[BehaviorState]anim.Clip{
			Alive: {Start: 0, Frames: 1, Speed: 99},
			Dying: {Start: 1, Frames: 4, Speed: 4},
		}, anim.Clip{Start: 0, Frames: 1, Speed: 99}),
	},
}

// EnemyNames lists the enemy types a map may spawn.
func EnemyNames() []string {
	return []string{"crawler", "turret"}
}

const sporeSpeed = 3

// Enemy is a hostile entity. Crawlers patrol and turn at walls and ledges;
// turrets stay put and fire spores toward the player's side.
type Enemy struct {
	Body
	Name string
	HP   int
	Anim anim.Cursor[BehaviorState]

	spec         EnemySpec
	tuning       Tuning
	grounded     bool
	stateCounter int
	fireTimer    int
}

// NewEnemy builds the named enemy with its top-left corner at pos.
func NewEnemy(name string, pos core.Vec, tuning Tuning) (*Enemy, error) {
	spec, ok := enemySpecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: enemy %q", ErrUnknownKind, name)
	}
	e := &Enemy{
		Body:   Body{Pos: pos, W: spec.Size, H: spec.Size, State: Alive, Facing: FacingLeft},
		Name:   name,
		HP:     spec.HP,
		spec:   spec,
		tuning: tuning,
	}
	e.Anim.Restart(Alive)
	return e, nil
}

// Track turns a stationary enemy toward target.
func (e *Enemy) Track(target core.Vec) {
	if e.spec.Speed != 0 || e.State != Alive {
		return
	}
	if target.X < e.Box().Center().X {
		e.Facing = FacingLeft
	} else {
		e.Facing = FacingRight
	}
}

// Update advances the enemy one tick.
func (e *Enemy) Update(q tile.Query) {
	switch e.State {
	case Dead:
		return
	case Dying:
		e.stateCounter++
		if e.stateCounter >= e.spec.Anim.Clip(Dying).Duration() {
			e.Kill()
			return
		}
		e.Anim.Advance(e.spec.Anim)
		return
	}

	if e.spec.Speed > 0 {
		e.patrol(q)
	}
	if e.spec.FireEvery > 0 {
		e.fireTimer++
		if e.fireTimer >= e.spec.FireEvery {
			e.fireTimer = 0
			c := e.Box().Center()
			s := e.Facing.Sign()
			e.emit(SpawnRequest{
				Kind:   SpawnEnemyProjectile,
				Name:   "spore",
				Pos:    core.V(c.X+s*e.W/2, c.Y),
				Vel:    core.V(s*sporeSpeed, 0),
				Facing: e.Facing,
			})
		}
	}
	e.Anim.Advance(e.spec.Anim)
}

func (e *Enemy) patrol(q tile.Query) {
	e.Vel.X = e.Facing.Sign() * e.spec.Speed

	e.grounded = onGround(q, &e.Body, 2)
	if !e.grounded {
		e.Vel.Y += e.tuning.Gravity
		if e.Vel.Y > e.tuning.TerminalVelocity {
			e.Vel.Y = e.tuning.TerminalVelocity
		}
	}
	if landed, _ := resolveDown(q, &e.Body, 2, HazardNone); landed {
		e.grounded = true
	}

	offsets := [3]float64{e.H / 4, e.H / 2, e.H - 1}
	blocked := resolveHorizontal(q, &e.Body, offsets)
	if blocked || (e.grounded && ledgeAhead(q, &e.Body)) {
		e.Vel.X = 0
		if e.Facing == FacingLeft {
			e.Facing = FacingRight
		} else {
			e.Facing = FacingLeft
		}
	}
	resolveUp(q, &e.Body, 2)
	e.Pos = e.Pos.Add(e.Vel)
}

// Hurt applies n damage. It reports whether the enemy started dying.
func (e *Enemy) Hurt(n int) bool {
	if e.State != Alive {
		return false
	}
	e.HP -= n
	if e.HP > 0 {
		return false
	}
	e.die()
	return true
}

// Squish kills the enemy outright after being landed on.
func (e *Enemy) Squish() {
	if e.State != Alive {
		return
	}
	e.HP = 0
	e.die()
}

func (e *Enemy) die() {
	e.State = Dying
	e.stateCounter = 0
	e.Vel = core.Vec{}
	e.Anim.Restart(Dying)
	e.cue(CueExplosion)
}

// SheetFrame returns the sprite-sheet frame currently visible.
func (e *Enemy) SheetFrame() int { return e.Anim.SheetFrame(e.spec.Anim) }
