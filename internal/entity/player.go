package entity

import (
	"github.com/vovakirdan/mars-arcade/internal/anim"
	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/tile"
)

// Muzzle offsets and speeds of the small bullet, in world pixels.
const (
	muzzleX       = 32
	muzzleY       = 16
	bulletSpeed   = 8
	bulletDiagVel = 6
)

// Player is a controllable form. Everything form-specific comes from its
// KindSpec; the per-tick logic is shared.
type Player struct {
	Body

	spec   KindSpec
	tuning Tuning

	HP       int
	MaxHP    int
	Grounded bool
	IFrames  int
	Blink    bool

	Anim anim.Cursor[BehaviorState]

	blinkCounter int
	stateCounter int
	damageTicks  int

	fireCooldown int
	hasFired     bool
	holdingFire  bool
	firePose     BehaviorState

	hasJumped      bool
	holdingJump    bool
	impulse        float64
	impulsePending bool

	crouching    bool
	dashTicks    int
	dashCooldown int
	holdingDash  bool
}

// NewPlayer creates a form standing at pos with hp hit points.
func NewPlayer(spec KindSpec, tuning Tuning, pos core.Vec, hp int) *Player {
	p := &Player{spec: spec, tuning: tuning}
	p.W, p.H = spec.Width, spec.Height
	p.MaxHP = hp
	p.Reset(pos, hp)
	return p
}

// Reset restores a fresh form at pos.
func (p *Player) Reset(pos core.Vec, hp int) {
	body := Body{Pos: pos, W: p.spec.Width, H: p.spec.Height, State: Standing, Facing: FacingRight}
	*p = Player{Body: body, spec: p.spec, tuning: p.tuning, HP: hp, MaxHP: p.MaxHP}
	if hp > p.MaxHP {
		p.MaxHP = hp
	}
	p.Anim.Restart(Standing)
}

// Place moves the form without simulating the motion. Velocity and any
// pending jump are dropped.
func (p *Player) Place(pos core.Vec) {
	p.Pos = pos
	p.Vel = core.Vec{}
	p.Grounded = false
	p.impulsePending = false
	if p.State == JumpWindup {
		p.State = Standing
	}
}

// Kind returns which form this is.
func (p *Player) Kind() PlayerKind { return p.spec.Kind }

// Spec returns the form's static description.
func (p *Player) Spec() KindSpec { return p.spec }

// AnimState returns the key of the animation being shown.
func (p *Player) AnimState() BehaviorState { return p.Anim.Key }

// SheetFrame returns the sprite-sheet frame currently visible.
func (p *Player) SheetFrame() int { return p.Anim.SheetFrame(p.spec.Anim) }

// FireCooldown returns the ticks left before the next shot.
func (p *Player) FireCooldown() int { return p.fireCooldown }

// ApplyInput reads one tick of held actions. Only the active form receives
// real input; the other form gets an empty state.
func (p *Player) ApplyInput(in core.InputState) {
	if p.State.Gone() {
		return
	}
	p.crouching = in.Has(core.ActionDown)
	p.applyDash(in)
	p.applyHorizontal(in)
	p.applyJump(in)
	p.applyFire(in)
}

func (p *Player) applyHorizontal(in core.InputState) {
	switch {
	case p.dashTicks > 0:
		p.Vel.X = p.Facing.Sign() * p.spec.MaxSpeed
	case p.damageTicks > 0:
		// knockback carries
	case in.Has(core.ActionLeft):
		p.Vel.X -= p.spec.Accel
	case in.Has(core.ActionRight):
		p.Vel.X += p.spec.Accel
	default:
		p.Vel.X = 0
	}
	p.Vel.X = core.ClampF(p.Vel.X, -p.spec.MaxSpeed, p.spec.MaxSpeed)
}

func (p *Player) applyJump(in core.InputState) {
	jump := in.Has(core.ActionJump)

	if p.Grounded && !jump && p.State != JumpWindup {
		p.hasJumped = false
	}

	if jump {
		if p.Grounded && !p.hasJumped {
			p.hasJumped = true
			p.holdingJump = true
			if p.spec.WindupTicks > 0 {
				if p.State != JumpWindup {
					p.State = JumpWindup
					p.stateCounter = 0
					p.Anim.Restart(JumpWindup)
				}
			} else {
				p.impulse = p.spec.JumpImpulse
				p.impulsePending = true
				p.cue(CueJump)
			}
		}
	} else {
		p.holdingJump = false
	}

	if p.holdingJump && !p.Grounded {
		p.Vel.Y -= p.tuning.Gravity / 2
	}
}

func (p *Player) applyFire(in core.InputState) {
	fire := in.Has(core.ActionFire)
	if fire && p.fireCooldown <= 0 && !p.hasFired {
		p.hasFired = true
		p.fireCooldown = p.tuning.FireCooldown
		p.cue(CueFire)

		s := p.Facing.Sign()
		req := SpawnRequest{Kind: SpawnPlayerProjectile, Name: "small_bullet", Facing: p.Facing}
		switch {
		case in.Has(core.ActionUp):
			p.firePose = FiringUp
			req.Pos = core.V(p.Pos.X+s*muzzleX, p.Pos.Y-muzzleY)
			req.Vel = core.V(s*bulletDiagVel, -bulletDiagVel)
		case in.Has(core.ActionDown):
			p.firePose = FiringDown
			req.Pos = core.V(p.Pos.X+s*muzzleX, p.Pos.Y+muzzleY)
			req.Vel = core.V(s*bulletDiagVel, bulletDiagVel)
		default:
			p.firePose = FiringHoriz
			req.Pos = core.V(p.Pos.X+s*muzzleX, p.Pos.Y)
			req.Vel = core.V(s*bulletSpeed, 0)
		}
		p.emit(req)
	}
	p.holdingFire = fire
}

func (p *Player) applyDash(in core.InputState) {
	item := in.Has(core.ActionItem)
	if item && !p.holdingDash && p.spec.CanDash && p.dashCooldown == 0 && p.damageTicks == 0 {
		p.dashTicks = p.tuning.DashTicks
		p.dashCooldown = p.tuning.DashCooldown
		p.Vel.Y = 0
		p.cue(CueDash)
	}
	p.holdingDash = item
}

// Update advances the form one tick against the map.
func (p *Player) Update(q tile.Query) {
	switch p.State {
	case Dead:
		return
	case Dying:
		p.updateDying(q)
		return
	}

	p.tickTimers()
	p.tickWindup()
	p.applyGravity(q)

	if p.impulsePending {
		p.Vel.Y = p.impulse
		p.impulsePending = false
		p.Grounded = false
	}

	p.resolve(q)
	p.Pos = p.Pos.Add(p.Vel)

	if p.State == Dying {
		p.Anim.Advance(p.spec.Anim)
		return
	}
	p.deriveState()
	p.deriveAnimation()
}

func (p *Player) tickTimers() {
	if p.fireCooldown > 0 {
		p.fireCooldown--
	} else if p.hasFired && !p.holdingFire {
		p.hasFired = false
	}

	if p.dashTicks > 0 {
		p.dashTicks--
	}
	if p.dashCooldown > 0 {
		p.dashCooldown--
	}
	if p.damageTicks > 0 {
		p.damageTicks--
	}

	if p.IFrames > 0 {
		p.IFrames--
		p.blinkCounter--
		if p.blinkCounter <= 0 {
			p.Blink = !p.Blink
			p.blinkCounter = p.tuning.BlinkInterval
		}
		if p.IFrames == 0 {
			p.Blink = false
		}
	}
}

// tickWindup runs the fixed anticipation before a delayed jump. Nothing
// shortens it once started.
func (p *Player) tickWindup() {
	if p.State != JumpWindup {
		return
	}
	p.stateCounter++
	if p.stateCounter < p.spec.WindupTicks {
		return
	}
	p.State = Jumping
	p.impulse = p.spec.JumpImpulse
	p.impulsePending = true
	p.cue(CueJump)
	p.emit(SpawnRequest{Kind: SpawnEffect, Name: "tank_jump", Pos: p.Pos, Facing: p.Facing})
}

func (p *Player) applyGravity(q tile.Query) {
	p.Grounded = onGround(q, &p.Body, p.spec.FloorSamples)
	if p.dashTicks > 0 {
		p.Vel.Y = 0
		return
	}
	if !p.Grounded {
		p.Vel.Y += p.tuning.Gravity
		if p.Vel.Y > p.tuning.TerminalVelocity {
			p.Vel.Y = p.tuning.TerminalVelocity
		}
	}
}

// resolve runs the down, horizontal and up probes in that order.
func (p *Player) resolve(q tile.Query) {
	landed, hurt := resolveDown(q, &p.Body, p.spec.FloorSamples, p.spec.Hazard)
	if landed {
		p.Grounded = true
	}
	if hurt {
		p.TakeDamage(1)
	}
	resolveHorizontal(q, &p.Body, p.spec.WallOffsets)
	resolveUp(q, &p.Body, p.spec.FloorSamples)
}

func (p *Player) updateDying(q tile.Query) {
	p.Vel.X = 0
	p.stateCounter++
	p.applyGravity(q)
	resolveDown(q, &p.Body, p.spec.FloorSamples, HazardNone)
	resolveUp(q, &p.Body, p.spec.FloorSamples)
	p.Pos = p.Pos.Add(p.Vel)

	if p.stateCounter >= p.spec.Anim.Clip(Dying).Duration() {
		p.State = Dead
		p.Anim.Set(Dead)
		return
	}
	p.Anim.Advance(p.spec.Anim)
}

func (p *Player) deriveState() {
	if p.State == JumpWindup {
		return
	}
	switch {
	case p.damageTicks > 0:
		p.State = Damaged
	case p.dashTicks > 0:
		p.State = Dashing
	case !p.Grounded:
		p.State = Jumping
	case p.Vel.X != 0:
		p.State = Walking
	case p.crouching:
		p.State = Crouching
	default:
		p.State = Standing
	}
}

func (p *Player) deriveAnimation() {
	if p.fireCooldown <= 0 && p.damageTicks == 0 {
		p.Facing = FacingFor(p.Vel.X, p.Facing)
	}

	key := p.State
	if p.fireCooldown > 0 && p.State != Damaged && p.State != JumpWindup {
		key = p.firePose
	}
	p.Anim.Set(key)
	p.Anim.Advance(p.spec.Anim)
}

// TakeDamage applies n damage with knockback. It does nothing while the form
// is invulnerable or already dying, and reports whether damage landed.
func (p *Player) TakeDamage(n int) bool {
	if n <= 0 || p.IFrames > 0 || p.State.Gone() {
		return false
	}

	p.Vel.X = -p.Facing.Sign() * p.tuning.KnockbackX
	p.Vel.Y = -p.tuning.KnockbackY
	p.State = Damaged
	p.damageTicks = p.tuning.DamagedTicks
	p.dashTicks = 0
	p.impulsePending = false
	p.IFrames = p.tuning.InvulnTicks
	p.blinkCounter = p.tuning.BlinkInterval
	p.Blink = false
	p.HP -= n
	p.cue(CueHurt)

	if p.HP <= 0 {
		p.HP = 0
		p.Die()
	}
	return true
}

// Die starts the death sequence. Dead follows once the death clip has played.
func (p *Player) Die() {
	if p.State.Gone() {
		return
	}
	p.State = Dying
	p.stateCounter = 0
	p.Vel.X = 0
	p.Anim.Restart(Dying)
	p.cue(CueDeath)
}

// Heal restores up to n hit points without exceeding MaxHP.
func (p *Player) Heal(n int) {
	if p.State.Gone() {
		return
	}
	p.HP += n
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	p.cue(CuePickup)
}
