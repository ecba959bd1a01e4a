// Package world owns every live entity of the current map. It routes input to
// the controlled form, runs the per-tick update and collision passes, turns
// spawn requests into entities and detects map exits.
package world

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/entity"
	"github.com/vovakirdan/mars-arcade/internal/tile"
)

// ErrUnknownSpawn is returned for spawn requests naming nothing the registry can build.
var ErrUnknownSpawn = errors.New("world: unknown spawn")

// ControlState selects the form receiving player input.
type ControlState int

const (
	ControlSoldier ControlState = iota
	ControlTank
)

// Kind returns the player form driven in this control state.
func (c ControlState) Kind() entity.PlayerKind {
	if c == ControlTank {
		return entity.Tank
	}
	return entity.Soldier
}

func (c ControlState) String() string {
	return c.Kind().String()
}

// HUDSink receives the controlled form's hit points once per tick.
type HUDSink interface {
	SetHitPoints(hp int)
}

type nopHUD struct{}

func (nopHUD) SetHitPoints(int) {}

// Options configures a Registry. Zero values pick the built-in forms and
// tuning, a silent logger and no-op sinks.
type Options struct {
	Soldier   *entity.KindSpec
	Tank      *entity.KindSpec
	Tuning    *entity.Tuning
	HitPoints int
	Logger    *log.Logger
	Cues      entity.CueSink
	HUD       HUDSink
}

// Registry holds the soldier/tank pair and every other entity on the map,
// bucketed by collision role.
type Registry struct {
	players [2]*entity.Player
	partner [2]entity.PlayerKind
	boarded bool

	enemies     []*entity.Enemy
	playerShots []*entity.Projectile
	enemyShots  []*entity.Projectile
	doodads     []*entity.Doodad
	effects     []*entity.Effect

	tuning    entity.Tuning
	hitPoints int
	switches  core.EdgeTracker
	kills     int

	logger *log.Logger
	cues   entity.CueSink
	hud    HUDSink
}

// New creates a registry with both forms at the origin. Call EnterMap to
// populate a map.
func New(opts Options) *Registry {
	soldier := entity.SpecFor(entity.Soldier)
	if opts.Soldier != nil {
		soldier = *opts.Soldier
	}
	tank := entity.SpecFor(entity.Tank)
	if opts.Tank != nil {
		tank = *opts.Tank
	}
	tuning := entity.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	hp := opts.HitPoints
	if hp <= 0 {
		hp = 4
	}

	r := &Registry{
		tuning:    tuning,
		hitPoints: hp,
		logger:    opts.Logger,
		cues:      opts.Cues,
		hud:       opts.HUD,
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	if r.cues == nil {
		r.cues = entity.NopCueSink{}
	}
	if r.hud == nil {
		r.hud = nopHUD{}
	}

	r.players[entity.Soldier] = entity.NewPlayer(soldier, tuning, core.Vec{}, hp)
	r.players[entity.Tank] = entity.NewPlayer(tank, tuning, core.Vec{}, hp)
	r.partner[entity.Soldier] = entity.Tank
	r.partner[entity.Tank] = entity.Soldier
	return r
}

// Player returns the form of kind k.
func (r *Registry) Player(k entity.PlayerKind) *entity.Player {
	return r.players[k]
}

// Active returns the form driven in control state cs.
func (r *Registry) Active(cs ControlState) *entity.Player {
	return r.players[cs.Kind()]
}

// Partner returns the other form of the pair.
func (r *Registry) Partner(k entity.PlayerKind) *entity.Player {
	return r.players[r.partner[k]]
}

// Boarded reports whether the soldier rides inside the tank.
func (r *Registry) Boarded() bool { return r.boarded }

// Kills returns the number of enemies destroyed since the last ResetPlayers.
func (r *Registry) Kills() int { return r.kills }

// Enemies returns the live enemy list. Callers must not modify it.
func (r *Registry) Enemies() []*entity.Enemy { return r.enemies }

// PlayerProjectiles returns shots fired by the player.
func (r *Registry) PlayerProjectiles() []*entity.Projectile { return r.playerShots }

// EnemyProjectiles returns shots fired by enemies.
func (r *Registry) EnemyProjectiles() []*entity.Projectile { return r.enemyShots }

// Doodads returns the pickups still on the map.
func (r *Registry) Doodads() []*entity.Doodad { return r.doodads }

// Effects returns the visual effects still playing.
func (r *Registry) Effects() []*entity.Effect { return r.effects }

// ResetPlayers restores both forms to full health and clears the kill count.
// The soldier starts outside the tank.
func (r *Registry) ResetPlayers() {
	for _, p := range r.players {
		p.Reset(p.Pos, r.hitPoints)
	}
	r.boarded = false
	r.kills = 0
	r.switches.Reset()
}

// Update advances every entity one tick and returns the control state after
// any form switch requested this tick.
func (r *Registry) Update(m tile.Query, in core.InputState, cs ControlState) ControlState {
	r.cleanup()

	pressed := r.switches.Update(in)
	if pressed.Has(core.ActionModeSwitch) {
		cs = r.switchForm(cs)
	}

	active := cs.Kind()
	for k, p := range r.players {
		kind := entity.PlayerKind(k)
		if kind == entity.Soldier && r.boarded {
			continue
		}
		if p.IsDead() {
			continue
		}
		if kind == active {
			p.ApplyInput(in)
		} else {
			p.ApplyInput(core.InputState{})
		}
		p.Update(m)
	}
	if r.boarded {
		r.pinSoldier()
	}

	target := r.Active(cs).Box().Center()
	for _, e := range r.enemies {
		e.Track(target)
		e.Update(m)
	}
	for _, s := range r.playerShots {
		s.Update(m)
	}
	for _, s := range r.enemyShots {
		s.Update(m)
	}
	for _, fx := range r.effects {
		fx.Update()
	}

	r.resolveShots()
	r.drain()
	r.hud.SetHitPoints(r.Active(cs).HP)
	return cs
}

// Idle records the input of a tick the registry does not simulate, such as a
// paused tick or one spent scrolling. A ModeSwitch held through it does not
// count as a new press when simulation resumes.
func (r *Registry) Idle(in core.InputState) {
	r.switches.Update(in)
}

// cleanup drops every non-player entity that reached Dead.
func (r *Registry) cleanup() {
	r.enemies = compact(r.enemies)
	r.playerShots = compact(r.playerShots)
	r.enemyShots = compact(r.enemyShots)
	r.doodads = compact(r.doodads)
	r.effects = compact(r.effects)
}

type mortal interface {
	IsDead() bool
}

func compact[T mortal](list []T) []T {
	out := list[:0]
	for _, e := range list {
		if !e.IsDead() {
			out = append(out, e)
		}
	}
	var zero T
	for i := len(out); i < len(list); i++ {
		list[i] = zero
	}
	return out
}

func (r *Registry) switchForm(cs ControlState) ControlState {
	soldier := r.players[entity.Soldier]
	tank := r.players[entity.Tank]
	if soldier.State.Gone() || tank.State.Gone() {
		return cs
	}

	switch cs {
	case ControlTank:
		r.boarded = false
		soldier.Place(r.boardedPos())
		r.cues.Play(entity.CueSwitch)
		r.logger.Debug("soldier left tank", "x", soldier.Pos.X, "y", soldier.Pos.Y)
		return ControlSoldier
	default:
		if !soldier.Box().Intersects(tank.Box()) {
			return cs
		}
		r.boarded = true
		r.pinSoldier()
		r.cues.Play(entity.CueSwitch)
		r.logger.Debug("soldier boarded tank")
		return ControlTank
	}
}

// boardedPos centres the soldier on the tank, bottoms aligned.
func (r *Registry) boardedPos() core.Vec {
	soldier := r.players[entity.Soldier]
	tank := r.players[entity.Tank]
	return core.V(tank.Pos.X+(tank.W-soldier.W)/2, tank.Pos.Y+tank.H-soldier.H)
}

func (r *Registry) pinSoldier() {
	soldier := r.players[entity.Soldier]
	soldier.Pos = r.boardedPos()
	soldier.Vel = core.Vec{}
}

// resolveShots lets player projectiles hit enemies. Each shot hits at most
// one enemy.
func (r *Registry) resolveShots() {
	for _, s := range r.playerShots {
		if s.IsDead() {
			continue
		}
		box := s.Box()
		for _, e := range r.enemies {
			if e.State != entity.Alive || !box.Intersects(e.Box()) {
				continue
			}
			if e.Hurt(s.Power) {
				r.enemyKilled(e)
			}
			s.Kill()
			break
		}
	}
}

func (r *Registry) enemyKilled(e *entity.Enemy) {
	r.kills++
	c := e.Box().Center()
	if err := r.Spawn(entity.SpawnRequest{Kind: entity.SpawnEffect, Name: "explosion", Pos: c}); err != nil {
		r.logger.Warn("spawn rejected", "err", err)
	}
	r.logger.Debug("enemy destroyed", "name", e.Name, "kills", r.kills)
}

// drain turns queued spawn requests into entities and forwards sound cues.
func (r *Registry) drain() {
	var reqs []entity.SpawnRequest
	var cues []entity.Cue

	for _, p := range r.players {
		reqs = append(reqs, p.DrainSpawns()...)
		cues = append(cues, p.DrainCues()...)
	}
	for _, e := range r.enemies {
		reqs = append(reqs, e.DrainSpawns()...)
		cues = append(cues, e.DrainCues()...)
	}

	for _, req := range reqs {
		if err := r.Spawn(req); err != nil {
			r.logger.Warn("spawn rejected", "err", err)
		}
	}
	for _, c := range cues {
		r.cues.Play(c)
	}
}

// Spawn creates the entity a request names. Unknown requests create nothing
// and return an error wrapping ErrUnknownSpawn.
func (r *Registry) Spawn(req entity.SpawnRequest) error {
	switch req.Kind {
	case entity.SpawnPlayerProjectile, entity.SpawnEnemyProjectile:
		shot, err := entity.NewProjectile(req.Name, req.Pos, req.Vel, req.Facing)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrUnknownSpawn, req.Kind, err)
		}
		if req.Kind == entity.SpawnEnemyProjectile {
			r.enemyShots = append(r.enemyShots, shot)
			return nil
		}
		r.playerShots = append(r.playerShots, shot)
		if req.Name == "small_bullet" {
			return r.Spawn(entity.SpawnRequest{Kind: entity.SpawnEffect, Name: "pellet_burst", Pos: req.Pos, Facing: req.Facing})
		}
		return nil
	case entity.SpawnEffect:
		fx, err := entity.NewEffect(req.Name, req.Pos, req.Facing)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrUnknownSpawn, req.Kind, err)
		}
		r.effects = append(r.effects, fx)
		return nil
	default:
		return fmt.Errorf("%w: kind %q", ErrUnknownSpawn, req.Kind)
	}
}

// CheckCollisions resolves contact between the controlled form and enemies,
// enemy projectiles and pickups. Landing on an enemy from above squishes it;
// any other contact hurts the player at most once per tick.
func (r *Registry) CheckCollisions(cs ControlState) {
	p := r.Active(cs)
	if p.State.Gone() {
		return
	}
	box := p.Box()

	hurt := false
	for _, e := range r.enemies {
		if e.State != entity.Alive || !box.Intersects(e.Box()) {
			continue
		}
		if p.Vel.Y > 0 && p.Pos.Y < e.Pos.Y {
			e.Squish()
			r.enemyKilled(e)
			continue
		}
		if !hurt {
			p.TakeDamage(1)
			hurt = true
		}
	}

	for _, s := range r.enemyShots {
		if s.IsDead() || !box.Intersects(s.Box()) {
			continue
		}
		s.Kill()
		if !hurt {
			p.TakeDamage(s.Power)
			hurt = true
		}
	}

	for _, d := range r.doodads {
		if !d.IsDead() && box.Intersects(d.Box()) {
			d.Collect(p)
		}
	}

	r.drain()
	r.hud.SetHitPoints(p.HP)
}

// CheckForMapExit returns the first exit the controlled form overlaps.
// The returned exit has direction tile.DirNone when there is none.
func (r *Registry) CheckForMapExit(m *tile.Map, cs ControlState) (tile.Exit, bool) {
	p := r.Active(cs)
	if p.State.Gone() {
		return tile.Exit{Dir: tile.DirNone}, false
	}
	return m.ExitAt(p.Box())
}

// EnterMap replaces the map population with m's authored spawns and places
// both forms at the entrance for travellers arriving on side arrival.
func (r *Registry) EnterMap(m *tile.Map, arrival tile.Direction) error {
	ent, err := m.Entrance(arrival)
	if err != nil {
		return fmt.Errorf("world: enter %s: %w", m.ID, err)
	}

	r.enemies = nil
	r.playerShots = nil
	r.enemyShots = nil
	r.doodads = nil
	r.effects = nil

	for _, s := range m.Spawns() {
		if err := r.spawnAuthored(s); err != nil {
			r.logger.Warn("map spawn skipped", "map", m.ID, "err", err)
		}
	}

	r.PlaceAt(ent.Bounds)
	r.logger.Info("entered map", "map", m.ID, "side", arrival, "enemies", len(r.enemies))
	return nil
}

// PlaceAt puts both forms on the bottom edge of region, left aligned.
func (r *Registry) PlaceAt(region core.RectF) {
	for _, p := range r.players {
		p.Place(core.V(region.X, region.Bottom()-p.H))
	}
	if r.boarded {
		r.pinSoldier()
	}
}

func (r *Registry) spawnAuthored(s tile.Spawn) error {
	switch s.Kind {
	case tile.ObjectEnemySpawn:
		e, err := entity.NewEnemy(s.Name, s.Pos, r.tuning)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnknownSpawn, err)
		}
		r.enemies = append(r.enemies, e)
	case tile.ObjectDoodad:
		d, err := entity.NewDoodad(s.Name, s.Pos)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnknownSpawn, err)
		}
		r.doodads = append(r.doodads, d)
	default:
		return fmt.Errorf("%w: object %q", ErrUnknownSpawn, s.Kind)
	}
	return nil
}
