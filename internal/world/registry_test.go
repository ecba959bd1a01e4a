package world

import (
	"errors"
	"testing"

	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/entity"
	"github.com/vovakirdan/mars-arcade/internal/tile"
)

var openRows = []string{
	"............",
	"............",
	"............",
	"............",
	"............",
	"............",
	"............",
	"############",
}

func tileRegion(col, row, w, h int) core.RectF {
	return core.RectF{X: float64(col * 32), Y: float64(row * 32), W: float64(w * 32), H: float64(h * 32)}
}

func buildMap(t *testing.T, id string, extra ...tile.Object) *tile.Map {
	t.Helper()
	objects := []tile.Object{
		{Kind: tile.ObjectEntrance, Dir: tile.DirLeft, Bounds: tileRegion(1, 6, 1, 1)},
		{Kind: tile.ObjectEntrance, Dir: tile.DirRight, Bounds: tileRegion(9, 6, 1, 1)},
		{Kind: tile.ObjectExit, Dir: tile.DirRight, Dest: "b", Bounds: tileRegion(11, 0, 1, 7)},
		{Kind: tile.ObjectExit, Dir: tile.DirLeft, Dest: "a", Bounds: tileRegion(0, 0, 1, 7)},
	}
	objects = append(objects, extra...)
	m, err := tile.NewMap(id, id, openRows, 32, objects)
	if err != nil {
		t.Fatalf("NewMap() failed: %v", err)
	}
	return m
}

var (
	crawlerAt = tile.Object{Kind: tile.ObjectEnemySpawn, Spawn: "crawler", Bounds: tileRegion(5, 6, 1, 1)}
	healthAt  = tile.Object{Kind: tile.ObjectDoodad, Spawn: "health", Bounds: tileRegion(7, 6, 1, 1)}
)

type recordingCues struct{ played []entity.Cue }

func (r *recordingCues) Play(c entity.Cue) { r.played = append(r.played, c) }

type recordingHUD struct{ hp []int }

func (r *recordingHUD) SetHitPoints(hp int) { r.hp = append(r.hp, hp) }

func enter(t *testing.T, r *Registry, m *tile.Map) {
	t.Helper()
	if err := r.EnterMap(m, tile.DirLeft); err != nil {
		t.Fatalf("EnterMap() failed: %v", err)
	}
}

func TestEnterMapPlacesForms(t *testing.T) {
	r := New(Options{})
	enter(t, r, buildMap(t, "a", crawlerAt, healthAt))

	if got := r.Player(entity.Soldier).Pos; got != core.V(32, 192) {
		t.Errorf("soldier Pos = %v, expected (32, 192)", got)
	}
	if got := r.Player(entity.Tank).Pos; got != core.V(32, 168) {
		t.Errorf("tank Pos = %v, expected (32, 168)", got)
	}
	if len(r.Enemies()) != 1 || r.Enemies()[0].Name != "crawler" {
		t.Errorf("Enemies() = %d, expected one crawler", len(r.Enemies()))
	}
	if len(r.Doodads()) != 1 {
		t.Errorf("Doodads() = %d, expected 1", len(r.Doodads()))
	}
}

func TestEnterMapMissingEntrance(t *testing.T) {
	r := New(Options{})
	m := buildMap(t, "a", crawlerAt)
	enter(t, r, m)

	err := r.EnterMap(m, tile.DirUp)
	if !errors.Is(err, tile.ErrNoEntrance) {
		t.Fatalf("EnterMap() error = %v, expected ErrNoEntrance", err)
	}
	if len(r.Enemies()) != 1 {
		t.Error("a refused entry should leave the population untouched")
	}
}

func TestEnterMapSkipsUnknownSpawns(t *testing.T) {
	r := New(Options{})
	bogus := tile.Object{Kind: tile.ObjectEnemySpawn, Spawn: "slug", Bounds: tileRegion(4, 6, 1, 1)}
	enter(t, r, buildMap(t, "a", bogus, crawlerAt))

	if len(r.Enemies()) != 1 {
		t.Errorf("Enemies() = %d, expected only the known crawler", len(r.Enemies()))
	}
}

func TestFireSpawnsBulletAndBurst(t *testing.T) {
	cues := &recordingCues{}
	r := New(Options{Cues: cues})
	m := buildMap(t, "a")
	enter(t, r, m)

	r.Update(m, core.NewInputState(core.ActionFire), ControlSoldier)

	if len(r.PlayerProjectiles()) != 1 {
		t.Errorf("PlayerProjectiles() = %d, expected 1", len(r.PlayerProjectiles()))
	}
	if len(r.Effects()) != 1 || r.Effects()[0].Name != "pellet_burst" {
		t.Errorf("Effects() = %d, expected one pellet_burst", len(r.Effects()))
	}
	found := false
	for _, c := range cues.played {
		if c == entity.CueFire {
			found = true
		}
	}
	if !found {
		t.Errorf("cues = %v, expected fire", cues.played)
	}
}

func TestDeadEntitiesRemovedNextTick(t *testing.T) {
	r := New(Options{})
	m := buildMap(t, "a")
	enter(t, r, m)

	r.Update(m, core.NewInputState(core.ActionFire), ControlSoldier)
	for i := 0; i < 18; i++ {
		r.Update(m, core.InputState{}, ControlSoldier)
	}

	fx := r.Effects()
	if len(fx) != 1 || !fx[0].IsDead() {
		t.Fatalf("expected the burst to be dead but still listed, got %d effects", len(fx))
	}

	r.Update(m, core.InputState{}, ControlSoldier)
	if len(r.Effects()) != 0 {
		t.Errorf("Effects() = %d after cleanup, expected 0", len(r.Effects()))
	}
}

func TestUnknownSpawnRejected(t *testing.T) {
	r := New(Options{})

	tests := []entity.SpawnRequest{
		{Kind: entity.SpawnEffect, Name: "sparkle"},
		{Kind: entity.SpawnPlayerProjectile, Name: "plasma"},
		{Kind: entity.SpawnKind("boss"), Name: "explosion"},
	}
	for _, req := range tests {
		if err := r.Spawn(req); !errors.Is(err, ErrUnknownSpawn) {
			t.Errorf("Spawn(%+v) error = %v, expected ErrUnknownSpawn", req, err)
		}
	}
	if len(r.Effects())+len(r.PlayerProjectiles())+len(r.EnemyProjectiles()) != 0 {
		t.Error("rejected spawns should create nothing")
	}
}

func TestSquishFromAbove(t *testing.T) {
	r := New(Options{})
	m := buildMap(t, "a", crawlerAt)
	enter(t, r, m)

	p := r.Player(entity.Soldier)
	p.Pos = core.V(160, 170)
	p.Vel = core.V(0, 2)

	r.CheckCollisions(ControlSoldier)

	if r.Enemies()[0].State != entity.Dying {
		t.Errorf("enemy State = %v, expected dying", r.Enemies()[0].State)
	}
	if p.HP != 4 {
		t.Errorf("HP = %d, a squish should not hurt the player", p.HP)
	}
	if r.Kills() != 1 {
		t.Errorf("Kills() = %d, expected 1", r.Kills())
	}
	if len(r.Effects()) != 1 || r.Effects()[0].Name != "explosion" {
		t.Error("expected an explosion effect")
	}
}

func TestSideContactHurtsOncePerTick(t *testing.T) {
	r := New(Options{})
	second := tile.Object{Kind: tile.ObjectEnemySpawn, Spawn: "crawler", Bounds: core.RectF{X: 170, Y: 192, W: 32, H: 32}}
	m := buildMap(t, "a", crawlerAt, second)
	enter(t, r, m)

	p := r.Player(entity.Soldier)
	p.Pos = core.V(150, 192)

	r.CheckCollisions(ControlSoldier)
	if p.HP != 3 {
		t.Errorf("HP = %d, expected 3", p.HP)
	}
	for _, e := range r.Enemies() {
		if e.State != entity.Alive {
			t.Error("side contact should not kill the enemy")
		}
	}

	r.CheckCollisions(ControlSoldier)
	if p.HP != 3 {
		t.Errorf("HP = %d during invulnerability, expected 3", p.HP)
	}
}

func TestEnemyShotHurtsPlayer(t *testing.T) {
	hud := &recordingHUD{}
	r := New(Options{HUD: hud})
	enter(t, r, buildMap(t, "a"))

	p := r.Player(entity.Soldier)
	c := p.Box().Center()
	if err := r.Spawn(entity.SpawnRequest{Kind: entity.SpawnEnemyProjectile, Name: "spore", Pos: c}); err != nil {
		t.Fatalf("Spawn() failed: %v", err)
	}

	r.CheckCollisions(ControlSoldier)

	if p.HP != 3 {
		t.Errorf("HP = %d, expected 3", p.HP)
	}
	if !r.EnemyProjectiles()[0].IsDead() {
		t.Error("the spore should be consumed by the hit")
	}
	if len(hud.hp) == 0 || hud.hp[len(hud.hp)-1] != 3 {
		t.Errorf("HUD = %v, expected last value 3", hud.hp)
	}
}

func TestShotKillsEnemy(t *testing.T) {
	r := New(Options{})
	m := buildMap(t, "a", crawlerAt)
	enter(t, r, m)

	r.Update(m, core.NewInputState(core.ActionFire), ControlSoldier)
	for i := 0; i < 30 && r.Kills() == 0; i++ {
		r.Update(m, core.InputState{}, ControlSoldier)
	}

	if r.Kills() != 1 {
		t.Fatalf("Kills() = %d, expected 1", r.Kills())
	}
	if r.Enemies()[0].State != entity.Dying {
		t.Errorf("enemy State = %v, expected dying", r.Enemies()[0].State)
	}
}

func TestPickupHeals(t *testing.T) {
	r := New(Options{})
	enter(t, r, buildMap(t, "a", healthAt))

	p := r.Player(entity.Soldier)
	p.TakeDamage(1)
	p.Pos = core.V(224, 192)

	r.CheckCollisions(ControlSoldier)

	if p.HP != 4 {
		t.Errorf("HP = %d, expected 4", p.HP)
	}
	if !r.Doodads()[0].IsDead() {
		t.Error("collected pickup should be dead")
	}
}

func TestModeSwitch(t *testing.T) {
	r := New(Options{})
	m := buildMap(t, "a")
	enter(t, r, m)
	switchKey := core.NewInputState(core.ActionModeSwitch)

	cs := r.Update(m, switchKey, ControlSoldier)
	if cs != ControlTank || !r.Boarded() {
		t.Fatalf("Update() = %v, boarded %v, expected tank and boarded", cs, r.Boarded())
	}

	cs = r.Update(m, switchKey, cs)
	if cs != ControlTank {
		t.Fatal("holding the switch key should not switch again")
	}

	for i := 0; i < 20; i++ {
		cs = r.Update(m, core.NewInputState(core.ActionRight), cs)
	}
	tank := r.Player(entity.Tank)
	soldier := r.Player(entity.Soldier)
	if soldier.Pos.X != tank.Pos.X+12 {
		t.Errorf("boarded soldier x = %v, expected pinned to tank at %v", soldier.Pos.X, tank.Pos.X+12)
	}

	cs = r.Update(m, core.InputState{}, cs)
	cs = r.Update(m, switchKey, cs)
	if cs != ControlSoldier || r.Boarded() {
		t.Fatalf("Update() = %v, boarded %v, expected soldier on foot", cs, r.Boarded())
	}
	if soldier.Pos.Y+soldier.H != tank.Pos.Y+tank.H {
		t.Errorf("soldier bottom = %v, expected to leave at tank bottom %v", soldier.Pos.Y+soldier.H, tank.Pos.Y+tank.H)
	}

	for i := 0; i < 60; i++ {
		cs = r.Update(m, core.NewInputState(core.ActionRight), cs)
	}
	cs = r.Update(m, core.InputState{}, cs)
	cs = r.Update(m, switchKey, cs)
	if cs != ControlSoldier {
		t.Error("the soldier must overlap the tank to board it")
	}
}

func TestIdleTracksHeldSwitch(t *testing.T) {
	r := New(Options{})
	m := buildMap(t, "a")
	enter(t, r, m)
	switchKey := core.NewInputState(core.ActionModeSwitch)

	r.Idle(switchKey)
	if cs := r.Update(m, switchKey, ControlSoldier); cs != ControlSoldier {
		t.Errorf("Update() = %v, a switch held since an idle tick should not fire", cs)
	}
}

func TestInactiveFormKeepsSimulating(t *testing.T) {
	r := New(Options{})
	m := buildMap(t, "a")
	enter(t, r, m)

	tank := r.Player(entity.Tank)
	tank.Place(core.V(200, 40))

	for i := 0; i < 120; i++ {
		r.Update(m, core.NewInputState(core.ActionRight), ControlSoldier)
	}

	if tank.Pos.Y+tank.H != 224 {
		t.Errorf("tank bottom = %v, expected to fall to the floor at 224", tank.Pos.Y+tank.H)
	}
	if tank.Pos.X != 200 {
		t.Errorf("tank x = %v, the inactive form should get no input", tank.Pos.X)
	}
}

func TestCheckForMapExit(t *testing.T) {
	r := New(Options{})
	m := buildMap(t, "a")
	enter(t, r, m)

	if exit, ok := r.CheckForMapExit(m, ControlSoldier); ok || exit.Dir != tile.DirNone {
		t.Errorf("CheckForMapExit() = %+v, %v, expected none", exit, ok)
	}

	r.Player(entity.Soldier).Pos = core.V(340, 192)
	exit, ok := r.CheckForMapExit(m, ControlSoldier)
	if !ok {
		t.Fatal("expected an exit")
	}
	if exit.Dest != "b" || exit.Dir != tile.DirRight {
		t.Errorf("exit = %+v, expected right to b", exit)
	}
}
