// Package mars is the platformer itself: it drives the entity world, walks
// the player between maps through the scroll transition and keeps score.
package mars

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mars-arcade/internal/config"
	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/entity"
	"github.com/vovakirdan/mars-arcade/internal/tile"
	"github.com/vovakirdan/mars-arcade/internal/transition"
	"github.com/vovakirdan/mars-arcade/internal/world"
)

// Score values.
const (
	killPoints  = 100
	visitPoints = 50
)

// Options configures a Game.
type Options struct {
	Config config.MarsConfig
	Maps   transition.MapSource
	Logger *log.Logger
	Cues   entity.CueSink
}

// hud receives the controlled form's hit points from the world.
type hud struct {
	hp int
}

func (h *hud) SetHitPoints(hp int) { h.hp = hp }

// Game implements the Mars platformer.
type Game struct {
	cfg    config.MarsConfig
	src    transition.MapSource
	logger *log.Logger

	world   *world.Registry
	scroll  *transition.Controller
	current *tile.Map
	control world.ControlState
	keys    core.EdgeTracker
	hud     hud

	tick       uint64
	visited    map[string]bool // maps reached through an exit, start map excluded
	paused     bool
	gameOver   bool
	deathTicks int
	blocked    tile.Exit // last exit whose transition was refused

	screenW int
	screenH int
	view    *core.Screen
}

// New creates a game. The start map must load and carry the configured start
// entrance.
func New(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("mars: %w", err)
	}
	if opts.Maps == nil {
		return nil, errors.New("mars: no map source")
	}
	gp := opts.Config.Gameplay
	m, err := opts.Maps.Load(gp.StartMap)
	if err != nil {
		return nil, fmt.Errorf("mars: start map: %w", err)
	}
	if _, err := m.Entrance(tile.Direction(gp.StartSide)); err != nil {
		return nil, fmt.Errorf("mars: start map %s: %w", m.ID, err)
	}

	g := &Game{
		cfg:    opts.Config,
		src:    opts.Maps,
		logger: opts.Logger,
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	soldier := g.cfg.FormSpec(entity.Soldier)
	tank := g.cfg.FormSpec(entity.Tank)
	tuning := g.cfg.Tuning()
	g.world = world.New(world.Options{
		Soldier:   &soldier,
		Tank:      &tank,
		Tuning:    &tuning,
		HitPoints: gp.HitPoints,
		Logger:    g.logger,
		Cues:      opts.Cues,
		HUD:       &g.hud,
	})
	g.scroll = transition.New(g.src, gp.TransitionFrames, g.logger)
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return "mars" }

// Title returns the display name.
func (g *Game) Title() string { return "Mars" }

// Reset starts a fresh run for a screen of the configured size.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	def := core.DefaultConfig()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	if g.screenW <= 0 || g.screenH <= 0 {
		g.screenW, g.screenH = def.ScreenW, def.ScreenH
	}
	g.view = core.NewScreen(g.screenW, g.viewHeight())
	g.tick = 0
	g.keys.Reset()
	g.newRun()
}

// Resize changes the screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	g.screenW, g.screenH = w, h
}

// newRun restores both forms and enters the start map.
func (g *Game) newRun() {
	g.scroll.Cancel()
	g.world.ResetPlayers()
	g.control = world.ControlSoldier
	g.visited = make(map[string]bool)
	g.paused = false
	g.gameOver = false
	g.deathTicks = 0
	g.blocked = tile.Exit{}
	g.hud.hp = g.cfg.Gameplay.HitPoints

	gp := g.cfg.Gameplay
	m, err := g.src.Load(gp.StartMap)
	if err != nil {
		g.logger.Error("start map unavailable", "map", gp.StartMap, "err", err)
		g.current = nil
		return
	}
	if err := g.world.EnterMap(m, tile.Direction(gp.StartSide)); err != nil {
		g.logger.Error("cannot enter start map", "err", err)
		g.current = nil
		return
	}
	g.current = m
	g.logger.Info("run started", "map", m.ID)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputState) core.StepResult {
	g.tick++
	pressed := g.keys.Update(in)

	if g.gameOver {
		if pressed.Has(core.ActionRestart) {
			g.newRun()
		}
		g.world.Idle(in)
		return g.result()
	}

	if pressed.Has(core.ActionPause) && !g.scroll.Active() {
		g.paused = !g.paused
	}
	if g.paused || g.current == nil {
		g.world.Idle(in)
		return g.result()
	}

	if g.scroll.Active() {
		g.world.Idle(in)
		g.stepTransition()
		return g.result()
	}

	g.control = g.world.Update(g.current, in, g.control)
	g.world.CheckCollisions(g.control)

	if g.world.Active(g.control).State.Gone() {
		g.deathTicks++
		if g.deathTicks >= g.cfg.Gameplay.DeathDelay {
			g.gameOver = true
			g.logger.Info("game over", "score", g.Score(), "map", g.current.ID)
		}
		return g.result()
	}

	g.checkExit()
	return g.result()
}

// checkExit starts a transition when the controlled form overlaps an exit.
// A refused exit is not retried until the form has left it.
func (g *Game) checkExit() {
	exit, ok := g.world.CheckForMapExit(g.current, g.control)
	if !ok {
		g.blocked = tile.Exit{}
		return
	}
	if exit == g.blocked {
		return
	}
	if err := g.scroll.Begin(exit); err != nil {
		g.blocked = exit
		return
	}
	g.blocked = tile.Exit{}
}

// stepTransition captures both views on the first tick, then scrolls until
// the arrival is committed.
func (g *Game) stepTransition() {
	if g.scroll.Phase() == transition.Previewing {
		arrival, ok := g.scroll.Pending()
		if !ok {
			return
		}
		from := core.NewScreen(g.screenW, g.viewHeight())
		g.drawWorld(from)
		to := core.NewScreen(g.screenW, g.viewHeight())
		g.drawPreview(to, arrival)
		g.scroll.Capture(from, to)
		return
	}

	arrival, done := g.scroll.Tick()
	if !done {
		return
	}
	if err := g.world.EnterMap(arrival.Map, arrival.Side); err != nil {
		g.logger.Error("arrival failed", "err", err)
		return
	}
	g.current = arrival.Map
	if arrival.Map.ID != g.cfg.Gameplay.StartMap {
		g.visited[arrival.Map.ID] = true
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Transitioning: g.scroll.Active()}
}

// Score returns kills and maps visited, weighted.
func (g *Game) Score() int {
	return g.world.Kills()*killPoints + len(g.visited)*visitPoints
}

// State returns the current game state summary.
func (g *Game) State() core.GameState {
	mapID := ""
	if g.current != nil {
		mapID = g.current.ID
	}
	return core.GameState{
		Score:     g.Score(),
		GameOver:  g.gameOver,
		Paused:    g.paused,
		MapID:     mapID,
		HitPoints: g.hud.hp,

		Kills:       g.world.Kills(),
		MapsVisited: len(g.visited),
	}
}

// Map returns the map being played, or nil if the start map failed to load.
func (g *Game) Map() *tile.Map { return g.current }

// Control returns the form receiving input.
func (g *Game) Control() world.ControlState { return g.control }

// World exposes the entity registry.
func (g *Game) World() *world.Registry { return g.world }

func (g *Game) viewHeight() int {
	return max(0, g.screenH-hudHeight)
}
