package tui

import (
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/storage"
)

// stubGame ends the run once it has stepped overAt times.
type stubGame struct {
	steps  int
	overAt int
	paused bool
	last   core.InputState
	w, h   int
}

func (g *stubGame) ID() string { return "stub" }

func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.steps = 0
	g.w, g.h = cfg.ScreenW, cfg.ScreenH
}

func (g *stubGame) Resize(w, h int) { g.w, g.h = w, h }

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }

func (g *stubGame) Step(in core.InputState) core.StepResult {
	g.steps++
	g.last = in
	return core.StepResult{State: g.State()}
}

func (g *stubGame) State() core.GameState {
	return core.GameState{
		Score:       g.steps * 10,
		GameOver:    g.overAt > 0 && g.steps >= g.overAt,
		Paused:      g.paused,
		MapID:       "landing",
		Kills:       1,
		MapsVisited: 2,
	}
}

func newTestModel(t *testing.T, g *stubGame) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := NewModel(g, store, cfg, "ada", log.New(io.Discard))
	m.Init()
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

func TestModelSavesRunOnce(t *testing.T) {
	g := &stubGame{overAt: 3}
	m, store := newTestModel(t, g)

	for range 6 {
		m = update(t, m, TickMsg{Loop: m.loop})
	}

	runs, err := store.AllRuns()
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("AllRuns() = %d runs, expected 1", len(runs))
	}
	r := runs[0]
	if r.Player != "ada" || r.Score != 30 || r.Kills != 1 || r.MapsVisited != 2 || r.MapID != "landing" {
		t.Errorf("saved run = %+v", r)
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)

	m = update(t, m, TickMsg{Loop: m.loop + 1})
	if g.steps != 0 {
		t.Errorf("a tick of another loop stepped the game %d times", g.steps)
	}
	m = update(t, m, TickMsg{Loop: m.loop})
	if g.steps != 1 {
		t.Errorf("steps = %d, expected 1", g.steps)
	}
}

func TestModelKeysHoldActions(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = update(t, m, TickMsg{Loop: m.loop})
	if !g.last.Has(core.ActionRight) || !g.last.Has(core.ActionFire) {
		t.Errorf("Step() got %v, expected Right and Fire", g.last.Actions())
	}

	// Still held on the next tick without a new key message.
	m = update(t, m, TickMsg{Loop: m.loop})
	if !g.last.Has(core.ActionRight) {
		t.Error("Right should stay held between key repeats")
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m = update(t, m, TickMsg{Loop: m.loop})
	m = update(t, m, esc)
	if m.BackToMenu() {
		t.Error("Esc during play should not leave the game")
	}

	g.paused = true
	m = update(t, m, TickMsg{Loop: m.loop})
	m = update(t, m, esc)
	if !m.BackToMenu() {
		t.Error("Esc while paused should go back to the menu")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(t, g)
	m = update(t, m, TickMsg{Loop: m.loop})

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.steps != 1 {
		t.Errorf("resize restarted the run, steps = %d", g.steps)
	}
	if g.w != 120 || g.h >= 40 || g.h != m.screen.Height() {
		t.Errorf("game sized %dx%d, screen %dx%d", g.w, g.h, m.screen.Width(), m.screen.Height())
	}
}
