package mars

import (
	"fmt"
	"math"

	"github.com/vovakirdan/mars-arcade/internal/core"
	"github.com/vovakirdan/mars-arcade/internal/entity"
	"github.com/vovakirdan/mars-arcade/internal/tile"
	"github.com/vovakirdan/mars-arcade/internal/transition"
	"github.com/vovakirdan/mars-arcade/internal/world"
)

// One screen cell covers cellW×cellH world pixels, so a 32px tile is two
// columns wide and one row tall.
const (
	cellW     = 16
	cellH     = 32
	hudHeight = 2
)

type glyph struct {
	r rune
	c core.Color
}

var tileGlyphs = map[tile.Kind]glyph{
	tile.Rock:       {'█', core.ColorRust},
	tile.Platform:   {'▀', core.ColorDust},
	tile.SpikeSmall: {'^', core.ColorGray},
	tile.SpikeLarge: {'▲', core.ColorOrange},
}

var effectFrames = map[string]string{
	"pellet_burst": "*+·",
	"explosion":    "✶*oO*·",
	"tank_jump":    "~≈~",
}

// camera is the world position of the view's top-left corner.
type camera struct {
	X, Y float64
}

// cameraFor centres the view on focus, clamped so it never shows past the map
// edges. Maps smaller than the view are centred instead.
func cameraFor(m *tile.Map, focus core.Vec, cols, rows int) camera {
	return camera{
		X: snap(axis(focus.X, float64(cols*cellW), m.PixelWidth()), cellW),
		Y: snap(axis(focus.Y, float64(rows*cellH), m.PixelHeight()), cellH),
	}
}

func axis(focus, view, size float64) float64 {
	if view >= size {
		return -(view - size) / 2
	}
	return core.ClampF(focus-view/2, 0, size-view)
}

func snap(v, step float64) float64 {
	return math.Floor(v/step) * step
}

// cell converts a world position to screen coordinates.
func (c camera) cell(p core.Vec) (int, int) {
	return int(math.Floor((p.X - c.X) / cellW)), int(math.Floor((p.Y - c.Y) / cellH))
}

func (c camera) draw(dst *core.Screen, p core.Vec, color core.Color, lines ...string) {
	x, y := c.cell(p)
	for i, line := range lines {
		dst.DrawTextColored(x, y+i, line, color)
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.view == nil {
		g.view = core.NewScreen(dst.Width(), max(0, dst.Height()-hudHeight))
	}
	g.view.Resize(dst.Width(), max(0, dst.Height()-hudHeight))
	g.view.Clear()

	switch {
	case g.scroll.Phase() == transition.Scrolling:
		g.scroll.Compose(g.view)
	case g.current != nil:
		g.drawWorld(g.view)
	}
	dst.Blit(g.view, 0, hudHeight)

	switch {
	case g.current == nil:
		renderOverlay(dst, "No map loaded", "Check the maps directory")
	case g.gameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  Press R to restart", g.Score()))
	case g.paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status bar: form, hearts, map name and score.
func (g *Game) renderHUD(dst *core.Screen) {
	active := g.world.Active(g.control)
	x := 0
	put := func(s string, c core.Color) {
		dst.DrawTextColored(x, 0, s, c)
		x += len([]rune(s))
	}

	put(" MARS  ", core.ColorBrightWhite)
	put(formTitle(g.control)+"  ", core.ColorBrightCyan)
	for i := range active.MaxHP {
		if i < g.hud.hp {
			put("♥", core.ColorBrightRed)
		} else {
			put("♡", core.ColorGray)
		}
	}
	if g.current != nil {
		put("  "+g.current.Name, core.ColorDust)
	}
	put(fmt.Sprintf("  Score: %d", g.Score()), core.ColorBrightYellow)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

func formTitle(cs world.ControlState) string {
	if cs == world.ControlTank {
		return "Tank"
	}
	return "Soldier"
}

// drawWorld draws the current map and every live entity around the
// controlled form.
func (g *Game) drawWorld(dst *core.Screen) {
	cam := cameraFor(g.current, g.focus(), dst.Width(), dst.Height())
	drawTiles(dst, g.current, cam)

	for _, d := range g.world.Doodads() {
		cam.draw(dst, d.Pos, core.ColorBrightRed, "♥")
	}
	for _, e := range g.world.Enemies() {
		s, c := enemySprite(e)
		cam.draw(dst, e.Pos, c, s)
	}

	tank := g.world.Player(entity.Tank)
	drawPlayer(dst, cam, tank, tank.Pos)
	if !g.world.Boarded() {
		soldier := g.world.Player(entity.Soldier)
		drawPlayer(dst, cam, soldier, soldier.Pos)
	}

	for _, s := range g.world.PlayerProjectiles() {
		cam.draw(dst, s.Box().Center(), core.ColorBrightYellow, "•")
	}
	for _, s := range g.world.EnemyProjectiles() {
		cam.draw(dst, s.Box().Center(), core.ColorGreen, "o")
	}
	for _, fx := range g.world.Effects() {
		frames := []rune(effectFrames[fx.Name])
		if len(frames) == 0 {
			continue
		}
		r := frames[fx.Anim.Frame%len(frames)]
		cam.draw(dst, fx.Box().Center(), core.ColorOrange, string(r))
	}
}

// drawPreview draws the destination map with the controlled form standing in
// its entrance.
func (g *Game) drawPreview(dst *core.Screen, a transition.Arrival) {
	active := g.world.Active(g.control)
	pos := core.V(a.Entrance.Bounds.X, a.Entrance.Bounds.Bottom()-active.H)
	box := core.NewRectF(pos, active.W, active.H)

	cam := cameraFor(a.Map, box.Center(), dst.Width(), dst.Height())
	drawTiles(dst, a.Map, cam)
	drawPlayer(dst, cam, active, pos)
}

func (g *Game) focus() core.Vec {
	return g.world.Active(g.control).Box().Center()
}

func drawTiles(dst *core.Screen, m *tile.Map, cam camera) {
	ts := m.TileSize()
	for row := range dst.Height() {
		for col := range dst.Width() {
			wx := cam.X + float64(col*cellW) + cellW/2
			wy := cam.Y + float64(row*cellH) + cellH/2
			if wx < 0 || wy < 0 || wx >= m.PixelWidth() || wy >= m.PixelHeight() {
				continue
			}
			gl, ok := tileGlyphs[m.KindAt(int(wx/ts), int(wy/ts))]
			if ok {
				dst.SetColored(col, row, gl.r, gl.c)
			}
		}
	}
}

func drawPlayer(dst *core.Screen, cam camera, p *entity.Player, pos core.Vec) {
	if p.Blink {
		return
	}
	color := core.ColorBrightCyan
	if p.State == entity.Damaged {
		color = core.ColorBrightRed
	}
	if p.Kind() == entity.Tank {
		if color == core.ColorBrightCyan {
			color = core.ColorYellow
		}
		cam.draw(dst, pos, color, tankSprite(p)...)
		return
	}
	cam.draw(dst, pos, color, soldierSprite(p))
}

func facing(p *entity.Player, right, left string) string {
	if p.Facing == entity.FacingLeft {
		return left
	}
	return right
}

func soldierSprite(p *entity.Player) string {
	if p.State.Gone() {
		return "xx"
	}
	switch p.AnimState() {
	case entity.FiringUp:
		return facing(p, "o^", "^o")
	case entity.FiringDown:
		return facing(p, "ov", "vo")
	case entity.Crouching:
		return facing(p, "o_", "_o")
	case entity.Dashing:
		return facing(p, "o»", "«o")
	}
	return facing(p, "o>", "<o")
}

func tankSprite(p *entity.Player) []string {
	if p.State.Gone() {
		return []string{"[xx]", "(..)"}
	}
	top := facing(p, "[■]═", "═[■]")
	switch p.AnimState() {
	case entity.FiringUp, entity.BarrelUp, entity.RotateBarrelUp:
		top = facing(p, "[■]║", "║[■]")
	}
	bottom := "(oo)"
	switch {
	case p.State == entity.JumpWindup:
		bottom = "(==)"
	case p.State == entity.Walking && p.Anim.Frame%2 == 1:
		bottom = "(OO)"
	}
	return []string{top, bottom}
}

func enemySprite(e *entity.Enemy) (string, core.Color) {
	if e.State.Gone() {
		return "**", core.ColorOrange
	}
	switch e.Name {
	case "turret":
		if e.Facing == entity.FacingLeft {
			return "<]", core.ColorMagenta
		}
		return "[>", core.ColorMagenta
	default:
		if e.Anim.Frame%2 == 1 {
			return "MM", core.ColorGreen
		}
		return "mm", core.ColorGreen
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorGray)
}
