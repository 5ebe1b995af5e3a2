package defender

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/type-defender/internal/core"
	"github.com/vovakirdan/type-defender/internal/games/defender/sim"
)

const (
	hudHeight    = 2 // HUD line plus separator
	footerHeight = 1
	minScreenW   = 40
	minScreenH   = 12
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderHUD(dst)

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-footerHeight)
	vp := core.Viewport{FieldW: g.state.Field.Width, FieldH: g.state.Field.Height, Area: area}

	groundRow := vp.CellY(g.state.Field.GroundY())
	for y := groundRow; y < area.Bottom(); y++ {
		dst.DrawHLine(area.X, y, area.W, '░', core.ColorGreen)
	}

	g.renderStructures(dst, vp, groundRow)
	dst.SetColor(vp.CellX(g.state.Field.LaunchPoint().X), groundRow-1, '▲', core.ColorBrightYellow)
	g.renderTrajectories(dst, vp, area)
	g.renderWords(dst, vp, area)
	g.renderProjectiles(dst, vp, area)
	g.renderParticles(dst, vp, area)
	g.renderFooter(dst)

	// Draw overlays
	switch {
	case g.state.GameOver:
		g.renderOverlay(dst,
			"GAME OVER",
			fmt.Sprintf("Final Score: %d  Accuracy: %.0f%%", g.state.Score, g.state.Accuracy),
			"Press R to restart or Q to quit",
		)
	case g.state.Paused:
		g.renderOverlay(dst, "Paused", "Press Esc to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.state
	hud := fmt.Sprintf(" Typing Defender | Score: %d  Level: %d/%d  Lives: %d  Accuracy: %.0f%%",
		s.Score, s.Level, g.catalog.Len(), max(0, s.Lives), s.Accuracy)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderFooter shows which keys the current level teaches.
func (g *Game) renderFooter(dst *core.Screen) {
	lvl := g.Level()
	keys := make([]string, len(lvl.Keys))
	for i, k := range lvl.Keys {
		keys[i] = strings.ToUpper(string(k))
	}
	line := fmt.Sprintf(" Level %d: %s  [%s]", lvl.Number, lvl.Description, strings.Join(keys, " "))
	dst.DrawTextColor(0, dst.Height()-1, line, core.ColorCyan)
}

func structureColor(st sim.Structure) core.Color {
	switch {
	case st.Health >= st.MaxHealth:
		return core.ColorBlue
	case st.Health*2 > st.MaxHealth:
		return core.ColorBrightRed
	default:
		return core.ColorDarkRed
	}
}

func (g *Game) renderStructures(dst *core.Screen, vp core.Viewport, groundRow int) {
	for _, st := range g.state.Structures {
		x := vp.CellX(st.Pos.X)
		w := vp.CellW(st.Width)

		if st.Destroyed {
			dst.DrawHLine(x, groundRow-1, w, '▁', core.ColorGray)
			continue
		}

		h := vp.CellH(st.Height)
		top := groundRow - h
		color := structureColor(st)
		dst.DrawBox(core.NewRect(x, top, w, h), color)

		label := st.Name
		if len([]rune(label)) > w {
			label = string([]rune(label)[:w])
		}
		dst.DrawTextColor(x+(w-len([]rune(label)))/2, top-1, label, core.ColorWhite)

		if h >= 3 && w >= 3 {
			pips := strings.Repeat("♥", st.Health)
			dst.DrawTextColor(x+(w-st.Health)/2, top+1, pips, color)
		}
	}
}

func (g *Game) renderWords(dst *core.Screen, vp core.Viewport, area core.Rect) {
	for _, w := range g.state.Words {
		y := vp.CellY(w.Pos.Y)
		if y < area.Y || y >= area.Bottom() {
			continue
		}
		x := vp.CellX(w.Pos.X)
		for i, r := range w.Letters() {
			color := core.ColorWhite
			switch {
			case i < w.Next:
				color = core.ColorBrightGreen
			case i == w.Next:
				color = core.ColorBrightYellow
			}
			dst.SetColor(x+i, y, r, color)
		}
	}
}

// renderTrajectories draws a dashed line from each word to the roof of its target.
func (g *Game) renderTrajectories(dst *core.Screen, vp core.Viewport, area core.Rect) {
	for _, w := range g.state.Words {
		if !w.Active || w.Target < 0 || w.Target >= len(g.state.Structures) {
			continue
		}
		st := g.state.Structures[w.Target]
		roof := sim.Vec{X: st.Pos.X + st.Width/2, Y: st.Pos.Y - st.Height}
		plotLine(dst, vp, area, w.Pos, roof, 2, '·', core.ColorGray)
	}
}

func (g *Game) renderProjectiles(dst *core.Screen, vp core.Viewport, area core.Rect) {
	for _, p := range g.state.Projectiles {
		plotLine(dst, vp, area, p.Origin, p.Pos, 1, '·', core.ColorOrange)
		x, y := vp.CellX(p.Pos.X), vp.CellY(p.Pos.Y)
		if area.Contains(x, y) {
			dst.SetColor(x, y, '•', core.ColorBrightRed)
		}
	}
}

func (g *Game) renderParticles(dst *core.Screen, vp core.Viewport, area core.Rect) {
	for _, p := range g.state.Particles {
		x, y := vp.CellX(p.Pos.X), vp.CellY(p.Pos.Y)
		if !area.Contains(x, y) {
			continue
		}
		glyph := '.'
		switch {
		case p.Life*3 > p.MaxLife*2:
			glyph = '*'
		case p.Life*3 > p.MaxLife:
			glyph = '+'
		}
		dst.SetColor(x, y, glyph, core.HueColor(p.Hue))
	}
}

// plotLine marks every dash-th cell between a and b, leaving drawn cells alone.
func plotLine(dst *core.Screen, vp core.Viewport, area core.Rect, a, b sim.Vec, dash int, r rune, c core.Color) {
	x0, y0 := vp.CellX(a.X), vp.CellY(a.Y)
	x1, y1 := vp.CellX(b.X), vp.CellY(b.Y)
	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		return
	}

	for i := 0; i <= steps; i += dash {
		p := sim.Lerp(a, b, float64(i)/float64(steps))
		x, y := vp.CellX(p.X), vp.CellY(p.Y)
		if area.Contains(x, y) && dst.GetCell(x, y).Rune == ' ' {
			dst.SetColor(x, y, r, c)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// renderOverlay draws a centered box with one line of text per row pair.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines)*2 + 1
	cx, cy := core.NewRect(0, 0, dst.Width(), dst.Height()).Center()
	boxX := cx - boxW/2
	boxY := cy - boxH/2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorCyan)

	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCentered(boxY+1+i*2, l, color)
	}
}
