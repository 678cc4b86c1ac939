package gigili

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/gigili/internal/core"
	"github.com/vovakirdan/gigili/internal/games/gigili/core"
)

const (
	cellW        = 2 // Terminal columns per maze tile
	hudHeight    = 2 // Status line and separator
	footerHeight = 1 // Controls hint
)

// Enemy colors cycle by spawn index.
var enemyColors = [...]platformcore.Color{
	platformcore.ColorRed,
	platformcore.ColorMagenta,
	platformcore.ColorCyan,
	platformcore.ColorOrange,
}

var itemGlyphs = map[core.ItemType]struct {
	r rune
	c platformcore.Color
}{
	core.ItemPill:    {'·', platformcore.ColorGray},
	core.ItemBandaid: {'+', platformcore.ColorWhite},
	core.ItemSyringe: {'!', platformcore.ColorYellow},
	core.ItemVaccine: {'*', platformcore.ColorGreen},
}

const controlsHint = " ←↑↓→/WASD: Move │ P: Pause │ R: Restart │ B: Menu │ Q: Quit"

// Render draws HUD, board, entities and any overlay.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if g.tooSmall {
		w, h := g.MinSize()
		g.renderOverlay(dst, platformcore.ColorYellow,
			"Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()))
		return
	}

	g.renderHUD(dst)
	ox, oy := g.boardOrigin(dst)
	g.renderMaze(dst, ox, oy)
	g.renderItems(dst, ox, oy)
	g.renderEntities(dst, ox, oy)
	dst.DrawTextColored(0, dst.Height()-1, controlsHint, platformcore.ColorGray)

	name := g.session.PlayerName()
	score := g.session.Score()
	switch g.session.Status() {
	case core.StatusVictory:
		g.renderOverlay(dst, platformcore.ColorGreen,
			"ALL CLEAR!",
			fmt.Sprintf("%s scored %d", name, score),
			"R: play again   B: menu")
	case core.StatusGameOver:
		g.renderOverlay(dst, platformcore.ColorRed,
			"CAUGHT!",
			fmt.Sprintf("%s scored %d", name, score),
			"R: play again   B: menu")
	default:
		if g.paused {
			g.renderOverlay(dst, platformcore.ColorYellow, "PAUSED", "P to resume")
		}
	}
}

// boardOrigin centers the board in the area between HUD and footer.
func (g *Game) boardOrigin(dst *platformcore.Screen) (int, int) {
	m := g.level.Maze
	area := platformcore.CenteredRect(dst.Width(), dst.Height()-hudHeight-footerHeight, m.W*cellW, m.H)
	return area.X, area.Y + hudHeight
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	s := g.session
	mode := strings.ToUpper(s.Mode().String())
	hud := fmt.Sprintf(" %s │ %s │ Score: %d │ Items: %d/%d │ %s",
		g.Title(), s.PlayerName(), s.Score(), len(s.RemainingItems()), s.TotalItems(), mode)
	dst.DrawTextColored(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', platformcore.ColorGray)
	}
}

func (g *Game) renderMaze(dst *platformcore.Screen, ox, oy int) {
	m := g.level.Maze
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.TileIsWall(core.T(x, y)) {
				dst.SetColored(ox+x*cellW, oy+y, '█', platformcore.ColorBlue)
				dst.SetColored(ox+x*cellW+1, oy+y, '█', platformcore.ColorBlue)
			}
		}
	}
}

func (g *Game) renderItems(dst *platformcore.Screen, ox, oy int) {
	for _, it := range g.session.RemainingItems() {
		glyph := itemGlyphs[it.Type]
		dst.SetColored(ox+it.Tile.X*cellW, oy+it.Tile.Y, glyph.r, glyph.c)
	}
}

// renderEntities draws enemies, then the player on top.
func (g *Game) renderEntities(dst *platformcore.Screen, ox, oy int) {
	for _, e := range g.session.Enemies() {
		t := e.Pos.Tile()
		dst.SetColored(ox+t.X*cellW, oy+t.Y, 'M', enemyColors[e.Index%len(enemyColors)])
	}
	t := g.session.PlayerPosition().Tile()
	dst.SetColored(ox+t.X*cellW, oy+t.Y, '@', platformcore.ColorYellow)
}

// renderOverlay draws a boxed message centered on the screen.
func (g *Game) renderOverlay(dst *platformcore.Screen, c platformcore.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := platformcore.CenteredRect(dst.Width(), dst.Height(), width+4, len(lines)+2)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, l := range lines {
		lc := platformcore.ColorWhite
		if i == 0 {
			lc = c
		}
		dst.DrawTextCentered(box.Y+1+i, l, lc)
	}
}
