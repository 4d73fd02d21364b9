package match3

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

const (
	cellWidth = 3  // Glyph plus a marker on each side
	hudWidth  = 18 // Side panel next to the board
	hudGap    = 2

	flatGlyph  = '●'
	powerGlyph = '★'
	flashGlyph = '✖'
)

// tileColors maps tile colours to terminal colours. Dark shades share the
// nearest terminal colour.
var tileColors = map[board.Color]core.Color{
	board.Beige:      core.ColorBeige,
	board.DarkPink:   core.ColorMagenta,
	board.DarkBeige:  core.ColorBrown,
	board.Pink:       core.ColorPink,
	board.DarkGreen:  core.ColorGreen,
	board.Red:        core.ColorBrightRed,
	board.Green:      core.ColorBrightGreen,
	board.DarkRed:    core.ColorRed,
	board.LightGreen: core.ColorBrightGreen,
	board.Brown:      core.ColorBrown,
	board.Blue:       core.ColorBrightBlue,
	board.Orange:     core.ColorOrange,
	board.DarkBlue:   core.ColorBlue,
	board.LightGrey:  core.ColorWhite,
	board.DarkPurple: core.ColorMagenta,
	board.Grey:       core.ColorGray,
	board.Purple:     core.ColorPurple,
	board.DarkGrey:   core.ColorDarkGray,
}

// titlePalette cycles through the letters of the title.
var titlePalette = []core.Color{
	core.ColorBeige, core.ColorPink, core.ColorPurple,
	core.ColorBrightGreen, core.ColorBrightBlue, core.ColorOrange,
}

// fadeShades goes from light to full coverage.
var fadeShades = []rune{'░', '▒', '▓', '█'}

// TileColor returns the terminal colour for a tile colour.
func TileColor(c board.Color) core.Color {
	if tc, ok := tileColors[c]; ok {
		return tc
	}
	return core.ColorDefault
}

// minScreenSize returns the smallest screen that fits the board, its frame
// and the HUD.
func minScreenSize(cols, rows int) (int, int) {
	return cols*cellWidth + 2 + hudGap + hudWidth, rows + 4
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	s := g.session
	switch s.Phase() {
	case PhaseTitle:
		g.renderTitle(dst)
	case PhaseLevelTransition:
		g.renderBoard(dst, s.Board(), false)
		g.renderHUD(dst)
		g.renderFade(dst, s.Fade())
		g.renderLabel(dst)
	case PhasePlay:
		g.renderBoard(dst, s.Board(), true)
		g.renderHUD(dst)
	case PhaseGameOver:
		g.renderGameOver(dst)
	case PhaseExit:
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := minScreenSize(g.cfg.Board.Width, g.cfg.Board.Height)
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
}

// boardOrigin returns the top-left corner of the board frame.
func (g *Game) boardOrigin() (int, int) {
	minW, _ := minScreenSize(g.cfg.Board.Width, g.cfg.Board.Height)
	x := (g.screenW - minW) / 2
	y := (g.screenH - (g.cfg.Board.Height + 2)) / 2
	return max(x, 0), max(y, 1)
}

// renderBoard draws the frame and every tile at its animated position.
// Tiles still above the top row are clipped.
func (g *Game) renderBoard(dst *core.Screen, b *board.Board, markers bool) {
	if b == nil {
		return
	}
	ox, oy := g.boardOrigin()
	frame := core.NewRect(ox, oy, b.Width()*cellWidth+2, b.Height()+2)
	dst.DrawBoxColored(frame, core.ColorGray)

	flashing := make(map[*board.Tile]bool)
	if markers {
		for _, t := range g.session.Flashing() {
			flashing[t] = true
		}
	}

	inner := frame.Inset(1)
	for _, t := range b.Tiles() {
		x := inner.X + int(math.Round(t.X*cellWidth)) + 1
		y := inner.Y + int(math.Round(t.Y))
		if !inner.Contains(x, y) {
			continue
		}

		glyph := flatGlyph
		if t.IsPower() {
			glyph = powerGlyph
		}
		color := TileColor(t.Color)
		if flashing[t] {
			glyph, color = flashGlyph, core.ColorBrightWhite
		}
		dst.SetColored(x, y, glyph, color)
	}

	if markers {
		g.renderMarkers(dst, ox, oy)
	}
}

// renderMarkers brackets the hint pair, the cursor and the selection.
// Later markers overwrite earlier ones.
func (g *Game) renderMarkers(dst *core.Screen, ox, oy int) {
	s := g.session
	mark := func(p board.Position, left, right rune, c core.Color) {
		x := ox + 1 + p.Col*cellWidth
		y := oy + 1 + p.Row
		dst.SetColored(x, y, left, c)
		dst.SetColored(x+cellWidth-1, y, right, c)
	}

	if h, ok := s.Hint(); ok {
		mark(h.A, '*', '*', core.ColorBrightYellow)
		mark(h.B, '*', '*', core.ColorBrightYellow)
	}
	mark(s.Cursor(), '[', ']', core.ColorBrightWhite)
	if sel := s.Selection(); sel != nil {
		mark(sel.Position(), '<', '>', core.ColorBrightCyan)
	}
}

// renderHUD draws level, score, goal and the countdown next to the board.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	ox, oy := g.boardOrigin()
	x := ox + g.cfg.Board.Width*cellWidth + 2 + hudGap

	dst.DrawTextColored(x, oy, "MATCH-3", core.ColorBrightWhite)
	dst.DrawText(x, oy+2, fmt.Sprintf("Level %d", s.Level()))
	dst.DrawText(x, oy+3, fmt.Sprintf("Score %d", s.Score()))
	if s.Phase() != PhasePlay {
		return
	}
	dst.DrawText(x, oy+4, fmt.Sprintf("Goal  %d", s.Goal()))

	timeColor := core.ColorDefault
	if s.LowTime() {
		timeColor = core.ColorBrightRed
	}
	dst.DrawTextColored(x, oy+5, fmt.Sprintf("Time  %ds", s.TimeRemaining()), timeColor)
	g.renderTimeBar(dst, x, oy+6, hudWidth-2, timeColor)

	help := []string{"arrows move", "enter select", "t hint", "q quit"}
	for i, line := range help {
		dst.DrawTextColored(x, oy+8+i, line, core.ColorGray)
	}
}

func (g *Game) renderTimeBar(dst *core.Screen, x, y, width int, c core.Color) {
	s := g.session
	if s.MaxTime() <= 0 {
		return
	}
	filled := s.TimeRemaining() * width / s.MaxTime()
	for i := range width {
		r := '░'
		if i < filled {
			r = '█'
		}
		dst.SetColored(x+i, y, r, c)
	}
}

// renderTitle draws the cycling title letters, the demo board and the menu.
func (g *Game) renderTitle(dst *core.Screen) {
	s := g.session
	g.renderBoard(dst, s.Board(), false)

	_, oy := g.boardOrigin()
	title := "MATCH3"
	tx := (g.screenW - len(title)*2) / 2
	for i, r := range title {
		c := titlePalette[(i+s.TitleColorShift())%len(titlePalette)]
		dst.SetColored(tx+i*2, oy-1, r, c)
	}

	menuY := oy + g.cfg.Board.Height + 2
	for i, item := range []string{"Start", "Quit"} {
		text := "  " + item + "  "
		c := core.ColorGray
		if i == s.MenuIndex() {
			text = "> " + item + " <"
			c = core.ColorBrightWhite
		}
		dst.DrawTextCenteredColored(menuY+i, text, c)
	}

	g.renderFade(dst, s.Fade())
}

// renderFade covers the screen with a shade proportional to alpha.
func (g *Game) renderFade(dst *core.Screen, alpha float64) {
	if alpha <= 0 {
		return
	}
	i := int(math.Ceil(alpha*float64(len(fadeShades)))) - 1
	i = core.Clamp(i, 0, len(fadeShades)-1)
	dst.FillCell(core.Cell{Rune: fadeShades[i], Color: core.ColorBrightWhite})
}

// renderLabel draws the "Level N" label at its animated position.
func (g *Game) renderLabel(dst *core.Screen) {
	lx, ly := g.session.Label()
	text := fmt.Sprintf(" Level %d ", g.session.Level())
	x := int(lx*float64(g.screenW)) - core.TextWidth(text)/2
	y := int(ly * float64(g.screenH))
	if y < 0 || y >= g.screenH {
		return
	}
	dst.DrawTextColored(x, y, text, core.ColorBrightYellow)
}

// renderGameOver draws the final level and score in a box.
func (g *Game) renderGameOver(dst *core.Screen) {
	s := g.session
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Level %d", s.Level()),
		fmt.Sprintf("Score %d", s.Score()),
		"",
		"enter: title",
	}
	w, h := 24, len(lines)+2
	box := core.NewRect((g.screenW-w)/2, (g.screenH-h)/2, w, h)
	dst.DrawBoxColored(box, core.ColorBrightRed)
	inner := box.Inset(1)
	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorBrightRed
		}
		dst.DrawTextCenteredColored(inner.Y+i, line, c)
	}
}
