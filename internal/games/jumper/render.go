package jumper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '●'
	NormalChar    = '▀'
	BreakableChar = '░'
)

// platformStyle returns the glyph and color used for a platform variant.
func platformStyle(k Kind) (rune, core.Color) {
	switch k {
	case KindBreakable:
		return BreakableChar, core.ColorOrange
	default:
		return NormalChar, core.ColorGreen
	}
}

// Render draws the current game state to the screen, scaling the fixed-size
// world onto however many cells the screen has.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	sx := float64(dst.Width()) / g.cfg.World.Width
	sy := float64(dst.Height()) / g.cfg.World.Height

	for _, pl := range g.session.Platforms() {
		glyph, color := platformStyle(pl.Kind)
		dst.DrawRect(pl.Bounds().Scale(sx, sy), glyph, color)
	}

	p := g.session.Player()
	drawEllipse(dst, p.Bounds().Scale(sx, sy), PlayerChar, core.ColorBrightGreen)

	// Draw HUD
	scoreText := fmt.Sprintf(" Score: %d ", g.session.Score())
	dst.DrawTextColored(2, 0, scoreText, core.ColorBrightYellow)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.session.Phase() == PhaseGameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  R restart  B scores  Q quit", g.session.Score()))
	}
}

// drawEllipse fills the cells of r whose centers fall inside the ellipse
// inscribed in r. Boxes two cells or smaller on an axis are filled whole.
func drawEllipse(dst *core.Screen, r core.Rect, ch rune, color core.Color) {
	if r.W <= 2 || r.H <= 2 {
		dst.DrawRect(r, ch, color)
		return
	}

	rx := float64(r.W) / 2
	ry := float64(r.H) / 2
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			dx := (float64(x) + 0.5 - rx) / rx
			dy := (float64(y) + 0.5 - ry) / ry
			if math.Hypot(dx, dy) <= 1 {
				dst.SetColored(r.X+x, r.Y+y, ch, color)
			}
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}
