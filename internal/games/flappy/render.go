package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar      = '●'
	ColumnChar      = '█'
	CollectibleChar = '◆'
	FloorChar       = '▀'
	SkyChar         = ' '
)

// FloorThickness is the drawn floor strip in logical units.
const FloorThickness = 10

// viewport maps logical canvas units onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, canvasW, canvasH float64) viewport {
	return viewport{
		sx: float64(dst.Width()) / canvasW,
		sy: float64(dst.Height()) / canvasH,
	}
}

// cells converts a logical rectangle to a cell rectangle. Any visible
// rectangle covers at least one cell; rectangles with no area yield w or h 0.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	if r.W <= 0 || r.H <= 0 {
		return 0, 0, 0, 0
	}
	x = int(math.Floor(r.X * v.sx))
	y = int(math.Floor(r.Y * v.sy))
	w = max(int(math.Ceil(r.Right()*v.sx))-x, 1)
	h = max(int(math.Ceil(r.Bottom()*v.sy))-y, 1)
	return x, y, w, h
}

func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x, y, w, h := v.cells(r)
	dst.DrawRect(x, y, w, h, ch, c)
}

// Render draws the current game state to the screen.
// Draw order: background, player, floor, columns, collectibles, score.
func (g *Game) Render(dst *core.Screen) {
	dst.Fill(SkyChar, core.ColorDefault)
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	canvas := g.cfg.Canvas
	v := newViewport(dst, canvas.Width, canvas.Height)

	v.fill(dst, g.player.Rect(), PlayerChar, core.ColorYellow)

	floor := core.NewRect(0, canvas.Height-FloorThickness, canvas.Width, FloorThickness)
	v.fill(dst, floor, FloorChar, core.ColorGray)

	if g.world != nil {
		for _, o := range g.world.Obstacles() {
			v.fill(dst, o.Rect(), ColumnChar, core.ColorGreen)
		}
		for _, c := range g.world.Collectibles() {
			v.fill(dst, c.Rect(), CollectibleChar, core.ColorBrightMagenta)
		}
	}

	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", g.player.Score), core.ColorWhite)

	if !g.player.Alive {
		drawCenteredMessage(dst, g.Summary(), "Press Enter to play again")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorRed)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
