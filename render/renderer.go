// Package render draws engine frames to a tcell screen
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bubble-slicer/constants"
	"github.com/lixenwraith/bubble-slicer/engine"
)

const (
	runeFill   = '█'
	runeRim    = '▓'
	runeSliced = '░'
	runeSpike  = '*'
)

// TerminalRenderer handles all terminal rendering
// It draws only what it is handed and holds no game state
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(frame engine.Frame, muted bool) {
	r.width, r.height = r.screen.Size()
	bgStyle := tcell.StyleDefault.Background(RgbBackground.Color())
	r.screen.Fill(' ', bgStyle)

	// Sliced bubbles first so live ones stay visible on overlap
	for _, b := range frame.Bubbles {
		if b.Sliced {
			r.drawBubble(b)
		}
	}
	for _, b := range frame.Bubbles {
		if !b.Sliced {
			r.drawBubble(b)
		}
	}

	r.drawHUD(frame, muted)

	switch {
	case frame.Stats.GameOver:
		r.drawGameOver(frame.Stats.Score)
	case frame.Stats.Paused:
		r.drawCentered(r.playfieldMidRow(), constants.PausedTitle,
			tcell.StyleDefault.Foreground(RgbPaused.Color()).Background(RgbBackground.Color()).Bold(true))
	}

	r.screen.Show()
}

// drawBubble rasterizes a circle into cells whose centre lies inside the scaled radius
func (r *TerminalRenderer) drawBubble(b engine.BubbleView) {
	radius := b.Radius * b.Scale
	fill, rim := bubbleColors(b.Poison, b.Sliced, b.Opacity)
	bg := RgbBackground.Color()
	fillStyle := tcell.StyleDefault.Foreground(fill.Color()).Background(bg)
	rimStyle := tcell.StyleDefault.Foreground(rim.Color()).Background(bg)

	// Centre cell always drawn so bubbles smaller than a cell stay visible
	ccx, ccy := PixelToCell(b.X, b.Y)
	if b.Sliced {
		r.set(ccx, ccy, runeSliced, fillStyle)
	} else {
		r.set(ccx, ccy, runeFill, fillStyle)
	}

	x0, y0 := PixelToCell(b.X-radius, b.Y-radius)
	x1, y1 := PixelToCell(b.X+radius, b.Y+radius)
	for cy := max(y0, constants.HUDRows); cy <= min(y1, r.height-1); cy++ {
		for cx := max(x0, 0); cx <= min(x1, r.width-1); cx++ {
			px, py, _ := CellToPixel(cx, cy)
			d := math.Hypot(px-b.X, py-b.Y)
			switch {
			case d >= radius:
				continue
			case b.Sliced:
				r.set(cx, cy, runeSliced, fillStyle)
			case d > radius-constants.CellWidthPx:
				r.set(cx, cy, runeRim, rimStyle)
			default:
				r.set(cx, cy, runeFill, fillStyle)
			}
		}
	}

	if b.Poison && !b.Sliced {
		r.drawSpikes(b.X, b.Y, radius)
	}
}

// drawSpikes marks evenly spaced spike tips just outside the rim
func (r *TerminalRenderer) drawSpikes(x, y, radius float64) {
	style := tcell.StyleDefault.Foreground(RgbPoisonSpike.Color()).Background(RgbBackground.Color())
	tip := radius * (1 + constants.PoisonSpikeLength)
	for k := 0; k < constants.PoisonSpikeCount; k++ {
		angle := 2 * math.Pi * float64(k) / constants.PoisonSpikeCount
		cx, cy := PixelToCell(x+math.Cos(angle)*tip, y+math.Sin(angle)*tip)
		r.set(cx, cy, runeSpike, style)
	}
}

// drawHUD draws hearts, level, score and combo on the top row
func (r *TerminalRenderer) drawHUD(frame engine.Frame, muted bool) {
	bg := RgbHUDBg.Color()
	base := tcell.StyleDefault.Background(bg)
	for x := 0; x < r.width; x++ {
		for y := 0; y < constants.HUDRows; y++ {
			r.set(x, y, ' ', base)
		}
	}

	stats := frame.Stats
	x := 1
	maxLives := max(frame.MaxLives, stats.Lives)
	for i := 0; i < maxLives; i++ {
		if i < stats.Lives {
			r.set(x, 0, constants.HeartFull, base.Foreground(RgbHeart.Color()))
		} else {
			r.set(x, 0, constants.HeartEmpty, base.Foreground(RgbHeartEmpty.Color()))
		}
		x++
	}

	text := base.Foreground(RgbHUDText.Color())
	x = r.drawText(x+2, 0, fmt.Sprintf("Level %d", stats.Level), text)
	x = r.drawText(x+2, 0, fmt.Sprintf("Score: %d", stats.Score), text)
	if stats.Combo > 1 {
		r.drawText(x+2, 0, fmt.Sprintf("%dx Combo!", stats.Combo), base.Foreground(RgbCombo.Color()).Bold(true))
	}

	right := ""
	if muted {
		right = "MUTE"
	}
	if stats.Paused {
		right = constants.PausedTitle + " " + right
	}
	if right != "" {
		r.drawText(r.width-len(right)-1, 0, right, base.Foreground(RgbPaused.Color()))
	}
}

// drawGameOver draws a centred panel with the final score
func (r *TerminalRenderer) drawGameOver(score int) {
	lines := []string{
		constants.GameOverTitle,
		fmt.Sprintf("Final score: %d", score),
		constants.GameOverPrompt,
	}
	panelWidth := 0
	for _, l := range lines {
		panelWidth = max(panelWidth, len(l))
	}
	panelWidth += 4
	panelHeight := len(lines) + 2

	left := (r.width - panelWidth) / 2
	top := r.playfieldMidRow() - panelHeight/2
	panel := tcell.StyleDefault.Background(RgbOverlayBg.Color())
	for y := top; y < top+panelHeight; y++ {
		for x := left; x < left+panelWidth; x++ {
			r.set(x, y, ' ', panel)
		}
	}

	r.drawCentered(top+1, lines[0], panel.Foreground(RgbOverlayTitle.Color()).Bold(true))
	for i, l := range lines[1:] {
		r.drawCentered(top+2+i, l, panel.Foreground(RgbOverlayText.Color()))
	}
}

func (r *TerminalRenderer) playfieldMidRow() int {
	return constants.HUDRows + (r.height-constants.HUDRows)/2
}

func (r *TerminalRenderer) drawCentered(y int, s string, style tcell.Style) {
	r.drawText((r.width-len([]rune(s)))/2, y, s, style)
}

// drawText writes s starting at x and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.set(x, y, ch, style)
		x++
	}
	return x
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
