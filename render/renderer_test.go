package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bubble-slicer/engine"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	cols, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < cols; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(mainc)
	}
	return sb.String()
}

func screenText(screen tcell.Screen) string {
	_, rows := screen.Size()
	var sb strings.Builder
	for y := 0; y < rows; y++ {
		sb.WriteString(rowText(screen, y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func testFrame(bubbles ...engine.BubbleView) engine.Frame {
	return engine.Frame{
		Width:    800,
		Height:   480,
		MaxLives: 3,
		Stats:    engine.Stats{Lives: 3, Level: 1},
		Bubbles:  bubbles,
	}
}

// TestRenderNormalBubble verifies a blue bubble lands on the mapped cells
func TestRenderNormalBubble(t *testing.T) {
	screen := newTestScreen(t, 100, 31)
	r := NewTerminalRenderer(screen)

	r.RenderFrame(testFrame(engine.BubbleView{X: 400, Y: 240, Radius: 30, Scale: 1, Opacity: 1}), false)

	cx, cy := PixelToCell(400, 240)
	mainc, _, style, _ := screen.GetContent(cx, cy)
	if mainc != runeFill {
		t.Errorf("Expected fill rune at centre, got '%c'", mainc)
	}
	fg, _, _ := style.Decompose()
	if fg != RgbBubbleNormal.Color() {
		t.Errorf("Expected normal bubble color, got %v", fg)
	}

	// Outside the radius stays background
	mainc, _, _, _ = screen.GetContent(cx+6, cy)
	if mainc != ' ' {
		t.Errorf("Expected empty cell outside bubble, got '%c'", mainc)
	}
}

// TestRenderPoisonSpikes verifies poison bubbles are purple with spikes
func TestRenderPoisonSpikes(t *testing.T) {
	screen := newTestScreen(t, 100, 31)
	r := NewTerminalRenderer(screen)

	r.RenderFrame(testFrame(engine.BubbleView{X: 400, Y: 240, Radius: 32, Poison: true, Scale: 1, Opacity: 1}), false)

	cx, cy := PixelToCell(400, 240)
	_, _, style, _ := screen.GetContent(cx, cy)
	if fg, _, _ := style.Decompose(); fg != RgbBubblePoison.Color() {
		t.Errorf("Expected poison color, got %v", fg)
	}

	// Spike at angle 0 sits at radius*1.3 to the right
	sx, sy := PixelToCell(400+32*1.3, 240)
	if mainc, _, _, _ := screen.GetContent(sx, sy); mainc != runeSpike {
		t.Errorf("Expected spike at (%d,%d), got '%c'", sx, sy, mainc)
	}
	if n := strings.Count(screenText(screen), string(runeSpike)); n < 4 {
		t.Errorf("Expected several spikes, got %d", n)
	}
}

// TestRenderSlicedFades verifies sliced bubbles use the faded sliced rune and color
func TestRenderSlicedFades(t *testing.T) {
	screen := newTestScreen(t, 100, 31)
	r := NewTerminalRenderer(screen)

	r.RenderFrame(testFrame(engine.BubbleView{X: 400, Y: 240, Radius: 30, Sliced: true, Scale: 1.25, Opacity: 0.5}), false)

	cx, cy := PixelToCell(400, 240)
	mainc, _, style, _ := screen.GetContent(cx, cy)
	if mainc != runeSliced {
		t.Errorf("Expected sliced rune, got '%c'", mainc)
	}
	fg, _, _ := style.Decompose()
	want, _ := bubbleColors(false, true, 0.5)
	if fg != want.Color() {
		t.Errorf("Expected faded color %v, got %v", want.Color(), fg)
	}
	if fg == RgbBubbleSliced.Color() {
		t.Error("Expected half-opacity bubble to be dimmer than white")
	}
}

// TestRenderHUD verifies hearts, level, score and combo text
func TestRenderHUD(t *testing.T) {
	screen := newTestScreen(t, 80, 20)
	r := NewTerminalRenderer(screen)

	frame := testFrame()
	frame.Stats = engine.Stats{Lives: 2, Level: 4, Score: 3200, Combo: 3}
	r.RenderFrame(frame, true)

	hud := rowText(screen, 0)
	for _, want := range []string{"♥♥♡", "Level 4", "Score: 3200", "3x Combo!", "MUTE"} {
		if !strings.Contains(hud, want) {
			t.Errorf("Expected HUD to contain %q, got %q", want, hud)
		}
	}

	frame.Stats.Combo = 1
	r.RenderFrame(frame, false)
	if hud := rowText(screen, 0); strings.Contains(hud, "Combo") || strings.Contains(hud, "MUTE") {
		t.Errorf("Expected no combo or mute label, got %q", hud)
	}
}

// TestRenderOverlays verifies the game over panel and pause label
func TestRenderOverlays(t *testing.T) {
	screen := newTestScreen(t, 80, 20)
	r := NewTerminalRenderer(screen)

	frame := testFrame()
	frame.Stats = engine.Stats{Lives: 0, Level: 2, Score: 1500, GameOver: true}
	r.RenderFrame(frame, false)

	text := screenText(screen)
	for _, want := range []string{"Game Over!", "Final score: 1500", "press r to play again"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected overlay to contain %q", want)
		}
	}

	frame.Stats = engine.Stats{Lives: 3, Level: 1, Paused: true}
	r.RenderFrame(frame, false)
	text = screenText(screen)
	if strings.Contains(text, "Game Over!") {
		t.Error("Expected game over panel cleared")
	}
	if strings.Count(text, "PAUSED") < 2 {
		t.Error("Expected PAUSED in HUD and playfield")
	}
}

// TestRenderClipsOffscreen verifies partially visible bubbles do not panic or touch the HUD
func TestRenderClipsOffscreen(t *testing.T) {
	screen := newTestScreen(t, 40, 10)
	r := NewTerminalRenderer(screen)

	r.RenderFrame(testFrame(
		engine.BubbleView{X: 10, Y: -30, Radius: 40, Scale: 1, Opacity: 1},
		engine.BubbleView{X: 5000, Y: 5000, Radius: 40, Poison: true, Scale: 1, Opacity: 1},
		engine.BubbleView{X: 310, Y: 140, Radius: 40, Scale: 1, Opacity: 1},
	), false)

	if hud := rowText(screen, 0); strings.ContainsRune(hud, runeFill) {
		t.Errorf("Expected HUD row untouched by bubbles, got %q", hud)
	}
}

// TestLayoutRoundTrip verifies cell centres map back to the same cell
func TestLayoutRoundTrip(t *testing.T) {
	tests := []struct{ cx, cy int }{{0, 1}, {5, 3}, {99, 37}}
	for _, tt := range tests {
		x, y, ok := CellToPixel(tt.cx, tt.cy)
		if !ok {
			t.Fatalf("Expected playfield cell (%d,%d)", tt.cx, tt.cy)
		}
		if cx, cy := PixelToCell(x, y); cx != tt.cx || cy != tt.cy {
			t.Errorf("Expected (%d,%d), got (%d,%d)", tt.cx, tt.cy, cx, cy)
		}
	}

	if _, _, ok := CellToPixel(3, 0); ok {
		t.Error("Expected HUD row to be outside the playfield")
	}
	if x, y, _ := CellToPixel(0, 1); x != 4 || y != 8 {
		t.Errorf("Expected (4,8), got (%v,%v)", x, y)
	}

	w, h := PlayfieldSize(100, 31)
	if w != 800 || h != 480 {
		t.Errorf("Expected 800x480, got %vx%v", w, h)
	}
}

// TestBlend verifies alpha blending endpoints
func TestBlend(t *testing.T) {
	a := RGB{0, 0, 0}
	b := RGB{200, 100, 50}
	if Blend(a, b, 1) != b || Blend(a, b, 0) != a {
		t.Error("Expected endpoints to return inputs")
	}
	if got := Blend(a, b, 0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Expected midpoint, got %v", got)
	}
	if got := Blend(b, a, 0.25); got != (RGB{150, 75, 37}) {
		t.Errorf("Expected quarter blend toward black, got %v", got)
	}
}
