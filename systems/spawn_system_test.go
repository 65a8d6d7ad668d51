package systems

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/bubble-slicer/engine"
)

// TestSpawnWaitsForInterval verifies nothing spawns until the delay has strictly elapsed
func TestSpawnWaitsForInterval(t *testing.T) {
	ctx, mockTime := engine.NewTestGameContext(800, 600, 0.5, 0.5, 0.0, 0.9)
	spawn := NewSpawnSystem(ctx)

	mockTime.Advance(time.Second) // exactly the interval, not past it
	spawn.Update()
	if len(ctx.State.Bubbles) != 0 {
		t.Fatalf("Expected no spawn at exactly the interval, got %d", len(ctx.State.Bubbles))
	}

	mockTime.Advance(time.Millisecond)
	spawn.Update()
	if len(ctx.State.Bubbles) != 1 {
		t.Fatalf("Expected one spawn, got %d", len(ctx.State.Bubbles))
	}
	if !ctx.State.LastSpawnTime.Equal(mockTime.Now()) {
		t.Errorf("Expected last spawn time updated")
	}

	// Same tick again: interval restarted
	spawn.Update()
	if len(ctx.State.Bubbles) != 1 {
		t.Errorf("Expected at most one spawn per interval, got %d", len(ctx.State.Bubbles))
	}
}

// TestSpawnBubbleFromDraws verifies radius, position, speed and poison derive from the random source
func TestSpawnBubbleFromDraws(t *testing.T) {
	ctx, mockTime := engine.NewTestGameContext(800, 600, 0.5, 0.5, 0.4, 0.1)
	spawn := NewSpawnSystem(ctx)

	mockTime.Advance(2 * time.Second)
	spawn.Update()

	b := ctx.State.Bubbles[0]
	if b.Radius != 30 {
		t.Errorf("Expected radius 30, got %v", b.Radius)
	}
	if b.X != 400 {
		t.Errorf("Expected x 400, got %v", b.X)
	}
	if b.Y != -30 {
		t.Errorf("Expected y -30, got %v", b.Y)
	}
	if math.Abs(b.Speed-1.0) > 1e-9 {
		t.Errorf("Expected speed 1.0, got %v", b.Speed)
	}
	if !b.Poison {
		t.Error("Expected poison for draw below 0.2")
	}
	if b.Sliced || b.Scale != 1 || b.Opacity != 1 {
		t.Errorf("Expected fresh bubble, got %+v", b)
	}
}

// TestSpawnKeepsCircleInsidePlayfield verifies extreme draws stay within width
func TestSpawnKeepsCircleInsidePlayfield(t *testing.T) {
	for _, draw := range []float64{0, 0.999999} {
		ctx, mockTime := engine.NewTestGameContext(800, 600, draw)
		spawn := NewSpawnSystem(ctx)
		mockTime.Advance(2 * time.Second)
		spawn.Update()

		b := ctx.State.Bubbles[0]
		if b.X-b.Radius < 0 || b.X+b.Radius > ctx.Width {
			t.Errorf("Draw %v: circle [%v, %v] outside playfield", draw, b.X-b.Radius, b.X+b.Radius)
		}
		if b.Radius < 20 || b.Radius >= 40 {
			t.Errorf("Draw %v: radius %v outside [20,40)", draw, b.Radius)
		}
		if b.Poison != (draw < 0.2) {
			t.Errorf("Draw %v: unexpected poison flag %v", draw, b.Poison)
		}
	}
}

// TestSpawnCentersOnNarrowPlayfield verifies a playfield narrower than the bubble still spawns
func TestSpawnCentersOnNarrowPlayfield(t *testing.T) {
	ctx, mockTime := engine.NewTestGameContext(30, 600, 0.5)
	spawn := NewSpawnSystem(ctx)
	mockTime.Advance(2 * time.Second)
	spawn.Update()

	if x := ctx.State.Bubbles[0].X; x != 15 {
		t.Errorf("Expected centered x 15, got %v", x)
	}
}

// TestSpawnRateAndSpeedFollowLevel verifies higher levels spawn sooner and faster
func TestSpawnRateAndSpeedFollowLevel(t *testing.T) {
	ctx, mockTime := engine.NewTestGameContext(800, 600, 0.5, 0.5, 0.0, 0.9)
	spawn := NewSpawnSystem(ctx)

	ctx.State.Level = 10
	ctx.State.BaseSpeed = ctx.Tuning.LevelBaseSpeed(10)

	mockTime.Advance(551 * time.Millisecond)
	spawn.Update()
	if len(ctx.State.Bubbles) != 1 {
		t.Fatalf("Expected level 10 spawn after 551ms, got %d bubbles", len(ctx.State.Bubbles))
	}
	if want := 0.8 + 9*0.3; math.Abs(ctx.State.Bubbles[0].Speed-want) > 1e-9 {
		t.Errorf("Expected speed %v, got %v", want, ctx.State.Bubbles[0].Speed)
	}
}

// TestSpawnPoisonRate verifies the poison share over many seeded spawns
func TestSpawnPoisonRate(t *testing.T) {
	ctx, mockTime := engine.NewTestGameContext(800, 600)
	ctx.Rand = engine.NewRandSource(7)
	spawn := NewSpawnSystem(ctx)

	const n = 5000
	poison := 0
	for i := 0; i < n; i++ {
		mockTime.Advance(2 * time.Second)
		spawn.Update()
		if ctx.State.Bubbles[len(ctx.State.Bubbles)-1].Poison {
			poison++
		}
	}

	ratio := float64(poison) / n
	if ratio < 0.17 || ratio > 0.23 {
		t.Errorf("Expected poison ratio near 0.2, got %.3f", ratio)
	}
}
