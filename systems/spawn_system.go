package systems

import (
	"github.com/lixenwraith/bubble-slicer/constants"
	"github.com/lixenwraith/bubble-slicer/engine"
	"github.com/lixenwraith/bubble-slicer/events"
)

// SpawnSystem introduces at most one bubble per tick once the level's spawn delay has elapsed
// Spawn timing lives in GameState so restart resets it with everything else
type SpawnSystem struct {
	ctx *engine.GameContext
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(ctx *engine.GameContext) *SpawnSystem {
	return &SpawnSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update spawns a bubble when the interval has passed
func (s *SpawnSystem) Update() {
	state := s.ctx.State
	now := s.ctx.Now()

	if now.Sub(state.LastSpawnTime) <= s.ctx.Tuning.SpawnDelay(state.Level) {
		return
	}

	b := s.createBubble(state.BaseSpeed)
	state.Bubbles = append(state.Bubbles, b)
	state.LastSpawnTime = now

	s.ctx.PushEvent(events.EventBubbleSpawned, &events.BubbleSpawnedPayload{
		ID:     b.ID,
		X:      b.X,
		Radius: b.Radius,
		Speed:  b.Speed,
		Poison: b.Poison,
	})
}

// createBubble draws radius, x, speed jitter and poison flag in that order
func (s *SpawnSystem) createBubble(baseSpeed float64) *engine.Bubble {
	t := s.ctx.Tuning
	rng := s.ctx.Rand

	radius := t.BubbleMinRadius + rng.Float64()*t.BubbleRadiusRange

	// Keep the whole circle inside the playfield, center it if it cannot fit
	span := s.ctx.Width - radius*2
	x := s.ctx.Width / 2
	draw := rng.Float64()
	if span > 0 {
		x = radius + draw*span
	}

	speed := baseSpeed + rng.Float64()*t.SpeedJitter
	poison := rng.Float64() < t.PoisonChance

	return engine.NewBubble(x, radius, speed, poison)
}
