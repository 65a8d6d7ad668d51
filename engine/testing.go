package engine

import "time"

// TestStartTime is the mock clock origin used by test contexts
var TestStartTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestGameContext creates a context on a mock clock with scripted randomness
// This is a test helper, it panics on invalid geometry
func NewTestGameContext(width, height float64, draws ...float64) (*GameContext, *MockTimeProvider) {
	mockTime := NewMockTimeProvider(TestStartTime)
	ctx, err := NewGameContext(width, height, mockTime, NewScriptedRand(draws...), DefaultTuning())
	if err != nil {
		panic(err)
	}
	return ctx, mockTime
}

// AddTestBubble places an unsliced bubble directly into the state
func (ctx *GameContext) AddTestBubble(x, y, radius, speed float64, poison bool) *Bubble {
	b := NewBubble(x, radius, speed, poison)
	b.Y = y
	ctx.State.Bubbles = append(ctx.State.Bubbles, b)
	return b
}
