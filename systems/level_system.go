package systems

import (
	"log"

	"github.com/lixenwraith/bubble-slicer/constants"
	"github.com/lixenwraith/bubble-slicer/engine"
	"github.com/lixenwraith/bubble-slicer/events"
)

// LevelSystem raises the level as score crosses each threshold
// Bubbles already in flight keep their speed
type LevelSystem struct {
	ctx *engine.GameContext
}

// NewLevelSystem creates a new level system
func NewLevelSystem(ctx *engine.GameContext) *LevelSystem {
	return &LevelSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *LevelSystem) Priority() int {
	return constants.PriorityLevel
}

// Update applies the level earned by the current score
func (s *LevelSystem) Update() {
	state := s.ctx.State
	target := s.ctx.Tuning.TargetLevel(state.Score)
	if target <= state.Level {
		return
	}

	state.Level = target
	state.BaseSpeed = s.ctx.Tuning.LevelBaseSpeed(target)
	log.Printf("level up: %d (score %d, base speed %.2f)", target, state.Score, state.BaseSpeed)
	s.ctx.PushEvent(events.EventLevelUp, &events.LevelUpPayload{Level: target})
}
