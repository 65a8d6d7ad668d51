package systems

import (
	"log"

	"github.com/lixenwraith/bubble-slicer/constants"
	"github.com/lixenwraith/bubble-slicer/engine"
	"github.com/lixenwraith/bubble-slicer/events"
)

// MotionSystem moves live bubbles and resolves bottom-boundary exits
// Sliced bubbles are frozen and never pay the exit penalty
type MotionSystem struct {
	ctx *engine.GameContext
}

// NewMotionSystem creates a new motion system
func NewMotionSystem(ctx *engine.GameContext) *MotionSystem {
	return &MotionSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *MotionSystem) Priority() int {
	return constants.PriorityMotion
}

// Update advances every unsliced bubble by its speed and removes the ones that left
func (s *MotionSystem) Update() {
	state := s.ctx.State
	kept := state.Bubbles[:0]

	for _, b := range state.Bubbles {
		if b.Sliced {
			kept = append(kept, b)
			continue
		}

		b.Y += b.Speed
		if b.Y <= s.ctx.Height+b.Radius {
			kept = append(kept, b)
			continue
		}

		s.ctx.PushEvent(events.EventBubbleEscaped, &events.BubbleEscapedPayload{ID: b.ID, Poison: b.Poison})

		// Letting poison through is the goal
		if b.Poison {
			continue
		}

		ended := state.LoseLife()
		s.ctx.PushEvent(events.EventLifeLost, &events.LifeLostPayload{Lives: state.Lives})
		if ended {
			log.Printf("game over: no lives left, score %d level %d", state.Score, state.Level)
			s.ctx.PushEvent(events.EventGameOver, &events.GameOverPayload{
				Score:  state.Score,
				Reason: events.GameOverNoLives,
			})
		}
	}

	clear(state.Bubbles[len(kept):])
	state.Bubbles = kept
}
