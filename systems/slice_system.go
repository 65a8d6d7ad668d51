package systems

import (
	"log"

	"github.com/lixenwraith/bubble-slicer/engine"
	"github.com/lixenwraith/bubble-slicer/events"
)

// SliceSystem hit-tests pointer coordinates against live bubbles
// Not a per-tick system: the input collaborator calls Slice directly
type SliceSystem struct {
	ctx  *engine.GameContext
	hits []*engine.Bubble // Reused between calls
}

// NewSliceSystem creates a new slice system
func NewSliceSystem(ctx *engine.GameContext) *SliceSystem {
	return &SliceSystem{
		ctx:  ctx,
		hits: make([]*engine.Bubble, 0, 8),
	}
}

// Slice slices every unsliced bubble containing (x, y) and returns the hit count
// Hits resolve in collection order: poison ends the session, normal hits chain
// combos, each seeing the combo left by the previous one
func (s *SliceSystem) Slice(x, y float64) (int, error) {
	if err := s.ctx.ValidPoint(x, y); err != nil {
		return 0, err
	}

	state := s.ctx.State
	if state.GameOver || (state.Paused && s.ctx.PauseBlocksSlice) {
		return 0, nil
	}

	s.hits = s.hits[:0]
	for _, b := range state.Bubbles {
		if !b.Sliced && b.Contains(x, y) {
			s.hits = append(s.hits, b)
		}
	}
	if len(s.hits) == 0 {
		return 0, nil
	}

	now := s.ctx.Now()
	timeout := s.ctx.Tuning.ComboTimeout
	poisoned := false
	for _, b := range s.hits {
		b.MarkSliced(now)

		if b.Poison {
			poisoned = true
			state.GameOver = true
			s.ctx.PushEvent(events.EventPoisonSliced, &events.BubbleSlicedPayload{ID: b.ID, X: b.X, Y: b.Y})
			continue
		}

		multiplier := 1
		if !state.LastComboTime.IsZero() && now.Sub(state.LastComboTime) < timeout {
			multiplier = state.Combo + 1
		}
		points := s.ctx.Tuning.SliceScore * multiplier

		state.Score += points
		state.Combo = multiplier
		state.LastComboTime = now

		s.ctx.PushEvent(events.EventBubbleSliced, &events.BubbleSlicedPayload{
			ID:     b.ID,
			X:      b.X,
			Y:      b.Y,
			Combo:  multiplier,
			Points: points,
		})
	}

	if poisoned {
		log.Printf("game over: poison sliced, score %d level %d", state.Score, state.Level)
		s.ctx.PushEvent(events.EventGameOver, &events.GameOverPayload{
			Score:  state.Score,
			Reason: events.GameOverPoison,
		})
	}

	return len(s.hits), nil
}
