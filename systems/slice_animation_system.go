package systems

import (
	"github.com/lixenwraith/bubble-slicer/constants"
	"github.com/lixenwraith/bubble-slicer/engine"
)

// SliceAnimationSystem grows and fades sliced bubbles, then removes them
type SliceAnimationSystem struct {
	ctx *engine.GameContext
}

// NewSliceAnimationSystem creates a new slice animation system
func NewSliceAnimationSystem(ctx *engine.GameContext) *SliceAnimationSystem {
	return &SliceAnimationSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *SliceAnimationSystem) Priority() int {
	return constants.PrioritySliceAnimation
}

// Update sets scale and opacity from animation progress
func (s *SliceAnimationSystem) Update() {
	state := s.ctx.State
	now := s.ctx.Now()
	duration := float64(s.ctx.Tuning.SliceAnimationDuration)
	growth := s.ctx.Tuning.SliceAnimationGrowth

	kept := state.Bubbles[:0]
	for _, b := range state.Bubbles {
		if !b.Sliced {
			kept = append(kept, b)
			continue
		}

		progress := float64(now.Sub(b.SlicedAt)) / duration
		progress = min(max(progress, 0), 1)

		b.Scale = 1 + growth*progress
		b.Opacity = 1 - progress

		if progress < 1 {
			kept = append(kept, b)
		}
	}

	clear(state.Bubbles[len(kept):])
	state.Bubbles = kept
}
