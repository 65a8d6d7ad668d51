package engine

import (
	"time"

	"github.com/google/uuid"
)

// Bubble is a single falling circular target
// Owned by GameState, never aliased outside the engine past a frame
type Bubble struct {
	ID     string
	X, Y   float64
	Radius float64
	Speed  float64 // Pixels per tick, fixed at spawn
	Poison bool

	// Death animation, valid only while Sliced
	Sliced   bool
	SlicedAt time.Time
	Scale    float64
	Opacity  float64
}

// NewBubble creates an unsliced bubble centered at x with its bottom edge at y=0, fully above the playfield
func NewBubble(x, radius, speed float64, poison bool) *Bubble {
	return &Bubble{
		ID:      uuid.NewString(),
		X:       x,
		Y:       -radius,
		Radius:  radius,
		Speed:   speed,
		Poison:  poison,
		Scale:   1,
		Opacity: 1,
	}
}

// Contains reports whether the point lies strictly inside the bubble
func (b *Bubble) Contains(x, y float64) bool {
	dx := x - b.X
	dy := y - b.Y
	return dx*dx+dy*dy < b.Radius*b.Radius
}

// MarkSliced freezes the bubble and starts its death animation
// Returns false if the bubble was already sliced
func (b *Bubble) MarkSliced(now time.Time) bool {
	if b.Sliced {
		return false
	}
	b.Sliced = true
	b.SlicedAt = now
	return true
}

// View returns an immutable copy for rendering
func (b *Bubble) View() BubbleView {
	return BubbleView{
		ID:      b.ID,
		X:       b.X,
		Y:       b.Y,
		Radius:  b.Radius,
		Poison:  b.Poison,
		Sliced:  b.Sliced,
		Scale:   b.Scale,
		Opacity: b.Opacity,
	}
}
