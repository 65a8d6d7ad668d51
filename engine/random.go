package engine

import (
	"math/rand"
)

// RandSource supplies uniform draws in [0,1)
// All spawn randomness goes through it so sessions can be replayed from a seed
type RandSource interface {
	Float64() float64
}

// NewRandSource returns a seeded pseudo-random source
func NewRandSource(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}

// ScriptedRand replays a fixed sequence of draws, wrapping at the end
type ScriptedRand struct {
	values []float64
	next   int
}

// NewScriptedRand creates a source that returns values in order
// An empty script always returns 0
func NewScriptedRand(values ...float64) *ScriptedRand {
	return &ScriptedRand{values: values}
}

// Float64 returns the next scripted value
func (r *ScriptedRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// Draws returns the number of values consumed so far
func (r *ScriptedRand) Draws() int {
	return r.next
}
