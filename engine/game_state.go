package engine

import (
	"time"
)

// GameState is the single mutable root of a play session
// Restart replaces the whole value, fields are never reset in place
type GameState struct {
	Lives         int
	Score         int
	Combo         int
	LastComboTime time.Time // Zero until the first scored slice
	GameOver      bool
	Paused        bool
	Level         int
	BaseSpeed     float64 // Derived from Level, applies to future spawns only

	Bubbles []*Bubble

	// Spawn bookkeeping
	LastSpawnTime time.Time
}

// NewGameState creates a fresh session state at level 1
func NewGameState(tuning Tuning, now time.Time) *GameState {
	return &GameState{
		Lives:         tuning.InitialLives,
		Level:         1,
		BaseSpeed:     tuning.LevelBaseSpeed(1),
		Bubbles:       make([]*Bubble, 0, 32),
		LastSpawnTime: now,
	}
}

// Stats returns the presentation snapshot
func (s *GameState) Stats() Stats {
	return Stats{
		Lives:    s.Lives,
		Score:    s.Score,
		Combo:    s.Combo,
		Level:    s.Level,
		GameOver: s.GameOver,
		Paused:   s.Paused,
	}
}

// LoseLife spends one life, resets combo and ends the session at zero
// Returns true if this call ended the session
func (s *GameState) LoseLife() bool {
	if s.Lives > 0 {
		s.Lives--
	}
	s.Combo = 0
	if s.Lives == 0 && !s.GameOver {
		s.GameOver = true
		return true
	}
	return false
}

// Stats is the read-only snapshot consumed by the HUD
type Stats struct {
	Lives    int
	Score    int
	Combo    int
	Level    int
	GameOver bool
	Paused   bool
}
