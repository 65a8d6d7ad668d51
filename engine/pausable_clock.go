package engine

import (
	"time"
)

// PausableClock provides game time that stands still while paused
// Combo windows, spawn delays and slice animations all read this clock
// Not safe for concurrent use, owned by the game loop goroutine
type PausableClock struct {
	source TimeProvider

	isPaused        bool
	pauseStartTime  time.Time     // Source time when current pause started
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a running clock over the given source
func NewPausableClock(source TimeProvider) *PausableClock {
	return &PausableClock{
		source: source,
	}
}

// Now returns current game time (frozen during pause)
func (pc *PausableClock) Now() time.Time {
	if pc.isPaused {
		return pc.pauseStartTime.Add(-pc.totalPausedTime)
	}
	return pc.source.Now().Add(-pc.totalPausedTime)
}

// RealTime returns source time unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.source.Now()
}

// Pause stops game time advancement, no-op if already paused
func (pc *PausableClock) Pause() {
	if pc.isPaused {
		return
	}
	pc.isPaused = true
	pc.pauseStartTime = pc.source.Now()
}

// Resume continues game time advancement, no-op if running
func (pc *PausableClock) Resume() {
	if !pc.isPaused {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.isPaused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused
}

// GetTotalPauseDuration returns cumulative pause time including any current pause
func (pc *PausableClock) GetTotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.isPaused {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
