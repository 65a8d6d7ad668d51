package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventSessionStarted signals a fresh GameState
	// Trigger: Start/Restart | Payload: nil
	EventSessionStarted EventType = iota

	// EventBubbleSpawned signals a new bubble above the top edge
	// Trigger: SpawnSystem | Payload: *BubbleSpawnedPayload
	EventBubbleSpawned

	// EventBubbleSliced signals a scored slice of a normal bubble
	// Trigger: SliceSystem | Consumer: AudioSystem | Payload: *BubbleSlicedPayload
	EventBubbleSliced

	// EventPoisonSliced signals a poison bubble was hit
	// Trigger: SliceSystem | Consumer: AudioSystem | Payload: *BubbleSlicedPayload
	EventPoisonSliced

	// EventBubbleEscaped signals an unsliced bubble left past the bottom edge
	// Trigger: MotionSystem | Payload: *BubbleEscapedPayload
	EventBubbleEscaped

	// EventLifeLost signals a life was spent on an escaped normal bubble
	// Trigger: MotionSystem | Consumer: AudioSystem | Payload: *LifeLostPayload
	EventLifeLost

	// EventLevelUp signals the difficulty level was raised
	// Trigger: LevelSystem | Consumer: AudioSystem | Payload: *LevelUpPayload
	EventLevelUp

	// EventGameOver signals the session reached its terminal state
	// Trigger: MotionSystem (no lives), SliceSystem (poison) | Payload: *GameOverPayload
	EventGameOver

	// EventPaused and EventResumed signal pause toggles | Payload: nil
	EventPaused
	EventResumed
)

var eventTypeNames = map[EventType]string{
	EventSessionStarted: "SessionStarted",
	EventBubbleSpawned:  "BubbleSpawned",
	EventBubbleSliced:   "BubbleSliced",
	EventPoisonSliced:   "PoisonSliced",
	EventBubbleEscaped:  "BubbleEscaped",
	EventLifeLost:       "LifeLost",
	EventLevelUp:        "LevelUp",
	EventGameOver:       "GameOver",
	EventPaused:         "Paused",
	EventResumed:        "Resumed",
}

// String returns the event name for logging
func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time // Game clock time of emission
}
