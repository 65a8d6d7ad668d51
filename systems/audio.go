package systems

import (
	"github.com/lixenwraith/bubble-slicer/engine"
	"github.com/lixenwraith/bubble-slicer/events"
)

// AudioSystem consumes game events and plays feedback sounds
// Decouples game systems from direct audio access
type AudioSystem struct {
	player engine.AudioPlayer
}

// NewAudioSystem creates an audio system with the given player
// player may be nil if audio is disabled
func NewAudioSystem(player engine.AudioPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventBubbleSliced,
		events.EventPoisonSliced,
		events.EventLifeLost,
		events.EventLevelUp,
		events.EventGameOver,
	}
}

// HandleEvent maps events to sounds
func (s *AudioSystem) HandleEvent(_ *engine.GameContext, event events.GameEvent) {
	if s.player == nil {
		return
	}

	switch event.Type {
	case events.EventBubbleSliced:
		if p, ok := event.Payload.(*events.BubbleSlicedPayload); ok {
			s.player.PlaySlice(p.Combo)
		}
	case events.EventPoisonSliced:
		s.player.PlayPoison()
	case events.EventLifeLost:
		s.player.PlayLifeLost()
	case events.EventLevelUp:
		s.player.PlayLevelUp()
	case events.EventGameOver:
		// Poison already has its own sting
		if p, ok := event.Payload.(*events.GameOverPayload); ok && p.Reason == events.GameOverNoLives {
			s.player.PlayGameOver()
		}
	}
}
