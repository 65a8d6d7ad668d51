package input

import (
	"log"

	"github.com/gdamore/tcell/v2"
)

// Target is the game surface driven by input
type Target interface {
	Slice(x, y float64) (int, error)
	Restart()
	TogglePause()
}

// Muter toggles sound output
type Muter interface {
	ToggleMute() bool
}

// Handler applies parsed intents to the game
type Handler struct {
	machine *Machine
	target  Target
	muter   Muter
}

// NewHandler creates a handler, muter may be nil when audio is disabled
func NewHandler(target Target, muter Muter) *Handler {
	return &Handler{
		machine: NewMachine(),
		target:  target,
		muter:   muter,
	}
}

// HandleEvent processes one terminal event
// Returns false when the user asked to quit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	intent := h.machine.Process(ev)
	if intent == nil {
		return true
	}
	return h.Apply(*intent)
}

// Apply executes an intent, returning false for quit
func (h *Handler) Apply(intent Intent) bool {
	switch intent.Type {
	case IntentQuit:
		return false
	case IntentSlice:
		if _, err := h.target.Slice(intent.X, intent.Y); err != nil {
			log.Printf("slice rejected: %v", err)
		}
	case IntentRestart:
		h.target.Restart()
	case IntentTogglePause:
		h.target.TogglePause()
	case IntentToggleMute:
		if h.muter != nil {
			log.Printf("audio muted: %v", h.muter.ToggleMute())
		}
	}
	return true
}
