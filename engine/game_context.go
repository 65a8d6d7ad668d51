package engine

import (
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"github.com/lixenwraith/bubble-slicer/events"
)

// GameContext owns the session state and the systems that mutate it
// All methods must be called from the game loop goroutine
type GameContext struct {
	State  *GameState
	Clock  *PausableClock
	Rand   RandSource
	Tuning Tuning

	// Playfield in pixels, origin top-left, +y down
	Width, Height float64

	// PauseBlocksSlice rejects slices while paused when set
	PauseBlocksSlice bool

	systems   []System
	listeners []StatsListener

	eventQueue  *events.EventQueue
	eventRouter *events.Router[*GameContext]

	lastStats Stats
}

// NewGameContext validates geometry and tuning and creates a context with a fresh session
func NewGameContext(width, height float64, source TimeProvider, rng RandSource, tuning Tuning) (*GameContext, error) {
	if !positive(width) || !positive(height) {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidGeometry, width, height)
	}
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	if rng == nil {
		rng = NewRandSource(time.Now().UnixNano())
	}

	queue := events.NewEventQueue()
	ctx := &GameContext{
		Clock:       NewPausableClock(source),
		Rand:        rng,
		Tuning:      tuning,
		Width:       width,
		Height:      height,
		eventQueue:  queue,
		eventRouter: events.NewRouter[*GameContext](queue),
	}
	ctx.State = NewGameState(tuning, ctx.Clock.Now())
	ctx.lastStats = ctx.State.Stats()
	return ctx, nil
}

// AddSystem registers a system, keeping priority order
func (ctx *GameContext) AddSystem(s System) {
	ctx.systems = append(ctx.systems, s)
	sort.SliceStable(ctx.systems, func(i, j int) bool {
		return ctx.systems[i].Priority() < ctx.systems[j].Priority()
	})
}

// RegisterEventHandler adds a handler to the router
func (ctx *GameContext) RegisterEventHandler(handler events.Handler[*GameContext]) {
	ctx.eventRouter.Register(handler)
}

// AddStatsListener registers a HUD listener
func (ctx *GameContext) AddStatsListener(l StatsListener) {
	ctx.listeners = append(ctx.listeners, l)
}

// Now returns game time
func (ctx *GameContext) Now() time.Time {
	return ctx.Clock.Now()
}

// PushEvent queues an event for dispatch at the end of the current step
func (ctx *GameContext) PushEvent(eventType events.EventType, payload any) {
	ctx.eventQueue.Push(events.GameEvent{
		Type:      eventType,
		Payload:   payload,
		Timestamp: ctx.Clock.Now(),
	})
}

// Reset replaces the session state with a fresh one and resumes the clock
func (ctx *GameContext) Reset() {
	ctx.Clock.Resume()
	ctx.eventQueue.Clear()
	ctx.State = NewGameState(ctx.Tuning, ctx.Clock.Now())
	log.Printf("session started: %.0fx%.0f", ctx.Width, ctx.Height)
	ctx.PushEvent(events.EventSessionStarted, nil)
	ctx.publish(true)
}

// Step advances the world by one frame
// Returns false without touching state when paused or game over
func (ctx *GameContext) Step() bool {
	if ctx.State.Paused || ctx.State.GameOver {
		return false
	}
	for _, s := range ctx.systems {
		s.Update()
	}
	ctx.Commit()
	return true
}

// Commit dispatches pending events and notifies listeners if the snapshot changed
func (ctx *GameContext) Commit() {
	ctx.publish(false)
}

// SetPaused toggles the paused sub-state, freezing the game clock
// Has no effect once the session is over
func (ctx *GameContext) SetPaused(paused bool) {
	if ctx.State.GameOver || ctx.State.Paused == paused {
		return
	}
	ctx.State.Paused = paused
	if paused {
		ctx.Clock.Pause()
		ctx.PushEvent(events.EventPaused, nil)
	} else {
		ctx.Clock.Resume()
		ctx.PushEvent(events.EventResumed, nil)
	}
	ctx.Commit()
}

// ValidPoint reports whether a pointer coordinate is usable for hit testing
func (ctx *GameContext) ValidPoint(x, y float64) error {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidPoint, x, y)
	}
	return nil
}

// Stats returns the current snapshot
func (ctx *GameContext) Stats() Stats {
	return ctx.State.Stats()
}

// Frame copies the state needed to draw one frame
func (ctx *GameContext) Frame() Frame {
	views := make([]BubbleView, len(ctx.State.Bubbles))
	for i, b := range ctx.State.Bubbles {
		views[i] = b.View()
	}
	return Frame{
		Width:    ctx.Width,
		Height:   ctx.Height,
		MaxLives: ctx.Tuning.InitialLives,
		Stats:    ctx.State.Stats(),
		Bubbles:  views,
	}
}

func (ctx *GameContext) publish(force bool) {
	ctx.eventRouter.DispatchAll(ctx)

	stats := ctx.State.Stats()
	if !force && stats == ctx.lastStats {
		return
	}
	ctx.lastStats = stats
	for _, l := range ctx.listeners {
		l.OnStats(stats)
	}
}
