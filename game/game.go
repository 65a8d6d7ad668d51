// Package game wires the simulation systems into a single session facade
// used by the input and presentation collaborators.
package game

import (
	"fmt"
	"time"

	"github.com/lixenwraith/bubble-slicer/engine"
	"github.com/lixenwraith/bubble-slicer/events"
	"github.com/lixenwraith/bubble-slicer/status"
	"github.com/lixenwraith/bubble-slicer/systems"
)

// Options configures a Game
// Zero values pick defaults: monotonic clock, time-seeded randomness, default tuning
type Options struct {
	Width, Height    float64
	Tuning           *engine.Tuning
	PauseBlocksSlice bool

	Clock     engine.TimeProvider
	Rand      engine.RandSource
	Scheduler engine.FrameScheduler // Required for Start; nil allows manual Tick only
	Audio     engine.AudioPlayer
	Status    *status.Registry // Created when nil
}

// Game is one play session driver: start, tick, slice, pause, restart
type Game struct {
	ctx    *engine.GameContext
	slicer *systems.SliceSystem
	driver *engine.ClockScheduler
	status *status.Registry

	created time.Time // Source time at construction, unaffected by pause
}

// New validates the playfield and builds a game ready to Start
func New(opts Options) (*Game, error) {
	tuning := engine.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}

	ctx, err := engine.NewGameContext(opts.Width, opts.Height, opts.Clock, opts.Rand, tuning)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	ctx.PauseBlocksSlice = opts.PauseBlocksSlice

	ctx.AddSystem(systems.NewSpawnSystem(ctx))
	ctx.AddSystem(systems.NewMotionSystem(ctx))
	ctx.AddSystem(systems.NewSliceAnimationSystem(ctx))
	ctx.AddSystem(systems.NewLevelSystem(ctx))

	if opts.Audio != nil {
		ctx.RegisterEventHandler(systems.NewAudioSystem(opts.Audio))
	}

	registry := opts.Status
	if registry == nil {
		registry = status.NewRegistry()
	}
	ctx.RegisterEventHandler(systems.NewTelemetrySystem(registry))

	g := &Game{
		ctx:    ctx,
		slicer: systems.NewSliceSystem(ctx),
		status: registry,

		created: ctx.Clock.RealTime(),
	}
	if opts.Scheduler != nil {
		g.driver = engine.NewClockScheduler(opts.Scheduler, func() { g.Tick() })
	}
	return g, nil
}

// Start replaces the session state and begins ticking
func (g *Game) Start() {
	g.ctx.Reset()
	if g.driver != nil {
		g.driver.Start()
	}
}

// Restart is Start, the only way out of game over
func (g *Game) Restart() {
	g.Start()
}

// Stop halts the frame driver, safe to call repeatedly
func (g *Game) Stop() {
	if g.driver != nil {
		g.driver.Stop()
	}
}

// Tick advances one frame, returns false when paused or over
func (g *Game) Tick() bool {
	return g.ctx.Step()
}

// Slice hit-tests a playfield coordinate and returns the number of bubbles sliced
func (g *Game) Slice(x, y float64) (int, error) {
	n, err := g.slicer.Slice(x, y)
	if err != nil {
		return 0, err
	}
	g.ctx.Commit()
	return n, nil
}

// Pause enters the paused sub-state
func (g *Game) Pause() {
	g.ctx.SetPaused(true)
}

// Resume leaves the paused sub-state
func (g *Game) Resume() {
	g.ctx.SetPaused(false)
}

// TogglePause flips the paused sub-state
func (g *Game) TogglePause() {
	g.ctx.SetPaused(!g.ctx.State.Paused)
}

// Stats returns the HUD snapshot
func (g *Game) Stats() engine.Stats {
	return g.ctx.Stats()
}

// Frame returns an immutable render view
func (g *Game) Frame() engine.Frame {
	return g.ctx.Frame()
}

// Running reports whether the frame driver is active
func (g *Game) Running() bool {
	return g.driver != nil && g.driver.IsRunning()
}

// Status returns the telemetry registry, counters accumulate across restarts
func (g *Game) Status() *status.Registry {
	return g.status
}

// Ticks returns the number of frames the driver has executed
func (g *Game) Ticks() uint64 {
	if g.driver == nil {
		return 0
	}
	return g.driver.TickCount()
}

// Uptime returns source time elapsed since New, including pauses
func (g *Game) Uptime() time.Duration {
	return g.ctx.Clock.RealTime().Sub(g.created)
}

// PausedFor returns cumulative paused time, including a pause in progress
func (g *Game) PausedFor() time.Duration {
	return g.ctx.Clock.GetTotalPauseDuration()
}

// AddStatsListener registers a HUD listener
func (g *Game) AddStatsListener(l engine.StatsListener) {
	g.ctx.AddStatsListener(l)
}

// RegisterEventHandler subscribes a handler to game events
func (g *Game) RegisterEventHandler(h events.Handler[*engine.GameContext]) {
	g.ctx.RegisterEventHandler(h)
}
