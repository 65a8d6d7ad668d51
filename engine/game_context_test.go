package engine_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/bubble-slicer/engine"
	"github.com/lixenwraith/bubble-slicer/engine/mocks"
	"github.com/lixenwraith/bubble-slicer/events"
	"go.uber.org/mock/gomock"
)

// TestNewGameContextRejectsGeometry verifies construction fails fast on bad dimensions
func TestNewGameContextRejectsGeometry(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
	}{
		{"zero width", 0, 600},
		{"negative height", 800, -1},
		{"nan width", math.NaN(), 600},
		{"infinite height", 800, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := engine.NewGameContext(tt.width, tt.height, nil, nil, engine.DefaultTuning())
			if !errors.Is(err, engine.ErrInvalidGeometry) {
				t.Errorf("Expected ErrInvalidGeometry, got %v", err)
			}
			if ctx != nil {
				t.Error("Expected nil context on error")
			}
		})
	}
}

// TestNewGameContextRejectsTuning verifies invalid tuning is reported
func TestNewGameContextRejectsTuning(t *testing.T) {
	tu := engine.DefaultTuning()
	tu.MaxLevel = 0
	if _, err := engine.NewGameContext(800, 600, nil, nil, tu); !errors.Is(err, engine.ErrInvalidTuning) {
		t.Errorf("Expected ErrInvalidTuning, got %v", err)
	}
}

type countingSystem struct {
	priority int
	calls    *[]int
}

func (s countingSystem) Priority() int { return s.priority }
func (s countingSystem) Update()       { *s.calls = append(*s.calls, s.priority) }

// TestStepRunsSystemsInPriorityOrder verifies ordering and the paused/game-over guard
func TestStepRunsSystemsInPriorityOrder(t *testing.T) {
	ctx, _ := engine.NewTestGameContext(800, 600)

	var calls []int
	ctx.AddSystem(countingSystem{priority: 30, calls: &calls})
	ctx.AddSystem(countingSystem{priority: 10, calls: &calls})
	ctx.AddSystem(countingSystem{priority: 20, calls: &calls})

	if !ctx.Step() {
		t.Fatal("Expected step to run")
	}
	if len(calls) != 3 || calls[0] != 10 || calls[1] != 20 || calls[2] != 30 {
		t.Errorf("Expected priority order [10 20 30], got %v", calls)
	}

	ctx.SetPaused(true)
	if ctx.Step() {
		t.Error("Expected paused step to be skipped")
	}
	ctx.SetPaused(false)

	ctx.State.GameOver = true
	if ctx.Step() {
		t.Error("Expected game over step to be skipped")
	}
	if len(calls) != 3 {
		t.Errorf("Expected no system calls while halted, got %v", calls)
	}
}

// TestStatsListenerNotifiedOnChangeOnly verifies the HUD sees each distinct snapshot once
func TestStatsListenerNotifiedOnChangeOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, _ := engine.NewTestGameContext(800, 600)
	listener := mocks.NewMockStatsListener(ctrl)
	ctx.AddStatsListener(listener)

	fresh := engine.Stats{Lives: 3, Level: 1}
	scored := engine.Stats{Lives: 3, Level: 1, Score: 100, Combo: 1}

	gomock.InOrder(
		listener.EXPECT().OnStats(fresh).Times(1),
		listener.EXPECT().OnStats(scored).Times(1),
	)

	ctx.Reset()  // always publishes
	ctx.Commit() // unchanged, silent

	ctx.State.Score = 100
	ctx.State.Combo = 1
	ctx.Commit()
	ctx.Commit() // unchanged, silent
}

type eventRecorder struct {
	seen []events.EventType
}

func (r *eventRecorder) EventTypes() []events.EventType {
	return []events.EventType{events.EventSessionStarted, events.EventPaused, events.EventResumed}
}

func (r *eventRecorder) HandleEvent(_ *engine.GameContext, ev events.GameEvent) {
	r.seen = append(r.seen, ev.Type)
}

// TestPauseFreezesClockAndEmitsEvents verifies pause uses the pausable game clock
func TestPauseFreezesClockAndEmitsEvents(t *testing.T) {
	ctx, mockTime := engine.NewTestGameContext(800, 600)
	rec := &eventRecorder{}
	ctx.RegisterEventHandler(rec)

	ctx.SetPaused(true)
	frozen := ctx.Now()
	mockTime.Advance(5 * time.Second)
	if !ctx.Now().Equal(frozen) {
		t.Errorf("Expected frozen game time while paused")
	}
	if !ctx.Stats().Paused {
		t.Error("Expected paused in snapshot")
	}

	ctx.SetPaused(false)
	ctx.SetPaused(false) // no duplicate event

	want := []events.EventType{events.EventPaused, events.EventResumed}
	if len(rec.seen) != len(want) {
		t.Fatalf("Expected events %v, got %v", want, rec.seen)
	}
	for i := range want {
		if rec.seen[i] != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], rec.seen[i])
		}
	}

	// Pausing is ignored after game over
	ctx.State.GameOver = true
	ctx.SetPaused(true)
	if ctx.State.Paused {
		t.Error("Expected pause ignored after game over")
	}
}

// TestResetReplacesState verifies restart builds a new state value
func TestResetReplacesState(t *testing.T) {
	ctx, _ := engine.NewTestGameContext(800, 600)
	old := ctx.State
	old.Score = 1500
	old.Level = 2
	old.Lives = 0
	old.GameOver = true
	ctx.AddTestBubble(100, 100, 20, 1, false)

	ctx.Reset()

	if ctx.State == old {
		t.Fatal("Expected a new GameState value")
	}
	want := engine.Stats{Lives: 3, Level: 1}
	if got := ctx.Stats(); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
	if len(ctx.State.Bubbles) != 0 {
		t.Errorf("Expected empty bubbles after reset")
	}
}

// TestFrameIsACopy verifies the render view does not alias live bubbles
func TestFrameIsACopy(t *testing.T) {
	ctx, _ := engine.NewTestGameContext(800, 600)
	b := ctx.AddTestBubble(100, 50, 20, 1, true)

	frame := ctx.Frame()
	b.Y = 999

	if len(frame.Bubbles) != 1 {
		t.Fatalf("Expected 1 bubble view, got %d", len(frame.Bubbles))
	}
	if frame.Bubbles[0].Y != 50 || !frame.Bubbles[0].Poison {
		t.Errorf("Expected frozen copy, got %+v", frame.Bubbles[0])
	}
	if frame.Width != 800 || frame.Height != 600 {
		t.Errorf("Expected playfield 800x600, got %vx%v", frame.Width, frame.Height)
	}
}

// TestValidPoint rejects non-finite coordinates
func TestValidPoint(t *testing.T) {
	ctx, _ := engine.NewTestGameContext(800, 600)
	if err := ctx.ValidPoint(10, 10); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := ctx.ValidPoint(math.NaN(), 10); !errors.Is(err, engine.ErrInvalidPoint) {
		t.Errorf("Expected ErrInvalidPoint, got %v", err)
	}
	if err := ctx.ValidPoint(10, math.Inf(-1)); !errors.Is(err, engine.ErrInvalidPoint) {
		t.Errorf("Expected ErrInvalidPoint, got %v", err)
	}
}
