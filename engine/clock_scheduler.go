package engine

// FrameHandle identifies a pending frame request, zero means none
type FrameHandle uint64

// FrameScheduler delivers one callback per requested frame
// Callbacks must run on the game loop goroutine
type FrameScheduler interface {
	RequestFrame(callback func()) FrameHandle
	CancelFrame(handle FrameHandle)
}

// ClockScheduler drives a step function one frame at a time
// Each frame runs one step and then requests the next frame
// The single pending handle is the only thing keeping the loop alive
type ClockScheduler struct {
	scheduler FrameScheduler
	step      func()

	pending FrameHandle
	active  bool

	// Tick counter for debugging and metrics
	tickCount uint64
}

// NewClockScheduler creates a stopped scheduler
func NewClockScheduler(scheduler FrameScheduler, step func()) *ClockScheduler {
	return &ClockScheduler{
		scheduler: scheduler,
		step:      step,
	}
}

// Start begins requesting frames, no-op if already running
func (cs *ClockScheduler) Start() {
	if cs.active {
		return
	}
	cs.active = true
	cs.requestNext()
}

// Stop cancels the pending frame, safe to call repeatedly
func (cs *ClockScheduler) Stop() {
	if !cs.active {
		return
	}
	cs.active = false
	if cs.pending != 0 {
		cs.scheduler.CancelFrame(cs.pending)
		cs.pending = 0
	}
}

// IsRunning reports whether a frame is scheduled or executing
func (cs *ClockScheduler) IsRunning() bool {
	return cs.active
}

// TickCount returns the number of steps executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount
}

func (cs *ClockScheduler) requestNext() {
	var handle FrameHandle
	handle = cs.scheduler.RequestFrame(func() {
		cs.onFrame(handle)
	})
	cs.pending = handle
}

func (cs *ClockScheduler) onFrame(handle FrameHandle) {
	// Stale callback from a cancelled request
	if !cs.active || handle != cs.pending {
		return
	}
	cs.pending = 0
	cs.step()
	cs.tickCount++

	// step may have stopped the loop
	if cs.active {
		cs.requestNext()
	}
}
