package engine

import (
	"sync"
	"time"
)

// TickerScheduler fires frame callbacks after a fixed interval
// Timers only post callbacks to Frames(); the game loop drains and runs them
type TickerScheduler struct {
	interval time.Duration
	frames   chan func()
	done     chan struct{}
	stopOnce sync.Once

	mu      sync.Mutex
	nextID  FrameHandle
	pending map[FrameHandle]*time.Timer
}

// NewTickerScheduler creates a scheduler with the given frame interval
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	return &TickerScheduler{
		interval: interval,
		frames:   make(chan func(), 1),
		done:     make(chan struct{}),
		pending:  make(map[FrameHandle]*time.Timer),
	}
}

// Frames returns the channel the game loop must drain
func (s *TickerScheduler) Frames() <-chan func() {
	return s.frames
}

// RequestFrame schedules callback one interval from now
func (s *TickerScheduler) RequestFrame(callback func()) FrameHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.pending[id] = time.AfterFunc(s.interval, func() {
		select {
		case s.frames <- func() {
			if s.take(id) {
				callback()
			}
		}:
		case <-s.done:
		}
	})
	return id
}

// CancelFrame drops a pending request, including one already posted to Frames()
func (s *TickerScheduler) CancelFrame(handle FrameHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.pending[handle]; ok {
		t.Stop()
		delete(s.pending, handle)
	}
}

// Close cancels all requests and releases blocked timers
func (s *TickerScheduler) Close() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.mu.Lock()
		for id, t := range s.pending {
			t.Stop()
			delete(s.pending, id)
		}
		s.mu.Unlock()
	})
}

func (s *TickerScheduler) take(handle FrameHandle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[handle]; !ok {
		return false
	}
	delete(s.pending, handle)
	return true
}

// ManualScheduler holds frame requests until the test fires them
type ManualScheduler struct {
	nextID  FrameHandle
	pending map[FrameHandle]func()
	order   []FrameHandle
}

// NewManualScheduler creates an empty manual scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{
		pending: make(map[FrameHandle]func()),
	}
}

// RequestFrame records the callback
func (s *ManualScheduler) RequestFrame(callback func()) FrameHandle {
	s.nextID++
	s.pending[s.nextID] = callback
	s.order = append(s.order, s.nextID)
	return s.nextID
}

// CancelFrame forgets a pending callback
func (s *ManualScheduler) CancelFrame(handle FrameHandle) {
	delete(s.pending, handle)
}

// Fire runs every callback pending at call time, returns how many ran
func (s *ManualScheduler) Fire() int {
	order := s.order
	s.order = nil
	fired := 0
	for _, id := range order {
		cb, ok := s.pending[id]
		if !ok {
			continue
		}
		delete(s.pending, id)
		cb()
		fired++
	}
	return fired
}

// Pending returns the number of outstanding requests
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}
