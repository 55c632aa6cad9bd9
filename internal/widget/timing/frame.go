package timing

import (
	"sync"
	"time"
)

// FrameInterval is the frame period assumed when no display-driven frame
// source is available.
const FrameInterval = 16 * time.Millisecond

// FrameRequester schedules a callback for the next rendering frame and
// returns a function that cancels it.
type FrameRequester interface {
	RequestFrame(f func()) (cancel func())
}

// SchedulerFrames emulates a frame source with one-shot timers.
type SchedulerFrames struct {
	Scheduler Scheduler
	Interval  time.Duration
}

func (s SchedulerFrames) RequestFrame(f func()) func() {
	interval := s.Interval
	if interval <= 0 {
		interval = FrameInterval
	}
	t := s.Scheduler.AfterFunc(interval, f)
	return func() { t.Stop() }
}

// FrameThrottle coalesces bursts of events (scroll, resize) into at most
// one invocation of work per frame. A request made while a frame is already
// pending is dropped.
type FrameThrottle struct {
	frames FrameRequester
	work   func()

	mu      sync.Mutex
	pending bool
	cancel  func()
	closed  bool
}

// NewFrameThrottle returns a throttle that runs work on the frame after a
// Request.
func NewFrameThrottle(frames FrameRequester, work func()) *FrameThrottle {
	return &FrameThrottle{frames: frames, work: work}
}

// Request schedules work for the next frame. It reports whether a new
// frame was scheduled; false means one was already pending or the throttle
// is closed.
func (t *FrameThrottle) Request() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending || t.closed {
		return false
	}
	t.pending = true
	t.cancel = t.frames.RequestFrame(t.run)
	return true
}

// Pending reports whether a frame is scheduled.
func (t *FrameThrottle) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

func (t *FrameThrottle) run() {
	t.mu.Lock()
	if !t.pending || t.closed {
		t.mu.Unlock()
		return
	}
	t.pending = false
	t.cancel = nil
	t.mu.Unlock()

	t.work()
}

// Close cancels any pending frame. Later requests are ignored.
func (t *FrameThrottle) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	if t.pending && t.cancel != nil {
		t.cancel()
	}
	t.pending = false
	t.cancel = nil
}
