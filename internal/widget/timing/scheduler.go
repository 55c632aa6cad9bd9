// Package timing provides the clocks, timers and frame guards shared by the
// interactive widgets. Every widget receives a Scheduler instead of calling
// the time package directly, so tests drive them with a ManualScheduler.
package timing

import (
	"sync"
	"time"
)

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer; false means it already fired or was stopped.
	Stop() bool
}

// Scheduler is a clock plus one-shot timers.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler is backed by the time package.
type RealScheduler struct{}

func (RealScheduler) Now() time.Time { return time.Now() }

func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Handle is an owned resource (listener, timer, frame callback) that is
// released exactly once on teardown.
type Handle struct {
	once    sync.Once
	release func()
}

// NewHandle wraps a release function.
func NewHandle(release func()) *Handle {
	return &Handle{release: release}
}

// Release runs the release function the first time it is called. It is
// safe to call on a nil Handle.
func (h *Handle) Release() {
	if h == nil || h.release == nil {
		return
	}
	h.once.Do(h.release)
}

// Group collects handles acquired while a widget is active and releases
// them together, most recent first.
type Group struct {
	mu      sync.Mutex
	handles []*Handle
}

// Add registers a handle with the group and returns it.
func (g *Group) Add(h *Handle) *Handle {
	g.mu.Lock()
	g.handles = append(g.handles, h)
	g.mu.Unlock()
	return h
}

// Len returns the number of handles still owned by the group.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.handles)
}

// Release releases every handle in reverse acquisition order.
func (g *Group) Release() {
	g.mu.Lock()
	handles := g.handles
	g.handles = nil
	g.mu.Unlock()

	for i := len(handles) - 1; i >= 0; i-- {
		handles[i].Release()
	}
}
