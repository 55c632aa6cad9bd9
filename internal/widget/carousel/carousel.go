// Package carousel implements an infinitely looping slide carousel.
//
// The n slides are displayed through n+2 slots (see Slots): moving past
// either end lands on a clone of the opposite end, and once the slide
// transition has finished the position is silently reset to the matching
// real slot. Every navigation bumps a generation counter; a pending reset
// only applies if no newer navigation happened in the meantime.
package carousel

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wayfindr/studio/internal/widget/timing"
)

const (
	// DefaultInterval is the auto-advance period.
	DefaultInterval = 12 * time.Second
	// DefaultTransition is the slide animation length; the clone reset is
	// applied once it has elapsed.
	DefaultTransition = 800 * time.Millisecond
)

var (
	ErrEmpty      = errors.New("carousel: no slides")
	ErrOutOfRange = errors.New("carousel: index out of range")
)

// Options configures a Carousel. Zero values fall back to the defaults
// and the real clock.
type Options struct {
	Interval   time.Duration
	Transition time.Duration
	Scheduler  timing.Scheduler
	// OnChange is called after every position change, outside the lock.
	OnChange func(Snapshot)
}

// Snapshot is the presentation state after a change.
type Snapshot struct {
	// Internal is the slot position in [0, n+1].
	Internal int
	// Active is the displayed item index in [0, n).
	Active int
	State  State
	// Animate is false for the silent clone reset.
	Animate bool
	// Jump is set when the position was first moved, without animation,
	// from a clone slot to JumpTo before animating to Internal.
	Jump   bool
	JumpTo int
}

// Offset returns the track's translateX in percent of one slide width.
func (s Snapshot) Offset() float64 {
	return -float64(s.Internal) * 100
}

// Dot is one pagination indicator.
type Dot struct {
	Index  int
	Active bool
}

// Carousel is the navigation state machine for one carousel instance.
type Carousel struct {
	n          int
	interval   time.Duration
	transition time.Duration
	sched      timing.Scheduler
	onChange   func(Snapshot)

	mu         sync.Mutex
	internal   int
	animate    bool
	gen        uint64
	snap       timing.Timer
	auto       timing.Timer
	autoGen    uint64
	running    bool
	hovered    bool
	closed     bool
	cycleStart time.Time
}

// New returns a carousel over n slides showing item 0. Auto-advance does
// not run until Start is called.
func New(n int, opts Options) (*Carousel, error) {
	if n <= 0 {
		return nil, ErrEmpty
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Transition <= 0 {
		opts.Transition = DefaultTransition
	}
	if opts.Scheduler == nil {
		opts.Scheduler = timing.RealScheduler{}
	}
	return &Carousel{
		n:          n,
		interval:   opts.Interval,
		transition: opts.Transition,
		sched:      opts.Scheduler,
		onChange:   opts.OnChange,
		internal:   ToInternal(0),
		cycleStart: opts.Scheduler.Now(),
	}, nil
}

// Len returns the number of real slides.
func (c *Carousel) Len() int { return c.n }

// Start arms the auto-advance timer.
func (c *Carousel) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.running {
		return
	}
	c.running = true
	c.cycleStart = c.sched.Now()
	if !c.hovered {
		c.armAutoLocked()
	}
}

// Advance moves one slide forward.
func (c *Carousel) Advance() Snapshot {
	return c.move(func() int { return c.internal + 1 })
}

// Retreat moves one slide back.
func (c *Carousel) Retreat() Snapshot {
	return c.move(func() int { return c.internal - 1 })
}

// GoTo jumps straight to item i, as pagination dots do.
func (c *Carousel) GoTo(i int) (Snapshot, error) {
	if i < 0 || i >= c.n {
		return c.Snapshot(), fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, c.n)
	}
	c.mu.Lock()
	if c.closed {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}
	c.settleLocked()
	if c.internal == ToInternal(i) {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}
	snap := c.navigateLocked(ToInternal(i))
	c.mu.Unlock()

	c.notify(snap)
	return snap, nil
}

func (c *Carousel) move(target func() int) Snapshot {
	c.mu.Lock()
	if c.closed {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap
	}
	from, jumped := c.internal, c.settleLocked()
	snap := c.navigateLocked(target())
	if jumped {
		snap.Jump = true
		snap.JumpTo = c.realSlotFor(from)
	}
	c.mu.Unlock()

	c.notify(snap)
	return snap
}

func (c *Carousel) realSlotFor(internal int) int {
	return ToInternal(ToReal(internal, c.n))
}

// settleLocked applies a pending clone reset immediately so a new
// navigation starts from a real slot. It reports whether it moved.
func (c *Carousel) settleLocked() bool {
	c.cancelSnapLocked()
	if StateOf(c.internal, c.n) == AtRealItem {
		return false
	}
	c.gen++
	c.internal = c.realSlotFor(c.internal)
	c.animate = false
	return true
}

func (c *Carousel) navigateLocked(target int) Snapshot {
	c.cancelSnapLocked()
	c.gen++
	c.internal = target
	c.animate = true
	c.cycleStart = c.sched.Now()
	if c.running && !c.hovered {
		c.armAutoLocked()
	}

	switch StateOf(target, c.n) {
	case AtCloneTail:
		c.scheduleSnapLocked(ToInternal(0))
	case AtCloneHead:
		c.scheduleSnapLocked(ToInternal(c.n - 1))
	}
	return c.snapshotLocked()
}

func (c *Carousel) scheduleSnapLocked(target int) {
	gen := c.gen
	c.snap = c.sched.AfterFunc(c.transition, func() {
		c.mu.Lock()
		if c.closed || gen != c.gen {
			c.mu.Unlock()
			return
		}
		c.snap = nil
		c.internal = target
		c.animate = false
		snap := c.snapshotLocked()
		c.mu.Unlock()

		c.notify(snap)
	})
}

func (c *Carousel) cancelSnapLocked() {
	if c.snap != nil {
		c.snap.Stop()
		c.snap = nil
	}
}

func (c *Carousel) armAutoLocked() {
	c.stopAutoLocked()
	gen := c.autoGen
	c.auto = c.sched.AfterFunc(c.interval, func() {
		c.mu.Lock()
		if c.closed || c.hovered || !c.running || gen != c.autoGen {
			c.mu.Unlock()
			return
		}
		c.auto = nil
		from, jumped := c.internal, c.settleLocked()
		snap := c.navigateLocked(c.internal + 1)
		if jumped {
			snap.Jump = true
			snap.JumpTo = c.realSlotFor(from)
		}
		c.mu.Unlock()

		c.notify(snap)
	})
}

func (c *Carousel) stopAutoLocked() {
	c.autoGen++
	if c.auto != nil {
		c.auto.Stop()
		c.auto = nil
	}
}

// PointerEnter suspends auto-advance entirely while the pointer is over
// the carousel.
func (c *Carousel) PointerEnter() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hovered = true
	c.stopAutoLocked()
}

// PointerLeave resumes auto-advance with a fresh interval.
func (c *Carousel) PointerLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hovered {
		return
	}
	c.hovered = false
	if c.running && !c.closed {
		c.cycleStart = c.sched.Now()
		c.armAutoLocked()
	}
}

// Hovered reports whether auto-advance is suspended by the pointer.
func (c *Carousel) Hovered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hovered
}

// Progress returns the progress bar fill in percent. It restarts from 0 on
// every slide change and reaches 100 when the next auto-advance is due.
func (c *Carousel) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	elapsed := c.sched.Now().Sub(c.cycleStart)
	if elapsed <= 0 {
		return 0
	}
	p := float64(elapsed) / float64(c.interval) * 100
	if p > 100 {
		return 100
	}
	return p
}

// Active returns the displayed item index.
func (c *Carousel) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ToReal(c.internal, c.n)
}

// Snapshot returns the current presentation state.
func (c *Carousel) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Carousel) snapshotLocked() Snapshot {
	return Snapshot{
		Internal: c.internal,
		Active:   ToReal(c.internal, c.n),
		State:    StateOf(c.internal, c.n),
		Animate:  c.animate,
	}
}

// Dots returns one indicator per real slide.
func (c *Carousel) Dots() []Dot {
	active := c.Active()
	dots := make([]Dot, c.n)
	for i := range dots {
		dots[i] = Dot{Index: i, Active: i == active}
	}
	return dots
}

// Close stops every timer. The carousel ignores input afterwards.
func (c *Carousel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.running = false
	c.cancelSnapLocked()
	c.stopAutoLocked()
}

func (c *Carousel) notify(s Snapshot) {
	if c.onChange != nil {
		c.onChange(s)
	}
}
