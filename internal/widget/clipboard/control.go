// Package clipboard implements a copy-to-clipboard button: write the text,
// show a confirmation for a while, fade the bubble out, then restore the
// label.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wayfindr/studio/internal/widget/timing"
)

const (
	// PointerConfirm is how long the confirmation stays after a mouse click.
	PointerConfirm = 2 * time.Second
	// TouchConfirm is the shorter confirmation used after a tap.
	TouchConfirm = 1200 * time.Millisecond
	// FadeDuration is the bubble fade-out that precedes the label change.
	FadeDuration = 300 * time.Millisecond

	HintLabel   = "Click to copy"
	CopiedLabel = "Copied! ✓"
)

var ErrClosed = errors.New("clipboard: control closed")

// Writer writes text to a clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, text string) error

func (f WriterFunc) WriteText(ctx context.Context, text string) error { return f(ctx, text) }

// Input is the kind of activation that triggered a copy.
type Input int

const (
	Pointer Input = iota
	Touch
)

// Phase is the confirmation lifecycle.
type Phase int

const (
	Idle Phase = iota
	Confirmed
	Fading
)

func (p Phase) String() string {
	switch p {
	case Confirmed:
		return "confirmed"
	case Fading:
		return "fading"
	default:
		return "idle"
	}
}

// State is what the button renders.
type State struct {
	Phase   Phase
	Hovered bool
	Label   string
	// BubbleVisible drives the bubble's opacity.
	BubbleVisible bool
	// Scale is the bubble's CSS scale.
	Scale float64
}

// Confirmed reports whether the confirmation is showing.
func (s State) Confirmed() bool { return s.Phase == Confirmed }

type Options struct {
	PointerConfirm time.Duration
	TouchConfirm   time.Duration
	Fade           time.Duration
	// IdleLabel replaces HintLabel, e.g. with the address itself on mobile.
	IdleLabel string
	Scheduler timing.Scheduler
	Logger    *zap.Logger
	OnChange  func(State)
}

// Control is one copy button.
type Control struct {
	w         Writer
	pointer   time.Duration
	touch     time.Duration
	fade      time.Duration
	idleLabel string
	sched     timing.Scheduler
	log       *zap.Logger
	onChange  func(State)

	mu      sync.Mutex
	phase   Phase
	hovered bool
	timer   timing.Timer
	gen     uint64
	lastErr error
	closed  bool
}

func New(w Writer, opts Options) *Control {
	if opts.PointerConfirm <= 0 {
		opts.PointerConfirm = PointerConfirm
	}
	if opts.TouchConfirm <= 0 {
		opts.TouchConfirm = TouchConfirm
	}
	if opts.Fade <= 0 {
		opts.Fade = FadeDuration
	}
	if opts.IdleLabel == "" {
		opts.IdleLabel = HintLabel
	}
	if opts.Scheduler == nil {
		opts.Scheduler = timing.RealScheduler{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Control{
		w:         w,
		pointer:   opts.PointerConfirm,
		touch:     opts.TouchConfirm,
		fade:      opts.Fade,
		idleLabel: opts.IdleLabel,
		sched:     opts.Scheduler,
		log:       opts.Logger,
		onChange:  opts.OnChange,
	}
}

// Copy writes text and starts the confirmation. A failed write is logged
// and leaves the display untouched; the error is returned for callers
// that want to surface it and kept for LastError.
func (c *Control) Copy(ctx context.Context, text string, in Input) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}

	if err := c.w.WriteText(ctx, text); err != nil {
		c.log.Warn("copy to clipboard failed", zap.Error(err))
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	hold := c.pointer
	if in == Touch {
		hold = c.touch
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.lastErr = nil
	c.gen++
	c.phase = Confirmed
	c.scheduleLocked(hold, Fading)
	st := c.stateLocked()
	c.mu.Unlock()

	c.notify(st)
	return nil
}

func (c *Control) scheduleLocked(d time.Duration, next Phase) {
	if c.timer != nil {
		c.timer.Stop()
	}
	gen := c.gen
	c.timer = c.sched.AfterFunc(d, func() {
		c.mu.Lock()
		if c.closed || gen != c.gen {
			c.mu.Unlock()
			return
		}
		c.timer = nil
		c.phase = next
		if next == Fading {
			c.scheduleLocked(c.fade, Idle)
		}
		st := c.stateLocked()
		c.mu.Unlock()

		c.notify(st)
	})
}

// Hover sets the pointer-over state that reveals the hint bubble.
func (c *Control) Hover(over bool) {
	c.mu.Lock()
	if c.hovered == over {
		c.mu.Unlock()
		return
	}
	c.hovered = over
	st := c.stateLocked()
	c.mu.Unlock()

	c.notify(st)
}

// State returns the current display state.
func (c *Control) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Label returns the bubble text.
func (c *Control) Label() string { return c.State().Label }

// Confirmed reports whether the confirmation is showing.
func (c *Control) Confirmed() bool { return c.State().Confirmed() }

// LastError returns the error from the most recent failed copy, or nil
// once a later copy succeeds.
func (c *Control) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Control) stateLocked() State {
	st := State{
		Phase:         c.phase,
		Hovered:       c.hovered,
		Label:         c.idleLabel,
		BubbleVisible: c.hovered || c.phase == Confirmed,
		Scale:         0.9,
	}
	if c.phase != Idle {
		st.Label = CopiedLabel
	}
	switch {
	case c.phase == Confirmed:
		st.Scale = 1.1
	case c.hovered:
		st.Scale = 1
	}
	return st
}

// Close cancels the pending timer. Later copies return ErrClosed.
func (c *Control) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Control) notify(st State) {
	if c.onChange != nil {
		c.onChange(st)
	}
}
