// Package tracker picks the "active" entry of a vertical list from scroll
// position: the visible item whose focus point sits closest to a fixed
// anchor line in the viewport.
package tracker

import (
	"math"
	"sync"

	"github.com/wayfindr/studio/internal/widget/geom"
	"github.com/wayfindr/studio/internal/widget/timing"
)

const (
	// FocusBias places an item's focus point this far down its own height.
	FocusBias = 0.35
	// AnchorRatio places the viewport anchor this far down the viewport.
	AnchorRatio = 0.45
)

// Select returns the index of the item closest to the viewport anchor.
// Items entirely above or below the viewport are skipped. Ties go to the
// earlier item. When nothing qualifies, prev is returned unchanged.
func Select(items []geom.Rect, viewportHeight float64, prev int) int {
	anchor := viewportHeight * AnchorRatio
	best := prev
	bestDistance := math.Inf(1)

	for i, r := range items {
		if !r.IntersectsViewport(viewportHeight) {
			continue
		}
		focus := r.Top() + r.AbsHeight()*FocusBias
		d := math.Abs(focus - anchor)
		if d < bestDistance {
			bestDistance = d
			best = i
		}
	}
	return best
}

// Measurer samples the current item geometry. The slice is in list order.
type Measurer interface {
	Measure() (items []geom.Rect, viewportHeight float64)
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func() ([]geom.Rect, float64)

func (f MeasureFunc) Measure() ([]geom.Rect, float64) { return f() }

// Tracker keeps the active index for one list, recomputing it at most once
// per frame while scroll or resize events arrive.
type Tracker struct {
	measure  Measurer
	throttle *timing.FrameThrottle

	mu       sync.Mutex
	active   int
	onChange func(int)
}

// New returns a tracker starting at index 0. Call Update once after the
// list is laid out, then OnScroll for every scroll and resize event.
func New(m Measurer, frames timing.FrameRequester) *Tracker {
	t := &Tracker{measure: m}
	t.throttle = timing.NewFrameThrottle(frames, func() { t.Update() })
	return t
}

// OnChange registers a callback invoked with the new index whenever the
// active item changes.
func (t *Tracker) OnChange(f func(int)) {
	t.mu.Lock()
	t.onChange = f
	t.mu.Unlock()
}

// Active returns the current active index.
func (t *Tracker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// OnScroll requests a recomputation on the next frame.
func (t *Tracker) OnScroll() {
	t.throttle.Request()
}

// Update measures and recomputes immediately. It reports the active index
// and whether it changed.
func (t *Tracker) Update() (int, bool) {
	items, vh := t.measure.Measure()

	t.mu.Lock()
	next := Select(items, vh, t.active)
	changed := next != t.active
	t.active = next
	cb := t.onChange
	t.mu.Unlock()

	if changed && cb != nil {
		cb(next)
	}
	return next, changed
}

// Close releases any pending frame.
func (t *Tracker) Close() {
	t.throttle.Close()
}
