// Package rotator turns an icon to point at the pointer, easing the
// displayed angle toward the target a fraction at a time each frame.
package rotator

import (
	"math"
	"strconv"
	"sync"

	"github.com/wayfindr/studio/internal/widget/geom"
	"github.com/wayfindr/studio/internal/widget/timing"
)

const (
	// Smoothing is the share of the remaining angle covered per frame.
	Smoothing = 0.15
	// IconOffset compensates for the artwork pointing north-east at 0°.
	IconOffset = 45.0
	// MinViewportWidth disables pointer following on narrower viewports.
	MinViewportWidth = 768.0
)

// TargetAngle returns the rotation in degrees that points an icon centred
// at center toward pointer.
func TargetAngle(center, pointer geom.Point) float64 {
	rad := math.Atan2(pointer.Y-center.Y, pointer.X-center.X)
	return rad*180/math.Pi + IconOffset
}

// ShortestDelta returns the signed rotation in [-180, 180] that takes from
// to the same heading as to.
func ShortestDelta(from, to float64) float64 {
	return math.Remainder(to-from, 360)
}

// Transform formats a CSS rotate() value.
func Transform(deg float64) string {
	return "rotate(" + strconv.FormatFloat(deg, 'f', 2, 64) + "deg)"
}

// Rotator holds the target and displayed angles of one icon. The displayed
// angle is not normalised, so CSS transitions never unwind a full turn.
type Rotator struct {
	mu        sync.Mutex
	target    float64
	current   float64
	minWidth  float64
	smoothing float64

	frames  timing.FrameRequester
	onFrame func(float64)
	cancel  func()
	gen     uint64
	running bool
}

// New returns a rotator at 0° with the default smoothing and width gate.
func New() *Rotator {
	return &Rotator{minWidth: MinViewportWidth, smoothing: Smoothing}
}

// SetPointer updates the target from a pointer move. Moves are ignored
// below the minimum viewport width; the return value reports whether the
// target changed.
func (r *Rotator) SetPointer(iconCenter, pointer geom.Point, viewportWidth float64) bool {
	if viewportWidth < r.minWidth {
		return false
	}
	r.SetTarget(TargetAngle(iconCenter, pointer))
	return true
}

func (r *Rotator) SetTarget(deg float64) {
	r.mu.Lock()
	r.target = deg
	r.mu.Unlock()
}

func (r *Rotator) Target() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target
}

func (r *Rotator) Current() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Step advances the displayed angle by one frame and returns it.
func (r *Rotator) Step() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stepLocked()
}

func (r *Rotator) stepLocked() float64 {
	r.current += ShortestDelta(r.current, r.target) * r.smoothing
	return r.current
}

// Start runs Step on every frame until Stop, passing each new angle to
// onFrame. Starting a running rotator is a no-op. The returned handle
// stops the loop when released.
func (r *Rotator) Start(frames timing.FrameRequester, onFrame func(float64)) *timing.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		r.running = true
		r.frames = frames
		r.onFrame = onFrame
		r.gen++
		r.requestLocked(r.gen)
	}
	return timing.NewHandle(r.Stop)
}

func (r *Rotator) requestLocked(gen uint64) {
	r.cancel = r.frames.RequestFrame(func() { r.frame(gen) })
}

func (r *Rotator) frame(gen uint64) {
	r.mu.Lock()
	if !r.running || gen != r.gen {
		r.mu.Unlock()
		return
	}
	deg := r.stepLocked()
	cb := r.onFrame
	r.requestLocked(gen)
	r.mu.Unlock()

	if cb != nil {
		cb(deg)
	}
}

// Running reports whether the frame loop is active.
func (r *Rotator) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Stop cancels the pending frame and ends the loop.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}
	r.running = false
	r.gen++
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
