package tracker

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfindr/studio/internal/widget/geom"
	"github.com/wayfindr/studio/internal/widget/timing"
)

// stack lays out items of the given heights top to bottom starting at y.
func stack(y float64, heights ...float64) []geom.Rect {
	rects := make([]geom.Rect, len(heights))
	for i, h := range heights {
		rects[i] = geom.Rect{X: 0, Y: y, Width: 800, Height: h}
		y += h
	}
	return rects
}

func TestSelectNearestFocusPoint(t *testing.T) {
	// Viewport 1000: anchor at 450.
	// Item 0 focus: -100 + 70 = -30; item 1: 100 + 70 = 170;
	// item 2: 300 + 70 = 370; item 3: 500 + 70 = 570.
	items := stack(-100, 200, 200, 200, 200)
	assert.Equal(t, 2, Select(items, 1000, 0))
}

func TestSelectSkipsOffscreenItems(t *testing.T) {
	items := []geom.Rect{
		{Y: -500, Height: 100}, // entirely above
		{Y: 2000, Height: 100}, // entirely below
		{Y: 800, Height: 100},  // visible, far from anchor
	}
	assert.Equal(t, 2, Select(items, 1000, 0))
}

func TestSelectRetainsPreviousWhenNothingVisible(t *testing.T) {
	items := []geom.Rect{
		{Y: -500, Height: 100},
		{Y: 1200, Height: 100},
	}
	assert.Equal(t, 7, Select(items, 1000, 7))
	assert.Equal(t, 3, Select(nil, 1000, 3))
}

func TestSelectTieGoesToFirst(t *testing.T) {
	// Both focus points are 50px from the anchor at 450.
	items := []geom.Rect{
		{Y: 400 - 35, Height: 100}, // focus 400
		{Y: 500 - 35, Height: 100}, // focus 500
	}
	assert.Equal(t, 0, Select(items, 1000, 1))
}

func TestSelectEdgeTouchingCounts(t *testing.T) {
	items := []geom.Rect{
		{Y: -100, Height: 100}, // bottom == 0
	}
	assert.Equal(t, 0, Select(items, 1000, 5))
}

func TestSelectMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for iter := 0; iter < 500; iter++ {
		vh := 400 + r.Float64()*800
		n := 1 + r.Intn(8)
		items := make([]geom.Rect, n)
		for i := range items {
			items[i] = geom.Rect{Y: r.Float64()*3000 - 1500, Height: 20 + r.Float64()*400}
		}
		prev := r.Intn(n)

		want := prev
		bestD := math.Inf(1)
		for i, it := range items {
			if it.Y+it.Height < 0 || it.Y > vh {
				continue
			}
			d := math.Abs(it.Y + 0.35*it.Height - 0.45*vh)
			if d < bestD {
				bestD = d
				want = i
			}
		}
		require.Equal(t, want, Select(items, vh, prev), "iteration %d", iter)
	}
}

func TestTrackerThrottlesToOneUpdatePerFrame(t *testing.T) {
	s := timing.NewManualScheduler(time.Time{})
	measures := 0
	offset := 0.0
	m := MeasureFunc(func() ([]geom.Rect, float64) {
		measures++
		return stack(offset, 300, 300, 300, 300), 1000
	})

	tr := New(m, timing.SchedulerFrames{Scheduler: s})
	defer tr.Close()

	var changes []int
	tr.OnChange(func(i int) { changes = append(changes, i) })

	idx, changed := tr.Update()
	assert.Equal(t, 1, idx) // focus points 105, 405, ... ; 405 nearest to 450
	assert.True(t, changed)
	measures = 0

	offset = -300
	for i := 0; i < 10; i++ {
		tr.OnScroll()
	}
	s.Advance(timing.FrameInterval)

	assert.Equal(t, 1, measures)
	assert.Equal(t, 2, tr.Active())
	assert.Equal(t, []int{1, 2}, changes)
}

func TestTrackerCloseCancelsPendingFrame(t *testing.T) {
	s := timing.NewManualScheduler(time.Time{})
	measures := 0
	tr := New(MeasureFunc(func() ([]geom.Rect, float64) {
		measures++
		return nil, 1000
	}), timing.SchedulerFrames{Scheduler: s})

	tr.OnScroll()
	tr.Close()
	s.Advance(time.Second)

	assert.Equal(t, 0, measures)
	assert.Equal(t, 0, s.Pending())
}
