package rotator

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/wayfindr/studio/internal/widget/geom"
	"github.com/wayfindr/studio/internal/widget/timing"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTargetAngle(t *testing.T) {
	c := geom.Point{X: 100, Y: 100}
	assert.InDelta(t, 45, TargetAngle(c, geom.Point{X: 200, Y: 100}), 1e-9)  // right
	assert.InDelta(t, 135, TargetAngle(c, geom.Point{X: 100, Y: 200}), 1e-9) // below
	assert.InDelta(t, 225, TargetAngle(c, geom.Point{X: 0, Y: 100}), 1e-9)   // left
	assert.InDelta(t, -45, TargetAngle(c, geom.Point{X: 100, Y: 0}), 1e-9)   // above
}

func TestShortestDelta(t *testing.T) {
	assert.InDelta(t, 20, ShortestDelta(170, -170), 1e-9)
	assert.InDelta(t, -20, ShortestDelta(-170, 170), 1e-9)
	assert.InDelta(t, 10, ShortestDelta(710, 0), 1e-9)
	assert.InDelta(t, 0, ShortestDelta(45, 405), 1e-9)
}

func TestStepNeverTakesTheLongWay(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	rot := New()
	for i := 0; i < 2000; i++ {
		if i%15 == 0 {
			rot.SetTarget(r.Float64()*720 - 360)
		}
		before := rot.Current()
		after := rot.Step()
		require.LessOrEqual(t, math.Abs(after-before), 180.0, "step %d", i)
	}
}

func TestStepConverges(t *testing.T) {
	rot := New()
	rot.SetTarget(170)
	rot.Step()
	rot.SetTarget(-170) // across the seam: should go +20, not -340

	prev := rot.Current()
	for i := 0; i < 200; i++ {
		cur := rot.Step()
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
	assert.InDelta(t, 0, ShortestDelta(rot.Current(), -170), 1e-6)
	assert.InDelta(t, 190, rot.Current(), 1e-6)
}

func TestStepEasesByFixedFraction(t *testing.T) {
	rot := New()
	rot.SetTarget(100)
	assert.InDelta(t, 15, rot.Step(), 1e-9)
	assert.InDelta(t, 15+85*Smoothing, rot.Step(), 1e-9)
}

func TestSetPointerIgnoredOnNarrowViewports(t *testing.T) {
	rot := New()
	c := geom.Point{X: 0, Y: 0}
	assert.False(t, rot.SetPointer(c, geom.Point{X: 0, Y: 10}, 767))
	assert.Equal(t, 0.0, rot.Target())

	assert.True(t, rot.SetPointer(c, geom.Point{X: 0, Y: 10}, 768))
	assert.InDelta(t, 135, rot.Target(), 1e-9)
}

func TestLoopRunsEveryFrameUntilStopped(t *testing.T) {
	s := timing.NewManualScheduler(time.Time{})
	rot := New()
	rot.SetTarget(90)

	var seen []float64
	h := rot.Start(timing.SchedulerFrames{Scheduler: s}, func(d float64) { seen = append(seen, d) })
	require.True(t, rot.Running())

	s.Advance(5 * timing.FrameInterval)
	assert.Len(t, seen, 5)
	assert.Equal(t, 1, s.Pending())

	h.Release()
	assert.False(t, rot.Running())
	assert.Equal(t, 0, s.Pending())

	s.Advance(time.Second)
	assert.Len(t, seen, 5)
}

func TestStartTwiceKeepsOneLoop(t *testing.T) {
	s := timing.NewManualScheduler(time.Time{})
	rot := New()
	frames := 0
	rot.Start(timing.SchedulerFrames{Scheduler: s}, func(float64) { frames++ })
	rot.Start(timing.SchedulerFrames{Scheduler: s}, func(float64) { frames += 100 })

	s.Advance(3 * timing.FrameInterval)
	assert.Equal(t, 3, frames)
	rot.Stop()
}

func TestTransform(t *testing.T) {
	assert.Equal(t, "rotate(45.00deg)", Transform(45))
	assert.Equal(t, "rotate(-12.35deg)", Transform(-12.346))
}
