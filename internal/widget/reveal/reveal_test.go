package reveal

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	text := "one two three four five six seven eight nine   ten\n eleven"
	lines := SplitLines(text)
	require.Len(t, lines, 2)
	assert.Equal(t, "one two three four five six seven", lines[0])
	assert.Equal(t, "eight nine ten eleven", lines[1])

	assert.Empty(t, SplitLines("   "))
	assert.Len(t, SplitLines(strings.Repeat("w ", 14)), 2)
}

func TestOverall(t *testing.T) {
	assert.Equal(t, 0.0, Overall(1000, 1000))
	assert.Equal(t, 0.0, Overall(1500, 1000))
	assert.Equal(t, 0.5, Overall(500, 1000))
	assert.Equal(t, 1.0, Overall(0, 1000))
	assert.Equal(t, 1.0, Overall(-200, 1000))
	assert.Equal(t, 0.0, Overall(0, 0))
}

func TestLineProgressFormula(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 9} {
		for step := 0; step <= 100; step++ {
			p := float64(step) / 100
			for i := 0; i < n; i++ {
				want := math.Max(0, math.Min(1, (p-float64(i)/float64(n))/(1/float64(n))))
				assert.InDelta(t, want, LineProgress(p, i, n), 1e-9, "p=%v i=%d n=%d", p, i, n)
			}
		}
	}
}

func TestLineProgressEndpointsAndMonotonic(t *testing.T) {
	const n = 4
	for i := 0; i < n; i++ {
		assert.Equal(t, 0.0, LineProgress(0, i, n))
		assert.Equal(t, 1.0, LineProgress(1, i, n))
	}

	prev := Progresses(0, n)
	for step := 1; step <= 1000; step++ {
		cur := Progresses(float64(step)/1000, n)
		for i := range cur {
			require.GreaterOrEqual(t, cur[i], prev[i], "line %d regressed at step %d", i, step)
		}
		prev = cur
	}
}

func TestLinesRevealInOrder(t *testing.T) {
	ps := Progresses(0.6, 4)
	// Line 0 and 1 are done, line 2 is 40% through, line 3 untouched.
	assert.Equal(t, 1.0, ps[0])
	assert.Equal(t, 1.0, ps[1])
	assert.InDelta(t, 0.4, ps[2], 1e-9)
	assert.Equal(t, 0.0, ps[3])
}

func TestClipInset(t *testing.T) {
	assert.Equal(t, 100.0, ClipInset(0))
	assert.Equal(t, 25.0, ClipInset(0.75))
	assert.Equal(t, 0.0, ClipInset(1.2))
}

func TestRevealScroll(t *testing.T) {
	r := New(strings.Repeat("word ", 21)) // 3 lines
	r.Resize(1440)
	require.False(t, r.Disabled())
	require.Len(t, r.Lines(), 3)

	got := r.Scroll(500, 1000) // overall 0.5
	assert.Equal(t, 1.0, got[0])
	assert.InDelta(t, 0.5, got[1], 1e-9)
	assert.Equal(t, 0.0, got[2])
	assert.Equal(t, got, r.Progress())
}

func TestRevealDisabledOnMobile(t *testing.T) {
	r := New(strings.Repeat("word ", 14))
	r.Resize(375)
	require.True(t, r.Disabled())

	assert.Equal(t, []float64{1, 1}, r.Scroll(900, 1000))

	r.Resize(1024)
	assert.False(t, r.Disabled())
	assert.Equal(t, []float64{0, 0}, r.Scroll(1000, 1000))
}

func TestRevealCustomBreakpoint(t *testing.T) {
	r := New("a b c")
	r.Breakpoint = 1200
	r.Resize(1024)
	assert.True(t, r.Disabled())
}

func TestHintOpacity(t *testing.T) {
	assert.Equal(t, 1.0, HintOpacity(0))
	assert.InDelta(t, 0.5, HintOpacity(100), 1e-9)
	assert.Equal(t, 0.0, HintOpacity(200))
	assert.Equal(t, 0.0, HintOpacity(5000))
	assert.Equal(t, 1.0, HintOpacity(-40))
}
