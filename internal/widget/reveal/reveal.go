// Package reveal computes the left-to-right, line-by-line reveal of a text
// block as it scrolls through the viewport.
package reveal

import (
	"strings"
	"sync"

	"github.com/wayfindr/studio/internal/widget/geom"
)

const (
	// WordsPerLine is the fixed chunk size used to break text into lines.
	WordsPerLine = 7
	// MobileBreakpoint is the viewport width below which the effect is off.
	MobileBreakpoint = 768
	// HintFadeDistance is how far the page scrolls before the hero's scroll
	// hint has faded out completely.
	HintFadeDistance = 200
)

// SplitLines groups the words of text into lines of WordsPerLine words.
// Runs of whitespace collapse; empty text yields no lines.
func SplitLines(text string) []string {
	words := strings.Fields(text)
	lines := make([]string, 0, (len(words)+WordsPerLine-1)/WordsPerLine)
	for i := 0; i < len(words); i += WordsPerLine {
		end := i + WordsPerLine
		if end > len(words) {
			end = len(words)
		}
		lines = append(lines, strings.Join(words[i:end], " "))
	}
	return lines
}

// Overall maps the container's top offset to block progress: 0 while the
// top edge is at (or below) the bottom of the viewport, 1 once it reaches
// the top.
func Overall(top, viewportHeight float64) float64 {
	if viewportHeight <= 0 {
		return 0
	}
	return geom.Clamp(1-top/viewportHeight, 0, 1)
}

// LineProgress maps overall progress p onto line i of n. Each line owns the
// slice [i/n, (i+1)/n] of the scroll distance.
func LineProgress(p float64, i, n int) float64 {
	if n <= 0 {
		return 0
	}
	start := float64(i) / float64(n)
	span := 1 / float64(n)
	return geom.Clamp((p-start)/span, 0, 1)
}

// Progresses returns LineProgress for every line of n.
func Progresses(p float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = LineProgress(p, i, n)
	}
	return out
}

// ClipInset returns the right-hand inset percentage for a clip mask that
// shows the first progress fraction of a line.
func ClipInset(progress float64) float64 {
	return 100 - geom.Clamp(progress, 0, 1)*100
}

// HintOpacity returns the scroll hint's opacity at page offset scrollY.
func HintOpacity(scrollY float64) float64 {
	return geom.Clamp(1-scrollY/HintFadeDistance, 0, 1)
}

// Reveal holds one text block's lines and its latest per-line progress.
type Reveal struct {
	// Breakpoint overrides MobileBreakpoint when positive.
	Breakpoint float64

	mu       sync.Mutex
	lines    []string
	progress []float64
	disabled bool
}

// New splits text into lines. All lines start unrevealed.
func New(text string) *Reveal {
	lines := SplitLines(text)
	return &Reveal{
		lines:    lines,
		progress: make([]float64, len(lines)),
	}
}

// Lines returns the text lines.
func (r *Reveal) Lines() []string {
	return r.lines
}

// Resize toggles the effect for the given viewport width. Narrow viewports
// render the text statically, fully revealed.
func (r *Reveal) Resize(viewportWidth float64) {
	bp := r.Breakpoint
	if bp <= 0 {
		bp = MobileBreakpoint
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disabled = viewportWidth < bp
	if r.disabled {
		for i := range r.progress {
			r.progress[i] = 1
		}
	}
}

// Disabled reports whether the block is rendering statically.
func (r *Reveal) Disabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.disabled
}

// Scroll recomputes progress from the container's top offset and returns a
// copy of the per-line values. While disabled it does no work.
func (r *Reveal) Scroll(containerTop, viewportHeight float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.disabled {
		p := Overall(containerTop, viewportHeight)
		for i := range r.progress {
			r.progress[i] = LineProgress(p, i, len(r.progress))
		}
	}
	return append([]float64(nil), r.progress...)
}

// Progress returns a copy of the latest per-line values.
func (r *Reveal) Progress() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]float64(nil), r.progress...)
}
