//go:build js && wasm

package dom

import (
	"context"
	"fmt"
	"syscall/js"

	"go.uber.org/zap"

	"github.com/wayfindr/studio/internal/widget/carousel"
	"github.com/wayfindr/studio/internal/widget/clipboard"
	"github.com/wayfindr/studio/internal/widget/geom"
	"github.com/wayfindr/studio/internal/widget/reveal"
	"github.com/wayfindr/studio/internal/widget/rotator"
	"github.com/wayfindr/studio/internal/widget/timing"
	"github.com/wayfindr/studio/internal/widget/tracker"
)

// Page owns every widget mounted on the current document.
type Page struct {
	log    *zap.Logger
	frames timing.FrameRequester
	group  timing.Group
}

// Mount binds every data-widget element in the document. Widgets that fail
// to bind are logged and left as rendered.
func Mount(log *zap.Logger) *Page {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Page{log: log, frames: AnimationFrames{}}
	doc := js.Global().Get("document")

	binders := map[string]func(js.Value) error{
		"tracker":     p.bindTracker,
		"reveal":      p.bindReveal,
		"carousel":    p.bindCarousel,
		"rotator":     p.bindRotator,
		"copy":        p.bindCopy,
		"scroll-hint": p.bindScrollHint,
	}
	mounted := 0
	for _, el := range queryAll(doc, "[data-widget]") {
		kind := data(el, "widget")
		bind, ok := binders[kind]
		if !ok {
			log.Debug("unknown widget", zap.String("widget", kind))
			continue
		}
		if err := bind(el); err != nil {
			log.Warn("widget not mounted", zap.String("widget", kind), zap.Error(err))
			continue
		}
		mounted++
	}
	log.Debug("widgets mounted", zap.Int("count", mounted))
	return p
}

// Close releases every listener, timer and frame callback.
func (p *Page) Close() {
	p.group.Release()
}

// onViewportChange runs fn at most once per frame for scroll and resize.
func (p *Page) onViewportChange(fn func()) {
	th := timing.NewFrameThrottle(p.frames, fn)
	win := js.Global()
	p.group.Add(timing.NewHandle(th.Close))
	p.group.Add(listen(win, "scroll", func(js.Value) { th.Request() }))
	p.group.Add(listen(win, "resize", func(js.Value) { th.Request() }))
}

func (p *Page) bindTracker(root js.Value) error {
	items := queryAll(root, ".capability")
	if len(items) == 0 {
		return fmt.Errorf("no items")
	}
	t := tracker.New(tracker.MeasureFunc(func() ([]geom.Rect, float64) {
		rects := make([]geom.Rect, len(items))
		for i, el := range items {
			rects[i] = rect(el)
		}
		_, h := viewport()
		return rects, h
	}), p.frames)
	t.OnChange(func(active int) {
		for i, el := range items {
			toggleClass(el, "is-active", i == active)
		}
	})
	t.Update()

	win := js.Global()
	p.group.Add(timing.NewHandle(t.Close))
	p.group.Add(listen(win, "scroll", func(js.Value) { t.OnScroll() }))
	p.group.Add(listen(win, "resize", func(js.Value) { t.OnScroll() }))
	return nil
}

func (p *Page) bindReveal(root js.Value) error {
	text, ok := query(root, ".sr-only")
	if !ok {
		return fmt.Errorf("no source text")
	}
	fills := queryAll(root, ".reveal-fill")
	r := reveal.New(text.Get("textContent").String())
	if len(r.Lines()) != len(fills) {
		return fmt.Errorf("%d lines rendered, %d expected", len(fills), len(r.Lines()))
	}
	r.Breakpoint = float64(dataInt(root, "breakpoint", reveal.MobileBreakpoint))

	update := func() {
		w, h := viewport()
		r.Resize(w)
		for i, v := range r.Scroll(rect(root).Top(), h) {
			setStyle(fills[i], "--progress", formatFloat(v))
		}
	}
	update()
	p.onViewportChange(update)
	return nil
}

func (p *Page) bindScrollHint(root js.Value) error {
	update := func() {
		setStyle(root, "opacity", formatFloat(reveal.HintOpacity(js.Global().Get("scrollY").Float())))
	}
	update()
	p.onViewportChange(update)
	return nil
}

func (p *Page) bindRotator(root js.Value) error {
	icon, ok := query(root, ".navigator-icon")
	if !ok {
		return fmt.Errorf("no icon")
	}
	rot := rotator.New()
	p.group.Add(listen(js.Global(), "pointermove", func(ev js.Value) {
		w, _ := viewport()
		pointer := geom.Point{X: ev.Get("clientX").Float(), Y: ev.Get("clientY").Float()}
		rot.SetPointer(rect(icon).Center(), pointer, w)
	}))
	p.group.Add(listen(root, "click", func(js.Value) {
		js.Global().Call("scrollTo", map[string]any{"top": 0, "behavior": "smooth"})
	}))
	p.group.Add(rot.Start(p.frames, func(deg float64) {
		setStyle(icon, "transform", rotator.Transform(deg))
	}))
	return nil
}

func (p *Page) bindCarousel(root js.Value) error {
	track, ok := query(root, ".carousel-track")
	if !ok {
		return fmt.Errorf("no track")
	}
	dots := queryAll(root, ".carousel-dot")
	bar, hasBar := query(root, ".carousel-progress-bar")

	paint := func(s carousel.Snapshot) {
		if s.Jump {
			toggleClass(track, "is-snapping", true)
			setStyle(track, "transform", translateX(carousel.Snapshot{Internal: s.JumpTo}.Offset()))
			// Force layout so the jump lands before the animated move.
			track.Get("offsetWidth")
		}
		toggleClass(track, "is-snapping", !s.Animate)
		setStyle(track, "transform", translateX(s.Offset()))
		for i, el := range dots {
			toggleClass(el, "is-active", i == s.Active)
		}
	}

	c, err := carousel.New(len(dots), carousel.Options{
		Interval:   dataMillis(root, "interval"),
		Transition: dataMillis(root, "transition"),
		OnChange:   paint,
	})
	if err != nil {
		return err
	}
	p.group.Add(timing.NewHandle(c.Close))

	p.group.Add(listen(root, "pointerenter", func(js.Value) { c.PointerEnter() }))
	p.group.Add(listen(root, "pointerleave", func(js.Value) { c.PointerLeave() }))
	if prev, ok := query(root, `[data-action="prev"]`); ok {
		p.group.Add(listen(prev, "click", func(js.Value) { c.Retreat() }))
	}
	if next, ok := query(root, `[data-action="next"]`); ok {
		p.group.Add(listen(next, "click", func(js.Value) { c.Advance() }))
	}
	for i, el := range dots {
		p.group.Add(listen(el, "click", func(js.Value) {
			if _, err := c.GoTo(i); err != nil {
				p.log.Debug("carousel dot", zap.Error(err))
			}
		}))
	}

	if hasBar {
		var cancel func()
		var frame func()
		frame = func() {
			setStyle(bar, "--progress", formatFloat(c.Progress()/100))
			cancel = p.frames.RequestFrame(frame)
		}
		cancel = p.frames.RequestFrame(frame)
		p.group.Add(timing.NewHandle(func() { cancel() }))
	}

	c.Start()
	return nil
}

func (p *Page) bindCopy(root js.Value) error {
	text := data(root, "text")
	if text == "" {
		return fmt.Errorf("nothing to copy")
	}
	bubble, ok := query(root, ".copy-bubble")
	if !ok {
		return fmt.Errorf("no bubble")
	}

	ctrl := clipboard.New(ClipboardWriter{}, clipboard.Options{
		PointerConfirm: dataMillis(root, "pointerMs"),
		TouchConfirm:   dataMillis(root, "touchMs"),
		Fade:           dataMillis(root, "fadeMs"),
		IdleLabel:      data(root, "hint"),
		Logger:         p.log,
		OnChange: func(st clipboard.State) {
			bubble.Set("textContent", st.Label)
			toggleClass(root, "is-confirmed", st.Confirmed())
			opacity := "0"
			if st.BubbleVisible {
				opacity = "1"
			}
			setStyle(bubble, "opacity", opacity)
			setStyle(bubble, "scale", formatFloat(st.Scale))
		},
	})
	p.group.Add(timing.NewHandle(ctrl.Close))

	in := clipboard.Pointer
	if touchCapable() {
		in = clipboard.Touch
	}
	p.group.Add(listen(root, "pointerenter", func(js.Value) { ctrl.Hover(true) }))
	p.group.Add(listen(root, "pointerleave", func(js.Value) { ctrl.Hover(false) }))
	p.group.Add(listen(root, "click", func(js.Value) {
		// The clipboard promise settles on the event loop, which this
		// callback is holding.
		go ctrl.Copy(context.Background(), text, in)
	}))
	return nil
}

func translateX(percent float64) string {
	return fmt.Sprintf("translateX(%.2f%%)", percent)
}
