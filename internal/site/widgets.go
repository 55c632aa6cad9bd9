package site

import (
	"github.com/wayfindr/studio/internal/content"
	"github.com/wayfindr/studio/internal/pages"
	"github.com/wayfindr/studio/internal/widget/carousel"
	"github.com/wayfindr/studio/internal/widget/clipboard"
	"github.com/wayfindr/studio/internal/widget/reveal"
	"github.com/wayfindr/studio/internal/widget/rotator"
)

// revealWidget is a text block split into the lines the reveal animates.
// Lines start fully revealed; the client hides them once it measures.
type revealWidget struct {
	Text       string
	Lines      []string
	Breakpoint int
}

func (r *Renderer) revealView(text string) revealWidget {
	bp := r.opts.Widgets.MobileBreakpoint
	if bp <= 0 {
		bp = reveal.MobileBreakpoint
	}
	return revealWidget{Text: text, Lines: reveal.SplitLines(text), Breakpoint: bp}
}

// copyWidget is a copy-to-clipboard control.
type copyWidget struct {
	Text      string
	Idle      string
	Hint      string
	Copied    string
	PointerMS int64
	TouchMS   int64
	FadeMS    int64
}

// copyView builds a copy control whose resting label is the text itself.
func (r *Renderer) copyView(text string) copyWidget {
	w := r.opts.Widgets
	pointer, touch := w.CopyConfirmPointer, w.CopyConfirmTouch
	if pointer <= 0 {
		pointer = clipboard.PointerConfirm
	}
	if touch <= 0 {
		touch = clipboard.TouchConfirm
	}
	return copyWidget{
		Text:      text,
		Idle:      text,
		Hint:      clipboard.HintLabel,
		Copied:    clipboard.CopiedLabel,
		PointerMS: pointer.Milliseconds(),
		TouchMS:   touch.Milliseconds(),
		FadeMS:    clipboard.FadeDuration.Milliseconds(),
	}
}

type carouselSlot struct {
	Internal int
	Real     int
	Clone    bool
	Label    string
}

// carouselWidget is the initial markup state of a looping carousel.
type carouselWidget struct {
	Slots        []carouselSlot
	Dots         []carousel.Dot
	Offset       float64
	IntervalMS   int64
	TransitionMS int64
}

// carouselView lays out labels as carousel slots. It returns nil for an
// empty list, which the templates skip.
func (r *Renderer) carouselView(labels []string) *carouselWidget {
	w := r.opts.Widgets
	c, err := carousel.New(len(labels), carousel.Options{
		Interval:   w.AutoAdvance,
		Transition: w.Transition,
	})
	if err != nil {
		return nil
	}
	defer c.Close()

	interval, transition := w.AutoAdvance, w.Transition
	if interval <= 0 {
		interval = carousel.DefaultInterval
	}
	if transition <= 0 {
		transition = carousel.DefaultTransition
	}

	n := len(labels)
	view := &carouselWidget{
		Dots:         c.Dots(),
		Offset:       c.Snapshot().Offset(),
		IntervalMS:   interval.Milliseconds(),
		TransitionMS: transition.Milliseconds(),
	}
	for i, label := range carousel.Slots(labels) {
		view.Slots = append(view.Slots, carouselSlot{
			Internal: i,
			Real:     carousel.ToReal(i, n),
			Clone:    carousel.StateOf(i, n) != carousel.AtRealItem,
			Label:    label,
		})
	}
	return view
}

type homeView struct {
	*pages.Home
	// Marquee is the brand list twice over, so the scroll loops seamlessly.
	Marquee []content.Brand
	Intro   revealWidget
}

const homeIntro = "Wayfindr Studio is a strategic design agency. We combine Swiss precision with unexpected wit to build high-end digital experiences for reliable brands."

func (r *Renderer) homeView(h *pages.Home) homeView {
	marquee := make([]content.Brand, 0, 2*len(h.Brands))
	marquee = append(marquee, h.Brands...)
	marquee = append(marquee, h.Brands...)
	return homeView{
		Home:    h,
		Marquee: marquee,
		Intro:   r.revealView(homeIntro),
	}
}

type agencyView struct {
	*content.AgencyPage
	Industries  *carouselWidget
	Description revealWidget
}

func (r *Renderer) agencyView(a *content.AgencyPage) agencyView {
	return agencyView{
		AgencyPage:  a,
		Industries:  r.carouselView(a.Industries),
		Description: r.revealView(a.HeroDescription),
	}
}

type contactView struct {
	*pages.Contact
	Email copyWidget
}

func (r *Renderer) contactView(c *pages.Contact) contactView {
	return contactView{Contact: c, Email: r.copyView(c.Contact.Email)}
}

type projectView struct {
	*pages.ProjectPage
	Brief   revealWidget
	Results *revealWidget
}

func (r *Renderer) projectView(p *pages.ProjectPage) projectView {
	v := projectView{ProjectPage: p, Brief: r.revealView(p.Project.Brief)}
	if p.Project.Results != "" {
		res := r.revealView(p.Project.Results)
		v.Results = &res
	}
	return v
}

// navigatorTransform is the resting rotation of the header icon.
var navigatorTransform = rotator.Transform(0)
