// Package pages assembles the data each site page renders. Every query
// tolerates a failed or empty content source by substituting the built-in
// content, so a page only fails when its slug cannot be resolved at all.
package pages

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wayfindr/studio/internal/content"
)

// ErrNotFound is returned when a slug matches neither stored nor built-in
// content.
var ErrNotFound = errors.New("pages: not found")

// MaxRelatedProjects caps the projects listed on a service page.
const MaxRelatedProjects = 4

// FallbackEmail is used in the footer when no contact email is configured.
const FallbackEmail = "hello@wayfindr.com"

// Loader runs the content queries for each page.
type Loader struct {
	src content.Source
	log *zap.Logger
}

func NewLoader(src content.Source, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{src: src, log: log}
}

// fetch runs one query on g. A failed query is logged and leaves dst
// untouched; only cancellation of ctx is reported to the group.
func fetch[T any](ctx context.Context, l *Loader, g *errgroup.Group, query string, dst *T, f func(context.Context) (T, error)) {
	g.Go(func() error {
		v, err := f(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.log.Warn("content query failed, using fallback", zap.String("query", query), zap.Error(err))
			return nil
		}
		*dst = v
		return nil
	})
}

// Layout is the header and footer data shared by every page.
type Layout struct {
	SocialLinks []content.SocialLink
	Email       string
	AboutText   string
	// LogoURL is empty when the built-in logo should be drawn.
	LogoURL string
}

func (l *Loader) Layout(ctx context.Context) (*Layout, error) {
	var settings *content.SiteSettings
	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, l, g, "siteSettings", &settings, l.src.SiteSettings)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return layoutFrom(settings), nil
}

func layoutFrom(s *content.SiteSettings) *Layout {
	out := &Layout{
		SocialLinks: content.FallbackSocialLinks(),
		Email:       FallbackEmail,
		AboutText:   content.FallbackFooterAboutText,
	}
	if s == nil {
		return out
	}
	if len(s.SocialLinks) > 0 {
		out.SocialLinks = s.SocialLinks
	}
	if s.ContactInfo.Email != "" {
		out.Email = s.ContactInfo.Email
	}
	if s.FooterAboutText != "" {
		out.AboutText = s.FooterAboutText
	}
	out.LogoURL = s.FooterLogoSVG
	return out
}

// Home is the landing page: hero copy, the brand marquee, the three newest
// projects and the testimonials.
type Home struct {
	Title        string
	HeroLines    [3]string
	Brands       []content.Brand
	Lead         *content.Project
	Projects     []content.Project
	Testimonials []content.Testimonial
}

func (l *Loader) Home(ctx context.Context) (*Home, error) {
	var (
		hp           *content.Homepage
		brands       []content.Brand
		projects     []content.Project
		testimonials []content.Testimonial
	)
	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, l, g, "homepage", &hp, l.src.Homepage)
	fetch(gctx, l, g, "brands", &brands, l.src.Brands)
	fetch(gctx, l, g, "projects", &projects, l.src.Projects)
	fetch(gctx, l, g, "testimonials", &testimonials, l.src.Testimonials)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(brands) == 0 {
		brands = content.FallbackBrands()
	}
	if len(projects) == 0 {
		projects = content.FallbackProjects()
	}
	if len(testimonials) == 0 {
		testimonials = content.FallbackTestimonials()
	}

	h := &Home{
		Title:        content.DefaultSiteTitle,
		HeroLines:    [3]string{content.DefaultHeroLine1, content.DefaultHeroLine2, content.DefaultHeroLine3},
		Brands:       brands,
		Testimonials: testimonials,
	}
	if hp != nil {
		if strings.TrimSpace(hp.Title) != "" {
			h.Title = hp.Title
		}
		for i, line := range []string{hp.HeroLine1, hp.HeroLine2, hp.HeroLine3} {
			if line != "" {
				h.HeroLines[i] = line
			}
		}
	}
	h.Lead = &projects[0]
	if len(projects) > 1 {
		h.Projects = projects[1:min(3, len(projects))]
	}
	return h, nil
}

// Agency returns the agency page with its services attached.
func (l *Loader) Agency(ctx context.Context) (*content.AgencyPage, error) {
	var (
		page     *content.AgencyPage
		services []content.Service
	)
	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, l, g, "agencyPage", &page, l.src.AgencyPage)
	fetch(gctx, l, g, "services", &services, l.src.Services)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if page == nil {
		fb := content.FallbackAgencyPage()
		return &fb, nil
	}
	out := *page
	if len(out.Services) == 0 {
		out.Services = services
	}
	if len(out.Services) == 0 {
		out.Services = content.FallbackServices()
	}
	return &out, nil
}

// Work returns every project for the work listing.
func (l *Loader) Work(ctx context.Context) ([]content.Project, error) {
	var projects []content.Project
	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, l, g, "projects", &projects, l.src.Projects)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		projects = content.FallbackProjects()
	}
	return projects, nil
}

// ProjectPage is a case study with the project that follows it.
type ProjectPage struct {
	Project content.Project
	Next    content.Project
}

// Project resolves slug from the store, then from the project list, and
// links the next project in list order, wrapping to the first.
func (l *Loader) Project(ctx context.Context, slug string) (*ProjectPage, error) {
	var (
		found    *content.Project
		projects []content.Project
	)
	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, l, g, "projectBySlug", &found, func(ctx context.Context) (*content.Project, error) {
		return l.src.ProjectBySlug(ctx, slug)
	})
	fetch(gctx, l, g, "projects", &projects, l.src.Projects)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		projects = content.FallbackProjects()
	}

	idx := -1
	for i, p := range projects {
		if p.Slug == slug {
			idx = i
			break
		}
	}
	if found == nil {
		if idx < 0 {
			return nil, ErrNotFound
		}
		p := projects[idx]
		found = &p
	}

	page := &ProjectPage{Project: *found, Next: *found}
	if len(projects) > 0 {
		page.Next = projects[(idx+1)%len(projects)]
	}
	return page, nil
}

// Illustration selects the drawing shown on a service page without a
// custom image.
type Illustration string

const (
	IllustrationStrategy Illustration = "strategy"
	IllustrationIdentity Illustration = "identity"
	IllustrationStory    Illustration = "story"
	IllustrationDigital  Illustration = "digital"
	IllustrationDefault  Illustration = "default"
)

// IllustrationFor picks the drawing by keywords in the service title.
func IllustrationFor(title string) Illustration {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "strategy"):
		return IllustrationStrategy
	case strings.Contains(t, "identity"):
		return IllustrationIdentity
	case strings.Contains(t, "story"), strings.Contains(t, "tone"):
		return IllustrationStory
	case strings.Contains(t, "digital"), strings.Contains(t, "print"):
		return IllustrationDigital
	}
	return IllustrationDefault
}

// ServicePage is one service with its neighbours and related work.
type ServicePage struct {
	Service content.Service
	// Illustration is empty when the service shows its own hero image.
	Illustration Illustration
	Prev, Next   *content.Service
	Related      []content.Project
}

// ServiceTags returns the project service tags that relate to a service.
// Only the strategy tag looks at the title; the rest key off the slug.
func ServiceTags(slug, title string) []string {
	s := strings.ToLower(slug)
	t := strings.ToLower(title)
	var tags []string
	if strings.Contains(s, "strategy") || strings.Contains(t, "strategy") {
		tags = append(tags, "strategy", "brand strategy")
	}
	if strings.Contains(s, "visual") || strings.Contains(s, "identity") {
		tags = append(tags, "identity", "visual identity", "branding")
	}
	if strings.Contains(s, "digital") || strings.Contains(s, "experience") {
		tags = append(tags, "digital", "web", "ux", "ui")
	}
	if strings.Contains(s, "activation") {
		tags = append(tags, "activation", "campaign")
	}
	if strings.Contains(s, "verbal") {
		tags = append(tags, "naming", "copywriting", "verbal")
	}
	if strings.Contains(s, "creative") || strings.Contains(s, "direction") {
		tags = append(tags, "creative", "art direction")
	}
	return tags
}

// RelatedProjects returns up to MaxRelatedProjects projects with a service
// label containing any of tags, case-insensitively.
func RelatedProjects(projects []content.Project, tags []string) []content.Project {
	if len(tags) == 0 {
		return nil
	}
	var out []content.Project
	for _, p := range projects {
		if matchesAny(p.Services, tags) {
			out = append(out, p)
			if len(out) == MaxRelatedProjects {
				break
			}
		}
	}
	return out
}

func matchesAny(services, tags []string) bool {
	for _, s := range services {
		s = strings.ToLower(s)
		for _, tag := range tags {
			if strings.Contains(s, tag) {
				return true
			}
		}
	}
	return false
}

func (l *Loader) Service(ctx context.Context, slug string) (*ServicePage, error) {
	var (
		found    *content.Service
		services []content.Service
		projects []content.Project
	)
	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, l, g, "serviceBySlug", &found, func(ctx context.Context) (*content.Service, error) {
		return l.src.ServiceBySlug(ctx, slug)
	})
	fetch(gctx, l, g, "services", &services, l.src.Services)
	fetch(gctx, l, g, "projects", &projects, l.src.Projects)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if found == nil {
		fb, ok := content.FallbackService(slug)
		if !ok {
			return nil, ErrNotFound
		}
		found = &fb
	}
	if len(services) == 0 {
		services = content.FallbackServices()
	}

	page := &ServicePage{Service: *found}
	if !found.UseCustomServiceImage || found.HeroImage == "" {
		page.Illustration = IllustrationFor(found.Title)
	}

	idx := -1
	for i, s := range services {
		if s.Slug == slug {
			idx = i
			break
		}
	}
	if idx > 0 {
		page.Prev = &services[idx-1]
	}
	if idx < len(services)-1 {
		page.Next = &services[idx+1]
	}

	tags := ServiceTags(slug, found.Title)
	page.Related = RelatedProjects(projects, tags)
	if len(page.Related) == 0 {
		page.Related = RelatedProjects(content.FallbackProjects(), tags)
	}
	return page, nil
}

// Contact is the contact page: the FAQ accordion and the studio details.
type Contact struct {
	FAQs    []content.FAQItem
	Contact content.ContactInfo
}

func (l *Loader) Contact(ctx context.Context) (*Contact, error) {
	var (
		faqs     []content.FAQItem
		settings *content.SiteSettings
	)
	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, l, g, "faqs", &faqs, l.src.FAQs)
	fetch(gctx, l, g, "siteSettings", &settings, l.src.SiteSettings)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &Contact{FAQs: faqs, Contact: content.FallbackContact()}
	if len(c.FAQs) == 0 {
		c.FAQs = content.FallbackFAQs()
	}
	if settings != nil && settings.ContactInfo != (content.ContactInfo{}) {
		c.Contact = settings.ContactInfo
	}
	return c, nil
}

// ProjectSlugs lists the case-study slugs to pre-render.
func (l *Loader) ProjectSlugs(ctx context.Context) ([]string, error) {
	projects, err := l.Work(ctx)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(projects))
	for _, p := range projects {
		slugs = append(slugs, p.Slug)
	}
	return slugs, nil
}

// ServiceSlugs lists the service slugs to pre-render.
func (l *Loader) ServiceSlugs(ctx context.Context) ([]string, error) {
	var services []content.Service
	g, gctx := errgroup.WithContext(ctx)
	fetch(gctx, l, g, "services", &services, l.src.Services)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(services) == 0 {
		services = content.FallbackServices()
	}
	slugs := make([]string, 0, len(services))
	for _, s := range services {
		slugs = append(slugs, s.Slug)
	}
	return slugs, nil
}
