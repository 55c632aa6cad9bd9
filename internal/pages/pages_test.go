package pages

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wayfindr/studio/internal/content"
	"github.com/wayfindr/studio/internal/db"
)

func setupLoader(t *testing.T) (*Loader, *content.Store) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	store := content.NewStore(database)
	return NewLoader(content.NewStoreSource(store), nil), store
}

func titles(projects []content.Project) []string {
	var out []string
	for _, p := range projects {
		out = append(out, p.Title)
	}
	return out
}

// failingSource fails every query.
type failingSource struct {
	content.Source
}

var errDown = errors.New("content source unavailable")

func (failingSource) SiteSettings(context.Context) (*content.SiteSettings, error) { return nil, errDown }
func (failingSource) Homepage(context.Context) (*content.Homepage, error)         { return nil, errDown }
func (failingSource) AgencyPage(context.Context) (*content.AgencyPage, error)     { return nil, errDown }
func (failingSource) Brands(context.Context) ([]content.Brand, error)             { return nil, errDown }
func (failingSource) Testimonials(context.Context) ([]content.Testimonial, error) { return nil, errDown }
func (failingSource) FAQs(context.Context) ([]content.FAQItem, error)             { return nil, errDown }
func (failingSource) Projects(context.Context) ([]content.Project, error)         { return nil, errDown }
func (failingSource) Services(context.Context) ([]content.Service, error)         { return nil, errDown }
func (failingSource) ProjectBySlug(context.Context, string) (*content.Project, error) {
	return nil, errDown
}
func (failingSource) ServiceBySlug(context.Context, string) (*content.Service, error) {
	return nil, errDown
}

func TestWorkWithEmptyStoreShowsFallbackProjects(t *testing.T) {
	l, _ := setupLoader(t)
	projects, err := l.Work(context.Background())
	if err != nil {
		t.Fatalf("Work: %v", err)
	}
	want := []string{"Apex Architecture", "Lumina Labs", "Mono Magazine", "Vortex Financial"}
	if diff := cmp.Diff(want, titles(projects)); diff != "" {
		t.Errorf("work projects (-want +got):\n%s", diff)
	}
}

func TestWorkUsesStoredProjects(t *testing.T) {
	l, store := setupLoader(t)
	ctx := context.Background()
	if _, err := store.PutRecord(ctx, content.TypeProject, "only", 1, content.Project{Title: "Only"}); err != nil {
		t.Fatal(err)
	}
	projects, err := l.Work(ctx)
	if err != nil {
		t.Fatalf("Work: %v", err)
	}
	if diff := cmp.Diff([]string{"Only"}, titles(projects)); diff != "" {
		t.Errorf("work projects (-want +got):\n%s", diff)
	}
}

func TestFailingSourceDegradesToFallback(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	l := NewLoader(failingSource{}, zap.New(core))
	ctx := context.Background()

	home, err := l.Home(ctx)
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if home.Title != content.DefaultSiteTitle || len(home.Brands) != 8 || len(home.Testimonials) != 3 {
		t.Errorf("home = %+v", home)
	}
	if logs.FilterMessage("content query failed, using fallback").Len() != 4 {
		t.Errorf("logged %d warnings, want 4", logs.Len())
	}

	if _, err := l.Agency(ctx); err != nil {
		t.Errorf("Agency: %v", err)
	}
	if c, err := l.Contact(ctx); err != nil || len(c.FAQs) != 4 {
		t.Errorf("Contact = %+v, %v", c, err)
	}
	if p, err := l.Project(ctx, "lumina-labs"); err != nil || p.Project.Client != "Lumina" {
		t.Errorf("Project = %+v, %v", p, err)
	}
	if s, err := l.Service(ctx, "brand-strategy"); err != nil || s.Service.Title != "Brand Strategy" {
		t.Errorf("Service = %+v, %v", s, err)
	}
}

func TestCancelledContextFails(t *testing.T) {
	l := NewLoader(failingSource{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.Work(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestHome(t *testing.T) {
	l, store := setupLoader(t)
	ctx := context.Background()
	if _, err := store.PutRecord(ctx, content.TypeHomepage, "", 0, content.Homepage{Title: "   ", HeroLine2: "Ideas"}); err != nil {
		t.Fatal(err)
	}

	home, err := l.Home(ctx)
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if home.Title != content.DefaultSiteTitle {
		t.Errorf("blank title should fall back, got %q", home.Title)
	}
	if home.HeroLines != [3]string{"Navigating", "Ideas", "Thru Chaos."} {
		t.Errorf("hero lines = %q", home.HeroLines)
	}
	if home.Lead == nil || home.Lead.Title != "Apex Architecture" {
		t.Errorf("lead = %+v", home.Lead)
	}
	if diff := cmp.Diff([]string{"Lumina Labs", "Mono Magazine"}, titles(home.Projects)); diff != "" {
		t.Errorf("grid projects (-want +got):\n%s", diff)
	}
}

func TestProjectNextWraps(t *testing.T) {
	l, _ := setupLoader(t)
	ctx := context.Background()

	p, err := l.Project(ctx, "vortex-financial")
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if p.Next.Slug != "apex-architecture" {
		t.Errorf("next = %q, want apex-architecture", p.Next.Slug)
	}

	p, err = l.Project(ctx, "apex-architecture")
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if p.Next.Slug != "lumina-labs" {
		t.Errorf("next = %q, want lumina-labs", p.Next.Slug)
	}

	if _, err := l.Project(ctx, "unknown"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestProjectSingleEntryLinksToItself(t *testing.T) {
	l, store := setupLoader(t)
	ctx := context.Background()
	if _, err := store.PutRecord(ctx, content.TypeProject, "solo", 1, content.Project{Title: "Solo"}); err != nil {
		t.Fatal(err)
	}
	p, err := l.Project(ctx, "solo")
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if p.Next.Slug != "solo" {
		t.Errorf("next = %q, want solo", p.Next.Slug)
	}
}

func TestServicePage(t *testing.T) {
	l, _ := setupLoader(t)
	ctx := context.Background()

	first, err := l.Service(ctx, "brand-strategy")
	if err != nil {
		t.Fatalf("Service: %v", err)
	}
	if first.Prev != nil {
		t.Errorf("first service has prev %q", first.Prev.Slug)
	}
	if first.Next == nil || first.Next.Slug != "visual-identity" {
		t.Errorf("next = %+v", first.Next)
	}
	if diff := cmp.Diff([]string{"Apex Architecture"}, titles(first.Related)); diff != "" {
		t.Errorf("related (-want +got):\n%s", diff)
	}
	if first.Illustration != IllustrationStrategy {
		t.Errorf("illustration = %q", first.Illustration)
	}

	last, err := l.Service(ctx, "creative-direction")
	if err != nil {
		t.Fatalf("Service: %v", err)
	}
	if last.Next != nil {
		t.Errorf("last service has next %q", last.Next.Slug)
	}
	if last.Prev == nil || last.Prev.Slug != "verbal-identity" {
		t.Errorf("prev = %+v", last.Prev)
	}

	if _, err := l.Service(ctx, "underwater-basket-weaving"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestServiceCustomImage(t *testing.T) {
	l, store := setupLoader(t)
	ctx := context.Background()
	svc := content.Service{Title: "Naming", Slug: "naming", HeroImage: "/n.jpg", UseCustomServiceImage: true}
	if _, err := store.PutRecord(ctx, content.TypeService, "naming", 0, svc); err != nil {
		t.Fatal(err)
	}
	page, err := l.Service(ctx, "naming")
	if err != nil {
		t.Fatalf("Service: %v", err)
	}
	if page.Illustration != "" {
		t.Errorf("illustration = %q, want none", page.Illustration)
	}
	if page.Prev != nil || page.Next != nil {
		t.Errorf("single stored service should have no neighbours")
	}
}

func TestServiceTags(t *testing.T) {
	tests := []struct {
		slug, title string
		want        []string
	}{
		{"brand-strategy", "Brand Strategy", []string{"strategy", "brand strategy"}},
		{"x", "Growth Strategy", []string{"strategy", "brand strategy"}},
		{"visual-identity", "Visual Identity", []string{"identity", "visual identity", "branding"}},
		{"verbal-identity", "Verbal Identity", []string{"identity", "visual identity", "branding", "naming", "copywriting", "verbal"}},
		{"x", "Identity", nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ServiceTags(tt.slug, tt.title)); diff != "" {
			t.Errorf("ServiceTags(%q, %q) (-want +got):\n%s", tt.slug, tt.title, diff)
		}
	}
}

func TestRelatedProjectsCap(t *testing.T) {
	var projects []content.Project
	for i := 0; i < 6; i++ {
		projects = append(projects, content.Project{Title: string(rune('A' + i)), Services: []string{"Web Design"}})
	}
	got := RelatedProjects(projects, []string{"web"})
	if len(got) != MaxRelatedProjects {
		t.Errorf("got %d related, want %d", len(got), MaxRelatedProjects)
	}
	if RelatedProjects(projects, nil) != nil {
		t.Error("no tags should match nothing")
	}
}

func TestIllustrationFor(t *testing.T) {
	for title, want := range map[string]Illustration{
		"Brand Strategy":     IllustrationStrategy,
		"Brand Identity":     IllustrationIdentity,
		"Story & Tone":       IllustrationStory,
		"Digital & Print":    IllustrationDigital,
		"Creative Direction": IllustrationDefault,
	} {
		if got := IllustrationFor(title); got != want {
			t.Errorf("IllustrationFor(%q) = %q, want %q", title, got, want)
		}
	}
}

func TestContactAndLayout(t *testing.T) {
	l, store := setupLoader(t)
	ctx := context.Background()

	c, err := l.Contact(ctx)
	if err != nil {
		t.Fatalf("Contact: %v", err)
	}
	if c.Contact.Email != "hello@wayfindr.com" || len(c.FAQs) != 4 {
		t.Errorf("contact = %+v", c)
	}

	settings := content.SiteSettings{
		ContactInfo:     content.ContactInfo{Email: "team@example.com"},
		FooterAboutText: "Custom about.",
	}
	if _, err := store.PutRecord(ctx, content.TypeSiteSettings, "", 0, settings); err != nil {
		t.Fatal(err)
	}

	c, err = l.Contact(ctx)
	if err != nil {
		t.Fatalf("Contact: %v", err)
	}
	if c.Contact.Email != "team@example.com" {
		t.Errorf("email = %q", c.Contact.Email)
	}

	layout, err := l.Layout(ctx)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if layout.Email != "team@example.com" || layout.AboutText != "Custom about." {
		t.Errorf("layout = %+v", layout)
	}
	if len(layout.SocialLinks) != 3 {
		t.Errorf("social links = %d, want 3 fallback links", len(layout.SocialLinks))
	}
}

func TestAgencyAttachesServices(t *testing.T) {
	l, store := setupLoader(t)
	ctx := context.Background()

	page, err := l.Agency(ctx)
	if err != nil {
		t.Fatalf("Agency: %v", err)
	}
	if page.TopLabel != "The Agency" || len(page.Services) != 6 {
		t.Errorf("fallback agency = %q with %d services", page.TopLabel, len(page.Services))
	}

	if _, err := store.PutRecord(ctx, content.TypeAgencyPage, "", 0, content.AgencyPage{TopLabel: "Us"}); err != nil {
		t.Fatal(err)
	}
	if _, err := store.PutRecord(ctx, content.TypeService, "naming", 0, content.Service{Title: "Naming"}); err != nil {
		t.Fatal(err)
	}
	page, err = l.Agency(ctx)
	if err != nil {
		t.Fatalf("Agency: %v", err)
	}
	if page.TopLabel != "Us" || len(page.Services) != 1 || page.Services[0].Slug != "naming" {
		t.Errorf("stored agency = %+v", page)
	}
}

func TestSlugs(t *testing.T) {
	l, _ := setupLoader(t)
	ctx := context.Background()
	projects, err := l.ProjectSlugs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 4 {
		t.Errorf("project slugs = %v", projects)
	}
	services, err := l.ServiceSlugs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(services) != 6 || services[0] != "brand-strategy" {
		t.Errorf("service slugs = %v", services)
	}
}
