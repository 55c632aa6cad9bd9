package content

import (
	"context"
	"errors"
	"fmt"
)

// Source answers the page-level content queries. A missing singleton or
// slug yields nil with no error; an empty collection yields an empty slice.
// Errors mean the source itself failed.
type Source interface {
	SiteSettings(ctx context.Context) (*SiteSettings, error)
	Homepage(ctx context.Context) (*Homepage, error)
	AgencyPage(ctx context.Context) (*AgencyPage, error)
	Brands(ctx context.Context) ([]Brand, error)
	Testimonials(ctx context.Context) ([]Testimonial, error)
	FAQs(ctx context.Context) ([]FAQItem, error)
	Projects(ctx context.Context) ([]Project, error)
	FeaturedProjects(ctx context.Context) ([]Project, error)
	ProjectBySlug(ctx context.Context, slug string) (*Project, error)
	Services(ctx context.Context) ([]Service, error)
	ServiceBySlug(ctx context.Context, slug string) (*Service, error)
}

// StoreSource implements Source over the document store.
type StoreSource struct {
	store *Store
}

func NewStoreSource(store *Store) *StoreSource {
	return &StoreSource{store: store}
}

func singleton[T any](ctx context.Context, s *Store, t DocType) (*T, error) {
	doc, err := s.Get(ctx, t, string(t))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var v T
	if err := doc.Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// collection decodes every document of type t, letting fix fill fields
// that live on the document row rather than in the body.
func collection[T any](ctx context.Context, s *Store, t DocType, fix func(*T, Document)) ([]T, error) {
	docs, err := s.List(ctx, t)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var v T
		if err := d.Decode(&v); err != nil {
			return nil, err
		}
		if fix != nil {
			fix(&v, d)
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *StoreSource) SiteSettings(ctx context.Context) (*SiteSettings, error) {
	return singleton[SiteSettings](ctx, s.store, TypeSiteSettings)
}

func (s *StoreSource) Homepage(ctx context.Context) (*Homepage, error) {
	return singleton[Homepage](ctx, s.store, TypeHomepage)
}

func (s *StoreSource) AgencyPage(ctx context.Context) (*AgencyPage, error) {
	return singleton[AgencyPage](ctx, s.store, TypeAgencyPage)
}

func (s *StoreSource) Brands(ctx context.Context) ([]Brand, error) {
	return collection(ctx, s.store, TypeBrand, func(b *Brand, d Document) {
		if b.ID == "" {
			b.ID = d.ID
		}
	})
}

func (s *StoreSource) Testimonials(ctx context.Context) ([]Testimonial, error) {
	return collection[Testimonial](ctx, s.store, TypeTestimonial, nil)
}

func (s *StoreSource) FAQs(ctx context.Context) ([]FAQItem, error) {
	return collection[FAQItem](ctx, s.store, TypeFAQ, nil)
}

func fixProject(p *Project, d Document) {
	if p.Slug == "" {
		p.Slug = d.Slug
	}
	p.Order = d.Order
}

func (s *StoreSource) Projects(ctx context.Context) ([]Project, error) {
	return collection(ctx, s.store, TypeProject, fixProject)
}

func (s *StoreSource) FeaturedProjects(ctx context.Context) ([]Project, error) {
	all, err := s.Projects(ctx)
	if err != nil {
		return nil, err
	}
	featured := all[:0]
	for _, p := range all {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// ProjectBySlug loads one project and resolves its related project
// references. References to missing projects are dropped.
func (s *StoreSource) ProjectBySlug(ctx context.Context, slug string) (*Project, error) {
	doc, err := s.store.Get(ctx, TypeProject, slug)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p Project
	if err := doc.Decode(&p); err != nil {
		return nil, err
	}
	fixProject(&p, *doc)

	for _, ref := range p.RelatedSlugs {
		rd, err := s.store.Get(ctx, TypeProject, ref)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resolving related project %q: %w", ref, err)
		}
		var rp Project
		if err := rd.Decode(&rp); err != nil {
			return nil, err
		}
		fixProject(&rp, *rd)
		p.RelatedProjects = append(p.RelatedProjects, rp.Ref())
	}
	return &p, nil
}

func (s *StoreSource) Services(ctx context.Context) ([]Service, error) {
	return collection(ctx, s.store, TypeService, func(v *Service, d Document) {
		if v.Slug == "" {
			v.Slug = d.Slug
		}
		v.Order = d.Order
	})
}

func (s *StoreSource) ServiceBySlug(ctx context.Context, slug string) (*Service, error) {
	doc, err := s.store.Get(ctx, TypeService, slug)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var v Service
	if err := doc.Decode(&v); err != nil {
		return nil, err
	}
	if v.Slug == "" {
		v.Slug = doc.Slug
	}
	v.Order = doc.Order
	return &v, nil
}
