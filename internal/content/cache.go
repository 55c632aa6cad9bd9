package content

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL matches the site's revalidation window.
const DefaultCacheTTL = 60 * time.Second

// CachedSource memoises another Source for a fixed TTL. Concurrent misses
// for the same key share one load. Errors are never cached. Cached slices
// are shared between callers and must not be modified.
type CachedSource struct {
	src   Source
	cache *cache.Cache
	group singleflight.Group
}

// NewCachedSource wraps src. A non-positive ttl uses DefaultCacheTTL.
func NewCachedSource(src Source, ttl time.Duration) *CachedSource {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedSource{src: src, cache: cache.New(ttl, 2*ttl)}
}

// Invalidate drops every cached entry.
func (c *CachedSource) Invalidate() {
	c.cache.Flush()
}

// Len returns the number of cached entries.
func (c *CachedSource) Len() int {
	return c.cache.ItemCount()
}

// cached returns the entry for key, loading it on a miss. The shared load
// runs detached from the caller's cancellation, since other callers may be
// waiting on it; a cancelled caller stops waiting and gets ctx.Err(). A
// non-nil keep decides whether a loaded value is stored.
func cached[T any](ctx context.Context, c *CachedSource, key string, load func(context.Context) (T, error), keep func(T) bool) (T, error) {
	var zero T
	if v, ok := c.cache.Get(key); ok {
		return v.(T), nil
	}
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		v, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if keep == nil || keep(v) {
			c.cache.SetDefault(key, v)
		}
		return v, nil
	})
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Err
		}
		return r.Val.(T), nil
	}
}

// found keeps lookups by slug from caching misses, which would let
// arbitrary request paths grow the cache.
func found[T any](p *T) bool {
	return p != nil
}

func (c *CachedSource) SiteSettings(ctx context.Context) (*SiteSettings, error) {
	return cached(ctx, c, "siteSettings", func(ctx context.Context) (*SiteSettings, error) { return c.src.SiteSettings(ctx) }, nil)
}

func (c *CachedSource) Homepage(ctx context.Context) (*Homepage, error) {
	return cached(ctx, c, "homepage", func(ctx context.Context) (*Homepage, error) { return c.src.Homepage(ctx) }, nil)
}

func (c *CachedSource) AgencyPage(ctx context.Context) (*AgencyPage, error) {
	return cached(ctx, c, "agencyPage", func(ctx context.Context) (*AgencyPage, error) { return c.src.AgencyPage(ctx) }, nil)
}

func (c *CachedSource) Brands(ctx context.Context) ([]Brand, error) {
	return cached(ctx, c, "brands", func(ctx context.Context) ([]Brand, error) { return c.src.Brands(ctx) }, nil)
}

func (c *CachedSource) Testimonials(ctx context.Context) ([]Testimonial, error) {
	return cached(ctx, c, "testimonials", func(ctx context.Context) ([]Testimonial, error) { return c.src.Testimonials(ctx) }, nil)
}

func (c *CachedSource) FAQs(ctx context.Context) ([]FAQItem, error) {
	return cached(ctx, c, "faqs", func(ctx context.Context) ([]FAQItem, error) { return c.src.FAQs(ctx) }, nil)
}

func (c *CachedSource) Projects(ctx context.Context) ([]Project, error) {
	return cached(ctx, c, "projects", func(ctx context.Context) ([]Project, error) { return c.src.Projects(ctx) }, nil)
}

func (c *CachedSource) FeaturedProjects(ctx context.Context) ([]Project, error) {
	return cached(ctx, c, "projects:featured", func(ctx context.Context) ([]Project, error) { return c.src.FeaturedProjects(ctx) }, nil)
}

func (c *CachedSource) ProjectBySlug(ctx context.Context, slug string) (*Project, error) {
	return cached(ctx, c, "project:"+slug, func(ctx context.Context) (*Project, error) { return c.src.ProjectBySlug(ctx, slug) }, found[Project])
}

func (c *CachedSource) Services(ctx context.Context) ([]Service, error) {
	return cached(ctx, c, "services", func(ctx context.Context) ([]Service, error) { return c.src.Services(ctx) }, nil)
}

func (c *CachedSource) ServiceBySlug(ctx context.Context, slug string) (*Service, error) {
	return cached(ctx, c, "service:"+slug, func(ctx context.Context) (*Service, error) { return c.src.ServiceBySlug(ctx, slug) }, found[Service])
}
