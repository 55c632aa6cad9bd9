package content

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

type countingSource struct {
	Source
	calls int
	err   error
}

func (c *countingSource) Projects(ctx context.Context) ([]Project, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return []Project{{Title: "Cached"}}, nil
}

func TestCachedSourceMemoises(t *testing.T) {
	inner := &countingSource{}
	c := NewCachedSource(inner, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		projects, err := c.Projects(ctx)
		if err != nil {
			t.Fatalf("Projects: %v", err)
		}
		if len(projects) != 1 || projects[0].Title != "Cached" {
			t.Fatalf("projects = %+v", projects)
		}
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	c.Invalidate()
	if c.Len() != 0 {
		t.Errorf("Len() after Invalidate = %d, want 0", c.Len())
	}
	if _, err := c.Projects(ctx); err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("inner calls after Invalidate = %d, want 2", inner.calls)
	}
}

func TestCachedSourceDoesNotCacheErrors(t *testing.T) {
	boom := errors.New("boom")
	inner := &countingSource{err: boom}
	c := NewCachedSource(inner, 0)
	ctx := context.Background()

	if _, err := c.Projects(ctx); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	inner.err = nil
	if _, err := c.Projects(ctx); err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want 2", inner.calls)
	}
}

type lookupSource struct {
	Source
	calls int
}

func (l *lookupSource) ProjectBySlug(ctx context.Context, slug string) (*Project, error) {
	l.calls++
	if slug != "known" {
		return nil, nil
	}
	return &Project{Slug: slug}, nil
}

func (l *lookupSource) ServiceBySlug(ctx context.Context, slug string) (*Service, error) {
	l.calls++
	return nil, nil
}

func TestCachedSourceDoesNotCacheMisses(t *testing.T) {
	inner := &lookupSource{}
	c := NewCachedSource(inner, time.Minute)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		p, err := c.ProjectBySlug(ctx, fmt.Sprintf("missing-%d", i))
		if err != nil || p != nil {
			t.Fatalf("ProjectBySlug = %v, %v; want nil, nil", p, err)
		}
		if _, err := c.ServiceBySlug(ctx, fmt.Sprintf("missing-%d", i)); err != nil {
			t.Fatalf("ServiceBySlug: %v", err)
		}
	}
	if c.Len() != 0 {
		t.Errorf("Len() after misses = %d, want 0", c.Len())
	}

	for i := 0; i < 2; i++ {
		if p, err := c.ProjectBySlug(ctx, "known"); err != nil || p == nil {
			t.Fatalf("ProjectBySlug(known) = %v, %v", p, err)
		}
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if inner.calls != 101 {
		t.Errorf("inner calls = %d, want 101", inner.calls)
	}
}

type blockingSource struct {
	Source
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func (b *blockingSource) Projects(ctx context.Context) ([]Project, error) {
	b.once.Do(func() { close(b.started) })
	select {
	case <-b.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return []Project{{Title: "Shared"}}, nil
}

func TestCachedSourceLoadSurvivesCallerCancel(t *testing.T) {
	inner := &blockingSource{started: make(chan struct{}), release: make(chan struct{})}
	c := NewCachedSource(inner, time.Minute)

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := c.Projects(firstCtx)
		firstErr <- err
	}()
	<-inner.started

	type result struct {
		projects []Project
		err      error
	}
	second := make(chan result, 1)
	go func() {
		projects, err := c.Projects(context.Background())
		second <- result{projects, err}
	}()

	cancel()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("first caller err = %v, want context.Canceled", err)
	}
	close(inner.release)

	select {
	case r := <-second:
		if r.err != nil {
			t.Fatalf("second caller err = %v", r.err)
		}
		if len(r.projects) != 1 || r.projects[0].Title != "Shared" {
			t.Errorf("projects = %+v", r.projects)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("second caller never got a result")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}
