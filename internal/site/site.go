// Package site renders the agency site's pages to HTML. Each page embeds
// the initial state of its interactive widgets as markup and data
// attributes so it reads correctly before any script runs.
package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"

	"github.com/wayfindr/studio/internal/pages"
)

// Options configures the renderer.
type Options struct {
	SiteName string
	// BaseURL is the absolute origin used for canonical links.
	BaseURL string
	Widgets WidgetOptions
	// LiveReload adds the reload client to every page.
	LiveReload bool
	// WasmDir holds widgets.wasm and wasm_exec.js. Empty serves the pages
	// without the widget runtime.
	WasmDir string
}

// WidgetOptions are the timings handed to the client-side widgets.
type WidgetOptions struct {
	AutoAdvance        time.Duration
	Transition         time.Duration
	MobileBreakpoint   int
	CopyConfirmPointer time.Duration
	CopyConfirmTouch   time.Duration
}

// Routes that exist for every site, before slugs are added.
var staticRoutes = []string{"/", "/agency", "/work", "/contact"}

// Renderer turns page data into HTML documents.
type Renderer struct {
	loader *pages.Loader
	opts   Options
	log    *zap.Logger
	md     goldmark.Markdown
	pages  map[string]*template.Template
}

// NewRenderer parses the page templates.
func NewRenderer(loader *pages.Loader, opts Options, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.SiteName == "" {
		opts.SiteName = "Wayfindr Studio"
	}
	r := &Renderer{
		loader: loader,
		opts:   opts,
		log:    log,
		// Raw HTML in rich text is dropped, so authored copy cannot inject
		// markup.
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
		),
		pages: make(map[string]*template.Template),
	}

	base, err := template.New("site").Funcs(r.funcs()).Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}
	if _, err := base.Parse(partialsTemplate); err != nil {
		return nil, fmt.Errorf("parsing partials: %w", err)
	}
	for name, src := range pageTemplates {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// view is the data every template receives.
type view struct {
	Site   Options
	Layout *pages.Layout
	// Title is the full document title.
	Title     string
	Path      string
	Year      int
	Navigator template.CSS
	Page      any
}

// Render writes the page for route to w. Unknown routes and unresolvable
// slugs return pages.ErrNotFound with nothing written.
func (r *Renderer) Render(ctx context.Context, w io.Writer, route string) error {
	name, title, data, err := r.load(ctx, route)
	if err != nil {
		return err
	}
	return r.execute(ctx, w, name, title, route, data)
}

// RenderNotFound writes the not-found page.
func (r *Renderer) RenderNotFound(ctx context.Context, w io.Writer) error {
	return r.execute(ctx, w, "notfound", r.title("Not Found"), "", nil)
}

func (r *Renderer) execute(ctx context.Context, w io.Writer, name, title, route string, data any) error {
	layout, err := r.loader.Layout(ctx)
	if err != nil {
		return err
	}
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("no template for page %q", name)
	}

	v := view{
		Site:      r.opts,
		Layout:    layout,
		Title:     title,
		Path:      route,
		Year:      time.Now().Year(),
		Navigator: template.CSS("transform: " + navigatorTransform),
		Page:      data,
	}
	// Buffer so a template error never leaves a half-written page.
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", v); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// load resolves a route to a template name, a title and its page data.
func (r *Renderer) load(ctx context.Context, route string) (string, string, any, error) {
	route = "/" + strings.Trim(route, "/")
	parts := strings.Split(strings.TrimPrefix(route, "/"), "/")

	switch {
	case route == "/":
		h, err := r.loader.Home(ctx)
		if err != nil {
			return "", "", nil, err
		}
		return "home", h.Title, r.homeView(h), nil
	case route == "/agency":
		a, err := r.loader.Agency(ctx)
		if err != nil {
			return "", "", nil, err
		}
		return "agency", r.title("Agency"), r.agencyView(a), nil
	case route == "/work":
		projects, err := r.loader.Work(ctx)
		if err != nil {
			return "", "", nil, err
		}
		return "work", r.title("Work"), projects, nil
	case route == "/contact":
		c, err := r.loader.Contact(ctx)
		if err != nil {
			return "", "", nil, err
		}
		return "contact", r.title("Contact"), r.contactView(c), nil
	case len(parts) == 2 && parts[0] == "work":
		p, err := r.loader.Project(ctx, parts[1])
		if err != nil {
			return "", "", nil, err
		}
		return "project", r.title(p.Project.Title), r.projectView(p), nil
	case len(parts) == 2 && parts[0] == "services":
		s, err := r.loader.Service(ctx, parts[1])
		if err != nil {
			return "", "", nil, err
		}
		return "service", r.title(s.Service.Title), s, nil
	}
	return "", "", nil, pages.ErrNotFound
}

func (r *Renderer) title(page string) string {
	return page + " | " + r.opts.SiteName
}

// Routes lists every page route, including one per project and service.
func (r *Renderer) Routes(ctx context.Context) ([]string, error) {
	routes := append([]string{}, staticRoutes...)
	projects, err := r.loader.ProjectSlugs(ctx)
	if err != nil {
		return nil, err
	}
	for _, slug := range projects {
		routes = append(routes, "/work/"+slug)
	}
	services, err := r.loader.ServiceSlugs(ctx)
	if err != nil {
		return nil, err
	}
	for _, slug := range services {
		routes = append(routes, "/services/"+slug)
	}
	return routes, nil
}

// markdown renders rich text. A conversion error is logged and the text
// is shown escaped instead.
func (r *Renderer) markdown(text string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		r.log.Warn("rendering rich text failed", zap.Error(err))
		return template.HTML("<p>" + template.HTMLEscapeString(text) + "</p>")
	}
	return template.HTML(buf.String())
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"markdown": r.markdown,
		"join":     strings.Join,
		"upper":    strings.ToUpper,
		"add":      func(a, b int) int { return a + b },
		"ms":       func(d time.Duration) int64 { return d.Milliseconds() },
		"reveal":   r.revealView,
		"copy":     r.copyView,
		"navActive": func(current, prefix string) bool {
			if prefix == "/" {
				return current == "/"
			}
			return current == prefix || strings.HasPrefix(current, prefix+"/")
		},
		"translateX": func(pct float64) template.CSS {
			return template.CSS(fmt.Sprintf("transform: translateX(%.2f%%)", pct))
		},
	}
}
