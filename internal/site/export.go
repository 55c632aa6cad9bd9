package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/wayfindr/studio/internal/progress"
)

// Exporter writes every page of the site to a directory as static files.
type Exporter struct {
	Renderer  *Renderer
	OutputDir string
	Progress  progress.Reporter
}

// NewExporter creates an Exporter that reports through a progress bar or,
// under CI, plain log lines.
func NewExporter(rd *Renderer, outputDir string) *Exporter {
	return &Exporter{Renderer: rd, OutputDir: outputDir, Progress: progress.NewReporter()}
}

// Export renders every route to {route}/index.html, plus 404.html and the
// assets. Returns the number of pages written.
func (e *Exporter) Export(ctx context.Context) (int, error) {
	rd := e.Renderer
	routes, err := rd.Routes(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing routes: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(e.OutputDir, "assets"), 0o755); err != nil {
		return 0, err
	}
	if err := e.writeAssets(); err != nil {
		return 0, fmt.Errorf("writing assets: %w", err)
	}

	reporter := e.Progress
	if reporter == nil {
		reporter = progress.Nop{}
	}
	reporter.Start(len(routes) + 1)

	for i, route := range routes {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		var buf bytes.Buffer
		if err := rd.Render(ctx, &buf, route); err != nil {
			return i, fmt.Errorf("rendering %s: %w", route, err)
		}
		if err := writeFile(filepath.Join(e.OutputDir, pagePath(route)), buf.Bytes()); err != nil {
			return i, err
		}
		reporter.Update(i+1, route)
	}

	var buf bytes.Buffer
	if err := rd.RenderNotFound(ctx, &buf); err != nil {
		return len(routes), fmt.Errorf("rendering not-found page: %w", err)
	}
	if err := writeFile(filepath.Join(e.OutputDir, "404.html"), buf.Bytes()); err != nil {
		return len(routes), err
	}
	reporter.Update(len(routes)+1, "404")
	reporter.Finish()

	rd.log.Info("site exported",
		zap.String("dir", e.OutputDir),
		zap.Int("pages", len(routes)+1))
	return len(routes) + 1, nil
}

func (e *Exporter) writeAssets() error {
	assets := filepath.Join(e.OutputDir, "assets")
	if err := writeFile(filepath.Join(assets, "site.css"), []byte(cssContent)); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(assets, "site.js"), []byte(jsContent)); err != nil {
		return err
	}
	dir := e.Renderer.opts.WasmDir
	if dir == "" {
		return nil
	}
	for _, name := range []string{"widgets.wasm", "wasm_exec.js"} {
		if err := copyFile(filepath.Join(dir, name), filepath.Join(assets, name)); err != nil {
			return err
		}
	}
	return nil
}

// pagePath maps a route to its file, e.g. "/work/x" to "work/x/index.html".
func pagePath(route string) string {
	route = strings.Trim(route, "/")
	if route == "" {
		return "index.html"
	}
	return filepath.Join(filepath.FromSlash(route), "index.html")
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
