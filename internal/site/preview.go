package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"time"

	"go.uber.org/zap"
)

// PreviewHandler serves an exported site from dir. Missing paths get the
// exported 404.html with a 404 status.
func PreviewHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(p); err == nil {
			if !info.IsDir() {
				files.ServeHTTP(w, r)
				return
			}
			if _, err := os.Stat(filepath.Join(p, "index.html")); err == nil {
				files.ServeHTTP(w, r)
				return
			}
		}
		body, err := os.ReadFile(filepath.Join(dir, "404.html"))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write(body)
	})
}

// Preview serves an exported site on port until ctx is cancelled.
func Preview(ctx context.Context, dir string, port int, open bool, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
		return fmt.Errorf("no exported site in %s: %w", dir, err)
	}

	url := fmt.Sprintf("http://localhost:%d", port)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           PreviewHandler(dir),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	log.Info("previewing exported site", zap.String("url", url), zap.String("dir", dir))
	if open {
		go openBrowser(url)
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// openBrowser opens url in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}

// OpenBrowser opens url in the default browser without waiting.
func OpenBrowser(url string) { go openBrowser(url) }
