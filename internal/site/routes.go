package site

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/wayfindr/studio/internal/pages"
)

// RegisterRoutes mounts the pages and their assets on r. The live-reload
// endpoint is only added when hub is non-nil.
func RegisterRoutes(r chi.Router, rd *Renderer, hub *Hub) {
	r.Get("/assets/site.css", handleAsset("text/css; charset=utf-8", cssContent))
	r.Get("/assets/site.js", handleAsset("text/javascript; charset=utf-8", jsContent))
	if dir := rd.opts.WasmDir; dir != "" {
		r.Get("/assets/widgets.wasm", handleFile(filepath.Join(dir, "widgets.wasm")))
		r.Get("/assets/wasm_exec.js", handleFile(filepath.Join(dir, "wasm_exec.js")))
	}
	if hub != nil {
		r.Get("/_live", hub.ServeHTTP)
	}

	page := handlePage(rd)
	r.Get("/", page)
	r.Get("/agency", page)
	r.Get("/work", page)
	r.Get("/work/{slug}", page)
	r.Get("/services/{slug}", page)
	r.Get("/contact", page)
	r.NotFound(handleNotFound(rd))
}

func handlePage(rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := rd.Render(r.Context(), w, r.URL.Path)
		switch {
		case err == nil:
		case errors.Is(err, pages.ErrNotFound):
			writeNotFound(w, r, rd)
		default:
			rd.log.Error("rendering page failed", zap.String("path", r.URL.Path), zap.Error(err))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}
}

func handleNotFound(rd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		writeNotFound(w, r, rd)
	}
}

func writeNotFound(w http.ResponseWriter, r *http.Request, rd *Renderer) {
	w.WriteHeader(http.StatusNotFound)
	if err := rd.RenderNotFound(r.Context(), w); err != nil {
		rd.log.Error("rendering not-found page failed", zap.Error(err))
	}
}

func handleAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write([]byte(body))
	}
}

func handleFile(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	}
}
