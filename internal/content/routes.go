package content

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the read-only content API. Empty results are
// replaced by the built-in content, the same way the pages are.
func RegisterRoutes(r chi.Router, src Source) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", handleProjects(src))
		r.Get("/projects/{slug}", handleProject(src))
		r.Get("/services", handleServices(src))
		r.Get("/services/{slug}", handleService(src))
		r.Get("/faqs", handleFAQs(src))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func handleProjects(src Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			projects []Project
			err      error
		)
		if r.URL.Query().Get("featured") == "true" {
			projects, err = src.FeaturedProjects(r.Context())
		} else {
			projects, err = src.Projects(r.Context())
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if len(projects) == 0 {
			projects = FallbackProjects()
		}
		writeJSON(w, http.StatusOK, projects)
	}
}

func handleProject(src Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		p, err := src.ProjectBySlug(r.Context(), slug)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if p == nil {
			fp, ok := FallbackProject(slug)
			if !ok {
				writeError(w, http.StatusNotFound, "not found")
				return
			}
			p = &fp
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func handleServices(src Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services, err := src.Services(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if len(services) == 0 {
			services = FallbackServices()
		}
		writeJSON(w, http.StatusOK, services)
	}
}

func handleService(src Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		s, err := src.ServiceBySlug(r.Context(), slug)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if s == nil {
			fs, ok := FallbackService(slug)
			if !ok {
				writeError(w, http.StatusNotFound, "not found")
				return
			}
			s = &fs
		}
		writeJSON(w, http.StatusOK, s)
	}
}

func handleFAQs(src Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		faqs, err := src.FAQs(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if len(faqs) == 0 {
			faqs = FallbackFAQs()
		}
		writeJSON(w, http.StatusOK, faqs)
	}
}
