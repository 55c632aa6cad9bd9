package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHealthCheck(t *testing.T) {
	srv := New(Config{Port: 0}, nil)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{AllowedOrigins: []string{"https://cms.example.com"}}, nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "https://cms.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://cms.example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}

	req = httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected Allow-Origin %q for a foreign origin", got)
	}
}

func apiServer(cfg Config) *Server {
	srv := New(cfg, nil)
	srv.API(func(r chi.Router) {
		r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("pong"))
		})
	})
	srv.Router().Get("/page", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("page"))
	})
	return srv
}

func call(h http.Handler, path, remote string) int {
	req := httptest.NewRequest("GET", path, nil)
	req.RemoteAddr = remote
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitPerIP(t *testing.T) {
	srv := apiServer(Config{RateLimit: 0.001, Burst: 2})
	h := srv.Handler()

	for i := 0; i < 2; i++ {
		if code := call(h, "/api/ping", "10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: status %d, want 200", i, code)
		}
	}
	if code := call(h, "/api/ping", "10.0.0.1:5678"); code != http.StatusTooManyRequests {
		t.Errorf("third request: status %d, want 429", code)
	}
	// Another client has its own bucket.
	if code := call(h, "/api/ping", "10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("other client: status %d, want 200", code)
	}
	// Pages are not limited.
	if code := call(h, "/page", "10.0.0.1:1234"); code != http.StatusOK {
		t.Errorf("page: status %d, want 200", code)
	}
}

func TestRateLimitForwardedFor(t *testing.T) {
	srv := apiServer(Config{RateLimit: 0.001, Burst: 1})
	h := srv.Handler()

	send := func(forwarded string) int {
		req := httptest.NewRequest("GET", "/api/ping", nil)
		req.RemoteAddr = "192.0.2.1:1000"
		req.Header.Set("X-Forwarded-For", forwarded)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}
	if code := send("203.0.113.7"); code != http.StatusOK {
		t.Fatalf("status %d, want 200", code)
	}
	// Same proxy, different client.
	if code := send("203.0.113.8"); code != http.StatusOK {
		t.Errorf("status %d, want 200", code)
	}
	if code := send("203.0.113.7"); code != http.StatusTooManyRequests {
		t.Errorf("status %d, want 429", code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	srv := apiServer(Config{})
	for i := 0; i < 50; i++ {
		if code := call(srv.Handler(), "/api/ping", "10.0.0.1:1"); code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, code)
		}
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	srv := New(Config{}, zap.New(core))

	req := httptest.NewRequest("GET", "/healthz", nil)
	srv.Handler().ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d request lines, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/healthz" {
		t.Errorf("path = %v", fields["path"])
	}
	if fields["status"] != int64(http.StatusOK) {
		t.Errorf("status = %v (%T)", fields["status"], fields["status"])
	}
	if id, _ := fields["request_id"].(string); id == "" {
		t.Error("request id missing")
	}
}
