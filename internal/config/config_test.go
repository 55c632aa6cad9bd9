package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SiteName != "Wayfindr Studio" {
		t.Errorf("expected default site_name %q, got %q", "Wayfindr Studio", cfg.SiteName)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Widgets.AutoAdvance != 12*time.Second {
		t.Errorf("expected default auto_advance 12s, got %v", cfg.Widgets.AutoAdvance)
	}
	if cfg.Widgets.MobileBreakpoint != 768 {
		t.Errorf("expected default mobile_breakpoint 768, got %d", cfg.Widgets.MobileBreakpoint)
	}
	if got := cfg.DBPath(); got != filepath.Join(".wayfindr", "content.db") {
		t.Errorf("DBPath = %q", got)
	}
}

func TestDefaultOriginsAreCopied(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowedOrigins[0] = "changed"
	if DefaultAllowedOrigins[0] == "changed" {
		t.Error("DefaultConfig shares its origins slice")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.wayfindr.yml")

	original := DefaultConfig()
	original.SiteName = "Studio Test"
	original.BaseURL = "https://example.com"
	original.Port = 9090
	original.CacheTTL = 90 * time.Second
	original.AllowedOrigins = []string{"https://cms.example.com"}
	original.RateLimit = RateLimitConfig{RPS: 2.5, Burst: 5}
	original.Widgets.AutoAdvance = 6 * time.Second

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(original, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("missing file should give defaults (-want +got):\n%s", diff)
	}
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	data := "site_name: Partial\nwidgets:\n  transition: 500ms\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SiteName != "Partial" {
		t.Errorf("site_name = %q", cfg.SiteName)
	}
	if cfg.Widgets.Transition != 500*time.Millisecond {
		t.Errorf("transition = %v, want 500ms", cfg.Widgets.Transition)
	}
	// Unset keys keep their defaults.
	if cfg.Port != 8080 || cfg.Widgets.AutoAdvance != 12*time.Second {
		t.Errorf("defaults lost: port %d, auto_advance %v", cfg.Port, cfg.Widgets.AutoAdvance)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("WAYFINDR_PORT", "3000")
	t.Setenv("WAYFINDR_RATE_LIMIT__BURST", "7")
	t.Setenv("WAYFINDR_WIDGETS__AUTO_ADVANCE", "8s")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 3000 {
		t.Errorf("port = %d, want 3000", loaded.Port)
	}
	if loaded.RateLimit.Burst != 7 {
		t.Errorf("rate_limit.burst = %d, want 7", loaded.RateLimit.Burst)
	}
	if loaded.Widgets.AutoAdvance != 8*time.Second {
		t.Errorf("widgets.auto_advance = %v, want 8s", loaded.Widgets.AutoAdvance)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"WAYFINDR_PORT", "port"},
		{"WAYFINDR_SITE_NAME", "site_name"},
		{"WAYFINDR_RATE_LIMIT__RPS", "rate_limit.rps"},
		{"WAYFINDR_WIDGETS__COPY_CONFIRM_TOUCH", "widgets.copy_confirm_touch"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty site name", func(c *Config) { c.SiteName = "  " }},
		{"relative base url", func(c *Config) { c.BaseURL = "example.com" }},
		{"base url with slash", func(c *Config) { c.BaseURL = "https://example.com/" }},
		{"port zero", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"bad glob", func(c *Config) { c.ContentGlob = "content/[" }},
		{"negative ttl", func(c *Config) { c.CacheTTL = -time.Second }},
		{"negative rps", func(c *Config) { c.RateLimit.RPS = -1 }},
		{"rps without burst", func(c *Config) { c.RateLimit.Burst = 0 }},
		{"negative duration", func(c *Config) { c.Widgets.CopyConfirmTouch = -time.Second }},
		{"transition too long", func(c *Config) { c.Widgets.Transition = c.Widgets.AutoAdvance }},
		{"negative breakpoint", func(c *Config) { c.Widgets.MobileBreakpoint = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateDisabledRateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimit = RateLimitConfig{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("rps 0 should disable the limiter, got: %v", err)
	}
}

func TestWizardValidators(t *testing.T) {
	if err := validatePort("8080"); err != nil {
		t.Errorf("validatePort(8080): %v", err)
	}
	for _, bad := range []string{"", "http", "0", "65536"} {
		if validatePort(bad) == nil {
			t.Errorf("validatePort(%q) accepted", bad)
		}
	}
	for _, ok := range []string{"", "https://wayfindr.studio", "http://localhost:8080"} {
		if err := validateBaseURL(ok); err != nil {
			t.Errorf("validateBaseURL(%q): %v", ok, err)
		}
	}
	if validateBaseURL("wayfindr.studio") == nil {
		t.Error("validateBaseURL accepted a relative URL")
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"https://x.com", []string{"https://x.com"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, splitAndTrim(tt.input)); diff != "" {
			t.Errorf("splitAndTrim(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}
