package config

import (
	"path/filepath"
	"time"

	"github.com/wayfindr/studio/internal/content"
	"github.com/wayfindr/studio/internal/widget/carousel"
	"github.com/wayfindr/studio/internal/widget/clipboard"
	"github.com/wayfindr/studio/internal/widget/reveal"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".wayfindr.yml"

// DefaultAllowedOrigins lets local tooling call the content API.
var DefaultAllowedOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:       "Wayfindr Studio",
		Port:           8080,
		DataDir:        ".wayfindr",
		ContentDir:     "content",
		ContentGlob:    content.DefaultContentGlob,
		OutputDir:      "dist",
		CacheTTL:       5 * time.Minute,
		AllowedOrigins: append([]string(nil), DefaultAllowedOrigins...),
		RateLimit: RateLimitConfig{
			RPS:   20,
			Burst: 40,
		},
		Widgets: WidgetConfig{
			AutoAdvance:        carousel.DefaultInterval,
			Transition:         carousel.DefaultTransition,
			MobileBreakpoint:   reveal.MobileBreakpoint,
			CopyConfirmPointer: clipboard.PointerConfirm,
			CopyConfirmTouch:   clipboard.TouchConfirm,
		},
	}
}

// DBPath returns the location of the content database.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "content.db")
}
