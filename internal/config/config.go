package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment overrides. A double underscore separates
// nested keys: WAYFINDR_RATE_LIMIT__RPS sets rate_limit.rps.
const EnvPrefix = "WAYFINDR_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (WAYFINDR_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps WAYFINDR_WIDGETS__AUTO_ADVANCE to widgets.auto_advance.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SiteName) == "" {
		return fmt.Errorf("site_name is required")
	}

	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid base_url %q: must be an absolute http(s) URL", c.BaseURL)
		}
		if strings.HasSuffix(c.BaseURL, "/") {
			return fmt.Errorf("base_url %q must not end with a slash", c.BaseURL)
		}
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if !doublestar.ValidatePattern(c.ContentGlob) {
		return fmt.Errorf("invalid content_glob %q", c.ContentGlob)
	}

	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be non-negative")
	}

	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("rate_limit.rps must be non-negative")
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate_limit.burst must be at least 1 when rps is set")
	}

	w := c.Widgets
	if w.AutoAdvance < 0 || w.Transition < 0 || w.CopyConfirmPointer < 0 || w.CopyConfirmTouch < 0 {
		return fmt.Errorf("widget durations must be non-negative")
	}
	if w.AutoAdvance > 0 && w.Transition >= w.AutoAdvance {
		return fmt.Errorf("widgets.transition must be shorter than widgets.auto_advance")
	}
	if w.MobileBreakpoint < 0 {
		return fmt.Errorf("widgets.mobile_breakpoint must be non-negative")
	}

	return nil
}
