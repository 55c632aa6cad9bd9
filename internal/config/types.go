package config

import "time"

// Config is the top-level wayfindr configuration, corresponding to
// .wayfindr.yml.
type Config struct {
	SiteName string `yaml:"site_name" koanf:"site_name"`
	// BaseURL is the public origin used for canonical links.
	BaseURL string `yaml:"base_url,omitempty" koanf:"base_url"`
	Port    int    `yaml:"port" koanf:"port"`
	// DataDir holds the SQLite content store.
	DataDir string `yaml:"data_dir" koanf:"data_dir"`
	// ContentDir is the tree of YAML content files imported into the store.
	ContentDir  string `yaml:"content_dir" koanf:"content_dir"`
	ContentGlob string `yaml:"content_glob" koanf:"content_glob"`
	OutputDir   string `yaml:"output_dir" koanf:"output_dir"`
	// WasmDir holds the compiled widget runtime. Empty disables it.
	WasmDir        string          `yaml:"wasm_dir,omitempty" koanf:"wasm_dir"`
	CacheTTL       time.Duration   `yaml:"cache_ttl" koanf:"cache_ttl"`
	AllowedOrigins []string        `yaml:"allowed_origins" koanf:"allowed_origins"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" koanf:"rate_limit"`
	Widgets        WidgetConfig    `yaml:"widgets" koanf:"widgets"`
}

// RateLimitConfig bounds requests per client IP on the content API.
// RPS 0 disables the limiter.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps" koanf:"rps"`
	Burst int     `yaml:"burst" koanf:"burst"`
}

// WidgetConfig holds the timings handed to the interactive widgets.
type WidgetConfig struct {
	AutoAdvance        time.Duration `yaml:"auto_advance" koanf:"auto_advance"`
	Transition         time.Duration `yaml:"transition" koanf:"transition"`
	MobileBreakpoint   int           `yaml:"mobile_breakpoint" koanf:"mobile_breakpoint"`
	CopyConfirmPointer time.Duration `yaml:"copy_confirm_pointer" koanf:"copy_confirm_pointer"`
	CopyConfirmTouch   time.Duration `yaml:"copy_confirm_touch" koanf:"copy_confirm_touch"`
}
