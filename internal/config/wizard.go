package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectContentDir returns the first conventional content directory that
// exists in the working directory.
func detectContentDir() string {
	for _, dir := range []string{"content", "data", "cms"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "content"
}

func validatePort(s string) error {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return errors.New("port must be a number between 1 and 65535")
	}
	return nil
}

func validateBaseURL(s string) error {
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("enter an absolute http(s) URL, or leave blank")
	}
	return nil
}

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to wayfindr! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.SiteName,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.SiteName = strings.TrimSpace(name)

	// 2. Public URL.
	urlPrompt := promptui.Prompt{
		Label:    "Public base URL (blank for none)",
		Validate: validateBaseURL,
	}
	baseURL, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	cfg.BaseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port for wayfindr serve",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 4. Content directory.
	contentPrompt := promptui.Prompt{
		Label:   "Content directory (YAML files)",
		Default: detectContentDir(),
	}
	if cfg.ContentDir, err = contentPrompt.Run(); err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}

	// 5. Build output.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for wayfindr build",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 6. Extra CORS origins for the content API.
	originsPrompt := promptui.Prompt{
		Label:   "Extra allowed API origins (comma-separated, blank for none)",
		Default: "",
	}
	origins, err := originsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("allowed origins: %w", err)
	}
	cfg.AllowedOrigins = append(cfg.AllowedOrigins, splitAndTrim(origins)...)

	// 7. Cache mode.
	cachePrompt := promptui.Select{
		Label: "Content caching",
		Items: []string{
			"cached: re-read content every 5 minutes",
			"live:   read content on every request",
		},
	}
	idx, _, err := cachePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cache selection: %w", err)
	}
	if idx == 1 {
		cfg.CacheTTL = 0
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	if _, err := os.Stat(cfg.ContentDir); os.IsNotExist(err) {
		fmt.Println("Run `wayfindr content seed` to start from the built-in content.")
	}
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
