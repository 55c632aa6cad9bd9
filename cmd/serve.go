package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/wayfindr/studio/internal/content"
	"github.com/wayfindr/studio/internal/pages"
	"github.com/wayfindr/studio/internal/server"
	"github.com/wayfindr/studio/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site and the content API",
	Long: `Imports the content directory, then serves the site pages and the
read-only JSON content API. With --watch, edits to content files are
re-imported and open pages reload.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to the config port)")
	serveCmd.Flags().Bool("watch", false, "re-import content on change and live-reload pages")
	serveCmd.Flags().Bool("open", false, "open the site in a browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Port = port
	}
	watch, _ := cmd.Flags().GetBool("watch")
	open, _ := cmd.Flags().GetBool("open")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if _, err := importContent(ctx, cfg, store, false); err != nil {
		return err
	}

	var src content.Source = content.NewStoreSource(store)
	var cached *content.CachedSource
	if cfg.CacheTTL > 0 {
		cached = content.NewCachedSource(src, cfg.CacheTTL)
		src = cached
	}

	var hub *site.Hub
	if watch {
		hub = site.NewHub(logger)
		defer hub.Close()
	}

	rd, err := site.NewRenderer(pages.NewLoader(src, logger), siteOptions(cfg, watch), logger)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	srv := server.New(server.Config{
		Port:           cfg.Port,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimit:      cfg.RateLimit.RPS,
		Burst:          cfg.RateLimit.Burst,
	}, logger)
	srv.API(func(r chi.Router) {
		content.RegisterRoutes(r, src)
	})
	site.RegisterRoutes(srv.Router(), rd, hub)

	if watch {
		if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
			return err
		}
		w := content.NewWatcher(content.NewImporter(store, logger), cfg.ContentDir, cfg.ContentGlob, logger)
		w.OnChange(func(content.ImportResult) {
			if cached != nil {
				cached.Invalidate()
			}
			hub.Broadcast()
		})
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("watching %s: %w", cfg.ContentDir, err)
		}
		defer w.Stop()
	}

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	fmt.Printf("Serving %s at %s\n", cfg.SiteName, url)
	fmt.Println("Press Ctrl+C to stop.")
	if open {
		site.OpenBrowser(url)
	}
	return srv.Run(ctx)
}
