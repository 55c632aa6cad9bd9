package cmd

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wayfindr/studio/internal/config"
	"github.com/wayfindr/studio/internal/content"
	"github.com/wayfindr/studio/internal/db"
	"github.com/wayfindr/studio/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `wayfindr init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// openStore opens the content database under the data directory.
func openStore(cfg *config.Config) (*db.DB, *content.Store, error) {
	database, err := db.Open(cfg.DBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening content store: %w", err)
	}
	logger.Debug("content store opened", zap.String("path", database.Path()))
	return database, content.NewStore(database), nil
}

// importContent imports the content directory into the store. A missing
// directory is not an error: the store, or the built-in content, is used.
func importContent(ctx context.Context, cfg *config.Config, store *content.Store, force bool) (content.ImportResult, error) {
	if _, err := os.Stat(cfg.ContentDir); os.IsNotExist(err) {
		logger.Debug("no content directory", zap.String("dir", cfg.ContentDir))
		return content.ImportResult{}, nil
	}
	im := content.NewImporter(store, logger)
	im.Force = force
	res, err := im.ImportDir(ctx, cfg.ContentDir, cfg.ContentGlob)
	if err != nil {
		return res, fmt.Errorf("importing %s: %w", cfg.ContentDir, err)
	}
	logger.Info("content imported",
		zap.Int("files", res.Files),
		zap.Int("unchanged", res.Skipped),
		zap.Int("documents", res.Documents),
		zap.Int("removed", res.Removed))
	return res, nil
}

// siteOptions maps the config onto renderer options.
func siteOptions(cfg *config.Config, liveReload bool) site.Options {
	w := cfg.Widgets
	return site.Options{
		SiteName: cfg.SiteName,
		BaseURL:  cfg.BaseURL,
		Widgets: site.WidgetOptions{
			AutoAdvance:        w.AutoAdvance,
			Transition:         w.Transition,
			MobileBreakpoint:   w.MobileBreakpoint,
			CopyConfirmPointer: w.CopyConfirmPointer,
			CopyConfirmTouch:   w.CopyConfirmTouch,
		},
		LiveReload: liveReload,
		WasmDir:    cfg.WasmDir,
	}
}
