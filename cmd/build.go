package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/wayfindr/studio/internal/content"
	"github.com/wayfindr/studio/internal/pages"
	"github.com/wayfindr/studio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static HTML",
	Long:  `Imports the content directory and writes every page, the 404 page and the assets to the output directory.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to the config output_dir)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	database, store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if _, err := importContent(ctx, cfg, store, false); err != nil {
		return err
	}

	loader := pages.NewLoader(content.NewStoreSource(store), logger)
	rd, err := site.NewRenderer(loader, siteOptions(cfg, false), logger)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	pageCount, err := site.NewExporter(rd, outputDir).Export(ctx)
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, pageCount)
	return nil
}
