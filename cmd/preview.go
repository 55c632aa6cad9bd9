package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/wayfindr/studio/internal/site"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve the exported static site locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = cfg.OutputDir
		}
		port, _ := cmd.Flags().GetInt("port")
		if port <= 0 {
			port = cfg.Port
		}
		open, _ := cmd.Flags().GetBool("open")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return site.Preview(ctx, dir, port, open, logger)
	},
}

func init() {
	previewCmd.Flags().String("dir", "", "exported site directory (defaults to the config output_dir)")
	previewCmd.Flags().Int("port", 0, "port to listen on (defaults to the config port)")
	previewCmd.Flags().Bool("open", false, "open the site in a browser")
	rootCmd.AddCommand(previewCmd)
}
