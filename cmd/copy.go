package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wayfindr/studio/internal/content"
	"github.com/wayfindr/studio/internal/pages"
	"github.com/wayfindr/studio/internal/widget/clipboard"
)

var copyEmailCmd = &cobra.Command{
	Use:   "copy-email",
	Short: "Copy the studio's contact email to the clipboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		layout, err := pages.NewLoader(content.NewStoreSource(store), logger).Layout(cmd.Context())
		if err != nil {
			return err
		}

		ctrl := clipboard.New(clipboard.SystemWriter{}, clipboard.Options{
			PointerConfirm: cfg.Widgets.CopyConfirmPointer,
			TouchConfirm:   cfg.Widgets.CopyConfirmTouch,
			IdleLabel:      layout.Email,
			Logger:         logger,
		})
		defer ctrl.Close()

		if err := ctrl.Copy(cmd.Context(), layout.Email, clipboard.Pointer); err != nil {
			return err
		}
		fmt.Printf("%s %s\n", ctrl.Label(), layout.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyEmailCmd)
}
