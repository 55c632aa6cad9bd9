package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wayfindr/studio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a wayfindr config with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and writes the config file (.wayfindr.yml unless --config is given).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
