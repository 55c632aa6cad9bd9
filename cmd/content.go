package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wayfindr/studio/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Manage the local content store",
}

var contentImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import YAML content files into the store",
	Long: `Imports every file under the content directory matching the content glob.
Files whose checksum is unchanged since the last import are skipped unless
--force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")
		database, store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		if _, err := os.Stat(cfg.ContentDir); err != nil {
			return fmt.Errorf("content directory %s: %w", cfg.ContentDir, err)
		}
		res, err := importContent(cmd.Context(), cfg, store, force)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d documents from %d files (%d unchanged)\n", res.Documents, res.Files, res.Skipped)
		if res.Removed > 0 {
			fmt.Printf("Removed %d documents no longer in the content files\n", res.Removed)
		}
		return nil
	},
}

var contentExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the stored content back out as YAML files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = cfg.ContentDir
		}
		database, store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		files, err := content.NewImporter(store, logger).Export(cmd.Context(), dir)
		if err != nil {
			return fmt.Errorf("exporting content: %w", err)
		}
		for _, f := range files {
			fmt.Println("  " + f)
		}
		fmt.Printf("Wrote %d files to %s\n", len(files), dir)
		return nil
	},
}

var contentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		typ, _ := cmd.Flags().GetString("type")
		database, store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		defer tw.Flush()

		if typ == "" {
			counts, err := store.Counts(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(tw, "TYPE\tDOCUMENTS")
			for _, t := range content.DocTypes {
				fmt.Fprintf(tw, "%s\t%d\n", t, counts[t])
			}
			return nil
		}

		t := content.DocType(typ)
		if !t.Valid() {
			return fmt.Errorf("unknown document type %q", typ)
		}
		docs, err := store.List(cmd.Context(), t)
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "SLUG\tORDER\tUPDATED")
		for _, d := range docs {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", d.Slug, d.Order, d.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var contentSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the store with the built-in sample content",
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

		n, err := content.NewImporter(store, logger).Seed(cmd.Context())
		if err != nil {
			return fmt.Errorf("seeding content: %w", err)
		}
		fmt.Printf("Seeded %d documents. Run `wayfindr content export` to edit them as YAML.\n", n)
		return nil
	},
}

func init() {
	contentImportCmd.Flags().Bool("force", false, "re-import files even when unchanged")
	contentExportCmd.Flags().String("dir", "", "directory to write (defaults to the config content_dir)")
	contentListCmd.Flags().String("type", "", "list documents of one type")

	contentCmd.AddCommand(contentImportCmd, contentExportCmd, contentListCmd, contentSeedCmd)
	rootCmd.AddCommand(contentCmd)
}
