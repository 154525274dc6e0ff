package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const defaultIndexOutput = "courses_indexed.json"

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Build, import and inspect the course catalog",
	}

	cmd.AddCommand(
		newCatalogIndexCmd(app),
		newCatalogImportCmd(app),
		newCatalogTagsCmd(app),
		newCatalogExportCmd(app),
	)

	return cmd
}

func newCatalogIndexCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "index CSV",
		Short: "Convert the master course list CSV into catalog JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Catalog.Index(cmd.Context(), args[0], output)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIndexResult(res))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultIndexOutput, "Catalog JSON file to write")

	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import JSON",
		Short: "Replace the SQLite catalog store with a catalog JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Catalog.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res, app.DBPath))
			return nil
		},
	}
}

func newCatalogTagsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Show how many courses carry each tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadCatalog(cmd, app); err != nil {
				return err
			}
			counts, err := app.Catalog.Tags(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTagCounts(counts))
			return nil
		},
	}
}

func newCatalogExportCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog in the master course list CSV layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadCatalog(cmd, app); err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			n, err := app.Catalog.Export(cmd.Context(), w)
			if err != nil {
				return err
			}
			if output != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %s to %s\n",
					formatter.StyleGreen.Render("✔"),
					formatter.Plural(n, "course", "courses"),
					formatter.Bold(output))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV file to write (default stdout)")

	return cmd
}
