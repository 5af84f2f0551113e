package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/bookconnect/internal/catalog"
	"github.com/javiermolinar/bookconnect/internal/db"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <catalog_file>",
		Short: "Import a catalog file into the database",
		Long: `Decode a TOML, YAML or JSON catalog and store it in the SQLite
database, replacing its contents. Use --source=sqlite to browse it.

Example:
  bookconnect import ~/books.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("catalog file does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking catalog file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("catalog file path is a directory: %s", sourcePath)
			}

			return importCatalog(context.Background(), cmd.OutOrStdout(), a.store, sourcePath)
		},
	}

	return cmd
}

func importCatalog(ctx context.Context, w io.Writer, dest *db.SQLite, sourcePath string) error {
	c, err := catalog.FileSource{Path: sourcePath}.Load(ctx)
	if err != nil {
		return fmt.Errorf("reading catalog: %w", err)
	}

	if err := dest.SaveCatalog(ctx, c); err != nil {
		return fmt.Errorf("storing catalog: %w", err)
	}

	books, authors, genres, err := dest.Counts(ctx)
	if err != nil {
		return fmt.Errorf("counting catalog: %w", err)
	}

	fmt.Fprintf(w, "Imported %d books, %d authors and %d genres from %s\n", books, authors, genres, sourcePath)
	return nil
}
