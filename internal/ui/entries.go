package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/bookconnect/internal/catalog"
)

func (a *App) authorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "authors",
		Short: "List authors in catalog order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.loadCatalog(context.Background())
			if err != nil {
				return err
			}
			printEntries(cmd.OutOrStdout(), c.Authors())
			return nil
		},
	}
}

func (a *App) genresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List genres in catalog order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.loadCatalog(context.Background())
			if err != nil {
				return err
			}
			printEntries(cmd.OutOrStdout(), c.Genres())
			return nil
		},
	}
}

// printEntries prints id and name columns.
func printEntries(w io.Writer, entries []catalog.Entry) {
	idW := 0
	for _, e := range entries {
		idW = max(idW, len(e.ID))
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%-*s  %s\n", idW, e.ID, e.Name)
	}
}
