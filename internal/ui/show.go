package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/bookconnect/internal/browse"
	"github.com/javiermolinar/bookconnect/internal/catalog"
)

func (a *App) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one book",
		Long: `Display a book's title, author, year, genres and description.

Example:
  bookconnect show war-and-peace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCatalog(context.Background())
			if err != nil {
				return err
			}
			return printBook(cmd.OutOrStdout(), c, args[0], termWidth())
		},
	}
}

func printBook(w io.Writer, c *catalog.Catalog, id string, width int) error {
	b, ok := c.Find(id)
	if !ok {
		return fmt.Errorf("%w: %q", catalog.ErrBookNotFound, id)
	}

	fmt.Fprintf(w, "=== %s ===\n", formatHeader(b.Title))
	fmt.Fprintln(w, formatAuthor(browse.DetailSubtitle(c, b)))

	if len(b.Genres) > 0 {
		names := make([]string, len(b.Genres))
		for i, g := range b.Genres {
			names[i] = c.GenreName(g)
		}
		fmt.Fprintf(w, "%s %s\n", formatMuted("Genres:"), strings.Join(names, ", "))
	}
	if b.Image != "" {
		fmt.Fprintf(w, "%s %s\n", formatMuted("Cover:"), b.Image)
	}

	fmt.Fprintln(w)
	description := b.Description
	if description == "" {
		description = "No description."
	}
	fmt.Fprintln(w, wordwrap.String(description, min(max(width, 20), 100)))
	return nil
}
