package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/bookconnect/internal/browse"
	"github.com/javiermolinar/bookconnect/internal/catalog"
)

// listOptions are the flags of the list command.
type listOptions struct {
	title  string
	author string
	genre  string
	page   int
}

func (a *App) listCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books page by page",
		Long: `List the books that match the given filters.

Author and genre accept an id or an exact name. --page reveals that
many pages, like pressing "show more" in the browser.`,
		Example: `  bookconnect list
  bookconnect list --title=war
  bookconnect list --author="Jane Austen" --page=2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.loadCatalog(context.Background())
			if err != nil {
				return err
			}

			rec, err := browseListing(c, opts, a.config.Catalog.PageSize)
			if err != nil {
				return err
			}

			printListing(cmd.OutOrStdout(), rec, termWidth())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "Title contains (case-insensitive)")
	cmd.Flags().StringVar(&opts.author, "author", catalog.Any, "Author id or name")
	cmd.Flags().StringVar(&opts.genre, "genre", catalog.Any, "Genre id or name")
	cmd.Flags().IntVar(&opts.page, "page", 1, "Number of pages to reveal")

	return cmd
}

// criteria resolves the flag values against the catalog.
func (o listOptions) criteria(c *catalog.Catalog) (catalog.Criteria, error) {
	author, ok := c.ResolveAuthor(o.author)
	if !ok {
		return catalog.Criteria{}, fmt.Errorf("unknown author %q", o.author)
	}
	genre, ok := c.ResolveGenre(o.genre)
	if !ok {
		return catalog.Criteria{}, fmt.Errorf("unknown genre %q", o.genre)
	}
	return catalog.NewCriteria(o.title, author, genre), nil
}

// browseListing replays the listing through a browse session and returns
// what it rendered.
func browseListing(c *catalog.Catalog, opts listOptions, pageSize int) (*browse.Recorder, error) {
	if opts.page < 1 {
		return nil, fmt.Errorf("page must be at least 1, got %d", opts.page)
	}
	criteria, err := opts.criteria(c)
	if err != nil {
		return nil, err
	}

	rec := browse.NewRecorder()
	s := browse.NewSession(c, rec, browse.WithPageSize(pageSize))
	s.Start()

	if !criteria.IsDefault() {
		if err := s.Dispatch(browse.SubmitSearch(criteria)); err != nil {
			return nil, err
		}
	}
	for page := 1; page < opts.page; page++ {
		err := s.Dispatch(browse.ClickShowMore())
		if errors.Is(err, browse.ErrNoMorePages) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return rec, nil
}

// printListing prints the recorded list and the show-more line.
func printListing(w io.Writer, rec *browse.Recorder, width int) {
	if rec.Visible(browse.SlotListMessage) {
		fmt.Fprintln(w, "No books match your search.")
		return
	}

	items := rec.Items(browse.SlotItems)
	idxW := len(fmt.Sprint(len(items)))
	// index, two separators and a minimum author column
	titleW := max((width-idxW-4)*3/5, 10)
	authorW := max(width-idxW-4-titleW, 8)

	for i, p := range items {
		title := truncate.StringWithTail(p.Title, uint(titleW), "…")
		author := truncate.StringWithTail(p.AuthorName, uint(authorW), "…")
		pad := strings.Repeat(" ", max(titleW-ansi.StringWidth(title), 0))
		fmt.Fprintf(w, "%*d  %s%s  %s\n", idxW, i+1, formatTitle(title), pad, formatAuthor(author))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, formatMuted(rec.Text(browse.SlotListButton)))
}
