// Package browse holds the browsing state machine: the current matches,
// the page cursor, the open overlays and the theme, plus the event handlers
// that move between them and project the result onto a Surface.
package browse

import (
	"errors"

	"github.com/javiermolinar/bookconnect/internal/catalog"
)

// ErrNoMorePages is returned when advancing past the last match.
var ErrNoMorePages = errors.New("no more pages")

// VisibleSlice returns matches[0 : page*pageSize), clipped to len(matches).
func VisibleSlice(matches []catalog.Book, page, pageSize int) []catalog.Book {
	end := visibleEnd(len(matches), page, pageSize)
	return matches[:end:end]
}

// RemainingCount returns how many matches are not yet visible.
func RemainingCount(matches []catalog.Book, page, pageSize int) int {
	return max(0, len(matches)-visibleEnd(len(matches), page, pageSize))
}

func visibleEnd(n, page, pageSize int) int {
	if page < 1 || pageSize < 1 {
		return 0
	}
	return min(n, page*pageSize)
}

// Pager tracks the current matches and how many pages of them are revealed.
type Pager struct {
	matches  []catalog.Book
	page     int
	pageSize int
}

// NewPager creates a pager on its first page. A page size below 1 falls back
// to catalog.DefaultPageSize.
func NewPager(matches []catalog.Book, pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = catalog.DefaultPageSize
	}
	return &Pager{matches: matches, page: 1, pageSize: pageSize}
}

// Apply replaces the matches and resets to the first page.
func (p *Pager) Apply(matches []catalog.Book) {
	p.matches = matches
	p.page = 1
}

// Advance reveals the next page and returns only the newly visible books.
// It returns ErrNoMorePages, leaving the pager unchanged, when nothing remains.
func (p *Pager) Advance() ([]catalog.Book, error) {
	if p.Remaining() == 0 {
		return nil, ErrNoMorePages
	}
	start := visibleEnd(len(p.matches), p.page, p.pageSize)
	p.page++
	end := visibleEnd(len(p.matches), p.page, p.pageSize)
	return p.matches[start:end:end], nil
}

// Visible returns the revealed prefix of the matches.
func (p *Pager) Visible() []catalog.Book {
	return VisibleSlice(p.matches, p.page, p.pageSize)
}

// Remaining returns the number of matches not yet revealed.
func (p *Pager) Remaining() int {
	return RemainingCount(p.matches, p.page, p.pageSize)
}

// Matches returns the current matches.
func (p *Pager) Matches() []catalog.Book {
	return p.matches
}

// Page returns the page cursor (always >= 1).
func (p *Pager) Page() int {
	return p.page
}

// PageSize returns the configured page size.
func (p *Pager) PageSize() int {
	return p.pageSize
}
