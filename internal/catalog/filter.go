package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Criteria are the user-submitted filter parameters.
type Criteria struct {
	Title  string // case-insensitive substring; empty matches all
	Author string // author id or Any
	Genre  string // genre id or Any
}

// NewCriteria builds criteria from raw form values. The title is trimmed and
// empty author/genre values become Any.
func NewCriteria(title, author, genre string) Criteria {
	author = strings.TrimSpace(author)
	if author == "" {
		author = Any
	}
	genre = strings.TrimSpace(genre)
	if genre == "" {
		genre = Any
	}
	return Criteria{
		Title:  strings.TrimSpace(title),
		Author: author,
		Genre:  genre,
	}
}

// DefaultCriteria matches the whole dataset.
func DefaultCriteria() Criteria {
	return Criteria{Author: Any, Genre: Any}
}

// IsDefault reports whether the criteria match every book.
func (c Criteria) IsDefault() bool {
	return strings.TrimSpace(c.Title) == "" && isAny(c.Author) && isAny(c.Genre)
}

func isAny(v string) bool {
	return v == "" || v == Any
}

// Filter returns the books matching the criteria, in dataset order.
// The result is never nil; an empty slice means nothing matched.
func Filter(books []Book, c Criteria) []Book {
	m := newMatcher(c)
	result := make([]Book, 0, len(books))
	for _, b := range books {
		if m.match(b) {
			result = append(result, b)
		}
	}
	return result
}

type matcher struct {
	lower  cases.Caser
	title  string
	author string
	genre  string
}

func newMatcher(c Criteria) *matcher {
	lower := cases.Lower(language.Und)
	return &matcher{
		lower:  lower,
		title:  lower.String(strings.TrimSpace(c.Title)),
		author: c.Author,
		genre:  c.Genre,
	}
}

func (m *matcher) match(b Book) bool {
	if m.title != "" && !strings.Contains(m.lower.String(b.Title), m.title) {
		return false
	}
	if !isAny(m.author) && b.Author != m.author {
		return false
	}
	if !isAny(m.genre) && !b.HasGenre(m.genre) {
		return false
	}
	return true
}

func resolve(query string, entries []Entry) (string, bool) {
	query = strings.TrimSpace(query)
	if isAny(strings.ToLower(query)) {
		return Any, true
	}
	for _, e := range entries {
		if e.ID == query {
			return e.ID, true
		}
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name, query) {
			return e.ID, true
		}
	}
	return "", false
}
