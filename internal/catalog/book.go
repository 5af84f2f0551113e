// Package catalog holds the book dataset and the filter engine over it.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Any is the author/genre criteria value that matches every book.
const Any = "any"

// UnknownName is shown when an author or genre id has no display name.
const UnknownName = "Unknown"

// DefaultPageSize is the number of previews revealed per page.
const DefaultPageSize = 36

var (
	// ErrEmptyID is returned when a record has no id.
	ErrEmptyID = errors.New("empty id")
	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrBookNotFound is returned when a book id is not in the catalog.
	ErrBookNotFound = errors.New("book not found")
)

// Book is a single catalog entry.
type Book struct {
	ID          string    `toml:"id" yaml:"id" json:"id"`
	Title       string    `toml:"title" yaml:"title" json:"title"`
	Image       string    `toml:"image" yaml:"image" json:"image"`
	Author      string    `toml:"author" yaml:"author" json:"author"` // author id
	Description string    `toml:"description" yaml:"description" json:"description"`
	Published   time.Time `toml:"published" yaml:"published" json:"published"`
	Genres      []string  `toml:"genres" yaml:"genres" json:"genres"` // genre ids
}

// Year returns the publication year.
func (b Book) Year() int {
	return b.Published.Year()
}

// HasGenre reports whether the book is tagged with the genre id.
func (b Book) HasGenre(id string) bool {
	return slices.Contains(b.Genres, id)
}

// Entry is an id to display-name mapping for authors and genres.
type Entry struct {
	ID   string `toml:"id" yaml:"id" json:"id"`
	Name string `toml:"name" yaml:"name" json:"name"`
}

// Catalog is the immutable dataset: ordered books plus author and genre names.
// Slices returned by its accessors are shared and must not be modified.
type Catalog struct {
	books   []Book
	authors []Entry
	genres  []Entry

	authorNames map[string]string
	genreNames  map[string]string
}

// New validates the records and builds a catalog.
// A book may reference an author or genre that is not listed; those resolve
// to UnknownName when displayed. Repeated genre ids on a book are collapsed,
// keeping the first occurrence.
func New(books []Book, authors, genres []Entry) (*Catalog, error) {
	authorNames, err := indexEntries("author", authors)
	if err != nil {
		return nil, err
	}
	genreNames, err := indexEntries("genre", genres)
	if err != nil {
		return nil, err
	}

	books = slices.Clone(books)
	seen := make(map[string]bool, len(books))
	for i, b := range books {
		if b.ID == "" {
			return nil, fmt.Errorf("book %d (%q): %w", i, b.Title, ErrEmptyID)
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("book %q: %w", b.ID, ErrDuplicateID)
		}
		seen[b.ID] = true
		books[i].Genres = uniqueGenres(b.Genres)
	}

	return &Catalog{
		books:       books,
		authors:     slices.Clone(authors),
		genres:      slices.Clone(genres),
		authorNames: authorNames,
		genreNames:  genreNames,
	}, nil
}

func uniqueGenres(ids []string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func indexEntries(kind string, entries []Entry) (map[string]string, error) {
	names := make(map[string]string, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("%s %d (%q): %w", kind, i, e.Name, ErrEmptyID)
		}
		if _, ok := names[e.ID]; ok {
			return nil, fmt.Errorf("%s %q: %w", kind, e.ID, ErrDuplicateID)
		}
		names[e.ID] = e.Name
	}
	return names, nil
}

// Books returns every book in dataset order.
func (c *Catalog) Books() []Book {
	return c.books
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Authors returns the author options in declaration order.
func (c *Catalog) Authors() []Entry {
	return c.authors
}

// Genres returns the genre options in declaration order.
func (c *Catalog) Genres() []Entry {
	return c.genres
}

// Find looks a book up by id in the full dataset.
func (c *Catalog) Find(id string) (Book, bool) {
	for _, b := range c.books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}

// AuthorName resolves an author id, falling back to UnknownName.
func (c *Catalog) AuthorName(id string) string {
	if name, ok := c.authorNames[id]; ok && name != "" {
		return name
	}
	return UnknownName
}

// GenreName resolves a genre id, falling back to UnknownName.
func (c *Catalog) GenreName(id string) string {
	if name, ok := c.genreNames[id]; ok && name != "" {
		return name
	}
	return UnknownName
}

// ResolveAuthor maps an author id or display name to an author id.
// Empty input and "any" resolve to Any.
func (c *Catalog) ResolveAuthor(query string) (string, bool) {
	return resolve(query, c.authors)
}

// ResolveGenre maps a genre id or display name to a genre id.
// Empty input and "any" resolve to Any.
func (c *Catalog) ResolveGenre(query string) (string, bool) {
	return resolve(query, c.genres)
}
