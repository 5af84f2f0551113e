// Package db provides SQLite storage for the book catalog.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/bookconnect/internal/catalog"
)

// SQLite stores a catalog and implements catalog.Source.
type SQLite struct {
	db *sql.DB
}

// New opens the database at path and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Load implements catalog.Source.
func (s *SQLite) Load(ctx context.Context) (*catalog.Catalog, error) {
	return s.LoadCatalog(ctx)
}

// SaveCatalog replaces the stored catalog in a single transaction.
// Positions are stored so LoadCatalog returns records in the same order.
func (s *SQLite) SaveCatalog(ctx context.Context, c *catalog.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"book_genres", "books", "genres", "authors"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := insertEntries(ctx, tx, "authors", c.Authors()); err != nil {
		return err
	}
	if err := insertEntries(ctx, tx, "genres", c.Genres()); err != nil {
		return err
	}

	bookStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO books (id, position, title, image, author_id, description, published)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing book insert: %w", err)
	}
	defer func() { _ = bookStmt.Close() }()

	genreStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO book_genres (book_id, genre_id, position) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing book genre insert: %w", err)
	}
	defer func() { _ = genreStmt.Close() }()

	for i, b := range c.Books() {
		_, err := bookStmt.ExecContext(ctx,
			b.ID,
			i,
			b.Title,
			b.Image,
			b.Author,
			b.Description,
			b.Published.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting book %q: %w", b.ID, err)
		}
		for j, g := range b.Genres {
			if _, err := genreStmt.ExecContext(ctx, b.ID, g, j); err != nil {
				return fmt.Errorf("inserting genre %q for book %q: %w", g, b.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func insertEntries(ctx context.Context, tx *sql.Tx, table string, entries []catalog.Entry) error {
	query := "INSERT INTO " + table + " (id, name, position) VALUES (?, ?, ?)"
	for i, e := range entries {
		if _, err := tx.ExecContext(ctx, query, e.ID, e.Name, i); err != nil {
			return fmt.Errorf("inserting into %s: %w", table, err)
		}
	}
	return nil
}

// LoadCatalog reads the stored catalog.
func (s *SQLite) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	authors, err := s.listEntries(ctx, "authors")
	if err != nil {
		return nil, err
	}
	genres, err := s.listEntries(ctx, "genres")
	if err != nil {
		return nil, err
	}

	bookGenres, err := s.listBookGenres(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, image, author_id, description, published
		FROM books
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var books []catalog.Book
	for rows.Next() {
		var (
			b         catalog.Book
			published string
		)
		if err := rows.Scan(&b.ID, &b.Title, &b.Image, &b.Author, &b.Description, &published); err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		b.Published, err = time.Parse(time.RFC3339, published)
		if err != nil {
			return nil, fmt.Errorf("parsing published date of %q: %w", b.ID, err)
		}
		b.Genres = bookGenres[b.ID]
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}

	return catalog.New(books, authors, genres)
}

func (s *SQLite) listEntries(ctx context.Context, table string) ([]catalog.Entry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM "+table+" ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var entries []catalog.Entry
	for rows.Next() {
		var e catalog.Entry
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", table, err)
	}
	return entries, nil
}

func (s *SQLite) listBookGenres(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT book_id, genre_id FROM book_genres ORDER BY book_id, position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying book genres: %w", err)
	}
	defer func() { _ = rows.Close() }()

	genres := make(map[string][]string)
	for rows.Next() {
		var bookID, genreID string
		if err := rows.Scan(&bookID, &genreID); err != nil {
			return nil, fmt.Errorf("scanning book genre: %w", err)
		}
		genres[bookID] = append(genres[bookID], genreID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating book genres: %w", err)
	}
	return genres, nil
}

// Counts returns the number of stored books, authors and genres.
func (s *SQLite) Counts(ctx context.Context) (books, authors, genres int, err error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM books),
			(SELECT COUNT(*) FROM authors),
			(SELECT COUNT(*) FROM genres)
	`
	if err := s.db.QueryRowContext(ctx, query).Scan(&books, &authors, &genres); err != nil {
		return 0, 0, 0, fmt.Errorf("counting catalog rows: %w", err)
	}
	return books, authors, genres, nil
}
