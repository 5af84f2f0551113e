package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS authors (
			id       TEXT PRIMARY KEY,
			name     TEXT NOT NULL,
			position INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS genres (
			id       TEXT PRIMARY KEY,
			name     TEXT NOT NULL,
			position INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS books (
			id          TEXT PRIMARY KEY,
			position    INTEGER NOT NULL,
			title       TEXT NOT NULL,
			image       TEXT NOT NULL DEFAULT '',
			author_id   TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			published   TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS book_genres (
			book_id  TEXT NOT NULL REFERENCES books(id),
			genre_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (book_id, genre_id)
		);

		CREATE INDEX IF NOT EXISTS idx_books_position ON books(position);
		CREATE INDEX IF NOT EXISTS idx_books_author ON books(author_id);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating catalog tables: %w", err)
	}

	return nil
}
