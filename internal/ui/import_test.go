package ui

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/bookconnect/internal/db"
)

const yamlCatalog = `authors:
  - id: austen
    name: Jane Austen
genres:
  - id: classic
    name: Classic
  - id: romance
    name: Romance
books:
  - id: emma
    title: Emma
    author: austen
    published: 1815-12-23T00:00:00Z
    genres: [classic, romance]
  - title: Persuasion
    author: austen
    published: 1817-12-20T00:00:00Z
    genres: [romance]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestImportCatalog(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	sourcePath := writeFile(t, dir, "books.yaml", yamlCatalog)

	dest, err := db.New(filepath.Join(dir, "dest.db"))
	if err != nil {
		t.Fatalf("creating destination repo: %v", err)
	}
	defer func() { _ = dest.Close() }()

	var out bytes.Buffer
	if err := importCatalog(ctx, &out, dest, sourcePath); err != nil {
		t.Fatalf("importCatalog failed: %v", err)
	}
	if !strings.Contains(out.String(), "Imported 2 books, 1 authors and 2 genres") {
		t.Fatalf("unexpected output %q", out.String())
	}

	c, err := dest.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	books := c.Books()
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d", len(books))
	}
	if books[0].ID != "emma" {
		t.Fatalf("first book id = %q, want emma", books[0].ID)
	}
	if books[1].ID == "" {
		t.Fatal("book without id should get a generated id")
	}
	if books[1].Title != "Persuasion" {
		t.Fatalf("second book = %q, want Persuasion", books[1].Title)
	}
}

func TestImportCatalogUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	sourcePath := writeFile(t, dir, "books.csv", "id,title\n")

	dest, err := db.New(filepath.Join(dir, "dest.db"))
	if err != nil {
		t.Fatalf("creating destination repo: %v", err)
	}
	defer func() { _ = dest.Close() }()

	var out bytes.Buffer
	if err := importCatalog(context.Background(), &out, dest, sourcePath); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}
