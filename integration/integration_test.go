package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/javiermolinar/bookconnect/internal/browse"
	"github.com/javiermolinar/bookconnect/internal/catalog"
	"github.com/javiermolinar/bookconnect/internal/db"
)

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	repo, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// importFile decodes a catalog file and stores it in repo.
func importFile(t *testing.T, repo *db.SQLite, name, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	c, err := catalog.FileSource{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("failed to load %s: %v", name, err)
	}
	if err := repo.SaveCatalog(context.Background(), c); err != nil {
		t.Fatalf("failed to save catalog: %v", err)
	}
}

// startSession loads the catalog from repo and starts a session over it.
func startSession(t *testing.T, repo *db.SQLite, pageSize int) (*browse.Session, *browse.Recorder) {
	t.Helper()
	c, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	rec := browse.NewRecorder()
	s := browse.NewSession(c, rec, browse.WithPageSize(pageSize))
	s.Start()
	return s, rec
}

func previewTitles(items []browse.Preview) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Title
	}
	return out
}

const jsonCatalog = `{
  "authors": [
    {"id": "tolstoy", "name": "Leo Tolstoy"},
    {"id": "wells", "name": "H. G. Wells"}
  ],
  "genres": [
    {"id": "classic", "name": "Classic"},
    {"id": "scifi", "name": "Science Fiction"}
  ],
  "books": [
    {"id": "war-and-peace", "title": "War and Peace", "author": "tolstoy",
     "description": "Napoleon invades Russia.", "published": "1869-01-01T00:00:00Z",
     "image": "war.jpg", "genres": ["classic"]},
    {"id": "anna-karenina", "title": "Anna Karenina", "author": "tolstoy",
     "published": "1878-01-01T00:00:00Z", "genres": ["classic"]},
    {"id": "time-machine", "title": "The Time Machine", "author": "wells",
     "published": "1895-01-01T00:00:00Z", "genres": ["scifi", "classic"]},
    {"id": "war-of-the-worlds", "title": "The War of the Worlds", "author": "wells",
     "published": "1898-01-01T00:00:00Z", "genres": ["scifi"]},
    {"id": "lost", "title": "Lost Manuscript", "author": "nobody",
     "published": "1900-01-01T00:00:00Z"}
  ]
}`

func TestImportedCatalogPagesThroughSession(t *testing.T) {
	repo := openRepo(t)
	importFile(t, repo, "books.json", jsonCatalog)

	s, rec := startSession(t, repo, 2)

	if diff := cmp.Diff([]string{"War and Peace", "Anna Karenina"}, previewTitles(rec.Items(browse.SlotItems))); diff != "" {
		t.Fatalf("first page mismatch (-want +got):\n%s", diff)
	}
	if got := rec.Text(browse.SlotListButton); got != "Show more (3)" {
		t.Fatalf("button = %q, want Show more (3)", got)
	}

	for range 2 {
		if err := s.Dispatch(browse.ClickShowMore()); err != nil {
			t.Fatalf("show more failed: %v", err)
		}
	}
	if got := len(rec.Items(browse.SlotItems)); got != 5 {
		t.Fatalf("items = %d, want 5", got)
	}
	if rec.Attr(browse.SlotListButton, browse.AttrDisabled) != "true" {
		t.Fatal("button should be disabled")
	}
	if err := s.Dispatch(browse.ClickShowMore()); !errors.Is(err, browse.ErrNoMorePages) {
		t.Fatalf("err = %v, want ErrNoMorePages", err)
	}

	items := rec.Items(browse.SlotItems)
	if items[4].AuthorName != catalog.UnknownName {
		t.Fatalf("unknown author rendered as %q", items[4].AuthorName)
	}
}

func TestImportedCatalogSearchAndDetail(t *testing.T) {
	repo := openRepo(t)
	importFile(t, repo, "books.json", jsonCatalog)

	s, rec := startSession(t, repo, 36)

	criteria := catalog.NewCriteria("war", catalog.Any, "classic")
	if err := s.Dispatch(browse.SubmitSearch(criteria)); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if diff := cmp.Diff([]string{"War and Peace"}, previewTitles(rec.Items(browse.SlotItems))); diff != "" {
		t.Fatalf("search mismatch (-want +got):\n%s", diff)
	}

	if err := s.Dispatch(browse.ClickItem("war-and-peace")); err != nil {
		t.Fatalf("click failed: %v", err)
	}
	if !rec.Visible(browse.SlotDetailOverlay) {
		t.Fatal("detail overlay should be visible")
	}
	if got := rec.Text(browse.SlotDetailSubtitle); got != "Leo Tolstoy (1869)" {
		t.Fatalf("subtitle = %q", got)
	}
	if got := rec.Attr(browse.SlotDetailImage, browse.AttrSrc); got != "war.jpg" {
		t.Fatalf("image = %q", got)
	}
}

func TestGenreOrderSurvivesStorage(t *testing.T) {
	repo := openRepo(t)
	importFile(t, repo, "books.json", jsonCatalog)

	c, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	b, ok := c.Find("time-machine")
	if !ok {
		t.Fatal("time-machine not found")
	}
	if diff := cmp.Diff([]string{"scifi", "classic"}, b.Genres); diff != "" {
		t.Fatalf("genres mismatch (-want +got):\n%s", diff)
	}

	wantAuthors := []catalog.Entry{{ID: "tolstoy", Name: "Leo Tolstoy"}, {ID: "wells", Name: "H. G. Wells"}}
	if diff := cmp.Diff(wantAuthors, c.Authors()); diff != "" {
		t.Fatalf("authors mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbeddedCatalogRoundTrip(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	embedded, err := catalog.Embedded()
	if err != nil {
		t.Fatalf("Embedded failed: %v", err)
	}
	if err := repo.SaveCatalog(ctx, embedded); err != nil {
		t.Fatalf("SaveCatalog failed: %v", err)
	}

	stored, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(embedded.Books(), stored.Books()); diff != "" {
		t.Fatalf("books mismatch (-want +got):\n%s", diff)
	}
}
