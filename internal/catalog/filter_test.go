package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func testBooks() []Book {
	published := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Book{
		{ID: "b1", Title: "War and Peace", Author: "a1", Genres: []string{"g1", "g2"}, Published: published},
		{ID: "b2", Title: "Anna Karenina", Author: "a1", Genres: []string{"g1"}, Published: published},
		{ID: "b3", Title: "The War of the Worlds", Author: "a2", Genres: []string{"g3"}, Published: published},
		{ID: "b4", Title: "The Time Machine", Author: "a2", Genres: []string{"g3"}, Published: published},
		{ID: "b5", Title: "THE ART OF WAR", Author: "a3", Genres: []string{"g2"}, Published: published},
		{ID: "b6", Title: "Emma", Author: "a4", Genres: []string{"g1"}, Published: published},
	}
}

func ids(books []Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	books := testBooks()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "default criteria returns everything",
			criteria: DefaultCriteria(),
			want:     []string{"b1", "b2", "b3", "b4", "b5", "b6"},
		},
		{
			name:     "title substring is case-insensitive",
			criteria: NewCriteria("war", Any, Any),
			want:     []string{"b1", "b3", "b5"},
		},
		{
			name:     "title is trimmed",
			criteria: NewCriteria("  WAR  ", "", ""),
			want:     []string{"b1", "b3", "b5"},
		},
		{
			name:     "author only",
			criteria: NewCriteria("", "a2", Any),
			want:     []string{"b3", "b4"},
		},
		{
			name:     "genre only",
			criteria: NewCriteria("", Any, "g2"),
			want:     []string{"b1", "b5"},
		},
		{
			name:     "all three combined",
			criteria: NewCriteria("war", "a1", "g2"),
			want:     []string{"b1"},
		},
		{
			name:     "no match",
			criteria: NewCriteria("zzz", Any, Any),
			want:     []string{},
		},
		{
			name:     "unknown author",
			criteria: NewCriteria("", "nobody", Any),
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(books, tt.criteria)
			if got == nil {
				t.Fatal("expected non-nil result")
			}
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	books := testBooks()
	criteria := []Criteria{
		DefaultCriteria(),
		NewCriteria("the", Any, Any),
		NewCriteria("", Any, "g1"),
		NewCriteria("a", "a2", Any),
	}

	position := make(map[string]int, len(books))
	for i, b := range books {
		position[b.ID] = i
	}

	for _, c := range criteria {
		got := Filter(books, c)
		for i := 1; i < len(got); i++ {
			if position[got[i-1].ID] >= position[got[i].ID] {
				t.Errorf("criteria %+v: %q appears before %q", c, got[i-1].ID, got[i].ID)
			}
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	books := testBooks()
	c := NewCriteria("the", Any, "g3")

	first := Filter(books, c)
	second := Filter(books, c)
	if diff := cmp.Diff(ids(first), ids(second)); diff != "" {
		t.Errorf("repeated Filter() differs (-first +second):\n%s", diff)
	}
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	books := testBooks()
	before := ids(books)
	_ = Filter(books, NewCriteria("war", Any, Any))
	if diff := cmp.Diff(before, ids(books)); diff != "" {
		t.Errorf("input modified (-before +after):\n%s", diff)
	}
}

func TestFilterThreeWarTitlesInForty(t *testing.T) {
	books := make([]Book, 0, 40)
	for i := 0; i < 40; i++ {
		title := fmt.Sprintf("Book %02d", i)
		switch i {
		case 4:
			title = "War and Peace"
		case 17:
			title = "The war of the worlds"
		case 33:
			title = "The Art of WAR"
		}
		books = append(books, Book{ID: fmt.Sprintf("id-%02d", i), Title: title, Author: "a"})
	}

	got := Filter(books, Criteria{Title: "war", Author: Any, Genre: Any})
	want := []string{"id-04", "id-17", "id-33"}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
}

func TestCriteriaIsDefault(t *testing.T) {
	if !NewCriteria(" ", "", "any").IsDefault() {
		t.Error("expected blank criteria to be default")
	}
	if NewCriteria("x", Any, Any).IsDefault() {
		t.Error("expected title criteria not to be default")
	}
	if NewCriteria("", "a1", Any).IsDefault() {
		t.Error("expected author criteria not to be default")
	}
}
