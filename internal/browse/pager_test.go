package browse

import (
	"errors"
	"fmt"
	"testing"

	"github.com/javiermolinar/bookconnect/internal/catalog"
)

func makeBooks(n int) []catalog.Book {
	books := make([]catalog.Book, n)
	for i := range books {
		books[i] = catalog.Book{
			ID:     fmt.Sprintf("book-%02d", i),
			Title:  fmt.Sprintf("Title %02d", i),
			Author: "a1",
		}
	}
	return books
}

func TestVisibleSliceAndRemaining(t *testing.T) {
	books := makeBooks(45)

	tests := []struct {
		name          string
		page          int
		pageSize      int
		wantVisible   int
		wantRemaining int
	}{
		{"first page", 1, 20, 20, 25},
		{"second page", 2, 20, 40, 5},
		{"clipped last page", 3, 20, 45, 0},
		{"past the end", 9, 20, 45, 0},
		{"exact fit", 1, 45, 45, 0},
		{"zero page", 0, 20, 0, 45},
		{"zero page size", 1, 0, 0, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible := VisibleSlice(books, tt.page, tt.pageSize)
			if len(visible) != tt.wantVisible {
				t.Errorf("VisibleSlice: got %d items, want %d", len(visible), tt.wantVisible)
			}
			for i, b := range visible {
				if b.ID != books[i].ID {
					t.Fatalf("visible[%d] = %q, want prefix item %q", i, b.ID, books[i].ID)
				}
			}
			if got := RemainingCount(books, tt.page, tt.pageSize); got != tt.wantRemaining {
				t.Errorf("RemainingCount: got %d, want %d", got, tt.wantRemaining)
			}
		})
	}
}

func TestRemainingZeroIffPrefixCoversMatches(t *testing.T) {
	for n := 0; n <= 12; n++ {
		books := makeBooks(n)
		for page := 1; page <= 5; page++ {
			for size := 1; size <= 5; size++ {
				zero := RemainingCount(books, page, size) == 0
				covered := page*size >= n
				if zero != covered {
					t.Fatalf("n=%d page=%d size=%d: remaining==0 is %v, page*size>=n is %v", n, page, size, zero, covered)
				}
			}
		}
	}
}

func TestVisibleSliceCannotClobberMatches(t *testing.T) {
	books := makeBooks(10)
	visible := VisibleSlice(books, 1, 4)
	visible = append(visible, catalog.Book{ID: "intruder"})
	if books[4].ID != "book-04" {
		t.Fatalf("append to visible slice overwrote matches: %q", books[4].ID)
	}
	_ = visible
}

func TestPagerAdvance(t *testing.T) {
	p := NewPager(makeBooks(40), 20)

	if p.Page() != 1 || len(p.Visible()) != 20 || p.Remaining() != 20 {
		t.Fatalf("unexpected initial state: page=%d visible=%d remaining=%d", p.Page(), len(p.Visible()), p.Remaining())
	}

	revealed, err := p.Advance()
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if len(revealed) != 20 || revealed[0].ID != "book-20" || revealed[19].ID != "book-39" {
		t.Errorf("unexpected revealed slice: %d items", len(revealed))
	}
	if p.Page() != 2 || p.Remaining() != 0 {
		t.Errorf("after advance: page=%d remaining=%d", p.Page(), p.Remaining())
	}

	if _, err := p.Advance(); !errors.Is(err, ErrNoMorePages) {
		t.Errorf("expected ErrNoMorePages, got %v", err)
	}
	if p.Page() != 2 {
		t.Errorf("rejected advance changed page to %d", p.Page())
	}
}

func TestPagerAdvancePartialPage(t *testing.T) {
	p := NewPager(makeBooks(25), 10)
	_, _ = p.Advance()
	revealed, err := p.Advance()
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if len(revealed) != 5 {
		t.Errorf("expected 5 revealed, got %d", len(revealed))
	}
}

func TestPagerApplyResetsPage(t *testing.T) {
	p := NewPager(makeBooks(100), 10)
	for i := 0; i < 4; i++ {
		if _, err := p.Advance(); err != nil {
			t.Fatalf("Advance failed: %v", err)
		}
	}
	if p.Page() != 5 {
		t.Fatalf("expected page 5, got %d", p.Page())
	}

	p.Apply(makeBooks(3))
	if p.Page() != 1 {
		t.Errorf("expected page 1 after Apply, got %d", p.Page())
	}
	if len(p.Visible()) != 3 || p.Remaining() != 0 {
		t.Errorf("unexpected state after Apply: visible=%d remaining=%d", len(p.Visible()), p.Remaining())
	}
}

func TestNewPagerDefaultsPageSize(t *testing.T) {
	p := NewPager(nil, 0)
	if p.PageSize() != catalog.DefaultPageSize {
		t.Errorf("expected default page size %d, got %d", catalog.DefaultPageSize, p.PageSize())
	}
	if _, err := p.Advance(); !errors.Is(err, ErrNoMorePages) {
		t.Errorf("expected ErrNoMorePages on empty pager, got %v", err)
	}
}
