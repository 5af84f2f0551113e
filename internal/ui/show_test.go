package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/javiermolinar/bookconnect/internal/catalog"
)

func TestPrintBook(t *testing.T) {
	DisableColor()
	defer EnableColor()

	var out bytes.Buffer
	if err := printBook(&out, embeddedCatalog(t), "war-and-peace", 80); err != nil {
		t.Fatalf("printBook failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"=== War and Peace ===",
		"Leo Tolstoy (1869)",
		"Genres: Classic, History",
		"Cover: https://covers.bookconnect.local/war-and-peace.jpg",
		"Napoleon's invasion",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPrintBookUnknownID(t *testing.T) {
	var out bytes.Buffer
	err := printBook(&out, embeddedCatalog(t), "missing", 80)
	if !errors.Is(err, catalog.ErrBookNotFound) {
		t.Fatalf("err = %v, want ErrBookNotFound", err)
	}
}

func TestPrintEntries(t *testing.T) {
	var out bytes.Buffer
	printEntries(&out, []catalog.Entry{
		{ID: "tolstoy", Name: "Leo Tolstoy"},
		{ID: "sunzi", Name: "Sun Tzu"},
	})

	want := "tolstoy  Leo Tolstoy\nsunzi    Sun Tzu\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}
