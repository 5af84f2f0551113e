package commands

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/bookconnect/internal/catalog"
	"github.com/javiermolinar/bookconnect/internal/config"
)

type fakeSource struct {
	c   *catalog.Catalog
	err error
}

func (f fakeSource) Load(context.Context) (*catalog.Catalog, error) {
	return f.c, f.err
}

func TestLoadCatalogReturnsCatalogLoadedMsg(t *testing.T) {
	want, err := catalog.New([]catalog.Book{{ID: "a", Title: "A"}}, nil, nil)
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}

	msg := LoadCatalog(fakeSource{c: want})()
	loaded, ok := msg.(CatalogLoadedMsg)
	if !ok {
		t.Fatalf("expected CatalogLoadedMsg, got %T", msg)
	}
	if loaded.Catalog != want {
		t.Error("expected the source catalog to be returned")
	}
}

func TestLoadCatalogReturnsErrMsg(t *testing.T) {
	boom := errors.New("boom")
	msg := LoadCatalog(fakeSource{err: boom})()
	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("expected ErrMsg, got %T", msg)
	}
	if !errors.Is(errMsg.Err, boom) {
		t.Errorf("expected wrapped source error, got %v", errMsg.Err)
	}
}

func TestSaveThemeWritesConfigCopy(t *testing.T) {
	cfg := config.Default()
	path := filepath.Join(t.TempDir(), "config.toml")

	cmd := SaveTheme(cfg, path, "night")
	if cfg.UI.Theme != config.ThemeAuto {
		t.Fatalf("SaveTheme must not mutate the caller's config, theme = %q", cfg.UI.Theme)
	}

	msg := cmd()
	saved, ok := msg.(ThemeSavedMsg)
	if !ok {
		t.Fatalf("expected ThemeSavedMsg, got %T (%v)", msg, msg)
	}
	if saved.Theme != "night" || saved.Path != path {
		t.Errorf("unexpected message %+v", saved)
	}

	loaded, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.UI.Theme != "night" {
		t.Errorf("expected persisted theme night, got %q", loaded.UI.Theme)
	}
}

func TestCopyToClipboard(t *testing.T) {
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	var got string
	writeClipboard = func(text string) error {
		got = text
		return nil
	}

	msg := CopyToClipboard("War and Peace", "book")()
	status, ok := msg.(StatusMsgCmd)
	if !ok {
		t.Fatalf("expected StatusMsgCmd, got %T", msg)
	}
	if got != "War and Peace" {
		t.Errorf("clipboard got %q", got)
	}
	if status.Msg != "Copied book to clipboard" {
		t.Errorf("unexpected status %q", status.Msg)
	}

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	if _, ok := CopyToClipboard("x", "book")().(ErrMsg); !ok {
		t.Error("expected ErrMsg when the clipboard fails")
	}
}
