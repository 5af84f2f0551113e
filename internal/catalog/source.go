package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
)

//go:embed embedded/books.toml
var embeddedBooks []byte

// Source supplies a catalog. Implementations are read once at startup.
type Source interface {
	// Load returns the full catalog.
	Load(ctx context.Context) (*Catalog, error)
}

// Embedded decodes the catalog bundled with the binary.
func Embedded() (*Catalog, error) {
	c, err := Decode(embeddedBooks, FormatTOML)
	if err != nil {
		return nil, fmt.Errorf("loading embedded catalog: %w", err)
	}
	return c, nil
}

// EmbeddedSource serves the bundled catalog.
type EmbeddedSource struct{}

// Load implements Source.
func (EmbeddedSource) Load(_ context.Context) (*Catalog, error) {
	return Embedded()
}

// FileSource reads a TOML, YAML or JSON catalog file.
type FileSource struct {
	Path string
}

// Load implements Source.
func (s FileSource) Load(_ context.Context) (*Catalog, error) {
	format, err := FormatFromPath(s.Path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Decode(data, format)
}
