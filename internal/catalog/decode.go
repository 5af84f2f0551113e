package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for catalog files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown catalog format")

// Format identifies a catalog document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// document is the on-disk catalog shape shared by every format.
type document struct {
	Authors []Entry `toml:"authors" yaml:"authors" json:"authors"`
	Genres  []Entry `toml:"genres" yaml:"genres" json:"genres"`
	Books   []Book  `toml:"books" yaml:"books" json:"books"`
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Decode parses a catalog document. Books without an id get a generated one.
func Decode(data []byte, format Format) (*Catalog, error) {
	var doc document
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s catalog: %w", format, err)
	}

	for i := range doc.Books {
		if doc.Books[i].ID == "" {
			doc.Books[i].ID = uuid.NewString()
		}
	}

	return New(doc.Books, doc.Authors, doc.Genres)
}
