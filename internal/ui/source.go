package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/javiermolinar/bookconnect/internal/catalog"
	"github.com/javiermolinar/bookconnect/internal/config"
	"github.com/javiermolinar/bookconnect/internal/db"
)

// catalogSource returns the source named by the config.
func (a *App) catalogSource() (catalog.Source, error) {
	switch a.config.Catalog.Source {
	case config.SourceEmbedded:
		return catalog.EmbeddedSource{}, nil
	case config.SourceSQLite:
		if err := a.ensureStore(); err != nil {
			return nil, err
		}
		return a.store, nil
	default:
		path, err := resolvePath(a.config.Catalog.Source)
		if err != nil {
			return nil, err
		}
		return catalog.FileSource{Path: path}, nil
	}
}

// loadCatalog reads the configured catalog.
func (a *App) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	src, err := a.catalogSource()
	if err != nil {
		return nil, err
	}
	c, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return c, nil
}

// ensureStore opens the SQLite database, creating its directory.
func (a *App) ensureStore() error {
	if a.store != nil {
		return nil
	}

	path, err := resolvePath(a.config.Storage.DBPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	store, err := db.New(path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.store = store
	return nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
