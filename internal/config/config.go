// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Catalog source names. Any other value is treated as a catalog file path.
const (
	SourceEmbedded = "embedded"
	SourceSQLite   = "sqlite"
)

// ThemeAuto picks day or night from the terminal background.
const ThemeAuto = "auto"

// Config holds the application configuration.
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// CatalogConfig holds dataset settings.
type CatalogConfig struct {
	PageSize int    `toml:"page_size"` // previews revealed per "show more"
	Source   string `toml:"source"`    // "embedded", "sqlite", or a .toml/.yaml/.json path
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme        string `toml:"theme"`         // "auto", "day", "night"
	PersistTheme bool   `toml:"persist_theme"` // save theme changes made in the TUI
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			PageSize: 36,
			Source:   SourceEmbedded,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme:        ThemeAuto,
			PersistTheme: true,
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bookconnect.db"
	}
	return filepath.Join(home, ".local", "share", "bookconnect", "bookconnect.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "bookconnect", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	if !isNamedSource(cfg.Catalog.Source) {
		cfg.Catalog.Source = expandPath(cfg.Catalog.Source)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("BOOKCONNECT_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing BOOKCONNECT_PAGE_SIZE: %w", err)
		}
		cfg.Catalog.PageSize = n
	}
	if v := os.Getenv("BOOKCONNECT_SOURCE"); v != "" {
		cfg.Catalog.Source = v
	}
	if v := os.Getenv("BOOKCONNECT_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("BOOKCONNECT_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func isNamedSource(source string) bool {
	return source == SourceEmbedded || source == SourceSQLite
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Catalog.PageSize < 1 {
		return fmt.Errorf("page_size must be at least 1, got %d", c.Catalog.PageSize)
	}
	if c.Catalog.Source == "" {
		return errors.New("source must be set")
	}
	if c.Catalog.Source == SourceSQLite && c.Storage.DBPath == "" {
		return errors.New("db_path must be set when source is sqlite")
	}
	if !IsValidTheme(c.UI.Theme) {
		return fmt.Errorf("invalid theme %q (want auto, day or night)", c.UI.Theme)
	}
	return nil
}

// IsValidTheme reports whether name is a configurable theme.
func IsValidTheme(name string) bool {
	switch strings.ToLower(name) {
	case ThemeAuto, "day", "night":
		return true
	default:
		return false
	}
}

// IsFileSource reports whether the catalog source is a file path.
func (c *Config) IsFileSource() bool {
	return !isNamedSource(c.Catalog.Source)
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
