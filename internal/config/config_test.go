package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Catalog.PageSize != 36 {
		t.Errorf("expected page_size 36, got %d", cfg.Catalog.PageSize)
	}
	if cfg.Catalog.Source != SourceEmbedded {
		t.Errorf("expected source embedded, got %s", cfg.Catalog.Source)
	}
	if cfg.UI.Theme != ThemeAuto {
		t.Errorf("expected theme auto, got %s", cfg.UI.Theme)
	}
	if !cfg.UI.PersistTheme {
		t.Error("expected persist_theme true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Catalog.PageSize != 36 {
		t.Errorf("expected default page_size, got %d", cfg.Catalog.PageSize)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[catalog]
page_size = 20
source = "sqlite"

[storage]
db_path = "/tmp/test.db"

[ui]
theme = "night"
persist_theme = false
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Catalog.PageSize != 20 {
		t.Errorf("expected page_size 20, got %d", cfg.Catalog.PageSize)
	}
	if cfg.Catalog.Source != SourceSQLite {
		t.Errorf("expected source sqlite, got %s", cfg.Catalog.Source)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "night" {
		t.Errorf("expected theme night, got %s", cfg.UI.Theme)
	}
	if cfg.UI.PersistTheme {
		t.Error("expected persist_theme false")
	}
	if cfg.IsFileSource() {
		t.Error("sqlite is not a file source")
	}
}

func TestLoadFrom_InvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[catalog\npage_size = "), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[catalog]
page_size = 20

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("BOOKCONNECT_PAGE_SIZE", "12")
	t.Setenv("BOOKCONNECT_SOURCE", "~/books.yaml")
	t.Setenv("BOOKCONNECT_UI_THEME", "day")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.Catalog.PageSize != 12 {
		t.Errorf("expected page_size 12 from env, got %d", cfg.Catalog.PageSize)
	}
	// File value should be kept when no env override
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path from file, got %s", cfg.Storage.DBPath)
	}
	home, _ := os.UserHomeDir()
	if cfg.Catalog.Source != filepath.Join(home, "books.yaml") {
		t.Errorf("expected expanded source path, got %s", cfg.Catalog.Source)
	}
	if !cfg.IsFileSource() {
		t.Error("expected a file source")
	}
	if cfg.UI.Theme != "day" {
		t.Errorf("expected theme day from env, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_BadEnvPageSize(t *testing.T) {
	t.Setenv("BOOKCONNECT_PAGE_SIZE", "lots")
	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Fatal("expected error for non-numeric page size")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero page size", func(c *Config) { c.Catalog.PageSize = 0 }, true},
		{"empty source", func(c *Config) { c.Catalog.Source = "" }, true},
		{"sqlite without db path", func(c *Config) {
			c.Catalog.Source = SourceSQLite
			c.Storage.DBPath = ""
		}, true},
		{"file source without db path", func(c *Config) {
			c.Catalog.Source = "books.json"
			c.Storage.DBPath = ""
		}, false},
		{"unknown theme", func(c *Config) { c.UI.Theme = "mocha" }, true},
		{"uppercase theme", func(c *Config) { c.UI.Theme = "NIGHT" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Catalog.PageSize = 9
	cfg.UI.Theme = "night"
	cfg.UI.PersistTheme = false

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Catalog.PageSize != 9 {
		t.Errorf("expected page_size 9, got %d", loaded.Catalog.PageSize)
	}
	if loaded.UI.Theme != "night" {
		t.Errorf("expected theme night, got %s", loaded.UI.Theme)
	}
	if loaded.UI.PersistTheme {
		t.Error("expected persist_theme false")
	}
}
