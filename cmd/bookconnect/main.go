package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/bookconnect/internal/config"
	"github.com/javiermolinar/bookconnect/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	path := config.DefaultConfigPath()
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := ui.NewApp(cfg, path)
	defer func() { _ = app.Close() }()
	return app.Execute()
}
