// Package ui implements the bookconnect command line.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/bookconnect/internal/config"
	"github.com/javiermolinar/bookconnect/internal/db"
	"github.com/javiermolinar/bookconnect/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	configPath string
	root       *cobra.Command
	store      *db.SQLite // opened on first use

	debug   bool   // Enable debug logging
	source  string // --source override
	noColor bool
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config, configPath string) *App {
	a := &App{config: cfg, configPath: configPath}

	a.root = &cobra.Command{
		Use:   "bookconnect",
		Short: "Browse a book catalog in the terminal",
		Long: `bookconnect is a terminal browser for a book catalog.

Filter books by title, author and genre, page through the results
and open a book to read its details.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(_ *cobra.Command, _ []string) error {
			src, err := a.catalogSource()
			if err != nil {
				return err
			}
			return tui.RunWithDebug(src, a.config, a.debug, tui.WithConfigPath(a.configPath))
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+tui.DebugLogPath+")")
	a.root.PersistentFlags().StringVar(&a.source, "source", "", "Catalog source: embedded, sqlite or a .toml/.yaml/.json file")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.authorsCmd())
	a.root.AddCommand(a.genresCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

// setup applies global flags before any command runs.
func (a *App) setup(_ *cobra.Command, _ []string) error {
	if a.noColor {
		DisableColor()
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if a.source != "" {
		a.config.Catalog.Source = a.source
	}
	if err := a.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bookconnect %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the database, if one was opened.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}
