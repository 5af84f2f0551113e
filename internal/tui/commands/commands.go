// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/bookconnect/internal/catalog"
	"github.com/javiermolinar/bookconnect/internal/config"
)

// CatalogLoadedMsg is sent when the catalog source has been read.
type CatalogLoadedMsg struct {
	Catalog *catalog.Catalog
}

// ThemeSavedMsg is sent after the theme has been written to the config file.
type ThemeSavedMsg struct {
	Theme string
	Path  string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// LoadCatalog reads the catalog from src.
func LoadCatalog(src catalog.Source) tea.Cmd {
	return func() tea.Msg {
		c, err := src.Load(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading catalog: %w", err)}
		}
		return CatalogLoadedMsg{Catalog: c}
	}
}

// SaveTheme writes the theme into a copy of cfg and saves it to path.
func SaveTheme(cfg *config.Config, path, theme string) tea.Cmd {
	next := *cfg
	next.UI.Theme = theme
	return func() tea.Msg {
		if err := next.SaveTo(path); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving theme: %w", err)}
		}
		return ThemeSavedMsg{Theme: theme, Path: path}
	}
}

// CopyToClipboard copies text and reports the outcome as a status message.
func CopyToClipboard(text, what string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying %s: %w", what, err)}
		}
		return StatusMsgCmd{Msg: fmt.Sprintf("Copied %s to clipboard", what)}
	}
}
