package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/bookconnect/internal/tui/commands"
	"github.com/javiermolinar/bookconnect/internal/tui/view"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutCache = m.buildLayoutCache(m.width, m.height)
		m.ensureCursorVisible()
		return m, nil

	case commands.CatalogLoadedMsg:
		m.startSession(msg.Catalog)
		return m, nil

	case commands.ThemeSavedMsg:
		m.config.UI.Theme = msg.Theme
		return m.setStatus(fmt.Sprintf("Theme %s saved", msg.Theme), 3*time.Second)

	case commands.ErrMsg:
		m.err = msg.Err
		LogError("command", msg.Err)
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, nil

	case commands.StatusMsgCmd:
		return m.setStatus(msg.Msg, 3*time.Second)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Forward blink and other input messages to the focused text field.
	if m.mode == ModeModal && m.form.focus == view.SearchFieldTitle {
		var cmd tea.Cmd
		m.form.title, cmd = m.form.title.Update(msg)
		return m, cmd
	}

	return m, nil
}

// setStatus shows a temporary status message and schedules its removal.
func (m Model) setStatus(text string, ttl time.Duration) (tea.Model, tea.Cmd) {
	m.statusMsg = text
	m.statusTime = time.Now().Add(ttl)
	return m, tea.Tick(ttl, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
