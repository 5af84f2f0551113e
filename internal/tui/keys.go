package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/bookconnect/internal/browse"
	"github.com/javiermolinar/bookconnect/internal/tui/commands"
	"github.com/javiermolinar/bookconnect/internal/tui/view"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.session == nil {
		if msg.String() == "q" || msg.String() == "esc" {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.mode == ModeModal {
		return m.handleModalKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "j", "down":
		m.moveCursor(1, "down")
	case "k", "up":
		m.moveCursor(-1, "up")
	case "pgdown", "ctrl+d":
		m.moveCursor(max(m.layoutCache.VisibleRows, 1), "page down")
	case "pgup", "ctrl+u":
		m.moveCursor(-max(m.layoutCache.VisibleRows, 1), "page up")
	case "g", "home":
		m.moveCursor(-m.lastRow(), "top")
	case "G", "end":
		m.moveCursor(m.lastRow(), "bottom")

	// Actions
	case "enter":
		if m.onShowMoreRow() {
			return m.showMore()
		}
		item, ok := m.cursorItem()
		if !ok {
			return m, nil
		}
		return m.dispatch(browse.ClickItem(item.ID), "open detail")
	case "m", " ":
		return m.showMore()
	case "/":
		return m.openSearch()
	case "s":
		return m.openSettings()
	}

	return m, nil
}

// handleModalKeys routes keys to the overlay drawn on top.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	top, ok := m.buffer.topOverlay()
	if !ok {
		m.syncMode("no overlay")
		return m.handleNormalKeys(msg)
	}

	switch top {
	case browse.SlotSearchOverlay:
		return m.handleSearchKeys(msg)
	case browse.SlotSettingsOverlay:
		return m.handleSettingsKeys(msg)
	case browse.SlotDetailOverlay:
		return m.handleDetailKeys(msg)
	}
	return m, nil
}

// handleSearchKeys handles the search form.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form.title.Blur()
		return m.dispatch(browse.CloseOverlay(browse.OverlaySearch), "search cancelled")
	case "enter":
		m.form.title.Blur()
		criteria := m.form.criteria()
		m.cursor = 0
		m.scrollOffset = 0
		return m.dispatch(browse.SubmitSearch(criteria), "search submitted")
	case "tab", "down":
		m.form.focusNext()
		return m, nil
	case "shift+tab", "up":
		m.form.focusPrev()
		return m, nil
	}

	if opts := m.form.options(); opts != nil {
		switch msg.String() {
		case "left":
			opts.Prev()
		case "right":
			opts.Next()
		case "backspace", "delete":
			opts.Reset()
		default:
			if msg.Type == tea.KeyRunes {
				opts.JumpTo(string(msg.Runes))
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.form.title, cmd = m.form.title.Update(msg)
	return m, cmd
}

// handleSettingsKeys handles the settings form.
func (m Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return m.dispatch(browse.CloseOverlay(browse.OverlaySettings), "settings cancelled")
	case "left", "h", "shift+tab":
		m.settingsChoice = (m.settingsChoice - 1 + len(themeChoices)) % len(themeChoices)
	case "right", "l", "tab", " ":
		m.settingsChoice = (m.settingsChoice + 1) % len(themeChoices)
	case "enter":
		return m.dispatch(browse.SubmitTheme(themeChoices[m.settingsChoice]), "theme submitted")
	}
	return m, nil
}

// handleDetailKeys handles the book detail.
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		return m.dispatch(browse.CloseOverlay(browse.OverlayDetail), "detail closed")
	case "y":
		return m, commands.CopyToClipboard(view.BookDetailCopyText(m.detailModel(0)), "book")
	case "c":
		if src := m.buffer.attr(browse.SlotDetailImage, browse.AttrSrc); src != "" {
			return m, commands.CopyToClipboard(src, "cover URL")
		}
	case "/":
		return m.openSearch()
	case "s":
		return m.openSettings()
	}
	return m, nil
}

func (m Model) openSearch() (tea.Model, tea.Cmd) {
	focusCmd := m.form.load(m.session.Criteria())
	updated, cmd := m.dispatch(browse.OpenOverlay(browse.OverlaySearch), "search opened")
	return updated, tea.Batch(cmd, focusCmd, textinput.Blink)
}

func (m Model) openSettings() (tea.Model, tea.Cmd) {
	m.settingsChoice = 0
	for i, t := range themeChoices {
		if t == m.session.Theme() {
			m.settingsChoice = i
		}
	}
	return m.dispatch(browse.OpenOverlay(browse.OverlaySettings), "settings opened")
}

func (m Model) showMore() (tea.Model, tea.Cmd) {
	if m.buffer.buttonDisabled() {
		return m.setStatus("No more books to show", 2*time.Second)
	}
	return m.dispatch(browse.ClickShowMore(), "show more")
}

// dispatch runs one event through the session and syncs the view state.
func (m Model) dispatch(ev browse.Event, reason string) (tea.Model, tea.Cmd) {
	if err := m.session.Dispatch(ev); err != nil {
		LogError(string(ev.Name), err)
		if errors.Is(err, browse.ErrNoMorePages) {
			return m.setStatus("No more books to show", 2*time.Second)
		}
		return m, func() tea.Msg { return commands.ErrMsg{Err: err} }
	}
	m.syncTheme()
	m.syncMode(reason)
	m.clampCursor()
	return m, m.takeEffects()
}

// lastRow is the index of the show-more row.
func (m Model) lastRow() int {
	return len(m.buffer.items)
}

func (m Model) onShowMoreRow() bool {
	return m.cursor == m.lastRow()
}

func (m Model) cursorItem() (browse.Preview, bool) {
	if m.cursor < 0 || m.cursor >= len(m.buffer.items) {
		return browse.Preview{}, false
	}
	return m.buffer.items[m.cursor], true
}

func (m *Model) moveCursor(delta int, reason string) {
	m.cursor += delta
	m.clampCursor()
	LogCursorMove(m.cursor, reason)
}

func (m *Model) clampCursor() {
	m.cursor = min(max(m.cursor, 0), m.lastRow())
	m.ensureCursorVisible()
}

// ensureCursorVisible scrolls so that the cursor row is on screen. The
// show-more row lives in the footer and keeps the last page in view.
func (m *Model) ensureCursorVisible() {
	rows := m.layoutCache.VisibleRows
	if rows <= 0 {
		m.scrollOffset = 0
		return
	}
	row := min(m.cursor, max(len(m.buffer.items)-1, 0))
	if row < m.scrollOffset {
		m.scrollOffset = row
	}
	if row >= m.scrollOffset+rows {
		m.scrollOffset = row - rows + 1
	}
	m.scrollOffset = max(min(m.scrollOffset, max(len(m.buffer.items)-rows, 0)), 0)
}
