package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/bookconnect/internal/browse"
	"github.com/javiermolinar/bookconnect/internal/catalog"
	"github.com/javiermolinar/bookconnect/internal/tui/view"
)

const (
	appTitle     = "bookconnect"
	emptyMessage = "No books match your search."
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	if m.session == nil {
		text := "Loading catalog..."
		if m.err != nil {
			text = fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
		}
		return view.ViewState{Loading: true, LoadingText: text}
	}

	base := m.renderAppContent()
	top, showModal := m.buffer.topOverlay()
	modal := ""
	if showModal {
		modal = m.renderModal(top)
		m.overlay.SetActive(true)
		m.overlay.SetBackground(m.styles.ModalBackdropColor)
	} else {
		m.overlay.SetActive(false)
	}

	return view.ViewState{
		Width:        m.width,
		Height:       m.height,
		BaseContent:  base,
		ModalContent: modal,
		ShowModal:    showModal,
		Overlay:      m.overlay,
		LoadingText:  "Loading...",
	}
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache
	if !layout.Fits() {
		return "Terminal too small"
	}

	header := view.PlaceBox(layout.InnerW, layout.HeaderH, lipgloss.Top, m.renderHeader(layout.InnerW), m.styles.colorBg)
	list := m.renderList(layout)
	footer := view.RenderFooterModel(m.footerModel(layout))

	content := lipgloss.JoinVertical(lipgloss.Left, header, list, footer)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) renderHeader(innerW int) string {
	criteria := m.session.Criteria()
	c := m.session.Catalog()
	left, right := view.HeaderLabels(view.HeaderModel{
		Title:   criteria.Title,
		Author:  displayName(criteria.Author, c.AuthorName),
		Genre:   displayName(criteria.Genre, c.GenreName),
		Visible: len(m.buffer.items),
		Matches: len(m.session.Matches()),
		Theme:   string(m.session.Theme()),
	})

	title := m.styles.TitleStyle.Render(appTitle)
	meta := m.styles.HeaderMetaStyle.Render(right)
	gap := max(innerW-lipgloss.Width(title)-lipgloss.Width(meta), 1)
	line := title + m.styles.HeaderMetaStyle.Render(strings.Repeat(" ", gap)) + meta

	return line + "\n" + m.styles.HeaderStyle.Render(left)
}

// displayName resolves an option id for the header, or "" for Any.
func displayName(id string, name func(string) string) string {
	if id == "" || id == catalog.Any {
		return ""
	}
	return name(id)
}

func (m Model) renderList(layout LayoutCache) string {
	if m.buffer.isVisible(browse.SlotListMessage) {
		msg := m.styles.EmptyMessageStyle.Render(emptyMessage)
		return view.PlaceBox(layout.InnerW, layout.ListH, lipgloss.Center, msg, m.styles.colorBg)
	}

	items := make([]view.ListItem, len(m.buffer.items))
	for i, p := range m.buffer.items {
		items[i] = view.ListItem{Title: p.Title, Author: p.AuthorName}
	}

	return view.RenderTable(view.TableViewState{
		InnerW:       layout.InnerW,
		ListH:        layout.ListH,
		Headers:      view.ListColumns(),
		HeaderStyles: m.styles.ListHeaderStyles(),
		Content:      view.BuildListContent(items, m.scrollOffset, layout.VisibleRows, m.cursor, layout.InnerW, m.styles.ListStyles()),
		BorderStyle:  m.styles.ListBorderStyle,
		VAlign:       lipgloss.Top,
		Bg:           m.styles.colorBg,
		Render:       true,
	})
}

func (m Model) footerModel(layout LayoutCache) view.FooterModel {
	return view.FooterModel{
		InnerW:           layout.InnerW,
		FooterH:          layout.FooterH,
		ShowMoreText:     m.buffer.text(browse.SlotListButton),
		ShowMoreDisabled: m.buffer.buttonDisabled(),
		ShowMoreFocused:  m.onShowMoreRow() && m.mode == ModeNormal,
		StatusText:       m.statusMsg,
		HelpText:         m.helpText(),
		ButtonStyle:      m.styles.ButtonStyle,
		ButtonFocusStyle: m.styles.ButtonFocusStyle,
		ButtonDisabled:   m.styles.ButtonDisabledStyle,
		StatusStyle:      m.styles.StatusStyle,
		HelpStyle:        m.styles.HelpStyle,
		VAlign:           lipgloss.Bottom,
		Bg:               m.styles.colorBg,
	}
}

func (m Model) helpText() string {
	if m.mode == ModeModal {
		return "esc close  enter confirm"
	}
	return "j/k move  enter open  m more  / search  s settings  q quit"
}
