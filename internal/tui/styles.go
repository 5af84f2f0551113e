// Package tui provides the terminal user interface for bookconnect.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/bookconnect/internal/tui/theme"
	"github.com/javiermolinar/bookconnect/internal/tui/view"
)

// modalWidth is the outer width of every modal.
const modalWidth = 64

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color

	colorTextOnAccent lipgloss.Color
	colorTextOnCover  lipgloss.Color

	colorCoverBg         lipgloss.Color
	colorCoverSelectedBg lipgloss.Color

	// Title and header
	TitleStyle      lipgloss.Style
	HeaderStyle     lipgloss.Style
	HeaderMetaStyle lipgloss.Style

	// Book list
	ListHeaderStyle    lipgloss.Style
	ListBorderStyle    lipgloss.Style
	IndexStyle         lipgloss.Style
	CoverStyle         lipgloss.Style
	BookTitleStyle     lipgloss.Style
	BookAuthorStyle    lipgloss.Style
	SelectedStyle      lipgloss.Style
	SelectedCoverStyle lipgloss.Style
	EmptyMessageStyle  lipgloss.Style

	// Show-more button
	ButtonStyle         lipgloss.Style
	ButtonFocusStyle    lipgloss.Style
	ButtonDisabledStyle lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Modal styles
	ModalStyle               lipgloss.Style
	ModalBgColor             lipgloss.Color
	ModalBackdropColor       lipgloss.Color
	ModalHeaderStyle         lipgloss.Style
	ModalFooterStyle         lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalBodyStyle           lipgloss.Style
	ModalMetaStyle           lipgloss.Style
	ModalSectionTitleStyle   lipgloss.Style
	ModalTagStyle            lipgloss.Style
	ModalLabelStyle          lipgloss.Style
	ModalFieldStyle          lipgloss.Style
	ModalFieldFocusedStyle   lipgloss.Style
	ModalInputTextStyle      lipgloss.Style
	ModalInputCursorStyle    lipgloss.Style
	ModalPlaceholderStyle    lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonActiveStyle   lipgloss.Style
	ModalHintStyle           lipgloss.Style
	ModalChoiceActiveStyle   lipgloss.Style
	ModalChoiceInactiveStyle lipgloss.Style
	ModalCoverStyle          lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorWarning = palette.Warning
	s.colorTextOnAccent = palette.TextOnAccent
	s.colorTextOnCover = palette.TextOnCover
	s.colorCoverBg = palette.CoverBg
	s.colorCoverSelectedBg = palette.CoverSelectedBg

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.HeaderMetaStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.ListHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Padding(0, 1)

	s.ListBorderStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	cell := lipgloss.NewStyle().
		Background(s.colorBg).
		Padding(0, 1)

	s.IndexStyle = cell.
		Foreground(s.colorFgMuted).
		Align(lipgloss.Right)

	// Cover placeholder: the terminal cannot show the image.
	s.CoverStyle = cell.
		Background(s.colorCoverBg).
		Foreground(s.colorTextOnCover)

	s.BookTitleStyle = cell.
		Foreground(s.colorFg).
		Bold(true)

	s.BookAuthorStyle = cell.
		Foreground(s.colorFgMuted)

	s.SelectedStyle = cell.
		Background(s.colorBgSelection).
		Foreground(s.colorAccent).
		Bold(true)

	s.SelectedCoverStyle = cell.
		Background(s.colorCoverSelectedBg).
		Foreground(s.colorTextOnCover)

	s.EmptyMessageStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Italic(true)

	s.ButtonStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgHighlight).
		Padding(0, 2)

	s.ButtonFocusStyle = lipgloss.NewStyle().
		Foreground(s.colorTextOnAccent).
		Background(s.colorAccent).
		Bold(true).
		Padding(0, 2)

	s.ButtonDisabledStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Strikethrough(true).
		Padding(0, 2)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	modalBg := modal.Bg
	modalBorder := modal.Border
	modalText := modal.Text
	modalMuted := modal.Muted
	modalHighlight := modal.Highlight
	modalPanel := modal.Panel
	modalReverseText := modal.ReverseText
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modalBorder).
		Background(modalBg).
		Foreground(modalText).
		Padding(1, 1).
		Width(modalWidth).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modalText).
		Background(modalBg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modalText).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg)

	s.ModalSectionTitleStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Bold(true).
		PaddingLeft(1).
		Background(modalBg)

	s.ModalTagStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalPanel).
		Bold(true).
		Padding(0, 1)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Bold(true).
		Background(modalBg)

	s.ModalFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(modalMuted).
		Background(modalBg).
		Foreground(modalText).
		Padding(0, 1).
		Width(48)

	s.ModalFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(modalHighlight).
		Background(modalPanel).
		Foreground(modalText).
		Bold(true).
		Padding(0, 1).
		Width(48)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modalReverseText).
		Background(modalHighlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modalPanel).
		Foreground(modalText).
		Padding(0, 3)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modalHighlight).
		Foreground(modalReverseText).
		Padding(0, 3).
		Underline(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg)

	s.ModalChoiceActiveStyle = lipgloss.NewStyle().
		Background(modalHighlight).
		Foreground(modalReverseText).
		Bold(true).
		Padding(0, 1)

	s.ModalChoiceInactiveStyle = lipgloss.NewStyle().
		Background(modalBg).
		Foreground(modalMuted).
		Padding(0, 1)

	s.ModalCoverStyle = lipgloss.NewStyle().
		Background(s.colorCoverBg)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	return s
}

// ModalStyles returns the styles used by modal frames.
func (s *Styles) ModalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       s.ModalHeaderStyle,
		ModalTitleStyle:        s.ModalTitleStyle,
		ModalFooterStyle:       s.ModalFooterStyle,
		ModalStyle:             s.ModalStyle,
		ModalButtonStyle:       s.ModalButtonStyle,
		ModalButtonActiveStyle: s.ModalButtonActiveStyle,
		ModalBodyStyle:         s.ModalBodyStyle,
	}
}

// ModalStyleSet returns the styles used by modal bodies.
func (s *Styles) ModalStyleSet() view.ModalStyleSet {
	return view.ModalStyleSet{
		BodyStyle:           s.ModalBodyStyle,
		MetaStyle:           s.ModalMetaStyle,
		SectionTitleStyle:   s.ModalSectionTitleStyle,
		TagStyle:            s.ModalTagStyle,
		LabelStyle:          s.ModalLabelStyle,
		HintStyle:           s.ModalHintStyle,
		FieldStyle:          s.ModalFieldStyle,
		FieldFocusStyle:     s.ModalFieldFocusedStyle,
		ChoiceActiveStyle:   s.ModalChoiceActiveStyle,
		ChoiceInactiveStyle: s.ModalChoiceInactiveStyle,
		CoverStyle:          s.ModalCoverStyle,
	}
}

// ListStyles returns the per-cell styles of the book list.
func (s *Styles) ListStyles() view.ListStyles {
	return view.ListStyles{
		IndexStyle:    s.IndexStyle,
		CoverStyle:    s.CoverStyle,
		TitleStyle:    s.BookTitleStyle,
		AuthorStyle:   s.BookAuthorStyle,
		SelectedStyle: s.SelectedStyle,
		SelectedCover: s.SelectedCoverStyle,
	}
}

// ListHeaderStyles returns one header style per list column.
func (s *Styles) ListHeaderStyles() []lipgloss.Style {
	cols := view.ListColumns()
	styles := make([]lipgloss.Style, len(cols))
	for i := range cols {
		styles[i] = s.ListHeaderStyle
	}
	return styles
}
