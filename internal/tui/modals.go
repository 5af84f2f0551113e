// Package tui provides the terminal user interface for bookconnect.
package tui

import (
	"github.com/javiermolinar/bookconnect/internal/browse"
	"github.com/javiermolinar/bookconnect/internal/tui/view"
)

// renderModal renders the body of the overlay on top.
func (m Model) renderModal(top browse.Slot) string {
	styles := m.styles.ModalStyles()
	set := m.styles.ModalStyleSet()

	switch top {
	case browse.SlotSearchOverlay:
		body := view.RenderSearchFormBody(m.form.viewModel(), set.SearchFormStyles())
		return view.RenderModalFrame("Search books", body, view.SearchFooter(styles), styles)

	case browse.SlotSettingsOverlay:
		names := make([]string, len(themeChoices))
		for i, t := range themeChoices {
			names[i] = string(t)
		}
		body := view.RenderSettingsBody(view.SettingsModel{
			Themes:      names,
			ActiveTheme: m.settingsChoice,
			Persist:     m.config.UI.PersistTheme,
		}, set.SettingsStyles())
		return view.RenderModalFrame("Settings", body, view.SettingsFooter(styles), styles)

	case browse.SlotDetailOverlay:
		contentW := modalContentWidth(m.styles)
		detail := m.detailModel(contentW)
		body := view.RenderBookDetailBody(detail, set.BookDetailStyles())
		title := view.DetailTitle(detail.Title, contentW-2)
		return view.RenderModalFrame(title, body, view.DetailFooter(detail.Image != "", styles), styles)
	}

	return ""
}

// detailModel reads the detail slots the session filled.
func (m Model) detailModel(width int) view.BookDetailModel {
	return view.BookDetailModel{
		Title:       m.buffer.text(browse.SlotDetailTitle),
		Subtitle:    m.buffer.text(browse.SlotDetailSubtitle),
		Description: m.buffer.text(browse.SlotDetailDescription),
		Image:       m.buffer.attr(browse.SlotDetailImage, browse.AttrSrc),
		Width:       width,
	}
}

func modalContentWidth(styles *Styles) int {
	frameW, _ := styles.ModalStyle.GetFrameSize()
	return max(modalWidth-frameW, 10)
}
