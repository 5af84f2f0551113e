package view

import "github.com/charmbracelet/lipgloss"

// ModalStyleSet groups modal styles to reduce call-site verbosity.
type ModalStyleSet struct {
	BodyStyle           lipgloss.Style
	MetaStyle           lipgloss.Style
	SectionTitleStyle   lipgloss.Style
	TagStyle            lipgloss.Style
	LabelStyle          lipgloss.Style
	HintStyle           lipgloss.Style
	FieldStyle          lipgloss.Style
	FieldFocusStyle     lipgloss.Style
	ChoiceActiveStyle   lipgloss.Style
	ChoiceInactiveStyle lipgloss.Style
	CoverStyle          lipgloss.Style
}

// SearchFormStyles returns the modal styles needed for the search form.
func (s ModalStyleSet) SearchFormStyles() SearchFormStyles {
	return SearchFormStyles{
		BodyStyle:         s.BodyStyle,
		SectionTitleStyle: s.SectionTitleStyle,
		FieldStyle:        s.FieldStyle,
		FieldFocusStyle:   s.FieldFocusStyle,
		MetaStyle:         s.MetaStyle,
		HintStyle:         s.HintStyle,
	}
}

// SettingsStyles returns the modal styles needed for the settings form.
func (s ModalStyleSet) SettingsStyles() SettingsStyles {
	return SettingsStyles{
		BodyStyle:         s.BodyStyle,
		SectionTitleStyle: s.SectionTitleStyle,
		ChoiceActive:      s.ChoiceActiveStyle,
		ChoiceInactive:    s.ChoiceInactiveStyle,
		HintStyle:         s.HintStyle,
	}
}

// BookDetailStyles returns the modal styles needed for book details.
func (s ModalStyleSet) BookDetailStyles() BookDetailStyles {
	return BookDetailStyles{
		BodyStyle:  s.BodyStyle,
		MetaStyle:  s.MetaStyle,
		LabelStyle: s.LabelStyle,
		CoverStyle: s.CoverStyle,
	}
}
