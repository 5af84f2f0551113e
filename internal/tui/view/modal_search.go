package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Search form fields in focus order.
const (
	SearchFieldTitle = iota
	SearchFieldAuthor
	SearchFieldGenre
	SearchFieldCount
)

// OptionField describes one cycling option field of the search form.
type OptionField struct {
	Label    string
	Position int // 1-based
	Count    int
}

// SearchFormModel contains the fields needed to render the search form body.
type SearchFormModel struct {
	TitleInput string // rendered text input
	Author     OptionField
	Genre      OptionField
	Focus      int
}

// SearchFormStyles groups styles for the search form body.
type SearchFormStyles struct {
	BodyStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	FieldStyle        lipgloss.Style
	FieldFocusStyle   lipgloss.Style
	MetaStyle         lipgloss.Style
	HintStyle         lipgloss.Style
}

// RenderSearchFormBody renders the modal body for the search form.
func RenderSearchFormBody(model SearchFormModel, styles SearchFormStyles) string {
	var body strings.Builder

	body.WriteString(styles.SectionTitleStyle.Render("TITLE") + "\n")
	body.WriteString(styles.field(model.Focus == SearchFieldTitle).Render(model.TitleInput) + "\n\n")

	body.WriteString(styles.SectionTitleStyle.Render("AUTHOR") + "\n")
	body.WriteString(renderOption(model.Author, model.Focus == SearchFieldAuthor, styles) + "\n\n")

	body.WriteString(styles.SectionTitleStyle.Render("GENRE") + "\n")
	body.WriteString(renderOption(model.Genre, model.Focus == SearchFieldGenre, styles) + "\n\n")

	body.WriteString(styles.HintStyle.Render("Tab next field, Left/Right change option"))

	return body.String()
}

func (s SearchFormStyles) field(focused bool) lipgloss.Style {
	if focused {
		return s.FieldFocusStyle
	}
	return s.FieldStyle
}

func renderOption(opt OptionField, focused bool, styles SearchFormStyles) string {
	label := opt.Label
	if focused {
		label = "< " + label + " >"
	}
	line := styles.field(focused).Render(label)
	if opt.Count > 0 {
		line += styles.BodyStyle.Render(" ") + styles.MetaStyle.Render(fmt.Sprintf("%d/%d", opt.Position, opt.Count))
	}
	return line
}
