package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SettingsModel contains the fields needed to render the settings body.
type SettingsModel struct {
	Themes      []string
	ActiveTheme int
	Persist     bool
}

// SettingsStyles groups styles for the settings body.
type SettingsStyles struct {
	BodyStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	ChoiceActive      lipgloss.Style
	ChoiceInactive    lipgloss.Style
	HintStyle         lipgloss.Style
}

// RenderSettingsBody renders the modal body for the settings form.
func RenderSettingsBody(model SettingsModel, styles SettingsStyles) string {
	var body strings.Builder
	sep := styles.BodyStyle.Render(" ")

	body.WriteString(styles.SectionTitleStyle.Render("THEME") + "\n")
	parts := make([]string, 0, len(model.Themes))
	for i, name := range model.Themes {
		if i == model.ActiveTheme {
			parts = append(parts, styles.ChoiceActive.Render(name))
		} else {
			parts = append(parts, styles.ChoiceInactive.Render(name))
		}
	}
	body.WriteString(strings.Join(parts, sep))
	body.WriteString(sep + styles.HintStyle.Render("Use left/right") + "\n")

	if !model.Persist {
		body.WriteString("\n" + styles.HintStyle.Render("Theme changes last for this session only."))
	}

	return body.String()
}
