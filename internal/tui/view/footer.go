package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW           int
	FooterH          int
	ShowMoreText     string
	ShowMoreDisabled bool
	ShowMoreFocused  bool
	StatusText       string
	HelpText         string
	ButtonStyle      lipgloss.Style
	ButtonFocusStyle lipgloss.Style
	ButtonDisabled   lipgloss.Style
	StatusStyle      lipgloss.Style
	HelpStyle        lipgloss.Style
	VAlign           lipgloss.Position
	Bg               lipgloss.Color
}

// RenderFooterModel renders the show-more button, status and help lines.
func RenderFooterModel(model FooterModel) string {
	if model.FooterH <= 0 {
		return ""
	}

	buttonStyle := model.ButtonStyle
	switch {
	case model.ShowMoreDisabled:
		buttonStyle = model.ButtonDisabled
	case model.ShowMoreFocused:
		buttonStyle = model.ButtonFocusStyle
	}

	s := buttonStyle.Render(model.ShowMoreText) + "\n"
	s += footerLine(model.InnerW, model.StatusStyle, model.StatusText) + "\n"
	s += footerLine(model.InnerW, model.HelpStyle, model.HelpText)

	return PlaceBox(model.InnerW, model.FooterH, model.VAlign, s, model.Bg)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := max(width-frameW, 0)
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
