package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// BookDetailModel contains the fields needed to render the book detail body.
type BookDetailModel struct {
	Title       string
	Subtitle    string
	Description string
	Image       string
	Width       int // content width; 0 disables wrapping
}

// BookDetailStyles groups styles for the book detail body.
type BookDetailStyles struct {
	BodyStyle  lipgloss.Style
	MetaStyle  lipgloss.Style
	LabelStyle lipgloss.Style
	CoverStyle lipgloss.Style
}

// DetailTitle cuts a title to width, marking the cut with an ellipsis.
func DetailTitle(title string, width int) string {
	if width <= 0 {
		return title
	}
	return truncate.StringWithTail(title, uint(width), "…")
}

// RenderBookDetailBody renders the modal body for book details.
func RenderBookDetailBody(model BookDetailModel, styles BookDetailStyles) string {
	var body strings.Builder

	body.WriteString(styles.MetaStyle.Render(model.Subtitle) + "\n\n")

	description := model.Description
	if description == "" {
		description = "No description."
	}
	if model.Width > 0 {
		description = wordwrap.String(description, model.Width)
	}
	for i, line := range strings.Split(description, "\n") {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(styles.BodyStyle.Render(line))
	}

	if model.Image != "" {
		cover := model.Image
		if model.Width > 0 {
			cover = truncate.StringWithTail(cover, uint(max(model.Width-7, 1)), "…")
		}
		body.WriteString("\n\n")
		body.WriteString(styles.CoverStyle.Render("  ") + styles.BodyStyle.Render(" ") + styles.LabelStyle.Render("Cover ") + styles.MetaStyle.Render(cover))
	}

	return body.String()
}

// BookDetailCopyText formats the detail for the clipboard.
func BookDetailCopyText(model BookDetailModel) string {
	lines := []string{model.Title, model.Subtitle}
	if model.Description != "" {
		lines = append(lines, "", model.Description)
	}
	if model.Image != "" {
		lines = append(lines, "", model.Image)
	}
	return strings.Join(lines, "\n")
}
