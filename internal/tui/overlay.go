package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/bookconnect/internal/tui/view"
)

const (
	overlayMinWidth  = 24
	overlayMinHeight = 5
)

// OverlayModel composites a modal box centered over the base content.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{bgColor: lipgloss.Color("")}
}

// SetActive shows or hides the overlay.
func (o *OverlayModel) SetActive(active bool) {
	o.active = active
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground updates the color used to fill around the modal content.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render draws the overlay on top of base content.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	contentLines := o.contentLines(content)
	contentW, contentH := o.contentSize(contentLines)
	if contentW == 0 || contentH == 0 {
		return base
	}

	boxW := min(max(contentW, overlayMinWidth), width)
	boxH := min(max(contentH, overlayMinHeight), height)

	top := max((height-boxH)/2, 0)
	left := max((width-boxW)/2, 0)

	baseLines := o.normalizeBase(base, width, height)
	boxLines := o.boxLines(contentLines, boxW, boxH)

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+boxH {
			lines = append(lines, baseLines[row])
			continue
		}

		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+boxW, width)
		lines = append(lines, leftSlice+boxLines[row-top]+rightSlice)
	}

	return strings.Join(lines, "\n")
}

// boxLines fills a boxW x boxH block with the background color and centers
// the content inside it.
func (o OverlayModel) boxLines(content []string, boxW, boxH int) []string {
	bgSeq := view.BackgroundSeq(o.bgColor)
	blank := bgSeq + strings.Repeat(" ", boxW) + ansi.ResetStyle

	contentW, contentH := o.contentSize(content)
	contentW = min(contentW, boxW)
	contentH = min(contentH, boxH)
	top := max((boxH-contentH)/2, 0)
	left := max((boxW-contentW)/2, 0)

	lines := make([]string, boxH)
	for i := range lines {
		idx := i - top
		if idx < 0 || idx >= contentH {
			lines[i] = blank
			continue
		}

		line := content[idx]
		lineWidth := lipgloss.Width(line)
		if lineWidth > contentW {
			line = ansi.Cut(line, 0, contentW)
			lineWidth = contentW
		}
		if lineWidth < contentW {
			line += strings.Repeat(" ", contentW-lineWidth)
		}
		line = view.ApplyBackgroundResets(line, bgSeq)

		rightPad := max(boxW-left-contentW, 0)
		lines[i] = bgSeq + strings.Repeat(" ", left) + line + bgSeq + strings.Repeat(" ", rightPad) + ansi.ResetStyle
	}

	return lines
}

func (o OverlayModel) contentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (o OverlayModel) contentSize(lines []string) (int, int) {
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}
	return maxWidth, len(lines)
}

func (o OverlayModel) normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}
