package view

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// ListItem is one book row as the list shows it.
type ListItem struct {
	Title  string
	Author string
}

// ListStyles groups the per-cell styles of the book list.
type ListStyles struct {
	IndexStyle    lipgloss.Style
	CoverStyle    lipgloss.Style
	TitleStyle    lipgloss.Style
	AuthorStyle   lipgloss.Style
	SelectedStyle lipgloss.Style
	SelectedCover lipgloss.Style
}

// ListColumns returns the header labels of the book list.
func ListColumns() []string {
	return []string{"#", "", "Title", "Author"}
}

// ListColumnWidths splits the inner width between title and author columns.
func ListColumnWidths(innerW int) (titleW, authorW int) {
	// border (2) + index (5) + cover (3) + cell padding
	avail := max(innerW-2-5-3-4, 10)
	titleW = avail * 3 / 5
	authorW = avail - titleW
	return titleW, authorW
}

// BuildListContent builds table rows for items[offset:offset+rows], marking
// the cursor row.
func BuildListContent(items []ListItem, offset, rows, cursor, innerW int, styles ListStyles) TableContent {
	var content TableContent
	if offset < 0 {
		offset = 0
	}
	end := min(offset+rows, len(items))
	titleW, authorW := ListColumnWidths(innerW)

	for i := offset; i < end; i++ {
		item := items[i]
		row := []string{
			strconv.Itoa(i + 1),
			"  ",
			truncate.StringWithTail(item.Title, uint(titleW), "…"),
			truncate.StringWithTail(item.Author, uint(authorW), "…"),
		}
		cells := []lipgloss.Style{styles.IndexStyle, styles.CoverStyle, styles.TitleStyle, styles.AuthorStyle}
		if i == cursor {
			cells = []lipgloss.Style{styles.SelectedStyle, styles.SelectedCover, styles.SelectedStyle, styles.SelectedStyle}
		}
		content.Rows = append(content.Rows, row)
		content.CellStyles = append(content.CellStyles, cells)
	}
	return content
}
