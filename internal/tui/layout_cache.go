package tui

const (
	headerHeight = 3
	footerHeight = 3
	// Rows the table spends on its borders and header.
	tableChromeRows = 4
	minInnerWidth   = 24
)

// LayoutCache stores layout dimensions derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	HeaderH int
	ListH   int
	FooterH int

	// VisibleRows is the number of book rows the list can show at once.
	VisibleRows int
}

// Fits reports whether the window is large enough to draw the list.
func (l LayoutCache) Fits() bool {
	return l.InnerW >= minInnerWidth && l.VisibleRows > 0
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	appH, appV := m.styles.AppStyle.GetFrameSize()
	innerW := max(width-appH, 0)
	innerH := max(height-appV, 0)

	listH := max(innerH-headerHeight-footerHeight, 0)

	return LayoutCache{
		InnerW:      innerW,
		InnerH:      innerH,
		HeaderH:     headerHeight,
		ListH:       listH,
		FooterH:     footerHeight,
		VisibleRows: max(listH-tableChromeRows, 0),
	}
}
