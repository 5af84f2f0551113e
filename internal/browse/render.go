package browse

import (
	"fmt"
	"strconv"

	"github.com/javiermolinar/bookconnect/internal/catalog"
)

// RenderInitial clears the item list and appends every book in slice.
func RenderInitial(s Surface, c *catalog.Catalog, slice []catalog.Book) {
	s.Clear(SlotItems)
	RenderAppend(s, c, slice)
}

// RenderAppend appends the books in slice without touching existing items.
// Callers pass only the newly revealed books.
func RenderAppend(s Surface, c *catalog.Catalog, slice []catalog.Book) {
	for _, b := range slice {
		s.Append(SlotItems, NewPreview(c, b))
	}
}

// ShowMoreLabel formats the show-more button text.
func ShowMoreLabel(remaining int) string {
	return fmt.Sprintf("Show more (%d)", remaining)
}

func renderShowMore(s Surface, remaining int) {
	s.SetText(SlotListButton, ShowMoreLabel(remaining))
	s.SetAttr(SlotListButton, AttrDisabled, strconv.FormatBool(remaining <= 0))
}

// DetailSubtitle formats "<author> (<year>)".
func DetailSubtitle(c *catalog.Catalog, b catalog.Book) string {
	return fmt.Sprintf("%s (%d)", c.AuthorName(b.Author), b.Year())
}

func renderDetail(s Surface, c *catalog.Catalog, b catalog.Book) {
	s.SetAttr(SlotDetailImage, AttrSrc, b.Image)
	s.SetText(SlotDetailTitle, b.Title)
	s.SetText(SlotDetailSubtitle, DetailSubtitle(c, b))
	s.SetText(SlotDetailDescription, b.Description)
}

func renderTheme(s Surface, t Theme) {
	dark, light := t.colors()
	s.SetAttr(SlotTheme, AttrColorDark, dark)
	s.SetAttr(SlotTheme, AttrColorLight, light)
	s.SetAttr(SlotTheme, AttrTheme, string(t))
}
