package view

import (
	"fmt"
	"strings"
)

// HeaderModel describes the list header line.
type HeaderModel struct {
	Title   string
	Author  string // display name, empty for any
	Genre   string // display name, empty for any
	Visible int
	Matches int
	Theme   string
}

// HeaderLabels returns the left and right parts of the header line.
func HeaderLabels(model HeaderModel) (left, right string) {
	filters := make([]string, 0, 3)
	if model.Title != "" {
		filters = append(filters, fmt.Sprintf("title %q", model.Title))
	}
	if model.Author != "" {
		filters = append(filters, "by "+model.Author)
	}
	if model.Genre != "" {
		filters = append(filters, "in "+model.Genre)
	}

	left = "All books"
	if len(filters) > 0 {
		left = strings.Join(filters, ", ")
	}
	right = fmt.Sprintf("%d of %d  %s", model.Visible, model.Matches, model.Theme)
	return left, right
}
