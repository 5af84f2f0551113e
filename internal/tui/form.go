package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/bookconnect/internal/catalog"
	"github.com/javiermolinar/bookconnect/internal/tui/input"
	"github.com/javiermolinar/bookconnect/internal/tui/view"
)

// Option labels for the "any" entries, listed first.
const (
	allAuthorsLabel = "All Authors"
	allGenresLabel  = "All Genres"
)

// searchForm holds the search modal fields.
type searchForm struct {
	title  textinput.Model
	author input.OptionList
	genre  input.OptionList
	focus  int
}

func newSearchForm(c *catalog.Catalog, styles *Styles) searchForm {
	title := textinput.New()
	title.Placeholder = "Title contains..."
	title.CharLimit = 128
	title.Width = 40
	applyInputStyles(&title, styles)

	return searchForm{
		title:  title,
		author: input.NewOptionList(entryOptions(allAuthorsLabel, c.Authors())),
		genre:  input.NewOptionList(entryOptions(allGenresLabel, c.Genres())),
	}
}

func applyInputStyles(ti *textinput.Model, styles *Styles) {
	ti.PlaceholderStyle = styles.ModalPlaceholderStyle
	ti.TextStyle = styles.ModalInputTextStyle
	ti.PromptStyle = styles.ModalInputTextStyle
	ti.Cursor.Style = styles.ModalInputCursorStyle
	ti.Cursor.TextStyle = styles.ModalInputTextStyle
}

// entryOptions lists the "any" option first, then entries in dataset order.
func entryOptions(anyLabel string, entries []catalog.Entry) []input.Option {
	options := make([]input.Option, 0, len(entries)+1)
	options = append(options, input.Option{Value: catalog.Any, Label: anyLabel})
	for _, e := range entries {
		options = append(options, input.Option{Value: e.ID, Label: e.Name})
	}
	return options
}

// load shows the given criteria in the form and focuses the title.
func (f *searchForm) load(c catalog.Criteria) tea.Cmd {
	f.title.SetValue(c.Title)
	f.title.CursorEnd()
	if !f.author.Select(c.Author) {
		f.author.Reset()
	}
	if !f.genre.Select(c.Genre) {
		f.genre.Reset()
	}
	f.focus = view.SearchFieldTitle
	return f.title.Focus()
}

func (f searchForm) criteria() catalog.Criteria {
	return catalog.NewCriteria(f.title.Value(), f.author.Selected().Value, f.genre.Selected().Value)
}

func (f *searchForm) setFocus(field int) {
	f.focus = (field + view.SearchFieldCount) % view.SearchFieldCount
	if f.focus == view.SearchFieldTitle {
		f.title.Focus()
		return
	}
	f.title.Blur()
}

func (f *searchForm) focusNext() {
	f.setFocus(f.focus + 1)
}

func (f *searchForm) focusPrev() {
	f.setFocus(f.focus - 1)
}

// options returns the option list of the focused field, or nil on the title.
func (f *searchForm) options() *input.OptionList {
	switch f.focus {
	case view.SearchFieldAuthor:
		return &f.author
	case view.SearchFieldGenre:
		return &f.genre
	default:
		return nil
	}
}

func (f searchForm) viewModel() view.SearchFormModel {
	return view.SearchFormModel{
		TitleInput: f.title.View(),
		Author:     optionField(f.author),
		Genre:      optionField(f.genre),
		Focus:      f.focus,
	}
}

func optionField(l input.OptionList) view.OptionField {
	return view.OptionField{
		Label:    l.Selected().Label,
		Position: l.Index() + 1,
		Count:    l.Len(),
	}
}
