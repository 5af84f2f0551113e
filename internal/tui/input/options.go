// Package input provides option cycling for TUI form fields.
package input

import "strings"

// Option is one selectable value with its display label.
type Option struct {
	Value string
	Label string
}

// OptionList is a cycling selection over a fixed list of options.
type OptionList struct {
	options []Option
	index   int
}

// NewOptionList creates a list with the first option selected.
func NewOptionList(options []Option) OptionList {
	return OptionList{options: options}
}

// Next selects the following option, wrapping at the end.
func (l *OptionList) Next() {
	if len(l.options) == 0 {
		return
	}
	l.index = (l.index + 1) % len(l.options)
}

// Prev selects the preceding option, wrapping at the start.
func (l *OptionList) Prev() {
	if len(l.options) == 0 {
		return
	}
	l.index = (l.index - 1 + len(l.options)) % len(l.options)
}

// Selected returns the selected option.
func (l OptionList) Selected() Option {
	if len(l.options) == 0 {
		return Option{}
	}
	return l.options[l.index]
}

// Index returns the selected position.
func (l OptionList) Index() int {
	return l.index
}

// Len returns the number of options.
func (l OptionList) Len() int {
	return len(l.options)
}

// Select selects the option with the given value. It reports false and keeps
// the selection when no option matches.
func (l *OptionList) Select(value string) bool {
	for i, opt := range l.options {
		if opt.Value == value {
			l.index = i
			return true
		}
	}
	return false
}

// Reset selects the first option.
func (l *OptionList) Reset() {
	l.index = 0
}

// MatchingOptions returns the options whose label starts with prefix,
// ignoring case.
func MatchingOptions(prefix string, options []Option) []Option {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return nil
	}
	matches := make([]Option, 0, len(options))
	for _, opt := range options {
		if strings.HasPrefix(strings.ToLower(opt.Label), prefix) {
			matches = append(matches, opt)
		}
	}
	return matches
}

// JumpTo selects the next option after the current one whose label starts
// with prefix. Repeating the same prefix cycles through the matches.
func (l *OptionList) JumpTo(prefix string) bool {
	if len(MatchingOptions(prefix, l.options)) == 0 {
		return false
	}
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	for step := 1; step <= len(l.options); step++ {
		i := (l.index + step) % len(l.options)
		if strings.HasPrefix(strings.ToLower(l.options[i].Label), prefix) {
			l.index = i
			return true
		}
	}
	return false
}
