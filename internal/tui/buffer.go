package tui

import (
	"slices"

	"github.com/javiermolinar/bookconnect/internal/browse"
)

// overlaySlots are the slots the buffer tracks as stacked dialogs.
var overlaySlots = []browse.Slot{
	browse.SlotSearchOverlay,
	browse.SlotSettingsOverlay,
	browse.SlotDetailOverlay,
}

// listBuffer is the terminal's rendering surface. The session writes into it
// and View reads from it.
type listBuffer struct {
	items   []browse.Preview
	texts   map[browse.Slot]string
	attrs   map[browse.Slot]map[string]string
	visible map[browse.Slot]bool

	// stack holds visible overlay slots, most recently opened last.
	stack []browse.Slot
}

func newListBuffer() *listBuffer {
	return &listBuffer{
		texts:   make(map[browse.Slot]string),
		attrs:   make(map[browse.Slot]map[string]string),
		visible: make(map[browse.Slot]bool),
	}
}

// Clear implements browse.Surface.
func (b *listBuffer) Clear(slot browse.Slot) {
	if slot == browse.SlotItems {
		b.items = nil
	}
}

// Append implements browse.Surface.
func (b *listBuffer) Append(slot browse.Slot, item browse.Preview) {
	if slot == browse.SlotItems {
		b.items = append(b.items, item)
	}
}

// SetText implements browse.Surface.
func (b *listBuffer) SetText(slot browse.Slot, text string) {
	b.texts[slot] = text
}

// SetAttr implements browse.Surface.
func (b *listBuffer) SetAttr(slot browse.Slot, key, value string) {
	if b.attrs[slot] == nil {
		b.attrs[slot] = make(map[string]string)
	}
	b.attrs[slot][key] = value
}

// SetVisible implements browse.Surface.
func (b *listBuffer) SetVisible(slot browse.Slot, visible bool) {
	b.visible[slot] = visible
	if !slices.Contains(overlaySlots, slot) {
		return
	}
	b.stack = slices.DeleteFunc(b.stack, func(s browse.Slot) bool { return s == slot })
	if visible {
		b.stack = append(b.stack, slot)
	}
}

func (b *listBuffer) text(slot browse.Slot) string {
	return b.texts[slot]
}

func (b *listBuffer) attr(slot browse.Slot, key string) string {
	return b.attrs[slot][key]
}

func (b *listBuffer) isVisible(slot browse.Slot) bool {
	return b.visible[slot]
}

// topOverlay returns the most recently opened visible overlay.
func (b *listBuffer) topOverlay() (browse.Slot, bool) {
	if len(b.stack) == 0 {
		return "", false
	}
	return b.stack[len(b.stack)-1], true
}

// buttonDisabled reports whether the show-more button is disabled.
func (b *listBuffer) buttonDisabled() bool {
	return b.attr(browse.SlotListButton, browse.AttrDisabled) == "true"
}
