package browse

import (
	"slices"

	"github.com/javiermolinar/bookconnect/internal/catalog"
)

// Slot is a named insertion point on the rendering surface.
type Slot string

const (
	SlotItems       Slot = "list-items"
	SlotListButton  Slot = "list-button"
	SlotListMessage Slot = "list-message"

	SlotDetailOverlay     Slot = "detail-overlay"
	SlotDetailTitle       Slot = "detail-title"
	SlotDetailSubtitle    Slot = "detail-subtitle"
	SlotDetailDescription Slot = "detail-description"
	SlotDetailImage       Slot = "detail-image"

	SlotSearchOverlay   Slot = "search-overlay"
	SlotSettingsOverlay Slot = "settings-overlay"

	SlotTheme Slot = "theme"
)

// Attribute keys set on slots.
const (
	AttrDisabled   = "disabled"
	AttrSrc        = "src"
	AttrTheme      = "theme"
	AttrColorDark  = "color-dark"
	AttrColorLight = "color-light"
)

// Preview is the rendered representation of one list item.
type Preview struct {
	ID         string
	Image      string
	Title      string
	AuthorName string
}

// NewPreview projects a book, resolving its author name through the catalog.
func NewPreview(c *catalog.Catalog, b catalog.Book) Preview {
	return Preview{
		ID:         b.ID,
		Image:      b.Image,
		Title:      b.Title,
		AuthorName: c.AuthorName(b.Author),
	}
}

// Surface receives rendering commands. The concrete technology behind it
// (terminal, recorder, anything else) is up to the implementation.
type Surface interface {
	Clear(slot Slot)
	Append(slot Slot, item Preview)
	SetText(slot Slot, text string)
	SetAttr(slot Slot, key, value string)
	SetVisible(slot Slot, visible bool)
}

// OpKind names a recorded surface command.
type OpKind string

const (
	OpClear      OpKind = "clear"
	OpAppend     OpKind = "append"
	OpSetText    OpKind = "set-text"
	OpSetAttr    OpKind = "set-attr"
	OpSetVisible OpKind = "set-visible"
)

// Op is one recorded surface command.
type Op struct {
	Kind  OpKind
	Slot  Slot
	Item  Preview
	Key   string
	Value string
}

// Recorder is an in-memory Surface that keeps the resulting state and the
// command log.
type Recorder struct {
	items   map[Slot][]Preview
	texts   map[Slot]string
	attrs   map[Slot]map[string]string
	visible map[Slot]bool
	ops     []Op
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		items:   make(map[Slot][]Preview),
		texts:   make(map[Slot]string),
		attrs:   make(map[Slot]map[string]string),
		visible: make(map[Slot]bool),
	}
}

// Clear implements Surface.
func (r *Recorder) Clear(slot Slot) {
	r.items[slot] = nil
	r.ops = append(r.ops, Op{Kind: OpClear, Slot: slot})
}

// Append implements Surface.
func (r *Recorder) Append(slot Slot, item Preview) {
	r.items[slot] = append(r.items[slot], item)
	r.ops = append(r.ops, Op{Kind: OpAppend, Slot: slot, Item: item})
}

// SetText implements Surface.
func (r *Recorder) SetText(slot Slot, text string) {
	r.texts[slot] = text
	r.ops = append(r.ops, Op{Kind: OpSetText, Slot: slot, Value: text})
}

// SetAttr implements Surface.
func (r *Recorder) SetAttr(slot Slot, key, value string) {
	if r.attrs[slot] == nil {
		r.attrs[slot] = make(map[string]string)
	}
	r.attrs[slot][key] = value
	r.ops = append(r.ops, Op{Kind: OpSetAttr, Slot: slot, Key: key, Value: value})
}

// SetVisible implements Surface.
func (r *Recorder) SetVisible(slot Slot, visible bool) {
	r.visible[slot] = visible
	value := "false"
	if visible {
		value = "true"
	}
	r.ops = append(r.ops, Op{Kind: OpSetVisible, Slot: slot, Value: value})
}

// Items returns the items currently appended to a slot.
func (r *Recorder) Items(slot Slot) []Preview {
	return slices.Clone(r.items[slot])
}

// Text returns the text of a slot.
func (r *Recorder) Text(slot Slot) string {
	return r.texts[slot]
}

// Attr returns an attribute of a slot.
func (r *Recorder) Attr(slot Slot, key string) string {
	return r.attrs[slot][key]
}

// Visible reports the visibility of a slot.
func (r *Recorder) Visible(slot Slot) bool {
	return r.visible[slot]
}

// Ops returns the command log.
func (r *Recorder) Ops() []Op {
	return slices.Clone(r.ops)
}

// Reset drops the command log but keeps the state.
func (r *Recorder) Reset() {
	r.ops = nil
}
