package browse

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/javiermolinar/bookconnect/internal/catalog"
)

var (
	// ErrUnknownEvent is returned when no handler is registered for an event.
	ErrUnknownEvent = errors.New("unknown event")
	// ErrUnknownOverlay is returned for overlay names the session does not know.
	ErrUnknownOverlay = errors.New("unknown overlay")
)

// EventName identifies a user action.
type EventName string

const (
	EventSubmitSearch  EventName = "submit-search"
	EventClickShowMore EventName = "click-show-more"
	EventClickItem     EventName = "click-item"
	EventSubmitTheme   EventName = "submit-theme"
	EventOpenOverlay   EventName = "open-overlay"
	EventCloseOverlay  EventName = "close-overlay"
)

// Overlay names a dialog that can be opened over the list.
type Overlay string

const (
	OverlaySearch   Overlay = "search"
	OverlaySettings Overlay = "settings"
	OverlayDetail   Overlay = "detail"
)

// Overlays lists every overlay.
var Overlays = []Overlay{OverlaySearch, OverlaySettings, OverlayDetail}

func (o Overlay) slot() (Slot, error) {
	switch o {
	case OverlaySearch:
		return SlotSearchOverlay, nil
	case OverlaySettings:
		return SlotSettingsOverlay, nil
	case OverlayDetail:
		return SlotDetailOverlay, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOverlay, string(o))
	}
}

// Event is a discrete user action. Only the fields relevant to Name are set.
type Event struct {
	Name     EventName
	Criteria catalog.Criteria
	ItemID   string
	Theme    Theme
	Overlay  Overlay
}

// SubmitSearch builds a submit-search event.
func SubmitSearch(c catalog.Criteria) Event {
	return Event{Name: EventSubmitSearch, Criteria: c}
}

// ClickShowMore builds a click-show-more event.
func ClickShowMore() Event {
	return Event{Name: EventClickShowMore}
}

// ClickItem builds a click-item event.
func ClickItem(id string) Event {
	return Event{Name: EventClickItem, ItemID: id}
}

// SubmitTheme builds a submit-theme event.
func SubmitTheme(t Theme) Event {
	return Event{Name: EventSubmitTheme, Theme: t}
}

// OpenOverlay builds an open-overlay event.
func OpenOverlay(o Overlay) Event {
	return Event{Name: EventOpenOverlay, Overlay: o}
}

// CloseOverlay builds a close-overlay event.
func CloseOverlay(o Overlay) Event {
	return Event{Name: EventCloseOverlay, Overlay: o}
}

// Handler applies an event to a session.
type Handler func(s *Session, ev Event) error

// Handlers maps event names to handlers.
type Handlers map[EventName]Handler

// DefaultHandlers returns the standard event wiring.
func DefaultHandlers() Handlers {
	return Handlers{
		EventSubmitSearch:  handleSubmitSearch,
		EventClickShowMore: handleClickShowMore,
		EventClickItem:     handleClickItem,
		EventSubmitTheme:   handleSubmitTheme,
		EventOpenOverlay:   handleOpenOverlay,
		EventCloseOverlay:  handleCloseOverlay,
	}
}

func handleSubmitSearch(s *Session, ev Event) error {
	matches := catalog.Filter(s.catalog.Books(), ev.Criteria)
	s.criteria = ev.Criteria
	s.pager.Apply(matches)

	s.surface.SetVisible(SlotListMessage, len(matches) == 0)
	RenderInitial(s.surface, s.catalog, s.pager.Visible())
	renderShowMore(s.surface, s.pager.Remaining())

	s.logger.Debug("search applied",
		zap.String("title", ev.Criteria.Title),
		zap.String("author", ev.Criteria.Author),
		zap.String("genre", ev.Criteria.Genre),
		zap.Int("matches", len(matches)),
	)
	return s.setOverlay(OverlaySearch, false)
}

func handleClickShowMore(s *Session, _ Event) error {
	revealed, err := s.pager.Advance()
	if err != nil {
		return err
	}
	RenderAppend(s.surface, s.catalog, revealed)
	renderShowMore(s.surface, s.pager.Remaining())

	s.logger.Debug("page advanced",
		zap.Int("page", s.pager.Page()),
		zap.Int("revealed", len(revealed)),
		zap.Int("remaining", s.pager.Remaining()),
	)
	return nil
}

func handleClickItem(s *Session, ev Event) error {
	book, ok := s.catalog.Find(ev.ItemID)
	if !ok {
		s.logger.Debug("click on unknown item ignored", zap.String("id", ev.ItemID))
		return nil
	}
	s.active = &book
	renderDetail(s.surface, s.catalog, book)
	return s.setOverlay(OverlayDetail, true)
}

func handleSubmitTheme(s *Session, ev Event) error {
	s.applyTheme(ev.Theme)
	if s.themeHook != nil {
		s.themeHook(s.theme)
	}
	return s.setOverlay(OverlaySettings, false)
}

func handleOpenOverlay(s *Session, ev Event) error {
	return s.setOverlay(ev.Overlay, true)
}

func handleCloseOverlay(s *Session, ev Event) error {
	if ev.Overlay == OverlayDetail {
		s.active = nil
	}
	return s.setOverlay(ev.Overlay, false)
}
