package browse

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/javiermolinar/bookconnect/internal/catalog"
)

// Session owns the mutable browsing state. Every change happens inside
// Dispatch, which runs one event to completion before returning.
type Session struct {
	catalog  *catalog.Catalog
	pager    *Pager
	surface  Surface
	handlers Handlers

	criteria  catalog.Criteria
	overlays  map[Overlay]bool
	active    *catalog.Book
	theme     Theme
	themeHook func(Theme)

	logger *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHandlers replaces the event handlers. Names missing from h fall back
// to the defaults.
func WithHandlers(h Handlers) Option {
	return func(s *Session) {
		for name, fn := range h {
			s.handlers[name] = fn
		}
	}
}

// WithPageSize sets the page size.
func WithPageSize(n int) Option {
	return func(s *Session) {
		s.pager = NewPager(s.pager.Matches(), n)
	}
}

// WithTheme sets the initial theme.
func WithTheme(t Theme) Option {
	return func(s *Session) {
		s.theme = t.normalize()
	}
}

// WithThemeHook registers a callback run after a submitted theme is applied.
func WithThemeHook(fn func(Theme)) Option {
	return func(s *Session) {
		s.themeHook = fn
	}
}

// NewSession creates a session over the full catalog on page one.
func NewSession(c *catalog.Catalog, surface Surface, opts ...Option) *Session {
	s := &Session{
		catalog:  c,
		pager:    NewPager(c.Books(), catalog.DefaultPageSize),
		surface:  surface,
		handlers: DefaultHandlers(),
		criteria: catalog.DefaultCriteria(),
		overlays: make(map[Overlay]bool, len(Overlays)),
		theme:    ThemeDay,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start renders the first page, the show-more button and the theme.
func (s *Session) Start() {
	visible := s.pager.Visible()
	RenderInitial(s.surface, s.catalog, visible)
	s.surface.SetVisible(SlotListMessage, len(s.pager.Matches()) == 0)
	renderShowMore(s.surface, s.pager.Remaining())
	for _, o := range Overlays {
		slot, _ := o.slot()
		s.surface.SetVisible(slot, s.overlays[o])
	}
	s.applyTheme(s.theme)

	s.logger.Debug("session started",
		zap.Int("books", s.catalog.Len()),
		zap.Int("page_size", s.pager.PageSize()),
		zap.Int("visible", len(visible)),
		zap.String("theme", string(s.theme)),
	)
}

// Dispatch runs the handler registered for ev.Name.
func (s *Session) Dispatch(ev Event) error {
	h, ok := s.handlers[ev.Name]
	if !ok || h == nil {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, string(ev.Name))
	}
	s.logger.Debug("dispatch", zap.String("event", string(ev.Name)))
	if err := h(s, ev); err != nil {
		s.logger.Debug("event rejected", zap.String("event", string(ev.Name)), zap.Error(err))
		return err
	}
	return nil
}

func (s *Session) setOverlay(o Overlay, open bool) error {
	slot, err := o.slot()
	if err != nil {
		return err
	}
	s.overlays[o] = open
	s.surface.SetVisible(slot, open)
	return nil
}

func (s *Session) applyTheme(t Theme) {
	s.theme = t.normalize()
	renderTheme(s.surface, s.theme)
}

// Catalog returns the dataset the session browses.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Criteria returns the last submitted criteria.
func (s *Session) Criteria() catalog.Criteria {
	return s.criteria
}

// Matches returns the current matches.
func (s *Session) Matches() []catalog.Book {
	return s.pager.Matches()
}

// Visible returns the revealed prefix of the matches.
func (s *Session) Visible() []catalog.Book {
	return s.pager.Visible()
}

// Page returns the page cursor.
func (s *Session) Page() int {
	return s.pager.Page()
}

// Remaining returns how many matches are not yet revealed.
func (s *Session) Remaining() int {
	return s.pager.Remaining()
}

// Empty reports whether the current matches are empty.
func (s *Session) Empty() bool {
	return len(s.pager.Matches()) == 0
}

// IsOpen reports whether an overlay is open.
func (s *Session) IsOpen(o Overlay) bool {
	return s.overlays[o]
}

// Idle reports whether no overlay is open.
func (s *Session) Idle() bool {
	for _, open := range s.overlays {
		if open {
			return false
		}
	}
	return true
}

// Active returns the book shown in the detail overlay.
func (s *Session) Active() (catalog.Book, bool) {
	if s.active == nil {
		return catalog.Book{}, false
	}
	return *s.active, true
}

// Theme returns the current theme.
func (s *Session) Theme() Theme {
	return s.theme
}
