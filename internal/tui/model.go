package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/javiermolinar/bookconnect/internal/browse"
	"github.com/javiermolinar/bookconnect/internal/catalog"
	"github.com/javiermolinar/bookconnect/internal/config"
	"github.com/javiermolinar/bookconnect/internal/tui/commands"
	"github.com/javiermolinar/bookconnect/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeModal       // At least one overlay is open
)

// themeChoices are the options of the settings modal, in display order.
var themeChoices = []browse.Theme{browse.ThemeDay, browse.ThemeNight}

// effects collects side effects requested by session hooks during Dispatch.
// It is shared by every copy of the Model.
type effects struct {
	theme *browse.Theme
}

func (e *effects) themeChanged(t browse.Theme) {
	e.theme = &t
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	source     catalog.Source
	config     *config.Config
	configPath string
	logger     *zap.Logger

	// Browsing state lives in the session; the buffer is its surface.
	session *browse.Session
	buffer  *listBuffer
	effects *effects

	// Theme and styles
	theme          *theme.Theme
	styles         *Styles
	startTheme     browse.Theme
	darkBackground func() bool

	// State
	cursor       int // row in the list; len(items) is the show-more row
	scrollOffset int
	mode         Mode
	loading      bool

	// Modal state
	form           searchForm
	settingsChoice int // index into themeChoices

	// Overlay state
	overlay OverlayModel

	// Terminal dimensions and layout
	width       int
	height      int
	layoutCache LayoutCache

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithConfigPath sets where theme changes are saved.
func WithConfigPath(path string) ModelOption {
	return func(m *Model) {
		m.configPath = path
	}
}

// WithLogger sets the logger handed to the browse session.
func WithLogger(l *zap.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithBackgroundDetector replaces the terminal background query used when the
// configured theme is "auto".
func WithBackgroundDetector(fn func() bool) ModelOption {
	return func(m *Model) {
		if fn != nil {
			m.darkBackground = fn
		}
	}
}

// New creates a new TUI model. The catalog is read from src by Init.
func New(src catalog.Source, cfg *config.Config, opts ...ModelOption) *Model {
	m := &Model{
		source:         src,
		config:         cfg,
		configPath:     config.DefaultConfigPath(),
		logger:         zap.NewNop(),
		buffer:         newListBuffer(),
		effects:        &effects{},
		darkBackground: termenv.HasDarkBackground,
		mode:           ModeNormal,
		loading:        true,
		overlay:        NewOverlayModel(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.startTheme = resolveTheme(cfg.UI.Theme, m.darkBackground)
	m.applyTheme(string(m.startTheme))
	m.layoutCache = m.buildLayoutCache(0, 0)

	return m
}

// resolveTheme maps the configured theme name to a session theme.
func resolveTheme(name string, darkBackground func() bool) browse.Theme {
	if name == "" || strings.EqualFold(name, config.ThemeAuto) {
		return browse.ThemeFor(darkBackground())
	}
	t, err := browse.ParseTheme(name)
	if err != nil {
		return browse.ThemeDay
	}
	return t
}

// applyTheme loads the named palette and rebuilds the styles.
func (m *Model) applyTheme(name string) {
	t, err := theme.Load(name)
	if err != nil {
		t, _ = theme.Load(theme.Day)
	}
	m.theme = t
	m.styles = NewStyles(t)
	applyInputStyles(&m.form.title, m.styles)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadCatalog(m.source)
}

// startSession builds the browse session once the catalog is loaded.
func (m *Model) startSession(c *catalog.Catalog) {
	m.session = browse.NewSession(c, m.buffer,
		browse.WithLogger(m.logger),
		browse.WithPageSize(m.config.Catalog.PageSize),
		browse.WithTheme(m.startTheme),
		browse.WithThemeHook(m.effects.themeChanged),
	)
	m.form = newSearchForm(c, m.styles)
	m.session.Start()
	m.loading = false
	m.cursor = 0
	m.scrollOffset = 0
	m.syncTheme()
	m.syncMode("catalog loaded")
}

// syncTheme restyles the TUI when the session changed the theme attribute.
func (m *Model) syncTheme() {
	name := m.buffer.attr(browse.SlotTheme, browse.AttrTheme)
	if name == "" || (m.theme != nil && m.theme.Name == name) {
		return
	}
	m.applyTheme(name)
}

// syncMode derives the mode from the overlays visible on the surface.
func (m *Model) syncMode(reason string) {
	next := ModeNormal
	if top, ok := m.buffer.topOverlay(); ok {
		next = ModeModal
		LogOverlay(top)
	}
	LogModeChange(m.mode, next, reason)
	m.mode = next
}

// takeEffects turns hook results into commands.
func (m *Model) takeEffects() tea.Cmd {
	if m.effects.theme == nil {
		return nil
	}
	t := *m.effects.theme
	m.effects.theme = nil

	if !m.config.UI.PersistTheme {
		return nil
	}
	return commands.SaveTheme(m.config, m.configPath, string(t))
}

// Run starts the TUI.
func Run(src catalog.Source, cfg *config.Config, opts ...ModelOption) error {
	return RunWithDebug(src, cfg, false, opts...)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(src catalog.Source, cfg *config.Config, debug bool, opts ...ModelOption) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	opts = append([]ModelOption{WithLogger(DebugLogger())}, opts...)
	model := New(src, cfg, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
