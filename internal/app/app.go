// Package app wires the navigator, popups and file operations into the root
// bubbletea model.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/burrow/internal/config"
	"github.com/llehouerou/burrow/internal/fsops"
	"github.com/llehouerou/burrow/internal/history"
	"github.com/llehouerou/burrow/internal/keymap"
	"github.com/llehouerou/burrow/internal/navigator"
	"github.com/llehouerou/burrow/internal/preview"
	"github.com/llehouerou/burrow/internal/snapshot"
	"github.com/llehouerou/burrow/internal/state"
)

// Options configures a new application model.
type Options struct {
	StartPath string
	// Select is the entry focused in StartPath, when present.
	Select    string
	Config    *config.Config

	// State receives the location on every navigation change. May be nil.
	State  state.Interface
	Logger zerolog.Logger
}

// Model is the root application model.
type Model struct {
	nav       navigator.Model
	history   *history.History
	ops       *fsops.Ops
	cfg       *config.Config
	state     state.Interface
	log       zerolog.Logger
	keys      *keymap.Resolver
	popups    PopupManager
	clipboard string
	notice    notice
	width     int
	height    int
}

// New creates the application model browsing opts.StartPath.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	pc := cfg.GetPreviewConfig()
	builder := snapshot.NewOSBuilder().
		WithHidden(cfg.ShowHiddenFiles()).
		WithLogger(opts.Logger)
	previewer := preview.New(builder, builder.Fs(), preview.Options{
		MaxEntries: pc.MaxEntries,
		MaxBytes:   pc.MaxBytes,
	})
	hist := history.New()

	nav, err := navigator.New(builder, previewer, hist, opts.StartPath)
	if err != nil {
		return Model{}, err
	}
	nav.SetFocused(true)
	if opts.Select != "" {
		nav.Focus(opts.Select)
	}

	opts.Logger.Info().
		Str("path", nav.CurrentPath()).
		Bool("show_hidden", cfg.ShowHiddenFiles()).
		Msg("browser started")

	return Model{
		nav:     nav.WithLogger(opts.Logger),
		history: hist,
		ops:     fsops.New(opts.Logger),
		cfg:     cfg,
		state:   opts.State,
		log:     opts.Logger,
		keys:    keymap.NewResolver(keymap.Bindings),
		popups:  NewPopupManager(),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Navigator returns the navigator component.
func (m Model) Navigator() navigator.Model {
	return m.nav
}

// Clipboard returns the path marked for pasting, or "".
func (m Model) Clipboard() string {
	return m.clipboard
}

// Notice returns the current notification text.
func (m Model) Notice() string {
	return m.notice.text
}
