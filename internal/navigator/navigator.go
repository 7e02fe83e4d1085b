// Package navigator implements the three-column directory browser: the
// parent listing, the current listing with a cursor, and a preview of the
// selected entry.
package navigator

import (
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/burrow/internal/history"
	"github.com/llehouerou/burrow/internal/keymap"
	"github.com/llehouerou/burrow/internal/preview"
	"github.com/llehouerou/burrow/internal/snapshot"
	"github.com/llehouerou/burrow/internal/ui"
	"github.com/llehouerou/burrow/internal/ui/cursor"
)

// Model is the navigator component.
type Model struct {
	ui.Base
	builder *snapshot.Builder
	preview *preview.Previewer
	history *history.History
	keys    *keymap.Resolver
	log     zerolog.Logger

	current snapshot.Node // listing of the current directory
	parent  snapshot.Node // listing of its parent; zero at the filesystem root
	cursor  cursor.Cursor
	pv      preview.Preview
}

// New creates a navigator showing startPath and makes it the initial history
// location. When startPath is a file, its directory is shown with the file
// selected.
func New(builder *snapshot.Builder, previewer *preview.Previewer, hist *history.History, startPath string) (Model, error) {
	m := Model{
		builder: builder,
		preview: previewer,
		history: hist,
		keys:    keymap.NewResolver(keymap.ByContext("navigator")),
		log:     zerolog.Nop(),
		cursor:  cursor.New(ui.ScrollMargin),
	}

	path := filepath.Clean(startPath)
	snap, err := builder.ListDirectory(path)
	if err != nil {
		return Model{}, err
	}

	focus := ""
	if !snap.IsDir {
		focus = snap.Name
		path = filepath.Dir(path)
		if snap, err = builder.ListDirectory(path); err != nil {
			return Model{}, err
		}
	}

	m.show(snap, focus)
	hist.Init(path)
	return m, nil
}

// WithLogger returns the model logging through l.
func (m Model) WithLogger(l zerolog.Logger) Model {
	m.log = l
	return m
}

// CurrentPath returns the path of the directory being shown.
func (m Model) CurrentPath() string {
	return m.current.Path
}

// Current returns the listing of the directory being shown.
func (m Model) Current() snapshot.Node {
	return m.current
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (snapshot.Node, bool) {
	pos := m.cursor.Pos()
	if pos < 0 || pos >= len(m.current.Children) {
		return snapshot.Node{}, false
	}
	return m.current.Children[pos], true
}

// SelectedName returns the name of the entry under the cursor, or "".
func (m Model) SelectedName() string {
	sel, _ := m.Selected()
	return sel.Name
}

// Preview returns the preview of the selected entry.
func (m Model) Preview() preview.Preview {
	return m.pv
}

// ShowHidden reports whether dot entries are listed.
func (m Model) ShowHidden() bool {
	return m.builder.ShowHidden()
}

// SetSize sets the component dimensions and keeps the cursor visible.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.EnsureVisible(len(m.current.Children), m.listHeight())
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	a := m.keys.Resolve(key.String())
	if m.cursor.HandleAction(a, len(m.current.Children), m.listHeight()) {
		m.updatePreview()
		return m, m.changed()
	}

	switch a {
	case keymap.ActionEnter:
		return m.enter()
	case keymap.ActionParent:
		return m.up()
	case keymap.ActionHistoryBack:
		return m.back()
	case keymap.ActionHistoryFwd:
		return m.forward()
	}
	return m, nil
}

func (m Model) enter() (Model, tea.Cmd) {
	sel, ok := m.Selected()
	if !ok {
		return m, nil
	}
	if !sel.IsDir {
		return m, emit(FileSelected{Path: sel.Path})
	}
	return m.NavigateTo(sel.Path, "")
}

func (m Model) up() (Model, tea.Cmd) {
	parent := filepath.Dir(m.current.Path)
	if parent == m.current.Path {
		return m, nil
	}
	return m.NavigateTo(parent, m.current.Name)
}

func (m Model) back() (Model, tea.Cmd) {
	prev, ok := m.history.Back()
	if !ok {
		return m, nil
	}
	next, cmd, loaded := m.jump(prev, childToward(prev, m.current.Path))
	if !loaded {
		m.history.Forward()
	}
	return next, cmd
}

func (m Model) forward() (Model, tea.Cmd) {
	next, ok := m.history.Forward()
	if !ok {
		return m, nil
	}
	res, cmd, loaded := m.jump(next, childToward(next, m.current.Path))
	if !loaded {
		m.history.Back()
	}
	return res, cmd
}

// NavigateTo shows the directory at path, records it in the history, and
// selects the entry named focus when present. A listing failure leaves the
// navigator and history untouched and emits LoadFailed.
func (m Model) NavigateTo(path, focus string) (Model, tea.Cmd) {
	next, cmd, loaded := m.jump(path, focus)
	if loaded {
		m.history.Push(next.current.Path)
	}
	return next, cmd
}

// jump shows path without touching the history.
func (m Model) jump(path, focus string) (Model, tea.Cmd, bool) {
	snap, err := m.builder.ListDirectory(path)
	if err == nil && !snap.IsDir {
		err = notADirectory(path)
	}
	if err != nil {
		m.log.Warn().Err(err).Str("path", path).Msg("navigation failed")
		return m, emit(LoadFailed{Path: path, Err: err}), false
	}
	m.show(snap, focus)
	return m, m.changed(), true
}

// Refresh lists the current directory again, keeping the selection by name
// when the entry still exists and by position otherwise.
func (m Model) Refresh() (Model, tea.Cmd) {
	return m.RefreshFocus("")
}

// RefreshFocus is Refresh that selects the entry named focus when it is
// listed. The emitted NavigationChanged carries the final selection.
func (m Model) RefreshFocus(focus string) (Model, tea.Cmd) {
	name := m.SelectedName()
	pos := m.cursor.Pos()

	snap, err := m.builder.ListDirectory(m.current.Path)
	if err != nil {
		m.log.Warn().Err(err).Str("path", m.current.Path).Msg("refresh failed")
		return m, emit(LoadFailed{Path: m.current.Path, Err: err})
	}

	if focus != "" {
		if _, ok := snap.Child(focus); ok {
			name = focus
		}
	}
	m.show(snap, name)
	if m.SelectedName() != name {
		m.cursor.Jump(pos, len(m.current.Children), m.listHeight())
		m.updatePreview()
	}
	return m, m.changed()
}

// Focus selects the entry named name in the current listing.
func (m *Model) Focus(name string) bool {
	for i, c := range m.current.Children {
		if c.Name == name {
			m.cursor.Jump(i, len(m.current.Children), m.listHeight())
			m.updatePreview()
			return true
		}
	}
	return false
}

// ToggleHidden flips whether dot entries are listed and refreshes.
func (m Model) ToggleHidden() (Model, tea.Cmd) {
	m.builder = m.builder.WithHidden(!m.builder.ShowHidden())
	m.preview = m.preview.WithBuilder(m.builder)
	return m.Refresh()
}

func (m *Model) show(snap snapshot.Node, focus string) {
	m.current = snap
	m.cursor.Reset()
	m.loadParent()
	if focus == "" || !m.Focus(focus) {
		m.updatePreview()
	}
}

func (m *Model) loadParent() {
	m.parent = snapshot.Node{}
	dir := filepath.Dir(m.current.Path)
	if dir == m.current.Path {
		return
	}
	parent, err := m.builder.ListDirectory(dir)
	if err != nil {
		m.log.Debug().Err(err).Str("path", dir).Msg("parent listing unavailable")
		return
	}
	m.parent = parent
}

func (m *Model) updatePreview() {
	sel, ok := m.Selected()
	if !ok {
		m.pv = preview.Preview{}
		return
	}
	m.pv = m.preview.For(sel)
}

func (m Model) changed() tea.Cmd {
	return emit(NavigationChanged{
		CurrentPath:  m.current.Path,
		SelectedName: m.SelectedName(),
	})
}

// childToward returns the name of the entry of dir that leads to target,
// or "" when target is not below dir.
func childToward(dir, target string) string {
	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	first, _, _ := strings.Cut(rel, string(filepath.Separator))
	return first
}
