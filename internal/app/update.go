package app

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/burrow/internal/errmsg"
	"github.com/llehouerou/burrow/internal/fsops"
	"github.com/llehouerou/burrow/internal/keymap"
	"github.com/llehouerou/burrow/internal/navigator"
	"github.com/llehouerou/burrow/internal/state"
	"github.com/llehouerou/burrow/internal/ui/action"
	"github.com/llehouerou/burrow/internal/ui/confirm"
	"github.com/llehouerou/burrow/internal/ui/helpbindings"
	"github.com/llehouerou/burrow/internal/ui/layout"
	"github.com/llehouerou/burrow/internal/ui/textinput"
)

// inputKind tells what a text input popup was opened for.
type inputKind int

const (
	inputRename inputKind = iota
	inputNewFile
	inputNewFolder
)

// inputRequest is the context carried through the text input popup.
type inputRequest struct {
	kind inputKind
	path string // entry to rename, or directory to create in
}

// deleteRequest is the context carried through the delete confirmation.
type deleteRequest struct {
	path string
}

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.nav.SetSize(msg.Width, layout.ContentHeight(msg.Height, layout.DefaultContentOpts))
		m.popups.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.popups.Active() != PopupNone {
			cmd := m.popups.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)

	case action.Msg:
		return m.handleAction(msg)

	case OpDoneMsg:
		return m.handleOpDone(msg)

	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil
	}

	if m.popups.Active() != PopupNone {
		cmd := m.popups.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		m.log.Info().Msg("quit")
		return m, tea.Quit
	case keymap.ActionHelp:
		m.popups.ShowHelp()
		return m, nil
	case keymap.ActionRefresh:
		var cmd tea.Cmd
		m.nav, cmd = m.nav.Refresh()
		return m, cmd
	case keymap.ActionToggleHidden:
		var cmd tea.Cmd
		m.nav, cmd = m.nav.ToggleHidden()
		return m, cmd
	case keymap.ActionDelete:
		return m.startDelete()
	case keymap.ActionRename:
		sel, ok := m.nav.Selected()
		if !ok {
			return m, nil
		}
		cmd := m.popups.ShowTextInput("Rename", sel.Name, inputRequest{kind: inputRename, path: sel.Path})
		return m, cmd
	case keymap.ActionNewFile:
		cmd := m.popups.ShowTextInput("New file", "", inputRequest{kind: inputNewFile, path: m.nav.CurrentPath()})
		return m, cmd
	case keymap.ActionNewFolder:
		cmd := m.popups.ShowTextInput("New folder", "", inputRequest{kind: inputNewFolder, path: m.nav.CurrentPath()})
		return m, cmd
	case keymap.ActionCopy:
		sel, ok := m.nav.Selected()
		if !ok {
			return m, nil
		}
		m.clipboard = sel.Path
		cmd := m.notify(fmt.Sprintf("Copied '%s' to clipboard", sel.Name), false)
		return m, cmd
	case keymap.ActionPaste:
		if m.clipboard == "" {
			cmd := m.notify("Clipboard is empty", false)
			return m, cmd
		}
		return m, m.pasteCmd(m.clipboard, m.nav.CurrentPath())
	}

	var cmd tea.Cmd
	m.nav, cmd = m.nav.Update(msg)
	return m, cmd
}

func (m Model) startDelete() (tea.Model, tea.Cmd) {
	sel, ok := m.nav.Selected()
	if !ok {
		return m, nil
	}
	if !m.cfg.ShouldConfirmDelete() {
		return m, m.deleteCmd(sel.Path)
	}
	kind := "file"
	if sel.IsDir {
		kind = "folder"
	}
	m.popups.ShowConfirm(
		"Delete",
		fmt.Sprintf("Delete %s '%s'?", kind, sel.Name),
		deleteRequest{path: sel.Path},
	)
	return m, nil
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case confirm.Result:
		m.popups.Close()
		req, ok := a.Context.(deleteRequest)
		if !ok || !a.Confirmed {
			return m, nil
		}
		return m, m.deleteCmd(req.path)

	case textinput.Result:
		m.popups.Close()
		req, ok := a.Context.(inputRequest)
		if !ok || a.Canceled {
			return m, nil
		}
		return m.handleInput(req, a.Text)

	case helpbindings.Close:
		m.popups.Close()
		return m, nil

	case navigator.LoadFailed:
		m.log.Warn().Err(a.Err).Str("path", a.Path).Msg("cannot open directory")
		cmd := m.notify(errmsg.FormatWith(errmsg.OpListDirectory, filepath.Base(a.Path), a.Err), true)
		return m, cmd

	case navigator.FileSelected:
		m.log.Debug().Str("path", a.Path).Msg("file selected")
		return m, nil

	case navigator.NavigationChanged:
		m.log.Debug().
			Str("path", a.CurrentPath).
			Str("selected", a.SelectedName).
			Msg("navigation changed")
		if m.state != nil {
			m.state.SaveNavigation(state.NavigationState{
				CurrentPath:  a.CurrentPath,
				SelectedName: a.SelectedName,
			})
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleInput(req inputRequest, name string) (tea.Model, tea.Cmd) {
	if !fsops.ValidName(name) {
		cmd := m.notify(fmt.Sprintf("Invalid name '%s'", name), true)
		return m, cmd
	}
	switch req.kind {
	case inputRename:
		if name == filepath.Base(req.path) {
			return m, nil
		}
		return m, m.renameCmd(req.path, name)
	case inputNewFile:
		return m, m.touchCmd(req.path, name)
	case inputNewFolder:
		return m, m.mkdirCmd(req.path, name)
	}
	return m, nil
}

var doneVerbs = map[errmsg.Op]string{
	errmsg.OpFileDelete:   "Deleted '%s'",
	errmsg.OpFileRename:   "Renamed '%s'",
	errmsg.OpFileCreate:   "Created file '%s'",
	errmsg.OpFolderCreate: "Created folder '%s'",
	errmsg.OpFilePaste:    "Pasted '%s'",
}

func (m Model) handleOpDone(msg OpDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Error().Err(msg.Err).Str("op", string(msg.Op)).Str("name", msg.Name).Msg("operation failed")
		cmd := m.notify(errmsg.FormatWith(msg.Op, msg.Name, msg.Err), true)
		return m, cmd
	}

	var navCmd tea.Cmd
	m.nav, navCmd = m.nav.RefreshFocus(msg.Focus)
	noticeCmd := m.notify(fmt.Sprintf(doneVerbs[msg.Op], msg.Name), false)
	return m, tea.Batch(navCmd, noticeCmd)
}
