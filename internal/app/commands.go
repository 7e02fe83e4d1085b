package app

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/burrow/internal/errmsg"
	"github.com/llehouerou/burrow/internal/fserr"
	"github.com/llehouerou/burrow/internal/fsops"
)

// deleteCmd removes path and everything below it.
func (m Model) deleteCmd(path string) tea.Cmd {
	ops := m.ops
	name := filepath.Base(path)
	return func() tea.Msg {
		_, err := ops.RemoveAll(path)
		return OpDoneMsg{Op: errmsg.OpFileDelete, Name: name, Err: err}
	}
}

// renameCmd renames oldPath to newName within the same directory. An
// existing target is refused rather than replaced.
func (m Model) renameCmd(oldPath, newName string) tea.Cmd {
	ops := m.ops
	return func() tea.Msg {
		newPath := filepath.Join(filepath.Dir(oldPath), newName)
		done := OpDoneMsg{Op: errmsg.OpFileRename, Name: filepath.Base(oldPath), Focus: newName}
		if newPath != oldPath && fsops.Exists(newPath) {
			done.Err = fserr.New("rename", newPath, fserr.KindExists, os.ErrExist)
			return done
		}
		done.Err = ops.Rename(oldPath, newPath)
		return done
	}
}

// touchCmd creates an empty file, or bumps the modification time of an
// existing one.
func (m Model) touchCmd(dir, name string) tea.Cmd {
	ops := m.ops
	return func() tea.Msg {
		err := ops.Touch(filepath.Join(dir, name))
		return OpDoneMsg{Op: errmsg.OpFileCreate, Name: name, Focus: name, Err: err}
	}
}

// mkdirCmd creates a directory; an existing one is reported as a failure.
func (m Model) mkdirCmd(dir, name string) tea.Cmd {
	ops := m.ops
	return func() tea.Msg {
		path := filepath.Join(dir, name)
		created, err := ops.MakeDirAll(path)
		if err == nil && !created {
			err = fserr.New("mkdir", path, fserr.KindExists, os.ErrExist)
		}
		return OpDoneMsg{Op: errmsg.OpFolderCreate, Name: name, Focus: name, Err: err}
	}
}

// pasteCmd copies src into dir under a name that does not collide.
func (m Model) pasteCmd(src, dir string) tea.Cmd {
	ops := m.ops
	return func() tea.Msg {
		name := filepath.Base(src)
		dest, err := fsops.FreeCopyPath(dir, name)
		if err != nil {
			return OpDoneMsg{Op: errmsg.OpFilePaste, Name: name, Err: err}
		}
		err = ops.Copy(src, dest)
		return OpDoneMsg{Op: errmsg.OpFilePaste, Name: name, Focus: filepath.Base(dest), Err: err}
	}
}
