package app

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/burrow/internal/config"
	"github.com/llehouerou/burrow/internal/errmsg"
	"github.com/llehouerou/burrow/internal/fserr"
	"github.com/llehouerou/burrow/internal/state"
	"github.com/llehouerou/burrow/internal/ui/testutil"
)

func newTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "alpha"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "alpha", "inner.txt"), []byte("inside"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hello"), 0o644))
	return root
}

func newApp(t *testing.T, root string, cfg *config.Config) Model {
	t.Helper()
	m, err := New(Options{StartPath: root, Config: cfg, Logger: zerolog.Nop()})
	require.NoError(t, err)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func noConfirm() *config.Config {
	off := false
	return &config.Config{ConfirmDelete: &off}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	return update(t, m, cmd())
}

func press(t *testing.T, m Model, s string) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, testutil.KeyMsg(s))
}

func TestNew_MissingStartPath(t *testing.T) {
	_, err := New(Options{StartPath: filepath.Join(t.TempDir(), "nope"), Logger: zerolog.Nop()})
	assert.Error(t, err)
}

func TestDelete_WithoutConfirmation(t *testing.T) {
	root := newTree(t)
	m := newApp(t, root, noConfirm())
	require.Equal(t, "alpha", m.Navigator().SelectedName())

	m, cmd := press(t, m, "d")
	m, _ = run(t, m, cmd)

	assert.NoDirExists(t, filepath.Join(root, "alpha"))
	assert.Equal(t, "notes.txt", m.Navigator().SelectedName())
	assert.Equal(t, "Deleted 'alpha'", m.Notice())
}

func TestDelete_ConfirmFlow(t *testing.T) {
	root := newTree(t)
	m := newApp(t, root, nil)

	m, cmd := press(t, m, "d")
	assert.Nil(t, cmd)
	assert.Equal(t, PopupConfirm, m.popups.Active())
	assert.Contains(t, testutil.StripANSI(m.View()), "Delete folder 'alpha'?")

	m, cmd = press(t, m, "y")
	m, cmd = run(t, m, cmd) // confirmation result
	assert.Equal(t, PopupNone, m.popups.Active())
	m, _ = run(t, m, cmd) // deletion

	assert.NoDirExists(t, filepath.Join(root, "alpha"))
}

func TestDelete_Declined(t *testing.T) {
	root := newTree(t)
	m := newApp(t, root, nil)

	m, _ = press(t, m, "d")
	m, cmd := press(t, m, "n")
	m, cmd = run(t, m, cmd)

	assert.Nil(t, cmd)
	assert.Equal(t, PopupNone, m.popups.Active())
	assert.DirExists(t, filepath.Join(root, "alpha"))
}

func TestNewFolder(t *testing.T) {
	root := newTree(t)
	m := newApp(t, root, nil)

	m, _ = press(t, m, "N")
	require.Equal(t, PopupTextInput, m.popups.Active())
	m, _ = press(t, m, "reports")
	m, cmd := press(t, m, "enter")
	m, cmd = run(t, m, cmd) // input result
	m, _ = run(t, m, cmd)   // mkdir

	assert.DirExists(t, filepath.Join(root, "reports"))
	assert.Equal(t, "reports", m.Navigator().SelectedName())
	assert.Equal(t, "Created folder 'reports'", m.Notice())
}

func TestNewFolder_AlreadyExists(t *testing.T) {
	root := newTree(t)
	m := newApp(t, root, nil)

	m, _ = press(t, m, "N")
	m, _ = press(t, m, "alpha")
	m, cmd := press(t, m, "enter")
	m, cmd = run(t, m, cmd)
	m, _ = run(t, m, cmd)

	assert.Equal(t, "Failed to create folder 'alpha': already exists", m.Notice())
	assert.True(t, m.notice.isErr)
}

func TestNewFile(t *testing.T) {
	root := newTree(t)
	m := newApp(t, root, nil)

	m, _ = press(t, m, "n")
	m, _ = press(t, m, "todo.md")
	m, cmd := press(t, m, "enter")
	m, cmd = run(t, m, cmd)
	m, _ = run(t, m, cmd)

	info, err := os.Stat(filepath.Join(root, "todo.md"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
	assert.Equal(t, "todo.md", m.Navigator().SelectedName())
}

func TestNewFile_InvalidName(t *testing.T) {
	root := newTree(t)
	m := newApp(t, root, nil)

	m, _ = press(t, m, "n")
	m, _ = press(t, m, "a/b")
	m, cmd := press(t, m, "enter")
	m, _ = run(t, m, cmd)

	assert.Equal(t, "Invalid name 'a/b'", m.Notice())
	assert.NoFileExists(t, filepath.Join(root, "a", "b"))
}

func TestNewFile_Canceled(t *testing.T) {
	root := newTree(t)
	m := newApp(t, root, nil)

	m, _ = press(t, m, "n")
	m, _ = press(t, m, "x.txt")
	m, cmd := press(t, m, "esc")
	m, cmd = run(t, m, cmd)

	assert.Nil(t, cmd)
	assert.Equal(t, PopupNone, m.popups.Active())
	assert.NoFileExists(t, filepath.Join(root, "x.txt"))
}

func TestRename(t *testing.T) {
	root := newTree(t)
	m := newApp(t, root, nil)
	m, _ = press(t, m, "j") // notes.txt

	m, _ = press(t, m, "r")
	for range len(".txt") {
		m, _ = press(t, m, "backspace")
	}
	m, _ = press(t, m, ".md")
	m, cmd := press(t, m, "enter")
	m, cmd = run(t, m, cmd)
	m, _ = run(t, m, cmd)

	assert.NoFileExists(t, filepath.Join(root, "notes.txt"))
	assert.FileExists(t, filepath.Join(root, "notes.md"))
	assert.Equal(t, "notes.md", m.Navigator().SelectedName())
	assert.Equal(t, "Renamed 'notes.txt'", m.Notice())
}

func TestRename_RefusesExistingTarget(t *testing.T) {
	root := newTree(t)
	m := newApp(t, root, nil)
	m, _ = press(t, m, "j") // notes.txt

	m, _ = press(t, m, "r")
	for range len("notes.txt") {
		m, _ = press(t, m, "backspace")
	}
	m, _ = press(t, m, "alpha")
	m, cmd := press(t, m, "enter")
	m, cmd = run(t, m, cmd)
	m, _ = run(t, m, cmd)

	assert.Equal(t, "Failed to rename 'notes.txt': already exists", m.Notice())
	assert.FileExists(t, filepath.Join(root, "notes.txt"))
	assert.DirExists(t, filepath.Join(root, "alpha"))
}

func TestCopyPaste(t *testing.T) {
	root := newTree(t)
	m := newApp(t, root, nil)
	m, _ = press(t, m, "j") // notes.txt

	m, _ = press(t, m, "c")
	assert.Equal(t, filepath.Join(root, "notes.txt"), m.Clipboard())
	assert.Equal(t, "Copied 'notes.txt' to clipboard", m.Notice())

	m, cmd := press(t, m, "p")
	m, _ = run(t, m, cmd)

	data, err := os.ReadFile(filepath.Join(root, "notes copy.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, "notes copy.txt", m.Navigator().SelectedName())
	assert.Equal(t, "Pasted 'notes.txt'", m.Notice())
}

func TestPaste_DirectoryIntoItself(t *testing.T) {
	root := newTree(t)
	m := newApp(t, root, nil)

	m, _ = press(t, m, "c") // alpha
	m, _ = press(t, m, "l")
	require.Equal(t, filepath.Join(root, "alpha"), m.Navigator().CurrentPath())

	m, cmd := press(t, m, "p")
	m, _ = run(t, m, cmd)

	assert.True(t, m.notice.isErr)
	assert.Contains(t, m.Notice(), "Failed to paste 'alpha'")
}

func TestPaste_EmptyClipboard(t *testing.T) {
	m := newApp(t, newTree(t), nil)

	m, _ = press(t, m, "p")

	assert.Equal(t, "Clipboard is empty", m.Notice())
}

func TestOpDone_ErrorIsReported(t *testing.T) {
	m := newApp(t, newTree(t), nil)

	m, _ = update(t, m, OpDoneMsg{
		Op:   errmsg.OpFileDelete,
		Name: "secret",
		Err:  fserr.Wrap("remove", "/x/secret", os.ErrPermission),
	})

	assert.Equal(t, "Failed to delete 'secret': permission denied", m.Notice())
}

func TestLoadFailure_IsReported(t *testing.T) {
	root := newTree(t)
	m := newApp(t, root, nil)
	require.NoError(t, os.RemoveAll(filepath.Join(root, "alpha")))

	m, cmd := press(t, m, "l")
	m, _ = run(t, m, cmd)

	assert.Equal(t, root, m.Navigator().CurrentPath())
	assert.Equal(t, "Failed to open directory 'alpha': not found", m.Notice())
}

func TestNotice_ClearsOnlyLatest(t *testing.T) {
	m := newApp(t, newTree(t), nil)
	m, _ = press(t, m, "p")
	first := m.notice.id
	m, _ = press(t, m, "c")

	m, _ = update(t, m, clearNoticeMsg{id: first})
	assert.NotEmpty(t, m.Notice())

	m, _ = update(t, m, clearNoticeMsg{id: m.notice.id})
	assert.Empty(t, m.Notice())
}

func TestHelpPopup(t *testing.T) {
	m := newApp(t, newTree(t), nil)

	m, _ = press(t, m, "?")
	require.Equal(t, PopupHelp, m.popups.Active())
	assert.Contains(t, testutil.StripANSI(m.View()), "Navigation")

	m, cmd := press(t, m, "?")
	m, _ = run(t, m, cmd)
	assert.Equal(t, PopupNone, m.popups.Active())
}

func TestToggleHidden(t *testing.T) {
	root := newTree(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), nil, 0o644))
	m := newApp(t, root, nil)
	require.Len(t, m.Navigator().Current().Children, 3)

	m, _ = press(t, m, ".")

	assert.Len(t, m.Navigator().Current().Children, 2)
}

func TestRefreshPicksUpChanges(t *testing.T) {
	root := newTree(t)
	m := newApp(t, root, nil)
	require.NoError(t, os.WriteFile(filepath.Join(root, "new.txt"), nil, 0o644))

	m, _ = press(t, m, "R")

	assert.Len(t, m.Navigator().Current().Children, 3)
}

func TestQuit(t *testing.T) {
	m := newApp(t, newTree(t), nil)

	_, cmd := press(t, m, "q")

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestView_StatusBar(t *testing.T) {
	root := newTree(t)
	m := newApp(t, root, nil)
	m, cmd := press(t, m, "l")
	m, _ = run(t, m, cmd) // navigation changed

	lines := testutil.SplitLines(m.View())
	require.Len(t, lines, 30)

	status := lines[len(lines)-2]
	assert.Contains(t, status, "1 item")
	assert.Contains(t, status, "6 B")
	assert.Contains(t, status, "<1 >0")
	assert.Contains(t, lines[len(lines)-1], "? help")
	assert.Contains(t, lines[0], "burrow")
}

func TestNew_SelectsEntry(t *testing.T) {
	root := newTree(t)

	m, err := New(Options{StartPath: root, Select: "notes.txt", Logger: zerolog.Nop()})
	require.NoError(t, err)

	assert.Equal(t, "notes.txt", m.Navigator().SelectedName())
}

func TestNavigationIsRemembered(t *testing.T) {
	root := newTree(t)
	st := state.NewMock()
	m, err := New(Options{StartPath: root, State: st, Logger: zerolog.Nop()})
	require.NoError(t, err)

	m, cmd := press(t, m, "j")
	_, _ = run(t, m, cmd)

	saved, err := st.GetNavigation()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, root, saved.CurrentPath)
	assert.Equal(t, "notes.txt", saved.SelectedName)
}

func TestOpDone_RemembersFocusedEntry(t *testing.T) {
	root := newTree(t)
	st := state.NewMock()
	m, err := New(Options{StartPath: root, State: st, Logger: zerolog.Nop()})
	require.NoError(t, err)

	m, _ = press(t, m, "n")
	m, _ = press(t, m, "zz.txt")
	m, cmd := press(t, m, "enter")
	m, cmd = run(t, m, cmd) // input result
	m, cmd = run(t, m, cmd) // touch

	// The batch holds the navigator refresh first and the notice timer last.
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	require.Len(t, batch, 2)
	_, _ = run(t, m, batch[0])

	saved, err := st.GetNavigation()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "zz.txt", saved.SelectedName)
}
