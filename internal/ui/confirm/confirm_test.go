package confirm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/burrow/internal/ui/action"
	"github.com/llehouerou/burrow/internal/ui/testutil"
)

func newTestConfirm(title, message string, context any) *testutil.PopupHarness {
	m := New()
	m.Show(title, message, context, 60, 20)
	return testutil.NewPopupHarness(&m)
}

func getResult(t *testing.T, h *testutil.PopupHarness) Result {
	t.Helper()
	msg := testutil.ExecuteCmd(h.LastCommand())
	actionMsg, ok := msg.(action.Msg)
	require.True(t, ok, "expected action.Msg, got %T", msg)
	assert.Equal(t, "confirm", actionMsg.Source)
	result, ok := actionMsg.Action.(Result)
	require.True(t, ok, "expected Result, got %T", actionMsg.Action)
	return result
}

func TestConfirmKeys(t *testing.T) {
	tests := []struct {
		name      string
		send      func(h *testutil.PopupHarness)
		confirmed bool
	}{
		{"enter confirms", func(h *testutil.PopupHarness) { h.SendEnter() }, true},
		{"y confirms", func(h *testutil.PopupHarness) { h.SendKey("y") }, true},
		{"Y confirms", func(h *testutil.PopupHarness) { h.SendKey("Y") }, true},
		{"escape cancels", func(h *testutil.PopupHarness) { h.SendEscape() }, false},
		{"n cancels", func(h *testutil.PopupHarness) { h.SendKey("n") }, false},
		{"N cancels", func(h *testutil.PopupHarness) { h.SendKey("N") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestConfirm("Delete", "Delete 'a.txt'?", "/tmp/a.txt")
			tt.send(h)

			result := getResult(t, h)
			assert.Equal(t, tt.confirmed, result.Confirmed)
			assert.Equal(t, "/tmp/a.txt", result.Context)
			assert.False(t, h.Popup().(*Model).Active())
		})
	}
}

func TestUnrelatedKeyIsIgnored(t *testing.T) {
	h := newTestConfirm("Delete", "Delete 'a.txt'?", nil)

	assert.Nil(t, h.SendKey("x"))
	assert.True(t, h.Popup().(*Model).Active())
}

func TestView(t *testing.T) {
	h := newTestConfirm("Delete", "Delete 'a.txt'?", nil)

	assert.True(t, h.ViewContains("Delete"))
	assert.True(t, h.ViewContains("Delete 'a.txt'?"))
	assert.True(t, h.ViewContains("n/esc: cancel"))
}

func TestInactive(t *testing.T) {
	m := New()
	h := testutil.NewPopupHarness(&m)
	h.SetSize(60, 20)

	assert.Nil(t, h.SendEnter())
	assert.Empty(t, h.View())
}

func TestReset(t *testing.T) {
	m := New()
	m.Show("t", "m", 42, 60, 20)
	m.Reset()

	assert.False(t, m.Active())
	assert.Equal(t, 60, m.Width(), "size survives reset")
	assert.Empty(t, m.View())
}
