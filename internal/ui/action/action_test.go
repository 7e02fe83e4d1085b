package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ping struct{ n int }

func (ping) ActionType() string { return "test.ping" }

func TestCmd(t *testing.T) {
	cmd := Cmd("tester", ping{n: 3})

	msg, ok := cmd().(Msg)
	assert.True(t, ok)
	assert.Equal(t, "tester", msg.Source)
	assert.Equal(t, ping{n: 3}, msg.Action)
	assert.Equal(t, "test.ping", msg.Action.ActionType())
}
