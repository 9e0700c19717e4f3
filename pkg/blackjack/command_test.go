package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text   string
		ok     bool
		kind   commandKind
		amount int
	}{
		{"!start-session", true, cmdStartSession, 0},
		{"!join", true, cmdJoin, 0},
		{" !join ", true, cmdJoin, 0},
		{"!JOIN", true, cmdJoin, 0},
		{"!quit", true, cmdQuit, 0},
		{"!hit", true, cmdHit, 0},
		{"!hold", true, cmdHold, 0},
		{"!bet 500", true, cmdBet, 500},
		{"!bet abc", true, cmdBet, -1},
		{"!bet", true, cmdBet, -1},
		{"!bet 50 extra", true, cmdBet, -1},
		{"!double-down", false, 0, 0},
		{"join", false, 0, 0},
		{"hello there", false, 0, 0},
		{"!", false, 0, 0},
		{"", false, 0, 0},
	}

	for _, test := range tests {
		cmd, ok := parseCommand("!", test.text)
		assert.Equal(t, test.ok, ok, "text=%q", test.text)
		if !test.ok {
			continue
		}

		assert.Equal(t, test.kind, cmd.kind, "text=%q", test.text)
		assert.Equal(t, test.amount, cmd.amount, "text=%q", test.text)
	}
}

func TestParseCommand_Prefix(t *testing.T) {
	_, ok := parseCommand(".", "!join")
	assert.False(t, ok)

	cmd, ok := parseCommand(".", ".join")
	assert.True(t, ok)
	assert.Equal(t, cmdJoin, cmd.kind)
}

func TestIsStartCommand(t *testing.T) {
	assert.True(t, IsStartCommand("!", "!start-session"))
	assert.False(t, IsStartCommand("!", "!join"))
	assert.False(t, IsStartCommand("!", "start-session"))
}
