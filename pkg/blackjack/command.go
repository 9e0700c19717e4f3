package blackjack

import (
	"strconv"
	"strings"
)

type commandKind int

const (
	cmdStartSession commandKind = iota
	cmdJoin
	cmdQuit
	cmdBet
	cmdHit
	cmdHold
)

// command is a parsed chat command
type command struct {
	kind commandKind

	// amount is the parsed bet amount; -1 if the argument was missing or
	// not a number
	amount int
}

// parseCommand parses a prefix-delimited command out of a chat message.
// Anything unrecognized returns ok=false and is ignored by the caller.
func parseCommand(prefix, text string) (command, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, prefix) {
		return command{}, false
	}

	fields := strings.Fields(strings.TrimPrefix(text, prefix))
	if len(fields) == 0 {
		return command{}, false
	}

	switch strings.ToLower(fields[0]) {
	case "start-session":
		return command{kind: cmdStartSession}, true
	case "join":
		return command{kind: cmdJoin}, true
	case "quit":
		return command{kind: cmdQuit}, true
	case "hit":
		return command{kind: cmdHit}, true
	case "hold":
		return command{kind: cmdHold}, true
	case "bet":
		amount := -1
		if len(fields) == 2 {
			if val, err := strconv.Atoi(fields[1]); err == nil {
				amount = val
			}
		}

		return command{kind: cmdBet, amount: amount}, true
	}

	return command{}, false
}

// IsStartCommand returns true if the text is the start-session command. The
// transport layer uses this to decide when to spin up a session for a
// channel.
func IsStartCommand(prefix, text string) bool {
	cmd, ok := parseCommand(prefix, text)
	return ok && cmd.kind == cmdStartSession
}
