package blackjack

import "fmt"

// UserError is an error that is safe to echo back into the chat channel
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ErrIllegalAction is returned when a participant attempts an action that is
// not permitted in the current state (already acted, holding, busted, or the
// dealer trying to bet). State is never modified when this is returned.
var ErrIllegalAction = UserError("you cannot do that right now")

// ErrTableFull is returned when a join would exceed the configured seat count
var ErrTableFull = UserError("the table is full")

// BetError is an error on the amount of an attempted bet
type BetError struct {
	Min      int
	Multiple int
	Bankroll int
	Got      int
}

func (b BetError) Error() string {
	return fmt.Sprintf("bet must be a multiple of %d between %d and your bankroll of %d; got %d", b.Multiple, b.Min, b.Bankroll, b.Got)
}
