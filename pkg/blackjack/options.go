package blackjack

import "time"

// Options are options for running a blackjack session
type Options struct {
	CommandPrefix string        // Default: "!"
	Intermission  time.Duration // how long the table stays open for joins
	Betting       time.Duration // how long players have to place a bet
	Playing       time.Duration // how long a hit/hold round lasts

	MinBet      int // Default: 50, also the forced bet on a betting timeout
	BetMultiple int // bets must be a multiple of this. Default: 50
	MaxPlayers  int // seat count; keeps a single deck sufficient

	StartingBankroll int // bankroll for a first-time player
	BankrollFloor    int // at or below this, the bankroll is topped up after a game
	BankrollTopUp    int // the top-up amount; must cover MinBet
}

// DefaultOptions returns the default options for a blackjack session
func DefaultOptions() Options {
	return Options{
		CommandPrefix:    "!",
		Intermission:     10 * time.Second,
		Betting:          15 * time.Second,
		Playing:          30 * time.Second,
		MinBet:           50,
		BetMultiple:      50,
		MaxPlayers:       6,
		StartingBankroll: 5000,
		BankrollFloor:    0,
		BankrollTopUp:    1000,
	}
}
