// Package bank persists per-actor bankrolls. The blackjack session only
// talks to the Store interface; the Postgres implementation backs the real
// server and Memory backs tests.
package bank

import "context"

// Store persists bankrolls keyed by a stable actor ID
type Store interface {
	// Bankroll returns the saved bankroll for the actor. The second return
	// value is false if the actor has no saved bankroll.
	Bankroll(ctx context.Context, actorID string) (int, bool, error)

	// SaveBankroll saves the actor's bankroll
	SaveBankroll(ctx context.Context, actorID string, amount int) error
}
