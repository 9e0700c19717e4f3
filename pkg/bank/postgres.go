package bank

import (
	"context"
	"database/sql"
)

// Postgres is a Store backed by the bankrolls table
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a Postgres-backed store
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Bankroll returns the saved bankroll for the actor
func (p *Postgres) Bankroll(ctx context.Context, actorID string) (int, bool, error) {
	const query = `
SELECT amount
FROM bankrolls
WHERE actor_id = $1`

	var amount int
	if err := p.db.QueryRowContext(ctx, query, actorID).Scan(&amount); err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}

		return 0, false, err
	}

	return amount, true, nil
}

// SaveBankroll saves the actor's bankroll
func (p *Postgres) SaveBankroll(ctx context.Context, actorID string, amount int) error {
	const query = `
INSERT INTO bankrolls (actor_id, amount, updated)
VALUES ($1, $2, (NOW() AT TIME ZONE 'utc'))
ON CONFLICT (actor_id) DO UPDATE SET amount = $2, updated = (NOW() AT TIME ZONE 'utc')`

	_, err := p.db.ExecContext(ctx, query, actorID, amount)
	return err
}
