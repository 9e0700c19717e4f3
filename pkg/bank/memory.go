package bank

import (
	"context"
	"sync"
)

// Memory is an in-memory Store for tests and single-process development
type Memory struct {
	mu      sync.Mutex
	amounts map[string]int
}

// NewMemory returns an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		amounts: make(map[string]int),
	}
}

// Bankroll returns the saved bankroll for the actor
func (m *Memory) Bankroll(_ context.Context, actorID string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	amount, found := m.amounts[actorID]
	return amount, found, nil
}

// SaveBankroll saves the actor's bankroll
func (m *Memory) SaveBankroll(_ context.Context, actorID string, amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.amounts[actorID] = amount
	return nil
}
