package bank

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	m := NewMemory()

	_, found, err := m.Bankroll(ctx, "a")
	a.NoError(err)
	a.False(found)

	a.NoError(m.SaveBankroll(ctx, "a", 5000))
	a.NoError(m.SaveBankroll(ctx, "b", 100))

	amount, found, err := m.Bankroll(ctx, "a")
	a.NoError(err)
	a.True(found)
	a.Equal(5000, amount)

	a.NoError(m.SaveBankroll(ctx, "a", 4800))
	amount, _, _ = m.Bankroll(ctx, "a")
	a.Equal(4800, amount)
}
