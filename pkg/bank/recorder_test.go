package bank

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// flakyStore fails the first n writes, then succeeds
type flakyStore struct {
	mu       sync.Mutex
	failures int
	attempts int
	amounts  map[string]int
}

func newFlakyStore(failures int) *flakyStore {
	return &flakyStore{
		failures: failures,
		amounts:  make(map[string]int),
	}
}

func (f *flakyStore) Bankroll(_ context.Context, actorID string) (int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	amount, found := f.amounts[actorID]
	return amount, found, nil
}

func (f *flakyStore) SaveBankroll(_ context.Context, actorID string, amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.attempts++
	if f.attempts <= f.failures {
		return errors.New("store unavailable")
	}

	f.amounts[actorID] = amount
	return nil
}

func (f *flakyStore) attemptCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.attempts
}

func TestRecorder_WriteBehind(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()

	store := NewMemory()
	r := NewRecorder(store, logrus.StandardLogger())

	a.NoError(r.SaveBankroll(ctx, "a", 5000))
	a.NoError(r.SaveBankroll(ctx, "a", 4800))
	r.Close()

	amount, found, err := store.Bankroll(ctx, "a")
	a.NoError(err)
	a.True(found)
	a.Equal(4800, amount)

	// reads pass through
	amount, found, err = r.Bankroll(ctx, "a")
	a.NoError(err)
	a.True(found)
	a.Equal(4800, amount)
}

func TestRecorder_RetriesFailedSaves(t *testing.T) {
	old := recorderRetryUnit
	recorderRetryUnit = time.Millisecond
	defer func() { recorderRetryUnit = old }()

	a := assert.New(t)
	ctx := context.Background()

	store := newFlakyStore(2)
	r := NewRecorder(store, logrus.StandardLogger())

	a.NoError(r.SaveBankroll(ctx, "a", 1234))
	r.Close()

	a.Equal(3, store.attemptCount())

	amount, found, err := store.Bankroll(ctx, "a")
	a.NoError(err)
	a.True(found)
	a.Equal(1234, amount)
}

func TestRecorder_GivesUpAfterMaxAttempts(t *testing.T) {
	old := recorderRetryUnit
	recorderRetryUnit = time.Millisecond
	defer func() { recorderRetryUnit = old }()

	a := assert.New(t)
	ctx := context.Background()

	store := newFlakyStore(recorderMaxAttempts + 1)
	r := NewRecorder(store, logrus.StandardLogger())

	a.NoError(r.SaveBankroll(ctx, "a", 1234))
	r.Close()

	a.Equal(recorderMaxAttempts, store.attemptCount())

	_, found, err := store.Bankroll(ctx, "a")
	a.NoError(err)
	a.False(found)
}
