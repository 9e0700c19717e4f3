package bank

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const recorderMaxAttempts = 5
const recorderQueueSize = 256
const recorderSaveTimeout = time.Second * 5

// recorderRetryUnit scales the backoff between save attempts
var recorderRetryUnit = time.Second

// Recorder wraps a Store with write-behind bankroll saves. SaveBankroll
// enqueues and returns immediately; a background loop performs the write and
// retries failures with backoff instead of dropping them. Reads pass through
// to the underlying store.
type Recorder struct {
	store  Store
	logger logrus.FieldLogger
	saves  chan save
	wg     sync.WaitGroup
}

type save struct {
	actorID string
	amount  int
}

// NewRecorder returns a started Recorder. Call Close to flush it.
func NewRecorder(store Store, logger logrus.FieldLogger) *Recorder {
	r := &Recorder{
		store:  store,
		logger: logger,
		saves:  make(chan save, recorderQueueSize),
	}

	r.wg.Add(1)
	go r.runLoop()

	return r
}

// Bankroll returns the saved bankroll for the actor
func (r *Recorder) Bankroll(ctx context.Context, actorID string) (int, bool, error) {
	return r.store.Bankroll(ctx, actorID)
}

// SaveBankroll enqueues the save. The write happens in the background; a
// full queue falls back to a synchronous write so nothing is lost.
func (r *Recorder) SaveBankroll(ctx context.Context, actorID string, amount int) error {
	select {
	case r.saves <- save{actorID: actorID, amount: amount}:
		return nil
	default:
		return r.store.SaveBankroll(ctx, actorID, amount)
	}
}

// Close flushes pending saves and stops the background loop
func (r *Recorder) Close() {
	close(r.saves)
	r.wg.Wait()
}

func (r *Recorder) runLoop() {
	defer r.wg.Done()

	for s := range r.saves {
		r.write(s)
	}
}

func (r *Recorder) write(s save) {
	for attempt := 1; ; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), recorderSaveTimeout)
		err := r.store.SaveBankroll(ctx, s.actorID, s.amount)
		cancel()

		if err == nil {
			return
		}

		log := r.logger.WithError(err).WithFields(logrus.Fields{
			"actorId": s.actorID,
			"attempt": attempt,
		})

		if attempt >= recorderMaxAttempts {
			log.Error("giving up on bankroll save")
			return
		}

		log.Warn("could not save bankroll; will retry")
		time.Sleep(time.Duration(attempt) * recorderRetryUnit)
	}
}
