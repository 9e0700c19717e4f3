package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitFor(t *testing.T) {
	events := make(chan Event, 4)
	events <- Event{ActorID: "spectator", Text: "hello"}
	events <- Event{ActorID: "a", Text: "!hit"}

	ev, ok, err := WaitFor(context.Background(), events, time.Now().Add(time.Second), func(ev Event) bool {
		return ev.ActorID == "a"
	})
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "!hit", ev.Text)
}

func TestWaitFor_Timeout(t *testing.T) {
	events := make(chan Event, 4)
	events <- Event{ActorID: "spectator", Text: "hello"}

	start := time.Now()
	_, ok, err := WaitFor(context.Background(), events, start.Add(50*time.Millisecond), func(ev Event) bool {
		return false
	})
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestWaitFor_TransportClosed(t *testing.T) {
	events := make(chan Event)
	close(events)

	_, ok, err := WaitFor(context.Background(), events, time.Now().Add(time.Second), func(ev Event) bool {
		return true
	})
	assert.False(t, ok)
	assert.Equal(t, ErrTransportClosed, err)
}

func TestWaitFor_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	events := make(chan Event)
	_, ok, err := WaitFor(ctx, events, time.Now().Add(time.Second), func(ev Event) bool {
		return true
	})
	assert.False(t, ok)
	assert.Equal(t, context.Canceled, err)
}
