package chat

import (
	"context"
	"time"
)

// WaitFor blocks until the next event satisfying match arrives, the deadline
// passes, or the context is canceled. Events that do not satisfy match are
// discarded and the wait continues against the same deadline.
//
// The second return value is false if the deadline elapsed without a matching
// event. A closed event stream results in ErrTransportClosed.
func WaitFor(ctx context.Context, events <-chan Event, deadline time.Time, match func(Event) bool) (Event, bool, error) {
	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return Event{}, false, ctx.Err()
		case <-timer.C:
			return Event{}, false, nil
		case ev, ok := <-events:
			if !ok {
				return Event{}, false, ErrTransportClosed
			}

			if match(ev) {
				return ev, true, nil
			}
		}
	}
}
