// notify/queue.go
package notify

import (
	"context"

	"keypad-go/errcode"
)

// Queue is a bounded point-to-point FIFO of 32-bit values.
//
// Sends never block: a send against a full queue drops the value rather
// than evicting older entries or stalling the producer. One consumer is
// expected, though several may race for entries.
type Queue struct {
	ch chan uint32
}

// NewQueue creates a queue with the given capacity.
func NewQueue(depth int) *Queue {
	if depth <= 0 {
		depth = 1
	}
	return &Queue{ch: make(chan uint32, depth)}
}

// TrySend enqueues v without blocking. It reports whether the value was
// accepted; false means the queue was full and v was dropped.
func (q *Queue) TrySend(v uint32) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// Receive blocks until a value is available or ctx is done. An expired
// deadline reports errcode.Timeout; cancellation is passed through so a
// caller can tell shutdown from a missed wait.
func (q *Queue) Receive(ctx context.Context) (uint32, error) {
	select {
	case v := <-q.ch:
		return v, nil
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return 0, errcode.Timeout
		}
		return 0, ctx.Err()
	}
}

// TryReceive dequeues without blocking.
func (q *Queue) TryReceive() (uint32, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		return 0, false
	}
}

// Len returns the number of queued values.
func (q *Queue) Len() int { return len(q.ch) }

// Cap returns the queue capacity.
func (q *Queue) Cap() int { return cap(q.ch) }
