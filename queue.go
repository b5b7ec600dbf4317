package winhook

import (
	"errors"
	"sync"
)

var (
	// ErrEmpty is returned by TryRecv when no event is pending but at least
	// one hook is still alive.
	ErrEmpty = errors.New("no input event pending")

	// ErrDisconnected is returned by TryRecv once every hook has stopped and
	// all buffered events have been consumed.
	ErrDisconnected = errors.New("input hooks disconnected")
)

// eventQueue is the unbounded FIFO between one hook thread and the consumer.
// push never blocks; the hook callback must return to the OS promptly, so a
// bounded channel that could stall the producer is not an option here.
type eventQueue struct {
	mu     sync.Mutex
	events []InputEvent
	closed bool
}

// push appends an event. Events arriving after close are dropped.
func (q *eventQueue) push(ev InputEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.events = append(q.events, ev)
}

// tryRecv pops the oldest pending event. It reports ErrEmpty while the
// producer may still deliver, and ErrDisconnected once the queue is closed
// and drained.
func (q *eventQueue) tryRecv() (InputEvent, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		if q.closed {
			return InputEvent{}, ErrDisconnected
		}
		return InputEvent{}, ErrEmpty
	}

	ev := q.events[0]
	q.events = q.events[1:]
	return ev, nil
}

// close marks the producer side gone. Pending events remain readable until
// drained.
func (q *eventQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
}

// drain discards all pending events.
func (q *eventQueue) drain() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = nil
}
