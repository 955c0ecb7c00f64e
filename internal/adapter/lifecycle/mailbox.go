package lifecycle

import (
	"sync"
	"time"
)

// request is a caller operation waiting to run on the sequencing context.
type request struct {
	fn   func()
	done chan struct{}
}

// eventQueue is the unbounded FIFO of peer notifications. Producers are peer
// goroutines; the only consumer is the sequencing context.
type eventQueue struct {
	mu     sync.Mutex
	events []func()
	signal chan struct{}
}

func newEventQueue() *eventQueue {
	return &eventQueue{signal: make(chan struct{}, 1)}
}

// post appends an event. It never blocks.
func (q *eventQueue) post(fn func()) {
	q.mu.Lock()
	q.events = append(q.events, fn)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *eventQueue) pop() (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil, false
	}
	fn := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return fn, true
}

// submit runs fn on the sequencing context and waits for it to finish.
func (m *Manager) submit(fn func()) error {
	req := request{fn: fn, done: make(chan struct{})}
	select {
	case m.requests <- req:
	case <-m.done:
		return ErrManagerStopped
	}
	<-req.done
	return nil
}

// post queues a peer notification for the sequencing context. It is safe to
// call from any goroutine, including from inside a peer call.
func (m *Manager) post(fn func()) {
	m.events.post(fn)
}

// drainEvents handles every queued peer notification.
func (m *Manager) drainEvents() {
	for {
		fn, ok := m.events.pop()
		if !ok {
			return
		}
		fn()
	}
}

// awaitEvents handles peer notifications, and only those, until cond holds.
// It reports false when timeout elapsed first.
func (m *Manager) awaitEvents(cond func() bool, timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for !cond() {
		if fn, ok := m.events.pop(); ok {
			fn()
			continue
		}
		select {
		case <-m.events.signal:
		case <-timer.C:
			return cond()
		}
	}
	return true
}
