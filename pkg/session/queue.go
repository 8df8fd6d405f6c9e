package session

import (
	"sync"

	"src.jubako.dev/pkg/vdom"
)

// queue is an unbounded multi-producer, single-consumer message queue. Pushes
// never block, so a view whose handlers enqueue messages faster than the
// update loop applies them grows the queue without limit.
type queue struct {
	mu     sync.Mutex
	items  []vdom.Msg
	closed bool
	// Has an element whenever items may be non-empty.
	notify chan struct{}
}

func newQueue() *queue {
	return &queue{notify: make(chan struct{}, 1)}
}

func (q *queue) push(msg vdom.Msg) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrClosed
	}
	q.items = append(q.items, msg)
	select {
	case q.notify <- struct{}{}:
	default:
	}
	return nil
}

// drain removes and returns all queued messages, in the order they were
// pushed.
func (q *queue) drain() []vdom.Msg {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

func (q *queue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.items = nil
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
