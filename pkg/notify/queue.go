// Package notify implements an unbounded queue of notifications between unit creation and its consumers.
package notify

import (
	"sync"

	"github.com/pkg/errors"

	"gitlab.com/alephledger/creator-go/pkg/gomel"
)

// ErrReceiverGone is returned by Send after the receiving side closed the queue.
var ErrReceiverGone = errors.New("notification receiver is gone")

// Queue is an unbounded FIFO of notifications. Sending never blocks.
// The receiving side reads from Out and calls Close when it is no longer interested,
// after which every Send fails with ErrReceiverGone.
type Queue struct {
	sync.Mutex
	pending []gomel.Notification
	closed  bool
	signal  chan struct{}
	out     chan gomel.Notification
	done    chan struct{}
	once    sync.Once
}

// NewQueue constructs an empty queue and starts the goroutine delivering its content to Out.
func NewQueue() *Queue {
	q := &Queue{
		signal: make(chan struct{}, 1),
		out:    make(chan gomel.Notification),
		done:   make(chan struct{}),
	}
	go q.deliver()
	return q
}

// Send appends the notification to the queue.
func (q *Queue) Send(n gomel.Notification) error {
	q.Lock()
	if q.closed {
		q.Unlock()
		return ErrReceiverGone
	}
	q.pending = append(q.pending, n)
	q.Unlock()
	select {
	case q.signal <- struct{}{}:
	default:
	}
	return nil
}

// Out returns the channel on which the notifications appear in the order they were sent.
// It is closed after Close.
func (q *Queue) Out() <-chan gomel.Notification {
	return q.out
}

// Close drops all the pending notifications and makes further sends fail.
func (q *Queue) Close() {
	q.once.Do(func() {
		q.Lock()
		q.closed = true
		q.pending = nil
		q.Unlock()
		close(q.done)
	})
}

// Len returns the number of notifications waiting for delivery.
func (q *Queue) Len() int {
	q.Lock()
	defer q.Unlock()
	return len(q.pending)
}

func (q *Queue) deliver() {
	defer close(q.out)
	for {
		q.Lock()
		if len(q.pending) == 0 {
			q.Unlock()
			select {
			case <-q.signal:
				continue
			case <-q.done:
				return
			}
		}
		next := q.pending[0]
		q.Unlock()
		select {
		case q.out <- next:
			q.Lock()
			if len(q.pending) > 0 {
				q.pending[0] = gomel.Notification{}
				q.pending = q.pending[1:]
			}
			q.Unlock()
		case <-q.done:
			return
		}
	}
}
