package service

import (
	"sync"
)

// ActionQueue is a mutex-guarded FIFO of deferred actions. Producers on any
// goroutine enqueue without blocking; the owning loop drains until it observes the
// queue empty, running each action outside the lock so actions may enqueue more
// work (onto this or the opposite queue) without deadlocking.
type ActionQueue struct {
	mu      sync.Mutex
	actions []func()
}

// NewActionQueue creates an empty ActionQueue.
func NewActionQueue() *ActionQueue {
	return &ActionQueue{}
}

// Enqueue appends action to the queue and returns immediately.
func (q *ActionQueue) Enqueue(action func()) {
	q.mu.Lock()
	q.actions = append(q.actions, action)
	q.mu.Unlock()
}

// DrainAndRunAll pops and runs actions in FIFO order until the queue is observed
// empty. Actions enqueued while draining run in the same drain.
func (q *ActionQueue) DrainAndRunAll() {
	for {
		q.mu.Lock()
		if len(q.actions) == 0 {
			q.actions = nil
			q.mu.Unlock()
			return
		}
		action := q.actions[0]
		q.actions = q.actions[1:]
		q.mu.Unlock()

		action()
	}
}

// Len returns the number of queued actions.
func (q *ActionQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.actions)
}
