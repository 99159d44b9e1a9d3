// Package frame schedules animation-frame callbacks.
//
// A Queue stands in for the display's frame callback: engines request a
// callback for the next frame and hosts Flush the queue once per displayed
// frame (a Bubble Tea tick, an ebiten Draw).
package frame

import (
	"sync"
	"time"
)

// ID identifies a frame request. The zero ID is never issued.
type ID uint64

// Callback runs once on the frame it was requested for.
type Callback func(now time.Time)

type request struct {
	id ID
	cb Callback
}

// Queue holds pending frame callbacks. It is safe for concurrent use;
// callbacks run on the goroutine calling Flush.
type Queue struct {
	mu       sync.Mutex
	nextID   ID
	pending  []request
	inflight map[ID]bool // requests of the batch currently being flushed
	frames   uint64
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// RequestFrame schedules cb for the next Flush.
func (q *Queue) RequestFrame(cb Callback) ID {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextID++
	q.pending = append(q.pending, request{id: q.nextID, cb: cb})
	return q.nextID
}

// CancelFrame drops a request that has not run yet. Unknown or already-run
// IDs are ignored.
func (q *Queue) CancelFrame(id ID) {
	if id == 0 {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.inflight[id] {
		q.inflight[id] = false
		return
	}
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of requests waiting for the next Flush.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Frames returns how many times Flush has been called.
func (q *Queue) Frames() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.frames
}

// Flush runs every callback requested before the call, in request order.
// Callbacks requested while flushing run on the next Flush. It returns the
// number of callbacks run.
func (q *Queue) Flush(now time.Time) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.frames++
	q.inflight = make(map[ID]bool, len(batch))
	for _, r := range batch {
		q.inflight[r.id] = true
	}
	q.mu.Unlock()

	n := 0
	for _, r := range batch {
		if !q.claim(r.id) {
			continue
		}
		r.cb(now)
		n++
	}

	q.mu.Lock()
	q.inflight = nil
	q.mu.Unlock()
	return n
}

// claim marks an in-flight request as run, unless it was cancelled by an
// earlier callback of the same batch.
func (q *Queue) claim(id ID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	live := q.inflight[id]
	delete(q.inflight, id)
	return live
}
