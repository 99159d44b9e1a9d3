package frame

import (
	"testing"
	"time"
)

func TestFlushRunsRequestedCallbacks(t *testing.T) {
	q := NewQueue()
	var order []int
	q.RequestFrame(func(time.Time) { order = append(order, 1) })
	q.RequestFrame(func(time.Time) { order = append(order, 2) })

	if n := q.Flush(time.Now()); n != 2 {
		t.Errorf("Flush() ran %d callbacks, expected 2", n)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, expected [1 2]", order)
	}
	if n := q.Flush(time.Now()); n != 0 {
		t.Errorf("second Flush() ran %d callbacks, expected 0", n)
	}
}

func TestRequestDuringFlushRunsNextFrame(t *testing.T) {
	q := NewQueue()
	calls := 0
	var loop Callback
	loop = func(time.Time) {
		calls++
		q.RequestFrame(loop)
	}
	q.RequestFrame(loop)

	for i := 0; i < 3; i++ {
		q.Flush(time.Now())
	}
	if calls != 3 {
		t.Errorf("self-rescheduling callback ran %d times over 3 frames, expected 3", calls)
	}
	if q.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", q.Pending())
	}
	if q.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", q.Frames())
	}
}

func TestCancelFrame(t *testing.T) {
	q := NewQueue()
	ran := false
	id := q.RequestFrame(func(time.Time) { ran = true })
	q.CancelFrame(id)
	q.CancelFrame(id)
	q.CancelFrame(0)

	q.Flush(time.Now())
	if ran {
		t.Error("cancelled callback ran")
	}
}

func TestCancelWithinSameFlush(t *testing.T) {
	q := NewQueue()
	ran := false
	var second ID
	q.RequestFrame(func(time.Time) { q.CancelFrame(second) })
	second = q.RequestFrame(func(time.Time) { ran = true })

	if n := q.Flush(time.Now()); n != 1 {
		t.Errorf("Flush() ran %d callbacks, expected 1", n)
	}
	if ran {
		t.Error("callback cancelled earlier in the same flush still ran")
	}
}

func TestFlushPassesTimestamp(t *testing.T) {
	q := NewQueue()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var got time.Time
	q.RequestFrame(func(ts time.Time) { got = ts })
	q.Flush(now)

	if !got.Equal(now) {
		t.Errorf("callback timestamp = %v, expected %v", got, now)
	}
}
