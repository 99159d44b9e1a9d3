// Package status exposes the latest engine snapshot over HTTP.
//
// The host publishes snapshots from its loop goroutine; HTTP handlers read
// them concurrently through the Board.
package status

import (
	"sync"
	"time"

	"github.com/vovakirdan/brickcanvas/internal/games/breakout"
)

// Report is one published snapshot.
type Report struct {
	Seq       uint64             `json:"seq"`
	UpdatedAt time.Time          `json:"updated_at"`
	Remaining int                `json:"remaining"`
	State     breakout.GameState `json:"state"`
}

// Board holds the most recent snapshot.
type Board struct {
	mu     sync.RWMutex
	report Report
	ok     bool
	now    func() time.Time
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{now: time.Now}
}

// Publish stores a copy of s as the latest snapshot.
func (b *Board) Publish(s breakout.GameState) {
	s.Blocks = append([]breakout.Block(nil), s.Blocks...)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.report = Report{
		Seq:       b.report.Seq + 1,
		UpdatedAt: b.now(),
		Remaining: s.Remaining(),
		State:     s,
	}
	b.ok = true
}

// Latest returns the most recent report. ok is false until the first
// Publish. The returned block slice is the caller's own.
func (b *Board) Latest() (Report, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	r := b.report
	r.State.Blocks = append([]breakout.Block(nil), b.report.State.Blocks...)
	return r, b.ok
}
