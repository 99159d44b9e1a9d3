// Package input delivers host input events to engine listeners.
//
// Hosts own a Target and Dispatch translated events into it (key presses,
// pointer motion, touches, clicks). Consumers register handlers through a
// Scope so that every registration is released exactly once on teardown.
package input

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/brickcanvas/internal/core"
)

// Kind identifies an event type.
type Kind int

const (
	KeyDown Kind = iota
	KeyUp
	PointerMove
	TouchStart
	TouchMove
	TouchEnd
	Click
	kindCount
)

// String returns the event kind name.
func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	case PointerMove:
		return "pointermove"
	case TouchStart:
		return "touchstart"
	case TouchMove:
		return "touchmove"
	case TouchEnd:
		return "touchend"
	case Click:
		return "click"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is a single input event. X and Y are in display coordinates
// (the units of Surface.DisplaySize), relative to the surface's top-left.
type Event struct {
	Kind   Kind
	Action core.Action // Key events only
	X, Y   float64     // Pointer, touch and click events
}

// Handler receives dispatched events.
type Handler func(Event)

type listener struct {
	id      uint64
	handler Handler
}

// Target fans events out to registered listeners.
// Registration and dispatch are safe for concurrent use; handlers run on the
// dispatching goroutine.
type Target struct {
	mu        sync.Mutex
	nextID    uint64
	listeners [kindCount][]listener
}

// NewTarget creates an empty event target.
func NewTarget() *Target {
	return &Target{}
}

// Listen registers h for events of the given kind.
func (t *Target) Listen(kind Kind, h Handler) *Registration {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	id := t.nextID
	t.listeners[kind] = append(t.listeners[kind], listener{id: id, handler: h})
	return &Registration{target: t, kind: kind, id: id}
}

// Dispatch delivers ev to every listener of its kind, in registration order.
func (t *Target) Dispatch(ev Event) {
	if ev.Kind < 0 || ev.Kind >= kindCount {
		return
	}
	t.mu.Lock()
	ls := append([]listener(nil), t.listeners[ev.Kind]...)
	t.mu.Unlock()

	for _, l := range ls {
		l.handler(ev)
	}
}

// Count returns the number of live listeners across all kinds.
func (t *Target) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, ls := range t.listeners {
		n += len(ls)
	}
	return n
}

func (t *Target) remove(kind Kind, id uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	ls := t.listeners[kind]
	for i, l := range ls {
		if l.id == id {
			t.listeners[kind] = append(ls[:i:i], ls[i+1:]...)
			return true
		}
	}
	return false
}

// Registration is a handle to one registered listener.
type Registration struct {
	target  *Target
	kind    Kind
	id      uint64
	removed bool
}

// Remove unregisters the listener. Calling it again is a no-op.
func (r *Registration) Remove() bool {
	if r == nil || r.removed {
		return false
	}
	r.removed = true
	return r.target.remove(r.kind, r.id)
}

// Scope groups registrations so they can be released together.
type Scope struct {
	target *Target
	regs   []*Registration
	closed bool
}

// NewScope creates a scope registering on the given target.
func NewScope(t *Target) *Scope {
	return &Scope{target: t}
}

// Listen registers h within the scope. After Close it does nothing.
func (s *Scope) Listen(kind Kind, h Handler) {
	if s.closed || s.target == nil {
		return
	}
	s.regs = append(s.regs, s.target.Listen(kind, h))
}

// Len returns the number of registrations the scope holds.
func (s *Scope) Len() int {
	return len(s.regs)
}

// Close removes every registration in the scope. It returns how many
// listeners were actually removed; subsequent calls return 0.
func (s *Scope) Close() int {
	if s.closed {
		return 0
	}
	s.closed = true

	n := 0
	for _, r := range s.regs {
		if r.Remove() {
			n++
		}
	}
	s.regs = nil
	return n
}
