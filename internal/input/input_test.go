package input

import (
	"testing"

	"github.com/vovakirdan/brickcanvas/internal/core"
)

func TestDispatchOrderAndKind(t *testing.T) {
	target := NewTarget()
	var got []string

	target.Listen(KeyDown, func(ev Event) { got = append(got, "a:"+ev.Action.String()) })
	target.Listen(KeyDown, func(ev Event) { got = append(got, "b:"+ev.Action.String()) })
	target.Listen(KeyUp, func(ev Event) { got = append(got, "up") })

	target.Dispatch(Event{Kind: KeyDown, Action: core.ActionLeft})

	if len(got) != 2 || got[0] != "a:Left" || got[1] != "b:Left" {
		t.Errorf("dispatch = %v, expected [a:Left b:Left]", got)
	}
}

func TestRegistrationRemoveIsIdempotent(t *testing.T) {
	target := NewTarget()
	calls := 0
	reg := target.Listen(Click, func(Event) { calls++ })

	if !reg.Remove() {
		t.Error("first Remove() should report removal")
	}
	if reg.Remove() {
		t.Error("second Remove() should be a no-op")
	}

	target.Dispatch(Event{Kind: Click})
	if calls != 0 {
		t.Errorf("removed handler was called %d times", calls)
	}
	if target.Count() != 0 {
		t.Errorf("Count() = %d, expected 0", target.Count())
	}
}

func TestScopeCloseReleasesEverything(t *testing.T) {
	target := NewTarget()
	other := target.Listen(KeyDown, func(Event) {})

	scope := NewScope(target)
	for k := KeyDown; k < kindCount; k++ {
		scope.Listen(k, func(Event) {})
	}
	if scope.Len() != int(kindCount) {
		t.Fatalf("scope.Len() = %d, expected %d", scope.Len(), kindCount)
	}
	if target.Count() != int(kindCount)+1 {
		t.Fatalf("Count() = %d, expected %d", target.Count(), int(kindCount)+1)
	}

	if n := scope.Close(); n != int(kindCount) {
		t.Errorf("Close() removed %d, expected %d", n, kindCount)
	}
	if n := scope.Close(); n != 0 {
		t.Errorf("second Close() removed %d, expected 0", n)
	}
	if target.Count() != 1 {
		t.Errorf("only the foreign listener should remain, Count() = %d", target.Count())
	}

	// Listening on a closed scope is ignored
	scope.Listen(Click, func(Event) {})
	if target.Count() != 1 {
		t.Errorf("closed scope registered a listener, Count() = %d", target.Count())
	}

	other.Remove()
}

func TestHandlerMayRemoveDuringDispatch(t *testing.T) {
	target := NewTarget()
	calls := 0
	var reg *Registration
	reg = target.Listen(TouchEnd, func(Event) {
		calls++
		reg.Remove()
	})

	target.Dispatch(Event{Kind: TouchEnd})
	target.Dispatch(Event{Kind: TouchEnd})

	if calls != 1 {
		t.Errorf("handler calls = %d, expected 1", calls)
	}
}

func TestKindString(t *testing.T) {
	if TouchStart.String() != "touchstart" {
		t.Errorf("TouchStart.String() = %q", TouchStart.String())
	}
	if Kind(99).String() != "kind(99)" {
		t.Errorf("unknown kind string = %q", Kind(99).String())
	}
}
