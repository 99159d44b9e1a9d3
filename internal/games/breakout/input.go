package breakout

import (
	"github.com/vovakirdan/brickcanvas/internal/core"
	"github.com/vovakirdan/brickcanvas/internal/input"
)

// bindInput registers the engine's handlers within scope.
func (e *Engine) bindInput(scope *input.Scope) {
	scope.Listen(input.KeyDown, e.onKeyDown)
	scope.Listen(input.KeyUp, e.onKeyUp)
	scope.Listen(input.PointerMove, e.onPointerMove)
	scope.Listen(input.TouchStart, e.onTouchStart)
	scope.Listen(input.TouchMove, e.onPointerMove)
	scope.Listen(input.TouchEnd, e.onTouchEnd)
	scope.Listen(input.Click, e.onClick)
}

func (e *Engine) onKeyDown(ev input.Event) {
	switch ev.Action {
	case core.ActionLeft, core.ActionRight:
		e.controls.Press(ev.Action)
	case core.ActionToggle:
		e.Toggle()
	case core.ActionReset:
		e.Reset()
	}
}

func (e *Engine) onKeyUp(ev input.Event) {
	e.controls.Release(ev.Action)
}

func (e *Engine) onPointerMove(ev input.Event) {
	e.controls.SetPointer(e.toSurfaceX(ev.X))
}

func (e *Engine) onTouchStart(ev input.Event) {
	e.controls.SetPointer(e.toSurfaceX(ev.X))
	if e.state.Phase == PhaseIdle {
		e.Start()
	}
}

func (e *Engine) onTouchEnd(input.Event) {
	e.controls.ClearPointer()
}

func (e *Engine) onClick(input.Event) {
	if e.state.Phase == PhaseIdle {
		e.Start()
	}
}

// toSurfaceX scales a display x coordinate to surface pixels using the
// ratio of native width to displayed width.
func (e *Engine) toSurfaceX(x float64) float64 {
	dispW, _ := e.surface.DisplaySize()
	if dispW <= 0 {
		return x
	}
	return x * float64(e.surface.Width()) / dispW
}
