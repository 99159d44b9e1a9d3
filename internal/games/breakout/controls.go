package breakout

import "github.com/vovakirdan/brickcanvas/internal/core"

// ControlState is a read-only view of Controls.
type ControlState struct {
	Left, Right bool
	PointerX    float64 // Surface x; meaningful only when HasPointer
	HasPointer  bool
}

// Controls is the transient input record written by input handlers and read
// by the frame update. The last write wins.
type Controls struct {
	state ControlState
}

// Press marks a direction key as held. It also drops the pointer so the
// keyboard takes over paddle control.
func (c *Controls) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		c.state.Left = true
	case core.ActionRight:
		c.state.Right = true
	default:
		return
	}
	c.ClearPointer()
}

// Release marks a direction key as released.
func (c *Controls) Release(a core.Action) {
	switch a {
	case core.ActionLeft:
		c.state.Left = false
	case core.ActionRight:
		c.state.Right = false
	}
}

// SetPointer records the pointer x in surface coordinates.
func (c *Controls) SetPointer(x float64) {
	c.state.PointerX = x
	c.state.HasPointer = true
}

// ClearPointer forgets the pointer.
func (c *Controls) ClearPointer() {
	c.state.PointerX = 0
	c.state.HasPointer = false
}

// Reset releases everything.
func (c *Controls) Reset() {
	c.state = ControlState{}
}

// Read returns the current control state.
func (c *Controls) Read() ControlState {
	return c.state
}
