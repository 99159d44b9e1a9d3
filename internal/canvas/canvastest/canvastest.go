// Package canvastest provides canvas fakes for tests.
package canvastest

import (
	"fmt"

	"github.com/vovakirdan/brickcanvas/internal/canvas"
	"github.com/vovakirdan/brickcanvas/internal/core"
)

// Call is one recorded drawing operation.
type Call struct {
	Op    string
	Args  []float64
	Text  string
	Align canvas.TextAlign
	Fill  canvas.Paint
}

func (c Call) String() string {
	if c.Text != "" {
		return fmt.Sprintf("%s(%q)", c.Op, c.Text)
	}
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// Recorder is a canvas.Context that records every call.
type Recorder struct {
	Calls []Call
	fill  canvas.Paint
}

var _ canvas.Context = (*Recorder)(nil)

func (r *Recorder) add(op string, args ...float64) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args, Fill: r.fill})
}

func (r *Recorder) Clear(core.Color) { r.add("Clear") }

func (r *Recorder) SetFill(p canvas.Paint) { r.fill = p }

func (r *Recorder) SetStroke(canvas.Paint, float64) {}

func (r *Recorder) SetShadow(s canvas.Shadow) { r.add("SetShadow", s.Blur) }

func (r *Recorder) SetFont(size float64, _ bool) { r.add("SetFont", size) }

func (r *Recorder) FillRect(x, y, w, h float64) { r.add("FillRect", x, y, w, h) }

func (r *Recorder) BeginPath() { r.add("BeginPath") }

func (r *Recorder) RoundRect(x, y, w, h, radius float64) { r.add("RoundRect", x, y, w, h, radius) }

func (r *Recorder) Arc(cx, cy, rad, start, end float64) { r.add("Arc", cx, cy, rad, start, end) }

func (r *Recorder) Fill() { r.add("Fill") }

func (r *Recorder) Stroke() { r.add("Stroke") }

func (r *Recorder) FillText(text string, x, y float64, align canvas.TextAlign) {
	r.Calls = append(r.Calls, Call{Op: "FillText", Args: []float64{x, y}, Text: text, Align: align, Fill: r.fill})
}

// Reset drops recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Count returns how many calls used the given operation.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts returns every string passed to FillText, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == "FillText" {
			out = append(out, c.Text)
		}
	}
	return out
}

// Surface is a fixed-size fake surface. A nil Ctx makes Context2D fail.
type Surface struct {
	W, H         int
	DispW, DispH float64
	Ctx          canvas.Context
	ContextErr   error
}

// NewSurface returns a surface of the given size backed by a fresh Recorder,
// displayed at its native size.
func NewSurface(w, h int) (*Surface, *Recorder) {
	rec := &Recorder{}
	return &Surface{W: w, H: h, DispW: float64(w), DispH: float64(h), Ctx: rec}, rec
}

func (s *Surface) Width() int  { return s.W }
func (s *Surface) Height() int { return s.H }

func (s *Surface) DisplaySize() (float64, float64) {
	return s.DispW, s.DispH
}

func (s *Surface) Context2D() (canvas.Context, error) {
	if s.Ctx == nil {
		if s.ContextErr != nil {
			return nil, s.ContextErr
		}
		return nil, canvas.ErrNoContext
	}
	return s.Ctx, nil
}
