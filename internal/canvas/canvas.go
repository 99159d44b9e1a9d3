// Package canvas defines the drawing-surface contract the engine renders to.
// It mirrors a browser 2D canvas closely enough that the engine can be bound
// to a terminal cell buffer, an ebiten window or a recording fake.
package canvas

import (
	"errors"
	"math"

	"github.com/vovakirdan/brickcanvas/internal/core"
)

// ErrNoContext is returned by Surface.Context2D when no 2D drawing context
// can be provided.
var ErrNoContext = errors.New("canvas: 2d context unavailable")

// Surface is a drawable area with a native pixel size.
type Surface interface {
	// Width returns the native width in pixels.
	Width() int
	// Height returns the native height in pixels.
	Height() int
	// DisplaySize returns the size the surface is currently shown at, in the
	// units pointer events are reported in. The ratio native/display scales
	// pointer coordinates into surface space.
	DisplaySize() (w, h float64)
	// Context2D returns the drawing context, or ErrNoContext.
	Context2D() (Context, error)
}

// TextAlign controls horizontal text placement relative to the anchor x.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Context is a 2D drawing context. Coordinates are surface pixels.
// Text anchors are vertically centered on y.
type Context interface {
	// Clear paints the whole surface with the given background color.
	Clear(bg core.Color)

	SetFill(p Paint)
	SetStroke(p Paint, width float64)
	// SetShadow applies to subsequent fills; the zero Shadow disables it.
	SetShadow(s Shadow)
	SetFont(size float64, bold bool)

	FillRect(x, y, w, h float64)

	// BeginPath discards the current path.
	BeginPath()
	// RoundRect adds a rectangle with rounded corners to the current path.
	RoundRect(x, y, w, h, radius float64)
	// Arc adds a circular wedge from start to end (radians, clockwise from +x).
	Arc(cx, cy, r, start, end float64)
	// Fill fills the current path with the fill paint.
	Fill()
	// Stroke outlines the current path with the stroke paint.
	Stroke()

	FillText(text string, x, y float64, align TextAlign)
}

// Shadow describes a drop shadow drawn beneath filled shapes.
type Shadow struct {
	Color   core.Color
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// Enabled reports whether the shadow has any visible effect.
func (s Shadow) Enabled() bool {
	return s.Color.Valid && (s.Blur > 0 || s.OffsetX != 0 || s.OffsetY != 0)
}

// Stop is a gradient color stop; Offset is in [0, 1].
type Stop struct {
	Offset float64
	Color  core.Color
}

// Gradient is a linear gradient from (X0, Y0) to (X1, Y1).
type Gradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []Stop
}

// At returns the gradient color at a point, projected onto the gradient axis.
func (g *Gradient) At(x, y float64) core.Color {
	if len(g.Stops) == 0 {
		return core.ColorDefault
	}
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((x-g.X0)*dx + (y-g.Y0)*dy) / lenSq
	}
	t = core.ClampF(t, 0, 1)

	first := g.Stops[0]
	if t <= first.Offset {
		return first.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		prev, next := g.Stops[i-1], g.Stops[i]
		if t <= next.Offset {
			span := next.Offset - prev.Offset
			if span <= 0 {
				return next.Color
			}
			return prev.Color.Blend(next.Color, (t-prev.Offset)/span)
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}

// Paint is either a solid color or a linear gradient.
type Paint struct {
	Color    core.Color
	Gradient *Gradient
}

// Solid returns a single-color paint.
func Solid(c core.Color) Paint {
	return Paint{Color: c}
}

// Linear returns a linear-gradient paint.
func Linear(x0, y0, x1, y1 float64, stops ...Stop) Paint {
	return Paint{Gradient: &Gradient{X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}}
}

// At resolves the paint color at a point.
func (p Paint) At(x, y float64) core.Color {
	if p.Gradient != nil {
		return p.Gradient.At(x, y)
	}
	return p.Color
}

// Shape is one sub-path recorded between BeginPath and Fill/Stroke.
// Backends that cannot draw paths natively rasterize shapes with Contains.
type Shape struct {
	Kind   ShapeKind
	X, Y   float64 // Top-left for rounded rects, center for arcs
	W, H   float64
	Radius float64
	Start  float64
	End    float64
}

// ShapeKind distinguishes path primitives.
type ShapeKind int

const (
	ShapeRoundRect ShapeKind = iota
	ShapeArc
)

// Bounds returns the shape's bounding box.
func (s Shape) Bounds() core.RectF {
	if s.Kind == ShapeArc {
		return core.RectF{X: s.X - s.Radius, Y: s.Y - s.Radius, W: 2 * s.Radius, H: 2 * s.Radius}
	}
	return core.RectF{X: s.X, Y: s.Y, W: s.W, H: s.H}
}

// FullCircle reports whether an arc shape covers the whole circle.
func (s Shape) FullCircle() bool {
	return math.Abs(s.End-s.Start) >= 2*math.Pi-1e-9
}

// Overlaps reports whether the shape covers any part of the rectangle r.
// Rounded corners and arc wedges are approximated by their circle.
func (s Shape) Overlaps(r core.RectF) bool {
	if s.Kind == ShapeArc {
		return core.CircleIntersectsRect(core.Vec{X: s.X, Y: s.Y}, s.Radius, r)
	}
	return s.Bounds().Intersects(r)
}
