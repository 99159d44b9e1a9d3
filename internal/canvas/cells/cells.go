// Package cells implements canvas.Surface on top of a core.Screen, so the
// engine can draw into a terminal. Each cell stands for a fixed block of
// surface pixels; shapes cover the cells whose centers they contain.
package cells

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/brickcanvas/internal/canvas"
	"github.com/vovakirdan/brickcanvas/internal/core"
)

// Glyphs used for rasterized shapes.
const (
	FillGlyph  = '█'
	DotGlyph   = '●'
	StrokeRune = '▒'
)

// Default pixel size of one terminal cell. Terminal cells are roughly twice
// as tall as they are wide.
const (
	DefaultCellW = 10
	DefaultCellH = 20
)

// Surface is a canvas surface backed by a cell screen.
type Surface struct {
	screen *core.Screen
	cellW  int
	cellH  int
	ctx    *Context
}

// NewSurface creates a surface of cols x rows cells, each cellW x cellH pixels.
func NewSurface(cols, rows, cellW, cellH int) *Surface {
	if cellW <= 0 {
		cellW = DefaultCellW
	}
	if cellH <= 0 {
		cellH = DefaultCellH
	}
	s := &Surface{
		screen: core.NewScreen(cols, rows),
		cellW:  cellW,
		cellH:  cellH,
	}
	s.ctx = &Context{surface: s}
	return s
}

// Resize changes the surface size in cells. The native pixel size follows.
func (s *Surface) Resize(cols, rows int) {
	s.screen.Resize(cols, rows)
}

// Screen exposes the underlying cell buffer for display.
func (s *Surface) Screen() *core.Screen {
	return s.screen
}

// Width returns the native width in pixels.
func (s *Surface) Width() int {
	return s.screen.Width() * s.cellW
}

// Height returns the native height in pixels.
func (s *Surface) Height() int {
	return s.screen.Height() * s.cellH
}

// DisplaySize reports the displayed size in cells, the unit terminal mouse
// events arrive in.
func (s *Surface) DisplaySize() (float64, float64) {
	return float64(s.screen.Width()), float64(s.screen.Height())
}

// Context2D returns the cell drawing context.
func (s *Surface) Context2D() (canvas.Context, error) {
	return s.ctx, nil
}

// CellRect returns the pixel rectangle covered by a cell.
func (s *Surface) CellRect(col, row int) core.RectF {
	return core.RectF{
		X: float64(col * s.cellW),
		Y: float64(row * s.cellH),
		W: float64(s.cellW),
		H: float64(s.cellH),
	}
}

// Context rasterizes canvas calls into the surface's screen.
// Shadows and font sizes have no cell representation and are ignored.
type Context struct {
	surface     *Surface
	fill        canvas.Paint
	stroke      canvas.Paint
	strokeWidth float64
	path        []canvas.Shape
}

var _ canvas.Context = (*Context)(nil)

// Clear blanks every cell. Terminal backgrounds stay the terminal's own.
func (c *Context) Clear(_ core.Color) {
	c.surface.screen.Clear()
}

func (c *Context) SetFill(p canvas.Paint) { c.fill = p }

func (c *Context) SetStroke(p canvas.Paint, width float64) {
	c.stroke = p
	c.strokeWidth = width
}

func (c *Context) SetShadow(canvas.Shadow) {}

func (c *Context) SetFont(float64, bool) {}

func (c *Context) FillRect(x, y, w, h float64) {
	c.fillShape(canvas.Shape{Kind: canvas.ShapeRoundRect, X: x, Y: y, W: w, H: h}, FillGlyph)
}

func (c *Context) BeginPath() {
	c.path = c.path[:0]
}

func (c *Context) RoundRect(x, y, w, h, radius float64) {
	c.path = append(c.path, canvas.Shape{Kind: canvas.ShapeRoundRect, X: x, Y: y, W: w, H: h, Radius: radius})
}

func (c *Context) Arc(cx, cy, r, start, end float64) {
	c.path = append(c.path, canvas.Shape{Kind: canvas.ShapeArc, X: cx, Y: cy, Radius: r, Start: start, End: end})
}

func (c *Context) Fill() {
	for _, sh := range c.path {
		glyph := rune(FillGlyph)
		if sh.Kind == canvas.ShapeArc {
			glyph = DotGlyph
		}
		c.fillShape(sh, glyph)
	}
}

func (c *Context) Stroke() {
	scr := c.surface.screen
	for _, sh := range c.path {
		c0, r0, c1, r1, ok := c.coveredRange(sh)
		if !ok {
			continue
		}
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				if row != r0 && row != r1 && col != c0 && col != c1 {
					continue
				}
				center := c.surface.CellRect(col, row).Center()
				scr.SetCell(col, row, StrokeRune, c.stroke.At(center.X, center.Y))
			}
		}
	}
}

func (c *Context) FillText(text string, x, y float64, align canvas.TextAlign) {
	col := int(math.Floor(x / float64(c.surface.cellW)))
	row := int(math.Floor(y / float64(c.surface.cellH)))
	n := utf8.RuneCountInString(text)
	switch align {
	case canvas.AlignCenter:
		col -= n / 2
	case canvas.AlignRight:
		col -= n
	}
	c.surface.screen.DrawText(col, row, text, c.fill.At(x, y))
}

// fillShape paints every cell whose center lies inside the shape. A shape
// smaller than a cell still marks the cell under its center.
func (c *Context) fillShape(sh canvas.Shape, glyph rune) {
	scr := c.surface.screen
	c0, r0, c1, r1, ok := c.coveredRange(sh)
	painted := false
	if ok {
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				center := c.surface.CellRect(col, row).Center()
				if !contains(sh, center) {
					continue
				}
				scr.SetCell(col, row, glyph, c.fill.At(center.X, center.Y))
				painted = true
			}
		}
	}
	if painted {
		return
	}

	mid := sh.Bounds().Center()
	col := int(math.Floor(mid.X / float64(c.surface.cellW)))
	row := int(math.Floor(mid.Y / float64(c.surface.cellH)))
	scr.SetCell(col, row, glyph, c.fill.At(mid.X, mid.Y))
}

// coveredRange returns the inclusive cell range touched by the shape's bounds,
// clipped to the screen.
func (c *Context) coveredRange(sh canvas.Shape) (c0, r0, c1, r1 int, ok bool) {
	b := sh.Bounds()
	cw, ch := float64(c.surface.cellW), float64(c.surface.cellH)
	c0 = max(int(math.Floor(b.X/cw)), 0)
	r0 = max(int(math.Floor(b.Y/ch)), 0)
	c1 = min(int(math.Ceil(b.Right()/cw))-1, c.surface.screen.Width()-1)
	r1 = min(int(math.Ceil(b.Bottom()/ch))-1, c.surface.screen.Height()-1)
	return c0, r0, c1, r1, c0 <= c1 && r0 <= r1
}

func contains(sh canvas.Shape, p core.Vec) bool {
	if sh.Kind == canvas.ShapeArc {
		dx, dy := p.X-sh.X, p.Y-sh.Y
		return dx*dx+dy*dy <= sh.Radius*sh.Radius
	}
	return p.X >= sh.X && p.X < sh.X+sh.W && p.Y >= sh.Y && p.Y < sh.Y+sh.H
}
