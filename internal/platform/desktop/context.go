// Package desktop hosts the engine in an Ebitengine window. The canvas is an
// offscreen image the engine draws into; the window shows it every frame.
package desktop

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/brickcanvas/internal/canvas"
	"github.com/vovakirdan/brickcanvas/internal/core"
)

// Metrics of the ebitenutil debug font.
const (
	glyphW = 6
	glyphH = 16
)

const (
	gradientStrip = 4    // Height of one gradient band, in pixels
	shadowAlpha   = 0.35 // Opacity of glows and drop shadows
	textCacheMax  = 128
)

// Context implements canvas.Context on an ebiten image.
type Context struct {
	surface     *Surface
	fill        canvas.Paint
	stroke      canvas.Paint
	strokeWidth float64
	shadow      canvas.Shadow
	fontSize    float64
	path        []canvas.Shape
	texts       map[string]*ebiten.Image
}

var _ canvas.Context = (*Context)(nil)

func newContext(s *Surface) *Context {
	return &Context{
		surface:  s,
		fontSize: glyphH,
		texts:    make(map[string]*ebiten.Image),
	}
}

func rgba(c core.Color, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(core.ClampF(alpha, 0, 1) * 255))}
}

func (c *Context) Clear(bg core.Color) {
	c.surface.img.Fill(rgba(bg, 1))
}

func (c *Context) SetFill(p canvas.Paint) { c.fill = p }

func (c *Context) SetStroke(p canvas.Paint, width float64) {
	c.stroke = p
	c.strokeWidth = width
}

func (c *Context) SetShadow(s canvas.Shadow) { c.shadow = s }

func (c *Context) SetFont(size float64, _ bool) {
	if size > 0 {
		c.fontSize = size
	}
}

// FillRect fills a rectangle. Gradients are drawn as horizontal bands.
func (c *Context) FillRect(x, y, w, h float64) {
	sh := canvas.Shape{Kind: canvas.ShapeRoundRect, X: x, Y: y, W: w, H: h}
	c.drawShadow(sh)
	if c.fill.Gradient == nil {
		c.fillShape(sh, rgba(c.fill.Color, 1))
		return
	}
	img := c.surface.img
	for top := y; top < y+h; top += gradientStrip {
		band := math.Min(gradientStrip, y+h-top)
		clr := rgba(c.fill.At(x+w/2, top+band/2), 1)
		vector.DrawFilledRect(img, float32(x), float32(top), float32(w), float32(band), clr, false)
	}
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

// Fill paints every shape of the path. Gradient paints are sampled at the
// shape center.
func (c *Context) Fill() {
	for _, sh := range c.path {
		c.drawShadow(sh)
		mid := sh.Bounds().Center()
		c.fillShape(sh, rgba(c.fill.At(mid.X, mid.Y), 1))
	}
}

func (c *Context) Stroke() {
	img := c.surface.img
	sw := float32(math.Max(c.strokeWidth, 1))
	for _, sh := range c.path {
		mid := sh.Bounds().Center()
		clr := rgba(c.stroke.At(mid.X, mid.Y), 1)
		if sh.Kind == canvas.ShapeArc {
			vector.StrokeCircle(img, float32(sh.X), float32(sh.Y), float32(sh.Radius), sw, clr, true)
			continue
		}
		vector.StrokeRect(img, float32(sh.X), float32(sh.Y), float32(sh.W), float32(sh.H), sw, clr, true)
	}
}

// FillText draws text with the debug font scaled to the current font size.
// y is the baseline.
func (c *Context) FillText(text string, x, y float64, align canvas.TextAlign) {
	if text == "" {
		return
	}
	scale := c.fontSize / glyphH
	w := float64(utf8.RuneCountInString(text)*glyphW) * scale

	left := x
	switch align {
	case canvas.AlignCenter:
		left -= w / 2
	case canvas.AlignRight:
		left -= w
	}
	top := y - glyphH*scale*0.75

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(left, top)
	op.ColorScale.ScaleWithColor(rgba(c.fill.At(x, y), 1))
	c.surface.img.DrawImage(c.textImage(text), op)
}

// textImage returns the rendered text, white on transparent, at 1x.
func (c *Context) textImage(text string) *ebiten.Image {
	if img, ok := c.texts[text]; ok {
		return img
	}
	if len(c.texts) >= textCacheMax {
		for k, img := range c.texts {
			img.Deallocate()
			delete(c.texts, k)
		}
	}
	img := ebiten.NewImage(max(utf8.RuneCountInString(text), 1)*glyphW, glyphH)
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	c.texts[text] = img
	return img
}

// drawShadow approximates a blurred shadow by a translucent copy of the
// shape grown by half the blur radius.
func (c *Context) drawShadow(sh canvas.Shape) {
	if !c.shadow.Enabled() {
		return
	}
	grow := c.shadow.Blur / 2
	sh.X += c.shadow.OffsetX
	sh.Y += c.shadow.OffsetY
	if sh.Kind == canvas.ShapeArc {
		sh.Radius += grow
	} else {
		sh.X -= grow
		sh.Y -= grow
		sh.W += 2 * grow
		sh.H += 2 * grow
		sh.Radius += grow
	}
	c.fillShape(sh, rgba(c.shadow.Color, shadowAlpha))
}

// fillShape fills a circle or a rounded rectangle. Rounded rectangles are
// built from a cross of rectangles and four corner circles.
func (c *Context) fillShape(sh canvas.Shape, clr color.Color) {
	img := c.surface.img
	if sh.Kind == canvas.ShapeArc {
		vector.DrawFilledCircle(img, float32(sh.X), float32(sh.Y), float32(sh.Radius), clr, true)
		return
	}

	x, y, w, h := float32(sh.X), float32(sh.Y), float32(sh.W), float32(sh.H)
	r := float32(math.Min(sh.Radius, math.Min(sh.W, sh.H)/2))
	if r <= 0 {
		vector.DrawFilledRect(img, x, y, w, h, clr, false)
		return
	}
	vector.DrawFilledRect(img, x+r, y, w-2*r, h, clr, false)
	vector.DrawFilledRect(img, x, y+r, r, h-2*r, clr, false)
	vector.DrawFilledRect(img, x+w-r, y+r, r, h-2*r, clr, false)
	for _, p := range [4][2]float32{{x + r, y + r}, {x + w - r, y + r}, {x + r, y + h - r}, {x + w - r, y + h - r}} {
		vector.DrawFilledCircle(img, p[0], p[1], r, clr, true)
	}
}
