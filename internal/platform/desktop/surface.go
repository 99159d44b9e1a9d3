package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/brickcanvas/internal/canvas"
)

// Surface is an offscreen image the engine draws into. Its layout size
// matches the window, so pointer positions need no scaling.
type Surface struct {
	img *ebiten.Image
	ctx *Context
}

// NewSurface creates a w x h surface.
func NewSurface(w, h int) *Surface {
	s := &Surface{img: ebiten.NewImage(max(w, 1), max(h, 1))}
	s.ctx = newContext(s)
	return s
}

// Resize replaces the backing image. The previous content is dropped.
func (s *Surface) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if s.img.Bounds().Dx() == w && s.img.Bounds().Dy() == h {
		return
	}
	s.img.Deallocate()
	s.img = ebiten.NewImage(w, h)
}

// Image returns the backing image.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

func (s *Surface) Width() int  { return s.img.Bounds().Dx() }
func (s *Surface) Height() int { return s.img.Bounds().Dy() }

func (s *Surface) DisplaySize() (float64, float64) {
	return float64(s.Width()), float64(s.Height())
}

func (s *Surface) Context2D() (canvas.Context, error) {
	return s.ctx, nil
}
