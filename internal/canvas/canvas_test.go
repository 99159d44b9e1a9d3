package canvas

import (
	"math"
	"testing"

	"github.com/vovakirdan/brickcanvas/internal/core"
)

func TestGradientAt(t *testing.T) {
	black := core.RGB(0, 0, 0)
	white := core.RGB(255, 255, 255)
	p := Linear(0, 0, 0, 100, Stop{0, black}, Stop{1, white})

	if got := p.At(50, 0); got != black {
		t.Errorf("At(start) = %v, expected black", got)
	}
	if got := p.At(50, 100); got != white {
		t.Errorf("At(end) = %v, expected white", got)
	}
	if got := p.At(50, 500); got != white {
		t.Errorf("At(beyond end) = %v, expected clamped white", got)
	}

	mid := p.At(0, 50)
	if mid.R == 0 || mid.R == 255 {
		t.Errorf("At(middle) = %v, expected an intermediate shade", mid)
	}
}

func TestSolidPaint(t *testing.T) {
	red := core.RGB(255, 0, 0)
	if got := Solid(red).At(123, 456); got != red {
		t.Errorf("Solid.At() = %v, expected %v", got, red)
	}
}

func TestShapeOverlaps(t *testing.T) {
	ball := Shape{Kind: ShapeArc, X: 100, Y: 100, Radius: 8, End: 2 * math.Pi}
	if !ball.FullCircle() {
		t.Error("0..2π arc should be a full circle")
	}
	if !ball.Overlaps(core.RectF{X: 105, Y: 95, W: 10, H: 10}) {
		t.Error("arc should overlap nearby rect")
	}
	if ball.Overlaps(core.RectF{X: 120, Y: 120, W: 10, H: 10}) {
		t.Error("arc should not overlap distant rect")
	}

	block := Shape{Kind: ShapeRoundRect, X: 0, Y: 0, W: 80, H: 25}
	if got := block.Bounds(); got.Right() != 80 || got.Bottom() != 25 {
		t.Errorf("Bounds() = %+v", got)
	}
}

func TestShadowEnabled(t *testing.T) {
	if (Shadow{}).Enabled() {
		t.Error("zero shadow should be disabled")
	}
	if !(Shadow{Color: core.ColorBlack, Blur: 10}).Enabled() {
		t.Error("blurred shadow should be enabled")
	}
}
