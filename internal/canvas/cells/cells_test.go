package cells

import (
	"math"
	"testing"

	"github.com/vovakirdan/brickcanvas/internal/canvas"
	"github.com/vovakirdan/brickcanvas/internal/core"
)

func newTestSurface(t *testing.T) (*Surface, canvas.Context) {
	t.Helper()
	s := NewSurface(80, 30, DefaultCellW, DefaultCellH)
	ctx, err := s.Context2D()
	if err != nil {
		t.Fatalf("Context2D() failed: %v", err)
	}
	return s, ctx
}

func TestSurfaceSize(t *testing.T) {
	s := NewSurface(80, 30, 10, 20)
	if s.Width() != 800 || s.Height() != 600 {
		t.Errorf("native size = %dx%d, expected 800x600", s.Width(), s.Height())
	}
	w, h := s.DisplaySize()
	if w != 80 || h != 30 {
		t.Errorf("DisplaySize() = %vx%v, expected 80x30", w, h)
	}

	s.Resize(100, 40)
	if s.Width() != 1000 || s.Height() != 800 {
		t.Errorf("after resize native size = %dx%d, expected 1000x800", s.Width(), s.Height())
	}
}

func TestFillRectCoversCellCenters(t *testing.T) {
	s, ctx := newTestSurface(t)
	red := core.RGB(255, 0, 0)
	ctx.SetFill(canvas.Solid(red))

	// 35..115 x 60..85 is half-open: centers x=35..105 (cols 3..10), y=70 (row 3)
	ctx.FillRect(35, 60, 80, 25)

	scr := s.Screen()
	for col := 3; col <= 10; col++ {
		if c := scr.GetCell(col, 3); c.Rune != FillGlyph || c.Color != red {
			t.Errorf("cell (%d, 3) = %+v, expected red fill", col, c)
		}
	}
	if scr.Get(2, 3) != ' ' || scr.Get(11, 3) != ' ' {
		t.Error("fill leaked outside the rectangle")
	}
	if scr.Get(5, 4) != ' ' {
		t.Error("row 4 center (y=90) is outside the rectangle")
	}
}

func TestSmallArcStillVisible(t *testing.T) {
	s, ctx := newTestSurface(t)
	ctx.SetFill(canvas.Solid(core.ColorWhite))

	ctx.BeginPath()
	ctx.Arc(401, 303, 3, 0, 2*math.Pi)
	ctx.Fill()

	if got := s.Screen().Get(40, 15); got != DotGlyph {
		t.Errorf("cell under tiny arc = %q, expected %q", got, DotGlyph)
	}
}

func TestFillTextAlignment(t *testing.T) {
	s, ctx := newTestSurface(t)
	ctx.SetFill(canvas.Solid(core.ColorWhite))

	ctx.FillText("PAUSED", 400, 300, canvas.AlignCenter)
	if row := s.Screen().Row(15); row[37:43] != "PAUSED" {
		t.Errorf("centered text row = %q", row)
	}

	ctx.FillText("R", 800, 20, canvas.AlignRight)
	if got := s.Screen().Get(79, 1); got != 'R' {
		t.Errorf("right-aligned text at (79, 1) = %q, expected 'R'", got)
	}
}

func TestGradientFillSamplesPerCell(t *testing.T) {
	s, ctx := newTestSurface(t)
	top := core.RGB(0, 0, 0)
	bottom := core.RGB(255, 255, 255)
	ctx.SetFill(canvas.Linear(0, 0, 0, 600, canvas.Stop{Offset: 0, Color: top}, canvas.Stop{Offset: 1, Color: bottom}))
	ctx.FillRect(0, 0, 800, 600)

	first := s.Screen().GetCell(0, 0).Color
	last := s.Screen().GetCell(0, 29).Color
	if first.R >= last.R {
		t.Errorf("gradient should brighten downwards: first=%v last=%v", first, last)
	}
}

func TestClearBlanksScreen(t *testing.T) {
	s, ctx := newTestSurface(t)
	ctx.SetFill(canvas.Solid(core.ColorWhite))
	ctx.FillRect(0, 0, 800, 600)
	ctx.Clear(core.ColorBlack)

	if got := s.Screen().Get(10, 10); got != ' ' {
		t.Errorf("after Clear cell = %q, expected space", got)
	}
}

func TestStrokeOutlinesPath(t *testing.T) {
	s, ctx := newTestSurface(t)
	ctx.SetStroke(canvas.Solid(core.ColorGray), 2)
	ctx.BeginPath()
	ctx.RoundRect(100, 100, 100, 100, 4)
	ctx.Stroke()

	scr := s.Screen()
	if scr.Get(10, 5) != StrokeRune {
		t.Errorf("top-left of outline = %q, expected stroke", scr.Get(10, 5))
	}
	if scr.Get(12, 7) != ' ' {
		t.Errorf("interior should stay empty, got %q", scr.Get(12, 7))
	}
}
