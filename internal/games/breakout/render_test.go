package breakout

import (
	"strings"
	"testing"

	"github.com/vovakirdan/brickcanvas/internal/canvas/cells"
	"github.com/vovakirdan/brickcanvas/internal/config"
)

func TestRenderOntoCells(t *testing.T) {
	surf := cells.NewSurface(80, 30, cells.DefaultCellW, cells.DefaultCellH)
	eng, err := New(surf, config.DefaultConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	scr := surf.Screen()

	if !strings.Contains(scr.String(), "BRICKCANVAS") {
		t.Errorf("idle title missing from screen:\n%s", scr.String())
	}
	if !strings.Contains(scr.Row(1), "Score: 0") {
		t.Errorf("HUD row = %q", scr.Row(1))
	}

	// First block row covers cell row 3 from column 4; row 2 is background
	block, bg := scr.GetCell(5, 3), scr.GetCell(5, 2)
	if block.Rune != cells.FillGlyph || block.Color == bg.Color {
		t.Errorf("block cell = %+v, background cell = %+v", block, bg)
	}

	// Ball cell
	b := eng.Snapshot().Ball
	col, row := int(b.Pos.X)/cells.DefaultCellW, int(b.Pos.Y)/cells.DefaultCellH
	if got := scr.Get(col, row); got != cells.DotGlyph {
		t.Errorf("ball cell (%d, %d) = %q, expected %q", col, row, got, cells.DotGlyph)
	}
}
