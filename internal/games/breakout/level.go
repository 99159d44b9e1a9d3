package breakout

import (
	"math"

	"github.com/vovakirdan/brickcanvas/internal/config"
	"github.com/vovakirdan/brickcanvas/internal/core"
)

// Layout describes the block grid for one level on one surface width.
type Layout struct {
	Rows int
	Cols int
}

// Empty reports whether the grid has no blocks.
func (l Layout) Empty() bool {
	return l.Rows <= 0 || l.Cols <= 0
}

// LayoutFor computes the grid dimensions for a level.
// Rows grow by one every second level up to the configured maximum; columns
// fill the surface width between the side offsets.
func LayoutFor(cfg config.Blocks, level int, surfaceWidth float64) Layout {
	rows := min(cfg.BaseRows+level/2, cfg.MaxRows)
	cols := int(math.Floor((surfaceWidth - 2*cfg.OffsetLeft) / (cfg.Width + cfg.Padding)))
	return Layout{Rows: max(rows, 0), Cols: max(cols, 0)}
}

// GenerateBlocks builds the block grid for a level, row by row from the top.
// Top rows are worth the most. Row colors cycle through palette.
func GenerateBlocks(cfg config.Blocks, palette []core.Color, level int, surfaceWidth float64) []Block {
	layout := LayoutFor(cfg, level, surfaceWidth)
	if layout.Empty() {
		return nil
	}

	blocks := make([]Block, 0, layout.Rows*layout.Cols)
	for row := range layout.Rows {
		color := core.ColorWhite
		if len(palette) > 0 {
			color = palette[row%len(palette)]
		}
		points := (layout.Rows - row) * cfg.RowPoints

		for col := range layout.Cols {
			blocks = append(blocks, Block{
				X:      cfg.OffsetLeft + float64(col)*(cfg.Width+cfg.Padding),
				Y:      cfg.OffsetTop + float64(row)*(cfg.Height+cfg.Padding),
				Width:  cfg.Width,
				Height: cfg.Height,
				Color:  color,
				Points: points,
			})
		}
	}
	return blocks
}
