package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickcanvas/internal/config"
	"github.com/vovakirdan/brickcanvas/internal/core"
	"github.com/vovakirdan/brickcanvas/internal/games/breakout"
)

// RenderLevelTable describes the block grid of a level on a surface of the
// given width: one table row per grid row and a summary line.
func RenderLevelTable(cfg config.BreakoutConfig, level int, width float64) (string, error) {
	palette := make([]core.Color, 0, len(cfg.Blocks.Palette))
	for _, hex := range cfg.Blocks.Palette {
		c, err := core.ParseHex(hex)
		if err != nil {
			return "", fmt.Errorf("palette: %w", err)
		}
		palette = append(palette, c)
	}

	layout := breakout.LayoutFor(cfg.Blocks, level, width)
	blocks := breakout.GenerateBlocks(cfg.Blocks, palette, level, width)

	columns := []table.Column{
		{Title: "Row", Width: 5},
		{Title: "Top", Width: 7},
		{Title: "Points", Width: 8},
		{Title: "Color", Width: 9},
		{Title: "Blocks", Width: 8},
	}

	var rows []table.Row
	total := 0
	for r := 0; r < layout.Rows && !layout.Empty(); r++ {
		b := blocks[r*layout.Cols]
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", r+1),
			fmt.Sprintf("%.0f", b.Y),
			fmt.Sprintf("%d", b.Points),
			b.Color.Hex(),
			fmt.Sprintf("%d", layout.Cols),
		})
		total += b.Points * layout.Cols
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	summary := fmt.Sprintf("Level %d at width %.0f: %d rows x %d columns, %d blocks, %d points",
		level, width, layout.Rows, layout.Cols, len(blocks), total)
	if layout.Empty() {
		summary = fmt.Sprintf("Level %d at width %.0f: surface too narrow for a single column", level, width)
	}

	return t.View() + "\n" + summary, nil
}
