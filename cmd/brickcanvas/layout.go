package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickcanvas/internal/platform/tui"
)

var (
	flagLevel       int
	flagLayoutWidth float64
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the block grid of a level",
	Long: `Shows the rows, points and colors of the block grid a level gets on a
surface of the given width. Rows grow every second level.

Examples:
  brickcanvas layout
  brickcanvas layout --level 7 --width 1280`,
	Args: cobra.NoArgs,
	Run:  runLayout,
}

func init() {
	layoutCmd.Flags().IntVar(&flagLevel, "level", 1, "Level number")
	layoutCmd.Flags().Float64Var(&flagLayoutWidth, "width", 800, "Surface width in pixels")
}

func runLayout(_ *cobra.Command, _ []string) {
	if flagLevel < 1 {
		fail("level must be at least 1")
	}

	cfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	out, err := tui.RenderLevelTable(cfg, flagLevel, flagLayoutWidth)
	if err != nil {
		fail("%v", err)
	}
	fmt.Println(out)
}
