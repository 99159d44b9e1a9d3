package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickcanvas/internal/audio"
	"github.com/vovakirdan/brickcanvas/internal/platform/desktop"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a resizable window and play with keyboard, mouse or touch.

Controls:
  Left/A, Right/D  - Move the paddle
  Mouse/Touch      - Move the paddle, click or tap to start
  Space/P          - Start, pause, resume
  R                - Reset
  M                - Mute or unmute sound
  Esc/Q            - Quit

Examples:
  brickcanvas window
  brickcanvas window --width 1280 --height 720 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 800, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 600, "Window height in pixels")
	windowCmd.Flags().StringVar(&flagStatusAddr, "status-addr", "", "Serve game status over HTTP on this address")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	windowCmd.Flags().Float64Var(&flagVolume, "volume", 0, "Sound volume in base-2 steps (0 is full, -1 is half)")
}

func runWindow(cmd *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("brickcanvas", os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	opts := desktop.Options{
		Config:   cfg,
		Width:    flagWidth,
		Height:   flagHeight,
		TickRate: flagFPS,
		Logger:   logger,
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	opts.Board = startStatus(ctx, logger)

	if !flagMute {
		if player := startAudio(logger); player != nil {
			defer player.Close()
			opts.Observers = append(opts.Observers, audio.Observer(player))
			opts.Sound = player
		}
	}

	if err := desktop.Run(opts); err != nil {
		closeLog()
		fail("running game: %v", err)
	}
}
