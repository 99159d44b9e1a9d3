package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickcanvas/internal/audio"
	"github.com/vovakirdan/brickcanvas/internal/core"
	"github.com/vovakirdan/brickcanvas/internal/platform/tui"
	"github.com/vovakirdan/brickcanvas/internal/status"
)

var (
	flagStatusAddr string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D  - Move the paddle
  Mouse            - Move the paddle, click to start
  Space/P          - Start, pause, resume
  R                - Reset
  ?                - Toggle help
  M                - Mute or unmute sound
  Q/Ctrl+C         - Quit

With --status-addr the current game state is served as JSON:
  GET /api/status, /api/snapshot, /api/blocks, /api/blocks/{index}

Examples:
  brickcanvas play
  brickcanvas play --difficulty easy --mute
  brickcanvas play --volume -1
  brickcanvas play --status-addr 127.0.0.1:8080`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagStatusAddr, "status-addr", "", "Serve game status over HTTP on this address")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0, "Sound volume in base-2 steps (0 is full, -1 is half)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("brickcanvas", io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Logger: logger,
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

	if err := tui.Run(opts); err != nil {
		closeLog()
		fail("running game: %v", err)
	}
}

// startAudio opens the speaker. Sound is optional: on failure the game runs
// silent.
func startAudio(logger *log.Logger) *audio.Player {
	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	player.SetVolume(flagVolume)
	return player
}

// startStatus serves the status endpoint on --status-addr until ctx is done.
// It returns nil when no address is set.
func startStatus(ctx context.Context, logger *log.Logger) *status.Board {
	if flagStatusAddr == "" {
		return nil
	}
	board := status.NewBoard()
	srv := status.NewServer(flagStatusAddr, board, logger)
	go func() {
		if err := srv.Run(ctx); err != nil {
			logger.Error("status server stopped", "error", err)
		}
	}()
	return board
}
