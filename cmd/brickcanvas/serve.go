package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickcanvas/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxSessions int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the brickcanvas SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game, sized to the client's
terminal. --config and --difficulty apply to every session.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.brickcanvas/host_key

Examples:
  brickcanvas serve                           # Listen on :23234 with auto-generated key
  brickcanvas serve --ssh :2222               # Listen on port 2222
  brickcanvas serve --host-key ./my_host_key  # Use specific host key
  brickcanvas serve --max-sessions 8          # Refuse players beyond 8 games

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", 0, "Maximum concurrent games (0 is unlimited)")
}

func runServe(cmd *cobra.Command, _ []string) {
	game, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("brickcanvas-ssh", os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg := tui.ServeConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		MaxSessions: flagMaxSessions,
		TickRate:    flagFPS,
		Game:        game,
	}

	host, err := tui.NewSSHHost(cfg, logger)
	if err != nil {
		closeLog()
		fail("creating ssh host: %v", err)
	}

	fmt.Printf("Serving brickcanvas on %s, press Ctrl+C to stop\n", host.Addr())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := host.Serve(ctx); err != nil {
		closeLog()
		fail("%v", err)
	}
}
