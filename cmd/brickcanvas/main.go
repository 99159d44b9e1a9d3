// brickcanvas is a brick-breaking game that runs in a terminal, in a desktop
// window or over SSH.
//
// Usage:
//
//	brickcanvas play      - Play in the terminal
//	brickcanvas window    - Play in a desktop window
//	brickcanvas serve     - Start SSH server for remote play
//	brickcanvas layout    - Print the block grid of a level
//	brickcanvas config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--config <path>        - Engine config file (.yaml or .toml)
//	--difficulty <preset>  - easy, normal or hard
//	--log-file <path>      - Write logs to a file
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickcanvas/internal/config"
)

// Environment variables that fill flags left unset.
const (
	envConfig   = "BRICKCANVAS_CONFIG"
	envLogLevel = "BRICKCANVAS_LOG_LEVEL"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickcanvas",
	Short: "brickcanvas - break bricks in your terminal",
	Long: `brickcanvas is a brick-breaking game. Bounce the ball off the paddle,
clear every block to reach the next level and keep your lives.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  layout   - Print the block grid of a level
  config   - Print the effective configuration

Settings are read from a .env file in the working directory:
  BRICKCANVAS_CONFIG      - same as --config
  BRICKCANVAS_LOG_LEVEL   - same as --log-level

Examples:
  brickcanvas play
  brickcanvas play --difficulty hard --status-addr :8080
  brickcanvas window --width 1024 --height 768
  brickcanvas serve --ssh :2222
  brickcanvas layout --level 5 --width 1024`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(configCmd)
}

// loadEnv reads .env and fills flags the user did not set. A missing .env
// file is not an error.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	flags := cmd.Flags()
	if v := os.Getenv(envConfig); v != "" && !flags.Changed("config") {
		flagConfig = v
	}
	if v := os.Getenv(envLogLevel); v != "" && !flags.Changed("log-level") {
		flagLogLevel = v
	}
	return nil
}

// loadGameConfig loads the engine configuration and applies the difficulty.
func loadGameConfig() (config.BreakoutConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// newLogger creates a logger writing to --log-file, or to fallback when no
// file is given. The returned function closes the file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
