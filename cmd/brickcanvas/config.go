package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickcanvas/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with: the loaded file
(or the built-in defaults) with the difficulty preset applied.

The output is a complete config file and can be edited and passed back
with --config.

Examples:
  brickcanvas config > breakout.yaml
  brickcanvas config --difficulty hard --format toml > hard.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	switch flagFormat {
	case "yaml":
		err = config.Encode(os.Stdout, cfg)
	case "toml":
		err = config.EncodeTOML(os.Stdout, cfg)
	default:
		fail("unknown format %q (want yaml or toml)", flagFormat)
	}
	if err != nil {
		fail("%v", err)
	}
}
