// jumper is a vertical platform-jumping game for the terminal.
//
// Usage:
//
//	jumper play              - Play in the local terminal
//	jumper serve             - Start SSH server for remote play
//	jumper config            - Print the effective game config as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible layouts
//	--config <path>       - Load game config from a YAML file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Jumper - hop up an endless tower of platforms in your terminal",
	Long: `Jumper is a terminal platform-jumping game. Hop from platform to
platform, climb as high as you can and don't fall off the bottom.

Breakable platforms (orange) give you one bounce and then crumble.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective game config

Examples:
  jumper play
  jumper play --seed 42
  jumper serve --ssh :2222
  jumper config > ~/.arcade/configs/jumper.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger at the level selected by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadGameConfig resolves the game config once so that a broken file is
// reported before the terminal switches to the game screen.
func loadGameConfig() (config.JumperConfig, error) {
	cfg, err := config.LoadJumper(flagConfig)
	if err != nil {
		return config.JumperConfig{}, err
	}
	jumper.SetConfigPath(flagConfig)
	return cfg, nil
}

// checkFPS rejects tick rates the driver cannot schedule.
func checkFPS() error {
	if flagFPS <= 0 || flagFPS > 1000 {
		return fmt.Errorf("--fps must be between 1 and 1000, got %d", flagFPS)
	}
	return nil
}
