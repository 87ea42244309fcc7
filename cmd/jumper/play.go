package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	flagLogFile string
	flagPlayer  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game in this terminal.

Controls:
  Left/A         - Step left
  Right/D        - Step right
  Space/Up/W     - Jump (only while standing on a platform)
  P              - Pause
  R              - Restart (after game over)
  B/Esc          - Leaderboard (after game over)
  Ctrl+S         - Save a text screenshot to the temp directory
  Q/Ctrl+C       - Quit

The leaderboard is kept in memory and lasts until you quit.

Examples:
  jumper play
  jumper play --seed 42
  jumper play --config ./my-jumper.yaml
  jumper play --log-file /tmp/jumper.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name shown on the leaderboard (default: current user)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := checkFPS(); err != nil {
		return err
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The game owns the terminal, so logs only go to a file
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := newLogger(logOut, "jumper")
	if err != nil {
		return err
	}

	// Get terminal size; the model adjusts on the first resize message
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open leaderboard", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(jumper.NewWithConfig(gameCfg), store, logger, cfg, playerName())

	if store != nil {
		if high, highErr := store.HighScore(jumper.GameID); highErr == nil && high > 0 {
			fmt.Printf("Best score this session: %d\n", high)
		}
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// playerName picks the leaderboard name for local play.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
