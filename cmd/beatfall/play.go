package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/beatfall/internal/config"
	"github.com/vovakirdan/beatfall/internal/feedback"
	"github.com/vovakirdan/beatfall/internal/game"
	"github.com/vovakirdan/beatfall/internal/platform/tui"
	"github.com/vovakirdan/beatfall/internal/storage"
)

var (
	flagConfig  string
	flagNoSound bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game session in the current terminal.

Controls:
  Space/Enter  - Hit the aimed target
  Tab/Arrows   - Aim at another target
  R            - Restart the level
  Esc          - Back to the start menu
  Q/Ctrl+C     - Quit

Examples:
  beatfall play
  beatfall play --seed 42
  beatfall play --no-sound
  beatfall play --config ./my-game.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable audio feedback")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Log to a file; stderr would fight with the alternate screen.
	logger := log.New(io.Discard)
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		logPath := filepath.Join(home, ".beatfall", "beatfall.log")
		//nolint:errcheck // Best-effort directory creation
		os.MkdirAll(filepath.Dir(logPath), 0o755)
		if f, openErr := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); openErr == nil {
			defer f.Close()
			logger = log.NewWithOptions(f, log.Options{ReportTimestamp: true})
		}
	}

	// Scores are best-effort: play works without the database.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer store.Close()
	}

	var fb game.FeedbackChannel = game.NopFeedback{}
	if !flagNoSound {
		fb = feedback.NewEngine(logger)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := tui.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(gameCfg, store, fb, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
