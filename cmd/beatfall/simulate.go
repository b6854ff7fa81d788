package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/beatfall/internal/config"
	"github.com/vovakirdan/beatfall/internal/game"
)

var (
	flagSimLevels int
	flagSimPlayer string
	flagSimConfig string
)

// maxSimTicks bounds a single level so a pathological config cannot hang
// the command.
const maxSimTicks = 100000

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless autoplay session",
	Long: `Run the game core without a terminal UI. An autoplayer hits one
target per beat and the command prints a summary line per cleared level.
Useful for checking difficulty pacing and for reproducing seeds.

Examples:
  beatfall simulate
  beatfall simulate --levels 10
  beatfall simulate --levels 10 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimLevels, "levels", 5, "Number of levels to autoplay")
	simulateCmd.Flags().StringVar(&flagSimPlayer, "player", "autoplay", "Player name for the session")
	simulateCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
}

func runSimulate(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagSimConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "simulate"})

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fps := flagFPS
	if fps <= 0 {
		fps = 30
	}

	hub := game.NewHub()
	session := game.NewSession(gameCfg, hub, game.Collaborators{}, logger)
	clock := game.NewBeatClock(gameCfg.Beat, hub, nil, logger)
	gen := game.NewGenerator(gameCfg, clock, session, hub, nil, seed, logger)
	session.AttachSpawner(gen)

	var completed bool
	hub.OnLevelCompleted(func() { completed = true })

	session.SetPlayerName(flagSimPlayer)
	clock.Start()
	if !session.StartLevel() {
		fmt.Fprintln(os.Stderr, "Error: could not start level")
		os.Exit(1)
	}

	fmt.Printf("Autoplay: %d level(s), seed %d, %d fps\n\n", flagSimLevels, seed, fps)

	dt := 1.0 / float64(fps)
	for lvl := 1; lvl <= flagSimLevels; lvl++ {
		completed = false
		targets := session.ObjectivesRemaining()
		interval := clock.Interval()

		// Hit one target per beat.
		hitEvery := int(interval / dt)
		if hitEvery < 1 {
			hitEvery = 1
		}

		ticks := 0
		for !completed {
			clock.Tick(dt)
			gen.Tick(dt)
			ticks++
			if ticks%hitEvery == 0 {
				hitFirstActive(gen)
			}
			if ticks > maxSimTicks {
				fmt.Fprintf(os.Stderr, "Error: level %d did not complete after %d ticks\n", lvl, ticks)
				os.Exit(1)
			}
		}

		fmt.Printf("level %2d: %2d targets, beat %.2fs, cleared in %5.1fs, score %d\n",
			lvl, targets, interval, float64(ticks)*dt, session.Score())

		if lvl < flagSimLevels {
			session.AdvanceToNextLevel()
		}
	}
}

func hitFirstActive(gen *game.Generator) {
	for _, o := range gen.Objectives() {
		if o.State() == game.StateActive {
			o.Hit()
			return
		}
	}
}
