// beatfall is a terminal rhythm game: clear each level by hitting every
// pulsing target before moving on to a faster, denser one.
//
// Usage:
//
//	beatfall play              - Play in the current terminal
//	beatfall serve             - Start SSH server for remote play
//	beatfall scores            - Show the leaderboard
//	beatfall simulate          - Run a headless autoplay session
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible target placement
//	--db <path>     - Set database path (default: ~/.beatfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "beatfall",
	Short: "Beatfall - A rhythm-target game in your terminal",
	Long: `Beatfall is a terminal rhythm game. Targets spawn on a disk and pulse
to the level's beat; hit them all to clear the level. Each level adds
targets and tightens the beat.

Available commands:
  play       - Play in the current terminal
  serve      - Start SSH server for remote play
  scores     - View the leaderboard
  simulate   - Run a headless autoplay session

Examples:
  beatfall play
  beatfall play --seed 42
  beatfall serve --ssh :2222
  beatfall scores
  beatfall simulate --levels 10`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.beatfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
