package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beatfall/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores, or one player's history with --player.

Examples:
  beatfall scores
  beatfall scores --limit 25
  beatfall scores --player alice`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show scores for a single player")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresPlayer != "" {
		printPlayerScores(store, flagScoresPlayer)
		return
	}

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Beatfall High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'beatfall play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n",
			i+1, entry.PlayerName, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printPlayerScores(store *storage.Store, player string) {
	stats, err := store.GetPlayerStats(player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Scores - %s\n", player)
	fmt.Println()

	if stats.GamesCount == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("Levels cleared: %d\n", stats.GamesCount)
	fmt.Printf("Best score:     %d\n", stats.HighScore)
	fmt.Printf("Average score:  %.1f\n", stats.AvgScore)
	fmt.Printf("Last played:    %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))

	scores, err := store.PlayerScores(player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("  %-10s  %s\n", "Score", "Date")
	fmt.Printf("  %-10s  %s\n", "-----", "----")
	for _, entry := range scores {
		fmt.Printf("  %-10d  %s\n", entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}
