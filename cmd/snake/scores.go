package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/DarrenOsborne/snake-arcade/internal/platform/tui"
	"github.com/DarrenOsborne/snake-arcade/internal/score"
)

var (
	flagScoresEdition     string
	flagScoresLimit       int
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded scores",
	Long: `Display recorded scores across both editions.

Examples:
  snake scores
  snake scores --edition tui
  snake scores --limit 25
  snake scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresEdition, "edition", "", "Filter by edition: tui or gui (default both)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresInteractive, "interactive", false, "Browse scores in a full-screen table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := score.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.Top(flagScoresEdition, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Snake")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' or 'snake gui' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "Rank", "Edition", "Score", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "----", "-------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-10d  %s\n", i+1, entry.Edition, entry.Score, dateStr)
	}

	best, err := store.Best()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}
