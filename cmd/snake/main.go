// snake is a two-edition snake game: a terminal edition rendered as a
// character grid and a graphical edition with menus and theming.
//
// Usage:
//
//	snake play    - Play the terminal edition
//	snake gui     - Play the graphical edition
//	snake scores  - Show recorded scores
//	snake serve   - Serve the terminal edition over SSH
//
// Global flags:
//
//	--db <path>         - Scores database (default: ~/.snake-arcade/scores.db)
//	--highscore <path>  - High score file (default: ~/.snake-arcade/highscore.dat)
//	--config <path>     - Custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DarrenOsborne/snake-arcade/internal/score"
)

var (
	// Global flags
	flagDBPath        string
	flagHighScorePath string
	flagConfig        string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - terminal and graphical editions of the classic game",
	Long: `Snake is the classic grid game in two editions that share one rule set:
a terminal edition drawn as a character grid, and a graphical edition
with menus, themes, and smooth movement.

Available commands:
  play     - Play the terminal edition
  gui      - Play the graphical edition
  scores   - View recorded scores
  serve    - Serve the terminal edition over SSH

Examples:
  snake play
  snake gui
  snake scores --edition tui
  snake serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", score.DefaultDBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagHighScorePath, "highscore", score.DefaultHighScorePath, "Path to high score file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
