package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/DarrenOsborne/snake-arcade/internal/config"
	"github.com/DarrenOsborne/snake-arcade/internal/game"
	"github.com/DarrenOsborne/snake-arcade/internal/platform/tui"
	"github.com/DarrenOsborne/snake-arcade/internal/score"
	"github.com/DarrenOsborne/snake-arcade/internal/theme"
)

var flagPlayTheme string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the terminal edition",
	Long: `Start the terminal edition: a bordered character grid where the snake
wraps nothing and the walls bite back.

Controls:
  Arrows/WASD - Steer
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  snake play
  snake play --theme "Ocean Blue"
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayTheme, "theme", "", "Color theme (default from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	board := cfg.Terminal

	// The board needs to fit, border and status bar included.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW, needH := board.Width+2, board.Height+3
		if w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, need at least %dx%d\n", w, h, needW, needH)
			os.Exit(1)
		}
	}

	highPath := flagHighScorePath
	round := game.NewRound(game.Config{
		Board: game.Board{
			Width:  board.Width,
			Height: board.Height,
			Walls:  game.BorderWall,
		},
		InitialLength: board.InitialLength,
		MoveInterval:  time.Duration(board.MoveIntervalMs) * time.Millisecond,
		HighScore:     score.LoadHighScore(highPath),
		SaveHighScore: func(n int) {
			//nolint:errcheck // Best-effort save, game continues regardless
			score.SaveHighScore(highPath, n)
		},
	})

	store, err := score.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	themeName := flagPlayTheme
	if themeName == "" {
		themeName = cfg.GUI.Theme
	}
	runErr := tui.Run(round, store, theme.ByName(themeName).Terminal)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
