package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/DarrenOsborne/snake-arcade/internal/config"
	"github.com/DarrenOsborne/snake-arcade/internal/game"
	"github.com/DarrenOsborne/snake-arcade/internal/platform/gui"
	"github.com/DarrenOsborne/snake-arcade/internal/score"
)

var flagGUITheme string

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play the graphical edition",
	Long: `Start the graphical edition: an open-bounds board with smooth
movement, themes, and mouse-driven menus.

Controls:
  Arrows/WASD - Steer
  P           - Pause
  Enter/Space - Start / Restart
  Esc         - Back to menu

Examples:
  snake gui
  snake gui --theme Cyberpunk`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func init() {
	guiCmd.Flags().StringVar(&flagGUITheme, "theme", "", "Initial color theme (default from config)")
}

func runGUI(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	guiCfg := cfg.GUI
	if flagGUITheme != "" {
		guiCfg.Theme = flagGUITheme
	}

	board := guiCfg.Board
	highPath := flagHighScorePath
	round := game.NewRound(game.Config{
		Board: game.Board{
			Width:  board.Width,
			Height: board.Height,
			Walls:  game.OpenBounds,
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

	runErr := gui.Run(round, guiCfg, store)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
