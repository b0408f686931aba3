package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Terminal: BoardConfig{
			Width:          40,
			Height:         20,
			InitialLength:  5,
			MoveIntervalMs: 100,
		},
		GUI: GUIConfig{
			Board: BoardConfig{
				Width:          28,
				Height:         20,
				InitialLength:  5,
				MoveIntervalMs: 120,
			},
			CellSize:     24,
			WindowWidth:  960,
			WindowHeight: 720,
			Theme:        "Classic Green",
		},
		Paths: PathsConfig{
			HighScore: "~/.snake-arcade/highscore.dat",
			Database:  "~/.snake-arcade/scores.db",
		},
	}
}
