// Package config provides YAML-based configuration loading for both
// game editions.
package config

// Config carries the settings for both editions of the game.
type Config struct {
	Terminal BoardConfig `yaml:"terminal"`
	GUI      GUIConfig   `yaml:"gui"`
	Paths    PathsConfig `yaml:"paths"`
}

// BoardConfig defines the playfield and pacing of one edition.
type BoardConfig struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	InitialLength  int `yaml:"initial_length"`
	MoveIntervalMs int `yaml:"move_interval_ms"`
}

// GUIConfig extends BoardConfig with window geometry for the graphical
// edition.
type GUIConfig struct {
	Board        BoardConfig `yaml:"board"`
	CellSize     int         `yaml:"cell_size"`
	WindowWidth  int         `yaml:"window_width"`
	WindowHeight int         `yaml:"window_height"`
	Theme        string      `yaml:"theme"`
}

// PathsConfig defines where scores are persisted.
type PathsConfig struct {
	HighScore string `yaml:"high_score"`
	Database  string `yaml:"database"`
}
