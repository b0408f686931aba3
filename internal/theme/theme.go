// Package theme defines the visual palettes shared by both editions.
// The graphical edition uses full RGBA colors; the terminal edition maps
// each theme onto the cell buffer's color set.
package theme

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/DarrenOsborne/snake-arcade/internal/core"
)

// Theme describes the palette and styling for the game.
type Theme struct {
	Name string

	GradientTop    color.RGBA
	GradientBottom color.RGBA
	Playfield      color.RGBA
	Border         color.RGBA
	Grid           color.RGBA
	SnakeHead      color.RGBA
	SnakeBody      color.RGBA
	Food           color.RGBA
	TextPrimary    color.RGBA
	TextSecondary  color.RGBA
	Accent         color.RGBA
	OverlayTint    color.RGBA

	Terminal TerminalPalette
}

// TerminalPalette maps the theme onto the character grid's color set.
type TerminalPalette struct {
	Wall core.Color
	Head core.Color
	Body core.Color
	Food core.Color
	Text core.Color
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func rgba(r, g, b, a uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// Themes returns the available visual themes in cycling order.
func Themes() []Theme {
	return []Theme{
		{
			Name:           "Classic Green",
			GradientTop:    rgb(16, 64, 32),
			GradientBottom: rgb(20, 120, 60),
			Playfield:      rgb(24, 40, 24),
			Border:         rgb(70, 170, 90),
			Grid:           rgb(60, 110, 70),
			SnakeHead:      rgb(240, 250, 90),
			SnakeBody:      rgb(120, 220, 90),
			Food:           rgb(255, 80, 90),
			TextPrimary:    rgb(235, 250, 230),
			TextSecondary:  rgb(200, 220, 205),
			Accent:         rgb(140, 235, 120),
			OverlayTint:    rgba(10, 30, 15, 180),
			Terminal: TerminalPalette{
				Wall: core.ColorGreen,
				Head: core.ColorYellow,
				Body: core.ColorGreen,
				Food: core.ColorRed,
				Text: core.ColorWhite,
			},
		},
		{
			Name:           "Ocean Blue",
			GradientTop:    rgb(15, 40, 80),
			GradientBottom: rgb(25, 120, 180),
			Playfield:      rgb(18, 55, 95),
			Border:         rgb(90, 170, 220),
			Grid:           rgb(70, 125, 170),
			SnakeHead:      rgb(255, 255, 255),
			SnakeBody:      rgb(120, 200, 255),
			Food:           rgb(255, 150, 80),
			TextPrimary:    rgb(225, 240, 255),
			TextSecondary:  rgb(200, 220, 245),
			Accent:         rgb(140, 210, 255),
			OverlayTint:    rgba(10, 30, 55, 180),
			Terminal: TerminalPalette{
				Wall: core.ColorBlue,
				Head: core.ColorWhite,
				Body: core.ColorCyan,
				Food: core.ColorOrange,
				Text: core.ColorWhite,
			},
		},
		{
			Name:           "Cyberpunk",
			GradientTop:    rgb(40, 0, 60),
			GradientBottom: rgb(140, 10, 160),
			Playfield:      rgb(45, 10, 65),
			Border:         rgb(255, 0, 110),
			Grid:           rgb(120, 45, 150),
			SnakeHead:      rgb(10, 255, 240),
			SnakeBody:      rgb(180, 50, 255),
			Food:           rgb(255, 70, 180),
			TextPrimary:    rgb(240, 220, 255),
			TextSecondary:  rgb(215, 200, 230),
			Accent:         rgb(0, 255, 200),
			OverlayTint:    rgba(40, 5, 70, 190),
			Terminal: TerminalPalette{
				Wall: core.ColorMagenta,
				Head: core.ColorCyan,
				Body: core.ColorMagenta,
				Food: core.ColorRed,
				Text: core.ColorWhite,
			},
		},
	}
}

// ByName returns the theme with the given name, falling back to the
// first theme when the name is unknown.
func ByName(name string) Theme {
	themes := Themes()
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// Lerp blends two colors in RGB space. t is clamped to [0,1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = core.ClampF(t, 0, 1)
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	blended := ca.BlendRgb(cb, t)
	r, g, bl := blended.RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}
