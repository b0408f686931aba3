// Package gui provides the Ebitengine integration for the graphical
// edition: menus, theming, and the animated playfield.
package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/DarrenOsborne/snake-arcade/internal/core"
	"github.com/DarrenOsborne/snake-arcade/internal/theme"
)

// UIAction identifies what a button does. Buttons carry a tag instead of
// a callback so input handling stays in one switch.
type UIAction int

const (
	UINone UIAction = iota
	UIStart
	UIQuit
	UIThemePrev
	UIThemeNext
	UIRestart
	UIToMenu
)

// Button is a clickable rectangle with a label.
type Button struct {
	Rect   core.Rect
	Label  string
	Action UIAction
}

// Contains reports whether the pixel position is inside the button.
func (b Button) Contains(x, y int) bool {
	return b.Rect.Contains(x, y)
}

// Debug font glyph dimensions, used to center labels.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// Draw renders the button, highlighting it under the cursor.
func (b Button) Draw(dst *ebiten.Image, th theme.Theme, mouseX, mouseY int) {
	fill := th.Border
	if b.Contains(mouseX, mouseY) {
		fill = th.Accent
	}

	ebitenutil.DrawRect(dst,
		float64(b.Rect.X), float64(b.Rect.Y),
		float64(b.Rect.W), float64(b.Rect.H),
		fill,
	)
	inner := 3
	ebitenutil.DrawRect(dst,
		float64(b.Rect.X+inner), float64(b.Rect.Y+inner),
		float64(b.Rect.W-2*inner), float64(b.Rect.H-2*inner),
		th.Playfield,
	)

	labelX := b.Rect.X + (b.Rect.W-len(b.Label)*glyphWidth)/2
	labelY := b.Rect.Y + (b.Rect.H-glyphHeight)/2
	ebitenutil.DebugPrintAt(dst, b.Label, labelX, labelY)
}

// hitButton returns the action of the first button containing the
// position, or UINone.
func hitButton(buttons []Button, x, y int) UIAction {
	for _, b := range buttons {
		if b.Contains(x, y) {
			return b.Action
		}
	}
	return UINone
}
