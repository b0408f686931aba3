package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/DarrenOsborne/snake-arcade/internal/core"
	"github.com/DarrenOsborne/snake-arcade/internal/game"
	"github.com/DarrenOsborne/snake-arcade/internal/theme"
)

// tint premultiplies the color's channels by the given alpha, as the
// renderer expects.
func tint(c color.RGBA, alpha uint8) color.RGBA {
	a := uint16(alpha)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: alpha,
	}
}

// Draw renders the frame for the current phase.
func (a *App) Draw(screen *ebiten.Image) {
	th := a.currentTheme()
	a.drawGradient(screen, th)

	if a.round.Phase() == game.PhaseMenu {
		a.drawMenu(screen, th)
		return
	}

	a.drawPlayfield(screen, th)
	a.drawHUD(screen, th)

	switch a.round.Phase() {
	case game.PhasePaused:
		a.drawPauseOverlay(screen, th)
	case game.PhaseOver:
		a.drawGameOver(screen, th)
	}
}

// drawGradient paints the animated vertical background gradient.
func (a *App) drawGradient(screen *ebiten.Image, th theme.Theme) {
	h := a.cfg.WindowHeight
	w := float64(a.cfg.WindowWidth)
	offset := (math.Sin(a.gradientPhase*0.02) + 1) / 2

	// Bands of a few rows keep the per-frame rect count reasonable.
	const band = 4
	for y := 0; y < h; y += band {
		ratio := math.Mod(float64(y)/float64(h)+offset, 1.0)
		c := theme.Lerp(th.GradientTop, th.GradientBottom, ratio)
		ebitenutil.DrawRect(screen, 0, float64(y), w, band, c)
	}
}

func (a *App) drawMenu(screen *ebiten.Image, th theme.Theme) {
	w, h := a.cfg.WindowWidth, a.cfg.WindowHeight
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), tint(color.RGBA{}, 40))

	centerX := w / 2
	printCentered(screen, "SNAKE", centerX, 150)
	printCentered(screen, "Modern Arcade Edition", centerX, 200)
	printCentered(screen, "Theme", centerX, 240)
	printCentered(screen, a.themes[a.themeIdx].Name, centerX, 260)

	mx, my := ebiten.CursorPosition()
	for _, b := range a.menuButtons {
		b.Draw(screen, th, mx, my)
	}
}

func (a *App) drawPlayfield(screen *ebiten.Image, th theme.Theme) {
	pf := a.playfield

	// Border panel with an inset board surface.
	const inset = 8
	ebitenutil.DrawRect(screen,
		float64(pf.X-inset), float64(pf.Y-inset),
		float64(pf.W+2*inset), float64(pf.H+2*inset),
		tint(th.Border, 220),
	)
	ebitenutil.DrawRect(screen,
		float64(pf.X), float64(pf.Y),
		float64(pf.W), float64(pf.H),
		tint(th.Playfield, 235),
	)

	a.drawGrid(screen, th)
	a.drawFood(screen, th)
	a.drawSnake(screen, th)
}

func (a *App) drawGrid(screen *ebiten.Image, th theme.Theme) {
	pf := a.playfield
	board := a.round.Board()
	cell := float64(a.cfg.CellSize)
	c := tint(th.Grid, 80)

	for x := 1; x < board.Width; x++ {
		px := float64(pf.X) + float64(x)*cell
		ebitenutil.DrawRect(screen, px, float64(pf.Y), 1, float64(pf.H), c)
	}
	for y := 1; y < board.Height; y++ {
		py := float64(pf.Y) + float64(y)*cell
		ebitenutil.DrawRect(screen, float64(pf.X), py, float64(pf.W), 1, c)
	}
}

func (a *App) drawFood(screen *ebiten.Image, th theme.Theme) {
	food, ok := a.round.Food()
	if !ok {
		return
	}

	cell := float64(a.cfg.CellSize)
	pulse := (math.Sin(a.foodPulse*4) + 1) / 2
	size := cell * (0.55 + 0.25*pulse)
	cx := float64(a.playfield.X) + (float64(food.X)+0.5)*cell
	cy := float64(a.playfield.Y) + (float64(food.Y)+0.5)*cell

	// Soft glow behind the core.
	glow := size * 1.6
	ebitenutil.DrawRect(screen, cx-glow/2, cy-glow/2, glow, glow, tint(th.Food, 70))
	ebitenutil.DrawRect(screen, cx-size/2, cy-size/2, size, size, th.Food)
}

// drawSnake draws each segment interpolated between its previous and
// current cell, so movement is smooth between ticks.
func (a *App) drawSnake(screen *ebiten.Image, th theme.Theme) {
	body := a.round.Snake().Body
	prev := a.round.PrevBody()
	alpha := a.round.Progress()
	cell := float64(a.cfg.CellSize)

	for i, seg := range body {
		from := seg
		if i < len(prev) {
			from = prev[i]
		}
		ix := core.Lerp(float64(from.X), float64(seg.X), alpha)
		iy := core.Lerp(float64(from.Y), float64(seg.Y), alpha)
		px := float64(a.playfield.X) + ix*cell
		py := float64(a.playfield.Y) + iy*cell

		c := th.SnakeBody
		pad := 2.0
		if i == 0 {
			c = th.SnakeHead
			pad = 1.0
		}
		ebitenutil.DrawRect(screen, px+pad, py+pad, cell-2*pad, cell-2*pad, c)
	}
}

func (a *App) drawHUD(screen *ebiten.Image, th theme.Theme) {
	w := a.cfg.WindowWidth
	ebitenutil.DrawRect(screen, 0, 0, float64(w), 90, tint(th.Border, 60))

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", a.round.Score()), 60, 35)
	printCentered(screen, fmt.Sprintf("High Score: %d", a.round.HighScore()), w/2, 35)

	themeLabel := fmt.Sprintf("Theme: %s", a.active.Name)
	ebitenutil.DebugPrintAt(screen, themeLabel, w-60-len(themeLabel)*glyphWidth, 35)
}

func (a *App) drawPauseOverlay(screen *ebiten.Image, th theme.Theme) {
	pf := a.playfield
	ebitenutil.DrawRect(screen,
		float64(pf.X), float64(pf.Y), float64(pf.W), float64(pf.H),
		tint(th.OverlayTint, th.OverlayTint.A),
	)
	printCentered(screen, "Paused", pf.X+pf.W/2, pf.Y+pf.H/2)
}

func (a *App) drawGameOver(screen *ebiten.Image, th theme.Theme) {
	w, h := a.cfg.WindowWidth, a.cfg.WindowHeight

	overlayAlpha := th.OverlayTint.A
	if overlayAlpha < 215 {
		overlayAlpha += 40
	}
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), tint(th.OverlayTint, overlayAlpha))

	// Modal panel.
	const inset = 9
	ebitenutil.DrawRect(screen,
		float64(a.modal.X), float64(a.modal.Y),
		float64(a.modal.W), float64(a.modal.H),
		tint(th.Border, 240),
	)
	ebitenutil.DrawRect(screen,
		float64(a.modal.X+inset), float64(a.modal.Y+inset),
		float64(a.modal.W-2*inset), float64(a.modal.H-2*inset),
		tint(th.Playfield, 245),
	)

	title := "Game Over"
	if a.round.Reason() == game.EndWin {
		title = "You Win!"
	}
	centerX := a.modal.X + a.modal.W/2
	printCentered(screen, title, centerX, a.modal.Y+60)
	printCentered(screen, fmt.Sprintf("Score: %d", a.round.Score()), centerX, a.modal.Y+110)
	printCentered(screen, fmt.Sprintf("High Score: %d", a.round.HighScore()), centerX, a.modal.Y+135)

	mx, my := ebiten.CursorPosition()
	for _, b := range a.overButtons {
		b.Draw(screen, th, mx, my)
	}
}

// printCentered prints debug-font text centered horizontally on x.
func printCentered(dst *ebiten.Image, text string, x, y int) {
	ebitenutil.DebugPrintAt(dst, text, x-len(text)*glyphWidth/2, y-glyphHeight/2)
}
