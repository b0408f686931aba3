package gui

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/DarrenOsborne/snake-arcade/internal/config"
	"github.com/DarrenOsborne/snake-arcade/internal/core"
	"github.com/DarrenOsborne/snake-arcade/internal/game"
	"github.com/DarrenOsborne/snake-arcade/internal/score"
	"github.com/DarrenOsborne/snake-arcade/internal/theme"
)

// Edition tag recorded with scores from this adapter.
const editionGUI = "gui"

// App is the Ebitengine game for the graphical edition. Screen state is
// driven entirely by the round's phase.
type App struct {
	round  *game.Round
	cfg    config.GUIConfig
	store  *score.Store
	themes []theme.Theme

	themeIdx int         // Selection shown in the menu
	active   theme.Theme // Theme locked in when the round started

	playfield core.Rect // Pixel rect of the board area

	gradientPhase float64
	foodPulse     float64
	scoreSaved    bool

	menuButtons []Button
	overButtons []Button
	modal       core.Rect
}

// NewApp creates the graphical edition around the given round.
// store may be nil; score history is then skipped.
func NewApp(round *game.Round, cfg config.GUIConfig, store *score.Store) *App {
	a := &App{
		round:  round,
		cfg:    cfg,
		store:  store,
		themes: theme.Themes(),
	}
	for i, th := range a.themes {
		if th.Name == cfg.Theme {
			a.themeIdx = i
		}
	}
	a.active = a.themes[a.themeIdx]

	board := round.Board()
	a.playfield = core.NewRect(
		(cfg.WindowWidth-board.Width*cfg.CellSize)/2,
		140,
		board.Width*cfg.CellSize,
		board.Height*cfg.CellSize,
	)

	a.buildMenuButtons()
	a.buildGameOverButtons()
	return a
}

func (a *App) buildMenuButtons() {
	centerX := a.cfg.WindowWidth / 2
	a.menuButtons = []Button{
		{Rect: core.NewRect(centerX-130, 330, 260, 60), Label: "Start Game", Action: UIStart},
		{Rect: core.NewRect(centerX-130, 410, 260, 60), Label: "Quit", Action: UIQuit},
		{Rect: core.NewRect(centerX-180, 230, 60, 60), Label: "<", Action: UIThemePrev},
		{Rect: core.NewRect(centerX+120, 230, 60, 60), Label: ">", Action: UIThemeNext},
	}
}

func (a *App) buildGameOverButtons() {
	const modalW, modalH = 420, 320
	a.modal = core.NewRect(
		(a.cfg.WindowWidth-modalW)/2,
		(a.cfg.WindowHeight-modalH)/2,
		modalW, modalH,
	)

	buttonW := modalW - 120
	a.overButtons = []Button{
		{
			Rect:   core.NewRect(a.modal.X+(modalW-buttonW)/2, a.modal.Bottom()-138, buttonW, 56),
			Label:  "Restart",
			Action: UIRestart,
		},
		{
			Rect:   core.NewRect(a.modal.X+(modalW-buttonW)/2, a.modal.Bottom()-68, buttonW, 56),
			Label:  "Main Menu",
			Action: UIToMenu,
		},
	}
}

// Update advances animation and the round by one frame.
func (a *App) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	a.gradientPhase = math.Mod(a.gradientPhase+dt*35, float64(a.cfg.WindowHeight))

	if err := a.handleKeys(); err != nil {
		return err
	}
	if err := a.handleMouse(); err != nil {
		return err
	}

	if a.round.Phase() == game.PhasePlaying {
		a.foodPulse += dt
	}
	a.round.Advance(time.Duration(dt * float64(time.Second)))

	// Save score on game over (once)
	if a.round.Phase() == game.PhaseOver && !a.scoreSaved {
		if a.store != nil && a.round.Score() > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			a.store.Save(editionGUI, a.round.Score())
		}
		a.scoreSaved = true
	}

	return nil
}

func (a *App) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return a.dispatch(UIToMenu)
	}

	switch a.round.Phase() {
	case game.PhaseMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			return a.dispatch(UIStart)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
			return a.dispatch(UIThemePrev)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
			return a.dispatch(UIThemeNext)
		}
		return nil

	case game.PhaseOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			return a.dispatch(UIRestart)
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.round.TogglePause()
		return nil
	}

	if dir, ok := pressedDirection(); ok {
		a.round.QueueDirection(dir)
	}
	return nil
}

// pressedDirection returns the steering vector for a just-pressed key.
func pressedDirection() (core.Vector, bool) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		return core.Up, true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		return core.Down, true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyA):
		return core.Left, true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyD):
		return core.Right, true
	}
	return core.Vector{}, false
}

func (a *App) handleMouse() error {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	x, y := ebiten.CursorPosition()

	switch a.round.Phase() {
	case game.PhaseMenu:
		return a.dispatch(hitButton(a.menuButtons, x, y))
	case game.PhaseOver:
		return a.dispatch(hitButton(a.overButtons, x, y))
	}
	return nil
}

// dispatch executes a UI action. All button and shortcut behavior funnels
// through here.
func (a *App) dispatch(action UIAction) error {
	switch action {
	case UIStart, UIRestart:
		a.active = a.themes[a.themeIdx]
		a.round.Start()
		a.scoreSaved = false
	case UIThemePrev:
		a.themeIdx = (a.themeIdx - 1 + len(a.themes)) % len(a.themes)
	case UIThemeNext:
		a.themeIdx = (a.themeIdx + 1) % len(a.themes)
	case UIToMenu:
		a.round.ToMenu()
		a.scoreSaved = false
	case UIQuit:
		return ebiten.Termination
	}
	return nil
}

// currentTheme is the menu selection in the menu, and the locked-in theme
// while a round is running.
func (a *App) currentTheme() theme.Theme {
	if a.round.Phase() == game.PhaseMenu {
		return a.themes[a.themeIdx]
	}
	return a.active
}

// Layout implements ebiten.Game with a fixed logical resolution.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.WindowWidth, a.cfg.WindowHeight
}

// Run opens the window and blocks until the player quits.
func Run(round *game.Round, cfg config.GUIConfig, store *score.Store) error {
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Snake")
	return ebiten.RunGame(NewApp(round, cfg, store))
}
