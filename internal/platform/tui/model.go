package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DarrenOsborne/snake-arcade/internal/core"
	"github.com/DarrenOsborne/snake-arcade/internal/game"
	"github.com/DarrenOsborne/snake-arcade/internal/score"
	"github.com/DarrenOsborne/snake-arcade/internal/theme"
)

// Playfield characters, window border included.
const (
	wallChar = '#'
	headChar = '@'
	bodyChar = 'o'
	foodChar = '*'
)

// maxFrameDelta caps the elapsed time fed into the round, so a stalled
// terminal doesn't make the snake teleport across the board.
const maxFrameDelta = 250 * time.Millisecond

// Edition tag recorded with scores from this adapter.
const editionTUI = "tui"

// Model is the Bubble Tea model for the terminal edition.
type Model struct {
	round      *game.Round
	screen     *core.Screen
	store      *score.Store
	keys       *KeyMapper
	palette    theme.TerminalPalette
	lastTick   time.Time
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model around the given round.
// store may be nil; score history is then skipped.
func NewModel(round *game.Round, store *score.Store, pal theme.TerminalPalette) Model {
	board := round.Board()
	// One status row on top, then the bordered window.
	return Model{
		round:   round,
		screen:  core.NewScreen(board.Width+2, board.Height+3),
		store:   store,
		keys:    NewKeyMapper(),
		palette: pal,
	}
}

// Init starts the round and the frame loop.
func (m Model) Init() tea.Cmd {
	m.round.Start()
	return tickCmd(frameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if dir, ok := action.Direction(); ok {
		m.round.QueueDirection(dir)
		return m, nil
	}

	switch action {
	case core.ActionConfirm:
		if m.round.Phase() == game.PhaseMenu {
			m.round.Start()
			m.scoreSaved = false
		}
	case core.ActionPause:
		m.round.TogglePause()
	case core.ActionRestart:
		if m.round.Phase() == game.PhaseOver {
			m.round.Start()
			m.scoreSaved = false
		}
	case core.ActionMenu:
		if m.round.Phase() == game.PhaseOver {
			m.round.ToMenu()
		}
	}

	return m, nil
}

// handleTick advances the round by the measured frame time.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	m.round.Advance(dt)

	// Save score on game over (once)
	if m.round.Phase() == game.PhaseOver && !m.scoreSaved {
		if m.store != nil && m.round.Score() > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.Save(editionTUI, m.round.Score())
		}
		m.scoreSaved = true
	}

	return m, tickCmd(frameRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen)
}

// render draws the status bar, bordered window, snake, and overlays.
func (m *Model) render() {
	dst := m.screen
	dst.Clear()

	board := m.round.Board()
	window := core.NewRect(0, 1, board.Width+2, board.Height+2)

	m.renderStatusBar()
	dst.DrawBox(window, wallChar, m.palette.Wall)

	if m.round.Phase() == game.PhaseMenu {
		m.renderMenu(window)
		return
	}

	// Board coordinates already include the border offset; shift down
	// past the status row.
	if food, ok := m.round.Food(); ok {
		dst.SetColored(food.X, food.Y+1, foodChar, m.palette.Food)
	}
	for i, seg := range m.round.Snake().Body {
		ch, c := bodyChar, m.palette.Body
		if i == 0 {
			ch, c = headChar, m.palette.Head
		}
		dst.SetColored(seg.X, seg.Y+1, ch, c)
	}

	if m.round.Phase() == game.PhaseOver {
		m.renderGameOver(window)
	}
}

// renderStatusBar draws the score line above the window.
func (m *Model) renderStatusBar() {
	status := fmt.Sprintf(
		" Score: %d High Score: %d (Arrows/WASD to move, P to pause, Q to quit)",
		m.round.Score(), m.round.HighScore(),
	)
	m.screen.DrawColoredText(0, 0, status, m.palette.Text)

	if m.round.Phase() == game.PhasePaused {
		pauseMsg := " PAUSED "
		m.screen.DrawColoredText(m.screen.Width()-len(pauseMsg), 0, pauseMsg, m.palette.Food)
	}
}

// renderMenu draws the start prompt inside the empty window.
func (m *Model) renderMenu(window core.Rect) {
	_, cy := window.Center()
	m.screen.DrawTextCentered(cy-1, "SNAKE")
	m.screen.DrawTextCentered(cy+1, "Press Enter to start")
}

// renderGameOver draws the end-of-round dialog over the final board.
func (m *Model) renderGameOver(window core.Rect) {
	title := " GAME OVER "
	if m.round.Reason() == game.EndWin {
		title = " YOU WIN! "
	}
	lines := []string{
		title,
		fmt.Sprintf(" Score: %d  High Score: %d ", m.round.Score(), m.round.HighScore()),
		" Press R to restart or Q to quit ",
	}

	_, cy := window.Center()
	startY := cy - len(lines)/2
	for i, line := range lines {
		m.screen.DrawTextCentered(startY+i, line)
	}
}

// Run starts the Bubble Tea program with the given model.
func Run(round *game.Round, store *score.Store, pal theme.TerminalPalette) error {
	p := tea.NewProgram(
		NewModel(round, store, pal),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
