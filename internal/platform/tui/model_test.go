package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/DarrenOsborne/snake-arcade/internal/game"
	"github.com/DarrenOsborne/snake-arcade/internal/theme"
)

func newTestModel() Model {
	round := game.NewRound(game.Config{
		Board:         game.Board{Width: 20, Height: 10, Walls: game.BorderWall},
		InitialLength: 4,
		MoveInterval:  100 * time.Millisecond,
		Pick:          func(n int) int { return 0 },
	})
	round.Start()
	return NewModel(round, nil, theme.Themes()[0].Terminal)
}

func TestViewDrawsPlayfield(t *testing.T) {
	m := newTestModel()
	view := m.View()

	if !strings.Contains(view, "@") {
		t.Error("view should contain the snake head")
	}
	if !strings.Contains(view, "o") {
		t.Error("view should contain the snake body")
	}
	if !strings.Contains(view, "*") {
		t.Error("view should contain the food")
	}
	if !strings.Contains(view, "#") {
		t.Error("view should contain the border")
	}
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should contain the status bar")
	}
}

func TestViewShowsPauseIndicator(t *testing.T) {
	m := newTestModel()
	m.round.TogglePause()

	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused round should show the PAUSED indicator")
	}
}

func TestViewShowsGameOverDialog(t *testing.T) {
	m := newTestModel()
	// Snake heads right from the center; run it into the wall.
	m.round.Advance(time.Hour)

	if m.round.Phase() != game.PhaseOver {
		t.Fatalf("Phase = %v, expected over", m.round.Phase())
	}

	view := m.View()
	if !strings.Contains(view, "GAME OVER") {
		t.Error("ended round should show the game-over dialog")
	}
	if !strings.Contains(view, "Press R to restart or Q to quit") {
		t.Error("game-over dialog should show restart instructions")
	}
}

func TestViewShowsMenuPrompt(t *testing.T) {
	m := newTestModel()
	m.round.Advance(time.Hour) // game over
	m.round.ToMenu()

	view := m.View()
	if !strings.Contains(view, "SNAKE") {
		t.Error("menu should show the title")
	}
	if !strings.Contains(view, "Press Enter to start") {
		t.Error("menu should show the start prompt")
	}
	if strings.Contains(view, "@") {
		t.Error("menu should not draw the snake")
	}
}

func TestTickAdvancesRound(t *testing.T) {
	m := newTestModel()

	base := time.Now()
	model, _ := m.Update(TickMsg(base))
	m = model.(Model)
	model, _ = m.Update(TickMsg(base.Add(100 * time.Millisecond)))
	m = model.(Model)

	if got := m.round.Snapshot().Tick; got != 1 {
		t.Errorf("Tick = %d, expected 1 after a full interval between frames", got)
	}
}

func TestTickClampsStalledFrames(t *testing.T) {
	m := newTestModel()

	base := time.Now()
	model, _ := m.Update(TickMsg(base))
	m = model.(Model)
	// A multi-second stall only advances by the cap.
	model, _ = m.Update(TickMsg(base.Add(5 * time.Second)))
	m = model.(Model)

	want := uint64(maxFrameDelta / (100 * time.Millisecond))
	if got := m.round.Snapshot().Tick; got != want {
		t.Errorf("Tick = %d, expected %d after a stalled frame", got, want)
	}
}

func TestKeyRestartAfterGameOver(t *testing.T) {
	m := newTestModel()
	m.round.Advance(time.Hour)
	if m.round.Phase() != game.PhaseOver {
		t.Fatal("round should be over")
	}

	model, _ := m.Update(keyMsg("r"))
	m = model.(Model)

	if m.round.Phase() != game.PhasePlaying {
		t.Errorf("Phase = %v, expected playing after restart", m.round.Phase())
	}
}

func TestKeyQueuesDirection(t *testing.T) {
	m := newTestModel()

	model, _ := m.Update(keyMsg("up"))
	m = model.(Model)

	if m.round.Snake().Pending().DY != -1 {
		t.Errorf("Pending() = %v, expected up", m.round.Snake().Pending())
	}
}
