package game

import (
	"math/rand"
	"time"

	"github.com/DarrenOsborne/snake-arcade/internal/core"
)

// Phase is the round controller's coarse state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// EndReason records why a round entered the terminal state.
type EndReason int

const (
	EndNone EndReason = iota
	EndWallHit
	EndSelfHit
	EndWin
)

// String returns a human-readable name for the end reason.
func (e EndReason) String() string {
	switch e {
	case EndNone:
		return "none"
	case EndWallHit:
		return "wall"
	case EndSelfHit:
		return "self"
	case EndWin:
		return "win"
	default:
		return "unknown"
	}
}

// Config carries the fixed parameters for a round. Both editions are
// configurations of the same contract: the graphical edition uses a larger
// open-bounds board with a shorter move interval, the terminal edition a
// border-walled board with a longer one.
type Config struct {
	Board         Board
	InitialLength int
	MoveInterval  time.Duration

	// Seed feeds the default food picker. 0 means use the current time.
	Seed int64

	// Pick overrides the food selection randomness. Nil uses a seeded
	// math/rand source.
	Pick Picker

	// HighScore is the previously persisted best score.
	HighScore int

	// SaveHighScore persists a new record. Best-effort: errors are the
	// implementation's problem, gameplay never blocks on it. May be nil.
	SaveHighScore func(int)
}

// Round owns the snake, the food, the score, and the terminal state for the
// duration of one round. Presentation adapters only read from it (through
// Snapshot and the accessors) and feed it directional intents and elapsed
// time. Not safe for concurrent use.
type Round struct {
	cfg   Config
	board Board
	snake *Snake

	food    core.Point
	hasFood bool

	// prevBody is the body as it was before the most recent tick, with the
	// old tail retained on growth so every current segment has a previous
	// position to interpolate from.
	prevBody []core.Point

	score  int
	high   int
	phase  Phase
	reason EndReason

	tick uint64
	acc  time.Duration
	pick Picker
}

// NewRound creates a round in the menu phase. Call Start to begin play.
func NewRound(cfg Config) *Round {
	pick := cfg.Pick
	if pick == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		pick = rng.Intn
	}

	r := &Round{
		cfg:   cfg,
		board: cfg.Board,
		high:  cfg.HighScore,
		phase: PhaseMenu,
		pick:  pick,
	}
	r.reset()
	return r
}

// reset rebuilds the per-round state: centered snake, zero score, fresh food.
// The high score carries over.
func (r *Round) reset() {
	if r.snake == nil {
		r.snake = NewSnake(r.board.Width, r.board.Height, r.cfg.InitialLength)
	} else {
		r.snake.Reset(r.board.Width, r.board.Height, r.cfg.InitialLength)
	}
	r.prevBody = append([]core.Point(nil), r.snake.Body...)
	r.score = 0
	r.reason = EndNone
	r.tick = 0
	r.acc = 0
	r.food, r.hasFood = r.board.SpawnFood(r.snake, r.pick)
}

// Start begins a new round: from the menu, from the game-over screen
// (restart), or as the terminal edition's immediate entry into play.
func (r *Round) Start() {
	r.reset()
	r.phase = PhasePlaying
}

// ToMenu abandons the current round and returns to the menu phase.
func (r *Round) ToMenu() {
	r.reset()
	r.phase = PhaseMenu
}

// TogglePause flips between playing and paused. The tick accumulator is
// preserved, so resuming continues from the exact sub-tick state it left.
func (r *Round) TogglePause() {
	switch r.phase {
	case PhasePlaying:
		r.phase = PhasePaused
	case PhasePaused:
		r.phase = PhasePlaying
	}
}

// QueueDirection forwards a directional intent to the snake. Accepted while
// playing or paused; ignored otherwise. Reversal requests and malformed
// vectors are silently dropped by the snake itself.
func (r *Round) QueueDirection(v core.Vector) {
	if r.phase != PhasePlaying && r.phase != PhasePaused {
		return
	}
	r.snake.QueueDirection(v)
}

// Advance accumulates elapsed wall-clock time and executes one simulation
// step for every whole move interval that has passed. Multiple steps can
// fire for a single render frame if the frame was delayed (catch-up, not
// skip). The loop stops immediately on a terminal transition, discarding
// any remaining whole ticks for that frame.
func (r *Round) Advance(dt time.Duration) {
	if r.phase != PhasePlaying {
		return
	}

	r.acc += dt
	for r.acc >= r.cfg.MoveInterval {
		r.acc -= r.cfg.MoveInterval
		r.step()
		if r.phase == PhaseOver {
			r.acc = 0
			break
		}
	}
}

// Step executes exactly one tick regardless of accumulated time.
// Used by tests and anywhere a caller drives the quantum itself.
func (r *Round) Step() {
	if r.phase != PhasePlaying {
		return
	}
	r.step()
}

// step runs the per-tick algorithm: commit the queued direction, compute the
// next head, classify collisions against the not-yet-mutated body, then
// advance and apply growth, score, food, and win-by-fill updates.
func (r *Round) step() {
	r.tick++
	r.snake.CommitDirection()

	next := r.snake.NextHead()
	willGrow := r.hasFood && next == r.food

	switch r.board.CheckCollision(next, r.snake, willGrow) {
	case CollisionWall:
		r.endRound(EndWallHit)
		return
	case CollisionSelf:
		r.endRound(EndSelfHit)
		return
	}

	prev := append([]core.Point(nil), r.snake.Body...)
	r.snake.Advance(willGrow)
	if willGrow {
		// Duplicate the old tail so the grown segment interpolates from it.
		prev = append(prev, prev[len(prev)-1])
	}
	r.prevBody = prev

	if willGrow {
		r.score++
		if r.score > r.high {
			r.high = r.score
			if r.cfg.SaveHighScore != nil {
				r.cfg.SaveHighScore(r.high)
			}
		}
		r.food, r.hasFood = r.board.SpawnFood(r.snake, r.pick)
	}

	if !r.hasFood && r.snake.Len() == r.board.Cells() {
		r.endRound(EndWin)
	}
}

func (r *Round) endRound(reason EndReason) {
	r.phase = PhaseOver
	r.reason = reason
	r.acc = 0
}

// Board returns the round's board configuration.
func (r *Round) Board() Board {
	return r.board
}

// Snake exposes the snake for the presentation adapters. Read-only use.
func (r *Round) Snake() *Snake {
	return r.snake
}

// Food returns the current food position and whether one is present.
func (r *Round) Food() (core.Point, bool) {
	return r.food, r.hasFood
}

// Score returns the current round score.
func (r *Round) Score() int {
	return r.score
}

// HighScore returns the best score seen, including the persisted value the
// round was created with. Monotonically non-decreasing.
func (r *Round) HighScore() int {
	return r.high
}

// Phase returns the controller phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Reason returns why the round ended, or EndNone while it has not.
func (r *Round) Reason() EndReason {
	return r.reason
}

// PrevBody returns the body as of the previous tick, sized to match the
// current body. The graphical edition interpolates between the two.
func (r *Round) PrevBody() []core.Point {
	return r.prevBody
}

// Progress returns how far the accumulator has advanced into the current
// move interval, in [0, 1]. Drives movement interpolation.
func (r *Round) Progress() float64 {
	if r.cfg.MoveInterval <= 0 {
		return 0
	}
	return core.ClampF(float64(r.acc)/float64(r.cfg.MoveInterval), 0, 1)
}

// Snapshot captures the render surface in one immutable value: everything a
// presentation adapter needs for a frame, and everything a determinism test
// needs to compare two rounds.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Reason    EndReason
	Score     int
	HighScore int
	SnakeLen  int
	Head      core.Point
	Dir       core.Vector
	Food      core.Point
	HasFood   bool
}

// Snapshot returns the current round snapshot.
func (r *Round) Snapshot() Snapshot {
	return Snapshot{
		Tick:      r.tick,
		Phase:     r.phase,
		Reason:    r.reason,
		Score:     r.score,
		HighScore: r.high,
		SnakeLen:  r.snake.Len(),
		Head:      r.snake.Head(),
		Dir:       r.snake.Direction(),
		Food:      r.food,
		HasFood:   r.hasFood,
	}
}
