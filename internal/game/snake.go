// Package game implements the snake movement and collision engine shared by
// the terminal and graphical editions. It is pure logic: no rendering, no
// input devices, no clocks beyond what the round controller is fed.
package game

import (
	"github.com/DarrenOsborne/snake-arcade/internal/core"
)

// Snake owns the ordered body segment list and the current and pending
// movement directions. The body always has at least one segment during play,
// with the head at index 0 and no duplicate positions while alive.
type Snake struct {
	// Body holds the segments head-first. Readers must not mutate it.
	Body []core.Point

	dir     core.Vector
	pending core.Vector
}

// NewSnake creates a snake in the centered horizontal configuration for a
// board with the given playable dimensions.
func NewSnake(width, height, length int) *Snake {
	s := &Snake{}
	s.Reset(width, height, length)
	return s
}

// Reset reinitializes the snake: head at (width/2, height/2), the remaining
// length-1 segments extending in the negative-x direction, moving right.
// The pending direction starts equal to the current direction.
func (s *Snake) Reset(width, height, length int) {
	head := core.Point{X: width / 2, Y: height / 2}
	s.Body = make([]core.Point, length)
	for i := range s.Body {
		s.Body[i] = core.Point{X: head.X - i, Y: head.Y}
	}
	s.dir = core.Right
	s.pending = core.Right
}

// Head returns the current head position.
func (s *Snake) Head() core.Point {
	return s.Body[0]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Direction returns the committed movement direction.
func (s *Snake) Direction() core.Vector {
	return s.dir
}

// Pending returns the queued direction that the next commit will apply.
func (s *Snake) Pending() core.Vector {
	return s.pending
}

// QueueDirection buffers a direction change for the next tick. A request for
// the exact opposite of the current direction is silently dropped, leaving
// the previously queued value intact. Non-cardinal vectors are ignored.
func (s *Snake) QueueDirection(v core.Vector) {
	if !v.Valid() {
		return
	}
	if v.Opposite(s.dir) {
		return
	}
	s.pending = v
}

// CommitDirection promotes the queued direction to the active one.
// Called exactly once per tick, before the next head is computed.
func (s *Snake) CommitDirection() {
	s.dir = s.pending
}

// NextHead returns the position the head will occupy after the next advance.
func (s *Snake) NextHead() core.Point {
	return s.Head().Add(s.dir)
}

// Advance moves the snake one cell in the committed direction by prepending
// the new head. When grow is false the tail segment is removed, keeping the
// length constant. No validation happens here; the round controller checks
// collisions against the not-yet-mutated body before calling this.
func (s *Snake) Advance(grow bool) {
	newHead := s.NextHead()
	s.Body = append([]core.Point{newHead}, s.Body...)
	if !grow {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Occupies reports whether any body segment is at the given position.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}
