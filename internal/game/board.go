package game

import (
	"github.com/DarrenOsborne/snake-arcade/internal/core"
)

// WallPolicy selects how a board's playable interior maps to coordinates.
type WallPolicy int

const (
	// OpenBounds boards expose the playable interior as [0,w) x [0,h).
	// Used by the graphical edition.
	OpenBounds WallPolicy = iota

	// BorderWall boards reserve a 1-cell border as wall, shifting the
	// playable interior to [1,w] x [1,h]. Used by the terminal edition.
	BorderWall
)

// Collision classifies the outcome of a prospective head position.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

// String returns a human-readable name for the collision kind.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Picker selects an index in [0, n). It abstracts the randomness used for
// food placement so tests can supply deterministic selection.
type Picker func(n int) int

// Board describes a fixed-size play area. Width and Height count playable
// interior cells regardless of wall policy.
type Board struct {
	Width  int
	Height int
	Walls  WallPolicy
}

// MinX returns the smallest playable x coordinate.
func (b Board) MinX() int {
	if b.Walls == BorderWall {
		return 1
	}
	return 0
}

// MinY returns the smallest playable y coordinate.
func (b Board) MinY() int {
	if b.Walls == BorderWall {
		return 1
	}
	return 0
}

// Inside reports whether p lies within the playable interior.
func (b Board) Inside(p core.Point) bool {
	return p.X >= b.MinX() && p.X < b.MinX()+b.Width &&
		p.Y >= b.MinY() && p.Y < b.MinY()+b.Height
}

// Cells returns the number of playable cells.
func (b Board) Cells() int {
	return b.Width * b.Height
}

// CheckCollision classifies the prospective head position against the walls
// and the snake's own body. The tail cell is excluded from the self check
// only when the move will not grow, because a growing move leaves the tail
// in place.
func (b Board) CheckCollision(next core.Point, s *Snake, willGrow bool) Collision {
	if !b.Inside(next) {
		return CollisionWall
	}

	checkLen := s.Len()
	if !willGrow && checkLen > 0 {
		checkLen-- // tail vacates its cell this tick
	}
	for i := 0; i < checkLen; i++ {
		if s.Body[i] == next {
			return CollisionSelf
		}
	}
	return CollisionNone
}

// SpawnFood selects a uniformly random free interior cell using the supplied
// picker. The second return value is false when the snake occupies every
// cell, which is the win-by-fill trigger.
func (b Board) SpawnFood(s *Snake, pick Picker) (core.Point, bool) {
	free := make([]core.Point, 0, b.Cells()-s.Len())
	for y := b.MinY(); y < b.MinY()+b.Height; y++ {
		for x := b.MinX(); x < b.MinX()+b.Width; x++ {
			p := core.Point{X: x, Y: y}
			if !s.Occupies(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return core.Point{}, false
	}
	return free[pick(len(free))], true
}
