// Package core provides fundamental types shared by the game engine and the
// two presentation adapters. It contains no external dependencies (especially
// no Bubble Tea and no Ebitengine) to keep game logic pure and testable.
package core

// Point is an integer 2D grid coordinate, zero-indexed.
type Point struct {
	X, Y int
}

// Add returns the point shifted by the given direction vector.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Vector is a movement direction. Only the four predefined cardinal values
// (Up, Down, Left, Right) are valid for snake movement.
type Vector struct {
	DX, DY int
}

// The four cardinal directions.
var (
	Up    = Vector{0, -1}
	Down  = Vector{0, 1}
	Left  = Vector{-1, 0}
	Right = Vector{1, 0}
)

// Valid reports whether v is one of the four cardinal unit vectors.
func (v Vector) Valid() bool {
	return v == Up || v == Down || v == Left || v == Right
}

// Opposite reports whether v points in the exact opposite direction of other.
func (v Vector) Opposite(other Vector) bool {
	return v.DX == -other.DX && v.DY == -other.DY
}

// String returns a human-readable name for the direction.
func (v Vector) String() string {
	switch v {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// Rect represents an axis-aligned rectangle used for layout and for
// button hit testing in the graphical edition.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp linearly interpolates between a and b by t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
