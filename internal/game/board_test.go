package game

import (
	"testing"

	"github.com/DarrenOsborne/snake-arcade/internal/core"
)

// firstCell always picks index 0, making food placement deterministic.
func firstCell(int) int { return 0 }

func TestOpenBoundsWallCollision(t *testing.T) {
	b := Board{Width: 10, Height: 10, Walls: OpenBounds}
	s := NewSnake(10, 10, 1)

	tests := []struct {
		name     string
		p        core.Point
		expected Collision
	}{
		{"inside center", core.Point{X: 4, Y: 4}, CollisionNone},
		{"top-left corner", core.Point{X: 0, Y: 0}, CollisionNone},
		{"bottom-right corner", core.Point{X: 9, Y: 9}, CollisionNone},
		{"left of board", core.Point{X: -1, Y: 5}, CollisionWall},
		{"right of board", core.Point{X: 10, Y: 5}, CollisionWall},
		{"above board", core.Point{X: 5, Y: -1}, CollisionWall},
		{"below board", core.Point{X: 5, Y: 10}, CollisionWall},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.CheckCollision(tc.p, s, false); got != tc.expected {
				t.Errorf("CheckCollision(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestBorderWallCollision(t *testing.T) {
	b := Board{Width: 40, Height: 20, Walls: BorderWall}
	s := NewSnake(40, 20, 1)

	tests := []struct {
		name     string
		p        core.Point
		expected Collision
	}{
		{"interior", core.Point{X: 20, Y: 10}, CollisionNone},
		{"min playable corner", core.Point{X: 1, Y: 1}, CollisionNone},
		{"max playable corner", core.Point{X: 40, Y: 20}, CollisionNone},
		{"left border", core.Point{X: 0, Y: 10}, CollisionWall},
		{"right border", core.Point{X: 41, Y: 10}, CollisionWall},
		{"top border", core.Point{X: 20, Y: 0}, CollisionWall},
		{"bottom border", core.Point{X: 20, Y: 21}, CollisionWall},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.CheckCollision(tc.p, s, false); got != tc.expected {
				t.Errorf("CheckCollision(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestSelfCollisionExcludesVacatingTail(t *testing.T) {
	b := Board{Width: 10, Height: 10, Walls: OpenBounds}

	// Body: head (5,5), then (4,5), (3,5). Tail is (3,5).
	s := NewSnake(10, 10, 3)
	tail := s.Body[s.Len()-1]

	// Non-growing move onto the tail cell is fine: the tail vacates it.
	if got := b.CheckCollision(tail, s, false); got != CollisionNone {
		t.Errorf("moving onto a vacating tail = %v, expected none", got)
	}

	// The same move while growing hits: the tail stays put.
	if got := b.CheckCollision(tail, s, true); got != CollisionSelf {
		t.Errorf("growing onto the tail = %v, expected self collision", got)
	}

	// A non-tail segment hits either way.
	mid := s.Body[1]
	if got := b.CheckCollision(mid, s, false); got != CollisionSelf {
		t.Errorf("moving onto a mid segment = %v, expected self collision", got)
	}
	if got := b.CheckCollision(mid, s, true); got != CollisionSelf {
		t.Errorf("growing onto a mid segment = %v, expected self collision", got)
	}
}

func TestSpawnFoodAvoidsSnake(t *testing.T) {
	b := Board{Width: 6, Height: 6, Walls: OpenBounds}
	s := NewSnake(6, 6, 3)

	// Walk every possible pick index and confirm none lands on the snake.
	freeCells := b.Cells() - s.Len()
	for i := 0; i < freeCells; i++ {
		idx := i
		p, ok := b.SpawnFood(s, func(int) int { return idx })
		if !ok {
			t.Fatalf("SpawnFood returned no cell with %d free cells", freeCells)
		}
		if s.Occupies(p) {
			t.Errorf("food spawned on snake at %v", p)
		}
		if !b.Inside(p) {
			t.Errorf("food spawned out of bounds at %v", p)
		}
	}
}

func TestSpawnFoodFullBoard(t *testing.T) {
	b := Board{Width: 2, Height: 2, Walls: OpenBounds}

	// Hand-build a snake occupying all four cells.
	s := NewSnake(2, 2, 1)
	s.Body = []core.Point{{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}}

	if _, ok := b.SpawnFood(s, firstCell); ok {
		t.Error("SpawnFood should return no cell on a full board")
	}
}

func TestSpawnFoodBorderWallInterior(t *testing.T) {
	b := Board{Width: 4, Height: 3, Walls: BorderWall}
	s := NewSnake(4, 3, 1)

	for i := 0; i < b.Cells()-1; i++ {
		idx := i
		p, ok := b.SpawnFood(s, func(int) int { return idx })
		if !ok {
			t.Fatal("SpawnFood returned no cell on a mostly empty board")
		}
		if p.X < 1 || p.X > 4 || p.Y < 1 || p.Y > 3 {
			t.Errorf("food %v outside border-wall interior [1,4]x[1,3]", p)
		}
	}
}

func TestBoardCells(t *testing.T) {
	open := Board{Width: 28, Height: 20, Walls: OpenBounds}
	if open.Cells() != 560 {
		t.Errorf("open Cells() = %d, expected 560", open.Cells())
	}
	walled := Board{Width: 40, Height: 20, Walls: BorderWall}
	if walled.Cells() != 800 {
		t.Errorf("walled Cells() = %d, expected 800", walled.Cells())
	}
}
