package game

import (
	"testing"

	"github.com/yurikov/termsnake/internal/core"
)

func TestNewSnakeStartsAtCenterFacingRight(t *testing.T) {
	s := NewSnake(40, 18)

	if s.Len() != 1 {
		t.Errorf("New snake length = %d, expected 1", s.Len())
	}
	if s.Head() != (core.Point{X: 20, Y: 9}) {
		t.Errorf("New snake head = %v, expected grid center", s.Head())
	}
	if s.Facing() != DirRight {
		t.Errorf("New snake facing = %v, expected right", s.Facing())
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		s := NewSnake(10, 10)
		s.facing = d

		s.SetDirection(d.Opposite())
		if s.Facing() != d {
			t.Errorf("Reversal from %v should be ignored, facing = %v", d, s.Facing())
		}
	}
}

func TestSetDirectionAllowsTurns(t *testing.T) {
	s := NewSnake(10, 10) // facing right

	s.SetDirection(DirUp)
	if s.Facing() != DirUp {
		t.Errorf("Turn to up should apply, facing = %v", s.Facing())
	}
	s.SetDirection(DirLeft)
	if s.Facing() != DirLeft {
		t.Errorf("Turn to left should apply, facing = %v", s.Facing())
	}
}

func TestMoveWallCollision(t *testing.T) {
	tests := []struct {
		name   string
		head   core.Point
		facing Direction
	}{
		{"right edge", core.Point{X: 9, Y: 5}, DirRight},
		{"left edge", core.Point{X: 0, Y: 5}, DirLeft},
		{"top edge", core.Point{X: 5, Y: 0}, DirUp},
		{"bottom edge", core.Point{X: 5, Y: 9}, DirDown},
	}

	for _, tt := range tests {
		s := NewSnake(10, 10)
		s.body = []core.Point{tt.head}
		s.facing = tt.facing

		if cause := s.Move(10, 10); cause != DeathWall {
			t.Errorf("%s: Move() = %v, expected DeathWall", tt.name, cause)
		}
	}
}

func TestMoveSelfCollision(t *testing.T) {
	s := NewSnake(10, 10)
	// Hooked body: moving right from (5,5) lands on (6,5).
	s.body = []core.Point{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	s.facing = DirRight

	if cause := s.Move(10, 10); cause != DeathSelf {
		t.Errorf("Move() = %v, expected DeathSelf", cause)
	}
}

func TestMoveIntoCurrentTailCellIsFatal(t *testing.T) {
	// The self-collision check runs against the full pre-move body, so the
	// cell the tail is about to vacate still counts as occupied.
	s := NewSnake(10, 10)
	s.body = []core.Point{
		{X: 1, Y: 1}, // Head
		{X: 2, Y: 1},
		{X: 2, Y: 2},
		{X: 1, Y: 2}, // Tail, directly below the head
	}
	s.facing = DirDown

	if cause := s.Move(10, 10); cause != DeathSelf {
		t.Errorf("Move into tail cell = %v, expected DeathSelf", cause)
	}
}

func TestMoveAdvancesWithoutGrowth(t *testing.T) {
	s := NewSnake(10, 10)
	head := s.Head()

	if cause := s.Move(10, 10); cause != DeathNone {
		t.Fatalf("Move() = %v, expected success", cause)
	}
	if s.Len() != 1 {
		t.Errorf("Length after plain move = %d, expected 1", s.Len())
	}
	if s.Head() != head.Add(1, 0) {
		t.Errorf("Head after move = %v, expected %v", s.Head(), head.Add(1, 0))
	}
}

func TestMarkGrowthExtendsOnNextMove(t *testing.T) {
	s := NewSnake(10, 10)
	tail := s.Head()

	s.MarkGrowth()
	if cause := s.Move(10, 10); cause != DeathNone {
		t.Fatalf("Move() = %v, expected success", cause)
	}

	if s.Len() != 2 {
		t.Errorf("Length after growth move = %d, expected 2", s.Len())
	}
	if s.growing {
		t.Error("Growth flag should clear after the move")
	}
	if !s.Occupies(tail) {
		t.Error("Old head cell should remain part of the body after growth")
	}

	// The following move must not grow again.
	if cause := s.Move(10, 10); cause != DeathNone {
		t.Fatalf("Move() = %v, expected success", cause)
	}
	if s.Len() != 2 {
		t.Errorf("Length after follow-up move = %d, expected 2", s.Len())
	}
}

func TestMarkGrowthIdempotent(t *testing.T) {
	s := NewSnake(10, 10)

	s.MarkGrowth()
	s.MarkGrowth()
	s.Move(10, 10)

	if s.Len() != 2 {
		t.Errorf("Double MarkGrowth should grow once, length = %d", s.Len())
	}
}

func TestDirectionDeltas(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		dx, dy := d.Delta()
		if dx*dx+dy*dy != 1 {
			t.Errorf("%v delta (%d, %d) is not a unit step", d, dx, dy)
		}
		ox, oy := d.Opposite().Delta()
		if ox != -dx || oy != -dy {
			t.Errorf("%v opposite delta (%d, %d), expected (%d, %d)", d, ox, oy, -dx, -dy)
		}
	}
}
