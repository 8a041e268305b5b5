package game

import (
	"github.com/yurikov/termsnake/internal/core"
)

// DeathCause tells how a move killed the snake. DeathNone means the move
// succeeded. Death is an expected terminal game event, not an error.
type DeathCause int

const (
	DeathNone DeathCause = iota
	DeathWall
	DeathSelf
)

func (c DeathCause) String() string {
	switch c {
	case DeathNone:
		return "alive"
	case DeathWall:
		return "wall collision"
	case DeathSelf:
		return "self collision"
	default:
		return "unknown"
	}
}

// Snake is the ordered body of the snake, head first, tail last, plus its
// current heading and a pending-growth flag set when food was eaten.
type Snake struct {
	body    []core.Point
	facing  Direction
	growing bool
}

// NewSnake creates a length-1 snake at the grid center, facing right.
func NewSnake(gridW, gridH int) *Snake {
	return &Snake{
		body:   []core.Point{{X: gridW / 2, Y: gridH / 2}},
		facing: DirRight,
	}
}

// Head returns the current head cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Body returns the body cells, head first. The slice is shared; callers must
// not mutate it.
func (s *Snake) Body() []core.Point {
	return s.body
}

// Len returns the body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// Facing returns the current heading.
func (s *Snake) Facing() Direction {
	return s.facing
}

// Occupies reports whether any body cell is at p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// SetDirection changes the heading. A request for the exact opposite of the
// current heading is ignored to prevent an instant reversal into the body.
func (s *Snake) SetDirection(d Direction) {
	if d == s.facing.Opposite() {
		return
	}
	s.facing = d
}

// MarkGrowth makes the snake keep its tail on the next move. Idempotent.
func (s *Snake) MarkGrowth() {
	s.growing = true
}

// Move advances the head one cell in the current heading within a
// gridW x gridH board. Leaving the board is DeathWall. Landing on any
// pre-move body cell is DeathSelf; the check deliberately includes the tail
// cell that is about to be vacated this tick, so moving into the current
// tail position still kills the snake. On success the head is prepended and
// the tail dropped unless growth was pending, in which case the flag clears
// and the snake gains one cell.
func (s *Snake) Move(gridW, gridH int) DeathCause {
	dx, dy := s.facing.Delta()
	newHead := s.Head().Add(dx, dy)

	if !newHead.In(gridW, gridH) {
		return DeathWall
	}
	if s.Occupies(newHead) {
		return DeathSelf
	}

	s.body = append([]core.Point{newHead}, s.body...)
	if s.growing {
		s.growing = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}
	return DeathNone
}
