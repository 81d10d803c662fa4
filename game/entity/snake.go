package entity

import (
	"classic-snake/game/types"

	"github.com/kamstrup/intmap"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "hit wall"
	case SelfCollision:
		return "hit self"
	default:
		return "unknown"
	}
}

// Snake keeps its body tail first: body[0] is the tail and the last element
// is the head. Cells returns the head-first view.
type Snake struct {
	body      []types.Point
	direction types.Direction
	occupied  *intmap.Map[uint64, struct{}]
}

func cellKey(p types.Point) uint64 {
	return uint64(p.X)<<32 | uint64(p.Y)
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	s := &Snake{
		body:      []types.Point{startPos},
		direction: dir,
		occupied:  intmap.New[uint64, struct{}](64),
	}
	s.occupied.Put(cellKey(startPos), struct{}{})
	return s
}

func (s *Snake) Move(newHead types.Point) {
	s.body = append(s.body, newHead)
	s.occupied.Put(cellKey(newHead), struct{}{})
}

func (s *Snake) RemoveTail() {
	if len(s.body) > 0 {
		s.occupied.Del(cellKey(s.body[0]))
		s.body = s.body[1:]
	}
}

func (s *Snake) GetHead() types.Point {
	if len(s.body) == 0 {
		panic("snake has no body")
	}
	return s.body[len(s.body)-1]
}

func (s *Snake) GetTail() types.Point {
	if len(s.body) == 0 {
		panic("snake has no body")
	}
	return s.body[0]
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []types.Point {
	cells := make([]types.Point, len(s.body))
	for i, p := range s.body {
		cells[len(s.body)-1-i] = p
	}
	return cells
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

func (s *Snake) SetDirection(dir types.Direction) {
	s.direction = dir
}

// Occupies reports whether any body cell equals p.
func (s *Snake) Occupies(p types.Point) bool {
	_, ok := s.occupied.Get(cellKey(p))
	return ok
}

// Update advances the snake one cell in its current direction. Unless the
// snake ate on the previous tick the tail is released before the self
// collision test, so the head may enter the cell the tail just left. Any
// collision leaves the body untouched.
func (s *Snake) Update(eaten bool, grid types.Grid) CollisionType {
	head := s.GetHead()

	newHead, ok := types.Step(head, s.direction, grid)
	if !ok {
		return WallCollision
	}

	vacated := !eaten && newHead == s.GetTail()
	if s.Occupies(newHead) && !vacated {
		return SelfCollision
	}

	if !eaten {
		s.RemoveTail()
	}
	s.Move(newHead)
	return NoCollision
}
