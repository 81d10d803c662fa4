package entity

import "classic-snake/game/types"

// Food is a single block on the board. It is replaced, never moved.
type Food struct {
	Pos types.Point
}

func NewFood(pos types.Point) Food {
	return Food{Pos: pos}
}

// IsEaten reports whether the snake's head sits on the food.
func (f Food) IsEaten(s *Snake) bool {
	return s.GetHead() == f.Pos
}
