package types

// Direction rappresenta una direzione cardinale
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// InitialDirection is the facing of a freshly spawned snake.
const InitialDirection = Down

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Step moves p one cell towards d. The second result is false when the move
// would leave the grid, in which case p is returned unchanged.
func Step(p Point, d Direction, grid Grid) (Point, bool) {
	switch d {
	case Up:
		if p.Y == 0 {
			return p, false
		}
		p.Y--
	case Down:
		if p.Y+1 >= grid.Rows {
			return p, false
		}
		p.Y++
	case Left:
		if p.X == 0 {
			return p, false
		}
		p.X--
	case Right:
		if p.X+1 >= grid.Cols {
			return p, false
		}
		p.X++
	default:
		return p, false
	}
	return p, true
}
