package types

import "fmt"

// Point is a single grid cell.
type Point struct {
	X, Y uint32
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Cols uint32
	Rows uint32
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X < g.Cols && p.Y < g.Rows
}

// Center is the spawn cell of a new snake.
func (g Grid) Center() Point {
	return Point{X: g.Cols / 2, Y: g.Rows / 2}
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return int(g.Cols) * int(g.Rows)
}

// At returns the cell at a row-major position.
func (g Grid) At(index uint32) Point {
	return Point{X: index % g.Cols, Y: index / g.Cols}
}

// Game constants
const (
	DefaultCols      = 30
	DefaultRows      = 20
	SquareWidth      = 20 // Pixels per cell
	UpdatesPerSecond = 8
)

// InitialFood is where the first food block is placed.
var InitialFood = Point{X: 1, Y: 1}
