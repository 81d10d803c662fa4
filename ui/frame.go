package ui

import (
	"fmt"

	"classic-snake/game"
)

type Color struct {
	R, G, B, A uint8
}

var (
	BackgroundColor = Color{R: 255, G: 255, B: 255, A: 255}
	SnakeColor      = Color{R: 209, G: 51, B: 139, A: 255}
	FoodColor       = Color{R: 224, G: 112, B: 0, A: 255}
)

// Rect is a filled square in pixel space.
type Rect struct {
	X, Y, Width, Height int32
	Color               Color
}

// Frame is everything a renderer needs for one picture: clear the
// background, then fill Rects in order.
type Frame struct {
	Background Color
	Rects      []Rect
	Status     string
	Over       bool
}

// BuildFrame lays out one rectangle per snake cell, head first, followed by
// the food. Pixel coordinates are cell coordinates times squareWidth.
func BuildFrame(g *game.Game, squareWidth int32) Frame {
	cells := g.Snake().Cells()
	rects := make([]Rect, 0, len(cells)+1)
	for _, p := range cells {
		rects = append(rects, square(int32(p.X), int32(p.Y), squareWidth, SnakeColor))
	}
	food := g.Food().Pos
	rects = append(rects, square(int32(food.X), int32(food.Y), squareWidth, FoodColor))

	return Frame{
		Background: BackgroundColor,
		Rects:      rects,
		Status:     status(g),
		Over:       g.Over(),
	}
}

func square(x, y, width int32, color Color) Rect {
	return Rect{X: x * width, Y: y * width, Width: width, Height: width, Color: color}
}

func status(g *game.Game) string {
	if g.Over() {
		return fmt.Sprintf("Game over (%s). Score: %d", g.Outcome(), g.Score)
	}
	return fmt.Sprintf("Score: %d", g.Score)
}
