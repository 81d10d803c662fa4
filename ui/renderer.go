package ui

import (
	"classic-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize      = 20
	borderPadding = 10
)

// Renderer draws frames into the raylib window.
type Renderer struct {
	squareWidth int32
}

func NewRenderer(squareWidth int32) *Renderer {
	return &Renderer{squareWidth: squareWidth}
}

func toRaylib(c Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (r *Renderer) Draw(g *game.Game) {
	frame := BuildFrame(g, r.squareWidth)

	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(toRaylib(frame.Background))
	for _, rect := range frame.Rects {
		rl.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height, toRaylib(rect.Color))
	}

	if frame.Over {
		screenWidth := int32(rl.GetScreenWidth())
		screenHeight := int32(rl.GetScreenHeight())
		rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.Fade(rl.Black, 0.4))

		textWidth := rl.MeasureText(frame.Status, fontSize)
		rl.DrawText(frame.Status, (screenWidth-textWidth)/2, (screenHeight-fontSize)/2, fontSize, rl.White)
		return
	}
	rl.DrawText(frame.Status, borderPadding, borderPadding, fontSize, rl.DarkGray)
}
