package ui

import (
	"context"
	"time"

	"classic-snake/game"
	"classic-snake/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const targetFPS = 60

// WindowFrontend runs the game in a raylib window. Esc or closing the window
// ends the session.
type WindowFrontend struct {
	Title            string
	SquareWidth      int32
	UpdatesPerSecond int
}

var windowKeys = map[int32]game.Key{
	rl.KeyUp:    game.KeyUp,
	rl.KeyDown:  game.KeyDown,
	rl.KeyLeft:  game.KeyLeft,
	rl.KeyRight: game.KeyRight,
}

func (w *WindowFrontend) Run(ctx context.Context, g *game.Game) error {
	width := int32(g.Grid.Cols) * w.SquareWidth
	height := int32(g.Grid.Rows) * w.SquareWidth

	rl.InitWindow(width, height, w.Title)
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(targetFPS)

	logging.LogDebug("window %dx%d opened", width, height)

	renderer := NewRenderer(w.SquareWidth)
	ticker := NewTicker(w.UpdatesPerSecond)

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return nil
		}

		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			g.Handle(game.Event{Kind: game.PressEvent, Key: windowKeys[key]}, renderer)
		}

		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		for n := ticker.Advance(dt); n > 0; n-- {
			if !g.Handle(game.Event{Kind: game.UpdateEvent}, renderer) {
				break
			}
		}

		g.Handle(game.Event{Kind: game.RenderEvent}, renderer)
	}
	return nil
}
