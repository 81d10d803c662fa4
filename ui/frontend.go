package ui

import (
	"context"

	"classic-snake/game"
)

// Frontend owns the host loop: it turns window or terminal events into game
// events until the player quits or ctx is cancelled.
type Frontend interface {
	Run(ctx context.Context, g *game.Game) error
}
