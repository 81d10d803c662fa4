package game

import (
	"fmt"
	"time"

	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"
	"classic-snake/logging"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Outcome describes why a game stopped.
type Outcome int

const (
	Running Outcome = iota
	HitWall
	HitSelf
	BoardFull
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case HitWall:
		return "hit wall"
	case HitSelf:
		return "hit self"
	case BoardFull:
		return "board full"
	default:
		return "unknown"
	}
}

type Game struct {
	UUID      string
	Grid      types.Grid
	Score     uint32
	Ticks     uint64
	StartTime time.Time

	snake     *entity.Snake
	food      entity.Food
	eaten     bool
	direction types.Direction // Pending, committed on the next tick
	outcome   Outcome

	foodMgr *manager.FoodManager
	logger  *log.Logger
}

// NewGame places a one cell snake in the middle of the grid facing down and
// the first food block at (1,1). seed drives food placement.
func NewGame(grid types.Grid, seed uint64) (*Game, error) {
	gameUUID := uuid.New().String()

	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		UUID:      gameUUID,
		Grid:      grid,
		StartTime: time.Now(),
		snake:     entity.NewSnake(grid.Center(), types.InitialDirection),
		direction: types.InitialDirection,
		foodMgr:   manager.NewFoodManager(grid, seed, collisionMgr),
		logger:    logging.With("game", gameUUID[:8]),
	}

	// Tiny boards can put the fixed food cell under the snake or off the grid.
	if collisionMgr.ValidateSpawnPosition(types.InitialFood, g.snake) {
		g.food = entity.NewFood(types.InitialFood)
	} else {
		food, err := g.foodMgr.GenerateFood(g.snake)
		if err != nil {
			return nil, fmt.Errorf("placing initial food: %w", err)
		}
		g.food = food
	}

	g.logger.Info("game started", "cols", grid.Cols, "rows", grid.Rows, "seed", seed, "food", g.food.Pos)
	return g, nil
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Food() entity.Food {
	return g.food
}

// PlaceFood replaces the current food block.
func (g *Game) PlaceFood(p types.Point) {
	g.food = entity.NewFood(p)
}

func (g *Game) Eaten() bool {
	return g.eaten
}

// Direction is the direction the snake will take on the next tick.
func (g *Game) Direction() types.Direction {
	return g.direction
}

func (g *Game) Over() bool {
	return g.outcome != Running
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

func (g *Game) Summary() string {
	return fmt.Sprintf("Your score was: %d!", g.Score)
}

// Pressed handles a key press. Arrow keys steer the snake unless they point
// back along the direction it last moved; everything else is ignored.
func (g *Game) Pressed(key Key) {
	dir, ok := key.Direction()
	if !ok {
		return
	}
	if dir == g.snake.Direction().Opposite() {
		return
	}
	g.direction = dir
}

// Update runs one simulation tick and reports whether the game is still
// running. Once it returns false the state is frozen.
func (g *Game) Update() bool {
	if g.Over() {
		return false
	}
	g.Ticks++

	g.snake.SetDirection(g.direction)
	switch g.snake.Update(g.eaten, g.Grid) {
	case entity.WallCollision:
		return g.finish(HitWall)
	case entity.SelfCollision:
		return g.finish(HitSelf)
	}

	if g.eaten {
		g.Score++
		g.eaten = false
	}

	g.eaten = g.food.IsEaten(g.snake)
	if g.eaten {
		g.logger.Debug("food eaten", "at", g.food.Pos, "score", g.Score, "length", g.snake.Len())

		food, err := g.foodMgr.GenerateFood(g.snake)
		if err != nil {
			// The last block still counts.
			g.Score++
			g.eaten = false
			g.logger.Warn("cannot place food", "err", err)
			return g.finish(BoardFull)
		}
		g.food = food
	}
	return true
}

func (g *Game) finish(outcome Outcome) bool {
	g.outcome = outcome
	g.logger.Info("game over",
		"outcome", outcome,
		"score", g.Score,
		"length", g.snake.Len(),
		"ticks", g.Ticks,
		"elapsed", time.Since(g.StartTime).Round(time.Millisecond))
	return false
}
