package manager

import (
	"errors"

	"classic-snake/game/entity"
	"classic-snake/game/types"

	"golang.org/x/exp/rand"
)

var ErrBoardFull = errors.New("no free cell left for food")

// Rejected random draws per board cell before falling back to a scan.
const drawsPerCell = 4

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, seed uint64, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood draws uniformly random cells until one is not covered by the
// snake. Once the draw budget is spent it picks uniformly among the cells
// that are still free, and reports ErrBoardFull when there are none.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (entity.Food, error) {
	budget := fm.grid.Cells() * drawsPerCell
	for i := 0; i < budget; i++ {
		food := types.Point{
			X: uint32(fm.rng.Intn(int(fm.grid.Cols))),
			Y: uint32(fm.rng.Intn(int(fm.grid.Rows))),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return entity.NewFood(food), nil
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		return entity.Food{}, ErrBoardFull
	}
	return entity.NewFood(free[fm.rng.Intn(len(free))]), nil
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	free := make([]types.Point, 0, fm.grid.Cells())
	for i := 0; i < fm.grid.Cells(); i++ {
		p := fm.grid.At(uint32(i))
		if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
			free = append(free, p)
		}
	}
	return free
}
