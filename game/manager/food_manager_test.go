package manager_test

import (
	"testing"

	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFoodManager(grid types.Grid, seed uint64) *manager.FoodManager {
	return manager.NewFoodManager(grid, seed, manager.NewCollisionManager(grid))
}

// fill grows a snake along a boustrophedon path until it covers n cells.
func fill(grid types.Grid, n int) *entity.Snake {
	var path []types.Point
	for y := uint32(0); y < grid.Rows; y++ {
		for i := uint32(0); i < grid.Cols; i++ {
			x := i
			if y%2 == 1 {
				x = grid.Cols - 1 - i
			}
			path = append(path, types.Point{X: x, Y: y})
		}
	}

	s := entity.NewSnake(path[0], types.Right)
	for _, p := range path[1:n] {
		s.Move(p)
	}
	return s
}

func TestGenerateFood(t *testing.T) {
	t.Run("never lands on the snake", func(t *testing.T) {
		grid := types.Grid{Cols: 6, Rows: 5}
		snake := fill(grid, 20)
		fm := newFoodManager(grid, 7)

		for i := 0; i < 500; i++ {
			food, err := fm.GenerateFood(snake)
			require.NoError(t, err)
			assert.True(t, grid.Contains(food.Pos))
			assert.False(t, snake.Occupies(food.Pos), "food placed on snake at %v", food.Pos)
		}
	})

	t.Run("finds the last free cell", func(t *testing.T) {
		grid := types.Grid{Cols: 4, Rows: 4}
		snake := fill(grid, 15)
		fm := newFoodManager(grid, 1)

		food, err := fm.GenerateFood(snake)
		require.NoError(t, err)
		// Row 3 runs right to left, so its last cell is (0,3).
		assert.Equal(t, types.Point{X: 0, Y: 3}, food.Pos)
	})

	t.Run("full board", func(t *testing.T) {
		grid := types.Grid{Cols: 3, Rows: 2}
		snake := fill(grid, 6)
		fm := newFoodManager(grid, 1)

		_, err := fm.GenerateFood(snake)
		assert.ErrorIs(t, err, manager.ErrBoardFull)
	})

	t.Run("same seed same sequence", func(t *testing.T) {
		grid := types.Grid{Cols: 30, Rows: 20}
		snake := entity.NewSnake(grid.Center(), types.Down)
		a, b := newFoodManager(grid, 99), newFoodManager(grid, 99)

		for i := 0; i < 20; i++ {
			fa, err := a.GenerateFood(snake)
			require.NoError(t, err)
			fb, err := b.GenerateFood(snake)
			require.NoError(t, err)
			assert.Equal(t, fa, fb)
		}
	})
}

func TestValidateSpawnPosition(t *testing.T) {
	grid := types.Grid{Cols: 5, Rows: 5}
	cm := manager.NewCollisionManager(grid)
	snake := entity.NewSnake(types.Point{X: 2, Y: 2}, types.Down)

	assert.True(t, cm.ValidateSpawnPosition(types.Point{X: 0, Y: 0}, snake))
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 2, Y: 2}, snake))
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 5, Y: 0}, snake))
	assert.True(t, cm.ValidateSpawnPosition(types.Point{X: 2, Y: 2}, nil))
}
