package manager

import (
	"errors"

	"tile-snake/game/entity"
	"tile-snake/game/types"

	"golang.org/x/exp/rand"
)

// ErrNoFreeCell is returned when the body covers every tile.
var ErrNoFreeCell = errors.New("no free cell for food")

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood samples uniformly random tiles until one is free of the body.
// After MaxFoodSamples misses it picks uniformly among the remaining free
// tiles, so a nearly full grid still terminates.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, error) {
	if snake.Len() >= fm.grid.Cells() {
		return types.Point{}, ErrNoFreeCell
	}

	for i := 0; i < types.MaxFoodSamples; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, nil
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		return types.Point{}, ErrNoFreeCell
	}
	return free[fm.rng.Intn(len(free))], nil
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	taken := make(map[types.Point]struct{}, snake.Len())
	for _, p := range snake.Body {
		taken[p] = struct{}{}
	}
	free := make([]types.Point, 0, fm.grid.Cells()-len(taken))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
