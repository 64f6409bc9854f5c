package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when every grid cell is taken and no food can be placed.
var ErrBoardFull = errors.New("no free cell left for food")

type FoodManager struct {
	rng  *rand.Rand
	food *entity.Food
}

func NewFoodManager(seed uint64) *FoodManager {
	return &FoodManager{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Food returns the current food, nil before the first successful Respawn.
func (fm *FoodManager) Food() *entity.Food {
	return fm.food
}

// Respawn places the food on a uniformly random grid cell not in occupied.
func (fm *FoodManager) Respawn(occupied []types.Point, grid types.Grid) (*entity.Food, error) {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		if grid.Contains(p) {
			taken[p] = struct{}{}
		}
	}

	free := grid.Cells() - len(taken)
	if free <= 0 {
		fm.food = nil
		return nil, errors.Wrapf(ErrBoardFull, "%dx%d grid", grid.Width, grid.Height)
	}

	// Walk to the k-th free cell so every free cell is equally likely.
	k := fm.rng.Intn(free)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; ok {
				continue
			}
			if k == 0 {
				fm.food = entity.NewFood(p)
				return fm.food, nil
			}
			k--
		}
	}
	panic("unreachable: free cell count out of sync with grid")
}

// Place puts the food on a fixed cell.
func (fm *FoodManager) Place(p types.Point) *entity.Food {
	fm.food = entity.NewFood(p)
	return fm.food
}
