package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckMove classifies the cell a snake is about to enter. Only the boundary
// can be judged before the move; self collision depends on where the tail ends up.
func (cm *CollisionManager) CheckMove(next types.Point) CollisionType {
	if cm.isWallCollision(next) {
		return WallCollision
	}
	return NoCollision
}

// CheckSnake classifies a snake after it has moved.
func (cm *CollisionManager) CheckSnake(snake *entity.Snake) CollisionType {
	if cm.isWallCollision(snake.GetHead()) {
		return WallCollision
	}
	if snake.CheckSelfCollision() {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return food != nil && food.CheckEaten(pos)
}
