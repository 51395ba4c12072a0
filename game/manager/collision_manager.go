package manager

import (
	"tile-snake/game/entity"
	"tile-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	HeadCollision // candidate overlaps the current head
	BodyCollision // candidate overlaps a later segment
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies a candidate head position. For BodyCollision the
// returned index is the overlapped segment.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) (CollisionType, int) {
	if cm.isWallCollision(pos) {
		return WallCollision, -1
	}
	switch idx := snake.IndexOf(pos); {
	case idx == 0:
		return HeadCollision, 0
	case idx > 0:
		return BodyCollision, idx
	}
	return NoCollision, -1
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// ValidateSpawnPosition checks if a position is free for food.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
