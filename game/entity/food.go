package entity

import "grid-snake/game/types"

// Food is the single apple on the board.
type Food struct {
	Position types.Point
}

func NewFood(pos types.Point) *Food {
	return &Food{Position: pos}
}

// CheckEaten reports whether head sits on the food.
func (f *Food) CheckEaten(head types.Point) bool {
	return f.Position == head
}
