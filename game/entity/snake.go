package entity

import (
	"grid-snake/game/types"
)

// Snake holds the body cells head first. Direction is the heading applied on
// the last move; next is the heading buffered for the coming one.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	next      types.Direction
	grow      int
}

// NewSnake lays out length cells starting at head and trailing away from dir.
func NewSnake(head types.Point, dir types.Direction, length int) *Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite().ToPoint()
	body := make([]types.Point, length)
	body[0] = head
	for i := 1; i < length; i++ {
		body[i] = body[i-1].Add(back)
	}
	return &Snake{
		Body:      body,
		Direction: dir,
		next:      dir,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection buffers dir for the next move. A request to turn straight back
// on the current heading is dropped and reports false.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.NONE || dir.IsOpposite(s.Direction) {
		return false
	}
	s.next = dir
	return true
}

// NextDirection returns the heading the next move will use.
func (s *Snake) NextDirection() types.Direction {
	return s.next
}

// NextHead is the cell the head will enter on the next Move.
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.next.ToPoint())
}

// Grow schedules n extra segments; each one keeps the tail in place for one move.
func (s *Snake) Grow(n int) {
	if n > 0 {
		s.grow += n
	}
}

// Move advances the head one cell along the buffered heading. Every other
// segment takes the place of the one ahead of it.
func (s *Snake) Move() {
	s.Direction = s.next
	newHead := s.NextHead()

	if s.grow > 0 {
		s.grow--
		s.Body = append(s.Body, types.Point{})
	}
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}

// CheckSelfCollision reports whether the head shares a cell with any other segment.
func (s *Snake) CheckSelfCollision() bool {
	head := s.GetHead()
	for _, p := range s.Body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

func (s *Snake) Occupies(p types.Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}
