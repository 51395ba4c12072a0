package entity

import (
	"tile-snake/game/types"
)

// Snake is the player body, head first.
type Snake struct {
	Body []types.Point
}

// NewSnake lays out length segments leftwards from head.
func NewSnake(head types.Point, length int) *Snake {
	body := make([]types.Point, 0, length)
	for i := 0; i < length; i++ {
		body = append(body, types.Point{X: head.X - i, Y: head.Y})
	}
	return &Snake{Body: body}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Move inserts the new head at the front.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Truncate keeps only the first n segments.
func (s *Snake) Truncate(n int) {
	if n < len(s.Body) {
		s.Body = s.Body[:n]
	}
}

// IndexOf returns the index of the segment at p, or -1.
func (s *Snake) IndexOf(p types.Point) int {
	for i, part := range s.Body {
		if part == p {
			return i
		}
	}
	return -1
}

func (s *Snake) Occupies(p types.Point) bool {
	return s.IndexOf(p) != -1
}

// Segments returns a copy of the body.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, len(s.Body))
	copy(out, s.Body)
	return out
}
