package entity

import (
	"reflect"
	"testing"

	"tile-snake/game/types"
)

func TestNewSnakeLaysOutLeftwards(t *testing.T) {
	s := NewSnake(types.Point{X: 12, Y: 10}, 5)
	want := []types.Point{{X: 12, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	if !reflect.DeepEqual(s.Body, want) {
		t.Fatalf("body = %v, want %v", s.Body, want)
	}
	if s.GetHead() != (types.Point{X: 12, Y: 10}) {
		t.Fatalf("head = %v", s.GetHead())
	}
}

func TestMoveAndRemoveTail(t *testing.T) {
	s := NewSnake(types.Point{X: 2, Y: 0}, 3)
	s.Move(types.Point{X: 3, Y: 0})
	s.RemoveTail()
	want := []types.Point{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}}
	if !reflect.DeepEqual(s.Body, want) {
		t.Fatalf("body = %v, want %v", s.Body, want)
	}
}

func TestTruncateAndIndexOf(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 1}, 5)
	if got := s.IndexOf(types.Point{X: 3, Y: 1}); got != 2 {
		t.Fatalf("IndexOf = %d, want 2", got)
	}
	if s.Occupies(types.Point{X: 0, Y: 0}) {
		t.Fatalf("Occupies reported a free cell")
	}
	s.Truncate(2)
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	s.Truncate(10)
	if s.Len() != 2 {
		t.Fatalf("Truncate beyond length changed body: %v", s.Body)
	}
}

func TestSegmentsIsACopy(t *testing.T) {
	s := NewSnake(types.Point{X: 1, Y: 1}, 2)
	seg := s.Segments()
	seg[0] = types.Point{X: 9, Y: 9}
	if s.GetHead() == seg[0] {
		t.Fatalf("Segments aliases the body")
	}
}
