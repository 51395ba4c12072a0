package ui

import (
	"tile-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type listener struct {
	id int
	fn func(types.Key)
}

// Keyboard is the window's key press source. Listeners run inside Poll, on
// the frame loop goroutine.
type Keyboard struct {
	next      int
	listeners []listener
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Subscribe(fn func(types.Key)) func() {
	k.next++
	id := k.next
	k.listeners = append(k.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range k.listeners {
			if l.id == id {
				k.listeners = append(k.listeners[:i], k.listeners[i+1:]...)
				return
			}
		}
	}
}

// Poll drains the keys pressed since the last frame and dispatches them.
func (k *Keyboard) Poll() {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		for _, l := range append([]listener(nil), k.listeners...) {
			l.fn(types.Key(key))
		}
	}
}
