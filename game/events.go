package game

import "tile-snake/game/types"

type EventType int

const (
	EventTick EventType = iota
	EventFoodEaten
	EventSelfBite
	EventRoundLost
	EventRoundWon
	EventRoundReset
)

func (t EventType) String() string {
	switch t {
	case EventTick:
		return "tick"
	case EventFoodEaten:
		return "food_eaten"
	case EventSelfBite:
		return "self_bite"
	case EventRoundLost:
		return "round_lost"
	case EventRoundWon:
		return "round_won"
	case EventRoundReset:
		return "round_reset"
	}
	return "unknown"
}

type Event struct {
	Type   EventType
	Round  string
	Pos    types.Point // head position, or where food was eaten
	Length int         // body length after the event
	Score  int
}

type EventHandler func(Event)

// EventBus delivers events synchronously, in subscription order.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventTick; t <= EventRoundReset; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
