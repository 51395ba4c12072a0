package metrics

import (
	"testing"

	"tile-snake/game"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveCountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	bus := game.NewEventBus()
	c.Observe(bus)

	bus.Emit(game.Event{Type: game.EventRoundReset, Length: 5})
	bus.Emit(game.Event{Type: game.EventTick, Length: 6})
	bus.Emit(game.Event{Type: game.EventFoodEaten, Length: 6, Score: 1})
	bus.Emit(game.Event{Type: game.EventTick, Length: 6})
	bus.Emit(game.Event{Type: game.EventSelfBite, Length: 3})
	bus.Emit(game.Event{Type: game.EventRoundLost})
	bus.Emit(game.Event{Type: game.EventRoundLost})
	bus.Emit(game.Event{Type: game.EventRoundWon})

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"ticks", testutil.ToFloat64(c.Ticks), 2},
		{"food", testutil.ToFloat64(c.FoodEaten), 1},
		{"bites", testutil.ToFloat64(c.SelfBites), 1},
		{"lost", testutil.ToFloat64(c.Rounds.WithLabelValues("lost")), 2},
		{"won", testutil.ToFloat64(c.Rounds.WithLabelValues("won")), 1},
		{"length", testutil.ToFloat64(c.Length), 6},
		{"high score", testutil.ToFloat64(c.HighScore), 1},
	}
	for _, ch := range checks {
		if ch.got != ch.want {
			t.Fatalf("%s = %v, want %v", ch.name, ch.got, ch.want)
		}
	}
}

func TestHighScoreKeepsMaximum(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	bus := game.NewEventBus()
	c.Observe(bus)
	for _, s := range []int{1, 2, 3, 1} {
		bus.Emit(game.Event{Type: game.EventFoodEaten, Score: s})
	}
	if got := testutil.ToFloat64(c.HighScore); got != 3 {
		t.Fatalf("high score = %v, want 3", got)
	}
}

func TestNewCollectorReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("first NewCollector: %v", err)
	}
	second, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("second NewCollector: %v", err)
	}
	first.Ticks.Inc()
	if got := testutil.ToFloat64(second.Ticks); got != 1 {
		t.Fatalf("second collector does not share ticks: %v", got)
	}
}
