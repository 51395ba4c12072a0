// Package metrics exposes game activity as Prometheus collectors.
package metrics

import (
	"errors"
	"fmt"

	"tile-snake/game"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector bundles the game metrics.
type Collector struct {
	Ticks     prometheus.Counter
	FoodEaten prometheus.Counter
	SelfBites prometheus.Counter
	Rounds    *prometheus.CounterVec
	Length    prometheus.Gauge
	HighScore prometheus.Gauge

	highScore int
}

// NewCollector registers the game metrics against reg, defaulting to the
// global registry when nil. Already registered collectors are reused.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snake_ticks_total",
			Help: "Simulation ticks processed.",
		}),
		FoodEaten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snake_food_eaten_total",
			Help: "Food tiles eaten.",
		}),
		SelfBites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snake_self_bites_total",
			Help: "Ticks where the head ran into the body and cut it short.",
		}),
		Rounds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "snake_rounds_total",
			Help: "Finished rounds, labeled by outcome.",
		}, []string{"outcome"}),
		Length: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "snake_length",
			Help: "Current body length in segments.",
		}),
		HighScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "snake_high_score",
			Help: "Best round score since start.",
		}),
	}

	var err error
	if c.Ticks, err = register(reg, c.Ticks, "snake_ticks_total"); err != nil {
		return nil, err
	}
	if c.FoodEaten, err = register(reg, c.FoodEaten, "snake_food_eaten_total"); err != nil {
		return nil, err
	}
	if c.SelfBites, err = register(reg, c.SelfBites, "snake_self_bites_total"); err != nil {
		return nil, err
	}
	if c.Rounds, err = register(reg, c.Rounds, "snake_rounds_total"); err != nil {
		return nil, err
	}
	if c.Length, err = register(reg, c.Length, "snake_length"); err != nil {
		return nil, err
	}
	if c.HighScore, err = register(reg, c.HighScore, "snake_high_score"); err != nil {
		return nil, err
	}
	return c, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T, name string) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}

// Observe subscribes the collector to engine events.
func (c *Collector) Observe(bus *game.EventBus) {
	bus.Subscribe(game.EventTick, func(e game.Event) {
		c.Ticks.Inc()
		c.Length.Set(float64(e.Length))
	})
	bus.Subscribe(game.EventFoodEaten, func(e game.Event) {
		c.FoodEaten.Inc()
		c.observeScore(e.Score)
	})
	bus.Subscribe(game.EventSelfBite, func(game.Event) { c.SelfBites.Inc() })
	bus.Subscribe(game.EventRoundLost, func(game.Event) { c.Rounds.WithLabelValues("lost").Inc() })
	bus.Subscribe(game.EventRoundWon, func(game.Event) { c.Rounds.WithLabelValues("won").Inc() })
	bus.Subscribe(game.EventRoundReset, func(e game.Event) { c.Length.Set(float64(e.Length)) })
}

func (c *Collector) observeScore(score int) {
	c.highScore = max(c.highScore, score)
	c.HighScore.Set(float64(c.highScore))
}
