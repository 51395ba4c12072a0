package game

import (
	"errors"
	"fmt"
	"time"

	"tile-snake/game/entity"
	"tile-snake/game/manager"
	"tile-snake/game/types"
	"tile-snake/logging"
)

// Scheduler runs callbacks later. Both methods return a cancel func that is
// safe to call more than once.
type Scheduler interface {
	Every(period time.Duration, fn func()) (cancel func())
	After(delay time.Duration, fn func()) (cancel func())
}

// Outcome is what a single Step did.
type Outcome int

const (
	OutcomeIgnored Outcome = iota // round already over, waiting for reset
	OutcomeMoved
	OutcomeAte
	OutcomeBitten // ran into its own body and lost the segments behind
	OutcomeLost
	OutcomeWon // food could not be placed, the body fills the grid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeBitten:
		return "bitten"
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	}
	return "unknown"
}

// Option customizes an Engine.
type Option func(*Engine)

func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithEventBus shares an existing bus so observers can subscribe before the
// first Initialize.
func WithEventBus(b *EventBus) Option {
	return func(e *Engine) { e.events = b }
}

// WithClock sets the wall clock used for round durations.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// Engine owns the whole game state. It is not safe for concurrent use: the
// scheduler and input source must call back on one goroutine.
type Engine struct {
	cfg     Config
	surface Surface
	input   InputSource
	sched   Scheduler
	log     logging.Logger
	events  *EventBus
	now     func() time.Time

	collisions *manager.CollisionManager
	foods      *manager.FoodManager
	state      *manager.StateManager

	snake       *entity.Snake
	heading     types.Heading // pending, applied on the next Step
	lastHeading types.Heading // applied by the most recent Step
	food        types.Point
	hasFood     bool

	cancelTick    func()
	cancelInput   func()
	cancelRestart func()
}

func NewEngine(cfg Config, surface Surface, input InputSource, sched Scheduler, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if surface == nil || input == nil || sched == nil {
		return nil, errors.New("new engine: surface, input and scheduler are required")
	}

	e := &Engine{
		cfg:     cfg,
		surface: surface,
		input:   input,
		sched:   sched,
		log:     logging.Noop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.events == nil {
		e.events = NewEventBus()
	}

	e.collisions = manager.NewCollisionManager(cfg.Grid)
	e.foods = manager.NewFoodManager(cfg.Grid, e.collisions, cfg.Seed)
	e.state = manager.NewStateManager(e.now)
	e.snake = entity.NewSnake(cfg.StartHead(), types.StartLength)
	e.heading, e.lastHeading = types.Right, types.Right
	return e, nil
}

// Initialize resets the round to the starting layout and draws it. It also
// drops a pending delayed reset.
func (e *Engine) Initialize() {
	if e.cancelRestart != nil {
		e.cancelRestart()
		e.cancelRestart = nil
	}
	e.applyScale()

	e.heading, e.lastHeading = types.Right, types.Right
	e.snake = entity.NewSnake(e.cfg.StartHead(), types.StartLength)
	if err := e.relocateFood(); err != nil {
		// Validate guarantees room for food next to the starting body.
		e.log.Error("place food", logging.Any("error", err))
	}
	round := e.state.BeginRound()

	e.log.Info("round initialized",
		logging.String("round", round),
		logging.Any("food", e.food))
	e.emit(EventRoundReset, e.snake.GetHead())
	e.Render()
}

// Start listens for input and begins ticking. Calling it while running does
// nothing.
func (e *Engine) Start() {
	if e.state.State() == types.Running {
		return
	}
	e.cancelInput = e.input.Subscribe(func(k types.Key) { e.HandleKey(k) })
	e.cancelTick = e.sched.Every(e.cfg.Period, func() { e.Step() })
	e.state.SetState(types.Running)
}

// Stop cancels the tick and removes the input listener together. It is safe
// to call when already stopped.
func (e *Engine) Stop() {
	if e.cancelTick != nil {
		e.cancelTick()
		e.cancelTick = nil
	}
	if e.cancelInput != nil {
		e.cancelInput()
		e.cancelInput = nil
	}
	e.state.SetState(types.Stopped)
}

// Shutdown stops the engine and drops any pending delayed reset.
func (e *Engine) Shutdown() {
	e.Stop()
	if e.cancelRestart != nil {
		e.cancelRestart()
		e.cancelRestart = nil
	}
}

// Step advances the simulation by one tick and renders.
func (e *Engine) Step() Outcome {
	outcome := e.advance()
	if outcome != OutcomeIgnored {
		e.emit(EventTick, e.snake.GetHead())
	}
	e.Render()
	return outcome
}

func (e *Engine) advance() Outcome {
	if e.state.Ended() {
		return OutcomeIgnored
	}

	e.lastHeading = e.heading
	newHead := e.snake.GetHead().Add(e.lastHeading)

	bitten := false
	switch kind, idx := e.collisions.CheckCollision(newHead, e.snake); kind {
	case manager.WallCollision, manager.HeadCollision:
		e.endRound(false, newHead)
		return OutcomeLost
	case manager.BodyCollision:
		e.snake.Truncate(idx)
		bitten = true
	}

	ate := e.hasFood && e.collisions.IsFoodCollision(newHead, e.food)
	e.snake.Move(newHead)
	if !ate {
		e.snake.RemoveTail()
	}
	if bitten {
		e.emit(EventSelfBite, newHead)
	}

	if !ate {
		if bitten {
			return OutcomeBitten
		}
		return OutcomeMoved
	}

	e.state.RecordFood()
	e.emit(EventFoodEaten, newHead)
	if err := e.relocateFood(); err != nil {
		if errors.Is(err, manager.ErrNoFreeCell) {
			e.endRound(true, newHead)
			return OutcomeWon
		}
		e.log.Error("relocate food", logging.Any("error", err))
	}
	return OutcomeAte
}

func (e *Engine) relocateFood() error {
	food, err := e.foods.GenerateFood(e.snake)
	if err != nil {
		e.hasFood = false
		return fmt.Errorf("relocate food: %w", err)
	}
	e.food, e.hasFood = food, true
	return nil
}

// endRound stops the engine and schedules the delayed reset.
func (e *Engine) endRound(won bool, at types.Point) {
	e.Stop()
	summary := e.state.EndRound(won)

	typ, msg := EventRoundLost, "round lost"
	if won {
		typ, msg = EventRoundWon, "round won"
	}
	e.log.Info(msg,
		logging.String("round", summary.ID),
		logging.Int("score", summary.Score),
		logging.Any("at", at),
		logging.Any("duration", summary.Duration))
	e.emit(typ, at)

	e.cancelRestart = e.sched.After(e.cfg.RestartDelay, e.restart)
}

func (e *Engine) restart() {
	e.cancelRestart = nil
	e.Initialize()
	if e.cfg.AutoRestart {
		e.Start()
	}
}

// Resize recomputes the scale after the surface changed size and redraws.
func (e *Engine) Resize() {
	e.applyScale()
	e.Render()
}

func (e *Engine) emit(t EventType, at types.Point) {
	e.events.Emit(Event{
		Type:   t,
		Round:  e.state.RoundID(),
		Pos:    at,
		Length: e.snake.Len(),
		Score:  e.state.Score(),
	})
}

// Body returns a copy of the segments, head first.
func (e *Engine) Body() []types.Point { return e.snake.Segments() }

// Food returns the food tile; ok is false when no food is placed.
func (e *Engine) Food() (p types.Point, ok bool) { return e.food, e.hasFood }

// Heading returns the pending heading.
func (e *Engine) Heading() types.Heading { return e.heading }

func (e *Engine) State() types.RoundState   { return e.state.State() }
func (e *Engine) Score() int                { return e.state.Score() }
func (e *Engine) HighScore() int            { return e.state.GetHighScore() }
func (e *Engine) ScoreHistory() []int       { return e.state.GetScoreHistory() }
func (e *Engine) Stats() manager.ScoreStats { return e.state.Stats() }
func (e *Engine) RoundID() string           { return e.state.RoundID() }
func (e *Engine) Events() *EventBus         { return e.events }
func (e *Engine) Config() Config            { return e.cfg }

// RoundOver reports whether the round has ended and awaits a reset.
func (e *Engine) RoundOver() bool { return e.state.Ended() }

// SetFood places the food directly. It exists for scripted scenarios and
// rejects tiles outside the grid or under the body.
func (e *Engine) SetFood(p types.Point) error {
	if !e.collisions.ValidateSpawnPosition(p, e.snake) {
		return fmt.Errorf("set food %v: tile is outside the grid or occupied", p)
	}
	e.food, e.hasFood = p, true
	return nil
}
