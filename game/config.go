package game

import (
	"errors"
	"fmt"
	"time"

	"tile-snake/game/types"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// KeyBindings maps key codes to the four headings.
type KeyBindings struct {
	Left, Up, Right, Down types.Key
}

type binding struct {
	key     types.Key
	heading types.Heading
}

func (kb KeyBindings) bindings() []binding {
	return []binding{
		{kb.Left, types.Left},
		{kb.Up, types.Up},
		{kb.Right, types.Right},
		{kb.Down, types.Down},
	}
}

// Lookup returns the heading bound to k.
func (kb KeyBindings) Lookup(k types.Key) (types.Heading, bool) {
	for _, b := range kb.bindings() {
		if b.key == k {
			return b.heading, true
		}
	}
	return types.Heading{}, false
}

// Palette holds the render colors.
type Palette struct {
	Background types.Color
	Body       types.Color
	Head       types.Color
	Food       types.Color
}

type Config struct {
	Grid         types.Grid
	TileSize     types.Size
	TileMargin   types.Size
	Period       time.Duration
	RestartDelay time.Duration
	Keys         KeyBindings
	Colors       Palette
	// AutoRestart makes the delayed reset after a lost round also resume
	// ticking and input. Without it the caller has to call Start again.
	AutoRestart bool
	Seed        uint64
}

func DefaultConfig() Config {
	return Config{
		Grid:         types.Grid{Width: 27, Height: 20},
		TileSize:     types.Size{X: 50, Y: 50},
		TileMargin:   types.Size{X: 4, Y: 4},
		Period:       100 * time.Millisecond,
		RestartDelay: 1500 * time.Millisecond,
		Keys: KeyBindings{
			Left:  types.KeyLeft,
			Up:    types.KeyUp,
			Right: types.KeyRight,
			Down:  types.KeyDown,
		},
		Colors: Palette{
			Background: types.Color{R: 0x18, G: 0x18, B: 0x18, A: 0xFF},
			Body:       types.Color{R: 0x00, G: 0x88, B: 0x55, A: 0xFF},
			Head:       types.Color{R: 0x88, G: 0xAA, B: 0x55, A: 0xFF},
			Food:       types.Color{R: 0xAA, G: 0x22, B: 0x00, A: 0xFF},
		},
		AutoRestart: true,
		Seed:        1,
	}
}

// StartHead is where Initialize places the head: left of center, vertically
// centered.
func (c Config) StartHead() types.Point {
	return types.Point{X: c.Grid.Width/2 - 1, Y: c.Grid.Height / 2}
}

// Validate checks that the grid can hold the starting body plus food and
// that timings and bindings are usable.
func (c Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if tail := c.StartHead().X - (types.StartLength - 1); tail < 0 {
		return fmt.Errorf("%w: grid width %d too small for a %d-segment start", ErrInvalidConfig, c.Grid.Width, types.StartLength)
	}
	if c.TileSize.X <= 0 || c.TileSize.Y <= 0 {
		return fmt.Errorf("%w: tile size %vx%v", ErrInvalidConfig, c.TileSize.X, c.TileSize.Y)
	}
	if c.TileMargin.X < 0 || c.TileMargin.Y < 0 || 2*c.TileMargin.X >= c.TileSize.X || 2*c.TileMargin.Y >= c.TileSize.Y {
		return fmt.Errorf("%w: tile margin %vx%v does not fit tile %vx%v", ErrInvalidConfig,
			c.TileMargin.X, c.TileMargin.Y, c.TileSize.X, c.TileSize.Y)
	}
	if c.Period <= 0 {
		return fmt.Errorf("%w: period %v", ErrInvalidConfig, c.Period)
	}
	if c.RestartDelay < 0 {
		return fmt.Errorf("%w: restart delay %v", ErrInvalidConfig, c.RestartDelay)
	}
	seen := make(map[types.Key]types.Heading, 4)
	for _, b := range c.Keys.bindings() {
		if prev, dup := seen[b.key]; dup {
			return fmt.Errorf("%w: key %d bound to both %s and %s", ErrInvalidConfig, b.key, prev, b.heading)
		}
		seen[b.key] = b.heading
	}
	return nil
}

// worldSize is the logical drawing size in pixels.
func (c Config) worldSize() (float64, float64) {
	return float64(c.Grid.Width) * c.TileSize.X, float64(c.Grid.Height) * c.TileSize.Y
}
