package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells is the total number of tiles.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

type Point struct {
	X, Y int
}

// Add moves p one tile along h.
func (p Point) Add(h Heading) Point {
	if h.Axis == AxisX {
		p.X += h.Sign
	} else {
		p.Y += h.Sign
	}
	return p
}

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Heading is an axis plus a signed unit step.
type Heading struct {
	Axis Axis
	Sign int
}

var (
	Left  = Heading{Axis: AxisX, Sign: -1}
	Up    = Heading{Axis: AxisY, Sign: -1}
	Right = Heading{Axis: AxisX, Sign: 1}
	Down  = Heading{Axis: AxisY, Sign: 1}
)

func (h Heading) String() string {
	switch h {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return fmt.Sprintf("%s%+d", h.Axis, h.Sign)
}

// Key is a keyboard key code as reported by the input source.
type Key int32

// Arrow key codes used by the desktop window layer.
const (
	KeyRight Key = 262
	KeyLeft  Key = 263
	KeyDown  Key = 264
	KeyUp    Key = 265
)

type Color struct {
	R, G, B, A uint8
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Size is a pixel pair used for tile size and margin.
type Size struct {
	X, Y float64
}

// RoundState is whether the tick is currently driving the round.
type RoundState int

const (
	Stopped RoundState = iota
	Running
)

func (s RoundState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Game constants
const (
	StartLength    = 5 // Segments in a freshly initialized body
	MaxScores      = 50
	MaxFoodSamples = 64 // Random draws before falling back to a free-cell scan
)
