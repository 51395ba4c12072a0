package ui

import (
	"tile-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fill struct {
	rect  rl.Rectangle
	color rl.Color
}

// Canvas is a retained drawing surface: fills are recorded in screen space
// and replayed every frame by Draw.
type Canvas struct {
	width, height float64
	sx, sy        float64
	ops           []fill
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: float64(width), height: float64(height), sx: 1, sy: 1}
}

// Resize updates the physical size reported by Size.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = float64(width), float64(height)
}

func (c *Canvas) Size() (float64, float64) {
	return c.width, c.height
}

func (c *Canvas) SetScale(sx, sy float64) {
	c.sx, c.sy = sx, sy
}

// FillRect records a scaled fill. A fill covering the whole canvas hides
// everything beneath it, so older fills are dropped.
func (c *Canvas) FillRect(x, y, w, h float64, col types.Color) {
	rect := rl.Rectangle{
		X:      float32(x * c.sx),
		Y:      float32(y * c.sy),
		Width:  float32(w * c.sx),
		Height: float32(h * c.sy),
	}
	if rect.X <= 0 && rect.Y <= 0 && rect.X+rect.Width >= float32(c.width) && rect.Y+rect.Height >= float32(c.height) {
		c.ops = c.ops[:0]
	}
	c.ops = append(c.ops, fill{rect: rect, color: toRaylib(col)})
}

// Draw replays the recorded fills. Call between BeginDrawing and EndDrawing.
func (c *Canvas) Draw() {
	for _, op := range c.ops {
		rl.DrawRectangleRec(op.rect, op.color)
	}
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
