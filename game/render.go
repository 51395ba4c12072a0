package game

import "tile-snake/game/types"

// Surface is a 2D drawing target. Coordinates passed to FillRect are scaled
// by the last SetScale call.
type Surface interface {
	// Size returns the physical drawing size in pixels.
	Size() (width, height float64)
	// SetScale replaces the current transform with a pure scale.
	SetScale(sx, sy float64)
	FillRect(x, y, w, h float64, c types.Color)
}

// Render draws the background, the body (head in its own color) and the
// food. It does not change game state.
func (e *Engine) Render() {
	w, h := e.cfg.worldSize()
	e.surface.FillRect(0, 0, w, h, e.cfg.Colors.Background)

	for i, part := range e.snake.Body {
		color := e.cfg.Colors.Body
		if i == 0 {
			color = e.cfg.Colors.Head
		}
		e.fillTile(part, color)
	}

	if e.hasFood {
		e.fillTile(e.food, e.cfg.Colors.Food)
	}
}

func (e *Engine) fillTile(p types.Point, c types.Color) {
	size, margin := e.cfg.TileSize, e.cfg.TileMargin
	e.surface.FillRect(
		size.X*float64(p.X)+margin.X,
		size.Y*float64(p.Y)+margin.Y,
		size.X-margin.X*2,
		size.Y-margin.Y*2,
		c,
	)
}

// applyScale maps the logical grid onto the surface's physical size.
func (e *Engine) applyScale() {
	pw, ph := e.surface.Size()
	w, h := e.cfg.worldSize()
	e.surface.SetScale(pw/w, ph/h)
}
