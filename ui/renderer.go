package ui

import (
	"fmt"

	"tile-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const hudPadding = 10

type Renderer struct {
	screenWidth  int32
	screenHeight int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Draw presents one frame: the canvas contents plus a score line.
func (r *Renderer) Draw(c *Canvas, e *game.Engine) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.Black)
	c.Draw()

	fontSize := max(r.screenHeight/30, 12)
	status := e.State().String()
	if e.RoundOver() {
		status = "round over"
	}
	hud := fmt.Sprintf("Score: %d   High: %d   %s", e.Score(), e.HighScore(), status)
	rl.DrawText(hud, hudPadding, hudPadding, fontSize, rl.RayWhite)

	if e.RoundOver() {
		msg := "GAME OVER"
		if _, ok := e.Food(); !ok {
			msg = "GRID FILLED"
		}
		big := fontSize * 3
		w := rl.MeasureText(msg, big)
		rl.DrawText(msg, (r.screenWidth-w)/2, (r.screenHeight-big)/2, big, rl.Gold)
	}
}
