package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/render"
)

// PaddleRenderer draws both paddles in their own colors
type PaddleRenderer struct{}

func NewPaddleRenderer() *PaddleRenderer {
	return &PaddleRenderer{}
}

func (r *PaddleRenderer) Render(ctx render.RenderContext, world *engine.World) {
	drawPaddle(ctx, world.Player)
	drawPaddle(ctx, world.Opponent)
}

// drawPaddle takes the paddle by value so the renderer cannot write through to the world
func drawPaddle(ctx render.RenderContext, p component.Paddle) {
	style := tcell.StyleDefault.Foreground(p.Color)
	ctx.FillRect(p.X, p.Y, p.X+p.Width, p.Y+p.Height, constant.PaddleChar, style)
}
