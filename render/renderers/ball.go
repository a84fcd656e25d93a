package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/render"
)

// BallRenderer draws the ball as the cells whose centers fall inside it.
// The cell under the ball's center is always drawn so a coarse grid never hides it
type BallRenderer struct{}

func NewBallRenderer() *BallRenderer {
	return &BallRenderer{}
}

func (r *BallRenderer) Render(ctx render.RenderContext, world *engine.World) {
	b := world.Ball
	vp := ctx.Viewport
	style := tcell.StyleDefault.Foreground(b.Color)
	rSq := b.Radius * b.Radius

	c0, c1 := vp.ColSpan(b.Left(), b.Right())
	r0, r1 := vp.RowSpan(b.Top(), b.Bottom())
	for row := r0; row <= r1; row++ {
		dy := vp.ArenaY(row) - b.Y()
		for col := c0; col <= c1; col++ {
			dx := vp.ArenaX(col) - b.X()
			if dx*dx+dy*dy <= rSq {
				ctx.Screen.SetContent(col, row, constant.BlockChar, nil, style)
			}
		}
	}

	ctx.Screen.SetContent(vp.Col(b.X()), vp.Row(b.Y()), constant.BallChar, nil, style)
}
