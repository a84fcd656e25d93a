package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/render"
)

// NetRenderer draws the dashed center line. Rows are sampled at their centers so dashes
// and gaps stay distinct when a row spans most of a dash
type NetRenderer struct {
	style tcell.Style
}

func NewNetRenderer() *NetRenderer {
	return &NetRenderer{style: tcell.StyleDefault.Foreground(constant.NetColor)}
}

func (r *NetRenderer) Render(ctx render.RenderContext, world *engine.World) {
	a := world.Arena
	vp := ctx.Viewport
	c0, c1 := vp.ColSpan(a.CenterX()-constant.NetWidth/2, a.CenterX()+constant.NetWidth/2)

	for row := 0; row < vp.Rows; row++ {
		if math.Mod(vp.ArenaY(row), constant.NetDash*2) >= constant.NetDash {
			continue
		}
		for col := c0; col <= c1; col++ {
			ctx.Screen.SetContent(col, row, constant.NetChar, nil, r.style)
		}
	}
}
