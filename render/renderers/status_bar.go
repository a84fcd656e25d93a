package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/render"
)

const statusHelp = "mouse: paddle  p: pause  m: mute  q: quit"

// StatusBarRenderer draws key hints and pause/mute flags under the arena
type StatusBarRenderer struct {
	style     tcell.Style
	flagStyle tcell.Style
}

func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{
		style:     tcell.StyleDefault.Foreground(constant.StatusColor),
		flagStyle: tcell.StyleDefault.Foreground(constant.BallColor).Bold(true),
	}
}

func (r *StatusBarRenderer) Render(ctx render.RenderContext, world *engine.World) {
	_, height := ctx.Screen.Size()
	row := ctx.Viewport.Rows
	if row >= height {
		return
	}

	col := 0
	if ctx.IsPaused {
		ctx.DrawText(col, row, "[PAUSED] ", r.flagStyle)
		col += len("[PAUSED] ")
	}
	if ctx.IsMuted {
		ctx.DrawText(col, row, "[MUTED] ", r.flagStyle)
		col += len("[MUTED] ")
	}
	ctx.DrawText(col, row, statusHelp, r.style)
}
