package renderers

import "github.com/lixenwraith/vi-pong/render"

// RegisterAll adds the standard renderer stack in priority order
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewNetRenderer(), render.PriorityNet)
	o.Register(NewPaddleRenderer(), render.PriorityEntities)
	o.Register(NewBallRenderer(), render.PriorityEntities)
	o.Register(NewStatusBarRenderer(), render.PriorityUI)
}
