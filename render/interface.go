package render

import "github.com/lixenwraith/vi-pong/engine"

// SystemRenderer paints one layer of the frame. Implementations read the world and must not
// mutate it
type SystemRenderer interface {
	Render(ctx RenderContext, world *engine.World)
}
