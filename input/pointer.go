package input

import "github.com/lixenwraith/vi-pong/component"

// MovePaddle centers the paddle on an arena-space pointer y and clamps it into the arena.
// Pointer values outside the arena are tolerated
func MovePaddle(p *component.Paddle, arena component.Arena, pointerY float64) {
	p.Y = pointerY - p.Height/2
	p.Clamp(arena)
}
