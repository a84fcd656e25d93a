package component

import "github.com/lixenwraith/vi-pong/constant"

// Arena is the fixed play field. Bounds all clamping and collision math
type Arena struct {
	Width, Height float64
}

// DefaultArena returns the build-time arena dimensions
func DefaultArena() Arena {
	return Arena{Width: constant.ArenaWidth, Height: constant.ArenaHeight}
}

func (a Arena) CenterX() float64 { return a.Width / 2 }
func (a Arena) CenterY() float64 { return a.Height / 2 }
