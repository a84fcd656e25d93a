package system

import (
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/engine"
)

// OpponentSystem steers the right paddle toward the ball's height.
// Inside the dead zone around its center the paddle holds still
type OpponentSystem struct {
	deadZone float64
}

func NewOpponentSystem() engine.System {
	return &OpponentSystem{deadZone: constant.OpponentDeadZone}
}

func (s *OpponentSystem) Priority() int {
	return constant.PriorityOpponent
}

func (s *OpponentSystem) Update(w *engine.World) {
	p := &w.Opponent
	center := p.CenterY()
	ballY := w.Ball.Y()

	switch {
	case ballY < center-s.deadZone:
		p.Y -= p.Speed
	case ballY > center+s.deadZone:
		p.Y += p.Speed
	}
	p.Clamp(w.Arena)
}
