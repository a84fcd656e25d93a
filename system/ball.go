package system

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/physics"
)

// BallSystem moves the ball and resolves walls, paddles and exits, in that order
type BallSystem struct {
	spin float64
}

func NewBallSystem() engine.System {
	return &BallSystem{spin: constant.SpinFactor}
}

func (s *BallSystem) Priority() int {
	return constant.PriorityBall
}

func (s *BallSystem) Update(w *engine.World) {
	ball := &w.Ball

	physics.Integrate(ball)

	if physics.ReflectVertical(ball, w.Arena) {
		w.PushEvent(event.EventWallBounce, 0)
	}

	if physics.Collides(ball, &w.Player) {
		physics.Deflect(ball, &w.Player, component.SideLeft, s.spin)
		w.PushEvent(event.EventPaddleHit, component.SideLeft)
	}

	if physics.Collides(ball, &w.Opponent) {
		physics.Deflect(ball, &w.Opponent, component.SideRight, s.spin)
		w.PushEvent(event.EventPaddleHit, component.SideRight)
	}

	if side, out := physics.ExitSide(ball, w.Arena); out {
		ResetBall(w)
		w.PushEvent(event.EventBallReset, side)
	}
}

// ResetBall re-serves the ball from the arena center. The horizontal direction is a coin
// flip regardless of which side it left through; |dx| is the base speed and dy is uniform in
// [-0.7*speed, +0.7*speed)
func ResetBall(w *engine.World) {
	ball := &w.Ball
	ball.Pos[0] = w.Arena.CenterX()
	ball.Pos[1] = w.Arena.CenterY()

	dir := -1.0
	if w.Rand.Float64() > 0.5 {
		dir = 1.0
	}
	ball.Vel[0] = dir * ball.Speed
	ball.Vel[1] = (w.Rand.Float64() - 0.5) * 2 * ball.Speed * constant.ResetSpreadFactor
}
