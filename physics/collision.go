package physics

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Collides reports whether the ball's bounding circle overlaps the paddle rectangle.
// Exact tangency is not a collision
func Collides(ball *component.Ball, paddle *component.Paddle) bool {
	return vmath.CircleRectOverlap(ball.Pos[0], ball.Pos[1], ball.Radius, paddle.Bounds())
}

// Deflect resolves a paddle hit. side is the wall the paddle defends; the ball is moved just
// outside the paddle's leading edge, dx inverted and contact-offset spin added to dy.
// Paddle velocity plays no part in the spin
func Deflect(ball *component.Ball, paddle *component.Paddle, side component.Side, spin float64) {
	switch side {
	case component.SideLeft:
		ball.Pos[0] = paddle.X + paddle.Width + ball.Radius
	case component.SideRight:
		ball.Pos[0] = paddle.X - ball.Radius
	}
	ball.Vel[0] = -ball.Vel[0]
	ball.Vel[1] += (ball.Pos[1] - paddle.CenterY()) * spin
}
