package physics

import "github.com/lixenwraith/vi-pong/component"

// Integrate advances the ball by one frame of its velocity
func Integrate(ball *component.Ball) {
	ball.Pos = ball.Pos.Add(ball.Vel)
}

// ReflectVertical bounces the ball off the top and bottom walls.
// The ball is clamped onto the wall and dy inverted with no energy loss.
// Returns true if a wall was hit
func ReflectVertical(ball *component.Ball, arena component.Arena) bool {
	hit := false
	if ball.Top() < 0 {
		ball.Pos[1] = ball.Radius
		ball.Vel[1] = -ball.Vel[1]
		hit = true
	}
	if ball.Bottom() > arena.Height {
		ball.Pos[1] = arena.Height - ball.Radius
		ball.Vel[1] = -ball.Vel[1]
		hit = true
	}
	return hit
}

// ExitSide reports which side wall the ball has crossed, if any
func ExitSide(ball *component.Ball, arena component.Arena) (component.Side, bool) {
	if ball.Left() < 0 {
		return component.SideLeft, true
	}
	if ball.Right() > arena.Width {
		return component.SideRight, true
	}
	return 0, false
}
