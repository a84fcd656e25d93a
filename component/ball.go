package component

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/vi-pong/constant"
)

// Ball is the only moving body. Radius and Speed are fixed for the session
type Ball struct {
	Pos    mgl64.Vec2 // center
	Vel    mgl64.Vec2 // units per frame
	Radius float64
	Speed  float64 // base speed used to reseed velocity on reset
	Color  tcell.Color
}

// NewBall centers the ball in the arena with the session-start velocity
func NewBall(a Arena) Ball {
	return Ball{
		Pos:    mgl64.Vec2{a.CenterX(), a.CenterY()},
		Vel:    mgl64.Vec2{constant.BallInitialDX, constant.BallInitialDY},
		Radius: constant.BallRadius,
		Speed:  constant.BallSpeed,
		Color:  constant.BallColor,
	}
}

func (b *Ball) X() float64  { return b.Pos.X() }
func (b *Ball) Y() float64  { return b.Pos.Y() }
func (b *Ball) DX() float64 { return b.Vel.X() }
func (b *Ball) DY() float64 { return b.Vel.Y() }

func (b *Ball) Top() float64    { return b.Pos[1] - b.Radius }
func (b *Ball) Bottom() float64 { return b.Pos[1] + b.Radius }
func (b *Ball) Left() float64   { return b.Pos[0] - b.Radius }
func (b *Ball) Right() float64  { return b.Pos[0] + b.Radius }
