package component

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Side identifies which wall a paddle defends
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Paddle is a vertically movable rectangle. X is fixed per side, Y is the top edge
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // per-frame tracking speed, zero for pointer-driven paddles
	Color         tcell.Color
}

// NewPlayerPaddle places the pointer-driven paddle on the left wall, vertically centered
func NewPlayerPaddle(a Arena) Paddle {
	return Paddle{
		X:      constant.PaddleMargin,
		Y:      a.CenterY() - constant.PaddleHeight/2,
		Width:  constant.PaddleWidth,
		Height: constant.PaddleHeight,
		Color:  constant.PlayerColor,
	}
}

// NewOpponentPaddle places the tracking paddle on the right wall, vertically centered
func NewOpponentPaddle(a Arena) Paddle {
	return Paddle{
		X:      a.Width - constant.PaddleWidth - constant.PaddleMargin,
		Y:      a.CenterY() - constant.PaddleHeight/2,
		Width:  constant.PaddleWidth,
		Height: constant.PaddleHeight,
		Speed:  constant.OpponentSpeed,
		Color:  constant.OpponentColor,
	}
}

// Bounds returns the paddle's rectangle
func (p *Paddle) Bounds() vmath.Rect {
	return vmath.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func (p *Paddle) CenterY() float64 {
	return p.Bounds().CenterY()
}

// MaxY is the largest valid top edge inside the arena
func (p *Paddle) MaxY(a Arena) float64 {
	return a.Height - p.Height
}

// Clamp restores 0 <= Y <= arena.Height - Height
func (p *Paddle) Clamp(a Arena) {
	p.Y = vmath.Clamp(p.Y, 0, p.MaxY(a))
}
