package component

import (
	"testing"

	"github.com/lixenwraith/vi-pong/constant"
)

func TestInitialLayout(t *testing.T) {
	a := DefaultArena()
	player := NewPlayerPaddle(a)
	opponent := NewOpponentPaddle(a)
	ball := NewBall(a)

	if player.X != constant.PaddleMargin {
		t.Errorf("Expected player X %v, got %v", constant.PaddleMargin, player.X)
	}
	if want := a.Width - constant.PaddleWidth - constant.PaddleMargin; opponent.X != want {
		t.Errorf("Expected opponent X %v, got %v", want, opponent.X)
	}
	if player.CenterY() != a.CenterY() || opponent.CenterY() != a.CenterY() {
		t.Error("Expected both paddles vertically centered")
	}
	if player.Speed != 0 {
		t.Errorf("Expected pointer paddle to have no tracking speed, got %v", player.Speed)
	}
	if opponent.Speed != constant.OpponentSpeed {
		t.Errorf("Expected opponent speed %v, got %v", constant.OpponentSpeed, opponent.Speed)
	}
	if ball.X() != 320 || ball.Y() != 240 {
		t.Errorf("Expected ball at (320,240), got (%v,%v)", ball.X(), ball.Y())
	}
	if ball.DX() != 6 || ball.DY() != 3 {
		t.Errorf("Expected initial velocity (6,3), got (%v,%v)", ball.DX(), ball.DY())
	}
}

func TestPaddleClamp(t *testing.T) {
	a := DefaultArena()

	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"AboveTop", -40, 0},
		{"Inside", 120, 120},
		{"BelowBottom", 900, a.Height - constant.PaddleHeight},
		{"ExactlyMax", a.Height - constant.PaddleHeight, a.Height - constant.PaddleHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayerPaddle(a)
			p.Y = tt.y
			p.Clamp(a)
			if p.Y != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.y, p.Y, tt.want)
			}
		})
	}
}

func TestBallEdges(t *testing.T) {
	b := NewBall(DefaultArena())
	if b.Left() != 308 || b.Right() != 332 || b.Top() != 228 || b.Bottom() != 252 {
		t.Errorf("Unexpected edges: l=%v r=%v t=%v b=%v", b.Left(), b.Right(), b.Top(), b.Bottom())
	}
}

func TestSideString(t *testing.T) {
	if SideLeft.String() != "left" || SideRight.String() != "right" {
		t.Error("Unexpected side names")
	}
}
