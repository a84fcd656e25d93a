package event

import "github.com/lixenwraith/vi-pong/component"

// EventType represents the type of simulation event
type EventType uint8

const (
	// EventWallBounce signals a top or bottom wall reflection
	// Trigger: BallSystem | Side: unused
	EventWallBounce EventType = iota

	// EventPaddleHit signals a resolved paddle collision
	// Trigger: BallSystem | Side: wall defended by the paddle that was hit
	EventPaddleHit

	// EventBallReset signals the ball left the arena and was re-served from the center
	// Trigger: BallSystem | Side: wall the ball exited through
	EventBallReset
)

var eventNames = [...]string{
	EventWallBounce: "wall_bounce",
	EventPaddleHit:  "paddle_hit",
	EventBallReset:  "ball_reset",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// GameEvent is a notification emitted during a simulation step
type GameEvent struct {
	Type  EventType
	Side  component.Side
	Frame int64
}
