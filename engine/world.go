package engine

import (
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/vmath"
)

// System is a unit of per-frame simulation logic
type System interface {
	Update(w *World)
	Priority() int // Lower values run first
}

// World owns every piece of simulation state. It is not safe for concurrent use:
// the frame driver is its only caller
type World struct {
	Arena    component.Arena
	Player   component.Paddle
	Opponent component.Paddle
	Ball     component.Ball

	// Rand is the only source of randomness, injected so resets are reproducible
	Rand   *vmath.FastRand
	Events *event.EventQueue

	frame   int64
	systems []System
}

// NewWorld creates a world in its session-start layout
func NewWorld(seed uint64) *World {
	arena := component.DefaultArena()
	return &World{
		Arena:    arena,
		Player:   component.NewPlayerPaddle(arena),
		Opponent: component.NewOpponentPaddle(arena),
		Ball:     component.NewBall(arena),
		Rand:     vmath.NewFastRand(seed),
		Events:   event.NewEventQueue(),
	}
}

// AddSystem adds a system and keeps the list sorted by priority.
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	pos := len(w.systems)
	for i, s := range w.systems {
		if system.Priority() < s.Priority() {
			pos = i
			break
		}
	}
	w.systems = append(w.systems, nil)
	copy(w.systems[pos+1:], w.systems[pos:])
	w.systems[pos] = system
}

// Step advances the world by exactly one frame
func (w *World) Step() {
	w.frame++
	for _, system := range w.systems {
		system.Update(w)
	}
}

// FrameNumber returns the number of completed steps
func (w *World) FrameNumber() int64 {
	return w.frame
}

// PushEvent emits a simulation event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, side component.Side) {
	w.Events.Push(event.GameEvent{
		Type:  eventType,
		Side:  side,
		Frame: w.frame,
	})
}
