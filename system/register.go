package system

import "github.com/lixenwraith/vi-pong/engine"

// RegisterAll adds the simulation systems to the world
func RegisterAll(w *engine.World) {
	w.AddSystem(NewBallSystem())
	w.AddSystem(NewOpponentSystem())
}
