package game

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/render/renderers"
	"github.com/lixenwraith/vi-pong/system"
)

// SoundPlayer receives cue requests for simulation events
type SoundPlayer interface {
	Play(audio.SoundType)
	ToggleMute() bool
	IsMuted() bool
}

// Driver is the single consumer of frame ticks and terminal events.
// It is the only goroutine that touches the world
type Driver struct {
	World    *engine.World
	renderer *render.RenderOrchestrator
	handler  *input.Handler
	sound    SoundPlayer

	paused bool
}

// NewDriver wires a world, its systems and a renderer for the given screen.
// The ball is served once before the first frame
func NewDriver(screen tcell.Screen, seed uint64, sound SoundPlayer) *Driver {
	world := engine.NewWorld(seed)
	system.RegisterAll(world)
	system.ResetBall(world)

	orchestrator := render.NewRenderOrchestrator(screen, world.Arena)
	renderers.RegisterAll(orchestrator)

	return &Driver{
		World:    world,
		renderer: orchestrator,
		handler:  input.NewHandler(orchestrator),
		sound:    sound,
	}
}

// Run dispatches input events and frame ticks until quit or until the event source closes
func (d *Driver) Run(events <-chan tcell.Event, ticks <-chan time.Time) error {
	d.Render()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !d.HandleEvent(ev) {
				return nil
			}

		case <-ticks:
			d.Tick()
		}
	}
}

// Tick runs one frame: simulation step unless paused, event fan-out, render
func (d *Driver) Tick() {
	if !d.paused {
		d.World.Step()
		d.dispatchEvents()
	}
	d.Render()
}

// Render paints the current world without stepping it
func (d *Driver) Render() {
	d.renderer.RenderFrame(d.paused, d.sound.IsMuted(), d.World)
}

// HandleEvent applies one terminal event. Returns false when the game should exit
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	intent := d.handler.Translate(ev)

	switch intent.Type {
	case input.IntentQuit:
		log.Printf("quit at frame %d", d.World.FrameNumber())
		return false

	case input.IntentPointer:
		input.MovePaddle(&d.World.Player, d.World.Arena, intent.PointerY)

	case input.IntentPause:
		d.paused = !d.paused
		log.Printf("paused=%v at frame %d", d.paused, d.World.FrameNumber())
		d.Render()

	case input.IntentToggleMute:
		muted := d.sound.ToggleMute()
		log.Printf("muted=%v", muted)
		d.Render()

	case input.IntentResize:
		d.renderer.Resize(intent.Width, intent.Height)
		d.Render()
	}
	return true
}

// IsPaused reports whether simulation steps are suspended
func (d *Driver) IsPaused() bool {
	return d.paused
}

func (d *Driver) dispatchEvents() {
	for _, ev := range d.World.Events.Consume() {
		switch ev.Type {
		case event.EventWallBounce:
			d.sound.Play(audio.SoundWall)
		case event.EventPaddleHit:
			d.sound.Play(audio.SoundPaddle)
		case event.EventBallReset:
			d.sound.Play(audio.SoundReset)
			b := d.World.Ball
			log.Printf("frame %d: ball out %s, served dx=%.2f dy=%.2f", ev.Frame, ev.Side, b.DX(), b.DY())
		}
	}
}
