package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	viewport  Viewport
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator sized to the screen's current dimensions
func NewRenderOrchestrator(screen tcell.Screen, arena component.Arena) *RenderOrchestrator {
	width, height := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		viewport:  NewViewport(arena, width, height),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Viewport returns the current arena-to-cell mapping
func (o *RenderOrchestrator) Viewport() Viewport {
	return o.viewport
}

// ArenaY maps a terminal row to arena y using the current viewport
func (o *RenderOrchestrator) ArenaY(row int) float64 {
	return o.viewport.ArenaY(row)
}

// Resize recomputes the viewport and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.viewport = NewViewport(o.viewport.Arena, width, height)
	o.screen.Sync()
}

// RenderFrame executes the render pipeline: clear, render all, show
func (o *RenderOrchestrator) RenderFrame(paused, muted bool, world *engine.World) {
	ctx := RenderContext{
		Screen:   o.screen,
		Viewport: o.viewport,
		IsPaused: paused,
		IsMuted:  muted,
	}

	o.screen.Clear()

	for _, entry := range o.renderers {
		entry.renderer.Render(ctx, world)
	}

	o.screen.Show()
}
