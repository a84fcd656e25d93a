package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityNet RenderPriority = iota
	PriorityEntities
	PriorityUI
)
