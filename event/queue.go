package event

import "github.com/lixenwraith/vi-pong/constant"

// EventQueue is a fixed ring buffer of simulation events.
// Single producer (World.Step), single consumer (frame driver), same goroutine.
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	events [constant.EventQueueSize]GameEvent
	head   uint64 // read index
	tail   uint64 // write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest one if the buffer is full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events[eq.tail&constant.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > constant.EventQueueSize {
		eq.head = eq.tail - constant.EventQueueSize
	}
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}

	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&constant.EventBufferMask])
	}
	eq.head = eq.tail
	return result
}
