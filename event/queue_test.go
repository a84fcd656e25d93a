package event

import (
	"testing"

	"github.com/lixenwraith/vi-pong/component"
	"github.com/lixenwraith/vi-pong/constant"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	if q.Consume() != nil {
		t.Fatal("Expected nil from empty queue")
	}

	q.Push(GameEvent{Type: EventWallBounce, Frame: 1})
	q.Push(GameEvent{Type: EventPaddleHit, Side: component.SideRight, Frame: 2})
	q.Push(GameEvent{Type: EventBallReset, Side: component.SideLeft, Frame: 3})

	if q.Len() != 3 {
		t.Fatalf("Expected 3 pending events, got %d", q.Len())
	}

	events := q.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i+1) {
			t.Errorf("Event %d out of order: frame %d", i, ev.Frame)
		}
	}
	if events[1].Side != component.SideRight {
		t.Error("Expected side to survive the round trip")
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue after consume, got %d", q.Len())
	}
}

// TestQueueOverflow verifies the oldest events are dropped when full
func TestQueueOverflow(t *testing.T) {
	q := NewEventQueue()
	total := constant.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventWallBounce, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != constant.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", constant.EventQueueSize, len(events))
	}
	if events[0].Frame != 10 {
		t.Errorf("Expected oldest retained frame 10, got %d", events[0].Frame)
	}
	if events[len(events)-1].Frame != int64(total-1) {
		t.Errorf("Expected newest frame %d, got %d", total-1, events[len(events)-1].Frame)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventPaddleHit.String() != "paddle_hit" {
		t.Errorf("Unexpected name %q", EventPaddleHit.String())
	}
	if EventType(99).String() != "unknown" {
		t.Error("Expected unknown for out-of-range type")
	}
}
