package constant

import "time"

// Game Loop Timing
const (
	// FramesPerSecond is the display refresh cadence the driver targets
	FramesPerSecond = 60

	// FrameInterval is the tick period derived from FramesPerSecond (~16ms)
	FrameInterval = time.Second / FramesPerSecond
)

// Event Limits
const (
	// EventQueueSize is the fixed capacity of the simulation event ring buffer
	EventQueueSize = 64

	// EventBufferMask is the bitmask for fast modulo operations (64 - 1)
	EventBufferMask = EventQueueSize - 1

	// InputChannelSize is the buffer between the terminal poller and the driver
	InputChannelSize = 256
)
