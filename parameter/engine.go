package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the terminal adapter frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the delta handed to the core by adapters, in seconds
	// A stalled frame would otherwise move items through the player in one step
	MaxFrameDelta = 0.1
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
