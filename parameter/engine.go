package parameter

import "time"

// Game Loop & Frame Timing
const (
	// FrameUpdateInterval is the host frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single simulation step in seconds
	// Pathological host frame times (debugger pause, window drag) are clamped to this
	MaxFrameDelta = 0.25

	// DefaultWorldSeed is the seed every fresh process starts from
	DefaultWorldSeed = 12345
)
