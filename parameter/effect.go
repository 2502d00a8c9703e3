package parameter

// Floating text
const (
	FloatingTextLifetime = 1.0

	// FloatingTextRiseSpeed in screen pixels per second
	FloatingTextRiseSpeed = 30.0

	// FloatingTextBaseOffset lifts the text above the anchor entity
	FloatingTextBaseOffset = 50.0

	FloatingTextSize = 18.0
)
