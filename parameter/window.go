package parameter

// Desktop window defaults
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Wildlands"
)

// Terminal rasterizer defaults, screen pixels covered by one character cell
const (
	TerminalCellWidth  = 8.0
	TerminalCellHeight = 16.0

	// TerminalHoldWindow keeps a key down this long after its last press or repeat event
	TerminalHoldWindow = 150 // milliseconds
)
