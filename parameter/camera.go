package parameter

// Isometric tile geometry in screen pixels at zoom 1
const (
	TileWidth  = 64.0
	TileHeight = 32.0
)

// CameraLerpSpeed is the exponential smoothing rate toward the follow target (1/s)
const CameraLerpSpeed = 5.0

// Visible tile window padding around the viewport, in tiles
const CameraTilePadding = 4
