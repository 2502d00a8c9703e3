package engine

import (
	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/render"
)

// Renderer is the drawing surface handed to Draw each frame
type Renderer = render.Renderer

// CueSink receives gameplay events for sound; Play must not block the frame
type CueSink interface {
	Play(cue core.Cue)
}
