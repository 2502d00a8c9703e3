// Package camera maps between world tiles and isometric screen pixels and
// smooths the view toward a follow target.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/wildlands/parameter"
	"github.com/lixenwraith/wildlands/vmath"
)

// isoBasis projects a world offset onto screen axes (column-major)
//
//	iso_x = (rel_x - rel_y) * TileWidth/2
//	iso_y = (rel_x + rel_y) * TileHeight/2
var isoBasis = mgl64.Mat2{
	parameter.TileWidth / 2, parameter.TileHeight / 2,
	-parameter.TileWidth / 2, parameter.TileHeight / 2,
}

var isoInverse = isoBasis.Inv()

// Camera is the world position at the center of the viewport
type Camera struct {
	X, Y      float64
	LerpSpeed float64
}

// New creates a camera at the world origin
func New() *Camera {
	return &Camera{LerpSpeed: parameter.CameraLerpSpeed}
}

// Follow moves the camera toward the target with frame-rate independent exponential smoothing
// dt is clamped to [0, MaxFrameDelta]; the blend factor stays in [0, 1) so it never overshoots
func (c *Camera) Follow(targetX, targetY, dt float64) {
	if dt <= 0 {
		return
	}
	dt = math.Min(dt, parameter.MaxFrameDelta)
	t := 1 - math.Exp(-c.LerpSpeed*dt)
	c.X = vmath.Lerp(c.X, targetX, t)
	c.Y = vmath.Lerp(c.Y, targetY, t)
}

// CenterOn snaps the camera to a position
func (c *Camera) CenterOn(x, y float64) {
	c.X, c.Y = x, y
}

// WorldToScreen converts world coordinates to screen pixels for the given viewport size
func (c *Camera) WorldToScreen(worldX, worldY, viewW, viewH float64) (float64, float64) {
	iso := isoBasis.Mul2x1(mgl64.Vec2{worldX - c.X, worldY - c.Y})
	return viewW/2 + iso[0], viewH/2 + iso[1]
}

// ScreenToWorld is the exact inverse of WorldToScreen for the same viewport size
func (c *Camera) ScreenToWorld(screenX, screenY, viewW, viewH float64) (float64, float64) {
	rel := isoInverse.Mul2x1(mgl64.Vec2{screenX - viewW/2, screenY - viewH/2})
	return rel[0] + c.X, rel[1] + c.Y
}

// TileWindow is an inclusive range of integer tile coordinates
type TileWindow struct {
	MinX, MaxX int
	MinY, MaxY int
}

// VisibleTiles returns the tile window that covers the viewport around the camera
// The window is a superset; callers still cull by projected screen position
func (c *Camera) VisibleTiles(viewW, viewH float64) TileWindow {
	tilesX := int(viewW/parameter.TileWidth) + parameter.CameraTilePadding
	tilesY := int(viewH/parameter.TileHeight) + parameter.CameraTilePadding
	cx := int(math.Floor(c.X))
	cy := int(math.Floor(c.Y))
	return TileWindow{
		MinX: cx - tilesX, MaxX: cx + tilesX,
		MinY: cy - tilesY, MaxY: cy + tilesY,
	}
}
