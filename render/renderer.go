// Package render draws the game through a backend-neutral Renderer.
// Positions are screen pixels; text y is the baseline.
package render

import (
	"github.com/lixenwraith/wildlands/combat"
	"github.com/lixenwraith/wildlands/core"
)

// Point is a screen-space vertex
type Point struct {
	X, Y float64
}

// Renderer is the drawing surface a host backend provides
// Polygon rotation is in degrees and places the first vertex; a 4-sided polygon at 45 is an axis-aligned square
type Renderer interface {
	DrawPolygon(cx, cy float64, sides int, radius, rotationDeg float64, c core.Color)
	DrawPolygonLines(cx, cy float64, sides int, radius, rotationDeg, thickness float64, c core.Color)
	DrawLine(x1, y1, x2, y2, width float64, c core.Color)
	DrawCircle(cx, cy, radius float64, c core.Color)
	DrawRectangle(x, y, w, h float64, c core.Color)
	DrawRectangleLines(x, y, w, h, thickness float64, c core.Color)
	DrawTriangle(p1, p2, p3 Point, c core.Color)
	DrawText(s string, x, y, size float64, c core.Color)
	MeasureText(s string, size float64) (float64, float64)
	ViewportSize() (float64, float64)
	Clear(c core.Color)
}

// Scene colors
var (
	Background        = core.RGB(30, 30, 40)
	GridLine          = core.RGBA(0, 0, 0, 20)
	PanelFill         = core.RGB(40, 40, 50)
	SlotFill          = core.RGB(60, 60, 70)
	SlotHover         = core.RGB(80, 80, 100)
	TooltipFill       = core.RGBA(20, 20, 30, 240)
	InventoryDim      = core.RGBA(0, 0, 0, 180)
	GameOverDim       = core.RGBA(0, 0, 0, 200)
	FloatingTextColor = core.RGB(255, 255, 100)
	Trunk             = core.RGB(101, 67, 33)
)

// ItemColor is the icon color of an item: weapons orange, armor sky blue
func ItemColor(item combat.Item) core.Color {
	if item.Kind == combat.ItemArmor {
		return core.SkyBlue
	}
	return core.Orange
}
