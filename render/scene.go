package render

import (
	"github.com/lixenwraith/wildlands/camera"
	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/parameter"
	"github.com/lixenwraith/wildlands/world"
)

// DrawWorld draws the visible ground tiles, then decorations in a second pass so props overlap tiles
func DrawWorld(r Renderer, cam *camera.Camera, w *world.World) {
	vw, vh := r.ViewportSize()
	win := cam.VisibleTiles(vw, vh)

	for ty := win.MinY; ty <= win.MaxY; ty++ {
		for tx := win.MinX; tx <= win.MaxX; tx++ {
			sx, sy := cam.WorldToScreen(float64(tx), float64(ty), vw, vh)
			if offscreen(sx, sy, vw, vh, 1) {
				continue
			}
			drawTile(r, sx, sy, w.BlendedColorAt(float64(tx), float64(ty)))
		}
	}

	for ty := win.MinY; ty <= win.MaxY; ty++ {
		for tx := win.MinX; tx <= win.MaxX; tx++ {
			sx, sy := cam.WorldToScreen(float64(tx), float64(ty), vw, vh)
			if offscreen(sx, sy, vw, vh, 2) {
				continue
			}
			if d, ok := w.DecorationAt(tx, ty); ok {
				drawDecoration(r, d, sx, sy)
			}
		}
	}
}

// offscreen culls a projected point with a margin measured in tiles
func offscreen(sx, sy, vw, vh, margin float64) bool {
	mx := parameter.TileWidth * margin
	my := parameter.TileHeight * margin
	return sx < -mx || sx > vw+mx || sy < -my || sy > vh+my
}

func drawTile(r Renderer, x, y float64, c core.Color) {
	hw := parameter.TileWidth / 2
	hh := parameter.TileHeight / 2
	top := Point{x, y - hh}
	bottom := Point{x, y + hh}

	r.DrawTriangle(top, Point{x - hw, y}, bottom, c)
	r.DrawTriangle(top, Point{x + hw, y}, bottom, c)

	r.DrawLine(x, y-hh, x-hw, y, 1, GridLine)
	r.DrawLine(x, y-hh, x+hw, y, 1, GridLine)
}

func drawDecoration(r Renderer, d world.Decoration, x, y float64) {
	switch d {
	case world.DecorationRock:
		r.DrawPolygon(x, y-5, 5, 8, 0, core.Gray)
	case world.DecorationTree:
		r.DrawRectangle(x-3, y-20, 6, 20, Trunk)
		r.DrawPolygon(x, y-35, 3, 15, 180, core.RGB(34, 139, 34))
	case world.DecorationCactus:
		cactus := core.RGB(60, 140, 60)
		r.DrawRectangle(x-4, y-25, 8, 25, cactus)
		r.DrawRectangle(x-12, y-20, 8, 5, cactus)
		r.DrawRectangle(x+4, y-15, 8, 5, cactus)
	case world.DecorationBones:
		bone := core.RGB(230, 230, 210)
		r.DrawLine(x-8, y-2, x+8, y-2, 3, bone)
		r.DrawLine(x-5, y-6, x+5, y+2, 2, bone)
	case world.DecorationSnowyRock:
		r.DrawPolygon(x, y-5, 5, 8, 0, core.RGB(180, 180, 190))
		r.DrawPolygon(x, y-8, 5, 5, 0, core.White)
	case world.DecorationSnowyTree:
		r.DrawRectangle(x-3, y-20, 6, 20, Trunk)
		r.DrawPolygon(x, y-35, 3, 15, 180, core.RGB(220, 240, 220))
	}
}
