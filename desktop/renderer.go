// Package desktop hosts the game in an ebiten window.
package desktop

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/render"
)

// Renderer implements render.Renderer on the ebiten frame image
type Renderer struct {
	dst   *ebiten.Image
	font  *text.GoTextFaceSource
	white *ebiten.Image

	// Faces are cached per size; the game uses a handful of sizes
	faces map[float64]*text.GoTextFace
}

var _ render.Renderer = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &Renderer{
		font:  src,
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		faces: make(map[float64]*text.GoTextFace),
	}, nil
}

// Target sets the image the next draw calls paint into
func (r *Renderer) Target(dst *ebiten.Image) {
	r.dst = dst
}

func (r *Renderer) ViewportSize() (float64, float64) {
	b := r.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (r *Renderer) Clear(c core.Color) {
	r.dst.Fill(nrgba(c))
}

func (r *Renderer) DrawRectangle(x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(r.dst, float32(x), float32(y), float32(w), float32(h), nrgba(c), false)
}

func (r *Renderer) DrawRectangleLines(x, y, w, h, thickness float64, c core.Color) {
	vector.StrokeRect(r.dst, float32(x), float32(y), float32(w), float32(h), float32(thickness), nrgba(c), false)
}

func (r *Renderer) DrawLine(x1, y1, x2, y2, width float64, c core.Color) {
	vector.StrokeLine(r.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), nrgba(c), true)
}

func (r *Renderer) DrawCircle(cx, cy, radius float64, c core.Color) {
	vector.DrawFilledCircle(r.dst, float32(cx), float32(cy), float32(radius), nrgba(c), true)
}

func (r *Renderer) DrawTriangle(p1, p2, p3 render.Point, c core.Color) {
	var path vector.Path
	path.MoveTo(float32(p1.X), float32(p1.Y))
	path.LineTo(float32(p2.X), float32(p2.Y))
	path.LineTo(float32(p3.X), float32(p3.Y))
	path.Close()
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r.drawVertices(vs, is, c, false)
}

func (r *Renderer) DrawPolygon(cx, cy float64, sides int, radius, rotationDeg float64, c core.Color) {
	path, ok := polygonPath(cx, cy, sides, radius, rotationDeg)
	if !ok {
		return
	}
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r.drawVertices(vs, is, c, true)
}

func (r *Renderer) DrawPolygonLines(cx, cy float64, sides int, radius, rotationDeg, thickness float64, c core.Color) {
	path, ok := polygonPath(cx, cy, sides, radius, rotationDeg)
	if !ok {
		return
	}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    float32(thickness),
		LineJoin: vector.LineJoinMiter,
	})
	r.drawVertices(vs, is, c, true)
}

// DrawText draws with y as the baseline
func (r *Renderer) DrawText(s string, x, y, size float64, c core.Color) {
	face := r.face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(nrgba(c))
	text.Draw(r.dst, s, face, op)
}

func (r *Renderer) MeasureText(s string, size float64) (float64, float64) {
	return text.Measure(s, r.face(size), 0)
}

func (r *Renderer) face(size float64) *text.GoTextFace {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: r.font, Size: size}
	r.faces[size] = f
	return f
}

func (r *Renderer) drawVertices(vs []ebiten.Vertex, is []uint16, c core.Color, aa bool) {
	cr, cg, cb, ca := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = cr, cg, cb, ca
	}
	r.dst.DrawTriangles(vs, is, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: aa})
}

func polygonPath(cx, cy float64, sides int, radius, rotationDeg float64) (vector.Path, bool) {
	var path vector.Path
	if sides < 3 {
		return path, false
	}
	rot := rotationDeg * math.Pi / 180
	for i := 0; i < sides; i++ {
		a := rot + 2*math.Pi*float64(i)/float64(sides)
		x, y := float32(cx+radius*math.Cos(a)), float32(cy+radius*math.Sin(a))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return path, true
}

// nrgba converts to a straight-alpha color for ebiten
func nrgba(c core.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
