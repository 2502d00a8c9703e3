// Package terminal hosts the game in a tcell screen.
//
// Shapes are rasterized into a grid of character cells: each cell stands for a
// CellWidth x CellHeight block of virtual screen pixels and takes the blended
// color of the shapes covering its center. Text is written one rune per cell.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/render"
)

// cell is one character position: a background color plus an optional glyph
type cell struct {
	bg core.Color
	fg core.Color
	ch rune
}

// Canvas implements render.Renderer over a cell grid
type Canvas struct {
	cols, rows   int
	cellW, cellH float64
	cells        []cell

	// lastIdx suppresses double blending of a cell while stroking one line
	lastIdx int
}

var _ render.Renderer = (*Canvas)(nil)

// NewCanvas creates a canvas of cols x rows cells
func NewCanvas(cols, rows int, cellW, cellH float64) *Canvas {
	c := &Canvas{cellW: cellW, cellH: cellH, lastIdx: -1}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the grid when the terminal size changes
func (c *Canvas) Resize(cols, rows int) {
	cols = max(cols, 0)
	rows = max(rows, 0)
	if cols == c.cols && rows == c.rows && c.cells != nil {
		return
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]cell, cols*rows)
}

// Size returns the grid dimensions in cells
func (c *Canvas) Size() (int, int) {
	return c.cols, c.rows
}

// CellAt returns the background color and glyph of a cell, ok is false outside the grid
func (c *Canvas) CellAt(col, row int) (core.Color, rune, bool) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return core.Color{}, 0, false
	}
	cl := c.cells[row*c.cols+col]
	return cl.bg, cl.ch, true
}

// ToPixels converts a cell position to the virtual pixel at its center
func (c *Canvas) ToPixels(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * c.cellW, (float64(row) + 0.5) * c.cellH
}

// ===== render.Renderer =====

func (c *Canvas) ViewportSize() (float64, float64) {
	return float64(c.cols) * c.cellW, float64(c.rows) * c.cellH
}

func (c *Canvas) Clear(col core.Color) {
	col.A = 255
	for i := range c.cells {
		c.cells[i] = cell{bg: col}
	}
}

func (c *Canvas) DrawRectangle(x, y, w, h float64, col core.Color) {
	c.fill(x, y, x+w, y+h, col, func(px, py float64) bool {
		return px >= x && px < x+w && py >= y && py < y+h
	})
}

func (c *Canvas) DrawRectangleLines(x, y, w, h, thickness float64, col core.Color) {
	c.DrawLine(x, y, x+w, y, thickness, col)
	c.DrawLine(x+w, y, x+w, y+h, thickness, col)
	c.DrawLine(x+w, y+h, x, y+h, thickness, col)
	c.DrawLine(x, y+h, x, y, thickness, col)
}

func (c *Canvas) DrawCircle(cx, cy, radius float64, col core.Color) {
	r2 := radius * radius
	n := c.fill(cx-radius, cy-radius, cx+radius, cy+radius, col, func(px, py float64) bool {
		dx, dy := px-cx, py-cy
		return dx*dx+dy*dy <= r2
	})
	// Shapes missing every cell center still mark the cell they sit in
	if n == 0 {
		c.dot(cx, cy, col)
	}
}

func (c *Canvas) DrawTriangle(p1, p2, p3 render.Point, col core.Color) {
	c.fillConvex([]render.Point{p1, p2, p3}, col)
}

func (c *Canvas) DrawPolygon(cx, cy float64, sides int, radius, rotationDeg float64, col core.Color) {
	pts := polygon(cx, cy, sides, radius, rotationDeg)
	if pts == nil {
		return
	}
	if c.fillConvex(pts, col) == 0 {
		c.dot(cx, cy, col)
	}
}

func (c *Canvas) DrawPolygonLines(cx, cy float64, sides int, radius, rotationDeg, thickness float64, col core.Color) {
	pts := polygon(cx, cy, sides, radius, rotationDeg)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		c.DrawLine(a.X, a.Y, b.X, b.Y, thickness, col)
	}
}

// DrawLine steps along the segment at half-cell resolution; width below one cell is ignored
func (c *Canvas) DrawLine(x1, y1, x2, y2, width float64, col core.Color) {
	dx, dy := x2-x1, y2-y1
	step := math.Min(c.cellW, c.cellH) / 2
	n := int(math.Ceil(math.Hypot(dx, dy)/step)) + 1

	c.lastIdx = -1
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		c.blendAt(x1+dx*t, y1+dy*t, col)
	}
	c.lastIdx = -1
}

// DrawText places one rune per cell starting at the cell containing (x, baseline)
// Glyphs take the text color; the cell background is kept
func (c *Canvas) DrawText(s string, x, y, size float64, col core.Color) {
	row := int(math.Floor((y - size/2) / c.cellH))
	if row < 0 || row >= c.rows {
		return
	}
	colIdx := int(math.Floor(x / c.cellW))
	for _, r := range s {
		if colIdx >= c.cols {
			return
		}
		if colIdx >= 0 {
			cl := &c.cells[row*c.cols+colIdx]
			cl.ch = r
			cl.fg = col.Blend(cl.bg)
		}
		colIdx++
	}
}

func (c *Canvas) MeasureText(s string, size float64) (float64, float64) {
	n := 0
	for range s {
		n++
	}
	return float64(n) * c.cellW, c.cellH
}

// ===== output =====

// Flush copies the grid to the screen; the caller shows it
func (c *Canvas) Flush(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			style := tcell.StyleDefault.Background(tcellColor(cl.bg))
			ch := ' '
			if cl.ch != 0 {
				ch = cl.ch
				style = style.Foreground(tcellColor(cl.fg))
			}
			screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func tcellColor(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// ===== rasterization =====

// fill blends col into every cell whose center lies in the box and satisfies inside
// It returns the number of cells touched
func (c *Canvas) fill(minX, minY, maxX, maxY float64, col core.Color, inside func(px, py float64) bool) int {
	if col.A == 0 {
		return 0
	}
	c0 := max(int(math.Floor(minX/c.cellW)), 0)
	r0 := max(int(math.Floor(minY/c.cellH)), 0)
	c1 := min(int(math.Ceil(maxX/c.cellW)), c.cols-1)
	r1 := min(int(math.Ceil(maxY/c.cellH)), c.rows-1)

	n := 0
	for row := r0; row <= r1; row++ {
		for cx := c0; cx <= c1; cx++ {
			px, py := c.ToPixels(cx, row)
			if inside(px, py) {
				cl := &c.cells[row*c.cols+cx]
				cl.bg = col.Blend(cl.bg)
				n++
			}
		}
	}
	return n
}

// fillConvex fills a convex polygon of either winding
func (c *Canvas) fillConvex(pts []render.Point, col core.Color) int {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return c.fill(minX, minY, maxX, maxY, col, func(px, py float64) bool {
		return insideConvex(pts, px, py)
	})
}

func (c *Canvas) dot(px, py float64, col core.Color) {
	c.lastIdx = -1
	c.blendAt(px, py, col)
	c.lastIdx = -1
}

func (c *Canvas) blendAt(px, py float64, col core.Color) {
	if px < 0 || py < 0 {
		return
	}
	colIdx, row := int(px/c.cellW), int(py/c.cellH)
	if colIdx >= c.cols || row >= c.rows {
		return
	}
	idx := row*c.cols + colIdx
	if idx == c.lastIdx {
		return
	}
	c.lastIdx = idx
	cl := &c.cells[idx]
	cl.bg = col.Blend(cl.bg)
}

func insideConvex(pts []render.Point, px, py float64) bool {
	var pos, neg bool
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		cross := (b.X-a.X)*(py-a.Y) - (b.Y-a.Y)*(px-a.X)
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

func polygon(cx, cy float64, sides int, radius, rotationDeg float64) []render.Point {
	if sides < 3 {
		return nil
	}
	pts := make([]render.Point, sides)
	rot := rotationDeg * math.Pi / 180
	for i := range pts {
		a := rot + 2*math.Pi*float64(i)/float64(sides)
		pts[i] = render.Point{X: cx + radius*math.Cos(a), Y: cy + radius*math.Sin(a)}
	}
	return pts
}
