package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/render"
)

func newTestCanvas() *Canvas {
	c := NewCanvas(10, 5, 8, 16)
	c.Clear(core.Black)
	return c
}

func bgAt(t *testing.T, c *Canvas, col, row int) core.Color {
	t.Helper()
	bg, _, ok := c.CellAt(col, row)
	if !ok {
		t.Fatalf("Expected cell (%d,%d) inside grid", col, row)
	}
	return bg
}

func TestCanvasViewport(t *testing.T) {
	c := newTestCanvas()
	w, h := c.ViewportSize()
	if w != 80 || h != 80 {
		t.Errorf("Expected 80x80 virtual pixels, got %.0fx%.0f", w, h)
	}

	c.Resize(20, 3)
	if cols, rows := c.Size(); cols != 20 || rows != 3 {
		t.Errorf("Expected 20x3 after resize, got %dx%d", cols, rows)
	}
}

func TestCanvasRectangleCoversCellCenters(t *testing.T) {
	c := newTestCanvas()
	c.DrawRectangle(0, 0, 16, 16, core.Red)

	if bgAt(t, c, 0, 0) != core.Red || bgAt(t, c, 1, 0) != core.Red {
		t.Error("Expected first two cells filled")
	}
	if bgAt(t, c, 2, 0) != core.Black {
		t.Error("Expected third cell untouched")
	}
	if bgAt(t, c, 0, 1) != core.Black {
		t.Error("Expected second row untouched")
	}
}

func TestCanvasClipsToViewport(t *testing.T) {
	c := newTestCanvas()
	c.DrawCircle(40, 40, 500, core.Green)
	c.DrawRectangle(-100, -100, 50, 50, core.Red)
	c.DrawLine(-50, -50, 500, 500, 1, core.Yellow)
	c.DrawText("clipped text that runs far beyond the right edge", 60, 20, 16, core.White)

	for row := 0; row < 5; row++ {
		for col := 0; col < 10; col++ {
			if bgAt(t, c, col, row) == core.Black {
				t.Fatalf("Expected cell (%d,%d) covered by the large circle", col, row)
			}
		}
	}
	if _, _, ok := c.CellAt(10, 0); ok {
		t.Error("Expected column 10 outside grid")
	}
	if _, _, ok := c.CellAt(0, -1); ok {
		t.Error("Expected row -1 outside grid")
	}
}

func TestCanvasSmallShapeMarksCell(t *testing.T) {
	c := newTestCanvas()
	// No cell center within radius 2 of (10, 4)
	c.DrawCircle(10, 4, 2, core.Orange)

	if bgAt(t, c, 1, 0) != core.Orange {
		t.Errorf("Expected containing cell marked, got %+v", bgAt(t, c, 1, 0))
	}
}

func TestCanvasTriangleEitherWinding(t *testing.T) {
	cw := newTestCanvas()
	cw.DrawTriangle(render.Point{X: 0, Y: 0}, render.Point{X: 80, Y: 0}, render.Point{X: 0, Y: 80}, core.Red)
	ccw := newTestCanvas()
	ccw.DrawTriangle(render.Point{X: 0, Y: 0}, render.Point{X: 0, Y: 80}, render.Point{X: 80, Y: 0}, core.Red)

	for row := 0; row < 5; row++ {
		for col := 0; col < 10; col++ {
			if bgAt(t, cw, col, row) != bgAt(t, ccw, col, row) {
				t.Fatalf("Expected equal coverage at (%d,%d)", col, row)
			}
		}
	}
	if bgAt(t, cw, 0, 0) != core.Red {
		t.Error("Expected corner cell inside triangle")
	}
	if bgAt(t, cw, 9, 4) != core.Black {
		t.Error("Expected far corner outside triangle")
	}
}

func TestCanvasAlphaBlendsOnce(t *testing.T) {
	c := newTestCanvas()
	half := core.RGBA(255, 0, 0, 128)
	c.DrawLine(0, 8, 79, 8, 1, half)

	for col := 0; col < 10; col++ {
		r := bgAt(t, c, col, 0).R
		if r < 127 || r > 129 {
			t.Errorf("Expected cell %d blended once to ~128, got %d", col, r)
		}
	}
}

func TestCanvasText(t *testing.T) {
	c := newTestCanvas()
	c.DrawText("Hi", 8, 20, 16, core.White)

	if _, ch, _ := c.CellAt(1, 0); ch != 'H' {
		t.Errorf("Expected 'H' at (1,0), got %q", ch)
	}
	if _, ch, _ := c.CellAt(2, 0); ch != 'i' {
		t.Errorf("Expected 'i' at (2,0), got %q", ch)
	}

	w, h := c.MeasureText("Hello", 20)
	if w != 40 || h != 16 {
		t.Errorf("Expected 40x16, got %.0fx%.0f", w, h)
	}
}

func TestCanvasFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 5)

	c := newTestCanvas()
	c.DrawRectangle(0, 0, 8, 16, core.Red)
	c.DrawText("X", 8, 12, 16, core.White)
	c.Flush(screen)
	screen.Show()

	_, _, style, _ := screen.GetContent(0, 0)
	_, bg, _ := style.Decompose()
	if bg != tcell.NewRGBColor(int32(core.Red.R), int32(core.Red.G), int32(core.Red.B)) {
		t.Errorf("Expected red background, got %v", bg)
	}

	mainc, _, _, _ := screen.GetContent(1, 0)
	if mainc != 'X' {
		t.Errorf("Expected 'X' at (1,0), got %q", mainc)
	}
}
