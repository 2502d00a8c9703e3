package engine

import (
	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/render"
)

// fixedRNG returns the same roll every time: Intn(n) -> min(i, n-1), Float64 -> f
type fixedRNG struct {
	i int
	f float64
}

func (r fixedRNG) Intn(n int) int {
	return min(r.i, n-1)
}

func (r fixedRNG) Float64() float64 {
	return r.f
}

type cueRecorder struct {
	cues []core.Cue
}

func (c *cueRecorder) Play(cue core.Cue) {
	c.cues = append(c.cues, cue)
}

func (c *cueRecorder) count(cue core.Cue) int {
	n := 0
	for _, v := range c.cues {
		if v == cue {
			n++
		}
	}
	return n
}

// countingRenderer tallies draw calls and keeps text
type countingRenderer struct {
	w, h      float64
	triangles int
	texts     []string
	clears    int
}

func (r *countingRenderer) DrawPolygon(cx, cy float64, sides int, radius, rot float64, c core.Color) {
}
func (r *countingRenderer) DrawPolygonLines(cx, cy float64, sides int, radius, rot, th float64, c core.Color) {
}
func (r *countingRenderer) DrawLine(x1, y1, x2, y2, width float64, c core.Color) {
}
func (r *countingRenderer) DrawCircle(cx, cy, radius float64, c core.Color) {
}
func (r *countingRenderer) DrawRectangle(x, y, w, h float64, c core.Color) {
}
func (r *countingRenderer) DrawRectangleLines(x, y, w, h, th float64, c core.Color) {
}
func (r *countingRenderer) DrawTriangle(p1, p2, p3 render.Point, c core.Color) {
	r.triangles++
}
func (r *countingRenderer) DrawText(s string, x, y, size float64, c core.Color) {
	r.texts = append(r.texts, s)
}
func (r *countingRenderer) MeasureText(s string, size float64) (float64, float64) {
	return float64(len(s)) * size / 2, size
}
func (r *countingRenderer) ViewportSize() (float64, float64) {
	return r.w, r.h
}
func (r *countingRenderer) Clear(c core.Color) {
	r.clears++
}

func (r *countingRenderer) hasText(s string) bool {
	for _, t := range r.texts {
		if t == s {
			return true
		}
	}
	return false
}

func pressed(keys ...Key) InputSnapshot {
	var s InputSnapshot
	for _, k := range keys {
		s.Pressed[k] = true
		s.Down[k] = true
	}
	return s
}

func held(keys ...Key) InputSnapshot {
	var s InputSnapshot
	for _, k := range keys {
		s.Down[k] = true
	}
	return s
}

func click(x, y float64) InputSnapshot {
	var s InputSnapshot
	s.MouseX, s.MouseY = x, y
	s.Clicked[MouseLeft] = true
	return s
}

const testW, testH = 800.0, 600.0

func frame(dt float64, in InputSnapshot) Frame {
	return Frame{DT: dt, Input: in, ViewW: testW, ViewH: testH}
}

// newTestGame starts a run with a fixed RNG and an empty arena around the origin
func newTestGame(rng fixedRNG, cues *cueRecorder) *Game {
	cfg := Config{Seed: 12345, RNG: rng}
	if cues != nil {
		cfg.Cues = cues
	}
	g := NewGame(cfg)
	g.monsters = nil
	return g
}
