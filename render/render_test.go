package render

import (
	"testing"

	"github.com/lixenwraith/wildlands/actor"
	"github.com/lixenwraith/wildlands/camera"
	"github.com/lixenwraith/wildlands/combat"
	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/parameter"
	"github.com/lixenwraith/wildlands/world"
)

type rect struct {
	x, y, w, h float64
	c          core.Color
}

type text struct {
	s    string
	x, y float64
	c    core.Color
}

// recorder keeps the calls the tests inspect and counts the rest
type recorder struct {
	w, h      float64
	rects     []rect
	texts     []text
	triangles int
	polygons  int
	circles   int
}

func newRecorder() *recorder {
	return &recorder{w: 800, h: 600}
}

func (r *recorder) DrawPolygon(cx, cy float64, sides int, radius, rot float64, c core.Color) {
	r.polygons++
}
func (r *recorder) DrawPolygonLines(cx, cy float64, sides int, radius, rot, th float64, c core.Color) {
}
func (r *recorder) DrawLine(x1, y1, x2, y2, width float64, c core.Color) {
}
func (r *recorder) DrawCircle(cx, cy, radius float64, c core.Color) {
	r.circles++
}
func (r *recorder) DrawRectangle(x, y, w, h float64, c core.Color) {
	r.rects = append(r.rects, rect{x, y, w, h, c})
}
func (r *recorder) DrawRectangleLines(x, y, w, h, th float64, c core.Color) {
}
func (r *recorder) DrawTriangle(p1, p2, p3 Point, c core.Color) {
	r.triangles++
}
func (r *recorder) DrawText(s string, x, y, size float64, c core.Color) {
	r.texts = append(r.texts, text{s, x, y, c})
}
func (r *recorder) MeasureText(s string, size float64) (float64, float64) {
	return float64(len(s)) * size / 2, size
}
func (r *recorder) ViewportSize() (float64, float64) {
	return r.w, r.h
}
func (r *recorder) Clear(c core.Color) {
}

func (r *recorder) hasText(s string) bool {
	for _, t := range r.texts {
		if t.s == s {
			return true
		}
	}
	return false
}

func TestSlotAt(t *testing.T) {
	const vw, vh = 800.0, 600.0
	panel := InventoryPanel(vw, vh)
	gx := panel.X + parameter.InventoryGridOffsetX
	gy := panel.Y + parameter.InventoryGridOffsetY
	stride := parameter.InventorySlotSize + parameter.InventorySlotPadding

	tests := []struct {
		name string
		x, y float64
		slot int
		ok   bool
	}{
		{"first slot corner", gx, gy, 0, true},
		{"first slot far edge", gx + parameter.InventorySlotSize, gy + parameter.InventorySlotSize, 0, true},
		{"gap between slots", gx + parameter.InventorySlotSize + 5, gy + 10, -1, false},
		{"last column", gx + 3*stride + 10, gy + 10, 3, true},
		{"second row", gx + 10, gy + stride + 10, 4, true},
		{"last slot", gx + 3*stride + 25, gy + stride + 25, 7, true},
		{"third row is empty space", gx + 10, gy + 2*stride + 10, -1, false},
		{"outside panel", 0, 0, -1, false},
	}

	for _, tt := range tests {
		slot, ok := SlotAt(tt.x, tt.y, vw, vh)
		if slot != tt.slot || ok != tt.ok {
			t.Errorf("%s: Expected (%d, %v), got (%d, %v)", tt.name, tt.slot, tt.ok, slot, ok)
		}
	}
}

func TestInventoryPanelCentered(t *testing.T) {
	p := InventoryPanel(1280, 720)
	if p.X != 440 || p.Y != 110 {
		t.Errorf("Expected panel at (440, 110), got (%f, %f)", p.X, p.Y)
	}
}

func TestHealthColorBands(t *testing.T) {
	tests := []struct {
		fraction float64
		want     core.Color
	}{
		{1.0, core.Green},
		{0.51, core.Green},
		{0.5, core.Yellow},
		{0.26, core.Yellow},
		{0.25, core.Red},
		{0, core.Red},
	}

	for _, tt := range tests {
		if got := HealthColor(tt.fraction); got != tt.want {
			t.Errorf("HealthColor(%v): Expected %v, got %v", tt.fraction, tt.want, got)
		}
	}
}

func TestDrawHealthBarFill(t *testing.T) {
	r := newRecorder()
	DrawHealthBar(r, 25, 50)

	if len(r.rects) != 2 {
		t.Fatalf("Expected background and fill, got %d rects", len(r.rects))
	}
	fill := r.rects[1]
	if fill.w != parameter.HealthBarWidth/2 || fill.c != core.Yellow {
		t.Errorf("Expected half-width yellow fill, got w=%f c=%v", fill.w, fill.c)
	}
	if !r.hasText("25/50") {
		t.Error("Expected health label")
	}
}

func TestDrawInventoryTooltip(t *testing.T) {
	p := actor.NewPlayer(0, 0)
	p.Inventory.Add(combat.ArmorItem(combat.ArmorChainmail))

	first := SlotRect(0, 800, 600)
	second := SlotRect(1, 800, 600)

	r := newRecorder()
	DrawInventory(r, p, first.X+5, first.Y+5)
	if !r.hasText("Chainmail") || !r.hasText("Reduces damage by 2") {
		t.Error("Expected tooltip for hovered filled slot")
	}

	r = newRecorder()
	DrawInventory(r, p, second.X+5, second.Y+5)
	if r.hasText("Chainmail") {
		t.Error("Expected no tooltip over an empty slot")
	}
	if !r.hasText("1/8 slots used") {
		t.Error("Expected slot counter")
	}
	if !r.hasText("Armor: None") {
		t.Error("Expected bare armor slot")
	}
}

func TestTooltipFlipsAtRightEdge(t *testing.T) {
	r := newRecorder()
	drawTooltip(r, 790, 100, combat.WeaponItem(combat.WeaponSword))

	if len(r.rects) == 0 {
		t.Fatal("Expected tooltip background")
	}
	bg := r.rects[0]
	if bg.x+bg.w > r.w {
		t.Errorf("Expected tooltip inside viewport, spans to %f", bg.x+bg.w)
	}
}

func TestDrawWorldDrawsDiamondTiles(t *testing.T) {
	r := newRecorder()
	DrawWorld(r, camera.New(), world.New(parameter.DefaultWorldSeed))

	if r.triangles == 0 || r.triangles%2 != 0 {
		t.Errorf("Expected two triangles per tile, got %d", r.triangles)
	}
	// 800x600 holds at least 12x18 tiles of 64x32
	if r.triangles < 2*12*18 {
		t.Errorf("Expected the viewport covered, got %d triangles", r.triangles)
	}
}

func TestDrawMonsterHealthBarOnlyWhenWounded(t *testing.T) {
	cam := camera.New()
	m := actor.NewMonster(1, 1, actor.MonsterOrc)

	r := newRecorder()
	DrawMonster(r, cam, &m)
	if len(r.rects) != 0 {
		t.Errorf("Expected no bar at full health, got %d rects", len(r.rects))
	}

	m.TakeDamage(10)
	r = newRecorder()
	DrawMonster(r, cam, &m)
	if len(r.rects) != 2 {
		t.Fatalf("Expected bar background and fill, got %d", len(r.rects))
	}
	if r.rects[1].w != r.rects[0].w/2 {
		t.Errorf("Expected half fill, got %f of %f", r.rects[1].w, r.rects[0].w)
	}
}

func TestDrawPlayerAttackFlash(t *testing.T) {
	cam := camera.New()
	p := actor.NewPlayer(0, 0)

	r := newRecorder()
	DrawPlayer(r, cam, p)
	idle := r.circles

	p.Attack()
	r = newRecorder()
	DrawPlayer(r, cam, p)
	if r.circles != idle+1 {
		t.Errorf("Expected flash circle while swinging, got %d vs idle %d", r.circles, idle)
	}
}

func TestDrawFloatingTextFades(t *testing.T) {
	r := newRecorder()
	DrawFloatingText(r, camera.New(), "Picked up Axe!", 0, 0, 15, 0.5)

	if len(r.texts) != 1 {
		t.Fatalf("Expected one text, got %d", len(r.texts))
	}
	got := r.texts[0]
	if got.c.A != 127 {
		t.Errorf("Expected alpha 127, got %d", got.c.A)
	}
	wantY := 300 - parameter.FloatingTextBaseOffset - 15
	if got.y != wantY {
		t.Errorf("Expected y %f, got %f", wantY, got.y)
	}
}
