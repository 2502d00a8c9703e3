package render

import (
	"github.com/lixenwraith/wildlands/actor"
	"github.com/lixenwraith/wildlands/camera"
	"github.com/lixenwraith/wildlands/combat"
	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/inventory"
	"github.com/lixenwraith/wildlands/parameter"
	"github.com/lixenwraith/wildlands/vmath"
)

// monsterSides gives each species its own body outline
var monsterSides = [actor.MonsterTypeCount]int{
	actor.MonsterGoblin:     5,
	actor.MonsterOgre:       6,
	actor.MonsterOrc:        6,
	actor.MonsterWyrm:       8,
	actor.MonsterSnowGoblin: 5,
	actor.MonsterYeti:       7,
}

var armorColors = [combat.ArmorCount]core.Color{
	combat.ArmorNone:      core.RGB(200, 150, 100),
	combat.ArmorLeather:   core.RGB(139, 90, 43),
	combat.ArmorChainmail: core.RGB(150, 150, 160),
	combat.ArmorPlatemail: core.RGB(100, 100, 120),
}

var weaponColors = [combat.WeaponCount]core.Color{
	combat.WeaponSword: core.LightGray,
	combat.WeaponAxe:   core.RGB(100, 80, 60),
	combat.WeaponMace:  core.DarkGray,
}

var (
	skin        = core.RGB(220, 180, 140)
	attackFlash = core.RGBA(255, 255, 200, 150)
)

// DrawGroundItem draws a dropped item as a small outlined diamond
func DrawGroundItem(r Renderer, cam *camera.Camera, it inventory.GroundItem) {
	vw, vh := r.ViewportSize()
	sx, sy := cam.WorldToScreen(it.X, it.Y, vw, vh)
	r.DrawPolygon(sx, sy, 4, 8, 45, ItemColor(it.Item))
	r.DrawPolygonLines(sx, sy, 4, 8, 45, 1.5, core.White)
}

// DrawMonster draws the body and, once wounded, a health bar above it
func DrawMonster(r Renderer, cam *camera.Camera, m *actor.Monster) {
	vw, vh := r.ViewportSize()
	sx, sy := cam.WorldToScreen(m.X, m.Y, vw, vh)
	profile := m.Type.Profile()
	sides := 6
	if m.Type < actor.MonsterTypeCount {
		sides = monsterSides[m.Type]
	}

	r.DrawPolygon(sx, sy, sides, profile.Size, 0, profile.Color)
	r.DrawPolygonLines(sx, sy, sides, profile.Size, 0, 1.5, core.Black)

	if m.Health < m.MaxHealth && m.MaxHealth > 0 {
		w := profile.Size * 2
		x := sx - w/2
		y := sy - profile.Size - 10
		r.DrawRectangle(x, y, w, 4, core.DarkGray)
		r.DrawRectangle(x, y, w*float64(m.Health)/float64(m.MaxHealth), 4, core.Red)
	}
}

// DrawPlayer draws body tinted by armor, head, weapon on the facing side and the swing flash
func DrawPlayer(r Renderer, cam *camera.Camera, p *actor.Player) {
	vw, vh := r.ViewportSize()
	sx, sy := cam.WorldToScreen(p.X, p.Y, vw, vh)

	body := armorColors[combat.ArmorNone]
	if p.Armor < combat.ArmorCount {
		body = armorColors[p.Armor]
	}
	r.DrawPolygon(sx, sy-10, 4, 20, 45, body)
	r.DrawCircle(sx, sy-35, 10, skin)

	side := 1.0
	if p.Facing.FacesLeft() {
		side = -1
	}
	weapon := core.LightGray
	if p.Weapon < combat.WeaponCount {
		weapon = weaponColors[p.Weapon]
	}
	r.DrawLine(sx+15*side, sy-20, sx+30*side, sy-35, 3, weapon)

	if p.AttackFlashActive() {
		r.DrawCircle(sx+25*side, sy-30, 8, attackFlash)
	}
}

// DrawFloatingText draws a label centered above its world anchor
// fade is the remaining lifetime fraction and drives alpha
func DrawFloatingText(r Renderer, cam *camera.Camera, text string, x, y, offsetY, fade float64) {
	vw, vh := r.ViewportSize()
	sx, sy := cam.WorldToScreen(x, y, vw, vh)
	fade = vmath.Clamp(fade, 0, 1)
	w, _ := r.MeasureText(text, parameter.FloatingTextSize)
	r.DrawText(text,
		sx-w/2,
		sy-parameter.FloatingTextBaseOffset-offsetY,
		parameter.FloatingTextSize,
		FloatingTextColor.WithAlpha(uint8(fade*255)),
	)
}
