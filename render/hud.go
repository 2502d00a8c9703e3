package render

import (
	"fmt"

	"github.com/lixenwraith/wildlands/actor"
	"github.com/lixenwraith/wildlands/combat"
	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/inventory"
	"github.com/lixenwraith/wildlands/parameter"
	"github.com/lixenwraith/wildlands/vmath"
)

// HealthColor picks the health bar fill band for a fraction of max health
func HealthColor(fraction float64) core.Color {
	switch {
	case fraction > parameter.HealthBarHighFraction:
		return core.Green
	case fraction > parameter.HealthBarLowFraction:
		return core.Yellow
	default:
		return core.Red
	}
}

// DrawHealthBar draws the fixed top-left player health bar
func DrawHealthBar(r Renderer, current, maxHealth int) {
	x, y := parameter.HealthBarX, parameter.HealthBarY
	w, h := parameter.HealthBarWidth, parameter.HealthBarHeight

	fraction := 0.0
	if maxHealth > 0 {
		fraction = vmath.Clamp(float64(current)/float64(maxHealth), 0, 1)
	}

	r.DrawRectangle(x, y, w, h, core.DarkGray)
	r.DrawRectangle(x, y, w*fraction, h, HealthColor(fraction))
	r.DrawRectangleLines(x, y, w, h, 2, core.White)

	label := fmt.Sprintf("%d/%d", current, maxHealth)
	tw, th := r.MeasureText(label, parameter.HealthBarText)
	r.DrawText(label, x+w/2-tw/2, y+h/2+th/2-2, parameter.HealthBarText, core.White)
}

// DrawInventory draws the equipment summary, the backpack grid and the hover tooltip
func DrawInventory(r Renderer, p *actor.Player, mouseX, mouseY float64) {
	vw, vh := r.ViewportSize()
	r.DrawRectangle(0, 0, vw, vh, InventoryDim)

	panel := InventoryPanel(vw, vh)
	r.DrawRectangle(panel.X, panel.Y, panel.W, panel.H, PanelFill)
	r.DrawRectangleLines(panel.X, panel.Y, panel.W, panel.H, 2, core.White)

	r.DrawText("INVENTORY", panel.X+20, panel.Y+35, 32, core.White)
	r.DrawText("Equipped:", panel.X+20, panel.Y+80, 20, core.Gray)
	r.DrawText("Weapon: "+p.Weapon.String(), panel.X+30, panel.Y+110, 18, core.Orange)
	armor := "None"
	if p.Armor != combat.ArmorNone {
		armor = p.Armor.String()
	}
	r.DrawText("Armor: "+armor, panel.X+30, panel.Y+135, 18, core.SkyBlue)
	r.DrawText("Backpack (click to equip):", panel.X+20, panel.Y+180, 20, core.Gray)

	hovered, hovering := SlotAt(mouseX, mouseY, vw, vh)
	for i := 0; i < inventory.Capacity; i++ {
		slot := SlotRect(i, vw, vh)
		item, filled := p.Inventory.At(i)

		bg := SlotFill
		if hovering && hovered == i && filled {
			bg = SlotHover
		}
		r.DrawRectangle(slot.X, slot.Y, slot.W, slot.H, bg)
		r.DrawRectangleLines(slot.X, slot.Y, slot.W, slot.H, 1, core.Gray)

		if filled {
			r.DrawPolygon(slot.X+slot.W/2, slot.Y+slot.H/2, 4, 15, 45, ItemColor(item))
		}
	}

	if hovering {
		if item, ok := p.Inventory.At(hovered); ok {
			drawTooltip(r, mouseX+parameter.TooltipOffset, mouseY+parameter.TooltipOffset, item)
		}
	}

	r.DrawText(fmt.Sprintf("%d/%d slots used", p.Inventory.Count(), inventory.Capacity),
		panel.X+20, panel.Y+panel.H-40, 16, core.Gray)
	r.DrawText("Click item to equip | Press I or ESC to close",
		panel.X+20, panel.Y+panel.H-20, 14, core.Gray)
}

// drawTooltip flips to the left of the cursor when it would leave the viewport
func drawTooltip(r Renderer, x, y float64, item combat.Item) {
	name, desc := item.Name(), item.Description()
	pad := parameter.TooltipPadding

	nw, _ := r.MeasureText(name, parameter.TooltipNameSize)
	dw, _ := r.MeasureText(desc, parameter.TooltipDescSize)
	w := max(nw, dw) + pad*2
	h := parameter.TooltipNameSize + parameter.TooltipDescSize + pad*2

	vw, _ := r.ViewportSize()
	if x+w > vw {
		x = x - w - parameter.TooltipOffset
	}

	r.DrawRectangle(x, y, w, h, TooltipFill)
	r.DrawRectangleLines(x, y, w, h, 1, core.White)
	r.DrawText(name, x+pad, y+pad+parameter.TooltipNameSize-4, parameter.TooltipNameSize, ItemColor(item))
	r.DrawText(desc, x+pad, y+pad+parameter.TooltipNameSize+parameter.TooltipDescSize, parameter.TooltipDescSize, core.LightGray)
}

// DrawGameOver dims the screen and prints the restart prompt
func DrawGameOver(r Renderer) {
	vw, vh := r.ViewportSize()
	r.DrawRectangle(0, 0, vw, vh, GameOverDim)

	const title = "GAME OVER"
	tw, _ := r.MeasureText(title, 64)
	r.DrawText(title, vw/2-tw/2, vh/2, 64, core.Red)

	const prompt = "Press SPACE or ENTER to restart"
	pw, _ := r.MeasureText(prompt, 24)
	r.DrawText(prompt, vw/2-pw/2, vh/2+50, 24, core.White)
}

// DrawOverlay lists debug lines in the top-right corner
func DrawOverlay(r Renderer, lines []string) {
	vw, _ := r.ViewportSize()
	var width float64
	for _, l := range lines {
		w, _ := r.MeasureText(l, parameter.OverlayTextSize)
		width = max(width, w)
	}
	x := vw - width - 20
	for i, l := range lines {
		r.DrawText(l, x, 20+float64(i+1)*parameter.OverlayLineHeight, parameter.OverlayTextSize, core.LightGray)
	}
}
