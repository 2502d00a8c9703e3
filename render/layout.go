package render

import (
	"github.com/lixenwraith/wildlands/inventory"
	"github.com/lixenwraith/wildlands/parameter"
)

// Rect is an axis-aligned screen rectangle
type Rect struct {
	X, Y, W, H float64
}

// Contains is inclusive on every edge
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// InventoryPanel is the inventory window centered on the viewport
func InventoryPanel(viewW, viewH float64) Rect {
	return Rect{
		X: viewW/2 - parameter.InventoryPanelWidth/2,
		Y: viewH/2 - parameter.InventoryPanelHeight/2,
		W: parameter.InventoryPanelWidth,
		H: parameter.InventoryPanelHeight,
	}
}

// SlotRect is the screen rectangle of backpack slot i
func SlotRect(i int, viewW, viewH float64) Rect {
	panel := InventoryPanel(viewW, viewH)
	row := i / parameter.InventorySlotsPerRow
	col := i % parameter.InventorySlotsPerRow
	stride := parameter.InventorySlotSize + parameter.InventorySlotPadding
	return Rect{
		X: panel.X + parameter.InventoryGridOffsetX + float64(col)*stride,
		Y: panel.Y + parameter.InventoryGridOffsetY + float64(row)*stride,
		W: parameter.InventorySlotSize,
		H: parameter.InventorySlotSize,
	}
}

// SlotAt resolves a screen position to a backpack slot index
// Empty slots are hit too; removing from an empty slot is a no-op for the caller
func SlotAt(x, y, viewW, viewH float64) (int, bool) {
	for i := 0; i < inventory.Capacity; i++ {
		if SlotRect(i, viewW, viewH).Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}
