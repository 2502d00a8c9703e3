package parameter

// Health bar
const (
	HealthBarX      = 20.0
	HealthBarY      = 20.0
	HealthBarWidth  = 200.0
	HealthBarHeight = 25.0
	HealthBarText   = 20.0

	// Fill color bands by health fraction
	HealthBarHighFraction = 0.5
	HealthBarLowFraction  = 0.25
)

// Inventory panel, centered on the viewport
const (
	InventoryPanelWidth  = 400.0
	InventoryPanelHeight = 500.0
	InventorySlotSize    = 50.0
	InventorySlotPadding = 10.0
	InventorySlotsPerRow = 4

	// Offsets of the slot grid from the panel origin
	InventoryGridOffsetX = 20.0
	InventoryGridOffsetY = 200.0

	TooltipPadding  = 8.0
	TooltipNameSize = 18.0
	TooltipDescSize = 14.0
	TooltipOffset   = 15.0
)

// Debug overlay
const (
	OverlayTextSize   = 14.0
	OverlayLineHeight = 16.0
)
