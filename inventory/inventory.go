// Package inventory holds the player's fixed-capacity backpack and items
// lying on the ground.
package inventory

import "github.com/lixenwraith/wildlands/combat"

// Capacity is the number of backpack slots
const Capacity = 8

// Inventory is an ordered item list that never exceeds Capacity
type Inventory struct {
	items []combat.Item
}

// New returns an empty inventory
func New() *Inventory {
	return &Inventory{items: make([]combat.Item, 0, Capacity)}
}

// Add appends an item, returning false when the inventory is full
func (inv *Inventory) Add(item combat.Item) bool {
	if len(inv.items) >= Capacity {
		return false
	}
	inv.items = append(inv.items, item)
	return true
}

// Remove takes the item at index out, shifting later items down
// Out-of-range indices remove nothing
func (inv *Inventory) Remove(index int) (combat.Item, bool) {
	if index < 0 || index >= len(inv.items) {
		return combat.Item{}, false
	}
	item := inv.items[index]
	inv.items = append(inv.items[:index], inv.items[index+1:]...)
	return item, true
}

// At returns the item at index without removing it
func (inv *Inventory) At(index int) (combat.Item, bool) {
	if index < 0 || index >= len(inv.items) {
		return combat.Item{}, false
	}
	return inv.items[index], true
}

// Items returns a copy of the slot contents in order
func (inv *Inventory) Items() []combat.Item {
	out := make([]combat.Item, len(inv.items))
	copy(out, inv.items)
	return out
}

func (inv *Inventory) Count() int {
	return len(inv.items)
}

func (inv *Inventory) IsFull() bool {
	return len(inv.items) >= Capacity
}

// GroundItem is a dropped item anchored at a world position
type GroundItem struct {
	X, Y float64
	Item combat.Item
}
