package combat

import "fmt"

// WeaponType identifies a melee weapon
type WeaponType uint8

const (
	WeaponSword WeaponType = iota
	WeaponAxe
	WeaponMace
	WeaponCount // Sentinel for array sizing
)

// ArmorType identifies body armor; ArmorNone is the empty armor slot
type ArmorType uint8

const (
	ArmorNone ArmorType = iota
	ArmorLeather
	ArmorChainmail
	ArmorPlatemail
	ArmorCount
)

// ItemKind discriminates the Item union
type ItemKind uint8

const (
	ItemWeapon ItemKind = iota
	ItemArmor
)

// Item is a value-type piece of equipment
// Tagged union: only the field matching Kind is valid
type Item struct {
	Kind   ItemKind
	Weapon WeaponType // ItemWeapon
	Armor  ArmorType  // ItemArmor, never ArmorNone
}

// WeaponItem wraps a weapon
func WeaponItem(w WeaponType) Item {
	return Item{Kind: ItemWeapon, Weapon: w}
}

// ArmorItem wraps an armor piece
func ArmorItem(a ArmorType) Item {
	return Item{Kind: ItemArmor, Armor: a}
}

// AllItems lists every droppable item, the uniform loot pool
var AllItems = [...]Item{
	WeaponItem(WeaponSword),
	WeaponItem(WeaponAxe),
	WeaponItem(WeaponMace),
	ArmorItem(ArmorLeather),
	ArmorItem(ArmorChainmail),
	ArmorItem(ArmorPlatemail),
}

var weaponNames = [WeaponCount]string{
	WeaponSword: "Sword",
	WeaponAxe:   "Axe",
	WeaponMace:  "Mace",
}

var armorNames = [ArmorCount]string{
	ArmorNone:      "None",
	ArmorLeather:   "Leather Armor",
	ArmorChainmail: "Chainmail",
	ArmorPlatemail: "Platemail",
}

func (w WeaponType) String() string {
	if w >= WeaponCount {
		return "Unknown"
	}
	return weaponNames[w]
}

func (a ArmorType) String() string {
	if a >= ArmorCount {
		return "Unknown"
	}
	return armorNames[a]
}

// Name is the display name shown in pickups and tooltips
func (i Item) Name() string {
	switch i.Kind {
	case ItemWeapon:
		return i.Weapon.String()
	case ItemArmor:
		return i.Armor.String()
	}
	return "Unknown"
}

// Description summarizes the item's combat effect
func (i Item) Description() string {
	switch i.Kind {
	case ItemWeapon:
		lo, hi := DamageRange(i.Weapon)
		if lo == hi {
			return fmt.Sprintf("Damage: %d", lo)
		}
		return fmt.Sprintf("Damage: %d-%d", lo, hi)
	case ItemArmor:
		return fmt.Sprintf("Reduces damage by %d", DamageReduction(i.Armor))
	}
	return ""
}

func (i Item) String() string {
	return i.Name()
}

// Valid reports whether the item names a real weapon or armor piece
func (i Item) Valid() bool {
	switch i.Kind {
	case ItemWeapon:
		return i.Weapon < WeaponCount
	case ItemArmor:
		return i.Armor > ArmorNone && i.Armor < ArmorCount
	}
	return false
}
