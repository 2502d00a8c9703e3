// Package combat holds the stateless damage, armor and loot rules shared by
// every attacker.
package combat

import "github.com/lixenwraith/wildlands/parameter"

// RNG is the randomness the rules draw from
// *vmath.FastRand satisfies it; tests inject fixed sequences
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// DamageRange returns the inclusive damage bounds of a weapon
func DamageRange(w WeaponType) (int, int) {
	switch w {
	case WeaponSword:
		return parameter.SwordDamageMin, parameter.SwordDamageMax
	case WeaponAxe:
		return parameter.AxeDamageMin, parameter.AxeDamageMax
	case WeaponMace:
		return parameter.MaceDamage, parameter.MaceDamage
	}
	return 0, 0
}

// RollDamage rolls a uniform integer in the weapon's damage range
func RollDamage(w WeaponType, rng RNG) int {
	lo, hi := DamageRange(w)
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// DamageReduction is the flat amount an armor piece subtracts from each hit
func DamageReduction(a ArmorType) int {
	switch a {
	case ArmorLeather:
		return parameter.ReductionLeather
	case ArmorChainmail:
		return parameter.ReductionChainmail
	case ArmorPlatemail:
		return parameter.ReductionPlatemail
	}
	return 0
}

// ApplyReduction subtracts armor from a hit, never going below the minimum damage
func ApplyReduction(base int, a ArmorType) int {
	return max(base-DamageReduction(a), parameter.CombatMinDamage)
}

// RandomItem picks uniformly from AllItems
func RandomItem(rng RNG) Item {
	return AllItems[rng.Intn(len(AllItems))]
}

// RollLoot returns a dropped item with LootDropRate probability
func RollLoot(rng RNG) (Item, bool) {
	if rng.Float64() >= parameter.LootDropRate {
		return Item{}, false
	}
	return RandomItem(rng), true
}
