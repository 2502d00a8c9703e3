package parameter

// Ranges in tiles
const (
	// CombatAttackRange is melee reach for both player and monsters
	CombatAttackRange = 1.0

	// PickupRange is inclusive
	PickupRange = 0.5
)

// Damage
const (
	// CombatMinDamage is the floor after armor reduction on every attack path
	CombatMinDamage = 1

	SwordDamageMin = 1
	SwordDamageMax = 10
	AxeDamageMin   = 5
	AxeDamageMax   = 8
	MaceDamage     = 7
)

// Armor reduction
const (
	ReductionLeather   = 1
	ReductionChainmail = 2
	ReductionPlatemail = 4
)
