package parameter

// Monster behavior
const (
	// MonsterSpeed in tiles per second, slower than the player
	MonsterSpeed = 4.0

	// MonsterAttackCooldown in seconds
	MonsterAttackCooldown = 0.5

	// MonsterAggroRange is the chase detection radius
	MonsterAggroRange = 10.0

	// MonsterStopRange holds the monster in place once it is this close
	MonsterStopRange = 0.5
)

// Hit points per species
const (
	HPGoblin     = 10
	HPOgre       = 30
	HPOrc        = 20
	HPWyrm       = 50
	HPSnowGoblin = 10
	HPYeti       = 30
)

// Base damage per species
const (
	DamageGoblin     = 5
	DamageOgre       = 8
	DamageOrc        = 6
	DamageWyrm       = 10
	DamageSnowGoblin = 5
	DamageYeti       = 8
)
