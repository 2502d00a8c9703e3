package parameter

// Player stats
const (
	PlayerMaxHealth = 50

	// PlayerSpeed in tiles per second
	PlayerSpeed = 5.0

	// PlayerAttackCooldown in seconds
	PlayerAttackCooldown = 0.3

	// PlayerAttackFlashThreshold keeps the swing flash visible while cooldown exceeds it
	PlayerAttackFlashThreshold = 0.2

	// PlayerRegenInterval is seconds per regenerated hit point
	PlayerRegenInterval = 1.0
)
