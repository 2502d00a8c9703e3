package parameter

// Chunked spawning
const (
	// ChunkSize is the chunk edge length in tiles
	ChunkSize = 8

	// SpawnRange is the Chebyshev radius in chunks expanded around the player every frame
	SpawnRange = 3

	// SpawnChance is the modulus of the chunk hash spawn predicate (1 in N chunks spawn)
	SpawnChance = 5

	// SpawnSafeRadius protects the square around the world origin where the player starts
	SpawnSafeRadius = 5.0
)
