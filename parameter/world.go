package parameter

// Terrain noise
const (
	// TerrainNoiseScale controls biome size
	TerrainNoiseScale = 0.05

	// TerrainSnowThreshold and TerrainDesertThreshold split the terrain sample into biomes
	TerrainSnowThreshold   = -0.33
	TerrainDesertThreshold = 0.33

	// TerrainBlendHalfWidth is the half-width of the color transition band around each threshold
	TerrainBlendHalfWidth = 0.15
)

// Decoration noise
const (
	DecorationNoiseScale = 0.5

	// DecorationThreshold gates decoration presence, about 30% of tiles clear it
	// Tiles with both coordinates even sit on the noise lattice and read zero
	DecorationThreshold = 0.055

	// DecorationSeedOffset decorrelates the decoration field from the terrain field
	DecorationSeedOffset = 1000
)

// Perlin field shape shared by both noise fields
const (
	NoiseAlpha   = 2.0
	NoiseBeta    = 2.0
	NoiseOctaves = 3
)

// Positional hash constants, large odd multipliers with wraparound
const (
	HashPrimeX uint32 = 374761393
	HashPrimeY uint32 = 668265263
)
