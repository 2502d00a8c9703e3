// Package world samples the procedural terrain and decoration fields of the
// infinite map. A World is immutable after construction and safe to share.
package world

import (
	perlin "github.com/aquilax/go-perlin"

	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/parameter"
)

// World holds two independent seeded noise fields
type World struct {
	seed       int64
	terrain    *perlin.Perlin
	decoration *perlin.Perlin
}

// New builds both noise fields from the seed
// The decoration field is offset by a fixed constant so the two stay decorrelated
func New(seed int64) *World {
	return &World{
		seed:       seed,
		terrain:    perlin.NewPerlin(parameter.NoiseAlpha, parameter.NoiseBeta, parameter.NoiseOctaves, seed),
		decoration: perlin.NewPerlin(parameter.NoiseAlpha, parameter.NoiseBeta, parameter.NoiseOctaves, seed+parameter.DecorationSeedOffset),
	}
}

// Seed returns the construction seed
func (w *World) Seed() int64 {
	return w.seed
}

// TerrainSample returns the raw terrain noise value at a world position
func (w *World) TerrainSample(x, y float64) float64 {
	return w.terrain.Noise2D(x*parameter.TerrainNoiseScale, y*parameter.TerrainNoiseScale)
}

// TerrainAt classifies the biome at a world position
func (w *World) TerrainAt(x, y float64) Terrain {
	return classify(w.TerrainSample(x, y))
}

func classify(v float64) Terrain {
	switch {
	case v < parameter.TerrainSnowThreshold:
		return TerrainSnow
	case v < parameter.TerrainDesertThreshold:
		return TerrainGrass
	default:
		return TerrainDesert
	}
}

// BlendedColorAt returns the tile color with linear transitions across biome borders
func (w *World) BlendedColorAt(x, y float64) core.Color {
	return blendedColor(w.TerrainSample(x, y))
}

func blendedColor(v float64) core.Color {
	const band = parameter.TerrainBlendHalfWidth
	snow := TerrainSnow.BaseColor()
	grass := TerrainGrass.BaseColor()
	desert := TerrainDesert.BaseColor()

	switch {
	case v < parameter.TerrainSnowThreshold-band:
		return snow
	case v < parameter.TerrainSnowThreshold+band:
		t := (v - (parameter.TerrainSnowThreshold - band)) / (2 * band)
		return snow.Lerp(grass, t)
	case v < parameter.TerrainDesertThreshold-band:
		return grass
	case v < parameter.TerrainDesertThreshold+band:
		t := (v - (parameter.TerrainDesertThreshold - band)) / (2 * band)
		return grass.Lerp(desert, t)
	default:
		return desert
	}
}

// DecorationAt returns the prop on an integer tile, if any
// Presence comes from the decoration field, the variant from a positional hash
func (w *World) DecorationAt(tileX, tileY int) (Decoration, bool) {
	v := w.decoration.Noise2D(float64(tileX)*parameter.DecorationNoiseScale, float64(tileY)*parameter.DecorationNoiseScale)
	if v <= parameter.DecorationThreshold {
		return 0, false
	}

	terrain := w.TerrainAt(float64(tileX), float64(tileY))
	hash := TileHash(tileX, tileY) + uint32(w.seed)
	return decorationVariants[terrain][hash%2], true
}

// TileHash mixes integer coordinates with wraparound multiplication
func TileHash(x, y int) uint32 {
	return uint32(int32(x))*parameter.HashPrimeX ^ uint32(int32(y))*parameter.HashPrimeY
}
