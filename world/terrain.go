package world

import "github.com/lixenwraith/wildlands/core"

// Terrain is a biome category derived from the terrain noise field
type Terrain uint8

const (
	TerrainGrass Terrain = iota
	TerrainDesert
	TerrainSnow
	TerrainCount // Sentinel for array sizing
)

var terrainNames = [TerrainCount]string{
	TerrainGrass:  "grass",
	TerrainDesert: "desert",
	TerrainSnow:   "snow",
}

var terrainColors = [TerrainCount]core.Color{
	TerrainGrass:  core.RGB(80, 160, 80),
	TerrainDesert: core.RGB(210, 180, 140),
	TerrainSnow:   core.RGB(240, 245, 255),
}

func (t Terrain) String() string {
	if t >= TerrainCount {
		return "unknown"
	}
	return terrainNames[t]
}

// BaseColor is the unblended tile color of the biome
func (t Terrain) BaseColor() core.Color {
	if t >= TerrainCount {
		return core.Black
	}
	return terrainColors[t]
}

// Decoration is a static prop placed on a tile, two variants per biome
type Decoration uint8

const (
	DecorationRock Decoration = iota
	DecorationTree
	DecorationCactus
	DecorationBones
	DecorationSnowyRock
	DecorationSnowyTree
	DecorationCount
)

// decorationVariants indexed by terrain, then by hash parity
var decorationVariants = [TerrainCount][2]Decoration{
	TerrainGrass:  {DecorationRock, DecorationTree},
	TerrainDesert: {DecorationCactus, DecorationBones},
	TerrainSnow:   {DecorationSnowyRock, DecorationSnowyTree},
}

var decorationNames = [DecorationCount]string{
	DecorationRock:      "rock",
	DecorationTree:      "tree",
	DecorationCactus:    "cactus",
	DecorationBones:     "bones",
	DecorationSnowyRock: "snowy rock",
	DecorationSnowyTree: "snowy tree",
}

func (d Decoration) String() string {
	if d >= DecorationCount {
		return "unknown"
	}
	return decorationNames[d]
}

// Terrain returns the biome the decoration belongs to
func (d Decoration) Terrain() Terrain {
	switch d {
	case DecorationRock, DecorationTree:
		return TerrainGrass
	case DecorationCactus, DecorationBones:
		return TerrainDesert
	case DecorationSnowyRock, DecorationSnowyTree:
		return TerrainSnow
	}
	return TerrainCount
}
