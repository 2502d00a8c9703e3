// Package spawn populates the infinite world with monsters one chunk at a time.
// Each chunk is evaluated at most once per run; its outcome depends only on the
// chunk coordinates and the world seed.
package spawn

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/wildlands/actor"
	"github.com/lixenwraith/wildlands/parameter"
	"github.com/lixenwraith/wildlands/vmath"
	"github.com/lixenwraith/wildlands/world"
)

// ChunkCoord addresses a ChunkSize x ChunkSize block of tiles
type ChunkCoord struct {
	X, Y int
}

// ChunkOf floors a world position to its chunk, negative positions round toward -inf
func ChunkOf(x, y float64) ChunkCoord {
	return ChunkCoord{
		X: int(math.Floor(x / parameter.ChunkSize)),
		Y: int(math.Floor(y / parameter.ChunkSize)),
	}
}

// ChunkHash is the positional hash driving the spawn predicate and placement
func ChunkHash(c ChunkCoord) uint32 {
	return world.TileHash(c.X, c.Y)
}

// Spawner owns the visited-chunk set of a run
type Spawner struct {
	world   *world.World
	visited mapset.Set[ChunkCoord]
}

func New(w *world.World) *Spawner {
	return &Spawner{
		world:   w,
		visited: mapset.New[ChunkCoord](),
	}
}

// SpawnChunk evaluates a chunk once; later calls for the same chunk return nothing
func (s *Spawner) SpawnChunk(c ChunkCoord) (actor.Monster, bool) {
	if s.visited.Has(c) {
		return actor.Monster{}, false
	}
	s.visited.Put(c)

	hash := ChunkHash(c)
	if hash%parameter.SpawnChance != 0 {
		return actor.Monster{}, false
	}

	half := parameter.ChunkSize / 2
	offX := int((hash>>8)%parameter.ChunkSize) - half
	offY := int((hash>>16)%parameter.ChunkSize) - half
	x := float64(c.X*parameter.ChunkSize + half + offX)
	y := float64(c.Y*parameter.ChunkSize + half + offY)

	if math.Abs(x) < parameter.SpawnSafeRadius && math.Abs(y) < parameter.SpawnSafeRadius {
		return actor.Monster{}, false
	}

	roster := actor.RosterFor(s.world.TerrainAt(x, y))
	if len(roster) == 0 {
		return actor.Monster{}, false
	}
	rng := vmath.NewFastRand(vmath.Mix64(uint64(hash) ^ uint64(s.world.Seed())<<32))
	return actor.NewMonster(x, y, roster[rng.Intn(len(roster))]), true
}

// SpawnAround evaluates every chunk within SpawnRange of the chunk containing (x, y)
func (s *Spawner) SpawnAround(x, y float64) []actor.Monster {
	center := ChunkOf(x, y)
	var spawned []actor.Monster
	for dy := -parameter.SpawnRange; dy <= parameter.SpawnRange; dy++ {
		for dx := -parameter.SpawnRange; dx <= parameter.SpawnRange; dx++ {
			if m, ok := s.SpawnChunk(ChunkCoord{X: center.X + dx, Y: center.Y + dy}); ok {
				spawned = append(spawned, m)
			}
		}
	}
	return spawned
}

func (s *Spawner) Visited(c ChunkCoord) bool {
	return s.visited.Has(c)
}

func (s *Spawner) VisitedCount() int {
	return s.visited.Size()
}
