package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/wildlands/status"
)

// gameMetrics caches registry pointers so the frame loop never touches the registry maps
type gameMetrics struct {
	registry *status.Registry

	monstersLive  *atomic.Int64
	chunksVisited *atomic.Int64
	kills         *atomic.Int64
	lootDrops     *atomic.Int64
	pickups       *atomic.Int64
	damageTaken   *atomic.Int64
	frameDT       *status.AtomicFloat
	stateName     *status.AtomicString
}

func newGameMetrics(reg *status.Registry) gameMetrics {
	return gameMetrics{
		registry:      reg,
		monstersLive:  reg.Ints.Get(status.MetricMonstersLive),
		chunksVisited: reg.Ints.Get(status.MetricChunksVisited),
		kills:         reg.Ints.Get(status.MetricCombatKills),
		lootDrops:     reg.Ints.Get(status.MetricLootDrops),
		pickups:       reg.Ints.Get(status.MetricLootPickups),
		damageTaken:   reg.Ints.Get(status.MetricPlayerDamageTaken),
		frameDT:       reg.Floats.Get(status.MetricFrameDT),
		stateName:     reg.Strings.Get(status.MetricStateName),
	}
}

// resetRun zeroes the per-run counters; gauges are rewritten every frame
func (m *gameMetrics) resetRun() {
	m.kills.Store(0)
	m.lootDrops.Store(0)
	m.pickups.Store(0)
	m.damageTaken.Store(0)
}
