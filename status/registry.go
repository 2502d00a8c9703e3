// Package status is the metric registry behind the debug overlay.
// Counters are atomics so a backend may read them off the frame goroutine.
package status

import (
	"fmt"
	"sync/atomic"
)

// Metric names written by the game loop
const (
	MetricMonstersLive      = "monsters.live"
	MetricChunksVisited     = "chunks.visited"
	MetricCombatKills       = "combat.kills"
	MetricLootDrops         = "loot.drops"
	MetricLootPickups       = "loot.pickups"
	MetricPlayerDamageTaken = "player.damage_taken"
	MetricFrameDT           = "frame.dt"
	MetricStateName         = "state.name"
	MetricAudioEnabled      = "audio.enabled"
)

// Registry groups metrics by value type
// Callers cache the returned pointers once and write them every frame
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines renders every metric as "name: value", strings first, then ints, floats, bools
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s: %s", k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s: %d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s: %.3f", k, v.Get()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s: %t", k, v.Load()))
	})
	return lines
}
