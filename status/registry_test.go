package status

import (
	"slices"
	"sync"
	"testing"
)

func TestMetricMapReturnsStablePointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(MetricCombatKills)
	b := r.Ints.Get(MetricCombatKills)
	if a != b {
		t.Error("Expected same pointer for repeated Get")
	}

	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
	if r.TotalCount() != 1 {
		t.Errorf("Expected 1 metric, got %d", r.TotalCount())
	}
}

func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get(MetricStateName).Store("playing")
	r.Ints.Get(MetricMonstersLive).Store(4)
	r.Ints.Get(MetricChunksVisited).Store(49)
	r.Floats.Get(MetricFrameDT).Set(0.016)
	r.Bools.Get(MetricAudioEnabled).Store(true)

	want := []string{
		"state.name: playing",
		"chunks.visited: 49",
		"monsters.live: 4",
		"frame.dt: 0.016",
		"audio.enabled: true",
	}
	if got := r.Lines(); !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Errorf("Expected empty zero value, got %q", s.Load())
	}

	s.Store("abcdefghijklmnopqrstuvwxyz")
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(s.Load()))
	}
}

func TestAtomicFloatConcurrentSet(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("Expected zero value 0, got %f", f.Get())
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := 1.5
			if i%2 == 1 {
				v = 2.5
			}
			for j := 0; j < 1000; j++ {
				f.Set(v)
				if got := f.Get(); got != 1.5 && got != 2.5 {
					t.Errorf("Expected 1.5 or 2.5, got %f", got)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	if got := f.Get(); got != 1.5 && got != 2.5 {
		t.Errorf("Expected 1.5 or 2.5, got %f", got)
	}
}
