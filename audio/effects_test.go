package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/wildlands/core"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Max(math.Abs(buf[i][0]), math.Abs(buf[i][1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("stream exceeded %d samples", limit)
	return total, peak
}

func TestCueStreamersBounded(t *testing.T) {
	limit := testRate.N(2 * time.Second)
	for cue := core.Cue(0); cue < core.CueCount; cue++ {
		s := CueStreamer(cue, 1.0, testRate)
		if s == nil {
			t.Errorf("%s: Expected a streamer", cue)
			continue
		}
		n, peak := drain(t, s, limit)
		if n == 0 {
			t.Errorf("%s: Expected samples", cue)
		}
		if peak > 1.0 {
			t.Errorf("%s: Expected peak <= 1, got %f", cue, peak)
		}
	}
}

func TestCueStreamerUnknown(t *testing.T) {
	if s := CueStreamer(core.CueCount, 1.0, testRate); s != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}

func TestOscillatorLength(t *testing.T) {
	s := newOscillator(440, 10*time.Millisecond, WaveSquare, testRate)
	n, peak := drain(t, s, testRate.N(time.Second))

	if n != testRate.N(10*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", testRate.N(10*time.Millisecond), n)
	}
	if peak != 1 {
		t.Errorf("Expected square peak 1, got %f", peak)
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	d := 100 * time.Millisecond
	s := newEnvelope(newOscillator(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("Expected %d samples, got %d", len(buf), n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[n/2][0] != 1 {
		t.Errorf("Expected full volume mid sustain, got %f", buf[n/2][0])
	}
	if math.Abs(buf[n-1][0]) > 0.01 {
		t.Errorf("Expected near silence at the end, got %f", buf[n-1][0])
	}
}

func TestSilentPlayerIgnoresCues(t *testing.T) {
	p := NewCuePlayer(0.8)
	// Not started: Play must not touch the speaker
	p.Play(core.CueHit)
	p.Stop()
}
