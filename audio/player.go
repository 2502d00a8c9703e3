// Package audio voices gameplay cues through the system speaker.
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/parameter"
	"github.com/lixenwraith/wildlands/vmath"
)

// CuePlayer mixes cue sounds into a single speaker stream
// Play is safe from any goroutine and returns immediately
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewCuePlayer creates a stopped player; volume is linear in [0, 1]
func NewCuePlayer(volume float64) *CuePlayer {
	return &CuePlayer{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: vmath.Clamp(volume, 0, 1),
	}
}

// Start opens the speaker; on error the player stays silent
func (p *CuePlayer) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the cue's sound; ignored until Start succeeds
func (p *CuePlayer) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.volume <= 0 {
		return
	}
	s := CueStreamer(cue, p.volume, p.rate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Stop clears pending sounds and closes the speaker
func (p *CuePlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
