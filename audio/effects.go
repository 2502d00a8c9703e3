package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/wildlands/core"
	"github.com/lixenwraith/wildlands/parameter"
	"github.com/lixenwraith/wildlands/vmath"
)

// WaveType selects an oscillator shape
type WaveType uint8

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator is a fixed-length mono tone duplicated to both channels
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(freq*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream of known length
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.total-e.release {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero or below is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// chime is a rising pair of sine notes; the generator package supplies the pure tones
func chime(low, high float64, rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		sine, err := generators.SineTone(rate, freq)
		if err != nil {
			return beep.Silence(rate.N(parameter.ChimeSoundNoteInterval))
		}
		d := parameter.ChimeSoundDuration
		return newEnvelope(beep.Take(rate.N(d), sine), d, parameter.ChimeSoundAttack, parameter.ChimeSoundRelease, rate)
	}
	return beep.Mix(
		note(low),
		beep.Seq(beep.Silence(rate.N(parameter.ChimeSoundNoteInterval)), note(high)),
	)
}

// CueStreamer synthesizes the sound of a cue at the given linear volume
// Unknown cues return nil
func CueStreamer(cue core.Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case core.CueHit:
		s = beep.Mix(
			newVolume(tone(0, WaveNoise, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate), 0.5),
			newVolume(tone(220, WaveSaw, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate), 0.5),
		)
	case core.CueHurt:
		s = tone(110, WaveSaw, parameter.HurtSoundDuration, parameter.HurtSoundAttack, parameter.HurtSoundRelease, rate)
	case core.CueKill:
		s = beep.Seq(
			tone(330, WaveSquare, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate),
			tone(165, WaveSquare, parameter.HurtSoundDuration, parameter.HurtSoundAttack, parameter.HurtSoundRelease, rate),
		)
	case core.CueLoot:
		s = chime(659.25, 987.77, rate) // E5, B5
	case core.CuePickup:
		s = chime(880, 1318.51, rate) // A5, E6
	case core.CueEquip:
		s = tone(523.25, WaveSquare, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	case core.CueGameOver:
		d := parameter.GameOverSoundDuration / 3
		s = beep.Seq(
			tone(392, WaveSine, d, parameter.GameOverSoundAttack, d/2, rate),
			tone(311.13, WaveSine, d, parameter.GameOverSoundAttack, d/2, rate),
			tone(261.63, WaveSine, parameter.GameOverSoundDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate),
		)
	default:
		return nil
	}
	return newVolume(s, volume*0.5)
}
