package parameter

import "time"

// Audio cue synthesis
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	HitSoundDuration = 60 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 40 * time.Millisecond

	HurtSoundDuration = 120 * time.Millisecond
	HurtSoundAttack   = 5 * time.Millisecond
	HurtSoundRelease  = 80 * time.Millisecond

	ChimeSoundDuration     = 200 * time.Millisecond
	ChimeSoundAttack       = 5 * time.Millisecond
	ChimeSoundRelease      = 150 * time.Millisecond
	ChimeSoundNoteInterval = 80 * time.Millisecond

	GameOverSoundDuration = 700 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 500 * time.Millisecond
)
