package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Tones
const (
	CatchToneHz       = 880
	CatchToneDuration = 50 * time.Millisecond

	PowerUpStartHz    = 440
	PowerUpEndHz      = 1320
	PowerUpDuration   = 250 * time.Millisecond
	PowerDownHz       = 330
	PowerDownDuration = 200 * time.Millisecond

	GameOverBuzzHz   = 120
	GameOverDuration = 400 * time.Millisecond
)
