package audio

import "errors"

var (
	// ErrAudioUnavailable wraps speaker initialization failures
	ErrAudioUnavailable = errors.New("audio output unavailable")
)

// Cue identifies a one-shot sound effect
type Cue uint8

const (
	CueCatch Cue = iota
	CuePowerUp
	CuePowerDown
	CueGameOver
)
