package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/reddy-catch/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays fire-and-forget cues through a single mixer
// All methods are safe to call before Initialize or after Cleanup; they do nothing
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	volume      float64 // log2 gain applied to every cue
}

// NewSoundManager creates a sound manager; enabled sets the initial toggle state
func NewSoundManager(enabled bool, volume float64) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: enabled,
		volume:  volume,
	}
}

// Initialize opens the speaker. Calling it twice is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// SetEnabled flips cue playback without touching the speaker
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = enabled
	if !enabled && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
}

// Toggle inverts the enabled state and returns the new value
func (sm *SoundManager) Toggle() bool {
	sm.mu.Lock()
	next := !sm.enabled
	sm.mu.Unlock()
	sm.SetEnabled(next)
	return next
}

func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// Play queues the streamer for a cue
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return
	}

	s := cueStreamer(cue)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(&effects.Volume{Streamer: s, Base: 2, Volume: sm.volume})
	speaker.Unlock()
}

// cueStreamer builds a finite streamer for the cue
func cueStreamer(cue Cue) beep.Streamer {
	switch cue {
	case CueCatch:
		sine, err := generators.SineTone(sampleRate, parameter.CatchToneHz)
		if err != nil {
			return nil
		}
		return beep.Take(sampleRate.N(parameter.CatchToneDuration), sine)

	case CuePowerUp:
		return beep.Take(sampleRate.N(parameter.PowerUpDuration),
			NewSweepGenerator(sampleRate, parameter.PowerUpStartHz, parameter.PowerUpEndHz, parameter.PowerUpDuration))

	case CuePowerDown:
		return beep.Take(sampleRate.N(parameter.PowerDownDuration),
			NewSweepGenerator(sampleRate, parameter.PowerDownHz*2, parameter.PowerDownHz, parameter.PowerDownDuration))

	case CueGameOver:
		return beep.Take(sampleRate.N(parameter.GameOverDuration),
			NewBuzzGenerator(sampleRate, parameter.GameOverBuzzHz))
	}
	return nil
}

// durationSamples is exposed for tests
func durationSamples(d time.Duration) int {
	return sampleRate.N(d)
}
