// Package shell is the host around the simulation core: start/restart, HUD text,
// sound toggle and the copy-contract-address button
package shell

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync/atomic"

	"github.com/lixenwraith/reddy-catch/audio"
	"github.com/lixenwraith/reddy-catch/engine"
	"github.com/lixenwraith/reddy-catch/event"
	"github.com/lixenwraith/reddy-catch/parameter"
	"github.com/lixenwraith/reddy-catch/status"
)

var (
	// ErrNoContractAddress is returned when copy is requested without a configured address
	ErrNoContractAddress = errors.New("no contract address configured")
)

// Sound is the subset of audio.SoundManager the shell drives
type Sound interface {
	Play(cue audio.Cue)
	Toggle() bool
	Enabled() bool
}

// Clipboard writes text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// AsyncClipboard is implemented by clipboards whose write settles later, such as the browser's
// done may be called from another goroutine
type AsyncClipboard interface {
	WriteAllAsync(text string, done func(error))
}

// Options wires optional collaborators; nil Sound or Clipboard disables the feature
type Options struct {
	Sound           Sound
	Clipboard       Clipboard
	ContractAddress string
	Metrics         *status.Registry // Optional; session counters are published after each frame
}

// HUD is the text the adapters display around the playfield
type HUD struct {
	Score      string
	Multiplier string
	Status     string
	CopyStatus string
	SoundLabel string
	Title      bool // No session started yet
	GameOver   bool
}

// Shell owns the game for one adapter and is driven from the adapter's loop goroutine
type Shell struct {
	game  *engine.Game
	sound Sound
	clip  Clipboard

	contract string
	started  bool

	copyStatus    string
	copyRemaining float64    // Seconds until copyStatus clears
	copyDone      chan error // Results of async clipboard writes, drained in Frame

	snap engine.Snapshot

	metrics *sessionMetrics
}

// sessionMetrics caches registry pointers so per-frame publishing is lock-free
type sessionMetrics struct {
	score, caught, missed, items *atomic.Int64
	elapsed                      *status.AtomicFloat
}

func newSessionMetrics(r *status.Registry) *sessionMetrics {
	return &sessionMetrics{
		score:   r.Ints.Get(status.KeyScore),
		caught:  r.Ints.Get(status.KeyCaught),
		missed:  r.Ints.Get(status.KeyMissed),
		items:   r.Ints.Get(status.KeyItems),
		elapsed: r.Floats.Get(status.KeyElapsed),
	}
}

func (m *sessionMetrics) publish(g *engine.Game) {
	st := g.Stats()
	m.score.Store(int64(g.Score()))
	m.caught.Store(int64(st.Caught))
	m.missed.Store(int64(st.Missed))
	m.items.Store(int64(g.ItemCount()))
	m.elapsed.Set(st.Elapsed)
}

func New(game *engine.Game, opts Options) *Shell {
	s := &Shell{
		game:     game,
		sound:    opts.Sound,
		clip:     opts.Clipboard,
		contract: opts.ContractAddress,
		copyDone: make(chan error, 1),
	}
	if opts.Metrics != nil {
		s.metrics = newSessionMetrics(opts.Metrics)
	}
	return s
}

// Start resets the core and begins ticking; also serves as Restart
func (s *Shell) Start() {
	s.game.Reset()
	s.started = true
	s.game.Events().Consume()
	log.Printf("shell: session started")
}

// Started reports whether any session has been started
func (s *Shell) Started() bool {
	return s.started
}

// Frame advances one adapter frame by dt seconds
// Timers first, then the core, then event fan-out, so the HUD read afterwards is consistent
func (s *Shell) Frame(dt float64) {
	if s.copyRemaining > 0 {
		s.copyRemaining -= dt
		if s.copyRemaining <= 0 {
			s.copyRemaining = 0
			s.copyStatus = ""
		}
	}

	select {
	case err := <-s.copyDone:
		s.setCopyResult(err)
	default:
	}

	if !s.started {
		return
	}

	s.game.Update(dt)

	for _, ev := range s.game.Events().Consume() {
		s.handleEvent(ev)
	}

	if s.metrics != nil {
		s.metrics.publish(s.game)
	}
}

func (s *Shell) handleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventItemCaught:
		if typ, ok := ev.Payload.(engine.ItemType); ok && typ == engine.ItemBamboo {
			s.play(audio.CueCatch)
		}
	case event.EventMultiplierActivated:
		s.play(audio.CuePowerUp)
	case event.EventMultiplierExpired:
		s.play(audio.CuePowerDown)
	case event.EventGameOver:
		s.play(audio.CueGameOver)
		st := s.game.Stats()
		log.Printf("shell: game over by %v, score %d, caught %d, missed %d, %.1fs",
			ev.Payload, s.game.Score(), st.Caught, st.Missed, st.Elapsed)
	}
}

func (s *Shell) play(cue audio.Cue) {
	if s.sound != nil {
		s.sound.Play(cue)
	}
}

// Press starts a drag at x
func (s *Shell) Press(x float64) {
	s.game.SetDragging(true)
	s.game.SetPlayerTargetX(x)
}

// Move forwards a pointer move; ignored unless a press is held
func (s *Shell) Move(x float64) {
	s.game.PointerMoved(x)
}

// Release ends a drag (button up or pointer left the playfield)
func (s *Shell) Release() {
	s.game.SetDragging(false)
}

// Nudge shifts the catcher by dx without touching drag state
func (s *Shell) Nudge(dx float64) {
	s.game.SetPlayerTargetX(s.game.Player().X + dx)
}

// ToggleSound flips cue playback and returns the new state
func (s *Shell) ToggleSound() bool {
	if s.sound == nil {
		return false
	}
	on := s.sound.Toggle()
	log.Printf("shell: sound %v", on)
	return on
}

// CopyContractAddress writes the configured address to the clipboard
// The outcome is shown in the HUD for a short while either way; for an async clipboard
// it is shown on the first Frame after the write settles
func (s *Shell) CopyContractAddress() error {
	var err error
	switch {
	case s.contract == "":
		err = ErrNoContractAddress
	case s.clip == nil:
		err = errors.New("clipboard unavailable")
	default:
		if ac, ok := s.clip.(AsyncClipboard); ok {
			ac.WriteAllAsync(s.contract, s.reportCopy)
			return nil
		}
		if werr := s.clip.WriteAll(s.contract); werr != nil {
			err = fmt.Errorf("copy contract address: %w", werr)
		}
	}
	s.setCopyResult(err)
	return err
}

// reportCopy hands an async result to the loop goroutine; a newer result replaces a pending one
func (s *Shell) reportCopy(err error) {
	for {
		select {
		case s.copyDone <- err:
			return
		default:
		}
		select {
		case <-s.copyDone:
		default:
		}
	}
}

func (s *Shell) setCopyResult(err error) {
	s.copyRemaining = parameter.CopyStatusTimeout.Seconds()
	if err != nil {
		s.copyStatus = parameter.CopyStatusFailed
		log.Printf("shell: %v", err)
		return
	}
	s.copyStatus = parameter.CopyStatusOK
}

// ContractAddress returns the configured address, possibly empty
func (s *Shell) ContractAddress() string {
	return s.contract
}

// HUD returns the current display strings
func (s *Shell) HUD() HUD {
	h := HUD{
		Score:      strconv.Itoa(s.game.Score()),
		Multiplier: "x" + strconv.Itoa(s.game.Multiplier()),
		Status:     s.game.StatusText(),
		CopyStatus: s.copyStatus,
		SoundLabel: parameter.SoundLabelOff,
		Title:      !s.started,
		GameOver:   s.started && s.game.IsTerminal(),
	}
	if !s.started {
		h.Status = parameter.StatusTitle
	}
	if s.sound != nil && s.sound.Enabled() {
		h.SoundLabel = parameter.SoundLabelOn
	}
	return h
}

// Snapshot returns the shell's reusable snapshot refreshed from the core
// Valid until the next call
func (s *Shell) Snapshot() *engine.Snapshot {
	s.game.SnapshotInto(&s.snap)
	return &s.snap
}

// Game exposes the core for adapters that need geometry
func (s *Shell) Game() *engine.Game {
	return s.game
}
