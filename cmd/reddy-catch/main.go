// Command reddy-catch runs the catch game in a terminal
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reddy-catch/audio"
	"github.com/lixenwraith/reddy-catch/config"
	"github.com/lixenwraith/reddy-catch/core"
	"github.com/lixenwraith/reddy-catch/engine"
	"github.com/lixenwraith/reddy-catch/input"
	"github.com/lixenwraith/reddy-catch/parameter"
	"github.com/lixenwraith/reddy-catch/render"
	"github.com/lixenwraith/reddy-catch/shell"
	"github.com/lixenwraith/reddy-catch/status"
	"github.com/lixenwraith/reddy-catch/vmath"
)

var (
	configFlag   = flag.String("config", "", "Path to a TOML config file")
	seedFlag     = flag.Uint64("seed", 0, "RNG seed, 0 for time based")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/reddy-catch.log")
	colorFlag    = flag.String("color", "", "Color mode: auto, truecolor, 256")
	noSoundFlag  = flag.Bool("no-sound", false, "Start with sound disabled")
	contractFlag = flag.String("contract", "", "Contract address offered by the copy key")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "reddy-catch: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "reddy-catch: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers flags over the file over the defaults
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return config.Config{}, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "color":
			cfg.Terminal.Color = *colorFlag
		case "no-sound":
			cfg.Audio.Enabled = !*noSoundFlag
		case "contract":
			cfg.Shell.ContractAddress = *contractFlag
		}
	})
	return cfg, cfg.Validate()
}

func applyColorMode(mode string) {
	switch mode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}
}

func run(cfg config.Config) error {
	defer core.Recover()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting: seed %d, playfield %vx%v", seed, cfg.Playfield.Width, cfg.Playfield.Height)

	applyColorMode(cfg.Terminal.Color)
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	sound := audio.NewSoundManager(cfg.Audio.Enabled, cfg.Audio.Volume)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio: %v", err)
	}
	defer sound.Cleanup()

	var clip shell.Clipboard
	if shell.ClipboardSupported() {
		clip = shell.SystemClipboard{}
	}

	game := engine.New(engine.Options{
		Width:  cfg.Playfield.Width,
		Height: cfg.Playfield.Height,
		Source: vmath.NewFastRand(seed),
	})
	var metrics *status.Registry
	if cfg.Debug {
		metrics = status.NewRegistry()
	}
	sh := shell.New(game, shell.Options{
		Sound:           sound,
		Clipboard:       clip,
		ContractAddress: cfg.Shell.ContractAddress,
		Metrics:         metrics,
	})

	renderer := render.NewTerminalRenderer(screen, cfg.Playfield.Width, cfg.Playfield.Height)
	clock := engine.NewFrameClock(engine.SystemTime{}, parameter.MaxFrameDelta)
	loop := &terminalLoop{sh: sh, renderer: renderer, clock: clock, machine: input.NewMachine()}

	eventChan := make(chan tcell.Event, parameter.EventQueueSize)
	quit := make(chan struct{})
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	})
	defer close(quit)

	frameTicker := time.NewTicker(time.Second / time.Duration(cfg.Terminal.FPS))
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !loop.handleEvent(ev) {
				log.Printf("quit: score %d", game.Score())
				return nil
			}

		case <-frameTicker.C:
			dt := clock.Tick()
			sh.Frame(dt)

			frame := render.Frame{Snap: sh.Snapshot(), HUD: sh.HUD()}
			if metrics != nil {
				publishFPS(metrics, dt)
				frame.Debug = metrics.Line()
			}
			renderer.Render(frame)
		}
	}
}

// terminalLoop routes input for one terminal session
// Drag state lives in two places, the machine's held button and the core's dragging flag;
// every intent keeps them in step
type terminalLoop struct {
	sh       *shell.Shell
	renderer *render.TerminalRenderer
	clock    *engine.FrameClock
	machine  *input.Machine
}

// handleEvent parses and applies one tcell event; returns false when the player quits
func (l *terminalLoop) handleEvent(ev tcell.Event) bool {
	return l.handleIntent(l.machine.Process(ev, l.renderer.Layout()))
}

// handleIntent applies one input intent; returns false when the player quits
func (l *terminalLoop) handleIntent(in *input.Intent) bool {
	if in == nil {
		return true
	}

	sh := l.sh
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentResize:
		// A drag cannot survive the layout changing under it
		sh.Release()
		l.renderer.SyncSize()
	case input.IntentStart:
		sh.Start()
		l.clock.Restart()
		// Reset cleared the core's drag; a still-held button re-presses on its next motion
		l.machine.Reset()
	case input.IntentToggleSound:
		sh.ToggleSound()
	case input.IntentCopyContract:
		if err := sh.CopyContractAddress(); errors.Is(err, shell.ErrNoContractAddress) {
			log.Printf("copy requested without --contract")
		}
	case input.IntentPointerDown:
		sh.Press(in.X)
	case input.IntentPointerMove:
		sh.Move(in.X)
	case input.IntentPointerUp:
		sh.Release()
	case input.IntentNudge:
		sh.Nudge(in.DX)
	}
	return true
}

// publishFPS keeps an exponential moving average of the frame rate
func publishFPS(r *status.Registry, dt float64) {
	if dt <= 0 {
		return
	}
	fps := r.Floats.Get(status.KeyFPS)
	prev := fps.Get()
	if prev == 0 {
		fps.Set(1 / dt)
		return
	}
	fps.Set(prev + (1/dt-prev)*0.1)
}
