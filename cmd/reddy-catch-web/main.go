// Command reddy-catch-web runs the catch game in a window, or in the browser when built for js/wasm
package main

import (
	_ "embed"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/reddy-catch/audio"
	"github.com/lixenwraith/reddy-catch/config"
	"github.com/lixenwraith/reddy-catch/core"
	"github.com/lixenwraith/reddy-catch/engine"
	"github.com/lixenwraith/reddy-catch/shell"
	"github.com/lixenwraith/reddy-catch/vmath"
	"github.com/lixenwraith/reddy-catch/web"
)

//go:embed default.toml
var defaultConfig string

var (
	configFlag   = flag.String("config", "", "Path to a TOML config file")
	seedFlag     = flag.Uint64("seed", 0, "RNG seed, 0 for time based")
	debugFlag    = flag.Bool("debug", false, "Log to stderr")
	contractFlag = flag.String("contract", "", "Contract address offered by the Copy button")
)

func loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if *configFlag != "" {
		cfg, err = config.Load(*configFlag)
	} else {
		cfg, err = config.Parse(defaultConfig)
	}
	if err != nil {
		return config.Config{}, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "contract":
			cfg.Shell.ContractAddress = *contractFlag
		}
	})
	return cfg, cfg.Validate()
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if !cfg.Debug {
		log.SetOutput(io.Discard)
	}

	if err := run(cfg); err != nil {
		log.Printf("run: %v", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	defer core.Recover()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	sound := audio.NewSoundManager(cfg.Audio.Enabled, cfg.Audio.Volume)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v", err)
	}
	defer sound.Cleanup()
	core.SetCrashCleanup(sound.Cleanup)

	var clip shell.Clipboard
	if shell.ClipboardSupported() {
		clip = shell.SystemClipboard{}
	}

	game := engine.New(engine.Options{
		Width:  cfg.Playfield.Width,
		Height: cfg.Playfield.Height,
		Source: vmath.NewFastRand(seed),
	})
	sh := shell.New(game, shell.Options{
		Sound:           sound,
		Clipboard:       clip,
		ContractAddress: cfg.Shell.ContractAddress,
	})
	app := web.NewApp(sh, engine.SystemTime{})

	w, h := app.ScreenSize()
	ebiten.SetWindowSize(int(float64(w)*cfg.Web.Scale), int(float64(h)*cfg.Web.Scale))
	ebiten.SetWindowTitle("Reddy Catch")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("starting: seed %d, playfield %vx%v", seed, cfg.Playfield.Width, cfg.Playfield.Height)
	return ebiten.RunGame(app)
}
