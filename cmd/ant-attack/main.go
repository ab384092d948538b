package main

import (
	"cmp"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ant-attack/audio"
	"github.com/lixenwraith/ant-attack/config"
	"github.com/lixenwraith/ant-attack/constant"
	"github.com/lixenwraith/ant-attack/core"
	"github.com/lixenwraith/ant-attack/game"
	"github.com/lixenwraith/ant-attack/input"
	"github.com/lixenwraith/ant-attack/level"
	"github.com/lixenwraith/ant-attack/render"
)

var (
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/ant-attack.log")
	configFlag = flag.String("config", config.DefaultPath, "YAML config file")
	levelFlag  = flag.String("level", "", "Level file, overrides the config; a .zst suffix reads it compressed")
)

func main() {
	// Panic Recovery: restore the terminal before the stack trace is printed
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)

	err := run()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ant-attack: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config at path; only a missing default file falls back to built-in settings
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) && path == config.DefaultPath {
		log.Printf("No %s, using defaults", path)
		return config.Default(), nil
	}
	return nil, err
}

func run() error {
	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return err
	}
	km, err := cfg.Keymap()
	if err != nil {
		return fmt.Errorf("controls: %w", err)
	}

	lvl, err := level.Load(cmp.Or(*levelFlag, cfg.Level))
	if err != nil {
		return err
	}
	world, err := lvl.NewWorld()
	if err != nil {
		return err
	}
	log.Printf("Level %s: %dx%d, %d rounds", lvl.Name, lvl.Voxels.SizeX, lvl.Voxels.SizeY, len(lvl.Layout.Hostages))

	// Audio is optional, the game runs silent without a device
	sound := audio.NewManager(audio.Options{Volume: cfg.Audio.Volume, Muted: cfg.Audio.Mute})
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer func() {
		played, dropped := sound.Stats()
		log.Printf("Audio: %d cues played, %d dropped", played, dropped)
		sound.Cleanup()
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	core.SetCrashFinalizer(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	keys := input.NewState(km)
	keys.SetWindows(cfg.HoldWindows())

	a := &app{
		session:  game.NewSession(world, sound, game.Options{Ammo: cfg.Game.Ammo, RoundTime: cfg.Game.RoundTime}),
		keys:     keys,
		sound:    sound,
		renderer: render.NewRenderer(render.ThemeFrom(cfg.Render.BlockColor, cfg.Render.Shading)),
	}
	a.renderer.Muted = sound.Muted()

	return a.loop(screen, cfg.FrameInterval())
}

// app ties the terminal loop to the session
type app struct {
	session  *game.Session
	keys     *input.State
	sound    *audio.Manager
	renderer *render.Renderer
}

// handleKey feeds a key event to the key state and handles the actions owned by the loop
// Returns false when the player quits
func (a *app) handleKey(ev *tcell.EventKey, now time.Time) bool {
	held := a.keys.KeyDown(input.ActionMute)
	switch a.keys.HandleEvent(ev, now) {
	case input.ActionQuit:
		return false
	case input.ActionMute:
		// Auto-repeat must not flip it back
		if !held {
			a.renderer.Muted = !a.sound.ToggleMute()
			log.Printf("Muted: %v", a.renderer.Muted)
		}
	case input.ActionVolumeUp:
		a.sound.SetVolume(a.sound.Volume() + constant.AudioVolumeStep)
		log.Printf("Volume: %.1f", a.sound.Volume())
	case input.ActionVolumeDown:
		a.sound.SetVolume(a.sound.Volume() - constant.AudioVolumeStep)
		log.Printf("Volume: %.1f", a.sound.Volume())
	}
	return true
}

// step advances one frame at now and draws it
func (a *app) step(s render.Surface, now time.Time, dt time.Duration) {
	a.keys.Update(now)
	a.session.Update(min(dt, constant.MaxFrameDelta), a.keys)
	a.renderer.Draw(s, a.session)
}

// loop polls terminal events on a goroutine and runs fixed-interval frames until quit
func (a *app) loop(screen tcell.Screen, interval time.Duration) error {
	events := make(chan tcell.Event, constant.InputEventBuffer)
	core.Go(func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	var state game.InterfaceState
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.handleKey(ev, time.Now()) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			a.step(screen, now, now.Sub(last))
			last = now
			screen.Show()

			if s := a.session.State(); s != state {
				log.Printf("State %v -> %v", state, s)
				state = s
			}
		}
	}
}
