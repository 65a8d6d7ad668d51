package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bubble-slicer/audio"
	"github.com/lixenwraith/bubble-slicer/config"
	"github.com/lixenwraith/bubble-slicer/constants"
	"github.com/lixenwraith/bubble-slicer/engine"
	"github.com/lixenwraith/bubble-slicer/game"
	"github.com/lixenwraith/bubble-slicer/input"
	"github.com/lixenwraith/bubble-slicer/render"
)

var (
	configFlag      = flag.String("config", "", "Path to a TOML config file")
	debugFlag       = flag.Bool("debug", false, "Write a debug log to logs/")
	seedFlag        = flag.Int64("seed", 0, "Random seed for bubble spawns, 0 uses the clock")
	muteFlag        = flag.Bool("mute", false, "Start with sound muted")
	pauseBlocksFlag = flag.Bool("pause-blocks-slice", false, "Ignore slices while paused")
)

func main() {
	flag.Parse()

	// Config errors are reported before the terminal enters raw mode
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bubble-slicer: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBUBBLE-SLICER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(screen, cfg); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "bubble-slicer: %v\n", err)
		os.Exit(1)
	}
	screen.Fini()
}

// loadConfig reads the config file and applies explicitly set flags over it
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "mute":
			cfg.Muted = *muteFlag
		case "pause-blocks-slice":
			cfg.PauseBlocksSlice = *pauseBlocksFlag
		}
	})
	return cfg, nil
}

// run owns the main loop, the only goroutine that touches game state
func run(screen tcell.Screen, cfg config.Config) error {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground.Color()))

	if cfg.FitTerminal {
		cols, rows := screen.Size()
		cfg.Width, cfg.Height = render.PlayfieldSize(cols, rows)
	}

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(cfg.Muted)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("playfield %.0fx%.0f seed %d", cfg.Width, cfg.Height, seed)

	scheduler := engine.NewTickerScheduler(constants.FrameUpdateInterval)
	defer scheduler.Close()

	g, err := game.New(game.Options{
		Width:            cfg.Width,
		Height:           cfg.Height,
		Tuning:           &cfg.Tuning,
		PauseBlocksSlice: cfg.PauseBlocksSlice,
		Rand:             engine.NewRandSource(seed),
		Scheduler:        scheduler,
		Audio:            sound,
	})
	if err != nil {
		return err
	}

	renderer := render.NewTerminalRenderer(screen)
	handler := input.NewHandler(g, sound)

	g.Start()
	defer g.Stop()

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	renderer.RenderFrame(g.Frame(), sound.IsMuted())
	for {
		select {
		case ev := <-eventChan:
			if !handler.HandleEvent(ev) {
				log.Printf("quit with score %d after %d frames, uptime %s, paused %s",
					g.Stats().Score, g.Ticks(), g.Uptime().Round(time.Millisecond), g.PausedFor().Round(time.Millisecond))
				log.Printf("telemetry: %s", g.Status())
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
		case frame := <-scheduler.Frames():
			frame()
		}
		renderer.RenderFrame(g.Frame(), sound.IsMuted())
	}
}
