package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/natikozel/Snake/audio"
	"github.com/natikozel/Snake/config"
	"github.com/natikozel/Snake/engine"
	"github.com/natikozel/Snake/game"
	"github.com/natikozel/Snake/input"
	"github.com/natikozel/Snake/render"
)

var (
	envFileFlag = flag.String("env", config.DefaultEnvFile, "dotenv file with SNAKE_* settings")
	tickFlag    = flag.Duration("tick", 0, "delay between moves (overrides SNAKE_TICK_MS)")
	seedFlag    = flag.Uint64("seed", 0, "food placement seed, 0 for random (overrides SNAKE_SEED)")
	viFlag      = flag.Bool("vi", false, "also move with h, j, k, l")
	debugFlag   = flag.Bool("debug", false, "write logs to logs/snake.log")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads env settings, then lets explicitly passed flags win
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*envFileFlag)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tick":
			cfg.TickInterval = *tickFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "vi":
			cfg.ViKeys = *viFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer recoverTerminal(screen)

	screen.HideCursor()
	screen.EnableMouse()

	layout := render.NewLayout(cfg.Board)
	if w, h := screen.Size(); w < 1 || h < 1 {
		log.Printf("terminal reports no size")
	} else if minW, minH := layout.MinSize(); w < minW || h < minH {
		log.Printf("terminal %dx%d smaller than board needs (%dx%d), output is clipped", w, h, minW, minH)
	}
	orchestrator := render.NewDefaultOrchestrator(screen, layout, cfg.ViKeys)

	sounds := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	opts := []engine.Option{engine.WithSound(sounds)}
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithRand(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))))
	}
	eng := engine.New(cfg.Board, cfg.TickInterval, orchestrator, opts...)

	keys := input.DefaultKeyTable()
	if cfg.ViKeys {
		keys = input.ViKeyTable()
	}
	handler := input.NewHandler(keys, layout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer recoverTerminal(screen)
		defer cancel()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}

			intent := handler.Translate(ev)
			switch intent.Type {
			case input.IntentQuit:
				return
			case input.IntentResize:
				orchestrator.Resize()
				eng.Redraw()
			default:
				if gev, ok := intent.Event(); ok && !eng.Post(gev) {
					log.Printf("input queue full, dropped %s", gev.Kind)
				}
			}
		}
	}()

	log.Printf("snake starting: board %dx%d cell %d, tick %v", cfg.Board.Width, cfg.Board.Height, cfg.Board.CellSize, cfg.TickInterval)
	start := time.Now()
	eng.Run(ctx)

	final := eng.State()
	log.Printf("snake exiting after %v, last score %d (%s)", time.Since(start).Round(time.Second), final.Score, phaseSummary(final))
	return nil
}

func phaseSummary(s game.State) string {
	if s.Phase == game.PhaseGameOver {
		return s.Outcome.String()
	}
	return s.Phase.String()
}
