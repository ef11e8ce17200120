// Boxfolk renders a row of blocky figures that bob, swing their arms and turn
// in place. It runs in a window (default), in the terminal, or headless,
// writing screenshots driven by a JSON script.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/boxfolk"
	"github.com/phanxgames/boxfolk/internal/config"
	"github.com/phanxgames/boxfolk/term"
)

func main() {
	configFile := flag.String("config", "", "Path to a TOML config file")
	mode := flag.String("mode", "", "Run mode: window, headless or term (default: window)")
	width := flag.Int("width", 0, "Logical surface width (default: 960)")
	height := flag.Int("height", 0, "Logical surface height (default: 540)")
	hz := flag.Int("hz", 0, "Tick rate (default: 60)")
	ticks := flag.Uint64("ticks", 0, "Stop after N ticks (0 = run until closed)")
	seed := flag.Uint64("seed", 0, "Random seed for figure colors (0 = time based)")
	script := flag.String("script", "", "JSON script of waits, resizes and screenshots")
	shots := flag.String("shots", "", "Screenshot directory (default: screenshots)")
	format := flag.String("format", "", "Screenshot format: png, webp or tga (default: png)")
	debug := flag.Bool("debug", false, "Log per-frame timings to stderr")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	cfg.Resolve(config.Flags{
		Mode:   *mode,
		Width:  *width,
		Height: *height,
		Hz:     *hz,
		Ticks:  *ticks,
		Seed:   *seed,
		Script: *script,
		Shots:  *shots,
		Format: *format,
		Debug:  *debug,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	var runner *boxfolk.ScriptRunner
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		runner, err = boxfolk.LoadScript(data)
		if err != nil {
			log.Fatal(err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cfg.Mode {
	case config.ModeHeadless:
		err = runHeadless(ctx, cfg, runner)
	case config.ModeTerminal:
		err = runTerminal(ctx, cfg, runner)
	default:
		err = runWindow(cfg, runner)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	slog.Info("boxfolk stopped", "mode", cfg.Mode)
}

// buildScene creates the viewport and one built figure per configured slot.
func buildScene(cfg config.Config, surface boxfolk.Surface, size boxfolk.Size) (*boxfolk.Viewport, *boxfolk.Driver) {
	vp := boxfolk.NewViewport(surface, size)
	vp.ClearColor = boxfolk.ColorHex(cfg.ClearColor)
	vp.ScreenshotDir = cfg.Screenshot.Dir
	vp.ScreenshotFormat = cfg.Screenshot.Format
	vp.SetDebugMode(cfg.Debug)
	if cfg.PixelRatio > 0 {
		vp.SetPixelRatio(cfg.PixelRatio)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	drv := boxfolk.NewDriver()
	for _, f := range cfg.Figures {
		fig := boxfolk.NewFigure(boxfolk.Params{X: f.X, Y: f.Y, Z: f.Z}, vp, drv, rng)
		fig.Build()
	}
	slog.Info("scene built", "figures", len(cfg.Figures), "seed", seed,
		"width", size.Width, "height", size.Height)
	return vp, drv
}

func runWindow(cfg config.Config, runner *boxfolk.ScriptRunner) error {
	size := boxfolk.Size{Width: cfg.Width, Height: cfg.Height}
	vp, drv := buildScene(cfg, nil, size)
	if cfg.Ticks > 0 {
		limit := cfg.Ticks
		drv.OnTick(func(float64) {
			if drv.Ticks()+1 >= limit {
				drv.Stop()
			}
		})
	}
	return boxfolk.Run(vp, drv, boxfolk.RunConfig{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		TPS:        cfg.Hz,
		PixelRatio: cfg.PixelRatio,
		Script:     runner,
		ShowFPS:    cfg.Debug,
	})
}

func runHeadless(ctx context.Context, cfg config.Config, runner *boxfolk.ScriptRunner) error {
	size := boxfolk.Size{Width: cfg.Width, Height: cfg.Height}
	surface := &boxfolk.ImageSurface{}
	vp, drv := buildScene(cfg, surface, size)
	ticks := cfg.Ticks
	if ticks == 0 && runner == nil {
		// Without a script or a budget nothing would ever be observed.
		ticks = uint64(cfg.Hz)
	}
	err := boxfolk.RunHeadless(ctx, vp, drv, boxfolk.HeadlessConfig{
		Hz:     cfg.Hz,
		Ticks:  ticks,
		Script: runner,
	})
	slog.Info("headless run finished", "ticks", drv.Ticks(), "frames", vp.Frames())
	return err
}

func runTerminal(ctx context.Context, cfg config.Config, runner *boxfolk.ScriptRunner) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	surface := term.NewSurface(screen)
	vp, drv := buildScene(cfg, surface, surface.Size())
	if cfg.Ticks > 0 {
		limit := cfg.Ticks
		drv.OnTick(func(float64) {
			if drv.Ticks()+1 >= limit {
				drv.Stop()
			}
		})
	}
	return term.Run(ctx, surface, vp, drv, term.Config{Hz: cfg.Hz, Script: runner})
}
