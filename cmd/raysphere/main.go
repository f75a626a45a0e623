package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/raysphere/config"
	"github.com/lixenwraith/raysphere/core"
	"github.com/lixenwraith/raysphere/engine"
	"github.com/lixenwraith/raysphere/parameter"
	"github.com/lixenwraith/raysphere/render"
	"github.com/lixenwraith/raysphere/sdf"
	"github.com/lixenwraith/raysphere/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if rendering crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "raysphere: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config.Default()
	if err := cfg.LoadEnv(config.EnvPath()); err != nil {
		return err
	}
	flags := flag.NewFlagSet("raysphere", flag.ContinueOnError)
	cfg.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: %+v", cfg)

	palette, err := render.LookupPalette(cfg.Palette, cfg.Glyphs)
	if err != nil {
		return err
	}
	marcher, err := render.NewMarcher(sdf.DefaultScene(), palette, cfg.MarchConfig())
	if err != nil {
		return err
	}

	ctx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	clock := engine.NewTimeProvider()
	anim := engine.NewPausableClock(clock)
	loopCfg := engine.LoopConfig{Interval: cfg.Interval(), Frames: cfg.Frames}
	if cfg.Debug {
		loopCfg.StatsEvery = parameter.StatsEveryFrames
	}

	switch cfg.Sink {
	case config.SinkTcell:
		sink, err := terminal.NewTcellScreenSink()
		if err != nil {
			return err
		}
		defer sink.Close()
		core.RegisterCrashSink(sink)
		defer core.RegisterCrashSink(nil)

		screenSize := func() (int, int, bool) {
			w, h := sink.Size()
			return w, h, w > 0 && h > 0
		}
		w, h := frameSize(cfg, screenSize, 0)
		frame, err := render.NewFrame(w, h)
		if err != nil {
			return err
		}
		loop := engine.NewLoop(clock, anim, marcher, frame, sink, loopCfg)

		fit := cfg.Width == 0 || cfg.Height == 0
		core.Go(func() {
			for ctl := range sink.Controls() {
				switch ctl {
				case terminal.ControlQuit:
					cancel()
					return
				case terminal.ControlPause:
					log.Printf("animation paused=%v", anim.Toggle())
				case terminal.ControlResize:
					if fit {
						loop.RequestResize(frameSize(cfg, screenSize, 0))
					}
				}
			}
		})
		return loop.Run(ctx)

	default:
		mode, _ := terminal.ParseColorMode(cfg.Color)
		sink := terminal.NewANSISink(os.Stdout, mode)
		// Redirected output gets plain rows without clear sequences
		sink.SetClear(terminal.IsTerminal(os.Stdout))
		if err := sink.Init(); err != nil {
			return err
		}
		defer sink.Close()

		// One row reserved: the newline after the last row would scroll the screen
		w, h := frameSize(cfg, func() (int, int, bool) {
			return terminal.Size(os.Stdout)
		}, 1)
		frame, err := render.NewFrame(w, h)
		if err != nil {
			return err
		}
		log.Printf("ansi sink: %dx%d color=%v", w, h, sink.ColorMode())
		return engine.NewLoop(clock, anim, marcher, frame, sink, loopCfg).Run(ctx)
	}
}

// frameSize resolves zero dimensions from the display, falling back to 80x24
// reserve rows are kept free at the bottom of a fitted height
func frameSize(cfg config.Config, query func() (int, int, bool), reserve int) (int, int) {
	w, h := cfg.Width, cfg.Height
	if w > 0 && h > 0 {
		return w, h
	}
	tw, th, ok := query()
	if !ok {
		tw, th = parameter.FallbackWidth, parameter.FallbackHeight
	}
	if w == 0 {
		w = tw
	}
	if h == 0 {
		h = max(1, th-reserve)
	}
	return w, h
}
