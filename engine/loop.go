package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/raysphere/parameter"
	"github.com/lixenwraith/raysphere/render"
	"github.com/lixenwraith/raysphere/terminal"
)

// Sink displays a finished frame; errors are fatal to the loop
type Sink interface {
	Present(g terminal.Grid) error
}

// Renderer fills a frame for animation time t in seconds
type Renderer interface {
	Render(f *render.Frame, t float64)
}

// LoopConfig controls pacing and termination
type LoopConfig struct {
	// Interval is the minimum spacing between frame starts
	Interval time.Duration
	// Frames stops the loop after this many frames, 0 runs until cancelled
	Frames int
	// StatsEvery logs FrameStats each N frames, 0 disables
	StatsEvery int
}

func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		Interval:   parameter.FrameInterval,
		StatsEvery: parameter.StatsEveryFrames,
	}
}

type frameSize struct{ w, h int }

// Loop paces rendering and presentation of one frame buffer
type Loop struct {
	clock    Clock
	anim     *PausableClock
	renderer Renderer
	sink     Sink
	cfg      LoopConfig

	frame  *render.Frame
	resize chan frameSize
	stats  FrameStats
}

func NewLoop(clock Clock, anim *PausableClock, renderer Renderer, frame *render.Frame, sink Sink, cfg LoopConfig) *Loop {
	return &Loop{
		clock:    clock,
		anim:     anim,
		renderer: renderer,
		sink:     sink,
		cfg:      cfg,
		frame:    frame,
		resize:   make(chan frameSize, 1),
	}
}

// RequestResize replaces the frame buffer before the next frame
// Safe to call from any goroutine; only the latest request is kept
func (l *Loop) RequestResize(w, h int) {
	req := frameSize{w, h}
	for {
		select {
		case l.resize <- req:
			return
		default:
		}
		select {
		case <-l.resize:
		default:
		}
	}
}

// Frame returns the current frame buffer; only valid while Run is not executing
func (l *Loop) Frame() *render.Frame { return l.frame }

// Stats returns accumulated frame statistics; only valid while Run is not executing
func (l *Loop) Stats() FrameStats { return l.stats }

// Run renders and presents frames until ctx is done or the frame limit is reached
// Cancellation is a normal stop and returns nil
func (l *Loop) Run(ctx context.Context) error {
	w, h := l.frame.Size()
	log.Printf("loop: start %dx%d interval=%v frames=%d", w, h, l.cfg.Interval, l.cfg.Frames)

	var last time.Time
	for n := 0; l.cfg.Frames == 0 || n < l.cfg.Frames; n++ {
		if ctx.Err() != nil {
			return l.stop(ctx.Err())
		}

		if n > 0 {
			if wait := l.cfg.Interval - l.clock.Now().Sub(last); wait > 0 {
				if err := l.clock.Sleep(ctx, wait); err != nil {
					if ctx.Err() != nil {
						return l.stop(err)
					}
					return fmt.Errorf("engine: frame %d: sleep: %w", n, err)
				}
			}
		}
		last = l.clock.Now()

		l.applyResize()

		l.renderer.Render(l.frame, l.anim.Seconds())
		l.stats.Record(l.clock.Now().Sub(last))

		if err := l.sink.Present(l.frame); err != nil {
			return fmt.Errorf("engine: frame %d: %w", n, err)
		}

		if l.cfg.StatsEvery > 0 && l.stats.Frames%l.cfg.StatsEvery == 0 {
			log.Printf("loop: %s", l.stats)
		}
	}
	log.Printf("loop: frame limit reached, %s", l.stats)
	return nil
}

func (l *Loop) applyResize() {
	select {
	case req := <-l.resize:
		if w, h := l.frame.Size(); w == req.w && h == req.h {
			return
		}
		f, err := render.NewFrame(req.w, req.h)
		if err != nil {
			log.Printf("loop: resize ignored: %v", err)
			return
		}
		l.frame = f
		log.Printf("loop: resized to %dx%d", req.w, req.h)
	default:
	}
}

func (l *Loop) stop(cause error) error {
	if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		log.Printf("loop: stopped (%v), %s", cause, l.stats)
		return nil
	}
	return cause
}
