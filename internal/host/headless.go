package host

import (
	"context"
	"fmt"
	"time"

	"github.com/spacehole-rogue/particle_globe/internal/game"
	"github.com/spacehole-rogue/particle_globe/internal/logging"
	"github.com/spacehole-rogue/particle_globe/internal/render"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Hz      int    // frames per second of the virtual clock
	Ticks   uint64 // stop after this many frames; 0 runs until ctx ends
	Unpaced bool   // do not sleep between frames
}

// RunHeadless drives the pipeline onto an in-memory canvas. Timestamps
// come from a virtual clock advancing 1000/Hz ms per frame, so runs are
// repeatable. It returns ctx.Err() if cancelled before Ticks frames.
func RunHeadless(ctx context.Context, drv *game.Driver, cfg HeadlessConfig, log *logging.Logger) (Report, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	frameMs := 1000 / float64(cfg.Hz)
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return Report{}, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	c := drv.Config()
	canvas := render.NewCanvas(c.Width, c.Height)
	rep := Report{Scene: c.Name, Hz: cfg.Hz}
	started := time.Now()
	log.Info("headless run: scene %s at %d Hz, %d ticks", c.Name, cfg.Hz, cfg.Ticks)

	var tick <-chan time.Time
	if !cfg.Unpaced {
		t := time.NewTicker(d)
		defer t.Stop()
		tick = t.C
	}

	var n uint64
	for cfg.Ticks == 0 || n < cfg.Ticks {
		if tick != nil {
			select {
			case <-ctx.Done():
				return rep.finish(drv, n, started), ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return rep.finish(drv, n, started), err
		}
		drv.Frame(float64(n)*frameMs, canvas)
		n++
	}
	return rep.finish(drv, n, started), nil
}
