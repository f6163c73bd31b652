// Command globe renders an animated particle globe with rings, a sky layer
// and an orbiting satellite.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spacehole-rogue/particle_globe/assets"
	"github.com/spacehole-rogue/particle_globe/internal/config"
	"github.com/spacehole-rogue/particle_globe/internal/game"
	"github.com/spacehole-rogue/particle_globe/internal/host"
	"github.com/spacehole-rogue/particle_globe/internal/logging"
)

func main() {
	scene := flag.String("scene", "default", "Bundled scene to load")
	listScenes := flag.Bool("list-scenes", false, "List bundled scenes and exit")
	seed := flag.Uint64("seed", 0, "Particle seed (0 keeps the scene's seed)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	headless := flag.Bool("headless", false, "Run without a window and print a summary")
	ticks := flag.Uint64("ticks", 600, "Frames to draw in headless mode (0 runs until interrupted)")
	hz := flag.Int("hz", 60, "Headless frame rate")
	unpaced := flag.Bool("unpaced", false, "Do not sleep between headless frames")
	dimness := flag.String("dimness", "", "Dimness policy override (lightness, intensity)")
	quantize := flag.String("quantize", "", "Override colour quantisation (on, off)")
	presort := flag.String("presort", "", "Override particle pre-sort (on, off)")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	if *listScenes {
		names, err := config.SceneNames(assets.Scenes)
		if err != nil {
			log.Fatalf("list scenes: %v", err)
		}
		fmt.Println(strings.Join(names, "\n"))
		return
	}

	cfg, err := config.LoadNamed(assets.Scenes, *scene)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *dimness != "" {
		cfg.Dimness = *dimness
	}
	if err := applySwitch(&cfg.Quantize, *quantize); err != nil {
		log.Fatalf("-quantize: %v", err)
	}
	if err := applySwitch(&cfg.PreSort, *presort); err != nil {
		log.Fatalf("-presort: %v", err)
	}

	drv, err := game.NewDriver(cfg, logger.With("driver"))
	if err != nil {
		log.Fatalf("%v", err)
	}

	if !*headless {
		if err := host.RunWindow(drv, logger.With("window")); err != nil {
			log.Fatal(err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	rep, err := host.RunHeadless(ctx, drv, host.HeadlessConfig{Hz: *hz, Ticks: *ticks, Unpaced: *unpaced}, logger.With("headless"))
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	fmt.Println(rep.Render())
}

// applySwitch overrides a boolean setting from an on/off flag value.
func applySwitch(dst *bool, v string) error {
	switch strings.ToLower(v) {
	case "":
	case "on", "true", "1":
		*dst = true
	case "off", "false", "0":
		*dst = false
	default:
		return fmt.Errorf("want on or off, got %q", v)
	}
	return nil
}
