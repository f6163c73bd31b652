package host

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spacehole-rogue/particle_globe/internal/config"
	"github.com/spacehole-rogue/particle_globe/internal/game"
	"github.com/spacehole-rogue/particle_globe/internal/logging"
)

func smallScene() config.Config {
	cfg := config.Default()
	cfg.Width, cfg.Height = 320, 240
	cfg.Radius = 80
	cfg.Stars = 20
	for i := range cfg.Groups {
		if cfg.Groups[i].Count > 1 {
			cfg.Groups[i].Count = 300
		}
	}
	return cfg
}

func newDriver(t *testing.T) *game.Driver {
	t.Helper()
	drv, err := game.NewDriver(smallScene(), logging.Discard())
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	return drv
}

func TestRunHeadlessTicks(t *testing.T) {
	drv := newDriver(t)
	rep, err := RunHeadless(context.Background(), drv, HeadlessConfig{Hz: 60, Ticks: 90, Unpaced: true}, logging.Discard())
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if rep.Frames != 90 || rep.Ticks != 90 {
		t.Errorf("frames=%d ticks=%d, want 90", rep.Frames, rep.Ticks)
	}
	if rep.Totals.Rendered == 0 {
		t.Error("nothing rendered")
	}
	// 90 frames at 60 Hz covers one full stats window.
	if rep.Last.Frames == 0 || math.Abs(rep.Last.FPS-60) > 1e-6 {
		t.Errorf("last snapshot = %+v, want 60 fps", rep.Last)
	}
}

func TestRunHeadlessDeterministic(t *testing.T) {
	run := func() Report {
		rep, err := RunHeadless(context.Background(), newDriver(t), HeadlessConfig{Hz: 30, Ticks: 20, Unpaced: true}, logging.Discard())
		if err != nil {
			t.Fatalf("RunHeadless: %v", err)
		}
		return rep
	}
	a, b := run(), run()
	if a.Totals.Rendered != b.Totals.Rendered || a.Totals.StyleSwitches != b.Totals.StyleSwitches {
		t.Errorf("runs differ: %+v vs %+v", a.Totals, b.Totals)
	}
}

func TestRunHeadlessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err := RunHeadless(ctx, newDriver(t), HeadlessConfig{Hz: 60, Ticks: 10, Unpaced: true}, logging.Discard())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if rep.Frames != 0 {
		t.Errorf("frames = %d, want 0", rep.Frames)
	}
}

func TestRunHeadlessPaced(t *testing.T) {
	rep, err := RunHeadless(context.Background(), newDriver(t), HeadlessConfig{Hz: 200, Ticks: 5}, logging.Discard())
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if rep.Frames != 5 {
		t.Errorf("frames = %d, want 5", rep.Frames)
	}
}

func TestReportRender(t *testing.T) {
	rep, err := RunHeadless(context.Background(), newDriver(t), HeadlessConfig{Hz: 60, Ticks: 3, Unpaced: true}, logging.Discard())
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	out := rep.Render()
	for _, want := range []string{"scene default", "frames", "3 of 3 ticks", "switches/frame", "back-face"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want game.Action
	}{
		{ebiten.KeyDigit0, game.ActionResetOffset},
		{ebiten.KeyR, game.ActionResetOffset},
		{ebiten.KeyMinus, game.ActionDecreaseOffset},
		{ebiten.KeyEqual, game.ActionIncreaseOffset},
		{ebiten.KeyUp, game.ActionIncreaseOffset},
		{ebiten.KeyS, game.ActionToggleStats},
		{ebiten.KeySpace, game.ActionTogglePause},
		{ebiten.KeyQ, game.ActionNone},
	}
	for _, tt := range tests {
		if got := ActionForKey(tt.key); got != tt.want {
			t.Errorf("ActionForKey(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestScreenPausedWithoutStats(t *testing.T) {
	drv := newDriver(t)
	cfg := drv.Config()
	hud := game.NewHUD(hudX, hudY)
	drv.AddSink(hud)
	s := newScreen(cfg.Width, cfg.Height, hud)

	s.refresh(drv, 0)
	if bytes.Equal(s.canvas.Pix(), s.scene) {
		t.Fatal("HUD not drawn over the scene")
	}
	scene := append([]byte(nil), s.scene...)

	drv.Handle(game.ActionTogglePause)
	s.refresh(drv, 16)
	if bytes.Equal(s.canvas.Pix(), s.scene) {
		t.Error("paused frame lost the HUD while stats are shown")
	}

	drv.Handle(game.ActionToggleStats)
	s.refresh(drv, 32)
	if !bytes.Equal(s.canvas.Pix(), scene) {
		t.Error("hidden HUD still on the paused frame")
	}

	drv.Handle(game.ActionTogglePause)
	s.refresh(drv, 48)
	if bytes.Equal(s.scene, scene) {
		t.Error("resumed frame did not replace the kept scene")
	}
}
