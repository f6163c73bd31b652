package host

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spacehole-rogue/particle_globe/internal/game"
	"github.com/spacehole-rogue/particle_globe/internal/logging"
)

const title = "Particle Globe"

// hudX and hudY place the diagnostics panel.
const (
	hudX = 12
	hudY = 10
)

// Window is the Ebitengine game. It owns the canvas and input; all
// particle state lives in the driver.
type Window struct {
	drv    *game.Driver
	screen *screen
	img    *ebiten.Image
	start  time.Time
	log    *logging.Logger
}

// NewWindow wires a driver to a fresh canvas and HUD.
func NewWindow(drv *game.Driver, log *logging.Logger) *Window {
	cfg := drv.Config()
	hud := game.NewHUD(hudX, hudY)
	w := &Window{
		drv:    drv,
		screen: newScreen(cfg.Width, cfg.Height, hud),
		start:  time.Now(),
		log:    log,
	}
	drv.AddSink(hud)
	drv.AddSink(w)
	return w
}

// Publish refreshes the window title with the host's own frame rates.
func (w *Window) Publish(d game.Diagnostics) {
	ebiten.SetWindowTitle(fmt.Sprintf("%s  FPS %.0f  TPS %.0f", title, ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, a := range justPressed() {
		w.drv.Handle(a)
	}

	now := float64(time.Since(w.start)) / float64(time.Millisecond)
	w.screen.refresh(w.drv, now)
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	c := w.screen.canvas
	if w.img == nil {
		w.img = ebiten.NewImage(c.Width(), c.Height())
	}
	w.img.WritePixels(c.Pix())
	screen.DrawImage(w.img, nil)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.screen.canvas.Width(), w.screen.canvas.Height()
}

// RunWindow opens the window and blocks until it is closed or Escape is
// pressed. The driver's Frame runs once per tick whether or not it is
// paused, so a resume takes effect on the next refresh.
func RunWindow(drv *game.Driver, log *logging.Logger) error {
	cfg := drv.Config()
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	w := NewWindow(drv, log)
	log.Info("opening %dx%d window", cfg.Width, cfg.Height)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
