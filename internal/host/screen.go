package host

import (
	"github.com/spacehole-rogue/particle_globe/internal/game"
	"github.com/spacehole-rogue/particle_globe/internal/render"
)

// screen composes what the window shows: the last drawn scene with the
// HUD on top. The scene is kept apart from the HUD so a paused frame can
// be redrawn without the previous panel.
type screen struct {
	canvas *render.Canvas
	scene  []byte
	hud    *game.HUD
}

func newScreen(width, height int, hud *game.HUD) *screen {
	c := render.NewCanvas(width, height)
	return &screen{
		canvas: c,
		scene:  append([]byte(nil), c.Pix()...),
		hud:    hud,
	}
}

// refresh runs one driver frame at nowMs and overlays the HUD.
func (s *screen) refresh(drv *game.Driver, nowMs float64) {
	before := drv.Frames()
	drv.Frame(nowMs, s.canvas)
	if drv.Frames() != before {
		copy(s.scene, s.canvas.Pix())
	} else {
		copy(s.canvas.Pix(), s.scene)
	}
	s.hud.Draw(s.canvas, drv)
}
