package game

import (
	"fmt"
	"image/color"

	"github.com/spacehole-rogue/particle_globe/internal/render"
)

// HUD is the on-canvas diagnostics panel. It is a Sink: the driver pushes
// a fresh Diagnostics once per second and the HUD redraws it every frame.
type HUD struct {
	panel render.Panel
	diag  Diagnostics
}

// NewHUD places the panel's top-left corner at (x, y).
func NewHUD(x, y int) *HUD {
	return &HUD{panel: render.Panel{X: x, Y: y}}
}

// Publish stores the latest diagnostics.
func (h *HUD) Publish(d Diagnostics) { h.diag = d }

// Draw renders the panel when the driver has stats enabled.
func (h *HUD) Draw(c *render.Canvas, drv *Driver) {
	if !drv.StatsVisible() {
		return
	}
	d := h.diag
	live := drv.Diagnostics()

	h.panel.Reset()
	h.panel.Add(fmt.Sprintf("FPS %5.1f", d.Snapshot.FPS), render.ColorHUD)
	h.panel.Add(fmt.Sprintf("rendered %6.0f  culled %6.0f", d.Snapshot.AvgRendered, d.Snapshot.AvgCulled), render.ColorHUD)
	h.panel.Add(fmt.Sprintf("style switches %6.0f", d.Snapshot.AvgStyleSwitches), render.ColorHUDDim)
	h.panel.Add("lightness offset "+live.Offset, render.ColorHUDAccent)
	h.panel.Add("satellite "+live.Satellite, render.ColorHUDDim)
	if live.State == Paused {
		h.panel.Add("PAUSED", render.ColorHUDWarn)
	}
	for _, m := range drv.Events().Recent(eventLogSize) {
		h.panel.Add(m.Text, msgColor(m.Priority))
	}
	h.panel.Draw(c)
}

func msgColor(p MsgPriority) color.RGBA {
	switch p {
	case MsgWarning:
		return render.ColorHUDWarn
	case MsgControl:
		return render.ColorHUDAccent
	default:
		return render.ColorHUDDim
	}
}
