package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL packs a hue (degrees, any range), saturation and lightness
// (percent, 0-100) into an opaque RGBA colour.
func HSL(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, s/100, l/100).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// Fixed colours for the scene furniture and the HUD.
var (
	ColorBackground = color.RGBA{0, 0, 0, 255}
	ColorPlanet     = color.RGBA{4, 6, 18, 255}
	ColorRim        = color.RGBA{40, 44, 70, 255}
	ColorHUD        = color.RGBA{170, 170, 170, 255}
	ColorHUDDim     = color.RGBA{85, 85, 85, 255}
	ColorHUDWarn    = color.RGBA{255, 255, 85, 255}
	ColorHUDAccent  = color.RGBA{85, 255, 255, 255}
)

// Gray returns an opaque grey of brightness v in [0, 1].
func Gray(v float64) color.RGBA {
	c := uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	return color.RGBA{c, c, c, 255}
}
