package pipeline

import (
	"image/color"
	"math"

	"github.com/spacehole-rogue/particle_globe/internal/render"
)

// DefaultQuantStep rounds lightness to tens.
const DefaultQuantStep = 10

// Shade is the colour of one particle before packing.
type Shade struct {
	H, S, L float64
}

// shade computes a particle's colour from its intensity and the current
// lightness offset. Lightness is clamped to [0, 100].
func shade(d *Descriptor, intensity, offset float64) Shade {
	return Shade{
		H: d.Hue + d.HueSpan*intensity,
		S: d.Saturation,
		L: clamp(d.Lightness+offset+intensity*d.LightnessBand, 0, 100),
	}
}

// Quantize rounds lightness (and a varying hue) to multiples of step,
// collapsing nearby shades onto one style.
func (sh Shade) Quantize(step float64) Shade {
	if step <= 0 {
		return sh
	}
	sh.L = clamp(math.Round(sh.L/step)*step, 0, 100)
	sh.H = math.Round(sh.H/step) * step
	return sh
}

// Pack converts the shade to a packed colour.
func (sh Shade) Pack() color.RGBA {
	return render.HSL(sh.H, sh.S, sh.L)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// batcher skips redundant fill changes and counts style switches between
// consecutive drawn primitives.
type batcher struct {
	last    color.RGBA
	started bool
}

func (b *batcher) reset() { *b = batcher{} }

// use sets c as the fill on s unless it is already active. It returns true
// when a style switch happened.
func (b *batcher) use(s Surface, c color.RGBA, cnt *Counters) bool {
	if b.started && c == b.last {
		return false
	}
	s.SetFill(c)
	cnt.StyleSets++
	switched := b.started
	if switched {
		cnt.StyleSwitches++
	}
	b.last = c
	b.started = true
	return switched
}
