package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// circleSegments is the polygon resolution used for circles.
const circleSegments = 64

// Canvas is a CPU pixel buffer the globe is drawn on. The window host
// uploads it to the GPU once per frame; the headless host keeps it in memory.
type Canvas struct {
	img    *image.RGBA
	fill   color.RGBA
	stroke color.RGBA
	bg     color.RGBA
	z      *vector.Rasterizer
}

// NewCanvas creates a canvas cleared to the background colour.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		fill:   color.RGBA{255, 255, 255, 255},
		stroke: color.RGBA{255, 255, 255, 255},
		bg:     ColorBackground,
		z:      vector.NewRasterizer(1, 1),
	}
	c.Clear()
	return c
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Pix returns the raw RGBA bytes, row-major.
func (c *Canvas) Pix() []byte { return c.img.Pix }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) color.RGBA { return c.img.RGBAAt(x, y) }

// Clear fills the whole canvas with the background colour.
func (c *Canvas) Clear() {
	pix := c.img.Pix
	if len(pix) < 4 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = c.bg.R, c.bg.G, c.bg.B, c.bg.A
	for n := 4; n < len(pix); n *= 2 {
		copy(pix[n:], pix[:n])
	}
}

// SetFill sets the colour used by FillRect and FillCircle.
func (c *Canvas) SetFill(col color.RGBA) { c.fill = col }

// SetStroke sets the colour used by StrokeCircle.
func (c *Canvas) SetStroke(col color.RGBA) { c.stroke = col }

// FillRect paints an axis-aligned rectangle, clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.img.Rect)
	if r.Empty() {
		return
	}
	f := c.fill
	for py := r.Min.Y; py < r.Max.Y; py++ {
		i := c.img.PixOffset(r.Min.X, py)
		for px := r.Min.X; px < r.Max.X; px++ {
			c.img.Pix[i+0] = f.R
			c.img.Pix[i+1] = f.G
			c.img.Pix[i+2] = f.B
			c.img.Pix[i+3] = f.A
			i += 4
		}
	}
}

// FillCircle paints a filled anti-aliased disc.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	if r <= 0 {
		return
	}
	c.rasterize(cx, cy, r, c.fill, func(z *vector.Rasterizer, ox, oy float64) {
		circlePath(z, cx-ox, cy-oy, r, false)
	})
}

// StrokeCircle paints a ring of the given width centred on radius r.
func (c *Canvas) StrokeCircle(cx, cy, r, width float64) {
	if r <= 0 || width <= 0 {
		return
	}
	outer := r + width/2
	inner := math.Max(0, r-width/2)
	c.rasterize(cx, cy, outer, c.stroke, func(z *vector.Rasterizer, ox, oy float64) {
		circlePath(z, cx-ox, cy-oy, outer, false)
		if inner > 0 {
			circlePath(z, cx-ox, cy-oy, inner, true)
		}
	})
}

// rasterize runs build on a rasterizer covering the visible part of the
// circle's bounding box and composites the result over the canvas. Paths
// are given relative to the rasterizer origin; parts outside it are clipped.
func (c *Canvas) rasterize(cx, cy, r float64, col color.RGBA, build func(z *vector.Rasterizer, ox, oy float64)) {
	bounds := image.Rect(
		int(math.Floor(cx-r)), int(math.Floor(cy-r)),
		int(math.Ceil(cx+r))+1, int(math.Ceil(cy+r))+1,
	)
	clip := bounds.Intersect(c.img.Rect)
	if clip.Empty() {
		return
	}
	c.z.Reset(clip.Dx(), clip.Dy())
	c.z.DrawOp = draw.Over
	build(c.z, float64(clip.Min.X), float64(clip.Min.Y))
	c.z.Draw(c.img, clip, image.NewUniform(col), image.Point{})
}

// circlePath appends a closed polygonal circle. Reversed circles wind the
// other way and cut holes.
func circlePath(z *vector.Rasterizer, cx, cy, r float64, reverse bool) {
	dir := 1.0
	if reverse {
		dir = -1
	}
	z.MoveTo(float32(cx+r), float32(cy))
	for i := 1; i < circleSegments; i++ {
		a := dir * float64(i) / circleSegments * 2 * math.Pi
		z.LineTo(float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a)))
	}
	z.ClosePath()
}
