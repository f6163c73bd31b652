package geom

// Viewport is the canvas the globe is centred in.
type Viewport struct {
	Width, Height int
	halfW, halfH  float64
}

// NewViewport creates a viewport of the given size. Half extents are
// truncated to whole pixels.
func NewViewport(width, height int) Viewport {
	return Viewport{
		Width:  width,
		Height: height,
		halfW:  float64(width >> 1),
		halfH:  float64(height >> 1),
	}
}

// Center returns the canvas centre in pixels.
func (vp Viewport) Center() (float64, float64) {
	return vp.halfW, vp.halfH
}

// Project maps a camera-space point onto the canvas. Depth is dropped.
func (vp Viewport) Project(v Vec3) (float64, float64) {
	return v.Y + vp.halfW, vp.halfH - v.Z
}

// Contains reports whether a projected point falls on the canvas.
func (vp Viewport) Contains(sx, sy float64) bool {
	return sx >= 0 && sy >= 0 && sx < float64(vp.Width) && sy < float64(vp.Height)
}

// ProjectPerspective maps a point with a perspective divide, the camera
// sitting focal units in front of the globe centre on the depth axis.
// The shipped scenes leave it off; Project is the default.
func (vp Viewport) ProjectPerspective(v Vec3, focal float64) (float64, float64) {
	d := focal - v.X
	if d <= 0 {
		d = 1e-6
	}
	k := focal / d
	return v.Y*k + vp.halfW, vp.halfH - v.Z*k
}
