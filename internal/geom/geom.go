// Package geom holds the fixed globe geometry: spherical particles are
// turned into camera space, optionally tilted, and projected onto the canvas.
//
// Camera convention: X is depth (positive faces the viewer), Y maps to
// screen horizontal and Z to screen vertical (inverted on projection).
package geom

import "math"

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Vec3 is a camera-space position.
type Vec3 struct {
	X, Y, Z float64
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Scale returns v multiplied by k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// ScreenDist is the distance of v from the globe centre as seen on screen,
// ignoring depth.
func (v Vec3) ScreenDist() float64 {
	return math.Hypot(v.Y, v.Z)
}

// Advance moves a particle by one frame step.
// Angles are never normalised; only their sine and cosine are consumed.
func Advance(lat, lon, latStep, lonStep float64) (float64, float64) {
	return lat + latStep, lon + lonStep
}

// ToCamera converts spherical coordinates to camera space.
func ToCamera(lat, lon, elev float64) Vec3 {
	cl := math.Cos(lat)
	return Vec3{
		X: cl * math.Cos(lon) * elev,
		Y: cl * math.Sin(lon) * elev,
		Z: math.Sin(lat) * elev,
	}
}

// Breath is a pulsing term added to a particle's stored elevation.
// The zero value disables it.
type Breath struct {
	Amplitude float64 // fraction of the planet radius
	PeriodMs  float64 // time divisor in milliseconds
}

// Enabled reports whether b contributes anything.
func (b Breath) Enabled() bool {
	return b.Amplitude != 0 && b.PeriodMs > 0
}

// Offset returns the elevation delta for a particle at (lat, lon) at time now.
func (b Breath) Offset(lat, lon, nowMs, radius float64) float64 {
	if !b.Enabled() {
		return 0
	}
	return math.Cos(lat+lon+nowMs/b.PeriodMs) * b.Amplitude * radius
}
