// Package light computes particle brightness from a fixed directional light.
package light

import (
	"math"

	"github.com/spacehole-rogue/particle_globe/internal/geom"
)

// Source is the direction the light comes from. It need not be unit length.
type Source = geom.Vec3

// Intensity returns the dot product of p's unit vector with src, roughly
// in [-1, 1] for a unit source. p must be non-zero; particle generation
// guarantees a positive elevation.
func Intensity(src Source, p geom.Vec3) float64 {
	return p.Dot(src) / p.Len()
}

// Satellite is the synthetic blink used for the satellite instead of
// Intensity, in [0, 1].
func Satellite(nowMs float64) float64 {
	return (math.Cos(nowMs/100) + 1) / 2
}
