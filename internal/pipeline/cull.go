package pipeline

import (
	"math"

	"github.com/spacehole-rogue/particle_globe/internal/geom"
)

// Decision is the outcome of the visibility rules for one particle.
type Decision uint8

const (
	Keep Decision = iota
	CullBackFace
	CullBehindPlanet
	CullOffscreen
	CullDim
	CullSatelliteHidden

	numDecisions
)

var decisionNames = [numDecisions]string{
	"keep", "back-face", "behind-planet", "offscreen", "dim", "satellite-hidden",
}

func (d Decision) String() string {
	if d < numDecisions {
		return decisionNames[d]
	}
	return "unknown"
}

// Culled reports whether the decision drops the particle.
func (d Decision) Culled() bool { return d != Keep }

// cullGeometry applies the rules that need only position: the back-face
// test for surface groups, planet occlusion for orbiting groups, and the
// canvas bounds.
func cullGeometry(d *Descriptor, v geom.Vec3, radius float64, vp geom.Viewport, sx, sy float64) Decision {
	if !d.Orbiting {
		if v.X <= 0 {
			return CullBackFace
		}
	} else if v.X < 0 && v.ScreenDist() < radius {
		return CullBehindPlanet
	}
	if !vp.Contains(sx, sy) {
		return CullOffscreen
	}
	return Keep
}

// satelliteHidden is the extra satellite rule: behind the planet and
// within its horizontal extent.
func satelliteHidden(v geom.Vec3, radius float64) bool {
	return v.X < 0 && math.Abs(v.Y) <= radius
}

// Classify runs every visibility rule in order for one transformed
// particle and returns the first that drops it.
func Classify(d *Descriptor, v geom.Vec3, sx, sy, intensity, lightness float64, s Settings) Decision {
	if dec := cullGeometry(d, v, s.Radius, s.Viewport, sx, sy); dec.Culled() {
		return dec
	}
	return cullShaded(d, v, intensity, lightness, &s)
}

// cullShaded applies the rules that follow lighting: the dimness floor and
// the satellite's own occlusion.
func cullShaded(d *Descriptor, v geom.Vec3, intensity, lightness float64, s *Settings) Decision {
	if s.Dimness.Dim(intensity, lightness) {
		return CullDim
	}
	if d.Satellite && satelliteHidden(v, s.Radius) {
		return CullSatelliteHidden
	}
	return Keep
}
