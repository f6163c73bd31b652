// Package particle stores the spherical particles of the globe.
//
// Each group owns one contiguous slice that the frame driver advances in
// place every frame; nothing is reallocated after start-up.
package particle

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/spacehole-rogue/particle_globe/internal/geom"
)

// Particle is one point on (or above) the globe.
type Particle struct {
	Lat  float64 // radians, advanced every frame
	Lon  float64 // radians, advanced every frame
	Elev float64 // distance from the globe centre, fixed at creation
}

// Band is the inclusive elevation range particles of a group are placed in.
type Band struct {
	Min, Max float64
}

// Fixed returns a band of zero width.
func Fixed(elev float64) Band { return Band{Min: elev, Max: elev} }

// Validate rejects bands that could produce a zero-length position.
func (b Band) Validate() error {
	if b.Min <= 0 {
		return fmt.Errorf("elevation %v must be positive", b.Min)
	}
	if b.Max < b.Min {
		return fmt.Errorf("elevation band inverted: max %v < min %v", b.Max, b.Min)
	}
	return nil
}

// Group is a named set of particles sharing a motion profile.
type Group struct {
	Name      string
	Particles []Particle
}

// ErrNegativeCount is returned when a group is asked for fewer than zero particles.
var ErrNegativeCount = errors.New("negative particle count")

// Generate creates n particles with uniform longitudes in [0, 2π) and an
// elevation drawn uniformly from band. With latSpread <= 0 latitudes are
// uniform in [0, 2π) too, giving a shell; otherwise they fall within
// latSpread/2 of the equator, giving a flat ring. A zero n yields an empty
// group.
func Generate(name string, n int, band Band, latSpread float64, rng *rand.Rand) (*Group, error) {
	if n < 0 {
		return nil, fmt.Errorf("group %s: %w", name, ErrNegativeCount)
	}
	if err := band.Validate(); err != nil {
		return nil, fmt.Errorf("group %s: %w", name, err)
	}
	g := &Group{Name: name, Particles: make([]Particle, n)}
	span := band.Max - band.Min
	for i := range g.Particles {
		p := &g.Particles[i]
		if latSpread > 0 {
			p.Lat = (rng.Float64() - 0.5) * latSpread
		} else {
			p.Lat = rng.Float64() * geom.Tau
		}
		p.Lon = rng.Float64() * geom.Tau
		p.Elev = band.Min
		if span > 0 {
			p.Elev += rng.Float64() * span
		}
	}
	return g, nil
}

// FromAngles builds a group from explicit coordinates, all at one elevation.
func FromAngles(name string, lats, lons []float64, elev float64) (*Group, error) {
	if len(lats) != len(lons) {
		return nil, fmt.Errorf("group %s: %d latitudes for %d longitudes", name, len(lats), len(lons))
	}
	if err := Fixed(elev).Validate(); err != nil {
		return nil, fmt.Errorf("group %s: %w", name, err)
	}
	g := &Group{Name: name, Particles: make([]Particle, len(lats))}
	for i := range lats {
		g.Particles[i] = Particle{Lat: lats[i], Lon: lons[i], Elev: elev}
	}
	return g, nil
}

// Len returns the number of particles in g.
func (g *Group) Len() int { return len(g.Particles) }

// Snapshot copies the current particles, for comparisons in tests and tools.
func (g *Group) Snapshot() []Particle {
	out := make([]Particle, len(g.Particles))
	copy(out, g.Particles)
	return out
}
