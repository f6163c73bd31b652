package particle

import (
	"cmp"
	"math"
	"slices"

	"github.com/spacehole-rogue/particle_globe/internal/geom"
)

// DefaultMargin is one degree, the latitude width of a sort bucket.
const DefaultMargin = geom.Tau / 360

// Bucket returns the latitude bucket lat falls in for the given margin.
// Latitudes are folded into [0, 2π) first so buckets are stable however
// far a group has advanced.
func Bucket(lat, margin float64) int {
	if margin <= 0 {
		return 0
	}
	return int(math.Floor(wrap(lat) / margin))
}

// SortForBatching orders particles by latitude bucket, then by longitude.
// Neighbouring particles end up adjacent in the buffer, so consecutive
// draws tend to share a colour. The sort is stable and leaves the set of
// particles unchanged.
func (g *Group) SortForBatching(margin float64) {
	slices.SortStableFunc(g.Particles, func(a, b Particle) int {
		if c := cmp.Compare(Bucket(a.Lat, margin), Bucket(b.Lat, margin)); c != 0 {
			return c
		}
		return cmp.Compare(wrap(a.Lon), wrap(b.Lon))
	})
}

func wrap(a float64) float64 {
	a = math.Mod(a, geom.Tau)
	if a < 0 {
		a += geom.Tau
	}
	return a
}
