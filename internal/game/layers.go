package game

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/spacehole-rogue/particle_globe/internal/config"
	"github.com/spacehole-rogue/particle_globe/internal/geom"
	"github.com/spacehole-rogue/particle_globe/internal/particle"
	"github.com/spacehole-rogue/particle_globe/internal/pipeline"
)

// Layer is one particle group with the descriptor that drives it.
type Layer struct {
	Kind  config.Kind
	Group *particle.Group
	Desc  pipeline.Descriptor
}

// BuildLayers allocates every group of cfg in draw order:
// surface, sky, satellite, inner ring, outer ring.
func BuildLayers(cfg config.Config, rng *rand.Rand) ([]Layer, error) {
	layers := make([]Layer, 0, len(cfg.Groups))
	for _, gs := range cfg.Groups {
		kind, err := config.ParseKind(gs.Kind)
		if err != nil {
			return nil, err
		}
		band := particle.Band{Min: gs.ElevMin * cfg.Radius, Max: math.Max(gs.ElevMax, gs.ElevMin) * cfg.Radius}
		g, err := particle.Generate(gs.Name, gs.Count, band, gs.LatSpread, rng)
		if err != nil {
			return nil, err
		}
		if cfg.PreSort && kind != config.KindSatellite {
			g.SortForBatching(cfg.SortMargin)
		}
		layers = append(layers, Layer{Kind: kind, Group: g, Desc: describe(gs, kind)})
	}
	slices.SortStableFunc(layers, func(a, b Layer) int { return cmp.Compare(a.Kind, b.Kind) })
	return layers, nil
}

func describe(gs config.GroupSpec, kind config.Kind) pipeline.Descriptor {
	d := pipeline.Descriptor{
		Name:          gs.Name,
		LatStep:       gs.LatStep,
		LonStep:       gs.LonStep,
		Breath:        geom.Breath{Amplitude: gs.BreathAmplitude, PeriodMs: gs.BreathPeriodMs},
		Hue:           gs.Hue,
		HueSpan:       gs.HueSpan,
		Saturation:    gs.Saturation,
		Lightness:     gs.Lightness,
		LightnessBand: gs.LightnessBand,
		PixelSize:     gs.PixelSize,
		Orbiting:      kind.Orbiting(),
		Satellite:     kind == config.KindSatellite,
	}
	if gs.TiltYawDeg != 0 || gs.TiltPitchDeg != 0 {
		d.Tilt = geom.NewRotation(radians(gs.TiltYawDeg), radians(gs.TiltPitchDeg))
	}
	return d
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
