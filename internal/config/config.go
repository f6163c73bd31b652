// Package config holds the immutable scene configuration: canvas, planet,
// light, tuning switches and the particle group list.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/spacehole-rogue/particle_globe/internal/geom"
	"github.com/spacehole-rogue/particle_globe/internal/pipeline"
)

// Kind identifies a particle group's role. Groups are drawn in Kind order.
type Kind uint8

const (
	KindSurface Kind = iota
	KindSky
	KindSatellite
	KindInnerRing
	KindOuterRing
)

var kindNames = map[Kind]string{
	KindSurface:   "surface",
	KindSky:       "sky",
	KindSatellite: "satellite",
	KindInnerRing: "inner_ring",
	KindOuterRing: "outer_ring",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind parses a group kind name.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown group kind %q", s)
}

// Orbiting reports whether groups of this kind are occluded by the planet
// disk rather than back-face culled.
func (k Kind) Orbiting() bool {
	return k == KindSatellite || k == KindInnerRing || k == KindOuterRing
}

// Light is the JSON form of the light direction.
type Light struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec returns the light as a vector.
func (l Light) Vec() geom.Vec3 { return geom.Vec3{X: l.X, Y: l.Y, Z: l.Z} }

// GroupSpec is the declarative description of one particle group.
// Elevations are in planet radii; steps are radians per frame.
type GroupSpec struct {
	Name      string  `json:"name"`
	Kind      string  `json:"kind"`
	Count     int     `json:"count"`
	ElevMin   float64 `json:"elev_min"`
	ElevMax   float64 `json:"elev_max"`
	LatSpread float64 `json:"lat_spread"`
	LatStep   float64 `json:"lat_step"`
	LonStep   float64 `json:"lon_step"`

	TiltYawDeg   float64 `json:"tilt_yaw_deg"`
	TiltPitchDeg float64 `json:"tilt_pitch_deg"`

	BreathAmplitude float64 `json:"breath_amplitude"`
	BreathPeriodMs  float64 `json:"breath_period_ms"`

	Hue           float64 `json:"hue"`
	HueSpan       float64 `json:"hue_span"`
	Saturation    float64 `json:"saturation"`
	Lightness     float64 `json:"lightness"`
	LightnessBand float64 `json:"lightness_band"`
	PixelSize     int     `json:"pixel_size"`
}

// Config is the whole scene. It is treated as a value: components copy
// what they need at construction and never write back.
type Config struct {
	Name   string  `json:"name"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Radius float64 `json:"radius"`
	Light  Light   `json:"light"`
	Seed   uint64  `json:"seed"`
	Stars  int     `json:"stars"`
	Planet bool    `json:"planet"`
	Rim    bool    `json:"rim"`

	Dimness          string   `json:"dimness"`
	DimnessThreshold *float64 `json:"dimness_threshold,omitempty"`

	Quantize   bool    `json:"quantize"`
	QuantStep  float64 `json:"quant_step"`
	PreSort    bool    `json:"presort"`
	SortMargin float64 `json:"sort_margin"`

	Perspective bool    `json:"perspective"`
	Focal       float64 `json:"focal"`

	OffsetStep float64 `json:"offset_step"`

	Groups []GroupSpec `json:"groups"`
}

// Validate checks the configuration for values that would make the
// pipeline degenerate.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas %dx%d must be positive", c.Width, c.Height))
	}
	if c.Radius <= 0 {
		errs = append(errs, fmt.Errorf("radius %v must be positive", c.Radius))
	}
	if c.Light.Vec().Len() == 0 {
		errs = append(errs, errors.New("light direction must be non-zero"))
	}
	if c.Stars < 0 {
		errs = append(errs, fmt.Errorf("star count %d is negative", c.Stars))
	}
	if _, err := pipeline.ParseDimnessMode(c.Dimness); err != nil {
		errs = append(errs, err)
	}
	if c.Perspective {
		if reach := c.Radius * c.maxElevation(); c.Focal <= reach {
			errs = append(errs, fmt.Errorf("focal %v must exceed the outermost particle distance %v", c.Focal, reach))
		}
	}
	for i := range c.Groups {
		if err := c.Groups[i].validate(); err != nil {
			errs = append(errs, fmt.Errorf("group %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (g *GroupSpec) validate() error {
	k, err := ParseKind(g.Kind)
	if err != nil {
		return err
	}
	if g.Count < 0 {
		return fmt.Errorf("%s: count %d is negative", g.Name, g.Count)
	}
	if k == KindSatellite && g.Count > 1 {
		return fmt.Errorf("%s: a satellite group holds at most one particle, got %d", g.Name, g.Count)
	}
	if g.ElevMin <= 0 {
		return fmt.Errorf("%s: elevation %v must be positive", g.Name, g.ElevMin)
	}
	if g.ElevMax != 0 && g.ElevMax < g.ElevMin {
		return fmt.Errorf("%s: elevation band inverted", g.Name)
	}
	if g.breathes() && math.Abs(g.BreathAmplitude) >= g.ElevMin {
		return fmt.Errorf("%s: breath amplitude %v must stay below elevation %v", g.Name, g.BreathAmplitude, g.ElevMin)
	}
	return nil
}

func (g *GroupSpec) breathes() bool {
	return g.BreathAmplitude != 0 && g.BreathPeriodMs > 0
}

// reach is the farthest a particle of g gets from the centre, in radii.
func (g *GroupSpec) reach() float64 {
	r := math.Max(g.ElevMin, g.ElevMax)
	if g.breathes() {
		r += math.Abs(g.BreathAmplitude)
	}
	return r
}

// maxElevation is the largest reach over all groups, at least one radius.
func (c *Config) maxElevation() float64 {
	r := 1.0
	for i := range c.Groups {
		r = math.Max(r, c.Groups[i].reach())
	}
	return r
}

// DimnessPolicy returns the configured visibility floor.
func (c *Config) DimnessPolicy() pipeline.Dimness {
	mode, _ := pipeline.ParseDimnessMode(c.Dimness)
	d := pipeline.DefaultDimness(mode)
	if c.DimnessThreshold != nil {
		d.Threshold = *c.DimnessThreshold
	}
	return d
}

// Settings derives the pipeline settings.
func (c *Config) Settings() pipeline.Settings {
	return pipeline.Settings{
		Viewport:    geom.NewViewport(c.Width, c.Height),
		Radius:      c.Radius,
		Light:       c.Light.Vec(),
		Dimness:     c.DimnessPolicy(),
		Quantize:    c.Quantize,
		QuantStep:   c.QuantStep,
		Perspective: c.Perspective,
		Focal:       c.Focal,
	}
}
