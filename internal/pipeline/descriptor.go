// Package pipeline turns particle groups into drawn pixels: advance,
// transform, light, cull, shade and batch, once per group per frame.
package pipeline

import (
	"fmt"

	"github.com/spacehole-rogue/particle_globe/internal/geom"
)

// Descriptor describes how one particle group moves and looks.
// A single Run routine interprets it for every group.
type Descriptor struct {
	Name string

	LatStep float64 // radians per frame
	LonStep float64 // radians per frame
	Breath  geom.Breath
	Tilt    *geom.Rotation // nil for untilted groups

	Hue           float64 // degrees
	HueSpan       float64 // degrees added per unit of intensity
	Saturation    float64 // percent
	Lightness     float64 // percent
	LightnessBand float64 // percent added per unit of intensity
	PixelSize     int

	Orbiting  bool // rings and satellite: occluded by the planet disk
	Satellite bool // blinking single body
}

// Size returns the pixel size, at least one.
func (d *Descriptor) Size() int {
	if d.PixelSize < 1 {
		return 1
	}
	return d.PixelSize
}

// DimnessMode selects which value the dimness cull compares.
type DimnessMode int

const (
	// LightnessFloor drops particles whose final lightness is under the threshold.
	LightnessFloor DimnessMode = iota
	// IntensityFloor drops particles whose raw light intensity is under the threshold.
	IntensityFloor
)

func (m DimnessMode) String() string {
	switch m {
	case LightnessFloor:
		return "lightness"
	case IntensityFloor:
		return "intensity"
	default:
		return "unknown"
	}
}

// ParseDimnessMode parses "lightness" or "intensity".
func ParseDimnessMode(s string) (DimnessMode, error) {
	switch s {
	case "lightness", "":
		return LightnessFloor, nil
	case "intensity":
		return IntensityFloor, nil
	default:
		return 0, fmt.Errorf("unknown dimness policy %q", s)
	}
}

// Dimness is the visibility floor applied after the geometric culls.
type Dimness struct {
	Mode      DimnessMode
	Threshold float64
}

// Default dimness floors.
const (
	DefaultLightnessFloor = 5
	DefaultIntensityFloor = -0.5
)

// DefaultDimness returns the floor commonly used with mode.
func DefaultDimness(mode DimnessMode) Dimness {
	if mode == IntensityFloor {
		return Dimness{Mode: IntensityFloor, Threshold: DefaultIntensityFloor}
	}
	return Dimness{Mode: LightnessFloor, Threshold: DefaultLightnessFloor}
}

// Dim reports whether a particle with the given intensity and lightness
// falls under the floor.
func (d Dimness) Dim(intensity, lightness float64) bool {
	if d.Mode == IntensityFloor {
		return intensity < d.Threshold
	}
	return lightness < d.Threshold
}
