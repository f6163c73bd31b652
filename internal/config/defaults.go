package config

import "github.com/spacehole-rogue/particle_globe/internal/geom"

// Angular steps at 60 frames per second.
const (
	framesPerSecond = 60
	surfacePeriod   = 30 // seconds per rotation
)

// SurfaceLonStep turns the surface once every surfacePeriod seconds.
const SurfaceLonStep = geom.Tau / framesPerSecond / surfacePeriod

// Default returns the built-in scene: a lit globe with an atmosphere,
// a blinking satellite and two tilted rings.
func Default() Config {
	return Config{
		Name:       "default",
		Width:      1280,
		Height:     720,
		Radius:     200,
		Light:      Light{X: 0.4, Y: 0.3, Z: 0.3},
		Seed:       1,
		Stars:      400,
		Planet:     true,
		Rim:        true,
		Dimness:    "lightness",
		Quantize:   true,
		QuantStep:  10,
		PreSort:    true,
		SortMargin: geom.Tau / 360,
		Focal:      1200,
		OffsetStep: 5,
		Groups: []GroupSpec{
			{
				Name:          "surface",
				Kind:          "surface",
				Count:         20000,
				ElevMin:       1,
				ElevMax:       1,
				LonStep:       SurfaceLonStep,
				Hue:           220,
				HueSpan:       140,
				Saturation:    100,
				Lightness:     5,
				LightnessBand: 40,
				PixelSize:     1,
			},
			{
				Name:          "sky",
				Kind:          "sky",
				Count:         4000,
				ElevMin:       1.06,
				ElevMax:       1.12,
				LatStep:       SurfaceLonStep / 4,
				LonStep:       SurfaceLonStep * 1.5,
				Hue:           190,
				Saturation:    60,
				Lightness:     20,
				LightnessBand: 30,
				PixelSize:     1,
			},
			{
				Name:          "satellite",
				Kind:          "satellite",
				Count:         1,
				ElevMin:       1.7,
				LatSpread:     0.001,
				LonStep:       geom.Tau / framesPerSecond / 8,
				TiltPitchDeg:  12,
				Hue:           0,
				Saturation:    100,
				Lightness:     30,
				LightnessBand: 40,
				PixelSize:     3,
			},
			{
				Name:          "inner ring",
				Kind:          "inner_ring",
				Count:         8000,
				ElevMin:       1.35,
				ElevMax:       1.6,
				LatSpread:     0.01,
				LonStep:       SurfaceLonStep * 2,
				TiltYawDeg:    8,
				TiltPitchDeg:  18,
				Hue:           35,
				Saturation:    70,
				Lightness:     35,
				LightnessBand: 25,
				PixelSize:     1,
			},
			{
				Name:          "outer ring",
				Kind:          "outer_ring",
				Count:         6000,
				ElevMin:       1.7,
				ElevMax:       2.1,
				LatSpread:     0.01,
				LonStep:       SurfaceLonStep * 1.2,
				TiltYawDeg:    8,
				TiltPitchDeg:  18,
				Hue:           30,
				Saturation:    40,
				Lightness:     30,
				LightnessBand: 25,
				PixelSize:     1,
			},
		},
	}
}
