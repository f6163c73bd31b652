package pipeline

import (
	"math"

	"github.com/spacehole-rogue/particle_globe/internal/geom"
	"github.com/spacehole-rogue/particle_globe/internal/light"
	"github.com/spacehole-rogue/particle_globe/internal/particle"
)

// Settings are fixed for the life of a Pipeline.
type Settings struct {
	Viewport    geom.Viewport
	Radius      float64
	Light       light.Source
	Dimness     Dimness
	Quantize    bool
	QuantStep   float64
	Perspective bool
	Focal       float64
}

// Counters accumulate over one frame.
type Counters struct {
	Rendered      int
	Culled        int
	StyleSets     int
	StyleSwitches int
	ByDecision    [numDecisions]int

	MinLightness float64
	MaxLightness float64
}

// Add merges o into c.
func (c *Counters) Add(o Counters) {
	c.Rendered += o.Rendered
	c.Culled += o.Culled
	c.StyleSets += o.StyleSets
	c.StyleSwitches += o.StyleSwitches
	for i := range c.ByDecision {
		c.ByDecision[i] += o.ByDecision[i]
	}
	c.MinLightness = math.Min(c.MinLightness, o.MinLightness)
	c.MaxLightness = math.Max(c.MaxLightness, o.MaxLightness)
}

func (c *Counters) record(dec Decision) {
	c.ByDecision[dec]++
	if dec.Culled() {
		c.Culled++
	} else {
		c.Rendered++
	}
}

func (c *Counters) sample(l float64) {
	c.MinLightness = math.Min(c.MinLightness, l)
	c.MaxLightness = math.Max(c.MaxLightness, l)
}

// NewCounters returns zero counts with an empty lightness range.
func NewCounters() Counters {
	return Counters{MinLightness: math.Inf(1), MaxLightness: math.Inf(-1)}
}

// SatelliteFix is the last computed satellite position.
type SatelliteFix struct {
	Pos     geom.Vec3
	ScreenX float64
	ScreenY float64
	Visible bool
	Valid   bool
}

// Pipeline runs groups through transform, lighting, culling and drawing.
// It is not safe for concurrent use; one frame driver owns it.
type Pipeline struct {
	set    Settings
	offset float64

	counters Counters
	batch    batcher
	sat      SatelliteFix
}

// New creates a pipeline. A zero QuantStep falls back to DefaultQuantStep.
func New(set Settings) *Pipeline {
	if set.QuantStep <= 0 {
		set.QuantStep = DefaultQuantStep
	}
	p := &Pipeline{set: set}
	p.BeginFrame()
	return p
}

// Settings returns the pipeline's fixed settings.
func (p *Pipeline) Settings() Settings { return p.set }

// BeginFrame resets the per-frame counters and style state.
func (p *Pipeline) BeginFrame() {
	p.counters = NewCounters()
	p.batch.reset()
}

// Counters returns the counts accumulated since BeginFrame.
func (p *Pipeline) Counters() Counters { return p.counters }

// LightnessOffset returns the user brightness adjustment.
func (p *Pipeline) LightnessOffset() float64 { return p.offset }

// SetLightnessOffset replaces the user brightness adjustment.
func (p *Pipeline) SetLightnessOffset(v float64) { p.offset = v }

// Satellite returns the last satellite position computed by Run.
func (p *Pipeline) Satellite() SatelliteFix { return p.sat }

// Run advances every particle of g by one frame step and draws the
// visible ones onto s.
func (p *Pipeline) Run(g *particle.Group, d *Descriptor, nowMs float64, s Surface) {
	set := &p.set
	size := d.Size()
	for i := range g.Particles {
		pt := &g.Particles[i]
		pt.Lat, pt.Lon = geom.Advance(pt.Lat, pt.Lon, d.LatStep, d.LonStep)

		elev := pt.Elev + d.Breath.Offset(pt.Lat, pt.Lon, nowMs, set.Radius)
		v := geom.ToCamera(pt.Lat, pt.Lon, elev)
		if d.Tilt != nil {
			v = d.Tilt.Apply(v)
		}
		sx, sy := p.project(v)

		// Geometry first so hidden particles skip lighting.
		if dec := cullGeometry(d, v, set.Radius, set.Viewport, sx, sy); dec.Culled() {
			p.counters.record(dec)
			if d.Satellite {
				p.sat = SatelliteFix{Pos: v, ScreenX: sx, ScreenY: sy, Valid: true}
			}
			continue
		}

		var intensity float64
		if d.Satellite {
			intensity = light.Satellite(nowMs)
		} else {
			intensity = light.Intensity(set.Light, v)
		}
		sh := shade(d, intensity, p.offset)

		dec := cullShaded(d, v, intensity, sh.L, set)
		p.counters.record(dec)
		if d.Satellite {
			p.sat = SatelliteFix{Pos: v, ScreenX: sx, ScreenY: sy, Visible: !dec.Culled(), Valid: true}
		}
		if dec.Culled() {
			continue
		}

		p.counters.sample(sh.L)
		if set.Quantize {
			sh = sh.Quantize(set.QuantStep)
		}
		p.batch.use(s, sh.Pack(), &p.counters)
		if d.Satellite {
			s.FillCircle(sx, sy, float64(size))
		} else {
			s.FillRect(int(sx), int(sy), size, size)
		}
	}
}

func (p *Pipeline) project(v geom.Vec3) (float64, float64) {
	if p.set.Perspective {
		return p.set.Viewport.ProjectPerspective(v, p.set.Focal)
	}
	return p.set.Viewport.Project(v)
}
