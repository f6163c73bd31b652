package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/spacehole-rogue/particle_globe/internal/config"
	"github.com/spacehole-rogue/particle_globe/internal/logging"
	"github.com/spacehole-rogue/particle_globe/internal/pipeline"
	"github.com/spacehole-rogue/particle_globe/internal/render"
)

// eventLogSize is how many control events the HUD keeps.
const eventLogSize = 4

// Diagnostics is what the driver publishes to sinks once per second.
type Diagnostics struct {
	Snapshot  Snapshot
	Offset    string
	Satellite string
	State     State
}

// Sink receives diagnostics. It never feeds back into the driver.
type Sink interface {
	Publish(d Diagnostics)
}

// Driver owns the particle buffers and runs the pipeline once per frame.
// All gameplay state lives here; the host only supplies timestamps,
// actions and a surface.
type Driver struct {
	cfg    config.Config
	pipe   *pipeline.Pipeline
	layers []Layer
	stars  *StarField
	log    *logging.Logger

	centerX, centerY float64

	state        State
	frames       uint64
	statsVisible bool

	last   pipeline.Counters
	totals pipeline.Counters
	stats  Stats
	sinks  []Sink
	events *MessageLog

	sampled bool
}

// NewDriver allocates every particle group from cfg.
func NewDriver(cfg config.Config, log *logging.Logger) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new driver: %w", err)
	}
	if log == nil {
		log = logging.Discard()
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	layers, err := BuildLayers(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("new driver: %w", err)
	}

	set := cfg.Settings()
	d := &Driver{
		cfg:          cfg,
		pipe:         pipeline.New(set),
		layers:       layers,
		stars:        NewStarField(cfg.Stars, cfg.Width, cfg.Height, rng),
		log:          log,
		statsVisible: true,
		events:       NewMessageLog(eventLogSize),
		totals:       pipeline.NewCounters(),
	}
	d.centerX, d.centerY = set.Viewport.Center()
	total := 0
	for _, l := range layers {
		total += l.Group.Len()
		log.Debug("group %s: %d particles", l.Group.Name, l.Group.Len())
	}
	log.Info("scene %s: %d particles in %d groups, %d stars", cfg.Name, total, len(layers), d.stars.Len())
	d.events.Add(fmt.Sprintf("scene %s loaded", cfg.Name), MsgInfo)
	return d, nil
}

// AddSink registers a diagnostics consumer.
func (d *Driver) AddSink(s Sink) { d.sinks = append(d.sinks, s) }

// Frame runs one display refresh. While paused it returns immediately,
// leaving particles and counters untouched.
func (d *Driver) Frame(nowMs float64, s pipeline.Surface) {
	if d.state == Paused {
		return
	}

	s.Clear()
	d.stars.Draw(s)
	d.drawPlanet(s)

	d.pipe.BeginFrame()
	for i := range d.layers {
		l := &d.layers[i]
		d.pipe.Run(l.Group, &l.Desc, nowMs, s)
	}
	d.last = d.pipe.Counters()
	d.totals.Add(d.last)
	d.frames++

	if !d.sampled && d.last.Rendered > 0 {
		d.sampled = true
		d.log.Debug("lightness range %.1f..%.1f", d.last.MinLightness, d.last.MaxLightness)
	}
	if snap, ok := d.stats.Observe(nowMs, d.last); ok {
		d.publish(snap)
	}
}

func (d *Driver) drawPlanet(s pipeline.Surface) {
	if d.cfg.Planet {
		s.SetFill(render.ColorPlanet)
		s.FillCircle(d.centerX, d.centerY, d.cfg.Radius)
	}
	if d.cfg.Rim {
		s.SetStroke(render.ColorRim)
		s.StrokeCircle(d.centerX, d.centerY, d.cfg.Radius, 1)
	}
}

func (d *Driver) publish(snap Snapshot) {
	diag := d.Diagnostics()
	diag.Snapshot = snap
	d.log.Debug("fps %.1f rendered %.0f culled %.0f switches %.0f",
		snap.FPS, snap.AvgRendered, snap.AvgCulled, snap.AvgStyleSwitches)
	for _, s := range d.sinks {
		s.Publish(diag)
	}
}

// Diagnostics returns the current readouts with the last complete snapshot.
func (d *Driver) Diagnostics() Diagnostics {
	return Diagnostics{
		Snapshot:  d.stats.Last(),
		Offset:    fmt.Sprintf("%+.0f", d.pipe.LightnessOffset()),
		Satellite: d.SatelliteReadout(),
		State:     d.state,
	}
}

// SatelliteReadout formats the last satellite position.
func (d *Driver) SatelliteReadout() string {
	fix := d.pipe.Satellite()
	if !fix.Valid {
		return "-"
	}
	vis := "hidden"
	if fix.Visible {
		vis = "visible"
	}
	return fmt.Sprintf("x=%.0f y=%.0f z=%.0f %s", fix.Pos.X, fix.Pos.Y, fix.Pos.Z, vis)
}

// Handle applies an input action. Actions are plain last-writer-wins
// updates between frames.
func (d *Driver) Handle(a Action) {
	step := d.cfg.OffsetStep
	switch a {
	case ActionResetOffset:
		d.pipe.SetLightnessOffset(0)
	case ActionDecreaseOffset:
		d.pipe.SetLightnessOffset(d.pipe.LightnessOffset() - step)
	case ActionIncreaseOffset:
		d.pipe.SetLightnessOffset(d.pipe.LightnessOffset() + step)
	case ActionToggleStats:
		d.statsVisible = !d.statsVisible
		return
	case ActionTogglePause:
		if d.state == Running {
			d.state = Paused
			d.events.Add("paused", MsgWarning)
		} else {
			d.state = Running
			d.stats.Reset()
			d.events.Add("resumed", MsgControl)
		}
		d.log.Info("%s", d.state)
		return
	default:
		return
	}
	msg := fmt.Sprintf("lightness offset %+.0f", d.pipe.LightnessOffset())
	d.events.Add(msg, MsgControl)
	d.log.Info("%s", msg)
}

// State returns the run state.
func (d *Driver) State() State { return d.state }

// Frames returns the number of frames drawn while running.
func (d *Driver) Frames() uint64 { return d.frames }

// StatsVisible reports whether the HUD should be shown.
func (d *Driver) StatsVisible() bool { return d.statsVisible }

// LastCounters returns the counters of the most recent running frame.
func (d *Driver) LastCounters() pipeline.Counters { return d.last }

// Totals returns counters summed over every running frame.
func (d *Driver) Totals() pipeline.Counters { return d.totals }

// Layers exposes the particle groups in draw order.
func (d *Driver) Layers() []Layer { return d.layers }

// Events returns the control event log.
func (d *Driver) Events() *MessageLog { return d.events }

// Config returns the scene the driver was built from.
func (d *Driver) Config() config.Config { return d.cfg }
