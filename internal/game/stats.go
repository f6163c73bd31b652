package game

import "github.com/spacehole-rogue/particle_globe/internal/pipeline"

// statsWindowMs is how often a Snapshot is published.
const statsWindowMs = 1000

// Snapshot is one second of frame statistics.
type Snapshot struct {
	Frames           int
	FPS              float64
	AvgRendered      float64
	AvgCulled        float64
	AvgStyleSwitches float64
}

// Stats aggregates per-frame counters into per-second snapshots.
type Stats struct {
	start    float64
	started  bool
	frames   int
	rendered int
	culled   int
	switches int
	last     Snapshot
}

// Observe records one frame drawn at nowMs. It returns a snapshot and true
// when a full window has elapsed. The first frame only opens the window:
// a window holds the frames drawn after its start time.
func (s *Stats) Observe(nowMs float64, c pipeline.Counters) (Snapshot, bool) {
	if !s.started {
		s.restart(nowMs)
		s.started = true
		return Snapshot{}, false
	}
	s.frames++
	s.rendered += c.Rendered
	s.culled += c.Culled
	s.switches += c.StyleSwitches

	elapsed := nowMs - s.start
	if elapsed < statsWindowMs {
		return Snapshot{}, false
	}
	n := float64(s.frames)
	s.last = Snapshot{
		Frames:           s.frames,
		FPS:              n * 1000 / elapsed,
		AvgRendered:      float64(s.rendered) / n,
		AvgCulled:        float64(s.culled) / n,
		AvgStyleSwitches: float64(s.switches) / n,
	}
	s.restart(nowMs)
	return s.last, true
}

// Last returns the most recent complete snapshot.
func (s *Stats) Last() Snapshot { return s.last }

// Reset discards the open window, e.g. after a pause.
func (s *Stats) Reset() {
	s.started = false
	s.frames, s.rendered, s.culled, s.switches = 0, 0, 0, 0
}

func (s *Stats) restart(nowMs float64) {
	s.start = nowMs
	s.frames, s.rendered, s.culled, s.switches = 0, 0, 0, 0
}
