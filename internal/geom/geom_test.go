package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestToCamera(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     Vec3
	}{
		{"facing viewer", 0, 0, Vec3{100, 0, 0}},
		{"right limb", 0, math.Pi / 2, Vec3{0, 100, 0}},
		{"far side", 0, math.Pi, Vec3{-100, 0, 0}},
		{"north pole", math.Pi / 2, 0, Vec3{0, 0, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToCamera(tt.lat, tt.lon, 100)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) || !near(got.Z, tt.want.Z) {
				t.Errorf("ToCamera(%v, %v) = %+v, want %+v", tt.lat, tt.lon, got, tt.want)
			}
			if !near(got.Len(), 100) {
				t.Errorf("length = %v, want 100", got.Len())
			}
		})
	}
}

func TestAdvance(t *testing.T) {
	lat, lon := Advance(0.5, 1.0, 0, 0.1)
	if lat != 0.5 || !near(lon, 1.1) {
		t.Errorf("Advance = (%v, %v), want (0.5, 1.1)", lat, lon)
	}
}

func TestRotationPreservesLength(t *testing.T) {
	r := NewRotation(0.3, -0.4)
	v := Vec3{12, -40, 7}
	got := r.Apply(v)
	if math.Abs(got.Len()-v.Len()) > 1e-9 {
		t.Errorf("rotation changed length: %v -> %v", v.Len(), got.Len())
	}
}

func TestRotationOrder(t *testing.T) {
	// A quarter yaw moves depth onto the horizontal axis, after which a
	// pitch has nothing left to tip. The reverse order would differ.
	r := NewRotation(math.Pi/2, math.Pi/2)
	got := r.Apply(Vec3{1, 0, 0})
	if !near(got.X, 0) || !near(got.Y, 1) || !near(got.Z, 0) {
		t.Errorf("Apply = %+v, want {0 1 0}", got)
	}
}

func TestIdentityRotation(t *testing.T) {
	r := NewRotation(0, 0)
	v := Vec3{3, 4, 5}
	if got := r.Apply(v); got != v {
		t.Errorf("identity rotation = %+v, want %+v", got, v)
	}
}

func TestProject(t *testing.T) {
	vp := NewViewport(801, 600)
	sx, sy := vp.Project(Vec3{X: 50, Y: 10, Z: 20})
	if sx != 410 || sy != 280 {
		t.Errorf("Project = (%v, %v), want (410, 280)", sx, sy)
	}
	cx, cy := vp.Center()
	if cx != 400 || cy != 300 {
		t.Errorf("Center = (%v, %v), want (400, 300)", cx, cy)
	}
}

func TestContains(t *testing.T) {
	vp := NewViewport(100, 50)
	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{99.5, 49.5, true},
		{100, 10, false},
		{10, 50, false},
		{-0.1, 10, false},
		{10, -3, false},
	}
	for _, tt := range tests {
		if got := vp.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestProjectPerspective(t *testing.T) {
	vp := NewViewport(200, 200)
	// Points at depth zero project the same either way.
	v := Vec3{0, 30, 40}
	ox, oy := vp.Project(v)
	px, py := vp.ProjectPerspective(v, 1000)
	if !near(ox, px) || !near(oy, py) {
		t.Errorf("depth 0: ortho (%v,%v) perspective (%v,%v)", ox, oy, px, py)
	}
	// Nearer points spread away from the centre.
	px, _ = vp.ProjectPerspective(Vec3{500, 30, 0}, 1000)
	if px <= ox {
		t.Errorf("near point not magnified: %v <= %v", px, ox)
	}
}

func TestBreath(t *testing.T) {
	var off Breath
	if off.Enabled() || off.Offset(1, 2, 3, 300) != 0 {
		t.Error("zero Breath should contribute nothing")
	}
	b := Breath{Amplitude: 0.5, PeriodMs: 500}
	if got := b.Offset(0, 0, 0, 300); !near(got, 150) {
		t.Errorf("Offset at phase 0 = %v, want 150", got)
	}
	if got := b.Offset(0, 0, 500*math.Pi, 300); !near(got, -150) {
		t.Errorf("Offset at phase pi = %v, want -150", got)
	}
}
