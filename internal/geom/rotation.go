package geom

import "math"

// Rotation is a fixed rigid tilt: a turn about the vertical (Z) axis
// followed by a turn about the horizontal (Y) axis. Sines and cosines are
// computed once at construction.
type Rotation struct {
	cosYaw, sinYaw     float64
	cosPitch, sinPitch float64
}

// NewRotation builds a rotation from angles in radians.
func NewRotation(yaw, pitch float64) *Rotation {
	return &Rotation{
		cosYaw:   math.Cos(yaw),
		sinYaw:   math.Sin(yaw),
		cosPitch: math.Cos(pitch),
		sinPitch: math.Sin(pitch),
	}
}

// Apply rotates v, yaw first then pitch.
func (r *Rotation) Apply(v Vec3) Vec3 {
	return r.tip(r.spin(v))
}

// spin turns the point about the screen-vertical axis, mixing depth and
// horizontal offset.
func (r *Rotation) spin(v Vec3) Vec3 {
	return Vec3{
		X: v.X*r.cosYaw - v.Y*r.sinYaw,
		Y: v.X*r.sinYaw + v.Y*r.cosYaw,
		Z: v.Z,
	}
}

// tip turns the point about the screen-horizontal axis, mixing depth and
// vertical offset.
func (r *Rotation) tip(v Vec3) Vec3 {
	return Vec3{
		X: v.X*r.cosPitch - v.Z*r.sinPitch,
		Y: v.Y,
		Z: v.X*r.sinPitch + v.Z*r.cosPitch,
	}
}
