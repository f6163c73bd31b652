package game

import (
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/particle_globe/internal/pipeline"
	"github.com/spacehole-rogue/particle_globe/internal/render"
)

// StarPos is a star's fixed pixel position.
type StarPos struct {
	X, Y int
}

// Twinkle holds a star's peak brightness and the value drawn this frame.
type Twinkle struct {
	Peak  float64
	Value float64
}

// StarField is the flat background: fixed screen points whose brightness
// is re-rolled every frame. It lives outside the spherical model.
type StarField struct {
	world  *ecs.World
	filter *ecs.Filter2[StarPos, Twinkle]
	rng    *rand.Rand
	count  int
}

// NewStarField scatters n stars over a width x height canvas.
func NewStarField(n, width, height int, rng *rand.Rand) *StarField {
	w := ecs.NewWorld(max(n, 1))
	mapper := ecs.NewMap2[StarPos, Twinkle](w)
	for i := 0; i < n; i++ {
		mapper.NewEntity(
			&StarPos{X: rng.IntN(max(width, 1)), Y: rng.IntN(max(height, 1))},
			&Twinkle{Peak: 0.3 + 0.7*rng.Float64()},
		)
	}
	return &StarField{
		world:  w,
		filter: ecs.NewFilter2[StarPos, Twinkle](w),
		rng:    rng,
		count:  n,
	}
}

// Len returns the number of stars.
func (f *StarField) Len() int { return f.count }

// Draw re-rolls every star's brightness and plots it.
func (f *StarField) Draw(s pipeline.Surface) {
	query := f.filter.Query()
	for query.Next() {
		pos, tw := query.Get()
		tw.Value = tw.Peak * f.rng.Float64()
		s.SetFill(render.Gray(tw.Value))
		s.FillRect(pos.X, pos.Y, 1, 1)
	}
}
