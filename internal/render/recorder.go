package render

import "image/color"

// OpKind names a recorded drawing call.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFillRect
	OpFillCircle
	OpStrokeCircle
)

// Op is one recorded drawing call with the style active at the time.
type Op struct {
	Kind       OpKind
	X, Y, W, H int
	CX, CY, R  float64
	Color      color.RGBA
}

// Recorder is an in-memory surface that records calls instead of drawing.
// Tests use it to inspect exactly what a frame produced.
type Recorder struct {
	Ops      []Op
	FillSets int
	fill     color.RGBA
	stroke   color.RGBA
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.FillSets = 0
}

func (r *Recorder) Clear() { r.Ops = append(r.Ops, Op{Kind: OpClear}) }

func (r *Recorder) SetFill(c color.RGBA) {
	r.fill = c
	r.FillSets++
}

func (r *Recorder) SetStroke(c color.RGBA) { r.stroke = c }

func (r *Recorder) FillRect(x, y, w, h int) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: r.fill})
}

func (r *Recorder) FillCircle(cx, cy, rad float64) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, CX: cx, CY: cy, R: rad, Color: r.fill})
}

func (r *Recorder) StrokeCircle(cx, cy, rad, _ float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeCircle, CX: cx, CY: cy, R: rad, Color: r.stroke})
}

// Count returns how many recorded calls are of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Switches counts adjacent filled primitives whose colours differ.
func (r *Recorder) Switches() int {
	n := 0
	var last color.RGBA
	seen := false
	for _, op := range r.Ops {
		if op.Kind != OpFillRect && op.Kind != OpFillCircle {
			continue
		}
		if seen && op.Color != last {
			n++
		}
		last, seen = op.Color, true
	}
	return n
}
