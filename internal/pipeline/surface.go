package pipeline

import "image/color"

// Surface is the drawing target the pipeline and frame driver issue
// primitives to. Fill and stroke styles persist until changed.
type Surface interface {
	Clear()
	SetFill(c color.RGBA)
	SetStroke(c color.RGBA)
	FillRect(x, y, w, h int)
	FillCircle(cx, cy, r float64)
	StrokeCircle(cx, cy, r, width float64)
}
