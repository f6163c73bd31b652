package render

import (
	"image/color"
	"testing"
)

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    color.RGBA
	}{
		{"black", 0, 100, 0, color.RGBA{0, 0, 0, 255}},
		{"white", 0, 100, 100, color.RGBA{255, 255, 255, 255}},
		{"red", 0, 100, 50, color.RGBA{255, 0, 0, 255}},
		{"blue", 240, 100, 50, color.RGBA{0, 0, 255, 255}},
		{"wrapped red", 360, 100, 50, color.RGBA{255, 0, 0, 255}},
		{"negative hue", -120, 100, 50, color.RGBA{0, 0, 255, 255}},
		{"grey", 77, 0, 50, color.RGBA{128, 128, 128, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSL(tt.h, tt.s, tt.l); got != tt.want {
				t.Errorf("HSL(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestCanvasClearAndRect(t *testing.T) {
	c := NewCanvas(20, 10)
	red := color.RGBA{255, 0, 0, 255}
	c.SetFill(red)
	c.FillRect(18, 8, 5, 5) // clipped at the corner

	if got := c.At(19, 9); got != red {
		t.Errorf("At(19,9) = %v, want red", got)
	}
	if got := c.At(17, 9); got != ColorBackground {
		t.Errorf("At(17,9) = %v, want background", got)
	}

	c.Clear()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) != ColorBackground {
				t.Fatalf("pixel (%d,%d) not cleared", x, y)
			}
		}
	}
}

func TestCanvasFillRectOffCanvas(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetFill(color.RGBA{1, 2, 3, 255})
	c.FillRect(-10, -10, 2, 2)
	c.FillRect(10, 10, 2, 2)
	for _, b := range c.Pix()[:16] {
		if b != 0 && b != 255 {
			t.Fatal("off-canvas rect touched pixels")
		}
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(100, 100)
	white := color.RGBA{255, 255, 255, 255}
	c.SetFill(white)
	c.FillCircle(50, 50, 20)

	if got := c.At(50, 50); got != white {
		t.Errorf("centre = %v, want white", got)
	}
	if got := c.At(50, 10); got != ColorBackground {
		t.Errorf("outside = %v, want background", got)
	}
}

func TestCanvasFillCircleClipped(t *testing.T) {
	c := NewCanvas(50, 50)
	white := color.RGBA{255, 255, 255, 255}
	c.SetFill(white)
	c.FillCircle(0, 0, 20)
	if got := c.At(2, 2); got != white {
		t.Errorf("clipped disc interior = %v, want white", got)
	}
	if got := c.At(40, 40); got != ColorBackground {
		t.Errorf("far corner = %v, want background", got)
	}
}

func TestCanvasStrokeCircle(t *testing.T) {
	c := NewCanvas(100, 100)
	white := color.RGBA{255, 255, 255, 255}
	c.SetStroke(white)
	c.StrokeCircle(50, 50, 30, 4)

	if got := c.At(50, 50); got != ColorBackground {
		t.Errorf("ring centre = %v, want background", got)
	}
	if got := c.At(80, 50); got == ColorBackground {
		t.Error("ring edge not drawn")
	}
}

func TestPanelDraw(t *testing.T) {
	c := NewCanvas(200, 60)
	p := Panel{X: 4, Y: 4}
	p.Add("FPS 60", ColorHUD)
	p.Add("paused", ColorHUDWarn)
	if p.Len() != 2 {
		t.Fatalf("Len = %d", p.Len())
	}
	p.Draw(c)

	lit := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			if px := c.At(x, y); px.R > 0 || px.G > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("panel text drew nothing")
	}
	p.Reset()
	if p.Len() != 0 {
		t.Error("Reset kept lines")
	}
}

func TestRecorderSwitches(t *testing.T) {
	var r Recorder
	a := color.RGBA{1, 0, 0, 255}
	b := color.RGBA{2, 0, 0, 255}
	r.SetFill(a)
	r.FillRect(0, 0, 1, 1)
	r.FillRect(1, 0, 1, 1)
	r.SetFill(b)
	r.FillCircle(3, 3, 1)
	r.SetFill(a)
	r.FillRect(2, 0, 1, 1)

	if got := r.Switches(); got != 2 {
		t.Errorf("Switches = %d, want 2", got)
	}
	if r.FillSets != 3 || r.Count(OpFillRect) != 3 || r.Count(OpFillCircle) != 1 {
		t.Errorf("FillSets=%d rects=%d circles=%d", r.FillSets, r.Count(OpFillRect), r.Count(OpFillCircle))
	}
}
