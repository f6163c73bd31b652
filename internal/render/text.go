package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Line metrics of the HUD font (basicfont.Face7x13).
const (
	GlyphWidth  = 7
	GlyphHeight = 13
	LineHeight  = 15
)

// DrawText writes s with its top-left corner at (x, y).
func (c *Canvas) DrawText(x, y int, s string, col color.RGBA) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(s)
}

// TextWidth returns the pixel width of s in the HUD font.
func TextWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Round()
}

// Panel is a block of HUD lines drawn from a fixed corner.
type Panel struct {
	X, Y  int
	lines []panelLine
}

type panelLine struct {
	text string
	col  color.RGBA
}

// Add appends a line.
func (p *Panel) Add(text string, col color.RGBA) {
	p.lines = append(p.lines, panelLine{text, col})
}

// Reset drops all lines but keeps the position.
func (p *Panel) Reset() { p.lines = p.lines[:0] }

// Len returns the number of lines.
func (p *Panel) Len() int { return len(p.lines) }

// Draw writes the panel onto c over a dark backing box.
func (p *Panel) Draw(c *Canvas) {
	if len(p.lines) == 0 {
		return
	}
	w := 0
	for _, l := range p.lines {
		w = max(w, TextWidth(l.text))
	}
	c.SetFill(ColorBackground)
	c.FillRect(p.X-4, p.Y-2, w+8, len(p.lines)*LineHeight+4)
	for i, l := range p.lines {
		c.DrawText(p.X, p.Y+i*LineHeight, l.text, l.col)
	}
}
