package canvas

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

var (
	Background = color.RGBA{R: 0x14, G: 0x1A, B: 0x1F, A: 0xFF}
	Ink        = color.RGBA{R: 0xE8, G: 0xE2, B: 0xD8, A: 0xFF}
)

// Canvas is an offscreen match surface backed by a gg context.
type Canvas struct {
	dc        *gg.Context
	bg        color.Color
	ink       color.Color
	lineWidth float64
}

func New(w, h int) *Canvas {
	c := &Canvas{
		dc:        gg.NewContext(w, h),
		bg:        Background,
		ink:       Ink,
		lineWidth: 1,
	}
	c.ClearRect(0, 0, float64(w), float64(h))
	return c
}

func (c *Canvas) SetInk(clr color.Color) {
	c.ink = clr
}

func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 {
		c.lineWidth = w
	}
}

func (c *Canvas) Size() (float64, float64) {
	return float64(c.dc.Width()), float64(c.dc.Height())
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	c.dc.SetColor(c.bg)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

func (c *Canvas) Arc(x, y, r, startDeg, endDeg float64) {
	c.stroke()
	c.dc.NewSubPath()
	c.dc.DrawArc(x, y, r, gg.Radians(startDeg), gg.Radians(endDeg))
	c.dc.Stroke()
}

func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.stroke()
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

func (c *Canvas) Rect(x, y, w, h float64) {
	c.stroke()
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Stroke()
}

// Text draws with gg's built-in face; size only scales relative to it.
func (c *Canvas) Text(text string, x, y, size float64) {
	c.dc.Push()
	defer c.dc.Pop()
	c.dc.SetColor(c.ink)
	scale := size / 13
	if scale <= 0 {
		scale = 1
	}
	c.dc.ScaleAbout(scale, scale, x, y)
	c.dc.DrawString(text, x, y)
}

func (c *Canvas) stroke() {
	c.dc.SetColor(c.ink)
	c.dc.SetLineWidth(c.lineWidth)
	c.dc.SetLineCapRound()
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}
