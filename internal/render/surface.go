package render

import (
	"image"
	"image/color"
	"math"
)

// Align positions text horizontally inside its box. Text is always
// centered vertically.
type Align uint8

const (
	AlignNear Align = iota
	AlignCenter
	AlignFar
)

// TextStyle describes one run of text.
type TextStyle struct {
	Size  float64 // points at 72 DPI, i.e. pixels
	Bold  bool
	Align Align
	Color color.RGBA
}

// Surface is the set of draw primitives a device offers the panels.
// Rectangles are in device pixels.
type Surface interface {
	Bounds() image.Rectangle
	Clear(c color.RGBA)
	FillRect(r image.Rectangle, c color.RGBA)
	FillGradient(r image.Rectangle, top, bottom color.RGBA)
	StrokeEllipse(r image.Rectangle, width float64, c color.RGBA)
	FillEllipse(r image.Rectangle, c color.RGBA)
	DrawLine(x0, y0, x1, y1, width float64, c color.RGBA)
	DrawText(s string, r image.Rectangle, st TextStyle)

	TextWidth(s string, size float64, bold bool) float64
	LineHeight(size float64) float64
}

// pixelRect rounds a floating point box to pixels: the corner is floored
// and the size is rounded up.
func pixelRect(x, y, w, h float64) image.Rectangle {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	return image.Rect(x0, y0, x0+int(math.Ceil(w)), y0+int(math.Ceil(h)))
}
