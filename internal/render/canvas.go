package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places the control points of a cubic Bézier quarter ellipse.
const kappa = 0.5522847498

// Canvas is an in-memory RGBA frame buffer that implements Surface.
// Shapes are anti-aliased.
type Canvas struct {
	img   *image.RGBA
	fonts *Fonts
	z     *vector.Rasterizer
}

// NewCanvas allocates a w x h canvas.
func NewCanvas(w, h int, fonts *Fonts) *Canvas {
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		fonts: fonts,
		z:     vector.NewRasterizer(w, h),
	}
}

// Image returns the backing frame.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

func (c *Canvas) Clear(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(r image.Rectangle, col color.RGBA) {
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), image.NewUniform(col), image.Point{}, draw.Over)
}

// FillGradient fills r with a vertical blend from top to bottom.
func (c *Canvas) FillGradient(r image.Rectangle, top, bottom color.RGBA) {
	h := r.Dy()
	if h <= 0 {
		return
	}
	clip := c.img.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		var t float64
		if h > 1 {
			t = float64(y-r.Min.Y) / float64(h-1)
		}
		row := image.Rect(r.Min.X, y, r.Max.X, y+1).Intersect(clip)
		draw.Draw(c.img, row, image.NewUniform(lerp(top, bottom, t)), image.Point{}, draw.Over)
	}
}

func (c *Canvas) FillEllipse(r image.Rectangle, col color.RGBA) {
	if r.Empty() {
		return
	}
	cx, cy, rx, ry := ellipseOf(r)
	c.begin()
	ellipsePath(c.z, cx, cy, rx, ry, false)
	c.fill(col)
}

// StrokeEllipse outlines the ellipse inscribed in r with a pen of the
// given width centered on the outline.
func (c *Canvas) StrokeEllipse(r image.Rectangle, width float64, col color.RGBA) {
	if r.Empty() || width <= 0 {
		return
	}
	cx, cy, rx, ry := ellipseOf(r)
	half := float32(width / 2)
	c.begin()
	ellipsePath(c.z, cx, cy, rx+half, ry+half, false)
	if rx > half && ry > half {
		ellipsePath(c.z, cx, cy, rx-half, ry-half, true)
	}
	c.fill(col)
}

func (c *Canvas) DrawLine(x0, y0, x1, y1, width float64, col color.RGBA) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	nx := float32(-dy / length * width / 2)
	ny := float32(dx / length * width / 2)
	ax, ay := float32(x0), float32(y0)
	bx, by := float32(x1), float32(y1)

	c.begin()
	c.z.MoveTo(ax+nx, ay+ny)
	c.z.LineTo(bx+nx, by+ny)
	c.z.LineTo(bx-nx, by-ny)
	c.z.LineTo(ax-nx, ay-ny)
	c.z.ClosePath()
	c.fill(col)
}

// DrawText renders s on a single line inside r, clipped to r.
func (c *Canvas) DrawText(s string, r image.Rectangle, st TextStyle) {
	r = r.Intersect(c.img.Bounds())
	if s == "" || r.Empty() {
		return
	}
	face := c.fonts.Face(st.Size, st.Bold)
	width := font.MeasureString(face, s).Ceil()

	x := r.Min.X
	switch st.Align {
	case AlignCenter:
		x += (r.Dx() - width) / 2
	case AlignFar:
		x = r.Max.X - width
	}
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	y := r.Min.Y + (r.Dy()-(ascent+descent))/2 + ascent

	d := font.Drawer{
		Dst:  c.img.SubImage(r).(*image.RGBA),
		Src:  image.NewUniform(st.Color),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func (c *Canvas) TextWidth(s string, size float64, bold bool) float64 {
	return c.fonts.TextWidth(s, size, bold)
}

func (c *Canvas) LineHeight(size float64) float64 {
	return c.fonts.LineHeight(size)
}

func (c *Canvas) begin() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
}

func (c *Canvas) fill(col color.RGBA) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func ellipseOf(r image.Rectangle) (cx, cy, rx, ry float32) {
	rx = float32(r.Dx()) / 2
	ry = float32(r.Dy()) / 2
	return float32(r.Min.X) + rx, float32(r.Min.Y) + ry, rx, ry
}

// ellipsePath appends a closed ellipse made of four cubic arcs. Reversed
// paths cancel the winding of a forward one, which leaves a ring.
func ellipsePath(z *vector.Rasterizer, cx, cy, rx, ry float32, reverse bool) {
	kx, ky := kappa*rx, kappa*ry
	z.MoveTo(cx+rx, cy)
	if reverse {
		z.CubeTo(cx+rx, cy-ky, cx+kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx-kx, cy-ry, cx-rx, cy-ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy+ky, cx-kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx+kx, cy+ry, cx+rx, cy+ky, cx+rx, cy)
	} else {
		z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	}
	z.ClosePath()
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
