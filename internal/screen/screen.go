// Package screen shows the LCD frames in an Ebitengine window and reads
// their buttons from the keyboard.
package screen

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/DMFirmy/GHud/internal/render"
)

// margin is the window space around each LCD, in window pixels.
const margin = 8

// LCD is one device's place in the window. It is the device's Display.
type LCD struct {
	Name string

	img   *ebiten.Image
	frame *image.RGBA
	dirty bool
	at    image.Point // top-left in window pixels
	size  image.Point // scaled size
}

// Present keeps the frame until the next Draw uploads it.
func (l *LCD) Present(frame *image.RGBA) {
	l.frame = frame
	l.dirty = true
}

// Screen stacks the LCDs vertically, each scaled up by an integer factor.
type Screen struct {
	Focus int // index of the LCD the keyboard drives

	scale int
	lcds  []*LCD
	pixel *ebiten.Image // 1x1 white pixel for bezels
	w, h  int
}

func New(scale int) *Screen {
	if scale < 1 {
		scale = 1
	}
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Screen{scale: scale, pixel: pixel, w: 2 * margin, h: margin}
}

// Add places a w×h LCD below the previous one.
func (s *Screen) Add(name string, w, h int) *LCD {
	l := &LCD{
		Name: name,
		img:  ebiten.NewImage(w, h),
		at:   image.Pt(margin, s.h),
		size: image.Pt(w*s.scale, h*s.scale),
	}
	s.lcds = append(s.lcds, l)
	s.w = max(s.w, l.size.X+2*margin)
	s.h += l.size.Y + margin
	return l
}

// Len returns the number of LCDs.
func (s *Screen) Len() int { return len(s.lcds) }

// Size is the window's logical size.
func (s *Screen) Size() (int, int) { return s.w, s.h }

// Draw uploads new frames and draws every LCD inside a bezel. The focused
// LCD gets a green bezel.
func (s *Screen) Draw(dst *ebiten.Image) {
	dst.Fill(render.ColorBlack)
	for i, l := range s.lcds {
		if l.dirty && l.frame != nil {
			l.img.WritePixels(l.frame.Pix)
			l.dirty = false
		}

		bezel := render.ColorDarkGray
		if i == s.Focus {
			bezel = render.ColorGreen
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(float64(l.size.X+4), float64(l.size.Y+4))
		op.GeoM.Translate(float64(l.at.X-2), float64(l.at.Y-2))
		op.ColorScale.ScaleWithColor(bezel)
		dst.DrawImage(s.pixel, &op)

		op = ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(s.scale), float64(s.scale))
		op.GeoM.Translate(float64(l.at.X), float64(l.at.Y))
		op.Filter = ebiten.FilterNearest
		dst.DrawImage(l.img, &op)
	}
}
