package render

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// faceCacheSize bounds the number of live faces. Panels use a handful of
// sizes per device.
const faceCacheSize = 32

type faceKey struct {
	size float64
	bold bool
}

// Fonts hands out monospaced faces by size. Faces are built on first use
// and kept in an LRU cache.
type Fonts struct {
	regular *opentype.Font
	bold    *opentype.Font
	faces   *lru.Cache[faceKey, font.Face]
}

// NewFonts parses the embedded Go Mono faces.
func NewFonts() (*Fonts, error) {
	regular, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	faces, err := lru.NewWithEvict[faceKey, font.Face](faceCacheSize, func(_ faceKey, f font.Face) {
		f.Close()
	})
	if err != nil {
		return nil, fmt.Errorf("face cache: %w", err)
	}
	return &Fonts{regular: regular, bold: bold, faces: faces}, nil
}

// Face returns the face for size, in pixels. If the face cannot be built
// the fixed 7x13 bitmap face is returned instead.
func (f *Fonts) Face(size float64, bold bool) font.Face {
	size = math.Max(size, 1)
	key := faceKey{size: size, bold: bold}
	if face, ok := f.faces.Get(key); ok {
		return face
	}
	src := f.regular
	if bold {
		src = f.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	f.faces.Add(key, face)
	return face
}

// TextWidth returns the advance of s in pixels.
func (f *Fonts) TextWidth(s string, size float64, bold bool) float64 {
	return fixedToFloat(font.MeasureString(f.Face(size, bold), s))
}

// LineHeight returns the rounded line spacing for size.
func (f *Fonts) LineHeight(size float64) float64 {
	return math.Round(fixedToFloat(f.Face(size, false).Metrics().Height))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
