package render

import "image/color"

// Named colors used by the panels.
var (
	ColorBlack        = color.RGBA{0, 0, 0, 255}
	ColorWhite        = color.RGBA{255, 255, 255, 255}
	ColorGreen        = color.RGBA{0, 128, 0, 255}
	ColorYellow       = color.RGBA{255, 255, 0, 255}
	ColorLightBlue    = color.RGBA{173, 216, 230, 255}
	ColorMediumPurple = color.RGBA{147, 112, 219, 255}
	ColorDodgerBlue   = color.RGBA{30, 144, 255, 255}
	ColorDarkGray     = color.RGBA{169, 169, 169, 255}
	ColorGray         = color.RGBA{128, 128, 128, 255}
	ColorLightGray    = color.RGBA{211, 211, 211, 255}
)

// Theme is the palette of one device.
type Theme struct {
	Color         bool // false on the monochrome LCD
	Clear         color.RGBA
	Text          color.RGBA
	InvertedClear color.RGBA
	InvertedText  color.RGBA
	Border        color.RGBA
}

// MonoTheme is black on white, as the monochrome LCD shows it.
var MonoTheme = Theme{
	Clear:         ColorWhite,
	Text:          ColorBlack,
	InvertedClear: ColorBlack,
	InvertedText:  ColorWhite,
	Border:        ColorBlack,
}

// ColorTheme is white on black with green rules.
var ColorTheme = Theme{
	Color:         true,
	Clear:         ColorBlack,
	Text:          ColorWhite,
	InvertedClear: ColorWhite,
	InvertedText:  ColorBlack,
	Border:        ColorGreen,
}

// bodyColors is the fill color of each known celestial body.
var bodyColors = map[string]color.RGBA{
	"Sun":    ColorYellow,
	"Kerbol": ColorYellow,
	"Moho":   {205, 133, 63, 255}, // peru
	"Eve":    {138, 43, 226, 255}, // blue violet
	"Kerbin": ColorDodgerBlue,
	"Duna":   {178, 34, 34, 255}, // firebrick
	"Dres":   ColorGray,
	"Jool":   {50, 205, 50, 255}, // lime green
	"Eeloo":  ColorLightGray,
	"Gilly":  ColorDarkGray,
	"Mun":    ColorDarkGray,
	"Minmus": ColorGray,
	"Ike":    ColorDarkGray,
	"Laythe": ColorDodgerBlue,
	"Vall":   ColorGray,
	"Tylo":   ColorLightGray,
	"Bop":    ColorGray,
	"Pol":    {244, 164, 96, 255}, // sandy brown
}

// BodyColor returns the fill color for a body, falling back to blue.
func BodyColor(name string) color.RGBA {
	if c, ok := bodyColors[name]; ok {
		return c
	}
	return ColorDodgerBlue
}

// translucent returns c with the given straight alpha, premultiplied.
func translucent(c color.RGBA, alpha uint8) color.RGBA {
	n := color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
	return color.RGBAModel.Convert(n).(color.RGBA)
}
