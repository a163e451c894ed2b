package orbit

import (
	"errors"
	"math"
)

// DefaultBorder is the margin kept clear around an orbit drawing.
const DefaultBorder = 3

// ErrNullOrbit is returned when a snapshot carries no drawable ellipse
// and is not an escape trajectory either.
var ErrNullOrbit = errors.New("orbit: null orbit")

// Viewport is the pixel rectangle available to one panel.
type Viewport struct {
	X, Y          int
	Width, Height int
	Border        int
}

// Usable returns the viewport shrunk by its border on every side.
func (v Viewport) Usable() Rect {
	return Rect{
		X:      float64(v.X + v.Border),
		Y:      float64(v.Y + v.Border),
		Width:  float64(v.Width - 2*v.Border),
		Height: float64(v.Height - 2*v.Border),
	}
}

// Rect is a floating point box. It is only rounded to pixels when drawn.
type Rect struct {
	X, Y, Width, Height float64
}

// CenterX returns the horizontal center of the box.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center of the box.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Body places the orbited body. CenterX/CenterY are the top-left corner
// of the body's box when it sits at the ellipse center; X shifts that
// corner onto the focus.
type Body struct {
	CenterX, CenterY float64
	Diameter         float64
	XOffset          float64
	X                float64
}

// Vessel is the marker center and its on-screen radius.
type Vessel struct {
	X, Y   float64
	Radius float64
}

// Atmosphere is the halo drawn over the body as two translucent rings:
// an outer one of Diameter and an inner one inset by PosReduction.
type Atmosphere struct {
	X                float64
	CenterX, CenterY float64
	Diameter         float64
	Reduction        float64
	PosReduction     float64
}

// Geometry is everything needed to draw one orbit. When LeavingSoi is set
// no other field is populated.
type Geometry struct {
	ScaleFactor   float64
	Ellipse       Rect
	Body          Body
	Vessel        Vessel
	Atmosphere    Atmosphere
	HasAtmosphere bool
	LeavingSoi    bool
}

// Project maps a snapshot into the viewport, keeping the true relative
// scale of orbit, body and atmosphere. fontSize sizes the vessel marker.
func Project(s Snapshot, vp Viewport, fontSize float64) (Geometry, error) {
	if s.IsLeavingSoi() {
		return Geometry{LeavingSoi: true}, nil
	}
	if !(s.SemiMajorAxis > 0) || math.IsInf(s.SemiMajorAxis, 0) {
		return Geometry{}, ErrNullOrbit
	}

	dr := vp.Usable()
	k := ScaleFactor(s, dr)
	if math.IsInf(k, 1) || !(k > 0) {
		return Geometry{}, ErrNullOrbit
	}

	g := Geometry{ScaleFactor: k}

	g.Ellipse.Width = s.SemiMajorAxis * 2 * k
	g.Ellipse.Height = s.SemiMinorAxis * 2 * k
	g.Ellipse.X = dr.X + (dr.Width-g.Ellipse.Width)/2
	g.Ellipse.Y = dr.Y + (dr.Height-g.Ellipse.Height)/2

	g.Body = projectBody(s, g.Ellipse, k)
	g.Vessel = projectVessel(s, g.Body, k, fontSize)
	if s.HasAtmosphere() {
		g.Atmosphere = projectAtmosphere(s, g.Ellipse, g.Body, k)
		g.HasAtmosphere = true
	}
	return g, nil
}

// ScaleFactor returns the world-to-pixel ratio for drawing s inside dr:
// the smallest of the width, height and atmosphere fits. A zero
// denominator drops out of the minimum instead of collapsing it.
func ScaleFactor(s Snapshot, dr Rect) float64 {
	widthMod := ratio(dr.Width, s.SemiMajorAxis*2)
	heightMod := ratio(dr.Height, s.SemiMinorAxis*2)
	atmosMod := ratio(math.Min(dr.Width, dr.Height), s.AtmosphereDiameter)
	return math.Min(atmosMod, math.Min(widthMod, heightMod))
}

func ratio(pixels, world float64) float64 {
	if !(world > 0) {
		return math.Inf(1)
	}
	return pixels / world
}

func projectBody(s Snapshot, ellipse Rect, k float64) Body {
	var b Body
	b.Diameter = s.BodyDiameter * k
	b.CenterX = ellipse.CenterX() - b.Diameter/2
	b.CenterY = ellipse.CenterY() - b.Diameter/2

	// The body sits at a focus, not at the ellipse center.
	b.XOffset = (s.SemiMajorAxis - s.PeR) * k
	b.X = b.CenterX + b.XOffset
	return b
}

func projectVessel(s Snapshot, body Body, k, fontSize float64) Vessel {
	theta := (s.TrueAnomaly + 90) * (math.Pi / 180)
	dx := s.RadiusAtTrueAnomaly * math.Sin(theta) * k
	dy := s.RadiusAtTrueAnomaly * math.Cos(theta) * k
	return Vessel{
		X:      dx + body.X + body.Diameter/2,
		Y:      dy + body.CenterY + body.Diameter/2,
		Radius: fontSize / 3,
	}
}

func projectAtmosphere(s Snapshot, ellipse Rect, body Body, k float64) Atmosphere {
	var a Atmosphere
	a.Diameter = s.AtmosphereDiameter * k
	a.CenterX = ellipse.CenterX() - a.Diameter/2
	a.CenterY = ellipse.CenterY() - a.Diameter/2
	a.X = a.CenterX + body.XOffset

	a.Reduction = (a.Diameter - body.Diameter) / 2
	a.PosReduction = a.Reduction / 2
	return a
}
