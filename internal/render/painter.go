package render

import (
	"fmt"
	"image"
	"math"

	"github.com/DMFirmy/GHud/internal/orbit"
	"github.com/DMFirmy/GHud/internal/panel"
)

// Notices shown in place of a panel.
const (
	MsgWaiting    = "Waiting for Flight..."
	MsgNoTarget   = "No Target"
	MsgNullOrbit  = "Null Orbit"
	MsgLeavingSoi = "Leaving Sphere of Influence"
)

// atmosphereAlpha is the opacity of each of the two halo passes.
const atmosphereAlpha = 100

// Lookup returns the subject a panel follows: the tracked target when
// target is set, the active vessel otherwise.
type Lookup func(target bool) (orbit.Subject, bool)

// Painter draws panels onto one device surface.
type Painter struct {
	S        Surface
	Theme    Theme
	FontSize float64 // device base font size
}

// Notice draws msg centered in r, word-wrapped to its width. An empty r
// means the whole surface.
func (p *Painter) Notice(msg string, r image.Rectangle, invert bool) {
	if msg == "" {
		return
	}
	if r.Empty() {
		r = p.S.Bounds()
	}
	size := p.FontSize
	lh := p.S.LineHeight(size)
	lines := wrapText(msg, func(s string) bool {
		return p.S.TextWidth(s, size, true) <= float64(r.Dx())
	})

	fg := p.Theme.Text
	if invert {
		fg = p.Theme.InvertedText
	}
	top := float64(r.Min.Y) + (float64(r.Dy())-lh*float64(len(lines)))/2
	for i, line := range lines {
		box := pixelRect(float64(r.Min.X), top+lh*float64(i), float64(r.Dx()), lh)
		if invert {
			w := p.S.TextWidth(line, size, true)
			x := float64(r.Min.X) + (float64(r.Dx())-w)/2
			p.S.FillRect(pixelRect(x-2, float64(box.Min.Y), w+4, lh), p.Theme.InvertedClear)
		}
		p.S.DrawText(line, box, TextStyle{Size: size, Bold: true, Align: AlignCenter, Color: fg})
	}
}

// Module draws pn into r. Split modules draw both of their active halves.
func (p *Painter) Module(reg *panel.Registry, pn *panel.Panel, lookup Lookup, r image.Rectangle) {
	if pn.Kind == panel.KindSplit {
		p.S.FillRect(r, p.Theme.Clear)
		top, bottom := pn.Split.Layout(r)
		if t := pn.Split.Top(); t != nil {
			p.Module(reg, t, lookup, top)
		}
		if b := pn.Split.Bottom(); b != nil {
			p.Module(reg, b, lookup, bottom)
		}
		return
	}

	subj, ok := lookup(pn.Target)
	if !ok {
		msg := MsgNullOrbit
		if pn.Target {
			msg = MsgNoTarget
		}
		p.Notice(msg, r, false)
		return
	}
	switch pn.Kind {
	case panel.KindText:
		p.OrbitInfo(pn, subj, r)
	case panel.KindGraph:
		p.OrbitGraph(pn, subj, r, reg.IsActive(pn.Companion))
	}
}

// OrbitGraph draws the orbit diagram. The altitude header is left out
// while a companion panel already shows the numbers.
func (p *Painter) OrbitGraph(pn *panel.Panel, subj orbit.Subject, r image.Rectangle, companionActive bool) {
	s := subj.Orbit
	lh := p.S.LineHeight(p.FontSize)
	halves := []int{r.Min.X, r.Min.X + r.Dx()/2, r.Max.X}

	line, headerSize, monikerSize := 0, p.FontSize, p.FontSize+2
	if p.Theme.Color {
		line, headerSize, monikerSize = 1, p.FontSize-2, p.FontSize+1
	}
	monikerLine := line + 1
	if p.Theme.Color {
		monikerLine++
	}
	p.S.DrawText(pn.Moniker, cell(r, lh, monikerLine, 0, halves),
		TextStyle{Size: monikerSize, Bold: true, Align: AlignNear, Color: p.Theme.Text})

	if !companionActive {
		p.S.DrawText("a:"+siString(s.ApA), cell(r, lh, line, 0, halves),
			TextStyle{Size: headerSize, Align: AlignNear, Color: p.Theme.Text})
		p.S.DrawText("p:"+siString(s.PeA), cell(r, lh, line, 1, halves),
			TextStyle{Size: headerSize, Align: AlignFar, Color: p.Theme.Text})
	}

	vp := orbit.Viewport{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy(), Border: orbit.DefaultBorder}
	g, err := orbit.Project(s, vp, p.FontSize)
	if err != nil {
		p.Notice(MsgNullOrbit, r, false)
		return
	}
	if g.LeavingSoi {
		p.Notice(MsgLeavingSoi, r, false)
		return
	}

	orbitColor := pn.Style.Orbit
	bodyColor := p.Theme.InvertedClear
	if p.Theme.Color {
		bodyColor = BodyColor(s.BodyName)
	} else {
		orbitColor = p.Theme.Text
	}

	e := g.Ellipse
	p.S.StrokeEllipse(pixelRect(e.X, e.Y, e.Width, math.Max(e.Height, 1)), 1, orbitColor)

	b := g.Body
	p.S.FillEllipse(pixelRect(b.X, b.CenterY, b.Diameter, b.Diameter), bodyColor)

	v := g.Vessel
	p.S.FillEllipse(pixelRect(v.X-v.Radius, v.Y-v.Radius, 2*v.Radius, 2*v.Radius), p.Theme.InvertedClear)

	// The halo goes on last so orbit and vessel show through it.
	if !p.Theme.Color || !g.HasAtmosphere {
		return
	}
	a := g.Atmosphere
	halo := translucent(bodyColor, atmosphereAlpha)
	inner := a.Diameter - a.Reduction
	p.S.FillEllipse(pixelRect(a.X+a.PosReduction, a.CenterY+a.PosReduction, inner, inner), halo)
	p.S.FillEllipse(pixelRect(a.X, a.CenterY, a.Diameter, a.Diameter), halo)
}

// OrbitInfo draws the text panel: name and body on a banner, then speed,
// inclination, apsides, times to apsides and, on color devices, the
// flight situation.
func (p *Painter) OrbitInfo(pn *panel.Panel, subj orbit.Subject, r image.Rectangle) {
	s := subj.Orbit
	size := math.Min(math.Max(float64(r.Dy())/4*0.7, 7), 14)
	lh := p.S.LineHeight(size)

	small := int(p.S.TextWidth("WW:", size, false))
	large := (r.Dx() - 2*small) / 2
	labeled := []int{r.Min.X, r.Min.X + small, r.Min.X + small + large, r.Min.X + 2*small + large, r.Max.X}
	halves := []int{r.Min.X, r.Min.X + r.Dx()/2, r.Max.X}

	text := func(str string, line, col int, cols []int, align Align) {
		p.S.DrawText(str, cell(r, lh, line, col, cols), TextStyle{Size: size, Align: align, Color: p.Theme.Text})
	}
	banner := func(str string, col int, align Align, bold bool) {
		box := cell(r, lh, 0, col, labeled)
		p.backRect(box, pn.Style)
		p.S.DrawText(str, box, TextStyle{Size: size, Bold: bold, Align: align, Color: p.Theme.InvertedText})
	}

	banner(pn.Moniker, 0, AlignNear, true)
	banner(subj.Name, 1, AlignFar, false)
	banner("o", 2, AlignNear, true)
	banner(s.BodyName, 3, AlignFar, false)

	text("v", 1, 0, labeled, AlignNear)
	text(fmt.Sprintf("%.2fm/s", s.Velocity), 1, 1, labeled, AlignFar)
	text("i", 1, 2, labeled, AlignNear)
	text(fmt.Sprintf("%.3f°", s.Inclination), 1, 3, labeled, AlignFar)

	text("a", 2, 0, halves, AlignNear)
	text(orbit.FormatDistance(s.ApA), 2, 0, halves, AlignFar)
	text("p", 2, 1, halves, AlignNear)
	text(orbit.FormatDistance(s.PeA), 2, 1, halves, AlignFar)

	text(orbit.FormatInterval(s.TimeToApoapsis, false), 3, 0, halves, AlignFar)
	text(orbit.FormatInterval(s.TimeToPeriapsis, false), 3, 1, halves, AlignFar)

	if p.Theme.Color && subj.Situation != "" {
		text(subj.Situation, 4, 0, halves, AlignNear)
	}

	p.borderLines(r, lh, 1, 4)
}

// backRect fills box with a gradient that runs from the top color to the
// bottom color over the upper half and back again over the lower half.
func (p *Painter) backRect(box image.Rectangle, st panel.Style) {
	half := int(math.Ceil(float64(box.Dy()) * 0.5))
	upper := image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+half)
	lower := image.Rect(box.Min.X, upper.Max.Y-1, box.Max.X, upper.Max.Y+half)
	p.S.FillGradient(lower, st.BackBottom, st.BackTop)
	p.S.FillGradient(upper, st.BackTop, st.BackBottom)
}

func (p *Painter) borderLines(r image.Rectangle, lh float64, topLine, bottomLine int) {
	left, right := float64(r.Min.X), float64(r.Max.X)
	top := float64(r.Min.Y) + lh*float64(topLine) + 0.5
	bottom := float64(r.Min.Y) + lh*float64(bottomLine) + 0.5
	mid := float64(r.Min.X+r.Dx()/2) + 0.5

	p.S.DrawLine(left, top, right, top, 1, p.Theme.Border)
	p.S.DrawLine(mid, top, mid, float64(r.Max.Y), 1, p.Theme.Border)
	p.S.DrawLine(left, bottom, right, bottom, 1, p.Theme.Border)
}

// cell is the box of one column on one text line of r.
func cell(r image.Rectangle, lh float64, line, col int, cols []int) image.Rectangle {
	y := r.Min.Y + int(math.Floor(lh*float64(line)))
	return image.Rect(cols[col], y, cols[col+1], y+int(math.Ceil(lh)))
}

func siString(v float64) string {
	value, prefix := orbit.FormatSI(v)
	return value + prefix
}
