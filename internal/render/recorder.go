package render

import (
	"image"
	"image/color"
)

// Op names a recorded draw call.
type Op uint8

const (
	OpClear Op = iota
	OpFillRect
	OpFillGradient
	OpStrokeEllipse
	OpFillEllipse
	OpLine
	OpText
)

var opNames = [...]string{"clear", "fill-rect", "fill-gradient", "stroke-ellipse", "fill-ellipse", "line", "text"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Command is one recorded draw call.
type Command struct {
	Op     Op
	Rect   image.Rectangle
	Color  color.RGBA
	Color2 color.RGBA // gradient bottom
	Line   [4]float64
	Text   string
	Style  TextStyle
}

// Recorder is a Surface that keeps the calls made on it instead of
// drawing. Text metrics come from real faces.
type Recorder struct {
	bounds   image.Rectangle
	fonts    *Fonts
	Commands []Command
}

// NewRecorder returns a recorder of the given size.
func NewRecorder(w, h int, fonts *Fonts) *Recorder {
	return &Recorder{bounds: image.Rect(0, 0, w, h), fonts: fonts}
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }

// Ops returns the recorded commands of the given kind, in order.
func (r *Recorder) Ops(op Op) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns every string drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Ops(OpText) {
		out = append(out, c.Text)
	}
	return out
}

func (r *Recorder) add(c Command) { r.Commands = append(r.Commands, c) }

func (r *Recorder) Bounds() image.Rectangle { return r.bounds }

func (r *Recorder) Clear(c color.RGBA) {
	r.add(Command{Op: OpClear, Rect: r.bounds, Color: c})
}

func (r *Recorder) FillRect(rect image.Rectangle, c color.RGBA) {
	r.add(Command{Op: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) FillGradient(rect image.Rectangle, top, bottom color.RGBA) {
	r.add(Command{Op: OpFillGradient, Rect: rect, Color: top, Color2: bottom})
}

func (r *Recorder) StrokeEllipse(rect image.Rectangle, _ float64, c color.RGBA) {
	r.add(Command{Op: OpStrokeEllipse, Rect: rect, Color: c})
}

func (r *Recorder) FillEllipse(rect image.Rectangle, c color.RGBA) {
	r.add(Command{Op: OpFillEllipse, Rect: rect, Color: c})
}

func (r *Recorder) DrawLine(x0, y0, x1, y1, _ float64, c color.RGBA) {
	r.add(Command{Op: OpLine, Line: [4]float64{x0, y0, x1, y1}, Color: c})
}

func (r *Recorder) DrawText(s string, rect image.Rectangle, st TextStyle) {
	r.add(Command{Op: OpText, Rect: rect, Text: s, Style: st, Color: st.Color})
}

func (r *Recorder) TextWidth(s string, size float64, bold bool) float64 {
	return r.fonts.TextWidth(s, size, bold)
}

func (r *Recorder) LineHeight(size float64) float64 {
	return r.fonts.LineHeight(size)
}
