package device

import (
	"fmt"
	"image"
	"strings"

	"github.com/DMFirmy/GHud/internal/panel"
	"github.com/DMFirmy/GHud/internal/render"
)

// Profile describes one kind of LCD.
type Profile struct {
	Name     string
	Width    int
	Height   int
	Color    bool
	FontSize float64
}

// Known LCDs.
var (
	Mono = Profile{Name: "mono", Width: 160, Height: 43, FontSize: 7}
	QVGA = Profile{Name: "qvga", Width: 320, Height: 240, Color: true, FontSize: 14}
)

// Profiles lists the known LCDs in setup order.
var Profiles = []Profile{Mono, QVGA}

// ProfileByName looks a profile up case-insensitively.
func ProfileByName(name string) (Profile, error) {
	for _, p := range Profiles {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("unknown device profile %q", name)
}

// Theme returns the palette the LCD draws with.
func (p Profile) Theme() render.Theme {
	if p.Color {
		return render.ColorTheme
	}
	return render.MonoTheme
}

// SupportsSecondary reports whether split modules may cycle their lower
// list. Only the color LCD has the room for it.
func (p Profile) SupportsSecondary() bool { return p.Color }

// Display receives finished frames.
type Display interface {
	Present(frame *image.RGBA)
}

// framer is a surface backed by an image that can be presented.
type framer interface {
	Image() *image.RGBA
}

// Device is one LCD with its panels. Registry owns every panel; Modules is
// the flat list the menu button walks, with exactly one module shown.
type Device struct {
	Profile  Profile
	Surface  render.Surface
	Painter  *render.Painter
	Registry *panel.Registry
	Modules  *panel.List

	display Display
	buttons ButtonSource
	edge    edge
}

// New creates a device drawing on s. display and buttons may be nil.
func New(p Profile, s render.Surface, display Display, buttons ButtonSource) *Device {
	reg := panel.NewRegistry()
	return &Device{
		Profile:  p,
		Surface:  s,
		Painter:  &render.Painter{S: s, Theme: p.Theme(), FontSize: p.FontSize},
		Registry: reg,
		Modules:  panel.NewList(reg),
		display:  display,
		buttons:  buttons,
	}
}

// AddModule registers a top-level module and appends it to the menu.
func (d *Device) AddModule(p panel.Panel) panel.Handle {
	h := d.Registry.Add(p)
	d.Modules.Append(h)
	return h
}

// Poll reads the buttons and returns the events raised since last time.
func (d *Device) Poll() []Button {
	if d.buttons == nil {
		return nil
	}
	return d.edge.next(d.buttons.Buttons())
}

// ActiveModule returns the module on screen, or nil before one is chosen.
func (d *Device) ActiveModule() *panel.Panel { return d.Modules.ActivePanel() }

// Render clears the frame and draws the active module.
func (d *Device) Render(lookup render.Lookup) {
	d.Surface.Clear(d.Painter.Theme.Clear)
	if m := d.ActiveModule(); m != nil {
		d.Painter.Module(d.Registry, m, lookup, d.Surface.Bounds())
	}
}

// ClearWith clears the frame and shows msg across it.
func (d *Device) ClearWith(msg string) {
	d.Surface.Clear(d.Painter.Theme.Clear)
	d.Painter.Notice(msg, image.Rectangle{}, false)
}

// Flush hands the frame to the display.
func (d *Device) Flush() {
	if d.display == nil {
		return
	}
	if f, ok := d.Surface.(framer); ok {
		d.display.Present(f.Image())
	}
}
