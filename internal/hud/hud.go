// Package hud drives every LCD from the host's flight data.
package hud

import (
	"log/slog"
	"time"

	"github.com/DMFirmy/GHud/internal/device"
	"github.com/DMFirmy/GHud/internal/metrics"
	"github.com/DMFirmy/GHud/internal/orbit"
	"github.com/DMFirmy/GHud/internal/panel"
	"github.com/DMFirmy/GHud/internal/render"
)

// DefaultInterval is the minimum time between rendered frames.
const DefaultInterval = 200 * time.Millisecond

// Host supplies the orbits to show. Vessel reports false outside flight.
type Host interface {
	Vessel() (orbit.Subject, bool)
	Target() (orbit.Subject, bool)
}

// action reports whether it changed what the device shows.
type action func(h *HUD, d *device.Device) bool

// actions binds buttons to panel cycling. Left, Right, Ok and Cancel do
// nothing.
var actions = map[device.Button]action{
	device.ButtonUp:   (*HUD).cyclePrimary,
	device.ButtonDown: (*HUD).cycleSecondary,
	device.ButtonMenu: (*HUD).cycleModules,
}

type HUD struct {
	Devices []*device.Device

	host     Host
	interval time.Duration
	last     time.Time
	drawn    bool
	metrics  *metrics.Collector
	log      *slog.Logger
}

// New creates a HUD over devices that have already been set up. A zero
// interval renders on every call; m may be nil.
func New(host Host, devices []*device.Device, interval time.Duration, m *metrics.Collector, log *slog.Logger) *HUD {
	return &HUD{
		Devices:  devices,
		host:     host,
		interval: interval,
		metrics:  m,
		log:      log,
	}
}

// Update reads buttons on every device and redraws them when the frame
// interval has passed or a button changed something. It reports whether
// a frame was drawn.
func (h *HUD) Update(now time.Time) bool {
	pressed := false
	for _, d := range h.Devices {
		for _, b := range d.Poll() {
			pressed = h.dispatch(d, b) || pressed
		}
	}

	if h.drawn && !pressed && now.Sub(h.last) < h.interval {
		h.metrics.FrameSkipped()
		return false
	}
	h.last, h.drawn = now, true

	start := time.Now()
	defer func() { h.metrics.ObserveRender(time.Since(start)) }()

	if _, ok := h.host.Vessel(); !ok {
		for _, d := range h.Devices {
			d.ClearWith(render.MsgWaiting)
			d.Flush()
			h.metrics.Notice(render.MsgWaiting)
			h.metrics.FrameRendered(d.Profile.Name)
		}
		return true
	}

	lookup := h.lookup()
	for _, d := range h.Devices {
		d.Render(lookup)
		d.Flush()
		h.metrics.FrameRendered(d.Profile.Name)
	}
	return true
}

func (h *HUD) lookup() render.Lookup {
	return func(target bool) (orbit.Subject, bool) {
		if target {
			return h.host.Target()
		}
		return h.host.Vessel()
	}
}

// dispatch runs the action bound to b and reports whether it changed
// anything.
func (h *HUD) dispatch(d *device.Device, b device.Button) bool {
	h.metrics.Button(d.Profile.Name, b.String())
	h.log.Debug("button", "device", d.Profile.Name, "button", b.String())
	act, ok := actions[b]
	return ok && act(h, d)
}

func (h *HUD) activeSplit(d *device.Device) *panel.Split {
	if m := d.ActiveModule(); m != nil && m.Kind == panel.KindSplit {
		return m.Split
	}
	return nil
}

func (h *HUD) cyclePrimary(d *device.Device) bool {
	s := h.activeSplit(d)
	if s == nil {
		return false
	}
	s.CyclePrimary()
	h.metrics.Cycled(d.Profile.Name, "primary")
	return true
}

func (h *HUD) cycleSecondary(d *device.Device) bool {
	s := h.activeSplit(d)
	if s == nil || !d.Profile.SupportsSecondary() {
		return false
	}
	s.CycleSecondary()
	h.metrics.Cycled(d.Profile.Name, "secondary")
	return true
}

func (h *HUD) cycleModules(d *device.Device) bool {
	if panel.Cycle(d.Modules, nil) == panel.NoHandle {
		return false
	}
	h.metrics.Cycled(d.Profile.Name, "modules")
	return true
}
