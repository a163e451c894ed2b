package panel

import (
	"errors"
	"image/color"
)

// Kind is the closed set of panel renderers.
type Kind uint8

const (
	KindText  Kind = iota // orbit info: labelled columns of numbers
	KindGraph             // orbit graph: projected ellipse, body, vessel
	KindSplit             // two stacked panels cycled with Up/Down
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindGraph:
		return "graph"
	case KindSplit:
		return "split"
	default:
		return "unknown"
	}
}

// Handle refers to a panel inside its Registry.
type Handle int

// NoHandle is the zero reference: no companion, or no active panel.
const NoHandle Handle = -1

// ErrNotInList is returned when a handle is used with a list that does not hold it.
var ErrNotInList = errors.New("panel: handle not in list")

// Style carries the per-panel colors. Text panels use BackTop/BackBottom
// for their header gradient; graph panels draw the orbit with Orbit.
type Style struct {
	Orbit      color.RGBA
	BackTop    color.RGBA
	BackBottom color.RGBA
}

// Panel is one selectable display. Panels are built once at setup and
// live as long as their Registry; only the active flag changes after that.
type Panel struct {
	ID      int
	Name    string
	Kind    Kind
	Target  bool   // shows the tracked target instead of the active vessel
	Moniker string // short glyph identifying vessel or target
	Style   Style

	// Companion is the paired panel on the other list of a split.
	Companion Handle
	// Split is set for KindSplit only.
	Split *Split

	active bool
}

// IsActive reports whether the panel is currently shown.
func (p *Panel) IsActive() bool { return p.active }

// Registry owns every panel of one device. Lists and companions refer
// into it by Handle.
type Registry struct {
	panels []*Panel
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add stores p inactive and without a companion and returns its handle.
// Companions are set afterwards with Pair.
func (r *Registry) Add(p Panel) Handle {
	p.active = false
	p.Companion = NoHandle
	r.panels = append(r.panels, &p)
	return Handle(len(r.panels) - 1)
}

// Get returns the panel for h, or nil for an unknown handle.
func (r *Registry) Get(h Handle) *Panel {
	if h < 0 || int(h) >= len(r.panels) {
		return nil
	}
	return r.panels[h]
}

// Len returns the number of registered panels.
func (r *Registry) Len() int { return len(r.panels) }

// Pair makes a and b each other's companion.
func (r *Registry) Pair(a, b Handle) {
	pa, pb := r.Get(a), r.Get(b)
	if pa == nil || pb == nil {
		return
	}
	pa.Companion = b
	pb.Companion = a
}

// Activate marks h as shown.
func (r *Registry) Activate(h Handle) {
	if p := r.Get(h); p != nil {
		p.active = true
	}
}

// Deactivate marks h as hidden.
func (r *Registry) Deactivate(h Handle) {
	if p := r.Get(h); p != nil {
		p.active = false
	}
}

// IsActive reports whether h is shown. Unknown handles are never active.
func (r *Registry) IsActive(h Handle) bool {
	p := r.Get(h)
	return p != nil && p.active
}
