package panel

import (
	"fmt"
	"slices"
)

// List is an ordered set of panels with at most one active member.
// Lists inside a split always have exactly one; a device's flat module
// list may start with none.
type List struct {
	reg    *Registry
	items  []Handle
	active Handle
}

// NewList creates a list over handles from reg. Nothing is active until Seed.
func NewList(reg *Registry, items ...Handle) *List {
	return &List{reg: reg, items: items, active: NoHandle}
}

// Seed makes h the only active panel of the list.
func (l *List) Seed(h Handle) error {
	if !l.Contains(h) {
		return fmt.Errorf("seed %d: %w", h, ErrNotInList)
	}
	for _, it := range l.items {
		l.reg.Deactivate(it)
	}
	l.reg.Activate(h)
	l.active = h
	return nil
}

// Append adds h to the end of the list.
func (l *List) Append(h Handle) { l.items = append(l.items, h) }

// Active returns the active handle, or NoHandle.
func (l *List) Active() Handle { return l.active }

// ActivePanel returns the active panel, or nil.
func (l *List) ActivePanel() *Panel { return l.reg.Get(l.active) }

// Items returns the handles in display order.
func (l *List) Items() []Handle { return l.items }

// Len returns the number of panels in the list.
func (l *List) Len() int { return len(l.items) }

// Contains reports whether h belongs to the list.
func (l *List) Contains(h Handle) bool {
	return slices.Contains(l.items, h)
}

func (l *List) activeID() (int, bool) {
	p := l.reg.Get(l.active)
	if p == nil {
		return 0, false
	}
	return p.ID, true
}

// switchTo deactivates the current panel and activates h.
func (l *List) switchTo(h Handle) {
	if l.active != h {
		l.reg.Deactivate(l.active)
	}
	l.active = h
	l.reg.Activate(h)
}

// Cycle advances change to its next panel and returns the new active handle.
//
// The scan starts just after the current active panel. When other is not
// nil, candidates with the same ID as other's active panel are skipped,
// and after the switch the new panel's companion on other becomes other's
// active panel; without such a companion other's active panel is simply
// re-activated. If the scan runs off the end of the list, the first panel
// is activated unconditionally so the cycle can never stall.
func Cycle(change, other *List) Handle {
	if len(change.items) == 0 {
		return NoHandle
	}

	otherID, hasOther := 0, false
	if other != nil {
		otherID, hasOther = other.activeID()
	}

	next := NoHandle
	if start := slices.Index(change.items, change.active); start >= 0 {
		for _, h := range change.items[start+1:] {
			if p := change.reg.Get(h); hasOther && p != nil && p.ID == otherID {
				continue
			}
			next = h
			break
		}
	}
	if next == NoHandle {
		next = change.items[0]
	}

	change.switchTo(next)
	if other != nil {
		other.follow(next)
	}
	return next
}

// follow keeps the companion invariant after h became active on the
// paired list.
func (l *List) follow(h Handle) {
	if c := l.reg.Get(h).Companion; c != NoHandle && l.Contains(c) {
		l.switchTo(c)
		return
	}
	l.reg.Activate(l.active)
}

// Cycler manages the two paired lists of a split display.
type Cycler struct {
	Primary   *List
	Secondary *List
}

// NewCycler seeds both lists. Each list must hold its seed.
func NewCycler(primary *List, primarySeed Handle, secondary *List, secondarySeed Handle) (*Cycler, error) {
	if err := primary.Seed(primarySeed); err != nil {
		return nil, fmt.Errorf("primary: %w", err)
	}
	if err := secondary.Seed(secondarySeed); err != nil {
		return nil, fmt.Errorf("secondary: %w", err)
	}
	return &Cycler{Primary: primary, Secondary: secondary}, nil
}

// CyclePrimary advances the primary list.
func (c *Cycler) CyclePrimary() Handle { return Cycle(c.Primary, c.Secondary) }

// CycleSecondary advances the secondary list.
func (c *Cycler) CycleSecondary() Handle { return Cycle(c.Secondary, c.Primary) }
