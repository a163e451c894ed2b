package panel

import "image"

// Split stacks the active panel of the primary list above the active
// panel of the secondary list. Both lists share one registry.
type Split struct {
	*Cycler
}

// NewSplit wraps a seeded cycler.
func NewSplit(c *Cycler) *Split {
	return &Split{Cycler: c}
}

// Top returns the active panel of the upper region.
func (s *Split) Top() *Panel { return s.Primary.ActivePanel() }

// Bottom returns the active panel of the lower region.
func (s *Split) Bottom() *Panel { return s.Secondary.ActivePanel() }

// Layout divides r between the two regions. Two panels of the same kind
// share it evenly; otherwise the graph gets the larger 60% share.
func (s *Split) Layout(r image.Rectangle) (top, bottom image.Rectangle) {
	h := r.Dy()
	topH := h / 2
	if t, b := s.Top(), s.Bottom(); t != nil && b != nil && t.Kind != b.Kind {
		if t.Kind == KindText {
			topH = int(float32(h) * 0.4)
		} else {
			topH = int(float32(h) * 0.6)
		}
	}
	top = image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+topH)
	bottom = image.Rect(r.Min.X, top.Max.Y, r.Max.X, r.Max.Y)
	return top, bottom
}
