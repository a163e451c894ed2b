package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/DMFirmy/GHud/internal/device"
)

// keymap binds keys to LCD buttons.
var keymap = map[ebiten.Key]device.Button{
	ebiten.KeyArrowUp:    device.ButtonUp,
	ebiten.KeyArrowDown:  device.ButtonDown,
	ebiten.KeyArrowLeft:  device.ButtonLeft,
	ebiten.KeyArrowRight: device.ButtonRight,
	ebiten.KeyEnter:      device.ButtonOk,
	ebiten.KeyBackspace:  device.ButtonCancel,
	ebiten.KeyM:          device.ButtonMenu,
}

// Buttons returns a button source for LCD i. It reads the held keys
// while that LCD has focus and nothing otherwise.
func (s *Screen) Buttons(i int) device.ButtonSource {
	return device.ButtonFunc(func() device.Buttons {
		if i != s.Focus {
			return 0
		}
		var m device.Buttons
		for k, b := range keymap {
			if ebiten.IsKeyPressed(k) {
				m |= device.Mask(b)
			}
		}
		return m
	})
}

// UpdateFocus moves keyboard focus to the next LCD on Tab.
func (s *Screen) UpdateFocus() {
	if len(s.lcds) > 0 && inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.Focus = (s.Focus + 1) % len(s.lcds)
	}
}
