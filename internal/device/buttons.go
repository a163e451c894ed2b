package device

import "strings"

// Button is one of the soft buttons below an LCD.
type Button uint8

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonOk
	ButtonCancel
	ButtonMenu
)

var buttonNames = [...]string{"up", "down", "left", "right", "ok", "cancel", "menu"}

func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "unknown"
}

// fireOrder is the order in which a changed mask raises its events.
var fireOrder = []Button{ButtonLeft, ButtonRight, ButtonOk, ButtonMenu, ButtonUp, ButtonDown, ButtonCancel}

// Buttons is the level state of every button, one bit each.
type Buttons uint16

// Mask builds a state with the given buttons held.
func Mask(bs ...Button) Buttons {
	var m Buttons
	for _, b := range bs {
		m |= 1 << b
	}
	return m
}

// Has reports whether b is held.
func (m Buttons) Has(b Button) bool { return m&(1<<b) != 0 }

func (m Buttons) String() string {
	var held []string
	for _, b := range fireOrder {
		if m.Has(b) {
			held = append(held, b.String())
		}
	}
	if len(held) == 0 {
		return "none"
	}
	return strings.Join(held, "+")
}

// ButtonSource reports the current button state.
type ButtonSource interface {
	Buttons() Buttons
}

// ButtonFunc adapts a function to ButtonSource.
type ButtonFunc func() Buttons

func (f ButtonFunc) Buttons() Buttons { return f() }

// edge turns level readings into events. Nothing fires while the state is
// unchanged; on a change every held button fires, including ones that were
// already held.
type edge struct {
	last Buttons
}

func (e *edge) next(cur Buttons) []Button {
	if cur == e.last {
		return nil
	}
	e.last = cur
	var fired []Button
	for _, b := range fireOrder {
		if cur.Has(b) {
			fired = append(fired, b)
		}
	}
	return fired
}
