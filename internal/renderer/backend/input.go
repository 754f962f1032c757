package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridedit/internal/input/key"
	"github.com/dshills/gridedit/internal/input/mouse"
)

// convertKey converts a tcell key press into a key event. Control letters
// arrive as dedicated tcell keys and become "ctrl+<letter>".
func convertKey(k tcell.Key, r rune, m tcell.ModMask) (key.Event, bool) {
	mods := convertMod(m)

	switch k {
	case tcell.KeyRune:
		return key.NewRuneEvent(r, mods), true
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods), true
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods), true
	case tcell.KeyBacktab:
		return key.NewSpecialEvent(key.KeyTab, mods.With(key.ModShift)), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods.Without(key.ModCtrl)), true
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	case tcell.KeyCtrlSpace:
		return key.NewSpecialEvent(key.KeySpace, mods.With(key.ModCtrl)), true
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent(rune('a'+(k-tcell.KeyCtrlA)), mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}

// convertToTcellKey converts a key event back to tcell form.
func convertToTcellKey(e key.Event) (tcell.Key, rune, tcell.ModMask) {
	mods := convertToTcellMod(e.Modifiers)
	switch e.Key {
	case key.KeyRune:
		if e.Modifiers.Has(key.ModCtrl) && e.Rune >= 'a' && e.Rune <= 'z' {
			return tcell.KeyCtrlA + tcell.Key(e.Rune-'a'), e.Rune, mods
		}
		return tcell.KeyRune, e.Rune, mods
	case key.KeySpace:
		return tcell.KeyRune, ' ', mods
	case key.KeyEscape:
		return tcell.KeyEscape, 0, mods
	case key.KeyEnter:
		return tcell.KeyEnter, 0, mods
	case key.KeyTab:
		return tcell.KeyTab, 0, mods
	case key.KeyBackspace:
		return tcell.KeyBackspace2, 0, mods
	case key.KeyDelete:
		return tcell.KeyDelete, 0, mods
	case key.KeyUp:
		return tcell.KeyUp, 0, mods
	case key.KeyDown:
		return tcell.KeyDown, 0, mods
	case key.KeyLeft:
		return tcell.KeyLeft, 0, mods
	case key.KeyRight:
		return tcell.KeyRight, 0, mods
	default:
		return tcell.KeyRune, 0, mods
	}
}

// convertMod converts tcell modifier mask to our Modifier.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}

// convertToTcellMod converts our Modifier to tcell.ModMask.
func convertToTcellMod(m key.Modifier) tcell.ModMask {
	var result tcell.ModMask
	if m.Has(key.ModShift) {
		result |= tcell.ModShift
	}
	if m.Has(key.ModCtrl) {
		result |= tcell.ModCtrl
	}
	if m.Has(key.ModAlt) {
		result |= tcell.ModAlt
	}
	if m.Has(key.ModMeta) {
		result |= tcell.ModMeta
	}
	return result
}

// pointerTracker turns tcell's button-state reports into press, drag and
// release events. tcell reports the buttons held at each report, not
// transitions.
type pointerTracker struct {
	held mouse.Button
}

func (p *pointerTracker) convert(x, y int, buttons tcell.ButtonMask, mods key.Modifier) (mouse.Event, bool) {
	ev := mouse.Event{Position: mouse.Position{X: x, Y: y}, Modifiers: mods}

	if wheel := wheelButton(buttons); wheel != mouse.ButtonNone {
		ev.Button = wheel
		ev.Action = mouse.ActionPress
		return ev, true
	}

	pressed := pressedButton(buttons)
	switch {
	case pressed != mouse.ButtonNone && p.held == mouse.ButtonNone:
		p.held = pressed
		ev.Button = pressed
		ev.Action = mouse.ActionPress
	case p.held != mouse.ButtonNone && pressed != mouse.ButtonNone:
		ev.Button = p.held
		ev.Action = mouse.ActionDrag
	case p.held != mouse.ButtonNone:
		ev.Button = p.held
		ev.Action = mouse.ActionRelease
		p.held = mouse.ButtonNone
	default:
		return mouse.Event{}, false
	}
	return ev, true
}

func pressedButton(b tcell.ButtonMask) mouse.Button {
	switch {
	case b&tcell.Button1 != 0:
		return mouse.ButtonLeft
	case b&tcell.Button3 != 0:
		return mouse.ButtonMiddle
	case b&tcell.Button2 != 0:
		return mouse.ButtonRight
	default:
		return mouse.ButtonNone
	}
}

func wheelButton(b tcell.ButtonMask) mouse.Button {
	switch {
	case b&tcell.WheelUp != 0:
		return mouse.ButtonScrollUp
	case b&tcell.WheelDown != 0:
		return mouse.ButtonScrollDown
	case b&tcell.WheelLeft != 0:
		return mouse.ButtonScrollLeft
	case b&tcell.WheelRight != 0:
		return mouse.ButtonScrollRight
	default:
		return mouse.ButtonNone
	}
}
