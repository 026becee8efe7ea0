package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/portal/input"
)

var namedKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyInsert:     input.KeyInsert,
	tcell.KeyEsc:        input.KeyEsc,
}

// ctrlKeys are control codes that stand for an editing combo of their own.
var ctrlKeys = map[tcell.Key]input.KeyCombo{
	tcell.KeyCtrlJ: input.Press(input.KeyEnter).WithCtrl(),
	tcell.KeyCtrlO: input.Press(input.KeyEnter).WithCtrl().WithShift(),
	tcell.KeyCtrlW: input.Press(input.KeyBackspace).WithCtrl(),
	tcell.KeyCtrlQ: input.Char('q').WithCtrl(),
}

// TranslateKey maps a tcell key event onto an input event. Keys the
// viewport has no use for report false.
func TranslateKey(ev *tcell.EventKey) (input.Event, bool) {
	mods := ev.Modifiers()
	if ev.Key() == tcell.KeyRune {
		c := input.Char(ev.Rune())
		c.Ctrl = mods&tcell.ModCtrl != 0
		return input.KeyEvent(c), true
	}
	if c, ok := ctrlKeys[ev.Key()]; ok {
		return input.KeyEvent(c), true
	}
	k, ok := namedKeys[ev.Key()]
	if !ok {
		return input.Event{}, false
	}
	c := input.Press(k)
	c.Ctrl = mods&(tcell.ModCtrl|tcell.ModAlt) != 0
	c.Shift = mods&tcell.ModShift != 0
	return input.KeyEvent(c), true
}

// TranslateMouse maps wheel motion onto scroll events.
func TranslateMouse(ev *tcell.EventMouse) (input.Event, bool) {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		return input.ScrollUp(), true
	case buttons&tcell.WheelDown != 0:
		return input.ScrollDown(), true
	}
	return input.Event{}, false
}
