package viewport

import (
	"unicode"

	"github.com/iw2rmb/portal/input"
	"github.com/iw2rmb/portal/line"
)

// Update applies one input event. It reports a message when the event is
// meant for the host rather than the buffer.
func (v *Viewport) Update(ev input.Event) (input.Message, bool) {
	switch ev.Kind {
	case input.EventScrollUp:
		v.scrollBy(-v.opts.ScrollDistance)
	case input.EventScrollDown:
		v.scrollBy(v.opts.ScrollDistance)
	case input.EventKey:
		return v.updateKey(ev.Combo)
	}
	return input.Message{}, false
}

func (v *Viewport) updateKey(k input.KeyCombo) (input.Message, bool) {
	switch k.Key {
	case input.KeyEsc:
		return input.Picker(), true
	case input.KeyChar:
		if k.Ctrl {
			if unicode.ToLower(k.Char) == 'q' {
				return input.Quit(), true
			}
			break
		}
		v.typeChar(k.Char)
	case input.KeyTab:
		v.typeChar('\t')
	case input.KeyEnter:
		switch {
		case k.Ctrl && k.Shift:
			v.openAbove()
		case k.Ctrl:
			v.openBelow()
		default:
			v.splitLine()
		}
	case input.KeyBackspace:
		v.backspace(k.Ctrl)
	case input.KeyDelete:
		v.deleteForward(k.Ctrl)
	case input.KeyUp:
		if !v.cursorUp() {
			v.cursor = line.Front()
		}
	case input.KeyDown:
		if !v.cursorDown() {
			v.cursor = line.Valid(v.current().End())
		}
	case input.KeyLeft:
		v.moveLeft(k.Ctrl)
	case input.KeyRight:
		v.moveRight(k.Ctrl)
	case input.KeyHome:
		if k.Ctrl {
			v.jumpTop()
		}
		v.cursor = line.Front()
	case input.KeyEnd:
		if k.Ctrl {
			v.jumpBottom()
		}
		v.cursor = line.Valid(v.current().End())
	case input.KeyPageUp:
		v.scrollBy(-len(v.visible) / 2)
	case input.KeyPageDown:
		v.scrollBy(len(v.visible) / 2)
	case input.KeyInsert, input.KeyCapsLock:
		// ignored
	}
	return input.Message{}, false
}
