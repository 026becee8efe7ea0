// Package input defines the backend-neutral events the viewport consumes and
// the messages it hands back to its host.
package input

import "strings"

type Key uint8

const (
	KeyChar Key = iota
	KeyBackspace
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyDelete
	KeyInsert
	KeyEsc
	KeyCapsLock
)

var keyNames = [...]string{
	KeyChar:      "char",
	KeyBackspace: "backspace",
	KeyEnter:     "enter",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyTab:       "tab",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyEsc:       "esc",
	KeyCapsLock:  "capslock",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// KeyCombo is a key with its modifiers. Char is set only for KeyChar.
type KeyCombo struct {
	Key   Key
	Char  rune
	Shift bool
	Ctrl  bool
}

func Press(k Key) KeyCombo { return KeyCombo{Key: k} }

func Char(r rune) KeyCombo { return KeyCombo{Key: KeyChar, Char: r} }

func (c KeyCombo) WithCtrl() KeyCombo {
	c.Ctrl = true
	return c
}

func (c KeyCombo) WithShift() KeyCombo {
	c.Shift = true
	return c
}

// String renders the combo the way Bubble Tea names keys, e.g. "ctrl+left".
func (c KeyCombo) String() string {
	var sb strings.Builder
	if c.Ctrl {
		sb.WriteString("ctrl+")
	}
	if c.Shift {
		sb.WriteString("shift+")
	}
	if c.Key == KeyChar {
		sb.WriteRune(c.Char)
	} else {
		sb.WriteString(c.Key.String())
	}
	return sb.String()
}

type EventKind uint8

const (
	EventKey EventKind = iota
	EventScrollUp
	EventScrollDown
)

type Event struct {
	Kind  EventKind
	Combo KeyCombo
}

func KeyEvent(c KeyCombo) Event { return Event{Kind: EventKey, Combo: c} }

func ScrollUp() Event { return Event{Kind: EventScrollUp} }

func ScrollDown() Event { return Event{Kind: EventScrollDown} }

type MessageKind uint8

const (
	MessageNone MessageKind = iota
	// MessageOpen asks the host to open Path.
	MessageOpen
	// MessagePicker asks the host to leave the buffer for its file picker.
	MessagePicker
	// MessageQuit asks the host to exit.
	MessageQuit
)

// Message is what a viewport returns to its host after an event.
type Message struct {
	Kind MessageKind
	Path string
}

func Open(path string) Message { return Message{Kind: MessageOpen, Path: path} }

func Picker() Message { return Message{Kind: MessagePicker} }

func Quit() Message { return Message{Kind: MessageQuit} }
