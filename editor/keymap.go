package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/portal/input"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	WordLeft, WordRight   key.Binding
	Home, End             key.Binding
	Top, Bottom           key.Binding
	PageUp, PageDown      key.Binding

	Enter, OpenBelow, OpenAbove key.Binding
	Backspace, WordBackspace    key.Binding
	Delete, WordDelete          key.Binding
	Tab                         key.Binding

	Close, Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:   key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:    key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		Top:    key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "file start")),
		Bottom: key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "file end")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),

		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "split line")),
		OpenBelow: key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "open below")),
		OpenAbove: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open above")),

		// Some terminals send BS (ctrl+h) for the Backspace key.
		Backspace:     key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		WordBackspace: key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace"), key.WithHelp("ctrl+w", "delete word left")),
		Delete:        key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		WordDelete:    key.NewBinding(key.WithKeys("alt+d", "alt+delete"), key.WithHelp("alt+d", "delete word right")),
		Tab:           key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),

		Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Close, km.Quit, km.Top, km.Bottom, km.WordBackspace}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right, km.WordLeft, km.WordRight},
		{km.Home, km.End, km.Top, km.Bottom, km.PageUp, km.PageDown},
		{km.Enter, km.OpenBelow, km.OpenAbove, km.Tab},
		{km.Backspace, km.WordBackspace, km.Delete, km.WordDelete},
		{km.Close, km.Quit},
	}
}

type binding struct {
	b     *key.Binding
	combo input.KeyCombo
}

func (km *KeyMap) bindings() []binding {
	return []binding{
		{&km.WordLeft, input.Press(input.KeyLeft).WithCtrl()},
		{&km.WordRight, input.Press(input.KeyRight).WithCtrl()},
		{&km.Left, input.Press(input.KeyLeft)},
		{&km.Right, input.Press(input.KeyRight)},
		{&km.Up, input.Press(input.KeyUp)},
		{&km.Down, input.Press(input.KeyDown)},
		{&km.Top, input.Press(input.KeyHome).WithCtrl()},
		{&km.Bottom, input.Press(input.KeyEnd).WithCtrl()},
		{&km.Home, input.Press(input.KeyHome)},
		{&km.End, input.Press(input.KeyEnd)},
		{&km.PageUp, input.Press(input.KeyPageUp)},
		{&km.PageDown, input.Press(input.KeyPageDown)},
		{&km.OpenBelow, input.Press(input.KeyEnter).WithCtrl()},
		{&km.OpenAbove, input.Press(input.KeyEnter).WithCtrl().WithShift()},
		{&km.Enter, input.Press(input.KeyEnter)},
		{&km.WordBackspace, input.Press(input.KeyBackspace).WithCtrl()},
		{&km.Backspace, input.Press(input.KeyBackspace)},
		{&km.WordDelete, input.Press(input.KeyDelete).WithCtrl()},
		{&km.Delete, input.Press(input.KeyDelete)},
		{&km.Tab, input.Press(input.KeyTab)},
		{&km.Close, input.Press(input.KeyEsc)},
		{&km.Quit, input.Char('q').WithCtrl()},
	}
}

// Translate maps a key message onto viewport events. Bound keys win over
// literal runes; a pasted or batched rune message yields one event per rune,
// with line breaks turned into Enter.
func (km KeyMap) Translate(msg tea.KeyMsg) []input.Event {
	if msg.Paste || msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		return runeEvents(msg.Runes)
	}
	for _, b := range km.bindings() {
		if key.Matches(msg, *b.b) {
			return []input.Event{input.KeyEvent(b.combo)}
		}
	}
	switch msg.Type {
	case tea.KeySpace:
		return []input.Event{input.KeyEvent(input.Char(' '))}
	case tea.KeyRunes:
		if !msg.Alt {
			return runeEvents(msg.Runes)
		}
	}
	return nil
}

func runeEvents(runes []rune) []input.Event {
	out := make([]input.Event, 0, len(runes))
	for i, r := range runes {
		switch r {
		case '\r':
			out = append(out, input.KeyEvent(input.Press(input.KeyEnter)))
		case '\n':
			if i > 0 && runes[i-1] == '\r' {
				continue
			}
			out = append(out, input.KeyEvent(input.Press(input.KeyEnter)))
		case '\t':
			out = append(out, input.KeyEvent(input.Press(input.KeyTab)))
		default:
			out = append(out, input.KeyEvent(input.Char(r)))
		}
	}
	return out
}
