package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/portal/input"
)

func TestKeyMap_TranslateBindings(t *testing.T) {
	km := DefaultKeyMap()
	cases := []struct {
		msg  tea.KeyMsg
		want input.KeyCombo
	}{
		{msg: tea.KeyMsg{Type: tea.KeyLeft}, want: input.Press(input.KeyLeft)},
		{msg: tea.KeyMsg{Type: tea.KeyLeft, Alt: true}, want: input.Press(input.KeyLeft).WithCtrl()},
		{msg: tea.KeyMsg{Type: tea.KeyCtrlRight}, want: input.Press(input.KeyRight).WithCtrl()},
		{msg: tea.KeyMsg{Type: tea.KeyCtrlHome}, want: input.Press(input.KeyHome).WithCtrl()},
		{msg: tea.KeyMsg{Type: tea.KeyCtrlEnd}, want: input.Press(input.KeyEnd).WithCtrl()},
		{msg: tea.KeyMsg{Type: tea.KeyPgDown}, want: input.Press(input.KeyPageDown)},
		{msg: tea.KeyMsg{Type: tea.KeyCtrlJ}, want: input.Press(input.KeyEnter).WithCtrl()},
		{msg: tea.KeyMsg{Type: tea.KeyCtrlO}, want: input.Press(input.KeyEnter).WithCtrl().WithShift()},
		{msg: tea.KeyMsg{Type: tea.KeyBackspace, Alt: true}, want: input.Press(input.KeyBackspace).WithCtrl()},
		{msg: tea.KeyMsg{Type: tea.KeyCtrlH}, want: input.Press(input.KeyBackspace)},
		{msg: tea.KeyMsg{Type: tea.KeyCtrlW}, want: input.Press(input.KeyBackspace).WithCtrl()},
		{msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d"), Alt: true}, want: input.Press(input.KeyDelete).WithCtrl()},
		{msg: tea.KeyMsg{Type: tea.KeyTab}, want: input.Press(input.KeyTab)},
		{msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("é")}, want: input.Char('é')},
	}
	for _, tc := range cases {
		got := km.Translate(tc.msg)
		if len(got) != 1 || got[0].Combo != tc.want {
			t.Fatalf("translate %q: got %+v, want %s", tc.msg.String(), got, tc.want)
		}
	}
}

func TestKeyMap_TranslateDropsUnboundAlt(t *testing.T) {
	km := DefaultKeyMap()
	if got := km.Translate(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}); len(got) != 0 {
		t.Fatalf("alt+x: got %+v, want nothing", got)
	}
	if got := km.Translate(tea.KeyMsg{Type: tea.KeyF3}); len(got) != 0 {
		t.Fatalf("f3: got %+v, want nothing", got)
	}
}

func TestKeyMap_HelpCoversBindings(t *testing.T) {
	km := DefaultKeyMap()
	if got := len(km.ShortHelp()); got == 0 {
		t.Fatalf("short help is empty")
	}
	n := 0
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	if n != len(km.bindings()) {
		t.Fatalf("full help lists %d bindings, keymap has %d", n, len(km.bindings()))
	}
}
