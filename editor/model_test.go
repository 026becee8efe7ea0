package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/portal/input"
	"github.com/iw2rmb/portal/sink"
	"github.com/iw2rmb/portal/viewport"
)

func plainStyle() Style {
	s := lipgloss.NewStyle()
	return Style{
		Frame:  sink.Styles{Text: s, Gutter: s, GutterActive: s, Cursor: s},
		Status: s,
		Help:   s,
	}
}

func newModel(text string, cfg Config) Model {
	if cfg.KeyMap.Quit.Keys() == nil {
		cfg.KeyMap = DefaultKeyMap()
	}
	cfg.Style = plainStyle()
	return New(viewport.FromText(text, viewport.DefaultOptions()), cfg)
}

func TestModel_SetSizeReservesChromeRows(t *testing.T) {
	m := newModel("a\nb", Config{ShowStatus: true, ShowHelp: true})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if got := m.Viewport().Height(); got != 8 {
		t.Fatalf("viewport height: got %d, want %d", got, 8)
	}

	m = newModel("a", Config{})
	m = m.SetSize(40, 1)
	if got := m.Viewport().Height(); got != 1 {
		t.Fatalf("viewport height without chrome: got %d, want %d", got, 1)
	}
}

func TestModel_ViewRendersGutterStatusAndHelp(t *testing.T) {
	m := newModel("first\nsecond", Config{ShowStatus: true, ShowHelp: true})
	m = m.SetSize(30, 5)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 5 {
		t.Fatalf("view rows: got %d, want %d: %q", len(lines), 5, lines)
	}
	if got, want := lines[0], "  0 first"; !strings.HasPrefix(got, want) {
		t.Fatalf("row 0: got %q, want prefix %q", got, want)
	}
	if got, want := lines[1], "  1 second"; !strings.HasPrefix(got, want) {
		t.Fatalf("row 1: got %q, want prefix %q", got, want)
	}
	if got := lines[3]; !strings.Contains(got, "[scratch]") || !strings.HasSuffix(got, "0:0 ") {
		t.Fatalf("status: got %q", got)
	}
	if got := lines[4]; !strings.Contains(got, "esc") || !strings.Contains(got, "quit") {
		t.Fatalf("help: got %q", got)
	}
}

func TestModel_BlurHidesCursorAndIgnoresKeys(t *testing.T) {
	m := newModel("ab", Config{})
	m = m.SetSize(20, 2).Blur()
	if m.Focused() {
		t.Fatalf("blurred model reports focus")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if got := m.Viewport().Text(); got != "ab" {
		t.Fatalf("text after key while blurred: got %q, want %q", got, "ab")
	}
	m.View()
	if _, _, ok := m.frame.Cursor(); ok {
		t.Fatalf("blurred view placed a cursor")
	}

	m = m.Focus()
	m.View()
	if x, y, ok := m.frame.Cursor(); !ok || x != 4 || y != 0 {
		t.Fatalf("focused cursor: got (%d,%d,%v), want (4,0,true)", x, y, ok)
	}
}

func TestLayoutStatus(t *testing.T) {
	st := viewport.StatusLine{Left: "a.go", Middle: "Go", Right: "3:1"}
	got := layoutStatus(st, 20)
	if lipgloss.Width(got) != 20 {
		t.Fatalf("status width: got %d, want 20 (%q)", lipgloss.Width(got), got)
	}
	if !strings.HasPrefix(got, " a.go ") || !strings.HasSuffix(got, " 3:1 ") || !strings.Contains(got, "Go") {
		t.Fatalf("status layout: got %q", got)
	}
	if got := layoutStatus(st, 12); strings.Contains(got, "Go") {
		t.Fatalf("narrow status kept the middle: %q", got)
	}
	if got := layoutStatus(st, 4); len([]rune(got)) != 4 {
		t.Fatalf("truncated status: got %q", got)
	}
}

func TestMessageMsgWrapsViewportMessage(t *testing.T) {
	msg := emit(input.Quit())()
	mm, ok := msg.(MessageMsg)
	if !ok || mm.Kind != input.MessageQuit {
		t.Fatalf("emitted message: got %#v", msg)
	}
}
