package line

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/portal/sink"
)

func newFrame() *sink.Frame {
	plain := lipgloss.NewStyle()
	return sink.NewFrame(sink.Styles{Text: plain, Gutter: plain, GutterActive: plain, Cursor: plain})
}

func TestRenderPadsAndTruncates(t *testing.T) {
	cases := []struct {
		text  string
		width int
		want  string
	}{
		{text: "abc", width: 6, want: "  abc   "},
		{text: "abcdef", width: 3, want: "  abc"},
		{text: "\tz", width: 6, want: "      z "},
		{text: "\tz", width: 2, want: "    "},
		{text: "a\x01b", width: 3, want: "  a?b"},
	}
	for _, tc := range cases {
		f := newFrame()
		New(tc.text).Render(f, 2, tc.width)
		if got := f.Lines()[0]; got != tc.want {
			t.Fatalf("render %q width %d: got %q, want %q", tc.text, tc.width, got, tc.want)
		}
	}
}

func TestRenderCursorPinsToLastColumn(t *testing.T) {
	l := New("abcdefgh")
	f := newFrame()
	l.RenderCursor(f, 4, 5, l.End())
	if x, _, ok := f.Cursor(); !ok || x != 8 {
		t.Fatalf("cursor: got x=%d ok=%v, want x=8", x, ok)
	}

	f.Reset()
	l.RenderCursor(f, 4, 5, l.Correct(Invalid(2)))
	if x, _, _ := f.Cursor(); x != 6 {
		t.Fatalf("cursor: got x=%d, want 6", x)
	}
}
