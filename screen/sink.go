// Package screen runs a viewport on a tcell terminal.
package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/portal/sink"
)

// Styles maps sink styles onto tcell styles.
type Styles struct {
	Text         tcell.Style
	Gutter       tcell.Style
	GutterActive tcell.Style
	Status       tcell.Style
}

func DefaultStyles() Styles {
	return Styles{
		Text:         tcell.StyleDefault,
		Gutter:       tcell.StyleDefault.Foreground(tcell.ColorGray),
		GutterActive: tcell.StyleDefault.Foreground(tcell.ColorSilver).Bold(true),
		Status:       tcell.StyleDefault.Reverse(true),
	}
}

func (s Styles) of(style sink.Style) tcell.Style {
	switch style {
	case sink.StyleGutter:
		return s.Gutter
	case sink.StyleGutterActive:
		return s.GutterActive
	default:
		return s.Text
	}
}

// Sink writes into a region of a tcell.Screen whose top-left corner is at
// (x0, y0).
type Sink struct {
	scr      tcell.Screen
	x0, y0   int
	row, col int
	styles   Styles
}

func NewSink(scr tcell.Screen, x0, y0 int, styles Styles) *Sink {
	return &Sink{scr: scr, x0: x0, y0: y0, styles: styles}
}

func (s *Sink) MoveToRow(y int) { s.row = y }

func (s *Sink) MoveToColumn(x int) { s.col = x }

func (s *Sink) Write(text string, style sink.Style) {
	st := s.styles.of(style)
	for _, r := range text {
		s.scr.SetContent(s.x0+s.col, s.y0+s.row, r, nil, st)
		s.col++
	}
}

func (s *Sink) ShowCursor(x int) {
	s.scr.ShowCursor(s.x0+x, s.y0+s.row)
}
