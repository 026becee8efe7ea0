package viewport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/portal/sink"
)

// Render draws the window into out, width columns wide and Height rows
// tall. The cursor is shown only when focused.
func (v *Viewport) Render(out sink.Sink, width int, focused bool) {
	textX := v.gutterWidth + 1
	textWidth := max(width-textX, 0)
	for row, l := range v.visible {
		out.MoveToRow(row)
		out.MoveToColumn(0)
		style := sink.StyleGutter
		if row == v.active {
			style = sink.StyleGutterActive
		}
		out.Write(fmt.Sprintf("%*d ", v.gutterWidth, v.offset+row), style)
		if focused && row == v.active {
			l.RenderCursor(out, textX, textWidth, l.Correct(v.cursor))
		} else {
			l.Render(out, textX, textWidth)
		}
	}
	if width <= 0 {
		return
	}
	blank := strings.Repeat(" ", width)
	for row := len(v.visible); row < v.opts.Height; row++ {
		out.MoveToRow(row)
		out.MoveToColumn(0)
		out.Write(blank, sink.StyleText)
	}
}

// StatusLine is a viewport's contribution to the host status bar.
type StatusLine struct {
	Left   string
	Middle string
	Right  string
}

// Status fills st with the file name, language and cursor position.
func (v *Viewport) Status(st *StatusLine) {
	st.Left = v.path
	if st.Left == "" {
		st.Left = "[scratch]"
	}
	st.Middle = v.language
	at := v.CursorIndex()
	st.Right = strconv.Itoa(v.offset+v.active) + ":" + strconv.Itoa(at.Display)
}
