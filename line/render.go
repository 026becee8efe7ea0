package line

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/portal/sink"
)

// Render writes exactly width display columns of the line at column x,
// padding with spaces and truncating what does not fit. Tabs expand to
// TabWidth spaces and other control characters show as '?'.
func (l *Line) Render(out sink.Sink, x, width int) {
	out.MoveToColumn(x)
	if width <= 0 {
		return
	}
	var sb strings.Builder
	sb.Grow(width)
	used := 0
	for b := 0; b < len(l.content) && used < width; {
		r, n := utf8.DecodeRune(l.content[b:])
		b += n
		switch {
		case r == '\t':
			for k := 0; k < TabWidth && used < width; k++ {
				sb.WriteByte(' ')
				used++
			}
		case r < 0x20 || r == 0x7f:
			sb.WriteByte('?')
			used++
		default:
			sb.WriteRune(r)
			used++
		}
	}
	for ; used < width; used++ {
		sb.WriteByte(' ')
	}
	out.Write(sb.String(), sink.StyleText)
}

// RenderCursor is Render followed by placing the cursor at index at. A
// cursor past the right edge is pinned to the last column.
func (l *Line) RenderCursor(out sink.Sink, x, width int, at Index) {
	l.Render(out, x, width)
	col := at.Display
	if col > width-1 {
		col = width - 1
	}
	if col < 0 {
		col = 0
	}
	out.ShowCursor(x + col)
}
