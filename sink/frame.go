package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles maps sink styles onto lipgloss styles for Frame.String.
type Styles struct {
	Text         lipgloss.Style
	Gutter       lipgloss.Style
	GutterActive lipgloss.Style
	Cursor       lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Text:         lipgloss.NewStyle(),
		Gutter:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		GutterActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Cursor:       lipgloss.NewStyle().Reverse(true),
	}
}

func (s Styles) of(style Style) lipgloss.Style {
	switch style {
	case StyleGutter:
		return s.Gutter
	case StyleGutterActive:
		return s.GutterActive
	default:
		return s.Text
	}
}

type cell struct {
	r     rune
	style Style
}

// Frame is an in-memory Sink. It collects a full screen of cells and renders
// them as a styled string, which is how the Bubble Tea model produces View.
type Frame struct {
	styles Styles

	rows     [][]cell
	row, col int

	cursorX, cursorY int
	hasCursor        bool
}

func NewFrame(styles Styles) *Frame {
	return &Frame{styles: styles}
}

// Reset clears the frame for the next render, keeping its allocations.
func (f *Frame) Reset() {
	for i := range f.rows {
		f.rows[i] = f.rows[i][:0]
	}
	f.rows = f.rows[:0]
	f.row, f.col = 0, 0
	f.hasCursor = false
}

func (f *Frame) MoveToRow(y int) {
	if y < 0 {
		y = 0
	}
	f.row = y
}

func (f *Frame) MoveToColumn(x int) {
	if x < 0 {
		x = 0
	}
	f.col = x
}

func (f *Frame) Write(text string, style Style) {
	for len(f.rows) <= f.row {
		f.rows = append(f.rows, nil)
	}
	row := f.rows[f.row]
	for _, r := range text {
		for len(row) <= f.col {
			row = append(row, cell{r: ' ', style: StyleText})
		}
		row[f.col] = cell{r: r, style: style}
		f.col++
	}
	f.rows[f.row] = row
}

func (f *Frame) ShowCursor(x int) {
	f.cursorX, f.cursorY = x, f.row
	f.hasCursor = true
}

// Cursor reports the last position passed to ShowCursor since Reset.
func (f *Frame) Cursor() (x, y int, ok bool) {
	return f.cursorX, f.cursorY, f.hasCursor
}

// Lines returns the unstyled text of every row.
func (f *Frame) Lines() []string {
	out := make([]string, len(f.rows))
	for i, row := range f.rows {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteRune(c.r)
		}
		out[i] = sb.String()
	}
	return out
}

// String renders the frame with styles applied, the cursor cell drawn in
// the cursor style.
func (f *Frame) String() string {
	var out strings.Builder
	for y, row := range f.rows {
		if y > 0 {
			out.WriteByte('\n')
		}
		if f.hasCursor && y == f.cursorY {
			for len(row) <= f.cursorX {
				row = append(row, cell{r: ' ', style: StyleText})
			}
		}
		var run strings.Builder
		runStyle := StyleText
		flush := func() {
			if run.Len() == 0 {
				return
			}
			out.WriteString(f.styles.of(runStyle).Render(run.String()))
			run.Reset()
		}
		for x, c := range row {
			if f.hasCursor && y == f.cursorY && x == f.cursorX {
				flush()
				out.WriteString(f.styles.Cursor.Render(string(c.r)))
				continue
			}
			if c.style != runStyle {
				flush()
				runStyle = c.style
			}
			run.WriteRune(c.r)
		}
		flush()
	}
	return out.String()
}
