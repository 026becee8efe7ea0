// Package sink defines the output surface the viewport renders into.
//
// A Sink is addressed by row and column and receives plain text runs tagged
// with a Style. Every rune occupies exactly one column; callers expand tabs
// before writing.
package sink

// Style tags a written run with its role so a backend can color it.
type Style uint8

const (
	StyleText Style = iota
	StyleGutter
	StyleGutterActive
)

func (s Style) String() string {
	switch s {
	case StyleText:
		return "text"
	case StyleGutter:
		return "gutter"
	case StyleGutterActive:
		return "gutter-active"
	default:
		return "unknown"
	}
}

type Sink interface {
	// MoveToRow selects the row subsequent writes land on.
	MoveToRow(y int)
	// MoveToColumn sets the column of the next write.
	MoveToColumn(x int)
	// Write places text at the current position and advances the column
	// by its rune count.
	Write(text string, style Style)
	// ShowCursor places the terminal cursor at column x of the current row.
	ShowCursor(x int)
}
