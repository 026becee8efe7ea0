package viewport

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/portal/internal/invariant"
	"github.com/iw2rmb/portal/internal/recycle"
	"github.com/iw2rmb/portal/internal/textblock"
	"github.com/iw2rmb/portal/line"
	"github.com/iw2rmb/portal/source"
)

type Viewport struct {
	opts Options

	path            string
	language        string
	crlf            bool
	trailingNewline bool

	visible []*line.Line
	above   textblock.Stack
	below   textblock.Stack
	recycle *recycle.Pool[*line.Line]

	active      int
	cursor      line.RawIndex
	offset      int
	gutterWidth int

	revision int
}

// Open reads path and returns a viewport at the top of it.
func Open(ctx context.Context, path string, opts Options) (*Viewport, error) {
	f, err := source.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	return New(f, opts), nil
}

// FromText builds an unnamed viewport over text. Invalid UTF-8 is replaced
// with U+FFFD.
func FromText(text string, opts Options) *Viewport {
	lines, trailing, crlf := source.Split(text)
	return New(&source.File{Lines: lines, TrailingNewline: trailing, CRLF: crlf}, opts)
}

func New(f *source.File, opts Options) *Viewport {
	opts = opts.normalized()
	v := &Viewport{
		opts:            opts,
		path:            f.Path,
		language:        f.Language,
		crlf:            f.CRLF,
		trailingNewline: f.TrailingNewline,
		recycle: recycle.New(
			func() *line.Line { return &line.Line{} },
			func(l *line.Line) { l.Clear() },
		),
		cursor: line.Front(),
	}

	lines := f.Lines
	if len(lines) == 0 {
		lines = []string{""}
	}
	n := min(len(lines), opts.Height)
	v.visible = make([]*line.Line, 0, opts.Height+1)
	for _, s := range lines[:n] {
		l := v.recycle.Get()
		l.SetString(s)
		v.visible = append(v.visible, l)
	}
	for i := len(lines) - 1; i >= n; i-- {
		v.below.PushString(validUTF8(lines[i]))
	}
	v.gutterWidth = max(opts.MinGutterWidth, digits(len(lines)-1))
	return v
}

// validUTF8 matches what line.SetString stores, so the reservoirs and the
// window agree on content.
func validUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

func (v *Viewport) Path() string { return v.path }

func (v *Viewport) Language() string { return v.language }

// Height is the window height in rows.
func (v *Viewport) Height() int { return v.opts.Height }

// Active is the cursor row inside the window.
func (v *Viewport) Active() int { return v.active }

// Offset is the file line number of the first visible row.
func (v *Viewport) Offset() int { return v.offset }

func (v *Viewport) GutterWidth() int { return v.gutterWidth }

// Revision counts the edits that changed the text. Keys that leave the text
// as it was do not advance it.
func (v *Viewport) Revision() int { return v.revision }

func (v *Viewport) Cursor() line.RawIndex { return v.cursor }

// CursorIndex is the cursor resolved against the active line.
func (v *Viewport) CursorIndex() line.Index {
	return v.current().Correct(v.cursor)
}

// LineCount is the number of lines in the whole file.
func (v *Viewport) LineCount() int {
	return v.above.Len() + len(v.visible) + v.below.Len()
}

// VisibleLines returns the window contents top to bottom.
func (v *Viewport) VisibleLines() []string {
	out := make([]string, len(v.visible))
	for i, l := range v.visible {
		out[i] = l.String()
	}
	return out
}

// AboveLines returns the lines before the window in file order.
func (v *Viewport) AboveLines() []string { return v.above.Lines() }

// BelowLines returns the lines after the window in file order.
func (v *Viewport) BelowLines() []string { return v.below.Reversed() }

// Lines returns every line of the file in order.
func (v *Viewport) Lines() []string {
	out := make([]string, 0, v.LineCount())
	out = append(out, v.AboveLines()...)
	out = append(out, v.VisibleLines()...)
	return append(out, v.BelowLines()...)
}

// Text reassembles the file with its original line endings.
func (v *Viewport) Text() string {
	return source.Join(v.Lines(), v.trailingNewline, v.crlf)
}

// Validate reports the first broken structural invariant, if any.
func (v *Viewport) Validate() error {
	switch {
	case len(v.visible) == 0:
		return fmt.Errorf("viewport: empty window")
	case len(v.visible) > v.opts.Height:
		return fmt.Errorf("viewport: %d visible lines exceed height %d", len(v.visible), v.opts.Height)
	case len(v.visible) < v.opts.Height && !v.below.Empty():
		return fmt.Errorf("viewport: short window (%d of %d) with %d lines below", len(v.visible), v.opts.Height, v.below.Len())
	case v.active < 0 || v.active >= len(v.visible):
		return fmt.Errorf("viewport: active row %d outside %d visible lines", v.active, len(v.visible))
	case v.offset != v.above.Len():
		return fmt.Errorf("viewport: offset %d but %d lines above", v.offset, v.above.Len())
	case v.gutterWidth < digits(v.offset+len(v.visible)-1):
		return fmt.Errorf("viewport: gutter width %d too narrow for line %d", v.gutterWidth, v.offset+len(v.visible)-1)
	}
	return nil
}

func (v *Viewport) current() *line.Line {
	invariant.Check(v.active >= 0 && v.active < len(v.visible),
		"viewport: active row %d outside %d visible lines", v.active, len(v.visible))
	return v.visible[v.active]
}

func (v *Viewport) acquire(b []byte) *line.Line {
	l := v.recycle.Get()
	l.SetBytes(b)
	return l
}

func (v *Viewport) release(l *line.Line) { v.recycle.Put(l) }

func (v *Viewport) insertRow(at int, l *line.Line) {
	v.visible = slices.Insert(v.visible, at, l)
}

func (v *Viewport) removeRow(at int) *line.Line {
	l := v.visible[at]
	v.visible = slices.Delete(v.visible, at, at+1)
	return l
}

func (v *Viewport) takeFromBelow() (*line.Line, bool) {
	b, ok := v.below.Pop()
	if !ok {
		return nil, false
	}
	return v.acquire(b), true
}

func (v *Viewport) takeFromAbove() (*line.Line, bool) {
	b, ok := v.above.Pop()
	if !ok {
		return nil, false
	}
	return v.acquire(b), true
}

func (v *Viewport) pushBelow(l *line.Line) {
	v.below.Push(l.Bytes())
	v.release(l)
}

func (v *Viewport) pushAbove(l *line.Line) {
	v.above.Push(l.Bytes())
	v.release(l)
}

func (v *Viewport) growGutter() {
	v.gutterWidth = max(v.gutterWidth, digits(v.offset+len(v.visible)-1))
}
