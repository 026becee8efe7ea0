// Package line holds one line of editable text and the index algebra that
// moves a cursor across it.
//
// Positions pair a display column with a byte offset. A tab is TabWidth
// columns wide and every other rune is one column; there are no tab stops.
package line

import (
	"bytes"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/portal/internal/invariant"
)

// Line is the content of a single line without its terminator. The zero
// value is an empty line.
type Line struct {
	content []byte
}

func New(s string) *Line {
	l := &Line{}
	l.SetString(s)
	return l
}

func (l *Line) String() string { return string(l.content) }

// Bytes aliases the line content until the next mutation.
func (l *Line) Bytes() []byte { return l.content }

func (l *Line) Len() int { return len(l.content) }

func (l *Line) IsEmpty() bool { return len(l.content) == 0 }

// Clear empties the line but keeps its storage for reuse.
func (l *Line) Clear() { l.content = l.content[:0] }

// SetString replaces the content. Invalid UTF-8 sequences become U+FFFD so
// every index stays on a rune boundary.
func (l *Line) SetString(s string) {
	invariant.Check(strings.IndexByte(s, '\n') < 0, "line: content contains a line break")
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	l.content = append(l.content[:0], s...)
}

// SetBytes is SetString for a byte slice; b is copied.
func (l *Line) SetBytes(b []byte) {
	invariant.Check(bytes.IndexByte(b, '\n') < 0, "line: content contains a line break")
	if !utf8.Valid(b) {
		b = bytes.ToValidUTF8(b, []byte(string(utf8.RuneError)))
	}
	l.content = append(l.content[:0], b...)
}

func (l *Line) Clone() *Line {
	return &Line{content: slices.Clone(l.content)}
}

// End is the one-past-last index.
func (l *Line) End() Index {
	end := Index{Byte: len(l.content)}
	for b := 0; b < len(l.content); {
		r, n := utf8.DecodeRune(l.content[b:])
		end.Display += width(r)
		b += n
	}
	return end
}

// Width is the display width of the whole line.
func (l *Line) Width() int { return l.End().Display }

func (l *Line) AtEnd(i Index) bool { return l.clamp(i).Byte >= len(l.content) }

// clamp maps an index past the content to End. An in-range index must be on
// a rune boundary.
func (l *Line) clamp(i Index) Index {
	switch {
	case i.Byte > len(l.content):
		return l.End()
	case i.Byte == len(l.content):
		return i
	}
	invariant.Check(i.Byte >= 0 && utf8.RuneStart(l.content[i.Byte]),
		"line: byte offset %d is not on a rune boundary", i.Byte)
	return i
}

// Correct resolves raw against the current content. A valid index is kept
// as is, clamped to End; an invalid one resolves to the rightmost index
// whose display column does not exceed the target, End included.
func (l *Line) Correct(raw RawIndex) Index {
	if i, ok := raw.Resolved(); ok {
		return l.clamp(i)
	}
	target := raw.Display()
	at := Index{}
	for at.Byte < len(l.content) {
		r, n := utf8.DecodeRune(l.content[at.Byte:])
		next := Index{Display: at.Display + width(r), Byte: at.Byte + n}
		if next.Display > target {
			break
		}
		at = next
	}
	return at
}

// StepForward moves one character right. It fails at End.
func (l *Line) StepForward(i Index) (Index, bool) {
	i = l.clamp(i)
	if i.Byte >= len(l.content) {
		return i, false
	}
	r, n := utf8.DecodeRune(l.content[i.Byte:])
	return Index{Display: i.Display + width(r), Byte: i.Byte + n}, true
}

// StepBackward moves one character left. It fails at the front.
func (l *Line) StepBackward(i Index) (Index, bool) {
	i = l.clamp(i)
	if i.Byte == 0 {
		return i, false
	}
	r, n := utf8.DecodeLastRune(l.content[:i.Byte])
	prev := Index{Display: i.Display - width(r), Byte: i.Byte - n}
	invariant.Check(prev.Display >= 0, "line: display column went negative at byte %d", prev.Byte)
	return prev, true
}

// WordForward skips the run of word or non-word characters starting at i.
// It always moves at least one character and fails only at End.
func (l *Line) WordForward(i Index) (Index, bool) {
	i = l.clamp(i)
	if i.Byte >= len(l.content) {
		return i, false
	}
	first, _ := utf8.DecodeRune(l.content[i.Byte:])
	class := isWord(first)
	for i.Byte < len(l.content) {
		r, n := utf8.DecodeRune(l.content[i.Byte:])
		if isWord(r) != class {
			break
		}
		i = Index{Display: i.Display + width(r), Byte: i.Byte + n}
	}
	return i, true
}

// WordBackward is the mirror of WordForward over the run ending at i.
func (l *Line) WordBackward(i Index) (Index, bool) {
	i = l.clamp(i)
	if i.Byte == 0 {
		return i, false
	}
	last, _ := utf8.DecodeLastRune(l.content[:i.Byte])
	class := isWord(last)
	for i.Byte > 0 {
		r, n := utf8.DecodeLastRune(l.content[:i.Byte])
		if isWord(r) != class {
			break
		}
		i = Index{Display: i.Display - width(r), Byte: i.Byte - n}
	}
	return i, true
}

// Insert puts r at i. Line breaks cannot be inserted; split the line instead.
func (l *Line) Insert(i Index, r rune) {
	invariant.Check(r != '\n' && r != '\r', "line: inserting a line break")
	i = l.clamp(i)
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	l.content = slices.Insert(l.content, i.Byte, buf[:n]...)
}

// Remove deletes the character at i. It is a no-op at End.
func (l *Line) Remove(i Index) {
	i = l.clamp(i)
	if i.Byte >= len(l.content) {
		return
	}
	_, n := utf8.DecodeRune(l.content[i.Byte:])
	l.content = slices.Delete(l.content, i.Byte, i.Byte+n)
}

// RemoveRange deletes the characters between from and to.
func (l *Line) RemoveRange(from, to Index) {
	from, to = l.clamp(from), l.clamp(to)
	if from.Byte > to.Byte {
		from, to = to, from
	}
	l.content = slices.Delete(l.content, from.Byte, to.Byte)
}

// SplitAt truncates the line at i and returns the removed tail.
func (l *Line) SplitAt(i Index) *Line {
	tail := &Line{}
	l.SplitInto(i, tail)
	return tail
}

// SplitInto is SplitAt writing the tail into dst, which is overwritten.
func (l *Line) SplitInto(i Index, dst *Line) {
	i = l.clamp(i)
	dst.content = append(dst.content[:0], l.content[i.Byte:]...)
	l.content = l.content[:i.Byte]
}

// Append adds other to the end of the line. other is left unchanged.
func (l *Line) Append(other *Line) {
	l.content = append(l.content, other.content...)
}

// Prepend adds other to the start of the line. other is left unchanged.
func (l *Line) Prepend(other *Line) {
	l.content = slices.Insert(l.content, 0, other.content...)
}
