package line

import (
	"fmt"
	"unicode"
)

// TabWidth is the number of display columns a tab occupies.
const TabWidth = 4

// Index is a resolved position in a Line. Byte is always on a rune boundary
// and Display is the column the rune at Byte starts in.
type Index struct {
	Display int
	Byte    int
}

// RawIndex is a cursor position that may be stale. A valid one carries a
// resolved Index; an invalid one only carries the display column it targets
// and is resolved with Line.Correct.
type RawIndex struct {
	index Index
	valid bool
}

func Valid(i Index) RawIndex { return RawIndex{index: i, valid: true} }

// Invalid returns a raw index that targets display column d.
func Invalid(d int) RawIndex {
	if d < 0 {
		d = 0
	}
	return RawIndex{index: Index{Display: d}}
}

// Front is the start of any line.
func Front() RawIndex { return Valid(Index{}) }

func (r RawIndex) IsValid() bool { return r.valid }

// Resolved returns the carried Index when r is valid.
func (r RawIndex) Resolved() (Index, bool) { return r.index, r.valid }

// Display is the target display column, valid or not.
func (r RawIndex) Display() int { return r.index.Display }

// AtFront reports whether r points at display column 0.
func (r RawIndex) AtFront() bool { return r.index.Display == 0 }

// Invalidate drops the byte offset and keeps the display column, which is
// what a cursor must do when it moves to another line.
func (r RawIndex) Invalidate() RawIndex { return Invalid(r.index.Display) }

func (r RawIndex) String() string {
	if r.valid {
		return fmt.Sprintf("valid(%d,%d)", r.index.Display, r.index.Byte)
	}
	return fmt.Sprintf("invalid(%d)", r.index.Display)
}

func width(r rune) int {
	if r == '\t' {
		return TabWidth
	}
	return 1
}

func isWord(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
