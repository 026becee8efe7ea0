package viewport

import (
	"unicode"

	"github.com/iw2rmb/portal/internal/invariant"
	"github.com/iw2rmb/portal/line"
)

func (v *Viewport) typeChar(r rune) {
	if r != '\t' && unicode.IsControl(r) {
		return
	}
	cur := v.current()
	at := cur.Correct(v.cursor)
	cur.Insert(at, r)
	v.revision++
	next, _ := cur.StepForward(at)
	v.cursor = line.Valid(next)
}

// splitLine breaks the active line at the cursor and moves to the start of
// the new tail line.
func (v *Viewport) splitLine() {
	cur := v.current()
	at := cur.Correct(v.cursor)
	tail := v.recycle.Get()
	cur.SplitInto(at, tail)
	v.revision++
	v.insertRow(v.active+1, tail)
	v.fixLines()
	v.cursor = line.Front()
	v.cursorDown()
}

// openBelow inserts an empty line after the active one and moves onto it.
func (v *Viewport) openBelow() {
	v.revision++
	v.insertRow(v.active+1, v.recycle.Get())
	v.fixLines()
	v.cursor = line.Front()
	v.cursorDown()
}

// openAbove inserts an empty line at the active row. The cursor stays on the
// same screen row, which now holds the new line.
func (v *Viewport) openAbove() {
	v.revision++
	v.insertRow(v.active, v.recycle.Get())
	v.fixLines()
	v.cursor = v.cursor.Invalidate()
}

func (v *Viewport) backspace(word bool) {
	cur := v.current()
	at := cur.Correct(v.cursor)
	if at.Byte == 0 {
		v.joinPrevious()
		return
	}
	step := cur.StepBackward
	if word {
		step = cur.WordBackward
	}
	from, _ := step(at)
	cur.RemoveRange(from, at)
	v.revision++
	v.cursor = line.Valid(from)
}

// joinPrevious appends the active line to the one before it.
func (v *Viewport) joinPrevious() {
	if v.active == 0 && v.above.Empty() {
		return
	}
	cur := v.removeRow(v.active)
	v.fixLines()
	moved := v.cursorUp()
	invariant.Check(moved, "viewport: no line above row %d to join", v.active)
	prev := v.current()
	end := prev.End()
	prev.Append(cur)
	v.release(cur)
	v.revision++
	v.cursor = line.Valid(end)
}

func (v *Viewport) deleteForward(word bool) {
	cur := v.current()
	at := cur.Correct(v.cursor)
	if cur.AtEnd(at) {
		v.joinNext()
		v.cursor = line.Valid(at)
		return
	}
	if word {
		to, _ := cur.WordForward(at)
		cur.RemoveRange(at, to)
	} else {
		cur.Remove(at)
	}
	v.revision++
	v.cursor = line.Valid(at)
}

// joinNext appends the line after the active one onto it.
func (v *Viewport) joinNext() {
	if v.active == len(v.visible)-1 {
		next, ok := v.takeFromBelow()
		if !ok {
			return
		}
		v.visible = append(v.visible, next)
	}
	next := v.removeRow(v.active + 1)
	v.current().Append(next)
	v.release(next)
	v.revision++
	v.fixLines()
}
