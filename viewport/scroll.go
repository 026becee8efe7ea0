package viewport

import "github.com/iw2rmb/portal/internal/invariant"

// scrollDown shifts the window one line toward the end of the file. The
// active row keeps its position on screen.
func (v *Viewport) scrollDown() bool {
	next, ok := v.takeFromBelow()
	if !ok {
		return false
	}
	invariant.Check(len(v.visible) > 0, "viewport: scrolling an empty window")
	v.visible = append(v.visible, next)
	v.pushAbove(v.removeRow(0))
	v.offset++
	v.cursor = v.cursor.Invalidate()
	v.growGutter()
	return true
}

// scrollUp shifts the window one line toward the start of the file.
func (v *Viewport) scrollUp() bool {
	prev, ok := v.takeFromAbove()
	if !ok {
		return false
	}
	v.insertRow(0, prev)
	v.offset--
	v.fixLines()
	v.cursor = v.cursor.Invalidate()
	return true
}

// scrollBy scrolls up to |n| lines, down for positive n.
func (v *Viewport) scrollBy(n int) {
	for ; n > 0 && v.scrollDown(); n-- {
	}
	for ; n < 0 && v.scrollUp(); n++ {
	}
}

// fixLines restores the window height after rows were inserted or removed,
// trading lines with the block below.
func (v *Viewport) fixLines() {
	for len(v.visible) > v.opts.Height {
		v.pushBelow(v.removeRow(len(v.visible) - 1))
	}
	for len(v.visible) < v.opts.Height {
		l, ok := v.takeFromBelow()
		if !ok {
			break
		}
		v.visible = append(v.visible, l)
	}
	v.growGutter()
}

// Resize changes the window height, keeping the active line visible.
// Shrinking drops rows from the bottom unless the cursor is on the last row;
// growing pulls lines from below first and from above once the file end is
// reached.
func (v *Viewport) Resize(height int) {
	if height < 1 {
		height = 1
	}
	v.opts.Height = height
	for len(v.visible) > height {
		if v.active < len(v.visible)-1 {
			v.pushBelow(v.removeRow(len(v.visible) - 1))
			continue
		}
		v.pushAbove(v.removeRow(0))
		v.active--
		v.offset++
	}
	v.fixLines()
	for len(v.visible) < height {
		l, ok := v.takeFromAbove()
		if !ok {
			break
		}
		v.insertRow(0, l)
		v.active++
		v.offset--
	}
	v.growGutter()
}
