package viewport

import "github.com/iw2rmb/portal/line"

func (v *Viewport) grace() int {
	return min(v.opts.ScrollGrace, v.opts.Height/4)
}

// cursorDown moves the cursor one line down, scrolling once it is within
// grace rows of the bottom. It fails on the last line of the file.
func (v *Viewport) cursorDown() bool {
	if v.active < len(v.visible)-1-v.grace() {
		v.active++
	} else if !v.scrollDown() {
		if v.active >= len(v.visible)-1 {
			return false
		}
		v.active++
	}
	v.cursor = v.cursor.Invalidate()
	return true
}

// cursorUp mirrors cursorDown. It fails on the first line of the file.
func (v *Viewport) cursorUp() bool {
	if v.active > v.grace() {
		v.active--
	} else if !v.scrollUp() {
		if v.active == 0 {
			return false
		}
		v.active--
	}
	v.cursor = v.cursor.Invalidate()
	return true
}

func (v *Viewport) jumpTop() {
	for v.cursorUp() {
	}
}

func (v *Viewport) jumpBottom() {
	for v.cursorDown() {
	}
}

// moveLeft steps one character or word left, wrapping to the end of the
// previous line at the line start.
func (v *Viewport) moveLeft(word bool) {
	cur := v.current()
	at := cur.Correct(v.cursor)
	step := cur.StepBackward
	if word {
		step = cur.WordBackward
	}
	if prev, ok := step(at); ok {
		v.cursor = line.Valid(prev)
		return
	}
	if v.cursorUp() {
		v.cursor = line.Valid(v.current().End())
	}
}

// moveRight steps one character or word right, wrapping to the start of the
// next line at the line end.
func (v *Viewport) moveRight(word bool) {
	cur := v.current()
	at := cur.Correct(v.cursor)
	step := cur.StepForward
	if word {
		step = cur.WordForward
	}
	if next, ok := step(at); ok {
		v.cursor = line.Valid(next)
		return
	}
	if v.cursorDown() {
		v.cursor = line.Front()
	}
}
