// Package viewport is the editing engine: a fixed-height window onto a file
// and the key handling that moves, edits and scrolls it.
//
// Only the lines inside the window are held as line.Line values. Lines above
// the window live in one newline-joined block in file order and lines below
// it in another block in reverse order, so the line next to the window is
// always at the tail of its block and scrolling touches one line at a time.
// Lines leaving the window go back to a recycle pool.
//
// The cursor is a line.RawIndex. Moving to another line keeps its display
// column and drops the byte offset; the next edit or render resolves it
// against the line it lands on.
//
// A Viewport is not safe for concurrent use.
package viewport
