package editor

import "github.com/iw2rmb/portal/input"

// ChangeEvent describes the buffer after an edit.
type ChangeEvent struct {
	// Line is the file line number of the cursor.
	Line int
	// Column is the display column of the cursor.
	Column int

	// Text is the whole file; hosts diff it if they need to.
	Text string
}

// MessageMsg carries a viewport message to the Bubble Tea program.
type MessageMsg struct {
	input.Message
}
