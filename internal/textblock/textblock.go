// Package textblock stores off-screen lines as one contiguous byte buffer.
//
// A Stack keeps every line as a '\n' separator followed by the line bytes,
// so the most recently pushed line is always the tail of the buffer and can
// be popped without touching the rest. The viewport keeps the lines above the
// window in file order and the lines below it in reverse file order, which
// puts the line adjacent to the window at the tail of both.
package textblock

import (
	"bytes"
	"strings"

	"github.com/iw2rmb/portal/internal/invariant"
)

const sep = '\n'

type Stack struct {
	buf   []byte
	count int
}

// Push appends b as the new tail line. b must not contain '\n'.
func (s *Stack) Push(b []byte) {
	invariant.Check(bytes.IndexByte(b, sep) < 0, "textblock: pushed line contains a newline")
	s.buf = append(s.buf, sep)
	s.buf = append(s.buf, b...)
	s.count++
}

func (s *Stack) PushString(str string) {
	invariant.Check(strings.IndexByte(str, sep) < 0, "textblock: pushed line contains a newline")
	s.buf = append(s.buf, sep)
	s.buf = append(s.buf, str...)
	s.count++
}

// Pop removes the tail line and returns its bytes. The returned slice aliases
// the stack and is only valid until the next Push.
func (s *Stack) Pop() ([]byte, bool) {
	if s.count == 0 {
		return nil, false
	}
	i := bytes.LastIndexByte(s.buf, sep)
	invariant.Check(i >= 0, "textblock: %d lines counted but no separator found", s.count)
	tail := s.buf[i+1:]
	s.buf = s.buf[:i]
	s.count--
	return tail, true
}

// Peek returns the tail line without removing it.
func (s *Stack) Peek() ([]byte, bool) {
	if s.count == 0 {
		return nil, false
	}
	return s.buf[bytes.LastIndexByte(s.buf, sep)+1:], true
}

func (s *Stack) Empty() bool { return s.count == 0 }

func (s *Stack) Len() int { return s.count }

// Size is the number of buffered bytes, separators included.
func (s *Stack) Size() int { return len(s.buf) }

func (s *Stack) Reset() {
	s.buf = s.buf[:0]
	s.count = 0
}

// Lines returns the stored lines in push order, oldest first.
func (s *Stack) Lines() []string {
	out := make([]string, 0, s.count)
	if s.count == 0 {
		return out
	}
	for _, part := range bytes.Split(s.buf[1:], []byte{sep}) {
		out = append(out, string(part))
	}
	return out
}

// Reversed returns the stored lines newest first.
func (s *Stack) Reversed() []string {
	out := s.Lines()
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
