// Package invariant reports broken internal assumptions.
//
// A violation is a programming error, not an input error, so it panics
// instead of returning; callers never recover from it in normal operation.
package invariant

import "fmt"

// Violation is the panic value raised by Check and Failf.
type Violation struct {
	Msg string
}

func (v Violation) Error() string { return "invariant violated: " + v.Msg }

// Check panics with a Violation when cond is false.
func Check(cond bool, format string, args ...any) {
	if !cond {
		Failf(format, args...)
	}
}

func Failf(format string, args ...any) {
	panic(Violation{Msg: fmt.Sprintf(format, args...)})
}
