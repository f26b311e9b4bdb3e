//go:build debug

package ops

// AssertionsEnabled reports whether Assert panics on failure.
const AssertionsEnabled = true

// Assert panics with msg when cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		panic("assertion failed: " + msg)
	}
}
