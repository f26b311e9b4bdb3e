//go:build !debug

package ops

// AssertionsEnabled reports whether Assert panics on failure.
const AssertionsEnabled = false

// Assert is a no-op in release builds; build with -tags debug to enable it.
func Assert(cond bool, msg string) {}
