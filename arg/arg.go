// Package arg provides fail-fast argument validation for generator
// construction. A failed check panics with an *InvalidArgumentError
// before any sampler is built, so no partially constructed generator
// can escape to the caller.
package arg

import "fmt"

// InvalidArgumentError reports a caller-supplied argument that
// violates a construction precondition.
type InvalidArgumentError struct {
	Message string
}

// Error returns the formatted validation message.
func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// Check panics with an *InvalidArgumentError built from format and
// args when cond is false. Validation failures are caller bugs, not
// transient conditions; there is nothing to recover to.
func Check(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(&InvalidArgumentError{Message: fmt.Sprintf(format, args...)})
}

// AsInvalidArgument reports whether a recovered panic value is an
// InvalidArgumentError. Intended for tests that assert rejection.
func AsInvalidArgument(recovered any) (*InvalidArgumentError, bool) {
	err, ok := recovered.(*InvalidArgumentError)
	return err, ok
}
