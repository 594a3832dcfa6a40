package usage

import "fmt"

// OrphanSpec reports a declared command that could not be attached to the tree.
func OrphanSpec(name, parent string, depth uint, reason string) *Error {
	return &Error{
		Kind:    ErrOrphanSpec,
		Message: fmt.Sprintf("treesh: command '%s' (parent '%s', depth %d) skipped: %s", name, parent, depth, reason),
	}
}
