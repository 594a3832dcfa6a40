package usage

import "fmt"

func NoActionBound(command string) *Error {
	return &Error{
		Kind:    ErrNoActionBound,
		Message: fmt.Sprintf("treesh: '%s' has no action bound. Press Tab to see its subcommands.", command),
	}
}
