package usage

import "fmt"

// InvalidFlag is returned when a command-line flag cannot be parsed.
func InvalidFlag(detail string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("treesh: %s. See 'treesh --help'.", detail),
	}
}
