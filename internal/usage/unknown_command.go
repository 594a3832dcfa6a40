package usage

import "fmt"

// UnknownCommand is returned when a typed path does not designate any node.
func UnknownCommand(command string) *Error {
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: fmt.Sprintf("treesh: '%s' is not a command. Press Tab to list commands.", command),
	}
}
