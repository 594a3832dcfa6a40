package usage

import "fmt"

// InputSourceFailure wraps an error raised while waiting for terminal input.
func InputSourceFailure(err error) *Error {
	return &Error{
		Kind:    ErrInputSource,
		Message: fmt.Sprintf("treesh: input failed: %v", err),
		Err:     err,
	}
}

// InvalidConfig wraps an error raised while loading ~/.treeshrc.
func InvalidConfig(err error) *Error {
	return &Error{
		Kind:    ErrInvalidConfig,
		Message: fmt.Sprintf("treesh: invalid configuration: %v", err),
		Err:     err,
	}
}

// CommandFile wraps an error raised while loading an extra command table.
func CommandFile(path string, err error) *Error {
	return &Error{
		Kind:    ErrCommandFile,
		Message: fmt.Sprintf("treesh: cannot load commands from %s: %v", path, err),
		Err:     err,
	}
}
