package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrUnknownCommand
	ErrNoActionBound
	ErrOrphanSpec
	ErrInputSource
	ErrInvalidConfig
	ErrCommandFile
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Input source failure
//	  - Invalid config
//	  - Unreadable command file
//
//	Exit 2: User input errors
//	  - Invalid flag
//
// Unknown commands, missing actions and orphaned specs never end the
// process; they carry exit code 0 and are only reported.
var exitCodes = map[ErrorKind]int{
	ErrUnknown:        1,
	ErrInvalidFlag:    2,
	ErrUnknownCommand: 0,
	ErrNoActionBound:  0,
	ErrOrphanSpec:     0,
	ErrInputSource:    1,
	ErrInvalidConfig:  1,
	ErrCommandFile:    1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // overrides the code derived from Kind when non-zero
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// IsKind reports whether err is, or wraps, a usage error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ue *Error
	if !errors.As(err, &ue) {
		return false
	}
	return ue.Kind == kind
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
