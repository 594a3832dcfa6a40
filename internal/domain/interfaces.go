package domain

import (
	"io"
)

// BindingStore defines operations on the mobile binding cache.
type BindingStore interface {
	// RecordUpdate stores a new pending binding for the given mobile node.
	RecordUpdate(mobileNode string) (Binding, error)

	// AckLatest acknowledges the most recent pending binding.
	// Returns ErrNoPendingBinding when there is none.
	AckLatest() (Binding, error)

	// List returns all bindings, most recent first.
	List() ([]Binding, error)

	// Close closes the store connection.
	Close() error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Block prints multi-line rendered content and ends the line.
	Block(content string)
}

// Styler defines text styling operations.
type Styler interface {
	Enabled() bool
	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
}

// Application holds the collaborators shared by the shell and the actions.
type Application struct {
	Store  BindingStore
	Config ConfigProvider
	Logger Logger
	Output OutputWriter
	Styler Styler
}
