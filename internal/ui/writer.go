package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/footprint-tools/treesh/internal/domain"
	"github.com/footprint-tools/treesh/internal/terminal"
)

// Writer implements domain.OutputWriter.
type Writer struct {
	out io.Writer
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithRawTerminal translates "\n" into "\r\n", which a terminal in raw mode
// needs to return the cursor to column zero.
func WithRawTerminal() WriterOption {
	return func(w *Writer) {
		w.out = terminal.NewCRLFWriter(w.out)
	}
}

// NewWriter creates a Writer on stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a Writer on out.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{out: out}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Block prints multi-line rendered content, making sure it ends the line.
func (w *Writer) Block(content string) {
	if content == "" {
		return
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	_, _ = io.WriteString(w.out, content)
}

var _ domain.OutputWriter = (*Writer)(nil)
