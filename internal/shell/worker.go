package shell

import (
	"fmt"
	"runtime/debug"
)

// PanicError carries a panic recovered on the shell worker.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("shell worker panicked: %v", e.Value)
}

// Worker runs a Shell on its own goroutine.
type Worker struct {
	done chan struct{}
	err  error
}

// Start runs s.Run on a new goroutine. The caller must not use s until
// Wait returns.
func Start(s *Shell) *Worker {
	w := &Worker{done: make(chan struct{})}
	go w.run(s)
	return w
}

func (w *Worker) run(s *Shell) {
	defer close(w.done)
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			s.logger.Error("shell: worker panicked: %v\n%s", r, stack)
			w.err = &PanicError{Value: r, Stack: stack}
		}
	}()

	w.err = s.Run()
}

// Wait blocks until the loop ends and returns its error. A panic on the
// worker, including one raised by an action, is returned as *PanicError.
func (w *Worker) Wait() error {
	<-w.done
	return w.err
}

// Done is closed when the loop has ended.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}
