package generator

import (
	"fmt"
	"runtime"
)

// PanicError wraps a panic that escaped a generator function, together
// with the goroutine stack captured at the point of the panic. It is
// stored as the terminal failure of the sequence and surfaces through
// Iterator.Value like any other failure.
type PanicError struct {
	// Value is the original value passed to panic().
	Value any

	// Stack is the producer goroutine's stack trace at the point of
	// the panic.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("generator function panicked: %v\n\n%s", e.Value, e.Stack)
}

func newPanicError(v any) *PanicError {
	// 8 KiB covers most stack traces; runtime.Stack truncates when the
	// buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{Value: v, Stack: string(buf[:n])}
}
