package oerror

import "fmt"

// NightfallError is the error type returned and raised by the simulator.
type NightfallError struct {
	Err string
}

// New creates a new NightfallError, formatting the message with the given arguments.
func New(format string, args ...interface{}) *NightfallError {
	return &NightfallError{Err: fmt.Sprintf(format, args...)}
}

func (e *NightfallError) Error() string {
	return e.Err
}
