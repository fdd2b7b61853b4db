// Package panicerr describes a panic raised by a test case.
package panicerr

import "fmt"

// PanicError carries the value of a panic raised inside a test case along
// with the stack at the point it was recovered.
type PanicError struct {
	TestCase string
	Value    any
	Stack    []byte
}

func New(testCase string, value any, stack []byte) PanicError {
	return PanicError{
		TestCase: testCase,
		Value:    value,
		Stack:    stack,
	}
}

func (pe PanicError) Error() string {
	return fmt.Sprintf("panic occurred in test case '%s': %v", pe.TestCase, pe.Value)
}

// Unwrap returns the panic value when it is an error.
func (pe PanicError) Unwrap() error {
	if err, ok := pe.Value.(error); ok {
		return err
	}
	return nil
}
