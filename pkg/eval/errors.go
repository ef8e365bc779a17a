package eval

import (
	"fmt"

	"github.com/pkg/errors"
)

// RuntimeError covers undefined variable, missing field, type
// mismatch in an operator, division by zero, wrong-arity method call,
// and comparison of incomparable types. Fatal to the current
// interpretation run; never caught by MethodBody.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string {
	return "runtime error: " + e.Msg
}

func runtimeErrorf(format string, args ...interface{}) error {
	return errors.WithStack(&RuntimeError{Msg: fmt.Sprintf(format, args...)})
}
