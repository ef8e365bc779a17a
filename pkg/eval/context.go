package eval

import "io"

// Context is the evaluator's sole I/O conduit: a borrowed writable
// text stream. The evaluator never owns or closes it.
//
// Grounded on original_source/runtime.h's Context, narrowed from its
// virtual GetOutputStream accessor to a plain borrowed io.Writer,
// Go's equivalent of a non-owning reference.
type Context struct {
	Out io.Writer
}

// NewContext wraps w as an evaluation Context.
func NewContext(w io.Writer) *Context {
	return &Context{Out: w}
}
