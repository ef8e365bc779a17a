package eval

import (
	"github.com/GriffinCanCode/mython/pkg/ast"
	"github.com/GriffinCanCode/mython/pkg/rt"
)

// add implements Number+Number, String+String, or dispatch to an
// arity-1 __add__ when lhs is a ClassInstance.
func (e *Evaluator) add(lhs, rhs rt.Value, ctx *Context) (rt.Value, error) {
	switch l := lhs.(type) {
	case rt.Number:
		r, ok := rhs.(rt.Number)
		if !ok {
			return nil, runtimeErrorf("cannot add %s and %s", lhs.TypeName(), rhs.TypeName())
		}
		return l + r, nil
	case rt.String:
		r, ok := rhs.(rt.String)
		if !ok {
			return nil, runtimeErrorf("cannot add %s and %s", lhs.TypeName(), rhs.TypeName())
		}
		return l + r, nil
	case *rt.Instance:
		if l.Class.HasMethod("__add__", 1) {
			return e.call(l, "__add__", []rt.Value{rhs}, ctx)
		}
	}
	return nil, runtimeErrorf("cannot add %s and %s", lhs.TypeName(), rhs.TypeName())
}

func (e *Evaluator) sub(lhs, rhs rt.Value) (rt.Value, error) {
	l, ok := lhs.(rt.Number)
	if !ok {
		return nil, runtimeErrorf("cannot subtract: %s is not a number", lhs.TypeName())
	}
	r, ok := rhs.(rt.Number)
	if !ok {
		return nil, runtimeErrorf("cannot subtract: %s is not a number", rhs.TypeName())
	}
	return l - r, nil
}

func (e *Evaluator) mult(lhs, rhs rt.Value) (rt.Value, error) {
	l, ok := lhs.(rt.Number)
	if !ok {
		return nil, runtimeErrorf("cannot multiply: %s is not a number", lhs.TypeName())
	}
	r, ok := rhs.(rt.Number)
	if !ok {
		return nil, runtimeErrorf("cannot multiply: %s is not a number", rhs.TypeName())
	}
	return l * r, nil
}

func (e *Evaluator) div(lhs, rhs rt.Value) (rt.Value, error) {
	l, ok := lhs.(rt.Number)
	if !ok {
		return nil, runtimeErrorf("cannot divide: %s is not a number", lhs.TypeName())
	}
	r, ok := rhs.(rt.Number)
	if !ok {
		return nil, runtimeErrorf("cannot divide: %s is not a number", rhs.TypeName())
	}
	if r == 0 {
		return nil, runtimeErrorf("division by zero")
	}
	return l / r, nil
}

// equal compares two values: same-primitive-variant compares payloads,
// both None is true, both ClassInstance dispatches to __eq__, anything
// else (including a variant mismatch) is a runtime error.
func (e *Evaluator) equal(lhs, rhs rt.Value, ctx *Context) (bool, error) {
	switch l := lhs.(type) {
	case rt.None:
		if _, ok := rhs.(rt.None); ok {
			return true, nil
		}
	case rt.Number:
		if r, ok := rhs.(rt.Number); ok {
			return l == r, nil
		}
	case rt.String:
		if r, ok := rhs.(rt.String); ok {
			return l == r, nil
		}
	case rt.Bool:
		if r, ok := rhs.(rt.Bool); ok {
			return l == r, nil
		}
	case *rt.Instance:
		r, ok := rhs.(*rt.Instance)
		if !ok {
			break
		}
		result, err := e.call(l, "__eq__", []rt.Value{r}, ctx)
		if err != nil {
			return false, err
		}
		b, ok := result.(rt.Bool)
		if !ok {
			return false, runtimeErrorf("__eq__ must return a bool")
		}
		return bool(b), nil
	}
	return false, runtimeErrorf("cannot compare %s and %s", lhs.TypeName(), rhs.TypeName())
}

// less compares two values for strict ordering, dispatching to
// __lt__ when both sides are a ClassInstance.
func (e *Evaluator) less(lhs, rhs rt.Value, ctx *Context) (bool, error) {
	switch l := lhs.(type) {
	case rt.Number:
		r, ok := rhs.(rt.Number)
		if !ok {
			return false, runtimeErrorf("cannot compare %s and %s", lhs.TypeName(), rhs.TypeName())
		}
		return l < r, nil
	case rt.String:
		r, ok := rhs.(rt.String)
		if !ok {
			return false, runtimeErrorf("cannot compare %s and %s", lhs.TypeName(), rhs.TypeName())
		}
		return l < r, nil
	case rt.Bool:
		r, ok := rhs.(rt.Bool)
		if !ok {
			return false, runtimeErrorf("cannot compare %s and %s", lhs.TypeName(), rhs.TypeName())
		}
		return !bool(l) && bool(r), nil
	case *rt.Instance:
		r, ok := rhs.(*rt.Instance)
		if !ok {
			return false, runtimeErrorf("cannot compare %s and %s", lhs.TypeName(), rhs.TypeName())
		}
		result, err := e.call(l, "__lt__", []rt.Value{r}, ctx)
		if err != nil {
			return false, err
		}
		b, ok := result.(rt.Bool)
		if !ok {
			return false, runtimeErrorf("__lt__ must return a bool")
		}
		return bool(b), nil
	}
	return false, runtimeErrorf("cannot compare %s and %s", lhs.TypeName(), rhs.TypeName())
}

func (e *Evaluator) compare(op ast.CompareOp, lhs, rhs rt.Value, ctx *Context) (bool, error) {
	switch op {
	case ast.CmpEq:
		return e.equal(lhs, rhs, ctx)
	case ast.CmpNotEq:
		eq, err := e.equal(lhs, rhs, ctx)
		return !eq, err
	case ast.CmpLess:
		return e.less(lhs, rhs, ctx)
	case ast.CmpLessOrEq:
		lt, err := e.less(lhs, rhs, ctx)
		if err != nil {
			return false, err
		}
		if lt {
			return true, nil
		}
		return e.equal(lhs, rhs, ctx)
	case ast.CmpGreater:
		lt, err := e.less(lhs, rhs, ctx)
		if err != nil {
			return false, err
		}
		if lt {
			return false, nil
		}
		eq, err := e.equal(lhs, rhs, ctx)
		if err != nil {
			return false, err
		}
		return !eq, nil
	case ast.CmpGreaterOrEq:
		lt, err := e.less(lhs, rhs, ctx)
		return !lt, err
	default:
		return false, runtimeErrorf("unknown comparison operator")
	}
}
