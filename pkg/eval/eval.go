// Package eval walks a pkg/ast tree against a pkg/rt closure and
// Context, producing output and, for expressions, values.
//
// Design: grounded on the (*Object, *Unwind) pattern of
// pulumi-pulumi/pkg/compiler/eval/eval.go's evalStatement/
// evalExpression family, and on the node-by-node semantics of
// _examples/original_source/mython/statement.cpp's Execute methods.
// Every statement returns a *Signal (non-nil only on an unconsumed
// Return) alongside the usual Go error; every expression returns a
// value alongside the usual Go error. Errors are wrapped with
// github.com/pkg/errors to carry a stack trace.
package eval

import (
	"fmt"
	"strings"

	"github.com/GriffinCanCode/mython/pkg/ast"
	"github.com/GriffinCanCode/mython/pkg/rt"
)

// Evaluator executes an AST against closures and a Context. It is
// stateless between calls; all mutable state lives in the Env and
// Context passed to each call.
type Evaluator struct{}

// New constructs an Evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Execute runs stmt against env and ctx. A non-nil *Signal means a
// Return escaped from inside stmt and has not yet been caught by an
// enclosing MethodBody.
func (e *Evaluator) Execute(stmt ast.Stmt, env rt.Env, ctx *Context) (*Signal, error) {
	switch s := stmt.(type) {
	case *ast.Compound:
		for _, inner := range s.Stmts {
			sig, err := e.Execute(inner, env, ctx)
			if err != nil {
				return nil, err
			}
			if sig != nil {
				return sig, nil
			}
		}
		return nil, nil

	case *ast.ExprStmt:
		_, err := e.Eval(s.Expr, env, ctx)
		return nil, err

	case *ast.Assignment:
		v, err := e.Eval(s.Expr, env, ctx)
		if err != nil {
			return nil, err
		}
		env.Set(s.Name, v)
		return nil, nil

	case *ast.FieldAssignment:
		obj, err := e.Eval(s.Object, env, ctx)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*rt.Instance)
		if !ok {
			return nil, runtimeErrorf("cannot assign field %q on non-instance %s", s.Field, obj.TypeName())
		}
		v, err := e.Eval(s.Expr, env, ctx)
		if err != nil {
			return nil, err
		}
		inst.Fields[s.Field] = v
		return nil, nil

	case *ast.Print:
		parts := make([]string, len(s.Args))
		for i, a := range s.Args {
			v, err := e.Eval(a, env, ctx)
			if err != nil {
				return nil, err
			}
			if v == nil {
				v = rt.NoneValue
			}
			parts[i] = e.renderValue(v, ctx)
		}
		fmt.Fprint(ctx.Out, strings.Join(parts, " "))
		fmt.Fprint(ctx.Out, "\n")
		return nil, nil

	case *ast.IfElse:
		cond, err := e.Eval(s.Cond, env, ctx)
		if err != nil {
			return nil, err
		}
		if cond.IsTrue() {
			return e.Execute(s.Then, env, ctx)
		}
		if s.Else != nil {
			return e.Execute(s.Else, env, ctx)
		}
		return nil, nil

	case *ast.Return:
		var v rt.Value = rt.NoneValue
		if s.Expr != nil {
			rv, err := e.Eval(s.Expr, env, ctx)
			if err != nil {
				return nil, err
			}
			v = rv
		}
		return &Signal{Return: v}, nil

	case *ast.ClassDefinition:
		class, err := e.defineClass(s, env)
		if err != nil {
			return nil, err
		}
		env.Set(s.Name, class)
		return nil, nil

	case *ast.MethodBody:
		// The actual catch happens one level up, in class.go's call:
		// it reads the *Signal this returns and does not propagate it
		// further, so a bare pass-through here is sufficient.
		return e.Execute(s.Body, env, ctx)

	default:
		return nil, runtimeErrorf("unknown statement node %T", stmt)
	}
}

// renderValue stringifies v the way Print does: invoking __str__ on a
// ClassInstance that defines one, falling back to rt.Value.Str
// otherwise.
func (e *Evaluator) renderValue(v rt.Value, ctx *Context) string {
	if inst, ok := v.(*rt.Instance); ok && inst.Class.HasMethod("__str__", 0) {
		if result, err := e.call(inst, "__str__", nil, ctx); err == nil {
			return result.Str()
		}
	}
	return v.Str()
}
