package eval

import (
	"github.com/GriffinCanCode/mython/pkg/ast"
	"github.com/GriffinCanCode/mython/pkg/rt"
)

// Eval evaluates expr against env and ctx.
func (e *Evaluator) Eval(expr ast.Expr, env rt.Env, ctx *Context) (rt.Value, error) {
	switch x := expr.(type) {
	case *ast.NumberLiteral:
		return rt.Number(int32(x.Value)), nil

	case *ast.StringLiteral:
		return rt.String(x.Value), nil

	case *ast.BoolLiteral:
		return rt.Bool(x.Value), nil

	case *ast.NoneLiteral:
		return rt.NoneValue, nil

	case *ast.VariableValue:
		return e.evalVariableValue(x, env)

	case *ast.Add:
		lhs, err := e.Eval(x.Lhs, env, ctx)
		if err != nil {
			return nil, err
		}
		rhs, err := e.Eval(x.Rhs, env, ctx)
		if err != nil {
			return nil, err
		}
		return e.add(lhs, rhs, ctx)

	case *ast.Sub:
		lhs, rhs, err := e.evalPair(x.Lhs, x.Rhs, env, ctx)
		if err != nil {
			return nil, err
		}
		return e.sub(lhs, rhs)

	case *ast.Mult:
		lhs, rhs, err := e.evalPair(x.Lhs, x.Rhs, env, ctx)
		if err != nil {
			return nil, err
		}
		return e.mult(lhs, rhs)

	case *ast.Div:
		lhs, rhs, err := e.evalPair(x.Lhs, x.Rhs, env, ctx)
		if err != nil {
			return nil, err
		}
		return e.div(lhs, rhs)

	case *ast.Or:
		lhs, err := e.Eval(x.Lhs, env, ctx)
		if err != nil {
			return nil, err
		}
		if lhs.IsTrue() {
			return rt.Bool(true), nil
		}
		rhs, err := e.Eval(x.Rhs, env, ctx)
		if err != nil {
			return nil, err
		}
		return rt.Bool(rhs.IsTrue()), nil

	case *ast.And:
		lhs, err := e.Eval(x.Lhs, env, ctx)
		if err != nil {
			return nil, err
		}
		if !lhs.IsTrue() {
			return rt.Bool(false), nil
		}
		rhs, err := e.Eval(x.Rhs, env, ctx)
		if err != nil {
			return nil, err
		}
		return rt.Bool(rhs.IsTrue()), nil

	case *ast.Not:
		v, err := e.Eval(x.Expr, env, ctx)
		if err != nil {
			return nil, err
		}
		return rt.Bool(!v.IsTrue()), nil

	case *ast.Comparison:
		lhs, rhs, err := e.evalPair(x.Lhs, x.Rhs, env, ctx)
		if err != nil {
			return nil, err
		}
		result, err := e.compare(x.Op, lhs, rhs, ctx)
		if err != nil {
			return nil, err
		}
		return rt.Bool(result), nil

	case *ast.Stringify:
		if x.Expr == nil {
			return rt.String("None"), nil
		}
		v, err := e.Eval(x.Expr, env, ctx)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return rt.String("None"), nil
		}
		return rt.String(e.renderValue(v, ctx)), nil

	case *ast.NewInstance:
		classVal, ok := env.Get(x.ClassName)
		if !ok {
			return nil, runtimeErrorf("undefined class %q", x.ClassName)
		}
		class, ok := classVal.(*rt.Class)
		if !ok {
			return nil, runtimeErrorf("%q is not a class", x.ClassName)
		}
		args, err := e.evalArgs(x.Args, env, ctx)
		if err != nil {
			return nil, err
		}
		return e.instantiate(class, args, ctx)

	case *ast.MethodCall:
		obj, err := e.Eval(x.Object, env, ctx)
		if err != nil {
			return nil, err
		}
		inst, ok := obj.(*rt.Instance)
		if !ok {
			return nil, runtimeErrorf("cannot call method %q on non-instance %s", x.Method, obj.TypeName())
		}
		args, err := e.evalArgs(x.Args, env, ctx)
		if err != nil {
			return nil, err
		}
		if !inst.Class.HasMethod(x.Method, len(args)) {
			// Source behavior: a missing method returns None rather
			// than raising.
			return rt.NoneValue, nil
		}
		return e.call(inst, x.Method, args, ctx)

	default:
		return nil, runtimeErrorf("unknown expression node %T", expr)
	}
}

func (e *Evaluator) evalPair(lhs, rhs ast.Expr, env rt.Env, ctx *Context) (rt.Value, rt.Value, error) {
	l, err := e.Eval(lhs, env, ctx)
	if err != nil {
		return nil, nil, err
	}
	r, err := e.Eval(rhs, env, ctx)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func (e *Evaluator) evalArgs(exprs []ast.Expr, env rt.Env, ctx *Context) ([]rt.Value, error) {
	args := make([]rt.Value, len(exprs))
	for i, a := range exprs {
		v, err := e.Eval(a, env, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// evalVariableValue resolves a dotted-name chain: the first name from
// env, each subsequent name as a field of the previous value.
func (e *Evaluator) evalVariableValue(x *ast.VariableValue, env rt.Env) (rt.Value, error) {
	v, ok := env.Get(x.Names[0])
	if !ok {
		return nil, runtimeErrorf("undefined variable %q", x.Names[0])
	}
	for _, name := range x.Names[1:] {
		inst, ok := v.(*rt.Instance)
		if !ok {
			return nil, runtimeErrorf("cannot read field %q of non-instance %s", name, v.TypeName())
		}
		fv, ok := inst.Fields[name]
		if !ok {
			return nil, runtimeErrorf("%s has no field %q", inst.Class.Name, name)
		}
		v = fv
	}
	return v, nil
}
