package eval

import (
	"github.com/GriffinCanCode/mython/pkg/ast"
	"github.com/GriffinCanCode/mython/pkg/rt"
)

// defineClass builds an *rt.Class from a ClassDefinition node,
// resolving its parent (if any) by name in env. It does not bind the
// class into env; ExecuteClassDefinition does that.
func (e *Evaluator) defineClass(def *ast.ClassDefinition, env rt.Env) (*rt.Class, error) {
	var parent *rt.Class
	if def.Parent != "" {
		v, ok := env.Get(def.Parent)
		if !ok {
			return nil, runtimeErrorf("undefined parent class %q", def.Parent)
		}
		p, ok := v.(*rt.Class)
		if !ok {
			return nil, runtimeErrorf("%q is not a class", def.Parent)
		}
		parent = p
	}
	methods := make([]*rt.Method, len(def.Methods))
	for i, m := range def.Methods {
		// A leading `self` in the def is bound by call, not passed as an
		// argument, so it is not counted as a formal parameter.
		params := m.Params
		if len(params) > 0 && params[0] == "self" {
			params = params[1:]
		}
		methods[i] = &rt.Method{Name: m.Name, Params: params, Body: m.Body}
	}
	return rt.NewClass(def.Name, parent, methods), nil
}

// instantiate creates a fresh Instance of class and, if class (or an
// ancestor) defines __init__ at matching arity, calls it with args.
func (e *Evaluator) instantiate(class *rt.Class, args []rt.Value, ctx *Context) (*rt.Instance, error) {
	inst := rt.NewInstance(class)
	if class.HasMethod("__init__", len(args)) {
		if _, err := e.call(inst, "__init__", args, ctx); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// call resolves name on inst's class, binds a fresh closure of self
// plus the positional parameters, and executes the method body,
// unwrapping its Return signal (or yielding None if it falls off the
// end).
func (e *Evaluator) call(inst *rt.Instance, name string, args []rt.Value, ctx *Context) (rt.Value, error) {
	m, ok := inst.Class.GetMethod(name)
	if !ok || len(m.Params) != len(args) {
		return nil, runtimeErrorf("no method %q with %d argument(s) on %s", name, len(args), inst.Class.Name)
	}
	frame := rt.NewEnv()
	frame.Set("self", inst)
	for i, p := range m.Params {
		frame.Set(p, args[i])
	}
	body, ok := m.Body.(ast.Stmt)
	if !ok {
		return nil, runtimeErrorf("method %q has no body", name)
	}
	sig, err := e.Execute(body, frame, ctx)
	if err != nil {
		return nil, err
	}
	if sig != nil && sig.Return != nil {
		return sig.Return, nil
	}
	return rt.NoneValue, nil
}
