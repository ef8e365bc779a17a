package eval

import (
	"github.com/GriffinCanCode/mython/pkg/ast"
	"github.com/GriffinCanCode/mython/pkg/rt"
)

// Run executes root — the parser's module-level Compound — against a
// fresh empty closure and ctx. A Return that escapes every MethodBody
// and reaches here is reported as an error rather than silently
// accepted.
func (e *Evaluator) Run(root ast.Stmt, ctx *Context) error {
	env := rt.NewEnv()
	sig, err := e.Execute(root, env, ctx)
	if err != nil {
		return err
	}
	if sig != nil {
		return runtimeErrorf("return statement outside of any method body")
	}
	return nil
}
