package eval

import "github.com/GriffinCanCode/mython/pkg/rt"

// Signal is the non-local control-flow value a Return statement
// raises. It propagates up through Execute's return value (not a Go
// panic) until it is caught at exactly a MethodBody boundary.
//
// Grounded on the (*Object, *Unwind) return-value pattern used
// throughout pulumi-pulumi/pkg/compiler/eval/eval.go's evalStatement
// family — generalized here to Mython's single kind of non-local
// exit, Return, which must stay distinct from an error.
type Signal struct {
	Return rt.Value
}
