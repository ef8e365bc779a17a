package rt

// Env is a closure: a flat, unordered mapping from identifier to
// value. Grounded on the single-frame lookup pulumi-pulumi/pkg/eval/rt
// calls an Environment, narrowed to Mython's rule that a method call's
// closure never sees its caller's locals — there is no push/pop chain,
// only a fresh map per call.
type Env map[string]Value

// NewEnv constructs an empty closure.
func NewEnv() Env {
	return Env{}
}

// Get looks up name, reporting whether it is bound.
func (e Env) Get(name string) (Value, bool) {
	v, ok := e[name]
	return v, ok
}

// Set binds name to v, overwriting any existing binding.
func (e Env) Set(name string, v Value) {
	e[name] = v
}
