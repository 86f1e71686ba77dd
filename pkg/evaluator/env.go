package evaluator

// Env is a lexically scoped binding table. Lookups walk the outer chain;
// writes always land in the innermost frame, so an inner binding shadows
// an outer one instead of mutating it. Environments are kept alive by
// whichever Fn values captured them.
type Env struct {
	bindings map[string]Object
	outer    *Env
}

// NewEnv returns an empty top-level environment.
func NewEnv() *Env {
	return &Env{bindings: make(map[string]Object)}
}

// Child returns a new environment whose lookups fall through to e.
func (e *Env) Child() *Env {
	return &Env{bindings: make(map[string]Object), outer: e}
}

// Get resolves name against this environment and its ancestors.
func (e *Env) Get(name string) (Object, bool) {
	obj, ok := e.bindings[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name in this environment, shadowing any outer binding.
func (e *Env) Set(name string, val Object) Object {
	e.bindings[name] = val
	return val
}
