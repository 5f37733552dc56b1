package value

import "github.com/sunholo/pie/internal/symbol"

// Env is an evaluation environment: a persistent mapping from symbol to
// value. New bindings never mutate an existing Env -- Extend returns a
// fresh child, so a closure that captured an outer Env is never disturbed
// by a later binding in that scope (see spec §5, "contexts and
// environments are logically persistent").
type Env struct {
	name   *symbol.Symbol
	value  Value
	parent *Env
}

// EmptyEnv is the environment with no bindings.
var EmptyEnv *Env

// Extend returns a new environment that binds name to v on top of e.
func (e *Env) Extend(name *symbol.Symbol, v Value) *Env {
	return &Env{name: name, value: v, parent: e}
}

// Lookup finds the value bound to name, walking outward through parents.
func (e *Env) Lookup(name *symbol.Symbol) (Value, bool) {
	for n := e; n != nil; n = n.parent {
		if n.name.Eq(name) {
			return n.value, true
		}
	}
	return nil, false
}
