package value

import (
	"sync"

	"github.com/sunholo/pie/internal/core"
	"github.com/sunholo/pie/internal/symbol"
)

// Closure is a suspended function body paired with the environment it
// needs to run. It has two representations: a first-order closure,
// evaluated by extending its captured environment and evaluating a core
// expression, and a higher-order closure, a Go function over the semantic
// domain -- used when the checker fabricates a motive type on the fly
// (e.g. the step type of ind-Nat) and has no surface syntax to attach.
type Closure struct {
	// First-order fields; Fn is nil when this is first-order.
	Env  *Env
	Var  *symbol.Symbol
	Body core.Expr

	// Fn makes this a higher-order closure when non-nil.
	Fn func(Value) Value
}

// FirstOrder builds a closure over a captured environment and core body.
func FirstOrder(env *Env, v *symbol.Symbol, body core.Expr) *Closure {
	return &Closure{Env: env, Var: v, Body: body}
}

// HigherOrder builds a closure directly from a semantic-domain function.
func HigherOrder(fn func(Value) Value) *Closure {
	return &Closure{Fn: fn}
}

// Apply invokes the closure on one more argument. For a first-order
// closure this extends the captured Env with Var -> arg and evaluates
// Body through EvalHook, which eval.go installs.
func (c *Closure) Apply(arg Value) Value {
	if c.Fn != nil {
		return c.Fn(arg)
	}
	return EvalHook(c.Env.Extend(c.Var, arg), c.Body)
}

// EvalHook evaluates a core expression under an environment to a value.
// It is assigned by eval.go at package init time; the indirection exists
// solely so Closure (a value.go concern) and Eval (an eval.go concern) can
// live in the same package without eval.go needing to be read before
// closure.go in file order.
var EvalHook func(*Env, core.Expr) Value

// Later is a memoized thunk: forcing it evaluates its captured expression
// exactly once, under a lock, and caches the result -- the one mutable
// cell in an otherwise immutable value world (spec §5, §9).
type Later struct {
	once  sync.Once
	env   *Env
	expr  core.Expr
	value Value
}

func NewLater(env *Env, expr core.Expr) *Later {
	return &Later{env: env, expr: expr}
}

// Force resolves the thunk, memoizing on the first call.
func (l *Later) Force() Value {
	l.once.Do(func() {
		l.value = EvalHook(l.env, l.expr)
	})
	return l.value
}

func (l *Later) valueNode()     {}
func (l *Later) String() string { return l.Force().String() }

// Now walks v until it is no longer a thunk. Every value-inspection routine
// in this package begins by calling Now.
func Now(v Value) Value {
	for {
		l, ok := v.(*Later)
		if !ok {
			return v
		}
		v = l.Force()
	}
}
