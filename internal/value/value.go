// Package value implements Pie's semantic domain and its normalization-by-
// evaluation engine: canonical values, neutral (stuck) forms, closures,
// memoized thunks, Eval, and the read-back family that turns values back
// into normal-form core syntax.
package value

import (
	"fmt"

	"github.com/sunholo/pie/internal/symbol"
)

// Value is the semantic domain: canonical constructors, neutral (stuck)
// forms, and suspended thunks all satisfy it. Every inspection routine
// should call Now first to resolve thunks.
type Value interface {
	fmt.Stringer
	valueNode()
}

// ---- Universe and atomic types ----

type Universe struct{}

func (Universe) valueNode()      {}
func (Universe) String() string  { return "U" }

type VNat struct{}

func (VNat) valueNode()     {}
func (VNat) String() string { return "Nat" }

type VZero struct{}

func (VZero) valueNode()     {}
func (VZero) String() string { return "zero" }

type VAdd1 struct{ N Value }

func (a *VAdd1) valueNode()     {}
func (a *VAdd1) String() string { return fmt.Sprintf("(add1 %s)", a.N) }

type VAtom struct{}

func (VAtom) valueNode()     {}
func (VAtom) String() string { return "Atom" }

type VQuote struct{ Sym *symbol.Symbol }

func (q *VQuote) valueNode()     {}
func (q *VQuote) String() string { return "'" + q.Sym.Name() }

type VTrivial struct{}

func (VTrivial) valueNode()     {}
func (VTrivial) String() string { return "Trivial" }

type VSole struct{}

func (VSole) valueNode()     {}
func (VSole) String() string { return "sole" }

type VAbsurd struct{}

func (VAbsurd) valueNode()     {}
func (VAbsurd) String() string { return "Absurd" }

// ---- Functions and pairs ----

type VPi struct {
	ArgName *symbol.Symbol
	ArgType Value
	Body    *Closure
}

func (p *VPi) valueNode()     {}
func (p *VPi) String() string { return fmt.Sprintf("(Π (%s %s) ...)", p.ArgName.Name(), p.ArgType) }

type VLambda struct {
	ArgName *symbol.Symbol
	Body    *Closure
}

func (l *VLambda) valueNode()     {}
func (l *VLambda) String() string { return fmt.Sprintf("(λ (%s) ...)", l.ArgName.Name()) }

type VSigma struct {
	ArgName *symbol.Symbol
	ArgType Value
	Body    *Closure
}

func (s *VSigma) valueNode()     {}
func (s *VSigma) String() string { return fmt.Sprintf("(Σ (%s %s) ...)", s.ArgName.Name(), s.ArgType) }

type VCons struct {
	Fst Value
	Snd Value
}

func (c *VCons) valueNode()     {}
func (c *VCons) String() string { return fmt.Sprintf("(cons %s %s)", c.Fst, c.Snd) }

// ---- Lists ----

type VListT struct{ Elem Value }

func (l *VListT) valueNode()     {}
func (l *VListT) String() string { return fmt.Sprintf("(List %s)", l.Elem) }

type VNil struct{}

func (VNil) valueNode()     {}
func (VNil) String() string { return "nil" }

type VListCons struct {
	Head Value
	Tail Value
}

func (c *VListCons) valueNode()     {}
func (c *VListCons) String() string { return fmt.Sprintf("(:: %s %s)", c.Head, c.Tail) }

// ---- Vectors ----

type VVecT struct {
	Elem Value
	Len  Value
}

func (v *VVecT) valueNode()     {}
func (v *VVecT) String() string { return fmt.Sprintf("(Vec %s %s)", v.Elem, v.Len) }

type VVecNil struct{}

func (VVecNil) valueNode()     {}
func (VVecNil) String() string { return "vecnil" }

type VVecCons struct {
	Head Value
	Tail Value
}

func (c *VVecCons) valueNode()     {}
func (c *VVecCons) String() string { return fmt.Sprintf("(vec:: %s %s)", c.Head, c.Tail) }

// ---- Sums ----

type VEitherT struct {
	L Value
	R Value
}

func (e *VEitherT) valueNode()     {}
func (e *VEitherT) String() string { return fmt.Sprintf("(Either %s %s)", e.L, e.R) }

type VLeft struct{ Val Value }

func (l *VLeft) valueNode()     {}
func (l *VLeft) String() string { return fmt.Sprintf("(left %s)", l.Val) }

type VRight struct{ Val Value }

func (r *VRight) valueNode()     {}
func (r *VRight) String() string { return fmt.Sprintf("(right %s)", r.Val) }

// ---- Equality ----

type VEqual struct {
	Type Value
	From Value
	To   Value
}

func (e *VEqual) valueNode()     {}
func (e *VEqual) String() string { return fmt.Sprintf("(= %s %s %s)", e.Type, e.From, e.To) }

type VSame struct{ Val Value }

func (s *VSame) valueNode()     {}
func (s *VSame) String() string { return fmt.Sprintf("(same %s)", s.Val) }

// Typed pairs a value with its type, used wherever a neutral stores an
// operand that read-back needs to reify at a recorded type (spec §4.2,
// "every non-target argument boxed as The(type_value, value)").
type Typed struct {
	Type Value
	Val  Value
}
