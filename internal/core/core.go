// Package core defines Pie's core expression syntax: the fully elaborated,
// sugar-free tree that the checker (package checker) produces and the
// evaluator (package value) consumes. Every surface sugar (->, Π*, λ*, n-ary
// application) is represented here too, because is-type/synth/check accept
// it as input -- but per the language's invariants it must never survive
// elaboration or reach Eval.
package core

import (
	"fmt"
	"strings"

	"github.com/sunholo/pie/internal/symbol"
)

// Expr is the base interface implemented by every core (and sugared)
// expression node. Each construct implements every method itself; the
// binder forms also include their bound names in OccurringNames.
type Expr interface {
	fmt.Stringer
	exprNode()
	OccurringNames() symbol.Set
}

func occUnion(exprs ...Expr) symbol.Set {
	out := symbol.Set{}
	for _, e := range exprs {
		if e == nil {
			continue
		}
		out = out.Union(e.OccurringNames())
	}
	return out
}

// ---- Universe, atomic types, atoms ----

type U struct{}

func (U) exprNode()              {}
func (U) String() string         { return "U" }
func (U) OccurringNames() symbol.Set { return symbol.Set{} }

type Nat struct{}

func (Nat) exprNode()              {}
func (Nat) String() string         { return "Nat" }
func (Nat) OccurringNames() symbol.Set { return symbol.Set{} }

type Zero struct{}

func (Zero) exprNode()              {}
func (Zero) String() string         { return "zero" }
func (Zero) OccurringNames() symbol.Set { return symbol.Set{} }

type Add1 struct{ N Expr }

func (a *Add1) exprNode()              {}
func (a *Add1) String() string         { return fmt.Sprintf("(add1 %s)", a.N) }
func (a *Add1) OccurringNames() symbol.Set { return occUnion(a.N) }

type AtomT struct{}

func (AtomT) exprNode()              {}
func (AtomT) String() string         { return "Atom" }
func (AtomT) OccurringNames() symbol.Set { return symbol.Set{} }

// Quote is the atom literal 'sym.
type Quote struct{ Sym *symbol.Symbol }

func (q *Quote) exprNode()              {}
func (q *Quote) String() string         { return "'" + q.Sym.Name() }
func (q *Quote) OccurringNames() symbol.Set { return symbol.Set{} }

type TrivialT struct{}

func (TrivialT) exprNode()              {}
func (TrivialT) String() string         { return "Trivial" }
func (TrivialT) OccurringNames() symbol.Set { return symbol.Set{} }

type Sole struct{}

func (Sole) exprNode()              {}
func (Sole) String() string         { return "sole" }
func (Sole) OccurringNames() symbol.Set { return symbol.Set{} }

type AbsurdT struct{}

func (AbsurdT) exprNode()              {}
func (AbsurdT) String() string         { return "Absurd" }
func (AbsurdT) OccurringNames() symbol.Set { return symbol.Set{} }

// TODO is the free placeholder expression (distinct from a Go TODO comment).
type TODO struct{}

func (TODO) exprNode()              {}
func (TODO) String() string         { return "TODO" }
func (TODO) OccurringNames() symbol.Set { return symbol.Set{} }

// ---- Reference, annotation ----

type Var struct{ Name *symbol.Symbol }

func (v *Var) exprNode()              {}
func (v *Var) String() string         { return v.Name.Name() }
func (v *Var) OccurringNames() symbol.Set { return symbol.NewSet(v.Name) }

// The is the annotation (the T e).
type The struct {
	Type Expr
	Expr Expr
}

func (t *The) exprNode()              {}
func (t *The) String() string         { return fmt.Sprintf("(the %s %s)", t.Type, t.Expr) }
func (t *The) OccurringNames() symbol.Set { return occUnion(t.Type, t.Expr) }

// ---- Dependent product ----

type Pi struct {
	Name *symbol.Symbol
	Arg  Expr
	Body Expr
}

func (p *Pi) exprNode() {}
func (p *Pi) String() string {
	return fmt.Sprintf("(Π (%s %s) %s)", p.Name.Name(), p.Arg, p.Body)
}
func (p *Pi) OccurringNames() symbol.Set {
	names := occUnion(p.Arg, p.Body)
	names.Add(p.Name)
	return names
}

type Lambda struct {
	Name *symbol.Symbol
	Body Expr
}

func (l *Lambda) exprNode()      {}
func (l *Lambda) String() string { return fmt.Sprintf("(λ (%s) %s)", l.Name.Name(), l.Body) }
func (l *Lambda) OccurringNames() symbol.Set {
	names := occUnion(l.Body)
	names.Add(l.Name)
	return names
}

type App struct {
	Fun Expr
	Arg Expr
}

func (a *App) exprNode()              {}
func (a *App) String() string         { return fmt.Sprintf("(%s %s)", a.Fun, a.Arg) }
func (a *App) OccurringNames() symbol.Set { return occUnion(a.Fun, a.Arg) }

// PiStar, FunStar and LamStar are n-ary surface sugar. They may appear as
// input to IsType/Synth/Check but must never be evaluated -- Eval panics on
// them (see value.Eval), matching the invariant that sugar never survives
// elaboration.

type Binder struct {
	Name *symbol.Symbol
	Type Expr
}

type PiStar struct {
	Binders []Binder
	Result  Expr
}

func (p *PiStar) exprNode() {}
func (p *PiStar) String() string {
	parts := make([]string, len(p.Binders))
	for i, b := range p.Binders {
		parts[i] = fmt.Sprintf("(%s %s)", b.Name.Name(), b.Type)
	}
	return fmt.Sprintf("(Π* (%s) %s)", strings.Join(parts, " "), p.Result)
}
func (p *PiStar) OccurringNames() symbol.Set {
	names := occUnion(p.Result)
	for _, b := range p.Binders {
		names = names.Union(b.Type.OccurringNames())
		names.Add(b.Name)
	}
	return names
}

// FunStar is the non-dependent, n-ary `->` sugar: (-> A B C Result).
type FunStar struct {
	Args   []Expr
	Result Expr
}

func (f *FunStar) exprNode() {}
func (f *FunStar) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("(-> %s %s)", strings.Join(parts, " "), f.Result)
}
func (f *FunStar) OccurringNames() symbol.Set {
	names := occUnion(f.Result)
	for _, a := range f.Args {
		names = names.Union(a.OccurringNames())
	}
	return names
}

type LamStar struct {
	Names []*symbol.Symbol
	Body  Expr
}

func (l *LamStar) exprNode() {}
func (l *LamStar) String() string {
	parts := make([]string, len(l.Names))
	for i, n := range l.Names {
		parts[i] = n.Name()
	}
	return fmt.Sprintf("(λ* (%s) %s)", strings.Join(parts, " "), l.Body)
}
func (l *LamStar) OccurringNames() symbol.Set {
	names := occUnion(l.Body)
	for _, n := range l.Names {
		names.Add(n)
	}
	return names
}

// AppStar is n-ary application sugar: (f a b c).
type AppStar struct {
	Fun  Expr
	Args []Expr
}

func (a *AppStar) exprNode() {}
func (a *AppStar) String() string {
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		parts[i] = arg.String()
	}
	return fmt.Sprintf("(%s %s)", a.Fun, strings.Join(parts, " "))
}
func (a *AppStar) OccurringNames() symbol.Set {
	names := occUnion(a.Fun)
	for _, arg := range a.Args {
		names = names.Union(arg.OccurringNames())
	}
	return names
}
