package core

import "github.com/sunholo/pie/internal/symbol"

// bindings is a cons-list mapping a bound symbol to the de Bruijn-style
// level it was introduced at, mirroring the reference implementation's
// Bindings list (src/alpha.rs in the Pie source this checker is modeled
// on) rather than a map, since lookups are by identity along a short list.
type bindings struct {
	name *symbol.Symbol
	lvl  int
	next *bindings
}

func (b *bindings) find(x *symbol.Symbol) (int, bool) {
	for n := b; n != nil; n = n.next {
		if n.name.Eq(x) {
			return n.lvl, true
		}
	}
	return 0, false
}

func (b *bindings) bind(x *symbol.Symbol, lvl int) *bindings {
	return &bindings{name: x, lvl: lvl, next: b}
}

// AlphaEquiv reports whether e1 and e2 are equal up to consistent renaming
// of bound variables.
func AlphaEquiv(e1, e2 Expr) bool {
	return alphaEquivAux(0, nil, nil, e1, e2)
}

func alphaEquivAux(lvl int, b1, b2 *bindings, e1, e2 Expr) bool {
	switch x := e1.(type) {
	case *Var:
		y, ok := e2.(*Var)
		if !ok {
			return false
		}
		xlvl, xbound := b1.find(x.Name)
		ylvl, ybound := b2.find(y.Name)
		switch {
		case xbound && ybound:
			return xlvl == ylvl
		case !xbound && !ybound:
			return x.Name.Eq(y.Name)
		default:
			return false
		}
	case *Pi:
		y, ok := e2.(*Pi)
		if !ok {
			return false
		}
		return alphaEquivAux(lvl, b1, b2, x.Arg, y.Arg) &&
			alphaEquivAux(lvl+1, b1.bind(x.Name, lvl), b2.bind(y.Name, lvl), x.Body, y.Body)
	case *Sigma:
		y, ok := e2.(*Sigma)
		if !ok {
			return false
		}
		return alphaEquivAux(lvl, b1, b2, x.Fst, y.Fst) &&
			alphaEquivAux(lvl+1, b1.bind(x.Name, lvl), b2.bind(y.Name, lvl), x.Snd, y.Snd)
	case *Lambda:
		y, ok := e2.(*Lambda)
		if !ok {
			return false
		}
		return alphaEquivAux(lvl+1, b1.bind(x.Name, lvl), b2.bind(y.Name, lvl), x.Body, y.Body)
	default:
		return structuralEquivAux(lvl, b1, b2, e1, e2)
	}
}

// structuralEquivAux handles every non-binding construct: same Go type,
// and every child expression field alpha-equivalent pointwise. This is the
// "default" alpha-equiv behavior described in spec §4.1.
func structuralEquivAux(lvl int, b1, b2 *bindings, e1, e2 Expr) bool {
	children1, tag1, ok1 := equivChildren(e1)
	children2, tag2, ok2 := equivChildren(e2)
	if !ok1 || !ok2 || tag1 != tag2 || len(children1) != len(children2) {
		return leafEquiv(e1, e2)
	}
	for i := range children1 {
		if !alphaEquivAux(lvl, b1, b2, children1[i], children2[i]) {
			return false
		}
	}
	return true
}

// equivChildren extracts the ordered child expressions of a construct along
// with a type tag, so structuralEquivAux can compare heterogeneous nodes
// generically instead of one case per construct.
func equivChildren(e Expr) ([]Expr, string, bool) {
	switch x := e.(type) {
	case *Add1:
		return []Expr{x.N}, "Add1", true
	case *The:
		return []Expr{x.Type, x.Expr}, "The", true
	case *App:
		return []Expr{x.Fun, x.Arg}, "App", true
	case *PairT:
		return []Expr{x.Fst, x.Snd}, "PairT", true
	case *Cons:
		return []Expr{x.Fst, x.Snd}, "Cons", true
	case *Car:
		return []Expr{x.Pair}, "Car", true
	case *Cdr:
		return []Expr{x.Pair}, "Cdr", true
	case *ListT:
		return []Expr{x.Elem}, "ListT", true
	case *ListCons:
		return []Expr{x.Head, x.Tail}, "ListCons", true
	case *ListLength:
		return []Expr{x.List}, "ListLength", true
	case *IndList:
		return []Expr{x.Target, x.Motive, x.Base, x.Step}, "IndList", true
	case *RecListTyped:
		return []Expr{x.Target, x.BaseType, x.Base, x.Step}, "RecListTyped", true
	case *VecT:
		return []Expr{x.Elem, x.Len}, "VecT", true
	case *VecCons:
		return []Expr{x.Head, x.Tail}, "VecCons", true
	case *VecHead:
		return []Expr{x.Vec}, "VecHead", true
	case *VecTail:
		return []Expr{x.Vec}, "VecTail", true
	case *IndVec:
		return []Expr{x.Len, x.Target, x.Motive, x.Base, x.Step}, "IndVec", true
	case *EitherT:
		return []Expr{x.L, x.R}, "EitherT", true
	case *Left:
		return []Expr{x.Val}, "Left", true
	case *Right:
		return []Expr{x.Val}, "Right", true
	case *IndEither:
		return []Expr{x.Target, x.Motive, x.BaseL, x.BaseR}, "IndEither", true
	case *EqualT:
		return []Expr{x.Type, x.From, x.To}, "EqualT", true
	case *Same:
		return []Expr{x.Val}, "Same", true
	case *Cong:
		return []Expr{x.Eq, x.Fun}, "Cong", true
	case *Replace:
		return []Expr{x.Target, x.Motive, x.Base}, "Replace", true
	case *Symm:
		return []Expr{x.Eq}, "Symm", true
	case *Trans:
		return []Expr{x.Eq1, x.Eq2}, "Trans", true
	case *IndAbsurd:
		return []Expr{x.Target, x.Motive}, "IndAbsurd", true
	case *IndNat:
		return []Expr{x.Target, x.Motive, x.Base, x.Step}, "IndNat", true
	case *WhichNatTyped:
		return []Expr{x.Target, x.BaseType, x.Base, x.Step}, "WhichNatTyped", true
	case *RecNatTyped:
		return []Expr{x.Target, x.BaseType, x.Base, x.Step}, "RecNatTyped", true
	case *IterNatTyped:
		return []Expr{x.Target, x.BaseType, x.Base, x.Step}, "IterNatTyped", true
	default:
		return nil, "", false
	}
}

// leafEquiv handles constructs with no children: same Go type is enough,
// except Quote, which must also compare the quoted symbol.
func leafEquiv(e1, e2 Expr) bool {
	switch x := e1.(type) {
	case *Quote:
		y, ok := e2.(*Quote)
		return ok && x.Sym.Eq(y.Sym)
	default:
		switch e1.(type) {
		case U:
			_, ok := e2.(U)
			return ok
		case Nat:
			_, ok := e2.(Nat)
			return ok
		case Zero:
			_, ok := e2.(Zero)
			return ok
		case AtomT:
			_, ok := e2.(AtomT)
			return ok
		case TrivialT:
			_, ok := e2.(TrivialT)
			return ok
		case Sole:
			_, ok := e2.(Sole)
			return ok
		case AbsurdT:
			_, ok := e2.(AbsurdT)
			return ok
		case TODO:
			_, ok := e2.(TODO)
			return ok
		case Nil:
			_, ok := e2.(Nil)
			return ok
		case VecNil:
			_, ok := e2.(VecNil)
			return ok
		default:
			return false
		}
	}
}
