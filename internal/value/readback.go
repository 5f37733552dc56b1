package value

import (
	"fmt"

	"github.com/sunholo/pie/internal/core"
)

// ReadBackType turns a value known to denote a type back into core syntax.
// Used both for printing normal forms and, inside the checker, to obtain
// the type annotation a fully elaborated construct must carry.
func ReadBackType(ctx *Ctx, tv Value) core.Expr {
	switch t := Now(tv).(type) {
	case Universe:
		return core.U{}
	case VNat:
		return core.Nat{}
	case VAtom:
		return core.AtomT{}
	case VTrivial:
		return core.TrivialT{}
	case VAbsurd:
		return core.AbsurdT{}
	case *VPi:
		y := ctx.Fresh(t.ArgName)
		argExpr := ReadBackType(ctx, t.ArgType)
		bodyVal := t.Body.Apply(NewNeutralVar(y, t.ArgType))
		bodyExpr := ReadBackType(ctx.BindFree(y, t.ArgType), bodyVal)
		return &core.Pi{Name: y, Arg: argExpr, Body: bodyExpr}
	case *VSigma:
		y := ctx.Fresh(t.ArgName)
		fstExpr := ReadBackType(ctx, t.ArgType)
		sndVal := t.Body.Apply(NewNeutralVar(y, t.ArgType))
		sndExpr := ReadBackType(ctx.BindFree(y, t.ArgType), sndVal)
		return &core.Sigma{Name: y, Fst: fstExpr, Snd: sndExpr}
	case *VListT:
		return &core.ListT{Elem: ReadBackType(ctx, t.Elem)}
	case *VVecT:
		return &core.VecT{Elem: ReadBackType(ctx, t.Elem), Len: ReadBack(ctx, VNat{}, t.Len)}
	case *VEitherT:
		return &core.EitherT{L: ReadBackType(ctx, t.L), R: ReadBackType(ctx, t.R)}
	case *VEqual:
		return &core.EqualT{
			Type: ReadBackType(ctx, t.Type),
			From: ReadBack(ctx, t.Type, t.From),
			To:   ReadBack(ctx, t.Type, t.To),
		}
	case *Neutral:
		return ReadBackNeutral(ctx, t.Kind)
	default:
		panic(fmt.Sprintf("pie: read-back-type: not a type value: %s", tv))
	}
}

// ReadBack turns a value v of type tv back into core syntax in η-long
// normal form: every Π-typed value is read back as a λ applied to a fresh
// variable, every Σ-typed value as a cons of its car/cdr, regardless of
// whether v itself is canonical or stuck (spec §9's Open Question: η
// adopted uniformly for Π and Σ, nowhere else).
func ReadBack(ctx *Ctx, tv, v Value) core.Expr {
	switch t := Now(tv).(type) {
	case Universe:
		return ReadBackType(ctx, v)
	case VNat:
		return readBackNat(ctx, v)
	case VAtom:
		switch vn := Now(v).(type) {
		case *VQuote:
			return &core.Quote{Sym: vn.Sym}
		case *Neutral:
			return ReadBackNeutral(ctx, vn.Kind)
		default:
			panic(fmt.Sprintf("pie: read-back: not an Atom value: %s", v))
		}
	case VTrivial:
		switch vn := Now(v).(type) {
		case VSole:
			return core.Sole{}
		case *Neutral:
			return ReadBackNeutral(ctx, vn.Kind)
		default:
			panic(fmt.Sprintf("pie: read-back: not a Trivial value: %s", v))
		}
	case VAbsurd:
		n, ok := Now(v).(*Neutral)
		if !ok {
			panic(fmt.Sprintf("pie: read-back: not a neutral Absurd value: %s", v))
		}
		return ReadBackNeutral(ctx, n.Kind)
	case *VPi:
		y := ctx.Fresh(t.ArgName)
		argVal := NewNeutralVar(y, t.ArgType)
		resultType := t.Body.Apply(argVal)
		bodyVal := doAp(v, argVal)
		bodyExpr := ReadBack(ctx.BindFree(y, t.ArgType), resultType, bodyVal)
		return &core.Lambda{Name: y, Body: bodyExpr}
	case *VSigma:
		carVal := doCar(v)
		cdrVal := doCdr(v)
		sndType := t.Body.Apply(carVal)
		return &core.Cons{
			Fst: ReadBack(ctx, t.ArgType, carVal),
			Snd: ReadBack(ctx, sndType, cdrVal),
		}
	case *VListT:
		return readBackList(ctx, t, v)
	case *VVecT:
		return readBackVec(ctx, t, v)
	case *VEitherT:
		return readBackEither(ctx, t, v)
	case *VEqual:
		switch vn := Now(v).(type) {
		case *VSame:
			return &core.Same{Val: ReadBack(ctx, t.Type, vn.Val)}
		case *Neutral:
			return ReadBackNeutral(ctx, vn.Kind)
		default:
			panic(fmt.Sprintf("pie: read-back: not an equality value: %s", v))
		}
	case *Neutral:
		// v's type is itself stuck (e.g. the result of applying a free
		// variable of type Nat -> U); the only way to have a value of a
		// stuck type is for the value to be stuck too.
		vn, ok := Now(v).(*Neutral)
		if !ok {
			panic(fmt.Sprintf("pie: read-back: value %s has neutral type %s but is not itself neutral", v, tv))
		}
		return ReadBackNeutral(ctx, vn.Kind)
	default:
		panic(fmt.Sprintf("pie: read-back: unhandled type value: %s", tv))
	}
}

func readBackNat(ctx *Ctx, v Value) core.Expr {
	switch n := Now(v).(type) {
	case VZero:
		return core.Zero{}
	case *VAdd1:
		return &core.Add1{N: readBackNat(ctx, n.N)}
	case *Neutral:
		return ReadBackNeutral(ctx, n.Kind)
	default:
		panic(fmt.Sprintf("pie: read-back: not a Nat value: %s", v))
	}
}

func readBackList(ctx *Ctx, t *VListT, v Value) core.Expr {
	switch l := Now(v).(type) {
	case VNil:
		return core.Nil{}
	case *VListCons:
		return &core.ListCons{
			Head: ReadBack(ctx, t.Elem, l.Head),
			Tail: ReadBack(ctx, t, l.Tail),
		}
	case *Neutral:
		return ReadBackNeutral(ctx, l.Kind)
	default:
		panic(fmt.Sprintf("pie: read-back: not a List value: %s", v))
	}
}

func readBackVec(ctx *Ctx, t *VVecT, v Value) core.Expr {
	switch vv := Now(v).(type) {
	case VVecNil:
		return core.VecNil{}
	case *VVecCons:
		tailType := &VVecT{Elem: t.Elem, Len: PredOf(t.Len)}
		return &core.VecCons{
			Head: ReadBack(ctx, t.Elem, vv.Head),
			Tail: ReadBack(ctx, tailType, vv.Tail),
		}
	case *Neutral:
		return ReadBackNeutral(ctx, vv.Kind)
	default:
		panic(fmt.Sprintf("pie: read-back: not a Vec value: %s", v))
	}
}

func readBackEither(ctx *Ctx, t *VEitherT, v Value) core.Expr {
	switch e := Now(v).(type) {
	case *VLeft:
		return &core.Left{Val: ReadBack(ctx, t.L, e.Val)}
	case *VRight:
		return &core.Right{Val: ReadBack(ctx, t.R, e.Val)}
	case *Neutral:
		return ReadBackNeutral(ctx, e.Kind)
	default:
		panic(fmt.Sprintf("pie: read-back: not an Either value: %s", v))
	}
}

// ReadBackNeutral structurally reconstructs the core syntax for a stuck
// spine, reading back each recorded operand at its own stored type so the
// result is a well-typed tree without any further context access (spec
// §9, "eliminator neutrals").
func ReadBackNeutral(ctx *Ctx, n NKind) core.Expr {
	rb := func(t Typed) core.Expr { return ReadBack(ctx, t.Type, t.Val) }
	switch k := n.(type) {
	case *NVar:
		return &core.Var{Name: k.Name}
	case *NApp:
		return &core.App{Fun: ReadBackNeutral(ctx, k.Fun), Arg: rb(k.Arg)}
	case *NCar:
		return &core.Car{Pair: ReadBackNeutral(ctx, k.Pair)}
	case *NCdr:
		return &core.Cdr{Pair: ReadBackNeutral(ctx, k.Pair)}
	case *NWhichNat:
		return &core.WhichNatTyped{
			Target:   ReadBackNeutral(ctx, k.Target),
			BaseType: ReadBackType(ctx, k.Base.Type),
			Base:     rb(k.Base),
			Step:     rb(k.Step),
		}
	case *NRecNat:
		return &core.RecNatTyped{
			Target:   ReadBackNeutral(ctx, k.Target),
			BaseType: ReadBackType(ctx, k.Base.Type),
			Base:     rb(k.Base),
			Step:     rb(k.Step),
		}
	case *NIterNat:
		return &core.IterNatTyped{
			Target:   ReadBackNeutral(ctx, k.Target),
			BaseType: ReadBackType(ctx, k.Base.Type),
			Base:     rb(k.Base),
			Step:     rb(k.Step),
		}
	case *NIndNat:
		return &core.IndNat{
			Target: ReadBackNeutral(ctx, k.Target),
			Motive: rb(k.Motive),
			Base:   rb(k.Base),
			Step:   rb(k.Step),
		}
	case *NListLength:
		return &core.ListLength{List: ReadBackNeutral(ctx, k.Target)}
	case *NRecList:
		return &core.RecListTyped{
			Target:   ReadBackNeutral(ctx, k.Target),
			BaseType: ReadBackType(ctx, k.Base.Type),
			Base:     rb(k.Base),
			Step:     rb(k.Step),
		}
	case *NIndList:
		return &core.IndList{
			Target: ReadBackNeutral(ctx, k.Target),
			Motive: rb(k.Motive),
			Base:   rb(k.Base),
			Step:   rb(k.Step),
		}
	case *NHead:
		return &core.VecHead{Vec: ReadBackNeutral(ctx, k.Target)}
	case *NTail:
		return &core.VecTail{Vec: ReadBackNeutral(ctx, k.Target)}
	case *NIndVec:
		return &core.IndVec{
			Len:    rb(k.Len),
			Target: ReadBackNeutral(ctx, k.Target),
			Motive: rb(k.Motive),
			Base:   rb(k.Base),
			Step:   rb(k.Step),
		}
	case *NIndEither:
		return &core.IndEither{
			Target: ReadBackNeutral(ctx, k.Target),
			Motive: rb(k.Motive),
			BaseL:  rb(k.BaseL),
			BaseR:  rb(k.BaseR),
		}
	case *NCong:
		return &core.Cong{Eq: ReadBackNeutral(ctx, k.Target), Fun: rb(k.Fun)}
	case *NReplace:
		return &core.Replace{Target: ReadBackNeutral(ctx, k.Target), Motive: rb(k.Motive), Base: rb(k.Base)}
	case *NSymm:
		return &core.Symm{Eq: ReadBackNeutral(ctx, k.Target)}
	case *NTrans:
		return &core.Trans{Eq1: ReadBackNeutral(ctx, k.Eq1), Eq2: rb(k.Eq2)}
	case *NIndAbsurd:
		return &core.IndAbsurd{Target: ReadBackNeutral(ctx, k.Target), Motive: rb(k.Motive)}
	default:
		panic(fmt.Sprintf("pie: read-back-neutral: unhandled neutral kind %T", n))
	}
}
