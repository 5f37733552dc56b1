// Package checker implements Pie's bidirectional type checker: the three
// mutually recursive procedures is-type/synth/check that turn surface core
// syntax (sugar included) into fully elaborated, sugar-free core trees
// (spec §4.3).
package checker

import (
	"github.com/sunholo/pie/internal/core"
	"github.com/sunholo/pie/internal/perrors"
	"github.com/sunholo/pie/internal/symbol"
	"github.com/sunholo/pie/internal/value"
)

// IsType checks that e is an elaborable type expression, returning its
// elaborated form. Most constructs have a bespoke rule (spec §4.1); any
// construct without one falls back to checking it against the universe,
// matching the Reference rule's literal description ("first try check(U)").
func IsType(ctx *value.Ctx, ren *Renaming, e core.Expr) (core.Expr, error) {
	switch ex := e.(type) {
	case core.U:
		return core.U{}, nil
	case core.Nat:
		return core.Nat{}, nil
	case core.AtomT:
		return core.AtomT{}, nil
	case core.TrivialT:
		return core.TrivialT{}, nil
	case core.AbsurdT:
		return core.AbsurdT{}, nil

	case *core.ListT:
		elemOut, err := IsType(ctx, ren, ex.Elem)
		if err != nil {
			return nil, err
		}
		return &core.ListT{Elem: elemOut}, nil

	case *core.VecT:
		elemOut, err := IsType(ctx, ren, ex.Elem)
		if err != nil {
			return nil, err
		}
		lenOut, err := Check(ctx, ren, ex.Len, value.VNat{})
		if err != nil {
			return nil, err
		}
		return &core.VecT{Elem: elemOut, Len: lenOut}, nil

	case *core.EitherT:
		lOut, err := IsType(ctx, ren, ex.L)
		if err != nil {
			return nil, err
		}
		rOut, err := IsType(ctx, ren, ex.R)
		if err != nil {
			return nil, err
		}
		return &core.EitherT{L: lOut, R: rOut}, nil

	case *core.EqualT:
		typeOut, err := IsType(ctx, ren, ex.Type)
		if err != nil {
			return nil, err
		}
		typeV := evalOut(ctx, typeOut)
		fromOut, err := Check(ctx, ren, ex.From, typeV)
		if err != nil {
			return nil, err
		}
		toOut, err := Check(ctx, ren, ex.To, typeV)
		if err != nil {
			return nil, err
		}
		return &core.EqualT{Type: typeOut, From: fromOut, To: toOut}, nil

	case *core.Pi:
		return isTypePi(ctx, ren, ex.Name, ex.Arg, ex.Body)

	case *core.Sigma:
		return isTypeSigma(ctx, ren, ex.Name, ex.Fst, ex.Snd)

	case *core.PiStar:
		return IsType(ctx, ren, desugarPiStar(ex))

	case *core.FunStar:
		return IsType(ctx, ren, desugarFunStar(ex))

	case *core.PairT:
		return IsType(ctx, ren, desugarPairT(ex))

	case *core.The:
		typeOut, err := Check(ctx, ren, ex.Type, value.Universe{})
		if err != nil {
			return nil, err
		}
		typeV := evalOut(ctx, typeOut)
		exprOut, err := Check(ctx, ren, ex.Expr, typeV)
		if err != nil {
			return nil, err
		}
		return &core.The{Type: typeOut, Expr: exprOut}, nil

	default:
		out, err := Check(ctx, ren, e, value.Universe{})
		if err != nil {
			if _, ok := e.(*core.Var); ok {
				return nil, err
			}
			return nil, perrors.NewNotAType(perrors.PhaseCheck, e)
		}
		return out, nil
	}
}

func isTypePi(ctx *value.Ctx, ren *Renaming, name *symbol.Symbol, arg, body core.Expr) (core.Expr, error) {
	argOut, err := IsType(ctx, ren, arg)
	if err != nil {
		return nil, err
	}
	argV := evalOut(ctx, argOut)
	xhat := ctx.FreshBinder(body, name)
	ctx2 := ctx.BindFree(xhat, argV)
	ren2 := ren.Extend(name, xhat)
	bodyOut, err := IsType(ctx2, ren2, body)
	if err != nil {
		return nil, err
	}
	return &core.Pi{Name: xhat, Arg: argOut, Body: bodyOut}, nil
}

func isTypeSigma(ctx *value.Ctx, ren *Renaming, name *symbol.Symbol, fst, snd core.Expr) (core.Expr, error) {
	fstOut, err := IsType(ctx, ren, fst)
	if err != nil {
		return nil, err
	}
	fstV := evalOut(ctx, fstOut)
	xhat := ctx.FreshBinder(snd, name)
	ctx2 := ctx.BindFree(xhat, fstV)
	ren2 := ren.Extend(name, xhat)
	sndOut, err := IsType(ctx2, ren2, snd)
	if err != nil {
		return nil, err
	}
	return &core.Sigma{Name: xhat, Fst: fstOut, Snd: sndOut}, nil
}

// Synth determines e's own type, returning the elaborated type and term.
func Synth(ctx *value.Ctx, ren *Renaming, e core.Expr) (core.Expr, core.Expr, error) {
	switch ex := e.(type) {
	case core.U:
		return nil, nil, perrors.NewUhasNoType(perrors.PhaseCheck)

	case core.Nat:
		return core.U{}, core.Nat{}, nil
	case core.AtomT:
		return core.U{}, core.AtomT{}, nil
	case core.TrivialT:
		return core.U{}, core.TrivialT{}, nil
	case core.AbsurdT:
		return core.U{}, core.AbsurdT{}, nil

	case *core.ListT:
		elemOut, err := IsType(ctx, ren, ex.Elem)
		if err != nil {
			return nil, nil, err
		}
		return core.U{}, &core.ListT{Elem: elemOut}, nil

	case *core.ListCons:
		headTypeOut, headOut, err := Synth(ctx, ren, ex.Head)
		if err != nil {
			return nil, nil, err
		}
		listTypeOut := &core.ListT{Elem: headTypeOut}
		tailOut, err := Check(ctx, ren, ex.Tail, evalOut(ctx, listTypeOut))
		if err != nil {
			return nil, nil, err
		}
		return listTypeOut, &core.ListCons{Head: headOut, Tail: tailOut}, nil

	case *core.VecT:
		elemOut, err := IsType(ctx, ren, ex.Elem)
		if err != nil {
			return nil, nil, err
		}
		lenOut, err := Check(ctx, ren, ex.Len, value.VNat{})
		if err != nil {
			return nil, nil, err
		}
		return core.U{}, &core.VecT{Elem: elemOut, Len: lenOut}, nil

	case *core.EitherT:
		lOut, err := IsType(ctx, ren, ex.L)
		if err != nil {
			return nil, nil, err
		}
		rOut, err := IsType(ctx, ren, ex.R)
		if err != nil {
			return nil, nil, err
		}
		return core.U{}, &core.EitherT{L: lOut, R: rOut}, nil

	case *core.EqualT:
		typeOut, err := IsType(ctx, ren, ex.Type)
		if err != nil {
			return nil, nil, err
		}
		typeV := evalOut(ctx, typeOut)
		fromOut, err := Check(ctx, ren, ex.From, typeV)
		if err != nil {
			return nil, nil, err
		}
		toOut, err := Check(ctx, ren, ex.To, typeV)
		if err != nil {
			return nil, nil, err
		}
		return core.U{}, &core.EqualT{Type: typeOut, From: fromOut, To: toOut}, nil

	case *core.Pi:
		out, err := isTypePi(ctx, ren, ex.Name, ex.Arg, ex.Body)
		if err != nil {
			return nil, nil, err
		}
		return core.U{}, out, nil

	case *core.Sigma:
		out, err := isTypeSigma(ctx, ren, ex.Name, ex.Fst, ex.Snd)
		if err != nil {
			return nil, nil, err
		}
		return core.U{}, out, nil

	case *core.PiStar:
		return Synth(ctx, ren, desugarPiStar(ex))
	case *core.FunStar:
		return Synth(ctx, ren, desugarFunStar(ex))
	case *core.PairT:
		return Synth(ctx, ren, desugarPairT(ex))
	case *core.AppStar:
		return Synth(ctx, ren, desugarAppStar(ex))

	case core.Zero:
		return core.Nat{}, core.Zero{}, nil
	case *core.Add1:
		nOut, err := Check(ctx, ren, ex.N, value.VNat{})
		if err != nil {
			return nil, nil, err
		}
		return core.Nat{}, &core.Add1{N: nOut}, nil

	case *core.Quote:
		if !validAtom(ex.Sym.Name()) {
			return nil, nil, perrors.NewInvalidAtom(perrors.PhaseCheck, ex.Sym.Name())
		}
		return core.AtomT{}, &core.Quote{Sym: ex.Sym}, nil

	case core.Sole:
		return core.TrivialT{}, core.Sole{}, nil

	case core.TODO:
		return nil, nil, perrors.NewCantDetermineType(perrors.PhaseCheck, e)

	case *core.Var:
		return synthVar(ctx, ren, ex)

	case *core.The:
		typeOut, err := Check(ctx, ren, ex.Type, value.Universe{})
		if err != nil {
			return nil, nil, err
		}
		typeV := evalOut(ctx, typeOut)
		exprOut, err := Check(ctx, ren, ex.Expr, typeV)
		if err != nil {
			return nil, nil, err
		}
		return typeOut, &core.The{Type: typeOut, Expr: exprOut}, nil

	case *core.App:
		return synthApp(ctx, ren, ex)

	case *core.Car:
		return synthCar(ctx, ren, ex)
	case *core.Cdr:
		return synthCdr(ctx, ren, ex)
	case *core.VecHead:
		return synthHead(ctx, ren, ex)
	case *core.VecTail:
		return synthTail(ctx, ren, ex)
	case *core.ListLength:
		return synthLength(ctx, ren, ex)

	case *core.WhichNat:
		return synthUntypedNatElim(ctx, ren, ex.Target, ex.Base, ex.Step, value.WhichNatStepType, rewrapWhichNat)
	case *core.RecNat:
		return synthUntypedNatElim(ctx, ren, ex.Target, ex.Base, ex.Step, value.RecNatStepType, rewrapRecNat)
	case *core.IterNat:
		return synthUntypedNatElim(ctx, ren, ex.Target, ex.Base, ex.Step, value.IterNatStepType, rewrapIterNat)
	case *core.RecList:
		return synthUntypedListElim(ctx, ren, ex)

	case *core.IndNat:
		return synthIndNat(ctx, ren, ex)
	case *core.IndList:
		return synthIndList(ctx, ren, ex)
	case *core.IndVec:
		return synthIndVec(ctx, ren, ex)
	case *core.IndEither:
		return synthIndEither(ctx, ren, ex)
	case *core.IndAbsurd:
		return synthIndAbsurd(ctx, ren, ex)
	case *core.Cong:
		return synthCong(ctx, ren, ex)
	case *core.Replace:
		return synthReplace(ctx, ren, ex)
	case *core.Symm:
		return synthSymm(ctx, ren, ex)
	case *core.Trans:
		return synthTrans(ctx, ren, ex)

	case *core.Lambda, *core.LamStar:
		return nil, nil, perrors.NewCantDetermineType(perrors.PhaseCheck, e)

	default:
		return nil, nil, perrors.NewCantDetermineType(perrors.PhaseCheck, e)
	}
}

func synthVar(ctx *value.Ctx, ren *Renaming, v *core.Var) (core.Expr, core.Expr, error) {
	name := ren.Lookup(v.Name)
	entry, ok := ctx.Lookup(name)
	if !ok {
		return nil, nil, perrors.NewUnknownName(perrors.PhaseCheck, v.Name.Name())
	}
	return value.ReadBackType(ctx, entry.Type), &core.Var{Name: name}, nil
}

// Check verifies e against the type value tv, returning the elaborated
// term. Constructs without a bespoke rule default to synth-then-same-type.
func Check(ctx *value.Ctx, ren *Renaming, e core.Expr, tv value.Value) (core.Expr, error) {
	switch ex := e.(type) {
	case core.TODO:
		return core.TODO{}, nil

	case *core.LamStar:
		return Check(ctx, ren, desugarLamStar(ex), tv)

	case *core.Lambda:
		pi, ok := value.Now(tv).(*value.VPi)
		if !ok {
			return nil, perrors.NewNotAFunctionType(perrors.PhaseCheck, tv)
		}
		xhat := ctx.FreshBinder(ex.Body, ex.Name)
		ctx2 := ctx.BindFree(xhat, pi.ArgType)
		ren2 := ren.Extend(ex.Name, xhat)
		bodyTV := pi.Body.Apply(value.NewNeutralVar(xhat, pi.ArgType))
		bodyOut, err := Check(ctx2, ren2, ex.Body, bodyTV)
		if err != nil {
			return nil, err
		}
		return &core.Lambda{Name: xhat, Body: bodyOut}, nil

	case *core.Cons:
		sigma, ok := value.Now(tv).(*value.VSigma)
		if !ok {
			return nil, perrors.NewNotASigmaType(perrors.PhaseCheck, tv)
		}
		fstOut, err := Check(ctx, ren, ex.Fst, sigma.ArgType)
		if err != nil {
			return nil, err
		}
		fstV := evalOut(ctx, fstOut)
		sndTV := sigma.Body.Apply(fstV)
		sndOut, err := Check(ctx, ren, ex.Snd, sndTV)
		if err != nil {
			return nil, err
		}
		return &core.Cons{Fst: fstOut, Snd: sndOut}, nil

	case core.Nil:
		if _, ok := value.Now(tv).(*value.VListT); !ok {
			return nil, perrors.NewNotAListType(perrors.PhaseCheck, tv)
		}
		return core.Nil{}, nil

	case *core.ListCons:
		listT, ok := value.Now(tv).(*value.VListT)
		if !ok {
			return nil, perrors.NewNotAListType(perrors.PhaseCheck, tv)
		}
		headOut, err := Check(ctx, ren, ex.Head, listT.Elem)
		if err != nil {
			return nil, err
		}
		tailOut, err := Check(ctx, ren, ex.Tail, tv)
		if err != nil {
			return nil, err
		}
		return &core.ListCons{Head: headOut, Tail: tailOut}, nil

	case core.VecNil:
		vecT, ok := value.Now(tv).(*value.VVecT)
		if !ok {
			return nil, perrors.NewNotAVecType(perrors.PhaseCheck, tv)
		}
		if _, ok := value.Now(vecT.Len).(value.VZero); !ok {
			return nil, perrors.NewLengthNotZero(perrors.PhaseCheck, vecT.Len)
		}
		return core.VecNil{}, nil

	case *core.VecCons:
		vecT, ok := value.Now(tv).(*value.VVecT)
		if !ok {
			return nil, perrors.NewNotAVecType(perrors.PhaseCheck, tv)
		}
		add1, ok := value.Now(vecT.Len).(*value.VAdd1)
		if !ok {
			return nil, perrors.NewLengthZero(perrors.PhaseCheck, vecT.Len)
		}
		headOut, err := Check(ctx, ren, ex.Head, vecT.Elem)
		if err != nil {
			return nil, err
		}
		tailOut, err := Check(ctx, ren, ex.Tail, &value.VVecT{Elem: vecT.Elem, Len: add1.N})
		if err != nil {
			return nil, err
		}
		return &core.VecCons{Head: headOut, Tail: tailOut}, nil

	case *core.Left:
		either, ok := value.Now(tv).(*value.VEitherT)
		if !ok {
			return nil, perrors.NewNotAnEitherType(perrors.PhaseCheck, tv)
		}
		valOut, err := Check(ctx, ren, ex.Val, either.L)
		if err != nil {
			return nil, err
		}
		return &core.Left{Val: valOut}, nil

	case *core.Right:
		either, ok := value.Now(tv).(*value.VEitherT)
		if !ok {
			return nil, perrors.NewNotAnEitherType(perrors.PhaseCheck, tv)
		}
		valOut, err := Check(ctx, ren, ex.Val, either.R)
		if err != nil {
			return nil, err
		}
		return &core.Right{Val: valOut}, nil

	case *core.Same:
		equal, ok := value.Now(tv).(*value.VEqual)
		if !ok {
			return nil, perrors.NewNotAnEqualType(perrors.PhaseCheck, tv)
		}
		valOut, err := Check(ctx, ren, ex.Val, equal.Type)
		if err != nil {
			return nil, err
		}
		return &core.Same{Val: valOut}, nil

	default:
		tOut, eOut, err := Synth(ctx, ren, e)
		if err != nil {
			return nil, err
		}
		actual := evalOut(ctx, tOut)
		if err := SameType(ctx, actual, tv); err != nil {
			return nil, perrors.NewWrongType(perrors.PhaseCheck, value.ReadBackType(ctx, tv), tOut)
		}
		return eOut, nil
	}
}

// Convert checks whether a and b, both of type tv, are the same value by
// reading both back to η-long normal form and testing α-equivalence.
func Convert(ctx *value.Ctx, tv, a, b value.Value) error {
	aOut := value.ReadBack(ctx, tv, a)
	bOut := value.ReadBack(ctx, tv, b)
	if !core.AlphaEquiv(aOut, bOut) {
		return perrors.NewNotTheSame(perrors.PhaseCheck, value.ReadBackType(ctx, tv), aOut, bOut)
	}
	return nil
}

// SameType checks whether tv1 and tv2 are the same type by reading both
// back as types and testing α-equivalence.
func SameType(ctx *value.Ctx, tv1, tv2 value.Value) error {
	t1Out := value.ReadBackType(ctx, tv1)
	t2Out := value.ReadBackType(ctx, tv2)
	if !core.AlphaEquiv(t1Out, t2Out) {
		return perrors.NewNotTheSameType(perrors.PhaseCheck, t1Out, t2Out)
	}
	return nil
}

// evalOut evaluates an elaborated expression under ctx's current
// environment; used pervasively once is-type/check has produced an
// elaborated type expression and the checker needs its value.
func evalOut(ctx *value.Ctx, e core.Expr) value.Value {
	return value.Eval(ctx.Env(), e)
}

// validAtom is the atom lexical rule (spec §7's InvalidAtom): a non-empty
// run of lowercase letters, optionally joined by single internal hyphens.
// No leading, trailing, or doubled hyphens; no digits or uppercase.
func validAtom(s string) bool {
	if s == "" {
		return false
	}
	prevHyphen := false
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			prevHyphen = false
		case r == '-' && i > 0 && !prevHyphen:
			prevHyphen = true
		default:
			return false
		}
	}
	return !prevHyphen
}
