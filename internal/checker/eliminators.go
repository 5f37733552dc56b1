package checker

import (
	"github.com/sunholo/pie/internal/core"
	"github.com/sunholo/pie/internal/perrors"
	"github.com/sunholo/pie/internal/value"
)

// synthApp synthesizes application per spec §4.3: the function's type must
// be a Π, the argument is checked against its domain, and the result type
// is the codomain applied to the argument's value.
func synthApp(ctx *value.Ctx, ren *Renaming, ex *core.App) (core.Expr, core.Expr, error) {
	funTypeOut, funOut, err := Synth(ctx, ren, ex.Fun)
	if err != nil {
		return nil, nil, err
	}
	funTypeV := evalOut(ctx, funTypeOut)
	pi, ok := value.Now(funTypeV).(*value.VPi)
	if !ok {
		return nil, nil, perrors.NewNotAFunctionType(perrors.PhaseCheck, funTypeV)
	}
	argOut, err := Check(ctx, ren, ex.Arg, pi.ArgType)
	if err != nil {
		return nil, nil, err
	}
	argV := evalOut(ctx, argOut)
	resultType := pi.Body.Apply(argV)
	return value.ReadBackType(ctx, resultType), &core.App{Fun: funOut, Arg: argOut}, nil
}

func synthCar(ctx *value.Ctx, ren *Renaming, ex *core.Car) (core.Expr, core.Expr, error) {
	pairTypeOut, pairOut, err := Synth(ctx, ren, ex.Pair)
	if err != nil {
		return nil, nil, err
	}
	pairTypeV := evalOut(ctx, pairTypeOut)
	sigma, ok := value.Now(pairTypeV).(*value.VSigma)
	if !ok {
		return nil, nil, perrors.NewNotASigmaType(perrors.PhaseCheck, pairTypeV)
	}
	return value.ReadBackType(ctx, sigma.ArgType), &core.Car{Pair: pairOut}, nil
}

func synthCdr(ctx *value.Ctx, ren *Renaming, ex *core.Cdr) (core.Expr, core.Expr, error) {
	pairTypeOut, pairOut, err := Synth(ctx, ren, ex.Pair)
	if err != nil {
		return nil, nil, err
	}
	pairTypeV := evalOut(ctx, pairTypeOut)
	sigma, ok := value.Now(pairTypeV).(*value.VSigma)
	if !ok {
		return nil, nil, perrors.NewNotASigmaType(perrors.PhaseCheck, pairTypeV)
	}
	pairV := evalOut(ctx, pairOut)
	carV := value.Car(pairV)
	sndType := sigma.Body.Apply(carV)
	return value.ReadBackType(ctx, sndType), &core.Cdr{Pair: pairOut}, nil
}

func synthHead(ctx *value.Ctx, ren *Renaming, ex *core.VecHead) (core.Expr, core.Expr, error) {
	vecTypeOut, vecOut, err := Synth(ctx, ren, ex.Vec)
	if err != nil {
		return nil, nil, err
	}
	vecTypeV := evalOut(ctx, vecTypeOut)
	vecT, ok := value.Now(vecTypeV).(*value.VVecT)
	if !ok {
		return nil, nil, perrors.NewNotAVecType(perrors.PhaseCheck, vecTypeV)
	}
	if _, ok := value.Now(vecT.Len).(*value.VAdd1); !ok {
		return nil, nil, perrors.NewLengthZero(perrors.PhaseCheck, vecT.Len)
	}
	return value.ReadBackType(ctx, vecT.Elem), &core.VecHead{Vec: vecOut}, nil
}

func synthTail(ctx *value.Ctx, ren *Renaming, ex *core.VecTail) (core.Expr, core.Expr, error) {
	vecTypeOut, vecOut, err := Synth(ctx, ren, ex.Vec)
	if err != nil {
		return nil, nil, err
	}
	vecTypeV := evalOut(ctx, vecTypeOut)
	vecT, ok := value.Now(vecTypeV).(*value.VVecT)
	if !ok {
		return nil, nil, perrors.NewNotAVecType(perrors.PhaseCheck, vecTypeV)
	}
	add1, ok := value.Now(vecT.Len).(*value.VAdd1)
	if !ok {
		return nil, nil, perrors.NewLengthZero(perrors.PhaseCheck, vecT.Len)
	}
	tailType := &value.VVecT{Elem: vecT.Elem, Len: add1.N}
	return value.ReadBackType(ctx, tailType), &core.VecTail{Vec: vecOut}, nil
}

func synthLength(ctx *value.Ctx, ren *Renaming, ex *core.ListLength) (core.Expr, core.Expr, error) {
	listTypeOut, listOut, err := Synth(ctx, ren, ex.List)
	if err != nil {
		return nil, nil, err
	}
	listTypeV := evalOut(ctx, listTypeOut)
	if _, ok := value.Now(listTypeV).(*value.VListT); !ok {
		return nil, nil, perrors.NewNotAListType(perrors.PhaseCheck, listTypeV)
	}
	return core.Nat{}, &core.ListLength{List: listOut}, nil
}

// synthUntypedNatElim implements the shared two-phase synth for which-Nat,
// rec-Nat and iter-Nat: check the target at Nat, synth the base case to
// learn its type, check the step against the fabricated step type, and
// rewrite into the corresponding *Typed node (spec §4.3, "untyped
// eliminator rewrite").
func synthUntypedNatElim(
	ctx *value.Ctx, ren *Renaming,
	target, base, step core.Expr,
	stepType func(value.Value) value.Value,
	rewrap func(target, baseType, base, step core.Expr) core.Expr,
) (core.Expr, core.Expr, error) {
	targetOut, err := Check(ctx, ren, target, value.VNat{})
	if err != nil {
		return nil, nil, err
	}
	baseTypeOut, baseOut, err := Synth(ctx, ren, base)
	if err != nil {
		return nil, nil, err
	}
	baseTypeV := evalOut(ctx, baseTypeOut)
	stepOut, err := Check(ctx, ren, step, stepType(baseTypeV))
	if err != nil {
		return nil, nil, err
	}
	return baseTypeOut, rewrap(targetOut, baseTypeOut, baseOut, stepOut), nil
}

func rewrapWhichNat(target, baseType, base, step core.Expr) core.Expr {
	return &core.WhichNatTyped{Target: target, BaseType: baseType, Base: base, Step: step}
}

func rewrapRecNat(target, baseType, base, step core.Expr) core.Expr {
	return &core.RecNatTyped{Target: target, BaseType: baseType, Base: base, Step: step}
}

func rewrapIterNat(target, baseType, base, step core.Expr) core.Expr {
	return &core.IterNatTyped{Target: target, BaseType: baseType, Base: base, Step: step}
}

// synthUntypedListElim implements rec-List's two-phase synth: the target
// must synth to a List type (to learn the element type the step needs),
// then base/step follow the same base-type-driven pattern as the Nat
// eliminators above.
func synthUntypedListElim(ctx *value.Ctx, ren *Renaming, ex *core.RecList) (core.Expr, core.Expr, error) {
	targetTypeOut, targetOut, err := Synth(ctx, ren, ex.Target)
	if err != nil {
		return nil, nil, err
	}
	targetTypeV := evalOut(ctx, targetTypeOut)
	listT, ok := value.Now(targetTypeV).(*value.VListT)
	if !ok {
		return nil, nil, perrors.NewNotAListType(perrors.PhaseCheck, targetTypeV)
	}
	baseTypeOut, baseOut, err := Synth(ctx, ren, ex.Base)
	if err != nil {
		return nil, nil, err
	}
	baseTypeV := evalOut(ctx, baseTypeOut)
	stepOut, err := Check(ctx, ren, ex.Step, value.ListStepType(listT.Elem, baseTypeV))
	if err != nil {
		return nil, nil, err
	}
	return baseTypeOut, &core.RecListTyped{Target: targetOut, BaseType: baseTypeOut, Base: baseOut, Step: stepOut}, nil
}

// synthIndNat checks ind-Nat's explicit motive, then the base and step
// against types built from it, per spec §4.3.
func synthIndNat(ctx *value.Ctx, ren *Renaming, ex *core.IndNat) (core.Expr, core.Expr, error) {
	targetOut, err := Check(ctx, ren, ex.Target, value.VNat{})
	if err != nil {
		return nil, nil, err
	}
	motOut, err := Check(ctx, ren, ex.Motive, value.NatMotiveType())
	if err != nil {
		return nil, nil, err
	}
	motV := evalOut(ctx, motOut)
	baseOut, err := Check(ctx, ren, ex.Base, value.Ap(motV, value.VZero{}))
	if err != nil {
		return nil, nil, err
	}
	stepOut, err := Check(ctx, ren, ex.Step, value.NatStepType(motV))
	if err != nil {
		return nil, nil, err
	}
	targetV := evalOut(ctx, targetOut)
	resultType := value.Ap(motV, targetV)
	return value.ReadBackType(ctx, resultType), &core.IndNat{Target: targetOut, Motive: motOut, Base: baseOut, Step: stepOut}, nil
}

func synthIndList(ctx *value.Ctx, ren *Renaming, ex *core.IndList) (core.Expr, core.Expr, error) {
	targetTypeOut, targetOut, err := Synth(ctx, ren, ex.Target)
	if err != nil {
		return nil, nil, err
	}
	targetTypeV := evalOut(ctx, targetTypeOut)
	listT, ok := value.Now(targetTypeV).(*value.VListT)
	if !ok {
		return nil, nil, perrors.NewNotAListType(perrors.PhaseCheck, targetTypeV)
	}
	motOut, err := Check(ctx, ren, ex.Motive, value.ListMotiveType(listT.Elem))
	if err != nil {
		return nil, nil, err
	}
	motV := evalOut(ctx, motOut)
	baseOut, err := Check(ctx, ren, ex.Base, value.Ap(motV, value.VNil{}))
	if err != nil {
		return nil, nil, err
	}
	stepOut, err := Check(ctx, ren, ex.Step, value.ListIndStepType(listT.Elem, motV))
	if err != nil {
		return nil, nil, err
	}
	targetV := evalOut(ctx, targetOut)
	resultType := value.Ap(motV, targetV)
	return value.ReadBackType(ctx, resultType), &core.IndList{Target: targetOut, Motive: motOut, Base: baseOut, Step: stepOut}, nil
}

func synthIndVec(ctx *value.Ctx, ren *Renaming, ex *core.IndVec) (core.Expr, core.Expr, error) {
	lenOut, err := Check(ctx, ren, ex.Len, value.VNat{})
	if err != nil {
		return nil, nil, err
	}
	lenV := evalOut(ctx, lenOut)
	// The element type can't be guessed before the target is inspected, so
	// the target is synthesized rather than checked against ex.Len directly;
	// its declared length is then converted against ex.Len instead.
	targetTypeOut, targetOut, err := Synth(ctx, ren, ex.Target)
	if err != nil {
		return nil, nil, err
	}
	targetTypeV := evalOut(ctx, targetTypeOut)
	vecT, ok := value.Now(targetTypeV).(*value.VVecT)
	if !ok {
		return nil, nil, perrors.NewNotAVecType(perrors.PhaseCheck, targetTypeV)
	}
	if err := Convert(ctx, value.VNat{}, lenV, vecT.Len); err != nil {
		return nil, nil, err
	}
	motOut, err := Check(ctx, ren, ex.Motive, value.VecMotiveType(vecT.Elem))
	if err != nil {
		return nil, nil, err
	}
	motV := evalOut(ctx, motOut)
	baseOut, err := Check(ctx, ren, ex.Base, value.Ap(value.Ap(motV, value.VZero{}), value.VVecNil{}))
	if err != nil {
		return nil, nil, err
	}
	stepOut, err := Check(ctx, ren, ex.Step, value.VecIndStepType(vecT.Elem, motV))
	if err != nil {
		return nil, nil, err
	}
	targetV := evalOut(ctx, targetOut)
	resultType := value.Ap(value.Ap(motV, lenV), targetV)
	return value.ReadBackType(ctx, resultType),
		&core.IndVec{Len: lenOut, Target: targetOut, Motive: motOut, Base: baseOut, Step: stepOut}, nil
}

func synthIndEither(ctx *value.Ctx, ren *Renaming, ex *core.IndEither) (core.Expr, core.Expr, error) {
	targetTypeOut, targetOut, err := Synth(ctx, ren, ex.Target)
	if err != nil {
		return nil, nil, err
	}
	targetTypeV := evalOut(ctx, targetTypeOut)
	either, ok := value.Now(targetTypeV).(*value.VEitherT)
	if !ok {
		return nil, nil, perrors.NewNotAnEitherType(perrors.PhaseCheck, targetTypeV)
	}
	motOut, err := Check(ctx, ren, ex.Motive, value.EitherMotiveType(either.L, either.R))
	if err != nil {
		return nil, nil, err
	}
	motV := evalOut(ctx, motOut)
	baseLType := value.PiType(either.L, func(l value.Value) value.Value { return value.Ap(motV, &value.VLeft{Val: l}) })
	baseRType := value.PiType(either.R, func(r value.Value) value.Value { return value.Ap(motV, &value.VRight{Val: r}) })
	baseLOut, err := Check(ctx, ren, ex.BaseL, baseLType)
	if err != nil {
		return nil, nil, err
	}
	baseROut, err := Check(ctx, ren, ex.BaseR, baseRType)
	if err != nil {
		return nil, nil, err
	}
	targetV := evalOut(ctx, targetOut)
	resultType := value.Ap(motV, targetV)
	return value.ReadBackType(ctx, resultType),
		&core.IndEither{Target: targetOut, Motive: motOut, BaseL: baseLOut, BaseR: baseROut}, nil
}

func synthIndAbsurd(ctx *value.Ctx, ren *Renaming, ex *core.IndAbsurd) (core.Expr, core.Expr, error) {
	targetOut, err := Check(ctx, ren, ex.Target, value.VAbsurd{})
	if err != nil {
		return nil, nil, err
	}
	motOut, err := Check(ctx, ren, ex.Motive, value.Universe{})
	if err != nil {
		return nil, nil, err
	}
	return motOut, &core.IndAbsurd{Target: targetOut, Motive: motOut}, nil
}

func synthCong(ctx *value.Ctx, ren *Renaming, ex *core.Cong) (core.Expr, core.Expr, error) {
	eqTypeOut, eqOut, err := Synth(ctx, ren, ex.Eq)
	if err != nil {
		return nil, nil, err
	}
	eqTypeV := evalOut(ctx, eqTypeOut)
	equal, ok := value.Now(eqTypeV).(*value.VEqual)
	if !ok {
		return nil, nil, perrors.NewNotAnEqualType(perrors.PhaseCheck, eqTypeV)
	}
	funTypeOut, funOut, err := Synth(ctx, ren, ex.Fun)
	if err != nil {
		return nil, nil, err
	}
	funTypeV := evalOut(ctx, funTypeOut)
	pi, ok := value.Now(funTypeV).(*value.VPi)
	if !ok {
		return nil, nil, perrors.NewNotAFunctionType(perrors.PhaseCheck, funTypeV)
	}
	if err := SameType(ctx, equal.Type, pi.ArgType); err != nil {
		return nil, nil, err
	}
	funV := evalOut(ctx, funOut)
	fromV := value.Ap(funV, equal.From)
	toV := value.Ap(funV, equal.To)
	resultType := &value.VEqual{Type: pi.Body.Apply(equal.From), From: fromV, To: toV}
	return value.ReadBackType(ctx, resultType), &core.Cong{Eq: eqOut, Fun: funOut}, nil
}

func synthReplace(ctx *value.Ctx, ren *Renaming, ex *core.Replace) (core.Expr, core.Expr, error) {
	targetTypeOut, targetOut, err := Synth(ctx, ren, ex.Target)
	if err != nil {
		return nil, nil, err
	}
	targetTypeV := evalOut(ctx, targetTypeOut)
	equal, ok := value.Now(targetTypeV).(*value.VEqual)
	if !ok {
		return nil, nil, perrors.NewNotAnEqualType(perrors.PhaseCheck, targetTypeV)
	}
	motiveType := value.PiType(equal.Type, func(value.Value) value.Value { return value.Universe{} })
	motOut, err := Check(ctx, ren, ex.Motive, motiveType)
	if err != nil {
		return nil, nil, err
	}
	motV := evalOut(ctx, motOut)
	baseOut, err := Check(ctx, ren, ex.Base, value.Ap(motV, equal.From))
	if err != nil {
		return nil, nil, err
	}
	resultType := value.Ap(motV, equal.To)
	return value.ReadBackType(ctx, resultType), &core.Replace{Target: targetOut, Motive: motOut, Base: baseOut}, nil
}

func synthSymm(ctx *value.Ctx, ren *Renaming, ex *core.Symm) (core.Expr, core.Expr, error) {
	eqTypeOut, eqOut, err := Synth(ctx, ren, ex.Eq)
	if err != nil {
		return nil, nil, err
	}
	eqTypeV := evalOut(ctx, eqTypeOut)
	equal, ok := value.Now(eqTypeV).(*value.VEqual)
	if !ok {
		return nil, nil, perrors.NewNotAnEqualType(perrors.PhaseCheck, eqTypeV)
	}
	resultType := &value.VEqual{Type: equal.Type, From: equal.To, To: equal.From}
	return value.ReadBackType(ctx, resultType), &core.Symm{Eq: eqOut}, nil
}

func synthTrans(ctx *value.Ctx, ren *Renaming, ex *core.Trans) (core.Expr, core.Expr, error) {
	eq1TypeOut, eq1Out, err := Synth(ctx, ren, ex.Eq1)
	if err != nil {
		return nil, nil, err
	}
	eq1TypeV := evalOut(ctx, eq1TypeOut)
	equal1, ok := value.Now(eq1TypeV).(*value.VEqual)
	if !ok {
		return nil, nil, perrors.NewNotAnEqualType(perrors.PhaseCheck, eq1TypeV)
	}
	eq2TypeOut, eq2Out, err := Synth(ctx, ren, ex.Eq2)
	if err != nil {
		return nil, nil, err
	}
	eq2TypeV := evalOut(ctx, eq2TypeOut)
	equal2, ok := value.Now(eq2TypeV).(*value.VEqual)
	if !ok {
		return nil, nil, perrors.NewNotAnEqualType(perrors.PhaseCheck, eq2TypeV)
	}
	if err := SameType(ctx, equal1.Type, equal2.Type); err != nil {
		return nil, nil, err
	}
	if err := Convert(ctx, equal1.Type, equal1.To, equal2.From); err != nil {
		return nil, nil, err
	}
	resultType := &value.VEqual{Type: equal1.Type, From: equal1.From, To: equal2.To}
	return value.ReadBackType(ctx, resultType), &core.Trans{Eq1: eq1Out, Eq2: eq2Out}, nil
}
