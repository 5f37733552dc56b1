package value

import (
	"fmt"

	"github.com/sunholo/pie/internal/symbol"
)

var xSym = symbol.Intern("x")

// PiType builds a Pi value over a higher-order closure, fn computing the
// codomain from the argument (so the type may be dependent); used throughout this file to fabricate the
// motive/step/base types each eliminator's kernel needs to box its
// non-target operands when it gets stuck on a neutral target.
func PiType(argType Value, fn func(Value) Value) Value {
	return &VPi{ArgName: xSym, ArgType: argType, Body: HigherOrder(fn)}
}

// Ap applies a function value to an argument; exported so the checker can
// compute result types (e.g. App's synthesized type, an eliminator's
// motive applied to a target) without duplicating do_ap's neutral handling.
func Ap(fun, arg Value) Value { return doAp(fun, arg) }

// Car and Cdr are the exported forms of do_car/do_cdr, used by the checker
// when synthesizing cdr's type (which depends on car's value).
func Car(pair Value) Value { return doCar(pair) }
func Cdr(pair Value) Value { return doCdr(pair) }

func doAp(fun Value, arg Value) Value {
	switch f := Now(fun).(type) {
	case *VLambda:
		return f.Body.Apply(arg)
	case *Neutral:
		pi, ok := Now(f.Type).(*VPi)
		if !ok {
			panic("pie: do_ap: neutral function's type is not a Π (checker invariant broken)")
		}
		resultType := pi.Body.Apply(arg)
		return &Neutral{Type: resultType, Kind: &NApp{Fun: f.Kind, Arg: Typed{Type: pi.ArgType, Val: arg}}}
	default:
		panic(fmt.Sprintf("pie: do_ap: not a function value: %s", fun))
	}
}

func doCar(pair Value) Value {
	switch p := Now(pair).(type) {
	case *VCons:
		return p.Fst
	case *Neutral:
		sigma, ok := Now(p.Type).(*VSigma)
		if !ok {
			panic("pie: do_car: neutral pair's type is not a Σ")
		}
		return &Neutral{Type: sigma.ArgType, Kind: &NCar{Pair: p.Kind}}
	default:
		panic(fmt.Sprintf("pie: do_car: not a pair value: %s", pair))
	}
}

func doCdr(pair Value) Value {
	switch p := Now(pair).(type) {
	case *VCons:
		return p.Snd
	case *Neutral:
		sigma, ok := Now(p.Type).(*VSigma)
		if !ok {
			panic("pie: do_cdr: neutral pair's type is not a Σ")
		}
		resultType := sigma.Body.Apply(doCar(pair))
		return &Neutral{Type: resultType, Kind: &NCdr{Pair: p.Kind}}
	default:
		panic(fmt.Sprintf("pie: do_cdr: not a pair value: %s", pair))
	}
}

// ---- Nat eliminators ----

// NatMotiveType is the type every ind-Nat motive must have: Π (n:Nat) U.
func NatMotiveType() Value {
	return PiType(VNat{}, func(Value) Value { return Universe{} })
}

// NatStepType is the type every ind-Nat step must have, given the motive
// value: Π (n-1:Nat) Π (_ : mot n-1) (mot (add1 n-1)).
func NatStepType(mot Value) Value {
	return PiType(VNat{}, func(nMinus1 Value) Value {
		return PiType(doAp(mot, nMinus1), func(Value) Value {
			return doAp(mot, &VAdd1{N: nMinus1})
		})
	})
}

// RecNatStepType is rec-Nat's non-dependent step type: Nat -> T -> T.
func RecNatStepType(baseType Value) Value {
	return PiType(VNat{}, func(Value) Value { return PiType(baseType, func(Value) Value { return baseType }) })
}

// IterNatStepType is iter-Nat's step type: T -> T.
func IterNatStepType(baseType Value) Value {
	return PiType(baseType, func(Value) Value { return baseType })
}

// WhichNatStepType is which-Nat's step type: Nat -> T.
func WhichNatStepType(baseType Value) Value {
	return PiType(VNat{}, func(Value) Value { return baseType })
}

func doIndNat(tgt, mot, base, step Value) Value {
	switch t := Now(tgt).(type) {
	case VZero:
		return base
	case *VAdd1:
		return doAp(doAp(step, t.N), doIndNat(t.N, mot, base, step))
	case *Neutral:
		return &Neutral{
			Type: doAp(mot, tgt),
			Kind: &NIndNat{
				Target: t.Kind,
				Motive: Typed{Type: NatMotiveType(), Val: mot},
				Base:   Typed{Type: doAp(mot, VZero{}), Val: base},
				Step:   Typed{Type: NatStepType(mot), Val: step},
			},
		}
	default:
		panic(fmt.Sprintf("pie: do_ind_nat: not a Nat value: %s", tgt))
	}
}

func doRecNat(tgt, baseType, base, step Value) Value {
	switch t := Now(tgt).(type) {
	case VZero:
		return base
	case *VAdd1:
		return doAp(doAp(step, t.N), doRecNat(t.N, baseType, base, step))
	case *Neutral:
		return &Neutral{
			Type: baseType,
			Kind: &NRecNat{
				Target: t.Kind,
				Base:   Typed{Type: baseType, Val: base},
				Step:   Typed{Type: RecNatStepType(baseType), Val: step},
			},
		}
	default:
		panic(fmt.Sprintf("pie: do_rec_nat: not a Nat value: %s", tgt))
	}
}

func doIterNat(tgt, baseType, base, step Value) Value {
	switch t := Now(tgt).(type) {
	case VZero:
		return base
	case *VAdd1:
		return doAp(step, doIterNat(t.N, baseType, base, step))
	case *Neutral:
		return &Neutral{
			Type: baseType,
			Kind: &NIterNat{
				Target: t.Kind,
				Base:   Typed{Type: baseType, Val: base},
				Step:   Typed{Type: IterNatStepType(baseType), Val: step},
			},
		}
	default:
		panic(fmt.Sprintf("pie: do_iter_nat: not a Nat value: %s", tgt))
	}
}

// doWhichNat inspects exactly one layer: unlike rec-Nat/iter-Nat/ind-Nat it
// never recurses -- step is applied to the predecessor only, per spec
// scenario S4.
func doWhichNat(tgt, baseType, base, step Value) Value {
	switch t := Now(tgt).(type) {
	case VZero:
		return base
	case *VAdd1:
		return doAp(step, t.N)
	case *Neutral:
		return &Neutral{
			Type: baseType,
			Kind: &NWhichNat{
				Target: t.Kind,
				Base:   Typed{Type: baseType, Val: base},
				Step:   Typed{Type: WhichNatStepType(baseType), Val: step},
			},
		}
	default:
		panic(fmt.Sprintf("pie: do_which_nat: not a Nat value: %s", tgt))
	}
}

// ---- List eliminators ----

func doListLength(lst Value) Value {
	switch l := Now(lst).(type) {
	case VNil:
		return VZero{}
	case *VListCons:
		return &VAdd1{N: NewLaterValue(doListLength(l.Tail))}
	case *Neutral:
		return &Neutral{Type: VNat{}, Kind: &NListLength{Target: l.Kind}}
	default:
		panic(fmt.Sprintf("pie: length: not a List value: %s", lst))
	}
}

func ListStepType(elem, baseType Value) Value {
	return PiType(elem, func(Value) Value {
		return PiType(&VListT{Elem: elem}, func(Value) Value {
			return PiType(baseType, func(Value) Value { return baseType })
		})
	})
}

func doRecList(tgt, baseType, base, step Value) Value {
	switch t := Now(tgt).(type) {
	case VNil:
		return base
	case *VListCons:
		return doAp(doAp(doAp(step, t.Head), t.Tail), doRecList(t.Tail, baseType, base, step))
	case *Neutral:
		listT := Now(t.Type).(*VListT)
		return &Neutral{
			Type: baseType,
			Kind: &NRecList{
				Target: t.Kind,
				Base:   Typed{Type: baseType, Val: base},
				Step:   Typed{Type: ListStepType(listT.Elem, baseType), Val: step},
			},
		}
	default:
		panic(fmt.Sprintf("pie: do_rec_list: not a List value: %s", tgt))
	}
}

func ListMotiveType(elem Value) Value {
	return PiType(&VListT{Elem: elem}, func(Value) Value { return Universe{} })
}

func ListIndStepType(elem, mot Value) Value {
	return PiType(elem, func(h Value) Value {
		return PiType(&VListT{Elem: elem}, func(t Value) Value {
			return PiType(doAp(mot, t), func(Value) Value {
				return doAp(mot, &VListCons{Head: h, Tail: t})
			})
		})
	})
}

func doIndList(tgt, mot, base, step Value) Value {
	switch t := Now(tgt).(type) {
	case VNil:
		return base
	case *VListCons:
		return doAp(doAp(doAp(step, t.Head), t.Tail), doIndList(t.Tail, mot, base, step))
	case *Neutral:
		listT := Now(t.Type).(*VListT)
		return &Neutral{
			Type: doAp(mot, tgt),
			Kind: &NIndList{
				Target: t.Kind,
				Motive: Typed{Type: ListMotiveType(listT.Elem), Val: mot},
				Base:   Typed{Type: doAp(mot, VNil{}), Val: base},
				Step:   Typed{Type: ListIndStepType(listT.Elem, mot), Val: step},
			},
		}
	default:
		panic(fmt.Sprintf("pie: do_ind_list: not a List value: %s", tgt))
	}
}

// ---- Vec eliminators ----

func doHead(vec Value) Value {
	switch v := Now(vec).(type) {
	case *VVecCons:
		return v.Head
	case *Neutral:
		vecT := Now(v.Type).(*VVecT)
		return &Neutral{Type: vecT.Elem, Kind: &NHead{Target: v.Kind}}
	default:
		panic(fmt.Sprintf("pie: head: not a Vec value: %s", vec))
	}
}

func doTail(vec Value) Value {
	switch v := Now(vec).(type) {
	case *VVecCons:
		return v.Tail
	case *Neutral:
		vecT := Now(v.Type).(*VVecT)
		predLen := PredOf(vecT.Len)
		return &Neutral{Type: &VVecT{Elem: vecT.Elem, Len: predLen}, Kind: &NTail{Target: v.Kind}}
	default:
		panic(fmt.Sprintf("pie: tail: not a Vec value: %s", vec))
	}
}

// PredOf returns n-1 for a Vec length value known (from a well-typed
// program) to be add1 of something; head/tail are only ever checked
// against a Vec whose length is statically an add1.
func PredOf(n Value) Value {
	if a, ok := Now(n).(*VAdd1); ok {
		return a.N
	}
	panic("pie: internal: Vec length at head/tail is not add1 (checker invariant broken)")
}

func VecMotiveType(elem Value) Value {
	return PiType(VNat{}, func(k Value) Value {
		return PiType(&VVecT{Elem: elem, Len: k}, func(Value) Value { return Universe{} })
	})
}

func VecIndStepType(elem, mot Value) Value {
	return PiType(VNat{}, func(k Value) Value {
		return PiType(elem, func(h Value) Value {
			return PiType(&VVecT{Elem: elem, Len: k}, func(t Value) Value {
				return PiType(doAp(doAp(mot, k), t), func(Value) Value {
					return doAp(doAp(mot, &VAdd1{N: k}), &VVecCons{Head: h, Tail: t})
				})
			})
		})
	})
}

func doIndVec(length, tgt, mot, base, step Value) Value {
	switch t := Now(tgt).(type) {
	case VVecNil:
		return base
	case *VVecCons:
		pred := PredOf(length)
		return doAp(doAp(doAp(doAp(step, pred), t.Head), t.Tail), doIndVec(pred, t.Tail, mot, base, step))
	case *Neutral:
		vecT := Now(t.Type).(*VVecT)
		return &Neutral{
			Type: doAp(doAp(mot, length), tgt),
			Kind: &NIndVec{
				Len:    Typed{Type: VNat{}, Val: length},
				Target: t.Kind,
				Motive: Typed{Type: VecMotiveType(vecT.Elem), Val: mot},
				Base:   Typed{Type: doAp(doAp(mot, VZero{}), VVecNil{}), Val: base},
				Step:   Typed{Type: VecIndStepType(vecT.Elem, mot), Val: step},
			},
		}
	default:
		panic(fmt.Sprintf("pie: do_ind_vec: not a Vec value: %s", tgt))
	}
}

// ---- Either eliminator ----

func EitherMotiveType(l, r Value) Value {
	return PiType(&VEitherT{L: l, R: r}, func(Value) Value { return Universe{} })
}

func doIndEither(tgt, mot, baseL, baseR Value) Value {
	switch t := Now(tgt).(type) {
	case *VLeft:
		return doAp(baseL, t.Val)
	case *VRight:
		return doAp(baseR, t.Val)
	case *Neutral:
		either := Now(t.Type).(*VEitherT)
		baseLType := PiType(either.L, func(l Value) Value { return doAp(mot, &VLeft{Val: l}) })
		baseRType := PiType(either.R, func(r Value) Value { return doAp(mot, &VRight{Val: r}) })
		return &Neutral{
			Type: doAp(mot, tgt),
			Kind: &NIndEither{
				Target: t.Kind,
				Motive: Typed{Type: EitherMotiveType(either.L, either.R), Val: mot},
				BaseL:  Typed{Type: baseLType, Val: baseL},
				BaseR:  Typed{Type: baseRType, Val: baseR},
			},
		}
	default:
		panic(fmt.Sprintf("pie: do_ind_either: not an Either value: %s", tgt))
	}
}

// ---- Absurd eliminator ----

func doIndAbsurd(tgt, mot Value) Value {
	switch t := Now(tgt).(type) {
	case *Neutral:
		return &Neutral{Type: mot, Kind: &NIndAbsurd{Target: t.Kind, Motive: Typed{Type: Universe{}, Val: mot}}}
	default:
		panic(fmt.Sprintf("pie: do_ind_absurd: target is not neutral (an Absurd value can only ever be neutral): %s", tgt))
	}
}

// ---- Equality ----

// doCong rewrites (= A from to) along fun : A -> B into (= B (fun from) (fun to)).
func doCong(eq, fun Value) Value {
	switch e := Now(eq).(type) {
	case *VSame:
		return &VSame{Val: doAp(fun, e.Val)}
	case *Neutral:
		equalT := Now(e.Type).(*VEqual)
		funPi := Now(fun).(*VPi)
		bType := funPi.Body.Apply(equalT.From)
		return &Neutral{
			Type: &VEqual{Type: bType, From: doAp(fun, equalT.From), To: doAp(fun, equalT.To)},
			Kind: &NCong{Target: e.Kind, Fun: Typed{Type: funPi, Val: fun}},
		}
	default:
		panic(fmt.Sprintf("pie: cong: not an equality value: %s", eq))
	}
}

// doReplace rewrites base's type along target : (= A from to), producing a
// value of (mot to) from a value of (mot from).
func doReplace(target, mot, base Value) Value {
	switch t := Now(target).(type) {
	case *VSame:
		return base
	case *Neutral:
		equalT := Now(t.Type).(*VEqual)
		motiveType := PiType(equalT.Type, func(Value) Value { return Universe{} })
		return &Neutral{
			Type: doAp(mot, equalT.To),
			Kind: &NReplace{
				Target: t.Kind,
				Motive: Typed{Type: motiveType, Val: mot},
				Base:   Typed{Type: doAp(mot, equalT.From), Val: base},
			},
		}
	default:
		panic(fmt.Sprintf("pie: replace: not an equality value: %s", target))
	}
}

func doSymm(eq Value) Value {
	switch e := Now(eq).(type) {
	case *VSame:
		return e
	case *Neutral:
		equalT := Now(e.Type).(*VEqual)
		return &Neutral{
			Type: &VEqual{Type: equalT.Type, From: equalT.To, To: equalT.From},
			Kind: &NSymm{Target: e.Kind},
		}
	default:
		panic(fmt.Sprintf("pie: symm: not an equality value: %s", eq))
	}
}

// doTrans chains (= A from mid) and (= A mid to) into (= A from to). When
// either side is canonical (same v), mid is judgmentally equal to both of
// that side's endpoints, so the other side's value already has the right
// type and is returned unchanged -- only two neutral sides produce a new
// stuck spine.
func doTrans(eq1, eq2 Value) Value {
	v1, v2 := Now(eq1), Now(eq2)
	if _, ok := v1.(*VSame); ok {
		return v2
	}
	if _, ok := v2.(*VSame); ok {
		return v1
	}
	e1, ok1 := v1.(*Neutral)
	e2, ok2 := v2.(*Neutral)
	if !ok1 || !ok2 {
		panic(fmt.Sprintf("pie: trans: not equality values: %s, %s", eq1, eq2))
	}
	equalT1 := Now(e1.Type).(*VEqual)
	equalT2 := Now(e2.Type).(*VEqual)
	return &Neutral{
		Type: &VEqual{Type: equalT1.Type, From: equalT1.From, To: equalT2.To},
		Kind: &NTrans{Eq1: e1.Kind, Eq2: Typed{Type: equalT2, Val: eq2}},
	}
}

// NewLaterValue wraps an already-computed value so it satisfies call sites
// expecting a thunk-shaped argument (e.g. VAdd1.N); forcing it is free.
func NewLaterValue(v Value) Value {
	l := &Later{}
	l.value = v
	l.once.Do(func() {})
	return l
}
