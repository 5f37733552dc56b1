package value

import (
	"fmt"

	"github.com/sunholo/pie/internal/core"
)

func init() {
	EvalHook = Eval
}

// Eval evaluates a core expression to a value under environment env. It
// panics if handed a sugared construct (PiStar, FunStar, LamStar, AppStar,
// Pair, or an untyped eliminator) -- per spec Invariant 2, those must never
// survive elaboration, so reaching Eval on one is an internal bug, not a
// user error.
func Eval(env *Env, expr core.Expr) Value {
	switch e := expr.(type) {
	case core.U:
		return Universe{}
	case core.Nat:
		return VNat{}
	case core.Zero:
		return VZero{}
	case *core.Add1:
		return &VAdd1{N: NewLater(env, e.N)}
	case core.AtomT:
		return VAtom{}
	case *core.Quote:
		return &VQuote{Sym: e.Sym}
	case core.TrivialT:
		return VTrivial{}
	case core.Sole:
		return VSole{}
	case core.AbsurdT:
		return VAbsurd{}
	case core.TODO:
		panic("pie: attempt to evaluate an unelaborated TODO placeholder")
	case *core.Var:
		v, ok := env.Lookup(e.Name)
		if !ok {
			panic(fmt.Sprintf("pie: unbound variable %q reached Eval (checker invariant broken)", e.Name.Name()))
		}
		return v
	case *core.The:
		return Eval(env, e.Expr)
	case *core.Pi:
		return &VPi{ArgName: e.Name, ArgType: NewLater(env, e.Arg), Body: FirstOrder(env, e.Name, e.Body)}
	case *core.Lambda:
		return &VLambda{ArgName: e.Name, Body: FirstOrder(env, e.Name, e.Body)}
	case *core.App:
		return doAp(Eval(env, e.Fun), NewLater(env, e.Arg))
	case *core.Sigma:
		return &VSigma{ArgName: e.Name, ArgType: NewLater(env, e.Fst), Body: FirstOrder(env, e.Name, e.Snd)}
	case *core.Cons:
		return &VCons{Fst: NewLater(env, e.Fst), Snd: NewLater(env, e.Snd)}
	case *core.Car:
		return doCar(Eval(env, e.Pair))
	case *core.Cdr:
		return doCdr(Eval(env, e.Pair))
	case *core.ListT:
		return &VListT{Elem: NewLater(env, e.Elem)}
	case core.Nil:
		return VNil{}
	case *core.ListCons:
		return &VListCons{Head: NewLater(env, e.Head), Tail: NewLater(env, e.Tail)}
	case *core.ListLength:
		return doListLength(Eval(env, e.List))
	case *core.RecListTyped:
		return doRecList(Eval(env, e.Target), Eval(env, e.BaseType), Eval(env, e.Base), Eval(env, e.Step))
	case *core.IndList:
		return doIndList(Eval(env, e.Target), Eval(env, e.Motive), Eval(env, e.Base), Eval(env, e.Step))
	case *core.VecT:
		return &VVecT{Elem: NewLater(env, e.Elem), Len: NewLater(env, e.Len)}
	case core.VecNil:
		return VVecNil{}
	case *core.VecCons:
		return &VVecCons{Head: NewLater(env, e.Head), Tail: NewLater(env, e.Tail)}
	case *core.VecHead:
		return doHead(Eval(env, e.Vec))
	case *core.VecTail:
		return doTail(Eval(env, e.Vec))
	case *core.IndVec:
		return doIndVec(Eval(env, e.Len), Eval(env, e.Target), Eval(env, e.Motive), Eval(env, e.Base), Eval(env, e.Step))
	case *core.EitherT:
		return &VEitherT{L: NewLater(env, e.L), R: NewLater(env, e.R)}
	case *core.Left:
		return &VLeft{Val: NewLater(env, e.Val)}
	case *core.Right:
		return &VRight{Val: NewLater(env, e.Val)}
	case *core.IndEither:
		return doIndEither(Eval(env, e.Target), Eval(env, e.Motive), Eval(env, e.BaseL), Eval(env, e.BaseR))
	case *core.EqualT:
		return &VEqual{Type: NewLater(env, e.Type), From: NewLater(env, e.From), To: NewLater(env, e.To)}
	case *core.Same:
		return &VSame{Val: NewLater(env, e.Val)}
	case *core.Cong:
		return doCong(Eval(env, e.Eq), Eval(env, e.Fun))
	case *core.Replace:
		return doReplace(Eval(env, e.Target), Eval(env, e.Motive), Eval(env, e.Base))
	case *core.Symm:
		return doSymm(Eval(env, e.Eq))
	case *core.Trans:
		return doTrans(Eval(env, e.Eq1), Eval(env, e.Eq2))
	case *core.IndAbsurd:
		return doIndAbsurd(Eval(env, e.Target), Eval(env, e.Motive))
	case *core.WhichNatTyped:
		return doWhichNat(Eval(env, e.Target), Eval(env, e.BaseType), Eval(env, e.Base), Eval(env, e.Step))
	case *core.RecNatTyped:
		return doRecNat(Eval(env, e.Target), Eval(env, e.BaseType), Eval(env, e.Base), Eval(env, e.Step))
	case *core.IterNatTyped:
		return doIterNat(Eval(env, e.Target), Eval(env, e.BaseType), Eval(env, e.Base), Eval(env, e.Step))
	case *core.IndNat:
		return doIndNat(Eval(env, e.Target), Eval(env, e.Motive), Eval(env, e.Base), Eval(env, e.Step))
	case *core.PiStar, *core.FunStar, *core.LamStar, *core.AppStar,
		*core.PairT, *core.WhichNat, *core.RecNat, *core.IterNat, *core.RecList:
		panic(fmt.Sprintf("pie: attempt to evaluate sugared construct %T (should have been desugared by the checker)", e))
	default:
		panic(fmt.Sprintf("pie: Eval: unhandled core expression %T", e))
	}
}
