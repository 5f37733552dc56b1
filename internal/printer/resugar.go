// Package printer turns elaborated core.Expr trees back into readable
// surface text: bottom-up resugaring (spec §4.4, "resugar") followed by
// printing in the same ASCII surface syntax package reader accepts, so a
// value normalized by the driver can be pasted back in.
package printer

import (
	"github.com/sunholo/pie/internal/core"
	"github.com/sunholo/pie/internal/symbol"
)

// Resugar folds nested Π/λ/-> chains into their n-ary sugar wherever the
// bound variable doesn't occur free in the body (for Π, which lets it
// become -> instead of Π*), walking bottom-up as spec §4.4 describes.
// Every other construct is rebuilt with its children resugared in turn.
func Resugar(e core.Expr) core.Expr {
	switch ex := e.(type) {
	case *core.Pi:
		return resugarPi(ex)
	case *core.Lambda:
		return resugarLambda(ex)
	case *core.App:
		return resugarApp(ex)

	case core.U, core.Nat, core.Zero, core.AtomT, core.TrivialT, core.Sole,
		core.AbsurdT, core.TODO, core.Nil, core.VecNil:
		return e
	case *core.Var, *core.Quote:
		return e

	case *core.Add1:
		return &core.Add1{N: Resugar(ex.N)}
	case *core.The:
		return &core.The{Type: Resugar(ex.Type), Expr: Resugar(ex.Expr)}

	case *core.Sigma:
		return &core.Sigma{Name: ex.Name, Fst: Resugar(ex.Fst), Snd: Resugar(ex.Snd)}
	case *core.Cons:
		return &core.Cons{Fst: Resugar(ex.Fst), Snd: Resugar(ex.Snd)}
	case *core.Car:
		return &core.Car{Pair: Resugar(ex.Pair)}
	case *core.Cdr:
		return &core.Cdr{Pair: Resugar(ex.Pair)}

	case *core.ListT:
		return &core.ListT{Elem: Resugar(ex.Elem)}
	case *core.ListCons:
		return &core.ListCons{Head: Resugar(ex.Head), Tail: Resugar(ex.Tail)}
	case *core.ListLength:
		return &core.ListLength{List: Resugar(ex.List)}
	case *core.RecList:
		return &core.RecList{Target: Resugar(ex.Target), Base: Resugar(ex.Base), Step: Resugar(ex.Step)}
	case *core.RecListTyped:
		return &core.RecList{Target: Resugar(ex.Target), Base: Resugar(ex.Base), Step: Resugar(ex.Step)}
	case *core.IndList:
		return &core.IndList{Target: Resugar(ex.Target), Motive: Resugar(ex.Motive), Base: Resugar(ex.Base), Step: Resugar(ex.Step)}

	case *core.VecT:
		return &core.VecT{Elem: Resugar(ex.Elem), Len: Resugar(ex.Len)}
	case *core.VecCons:
		return &core.VecCons{Head: Resugar(ex.Head), Tail: Resugar(ex.Tail)}
	case *core.VecHead:
		return &core.VecHead{Vec: Resugar(ex.Vec)}
	case *core.VecTail:
		return &core.VecTail{Vec: Resugar(ex.Vec)}
	case *core.IndVec:
		return &core.IndVec{Len: Resugar(ex.Len), Target: Resugar(ex.Target), Motive: Resugar(ex.Motive), Base: Resugar(ex.Base), Step: Resugar(ex.Step)}

	case *core.EitherT:
		return &core.EitherT{L: Resugar(ex.L), R: Resugar(ex.R)}
	case *core.Left:
		return &core.Left{Val: Resugar(ex.Val)}
	case *core.Right:
		return &core.Right{Val: Resugar(ex.Val)}
	case *core.IndEither:
		return &core.IndEither{Target: Resugar(ex.Target), Motive: Resugar(ex.Motive), BaseL: Resugar(ex.BaseL), BaseR: Resugar(ex.BaseR)}

	case *core.EqualT:
		return &core.EqualT{Type: Resugar(ex.Type), From: Resugar(ex.From), To: Resugar(ex.To)}
	case *core.Same:
		return &core.Same{Val: Resugar(ex.Val)}
	case *core.Cong:
		return &core.Cong{Eq: Resugar(ex.Eq), Fun: Resugar(ex.Fun)}
	case *core.Replace:
		return &core.Replace{Target: Resugar(ex.Target), Motive: Resugar(ex.Motive), Base: Resugar(ex.Base)}
	case *core.Symm:
		return &core.Symm{Eq: Resugar(ex.Eq)}
	case *core.Trans:
		return &core.Trans{Eq1: Resugar(ex.Eq1), Eq2: Resugar(ex.Eq2)}
	case *core.IndAbsurd:
		return &core.IndAbsurd{Target: Resugar(ex.Target), Motive: Resugar(ex.Motive)}

	case *core.WhichNat:
		return &core.WhichNat{Target: Resugar(ex.Target), Base: Resugar(ex.Base), Step: Resugar(ex.Step)}
	case *core.WhichNatTyped:
		return &core.WhichNat{Target: Resugar(ex.Target), Base: Resugar(ex.Base), Step: Resugar(ex.Step)}
	case *core.RecNat:
		return &core.RecNat{Target: Resugar(ex.Target), Base: Resugar(ex.Base), Step: Resugar(ex.Step)}
	case *core.RecNatTyped:
		return &core.RecNat{Target: Resugar(ex.Target), Base: Resugar(ex.Base), Step: Resugar(ex.Step)}
	case *core.IterNat:
		return &core.IterNat{Target: Resugar(ex.Target), Base: Resugar(ex.Base), Step: Resugar(ex.Step)}
	case *core.IterNatTyped:
		return &core.IterNat{Target: Resugar(ex.Target), Base: Resugar(ex.Base), Step: Resugar(ex.Step)}
	case *core.IndNat:
		return &core.IndNat{Target: Resugar(ex.Target), Motive: Resugar(ex.Motive), Base: Resugar(ex.Base), Step: Resugar(ex.Step)}

	default:
		return e
	}
}

// resugarPi folds a chain of nested Π into Π* when at least one link is
// dependent (the binder occurs free downstream), or into -> when none of
// the chain's binders occur free in what follows -- the fully
// non-dependent case. A later link that rebinds the same name shadows it,
// so nothing past that link counts as a use.
func resugarPi(p *core.Pi) core.Expr {
	var binders []core.Binder
	var args []core.Expr
	allNonDependent := true
	cur := core.Expr(p)
	for {
		pi, ok := cur.(*core.Pi)
		if !ok {
			break
		}
		arg := Resugar(pi.Arg)
		for rest := pi.Body; ; {
			inner, ok := rest.(*core.Pi)
			if !ok || inner.Arg.OccurringNames().Has(pi.Name) {
				if rest.OccurringNames().Has(pi.Name) {
					allNonDependent = false
				}
				break
			}
			if inner.Name.Eq(pi.Name) {
				break
			}
			rest = inner.Body
		}
		binders = append(binders, core.Binder{Name: pi.Name, Type: arg})
		args = append(args, arg)
		cur = pi.Body
	}
	result := Resugar(cur)
	if len(binders) == 1 {
		if allNonDependent {
			return &core.FunStar{Args: args, Result: result}
		}
		return &core.Pi{Name: binders[0].Name, Arg: binders[0].Type, Body: result}
	}
	if allNonDependent {
		return &core.FunStar{Args: args, Result: result}
	}
	return &core.PiStar{Binders: binders, Result: result}
}

func resugarLambda(l *core.Lambda) core.Expr {
	var collected []*core.Lambda
	cur := core.Expr(l)
	for {
		lam, ok := cur.(*core.Lambda)
		if !ok {
			break
		}
		collected = append(collected, lam)
		cur = lam.Body
	}
	body := Resugar(cur)
	if len(collected) == 1 {
		return &core.Lambda{Name: collected[0].Name, Body: body}
	}
	names := make([]*symbol.Symbol, len(collected))
	for i, lam := range collected {
		names[i] = lam.Name
	}
	return &core.LamStar{Names: names, Body: body}
}

func resugarApp(a *core.App) core.Expr {
	var args []core.Expr
	cur := core.Expr(a)
	for {
		app, ok := cur.(*core.App)
		if !ok {
			break
		}
		args = append([]core.Expr{Resugar(app.Arg)}, args...)
		cur = app.Fun
	}
	fun := Resugar(cur)
	if len(args) == 1 {
		return &core.App{Fun: fun, Arg: args[0]}
	}
	return &core.AppStar{Fun: fun, Args: args}
}
