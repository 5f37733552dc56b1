package checker

import (
	"github.com/sunholo/pie/internal/core"
	"github.com/sunholo/pie/internal/symbol"
)

var placeholderSym = symbol.Intern("_")

// desugarPiStar expands the n-ary (Π* ((x A) (y B)) Result) sugar into
// nested binary Pi nodes, right-associating over the binder list.
func desugarPiStar(p *core.PiStar) core.Expr {
	result := p.Result
	for i := len(p.Binders) - 1; i >= 0; i-- {
		b := p.Binders[i]
		result = &core.Pi{Name: b.Name, Arg: b.Type, Body: result}
	}
	return result
}

// desugarFunStar expands the non-dependent (-> A B Result) sugar into
// nested Pi nodes with an unused binder name, since no argument can occur
// free in a later one.
func desugarFunStar(f *core.FunStar) core.Expr {
	result := f.Result
	for i := len(f.Args) - 1; i >= 0; i-- {
		result = &core.Pi{Name: placeholderSym, Arg: f.Args[i], Body: result}
	}
	return result
}

// desugarLamStar expands the n-ary (λ (x y z) Body) sugar into nested
// single-argument Lambda nodes.
func desugarLamStar(l *core.LamStar) core.Expr {
	result := l.Body
	for i := len(l.Names) - 1; i >= 0; i-- {
		result = &core.Lambda{Name: l.Names[i], Body: result}
	}
	return result
}

// desugarPairT expands the non-dependent (Pair A D) sugar into a Sigma
// with an unused binder name.
func desugarPairT(p *core.PairT) core.Expr {
	return &core.Sigma{Name: placeholderSym, Fst: p.Fst, Snd: p.Snd}
}

// desugarAppStar expands n-ary application (f a b c) into nested binary
// App nodes, left-associating.
func desugarAppStar(a *core.AppStar) core.Expr {
	result := a.Fun
	for _, arg := range a.Args {
		result = &core.App{Fun: result, Arg: arg}
	}
	return result
}
