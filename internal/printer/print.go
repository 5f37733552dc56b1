package printer

import (
	"fmt"
	"strings"

	"github.com/sunholo/pie/internal/core"
)

// Print renders e in the same ASCII surface syntax package reader accepts
// (lambda, Pi, ->, ...) rather than core.Expr's own String(), which uses
// the Unicode Π/λ/Σ spellings from the math notation. Callers that want a
// normal form shown the way a user would type it back in should Resugar
// first.
func Print(e core.Expr) string {
	var b strings.Builder
	write(&b, e)
	return b.String()
}

func write(b *strings.Builder, e core.Expr) {
	switch ex := e.(type) {
	case core.U:
		b.WriteString("U")
	case core.Nat:
		b.WriteString("Nat")
	case core.Zero:
		b.WriteString("zero")
	case core.AtomT:
		b.WriteString("Atom")
	case core.TrivialT:
		b.WriteString("Trivial")
	case core.Sole:
		b.WriteString("sole")
	case core.AbsurdT:
		b.WriteString("Absurd")
	case core.TODO:
		b.WriteString("TODO")
	case core.Nil:
		b.WriteString("nil")
	case core.VecNil:
		b.WriteString("vecnil")
	case *core.Var:
		b.WriteString(ex.Name.Name())
	case *core.Quote:
		b.WriteString("'" + ex.Sym.Name())

	case *core.Add1:
		if n, ok := asNumeral(ex); ok {
			fmt.Fprintf(b, "%d", n)
			return
		}
		paren(b, "add1", ex.N)
	case *core.The:
		parenN(b, "the", ex.Type, ex.Expr)

	case *core.Pi:
		b.WriteString("(Pi (")
		b.WriteString(ex.Name.Name())
		b.WriteByte(' ')
		write(b, ex.Arg)
		b.WriteString(") ")
		write(b, ex.Body)
		b.WriteByte(')')
	case *core.PiStar:
		b.WriteString("(Pi (")
		for i, bd := range ex.Binders {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte('(')
			b.WriteString(bd.Name.Name())
			b.WriteByte(' ')
			write(b, bd.Type)
			b.WriteByte(')')
		}
		b.WriteString(") ")
		write(b, ex.Result)
		b.WriteByte(')')
	case *core.FunStar:
		b.WriteString("(-> ")
		for _, a := range ex.Args {
			write(b, a)
			b.WriteByte(' ')
		}
		write(b, ex.Result)
		b.WriteByte(')')
	case *core.Lambda:
		b.WriteString("(lambda (")
		b.WriteString(ex.Name.Name())
		b.WriteString(") ")
		write(b, ex.Body)
		b.WriteByte(')')
	case *core.LamStar:
		b.WriteString("(lambda (")
		for i, n := range ex.Names {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(n.Name())
		}
		b.WriteString(") ")
		write(b, ex.Body)
		b.WriteByte(')')
	case *core.App:
		parenN(b, "", ex.Fun, ex.Arg)
	case *core.AppStar:
		b.WriteByte('(')
		write(b, ex.Fun)
		for _, a := range ex.Args {
			b.WriteByte(' ')
			write(b, a)
		}
		b.WriteByte(')')

	case *core.Sigma:
		b.WriteString("(Sigma (")
		b.WriteString(ex.Name.Name())
		b.WriteByte(' ')
		write(b, ex.Fst)
		b.WriteString(") ")
		write(b, ex.Snd)
		b.WriteByte(')')
	case *core.PairT:
		parenN(b, "Pair", ex.Fst, ex.Snd)
	case *core.Cons:
		parenN(b, "cons", ex.Fst, ex.Snd)
	case *core.Car:
		paren(b, "car", ex.Pair)
	case *core.Cdr:
		paren(b, "cdr", ex.Pair)

	case *core.ListT:
		paren(b, "List", ex.Elem)
	case *core.ListCons:
		parenN(b, "::", ex.Head, ex.Tail)
	case *core.ListLength:
		paren(b, "length", ex.List)
	case *core.RecList:
		parenN(b, "rec-List", ex.Target, ex.Base, ex.Step)
	case *core.RecListTyped:
		parenN(b, "rec-List", ex.Target, ex.Base, ex.Step)
	case *core.IndList:
		parenN(b, "ind-List", ex.Target, ex.Motive, ex.Base, ex.Step)

	case *core.VecT:
		parenN(b, "Vec", ex.Elem, ex.Len)
	case *core.VecCons:
		parenN(b, "vec::", ex.Head, ex.Tail)
	case *core.VecHead:
		paren(b, "head", ex.Vec)
	case *core.VecTail:
		paren(b, "tail", ex.Vec)
	case *core.IndVec:
		parenN(b, "ind-Vec", ex.Len, ex.Target, ex.Motive, ex.Base, ex.Step)

	case *core.EitherT:
		parenN(b, "Either", ex.L, ex.R)
	case *core.Left:
		paren(b, "left", ex.Val)
	case *core.Right:
		paren(b, "right", ex.Val)
	case *core.IndEither:
		parenN(b, "ind-Either", ex.Target, ex.Motive, ex.BaseL, ex.BaseR)

	case *core.EqualT:
		parenN(b, "=", ex.Type, ex.From, ex.To)
	case *core.Same:
		paren(b, "same", ex.Val)
	case *core.Cong:
		parenN(b, "cong", ex.Eq, ex.Fun)
	case *core.Replace:
		parenN(b, "replace", ex.Target, ex.Motive, ex.Base)
	case *core.Symm:
		paren(b, "symm", ex.Eq)
	case *core.Trans:
		parenN(b, "trans", ex.Eq1, ex.Eq2)
	case *core.IndAbsurd:
		parenN(b, "ind-Absurd", ex.Target, ex.Motive)

	case *core.WhichNat:
		parenN(b, "which-Nat", ex.Target, ex.Base, ex.Step)
	case *core.WhichNatTyped:
		parenN(b, "which-Nat", ex.Target, ex.Base, ex.Step)
	case *core.RecNat:
		parenN(b, "rec-Nat", ex.Target, ex.Base, ex.Step)
	case *core.RecNatTyped:
		parenN(b, "rec-Nat", ex.Target, ex.Base, ex.Step)
	case *core.IterNat:
		parenN(b, "iter-Nat", ex.Target, ex.Base, ex.Step)
	case *core.IterNatTyped:
		parenN(b, "iter-Nat", ex.Target, ex.Base, ex.Step)
	case *core.IndNat:
		parenN(b, "ind-Nat", ex.Target, ex.Motive, ex.Base, ex.Step)

	default:
		fmt.Fprintf(b, "%s", e)
	}
}

// asNumeral reports whether a chain of Add1 ending in Zero represents n,
// so literal naturals print back as digits instead of nested add1s.
func asNumeral(a *core.Add1) (int, bool) {
	n := 1
	cur := a.N
	for {
		switch c := cur.(type) {
		case core.Zero:
			return n, true
		case *core.Add1:
			n++
			cur = c.N
		default:
			return 0, false
		}
	}
}

func paren(b *strings.Builder, head string, e core.Expr) {
	b.WriteByte('(')
	b.WriteString(head)
	b.WriteByte(' ')
	write(b, e)
	b.WriteByte(')')
}

func parenN(b *strings.Builder, head string, es ...core.Expr) {
	b.WriteByte('(')
	if head != "" {
		b.WriteString(head)
	} else {
		write(b, es[0])
		es = es[1:]
	}
	for _, e := range es {
		b.WriteByte(' ')
		write(b, e)
	}
	b.WriteByte(')')
}
