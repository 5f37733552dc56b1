package printer

import (
	"testing"

	"github.com/sunholo/pie/internal/core"
	"github.com/sunholo/pie/internal/symbol"
)

func TestPrintNumeral(t *testing.T) {
	var e core.Expr = core.Zero{}
	for i := 0; i < 3; i++ {
		e = &core.Add1{N: e}
	}
	if got, want := Print(e), "3"; got != want {
		t.Errorf("Print(3 as add1 chain) = %q, want %q", got, want)
	}
}

func TestResugarFunStar(t *testing.T) {
	x := symbol.Intern("_")
	y := symbol.Intern("_")
	e := &core.Pi{Name: x, Arg: core.Nat{}, Body: &core.Pi{Name: y, Arg: core.Nat{}, Body: core.Nat{}}}
	got := Print(Resugar(e))
	want := "(-> Nat Nat Nat)"
	if got != want {
		t.Errorf("Resugar+Print = %q, want %q", got, want)
	}
}

func TestResugarKeepsDependentPi(t *testing.T) {
	n := symbol.Intern("n")
	e := &core.Pi{Name: n, Arg: core.Nat{}, Body: &core.VecT{Elem: core.AtomT{}, Len: &core.Var{Name: n}}}
	got := Print(Resugar(e))
	want := "(Pi (n Nat) (Vec Atom n))"
	if got != want {
		t.Errorf("Resugar+Print = %q, want %q", got, want)
	}
}

func TestResugarAppStar(t *testing.T) {
	f := &core.Var{Name: symbol.Intern("f")}
	a := &core.Var{Name: symbol.Intern("a")}
	bb := &core.Var{Name: symbol.Intern("b")}
	e := &core.App{Fun: &core.App{Fun: f, Arg: a}, Arg: bb}
	got := Print(Resugar(e))
	want := "(f a b)"
	if got != want {
		t.Errorf("Resugar+Print = %q, want %q", got, want)
	}
}
