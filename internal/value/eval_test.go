package value_test

import (
	"testing"

	"github.com/sunholo/pie/internal/checker"
	"github.com/sunholo/pie/internal/core"
	"github.com/sunholo/pie/internal/reader"
	"github.com/sunholo/pie/internal/value"
)

func parse(t *testing.T, src string) core.Expr {
	t.Helper()
	form, err := reader.ReadOne(reader.Normalize([]byte(src)), "test")
	if err != nil {
		t.Fatalf("read %q: %v", src, err)
	}
	e, err := reader.Parse(form)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return e
}

// TestEvalReadBackRoundTrip checks that evaluating a closed, already
// checked expression and reading it back at its type produces a normal
// form, exercising Eval/ReadBack together (NbE's core round trip).
func TestEvalReadBackRoundTrip(t *testing.T) {
	cases := []struct {
		typeSrc string
		exprSrc string
		want    string
	}{
		{"Nat", "(add1 (add1 zero))", "(add1 (add1 zero))"},
		{"Atom", "'ratatouille", "'ratatouille"},
		{"(Pair Nat Nat)", "(cons zero (add1 zero))", "(cons zero (add1 zero))"},
		{"(List Nat)", "(:: zero (:: (add1 zero) nil))", "(:: zero (:: (add1 zero) nil))"},
	}
	for _, c := range cases {
		t.Run(c.exprSrc, func(t *testing.T) {
			var ctx *value.Ctx
			typeOut, err := checker.IsType(ctx, nil, parse(t, c.typeSrc))
			if err != nil {
				t.Fatal(err)
			}
			tv := value.Eval(ctx.Env(), typeOut)
			exprOut, err := checker.Check(ctx, nil, parse(t, c.exprSrc), tv)
			if err != nil {
				t.Fatalf("check: %v", err)
			}
			v := value.Eval(ctx.Env(), exprOut)
			normal := value.ReadBack(ctx, tv, v)
			if got := normal.String(); got != c.want {
				t.Errorf("round trip = %q, want %q", got, c.want)
			}
		})
	}
}

// TestReadBackEtaExpandsFunctions checks that reading back a function
// value produces an eta-long lambda, not the raw closure body.
func TestReadBackEtaExpandsFunctions(t *testing.T) {
	var ctx *value.Ctx
	typeOut, err := checker.IsType(ctx, nil, parse(t, "(-> Nat Nat)"))
	if err != nil {
		t.Fatal(err)
	}
	tv := value.Eval(ctx.Env(), typeOut)
	exprOut, err := checker.Check(ctx, nil, parse(t, "(lambda (x) (add1 x))"), tv)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	v := value.Eval(ctx.Env(), exprOut)
	normal := value.ReadBack(ctx, tv, v)
	if got, want := normal.String(), "(λ (_) (add1 _))"; got != want {
		t.Errorf("normal form = %q, want %q", got, want)
	}
}
