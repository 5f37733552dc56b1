package checker_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sunholo/pie/internal/checker"
	"github.com/sunholo/pie/internal/core"
	"github.com/sunholo/pie/internal/perrors"
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

// TestIsTypeAcceptsEveryBaseType checks invariant 2 ("every base type
// elaborates to itself") across the non-dependent type formers.
func TestIsTypeAcceptsEveryBaseType(t *testing.T) {
	cases := []string{"U", "Nat", "Atom", "Trivial", "Absurd",
		"(List Nat)", "(Vec Atom zero)", "(Either Nat Atom)",
		"(= Nat zero zero)", "(Pi (n Nat) Nat)", "(Sigma (n Nat) Nat)"}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			var ctx *value.Ctx
			e := parse(t, src)
			out, err := checker.IsType(ctx, nil, e)
			if err != nil {
				t.Fatalf("IsType(%s): %v", src, err)
			}
			if diff := cmp.Diff(e.String(), out.String()); diff != "" {
				t.Errorf("IsType(%s) changed shape (-parsed +elaborated):\n%s", src, diff)
			}
		})
	}
}

// TestCheckLambdaStarElaboratesToNestedLambda mirrors spec scenario S8:
// an n-ary lambda checked against an n-ary Pi elaborates to nested unary
// core.Lambda nodes, never a surviving LamStar (invariant 1).
func TestCheckLambdaStarElaboratesToNestedLambda(t *testing.T) {
	var ctx *value.Ctx
	typeExpr := parse(t, "(-> Nat Nat (Pair Nat Nat))")
	typeOut, err := checker.IsType(ctx, nil, typeExpr)
	if err != nil {
		t.Fatal(err)
	}
	tv := value.Eval(ctx.Env(), typeOut)
	expr := parse(t, "(lambda (x y) (cons x x))")
	out, err := checker.Check(ctx, nil, expr, tv)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if _, ok := out.(*core.LamStar); ok {
		t.Errorf("elaborated output is still a LamStar: %s", out)
	}
	if _, ok := out.(*core.Lambda); !ok {
		t.Errorf("elaborated output is not a nested Lambda: %T %s", out, out)
	}
}

func TestCheckRejectsMismatchedType(t *testing.T) {
	var ctx *value.Ctx
	expr := parse(t, "'atom")
	_, err := checker.Check(ctx, nil, expr, value.VNat{})
	if err == nil {
		t.Fatal("expected a type error checking 'atom against Nat")
	}
	perr, ok := err.(*perrors.Error)
	if !ok {
		t.Fatalf("expected *perrors.Error, got %T", err)
	}
	if perr.Kind != perrors.WrongType {
		t.Errorf("kind = %s, want WrongType", perr.Kind)
	}
}

func TestSynthUHasNoType(t *testing.T) {
	var ctx *value.Ctx
	_, _, err := checker.Synth(ctx, nil, core.U{})
	perr, ok := err.(*perrors.Error)
	if !ok || perr.Kind != perrors.UhasNoType {
		t.Fatalf("expected UhasNoType, got %v", err)
	}
}

func TestSynthUnknownName(t *testing.T) {
	var ctx *value.Ctx
	expr := parse(t, "nonexistent")
	_, _, err := checker.Synth(ctx, nil, expr)
	perr, ok := err.(*perrors.Error)
	if !ok || perr.Kind != perrors.UnknownName {
		t.Fatalf("expected UnknownName, got %v", err)
	}
}

func TestQuoteRejectsInvalidAtom(t *testing.T) {
	var ctx *value.Ctx
	expr := parse(t, "'Not-Valid")
	_, _, err := checker.Synth(ctx, nil, expr)
	perr, ok := err.(*perrors.Error)
	if !ok || perr.Kind != perrors.InvalidAtom {
		t.Fatalf("expected InvalidAtom, got %v", err)
	}
}

// TestConvertAndSameType exercise invariant: two alpha-equivalent normal
// forms at the same type convert; differing normal forms don't.
func TestConvertAndSameType(t *testing.T) {
	var ctx *value.Ctx
	a := value.VZero{}
	b := value.VZero{}
	if err := checker.Convert(ctx, value.VNat{}, a, b); err != nil {
		t.Errorf("zero convert zero: %v", err)
	}
	c := &value.VAdd1{N: value.VZero{}}
	if err := checker.Convert(ctx, value.VNat{}, a, c); err == nil {
		t.Errorf("expected zero and (add1 zero) to differ")
	}
	if err := checker.SameType(ctx, value.VNat{}, value.VNat{}); err != nil {
		t.Errorf("Nat same-type Nat: %v", err)
	}
	if err := checker.SameType(ctx, value.VNat{}, value.VAtom{}); err == nil {
		t.Errorf("expected Nat and Atom to differ")
	}
}

func TestCheckVecNilRequiresZeroLength(t *testing.T) {
	var ctx *value.Ctx
	tv := &value.VVecT{Elem: value.VAtom{}, Len: &value.VAdd1{N: value.VZero{}}}
	_, err := checker.Check(ctx, nil, core.VecNil{}, tv)
	if err == nil {
		t.Fatal("expected vecnil to fail against a length-1 Vec type")
	}
}

func TestCheckConsAgainstSigma(t *testing.T) {
	var ctx *value.Ctx
	typeExpr := parse(t, "(Sigma (n Nat) (= Nat n zero))")
	typeOut, err := checker.IsType(ctx, nil, typeExpr)
	if err != nil {
		t.Fatal(err)
	}
	tv := value.Eval(ctx.Env(), typeOut)
	expr := parse(t, "(cons zero (same zero))")
	if _, err := checker.Check(ctx, nil, expr, tv); err != nil {
		t.Errorf("check dependent pair: %v", err)
	}
}
