package driver

import (
	"strings"
	"testing"
)

// TestInvariantElaborationClosesSugar checks invariant 1: a successful
// synth never leaves a sugared constructor (->, Pi*, lambda*, n-ary
// application) in its elaborated term.
func TestInvariantElaborationClosesSugar(t *testing.T) {
	s := New()
	if err := s.Claim("add3", "(-> Nat Nat Nat Nat)"); err != nil {
		t.Fatal(err)
	}
	if err := s.Define("add3", "(lambda (a b c) (add1 (add1 (add1 a))))"); err != nil {
		t.Fatal(err)
	}
	res, err := s.Check("(add3 zero zero zero)")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	for _, sugar := range []string{"->", "Π*", "λ*"} {
		if strings.Contains(res.Expr.String(), sugar) || strings.Contains(res.Type.String(), sugar) {
			t.Errorf("elaborated result still contains sugar %q: %s : %s", sugar, res.Expr, res.Type)
		}
	}
}

// TestInvariantReadBackTypeCorrect checks invariant 2: re-synthesizing a
// read-back term yields a type alpha-equivalent to read-back-type of the
// original type value.
func TestInvariantReadBackTypeCorrect(t *testing.T) {
	s := New()
	res, err := s.Normalize("(the Nat (add1 (add1 zero)))")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	again, err := s.Check(res.Expr.String())
	if err != nil {
		t.Fatalf("re-check normalized output: %v", err)
	}
	if again.Type.String() != res.Type.String() {
		t.Errorf("re-synth type = %s, want %s", again.Type, res.Type)
	}
}

// TestInvariantAlphaInvariance checks invariant 3: renaming a bound
// variable in the input never changes the synthesized result modulo
// alpha-equivalence (both print identically since read-back names the
// binders from the type, not the source).
func TestInvariantAlphaInvariance(t *testing.T) {
	s1, s2 := New(), New()
	r1, err := s1.Check("(the (-> Nat Nat) (lambda (x) (add1 x)))")
	if err != nil {
		t.Fatal(err)
	}
	r2, err := s2.Check("(the (-> Nat Nat) (lambda (y) (add1 y)))")
	if err != nil {
		t.Fatal(err)
	}
	if r1.Expr.String() != r2.Expr.String() {
		t.Errorf("renaming the bound variable changed the normal form: %s vs %s", r1.Expr, r2.Expr)
	}
	if r1.Type.String() != r2.Type.String() {
		t.Errorf("renaming the bound variable changed the synthesized type: %s vs %s", r1.Type, r2.Type)
	}
}

// TestInvariantIdempotentNormalization checks invariant 4: normalizing an
// already-normal term is a no-op.
func TestInvariantIdempotentNormalization(t *testing.T) {
	s := New()
	res, err := s.Normalize("(the (List Nat) (:: zero (:: (add1 zero) nil)))")
	if err != nil {
		t.Fatal(err)
	}
	again, err := s.Check(res.Expr.String())
	if err != nil {
		t.Fatalf("re-normalize: %v", err)
	}
	if again.Expr.String() != res.Expr.String() {
		t.Errorf("normalization is not idempotent: %s then %s", res.Expr, again.Expr)
	}
}

// TestInvariantSameIsCongruenceRelation checks invariant 5: same is
// reflexive and transitive (hence, combined with symmetry of equal
// checks, an equivalence relation) over Nat.
func TestInvariantSameIsCongruenceRelation(t *testing.T) {
	s := New()
	if err := s.Same("Nat", "(add1 zero)", "(add1 zero)"); err != nil {
		t.Errorf("reflexivity: same(a,a) failed: %v", err)
	}
	if err := s.Same("Nat", "(add1 (add1 zero))", "2"); err != nil {
		t.Errorf("same(a,b) failed: %v", err)
	}
	if err := s.Same("Nat", "2", "(add1 (add1 zero))"); err != nil {
		t.Errorf("same(b,c) failed: %v", err)
	}
	if err := s.Same("Nat", "(add1 (add1 zero))", "(add1 (add1 zero))"); err != nil {
		t.Errorf("transitivity: same(a,c) failed: %v", err)
	}
}

// TestInvariantEtaForFunctions checks invariant 6.
func TestInvariantEtaForFunctions(t *testing.T) {
	s := New()
	if err := s.Claim("double", "(-> Nat Nat)"); err != nil {
		t.Fatal(err)
	}
	if err := s.Define("double", "(lambda (n) (iter-Nat n zero (lambda (r) (add1 (add1 r)))))"); err != nil {
		t.Fatal(err)
	}
	err := s.Same("(-> Nat Nat)", "double", "(lambda (x) (double x))")
	if err != nil {
		t.Errorf("eta for functions: %v", err)
	}
}

// TestInvariantEtaForPairs checks invariant 7.
func TestInvariantEtaForPairs(t *testing.T) {
	s := New()
	if err := s.Claim("p", "(Pair Nat Nat)"); err != nil {
		t.Fatal(err)
	}
	if err := s.Define("p", "(cons zero (add1 zero))"); err != nil {
		t.Fatal(err)
	}
	err := s.Same("(Pair Nat Nat)", "p", "(cons (car p) (cdr p))")
	if err != nil {
		t.Errorf("eta for pairs: %v", err)
	}
}

// TestInvariantCarCdrOfCons checks invariant 8.
func TestInvariantCarCdrOfCons(t *testing.T) {
	s := New()
	if err := s.Same("Nat", "(car (cons zero (add1 zero)))", "zero"); err != nil {
		t.Errorf("car of cons: %v", err)
	}
	if err := s.Same("Nat", "(cdr (cons zero (add1 zero)))", "(add1 zero)"); err != nil {
		t.Errorf("cdr of cons: %v", err)
	}
}

// TestInvariantEliminatorComputation checks invariant 9 for Nat and List.
func TestInvariantEliminatorComputation(t *testing.T) {
	s := New()
	if err := s.Same("Atom",
		"(rec-Nat zero 'base (lambda (n-1 almost) 'step))",
		"'base"); err != nil {
		t.Errorf("rec-Nat zero computes to base: %v", err)
	}
	if err := s.Same("Atom",
		"(rec-Nat (add1 zero) 'base (lambda (n-1 almost) 'step))",
		"'step"); err != nil {
		t.Errorf("rec-Nat (add1 n) computes to step: %v", err)
	}
	if err := s.Same("Atom",
		"(rec-List (the (List Nat) nil) 'base (lambda (h t almost) 'step))",
		"'base"); err != nil {
		t.Errorf("rec-List nil computes to base: %v", err)
	}
	if err := s.Same("Atom",
		"(rec-List (:: zero nil) 'base (lambda (h t almost) 'step))",
		"'step"); err != nil {
		t.Errorf("rec-List cons computes to step: %v", err)
	}
}

// TestInvariantAbsurdElimination checks invariant 10: ind-Absurd succeeds
// against any target of type Absurd and any motive of type U, and fails
// for the motive U, which is not itself of type U. Both functions below
// are only ever applicable to an impossible argument, so neither can be
// invoked to actually observe a result -- the test checks that they
// elaborate, which is all well-typedness of a function out of Absurd can
// mean.
func TestInvariantAbsurdElimination(t *testing.T) {
	s1, s2 := New(), New()
	if err := s1.Claim("to-atom", "(-> Absurd Atom)"); err != nil {
		t.Fatal(err)
	}
	if err := s1.Define("to-atom", "(lambda (x) (ind-Absurd x Atom))"); err != nil {
		t.Errorf("ind-Absurd against motive Atom: %v", err)
	}

	if err := s2.Claim("to-nat", "(-> Absurd Nat)"); err != nil {
		t.Fatal(err)
	}
	if err := s2.Define("to-nat", "(lambda (x) (ind-Absurd x Nat))"); err != nil {
		t.Errorf("ind-Absurd against motive Nat: %v", err)
	}

	if _, err := s1.Check("(the (-> Absurd Nat) (lambda (x) (ind-Absurd x U)))"); err == nil {
		t.Errorf("expected ind-Absurd with motive U (not of type U) to fail")
	}
}
