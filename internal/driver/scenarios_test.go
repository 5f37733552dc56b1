package driver

import (
	"strings"
	"testing"

	"github.com/sunholo/pie/internal/checker"
	"github.com/sunholo/pie/internal/perrors"
	"github.com/sunholo/pie/internal/printer"
	"github.com/sunholo/pie/internal/value"
)

// TestScenarios runs every exact input/output pair from spec §8's
// scenario table (S1-S10).
func TestScenarios(t *testing.T) {
	t.Run("S1_check_atom_against_Atom", func(t *testing.T) {
		s := New()
		expr, err := parseOne("'atom", "s1")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := checker.Check(s.ctx, nil, expr, value.VAtom{}); err != nil {
			t.Errorf("check 'atom against Atom: %v", err)
		}
	})

	t.Run("S2_same_pair_equal", func(t *testing.T) {
		s := New()
		err := s.Same("(Pair Atom Atom)",
			"(cons 'ratatouille 'baguette)",
			"(cons 'ratatouille 'baguette)")
		if err != nil {
			t.Errorf("expected ok, got %v", err)
		}
	})

	t.Run("S3_same_pair_different", func(t *testing.T) {
		s := New()
		err := s.Same("(Pair Atom Atom)",
			"(cons 'ratatouille 'baguette)",
			"(cons 'baguette 'baguette)")
		requireKind(t, err, perrors.NotTheSame)
	})

	t.Run("S4_normalize_which_Nat", func(t *testing.T) {
		s := New()
		res, err := s.Normalize("(which-Nat 4 'naught (lambda (x) 'more))")
		if err != nil {
			t.Fatalf("normalize: %v", err)
		}
		if got := printer.Print(printer.Resugar(res.Expr)); got != "'more" {
			t.Errorf("value = %q, want 'more", got)
		}
		if got := printer.Print(printer.Resugar(res.Type)); got != "Atom" {
			t.Errorf("type = %q, want Atom", got)
		}
	})

	t.Run("S5_claim_define_same", func(t *testing.T) {
		s := New()
		if err := s.Claim("one", "Nat"); err != nil {
			t.Fatal(err)
		}
		if err := s.Define("one", "(add1 zero)"); err != nil {
			t.Fatal(err)
		}
		if err := s.Same("Nat", "one", "1"); err != nil {
			t.Errorf("same Nat one 1: %v", err)
		}
	})

	t.Run("S6_synth_U_has_no_type", func(t *testing.T) {
		s := New()
		_, err := s.Check("U")
		requireKind(t, err, perrors.UhasNoType)
	})

	t.Run("S7_normalize_iter_Nat", func(t *testing.T) {
		s := New()
		if err := s.Claim("+1", "(-> Nat Nat)"); err != nil {
			t.Fatal(err)
		}
		if err := s.Define("+1", "(lambda (n) (add1 n))"); err != nil {
			t.Fatal(err)
		}
		res, err := s.Normalize("(iter-Nat 5 3 +1)")
		if err != nil {
			t.Fatalf("normalize: %v", err)
		}
		if got := printer.Print(printer.Resugar(res.Expr)); got != "8" {
			t.Errorf("value = %q, want 8", got)
		}
	})

	t.Run("S8_check_lambda_star_elaborates", func(t *testing.T) {
		s := New()
		typeExpr, err := parseOne("(-> Nat Nat (Pair Nat Nat))", "s8-type")
		if err != nil {
			t.Fatal(err)
		}
		typeOut, err := checker.IsType(s.ctx, nil, typeExpr)
		if err != nil {
			t.Fatal(err)
		}
		tv := value.Eval(s.ctx.Env(), typeOut)
		expr, err := parseOne("(lambda (x y) (cons x x))", "s8-expr")
		if err != nil {
			t.Fatal(err)
		}
		exprOut, err := checker.Check(s.ctx, nil, expr, tv)
		if err != nil {
			t.Fatalf("check: %v", err)
		}
		// Elaborates to two nested unary lambdas, not LamStar: the n-ary
		// sugar never survives checking (invariant 1).
		if strings.Contains(exprOut.String(), "λ*") {
			t.Errorf("elaborated output still sugared: %s", exprOut)
		}
	})

	t.Run("S9_same_ackermann", func(t *testing.T) {
		s := New()
		mustAckermann(t, s)
		if err := s.Same("Nat", "(ackermann 3 2)", "29"); err != nil {
			t.Errorf("same Nat (ackermann 3 2) 29: %v", err)
		}
	})

	t.Run("S10_check_dependent_pair", func(t *testing.T) {
		s := New()
		typeExpr, err := parseOne("(Sigma (n Nat) (= Nat n 5))", "s10-type")
		if err != nil {
			t.Fatal(err)
		}
		typeOut, err := checker.IsType(s.ctx, nil, typeExpr)
		if err != nil {
			t.Fatal(err)
		}
		tv := value.Eval(s.ctx.Env(), typeOut)
		expr, err := parseOne("(cons 5 (same 5))", "s10-expr")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := checker.Check(s.ctx, nil, expr, tv); err != nil {
			t.Errorf("check: %v", err)
		}
	})
}

// mustAckermann claims and defines the two-argument Ackermann function via
// nested rec-Nat, the classic primitive-recursive encoding (The Little
// Typer, "Ackermann's function is not structurally recursive, but its
// nested use of rec-Nat is").
func mustAckermann(t *testing.T, s *Session) {
	t.Helper()
	if err := s.Claim("ackermann", "(-> Nat Nat Nat)"); err != nil {
		t.Fatal(err)
	}
	def := `(lambda (m)
	  (rec-Nat m
	    (the (-> Nat Nat) (lambda (n) (add1 n)))
	    (lambda (m-1 ack-m-1)
	      (the (-> Nat Nat)
	        (lambda (n)
	          (rec-Nat n
	            (ack-m-1 1)
	            (lambda (n-1 rec-val) (ack-m-1 rec-val))))))))`
	if err := s.Define("ackermann", def); err != nil {
		t.Fatal(err)
	}
}

func requireKind(t *testing.T, err error, kind perrors.Kind) {
	t.Helper()
	perr, ok := err.(*perrors.Error)
	if !ok {
		t.Fatalf("expected *perrors.Error with kind %s, got %v", kind, err)
	}
	if perr.Kind != kind {
		t.Errorf("expected kind %s, got %s (%v)", kind, perr.Kind, err)
	}
}
