package repl

import (
	"bytes"
	"strings"
	"testing"
)

func TestNeedsMore(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"(add1 zero)", false},
		{"(add1", true},
		{"(cons 'a (cons 'b nil))", false},
		{"(cons 'a ; trailing comment (\n(cons 'b nil))", false},
		{"()", false},
		{")", false},
	}
	for _, c := range cases {
		if got := needsMore(c.in); got != c.want {
			t.Errorf("needsMore(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPeelClaimAndDefine(t *testing.T) {
	name, typeSrc, ok := asClaim("(claim one Nat)")
	if !ok || name != "one" || typeSrc != "Nat" {
		t.Errorf("asClaim = (%q, %q, %v), want (one, Nat, true)", name, typeSrc, ok)
	}
	name, exprSrc, ok := asDefine("(define one (add1 zero))")
	if !ok || name != "one" || exprSrc != "(add1 zero)" {
		t.Errorf("asDefine = (%q, %q, %v), want (one, (add1 zero), true)", name, exprSrc, ok)
	}
	if _, _, ok := asClaim("(add1 zero)"); ok {
		t.Errorf("asClaim matched a non-claim form")
	}
}

func TestProcessExpressionClaimDefineCheck(t *testing.T) {
	r := New()
	var out bytes.Buffer

	r.ProcessExpression("(claim one Nat)", &out)
	if !strings.Contains(out.String(), "ok") {
		t.Fatalf("claim failed: %s", out.String())
	}
	out.Reset()

	r.ProcessExpression("(define one (add1 zero))", &out)
	if !strings.Contains(out.String(), "ok") {
		t.Fatalf("define failed: %s", out.String())
	}
	out.Reset()

	r.ProcessExpression("one", &out)
	if !strings.Contains(out.String(), "Nat") {
		t.Errorf("check one = %q, want it to mention Nat", out.String())
	}
}

func TestProcessExpressionReportsErrors(t *testing.T) {
	r := New()
	var out bytes.Buffer
	r.ProcessExpression("(add1 'not-a-nat)", &out)
	if !strings.Contains(out.String(), "Error") {
		t.Errorf("expected an error message, got %q", out.String())
	}
}

func TestHandleCommandHistoryAndReset(t *testing.T) {
	r := New()
	var out bytes.Buffer

	r.ProcessExpression("(claim one Nat)", &out)
	r.history = append(r.history, "(claim one Nat)")
	out.Reset()

	r.HandleCommand(":history", &out)
	if !strings.Contains(out.String(), "(claim one Nat)") {
		t.Errorf(":history did not show prior input: %q", out.String())
	}

	out.Reset()
	r.HandleCommand(":reset", &out)
	if !strings.Contains(out.String(), "reset") {
		t.Errorf(":reset did not confirm: %q", out.String())
	}

	// After reset, "one" is no longer claimed.
	out.Reset()
	r.ProcessExpression("(define one (add1 zero))", &out)
	if !strings.Contains(out.String(), "Error") {
		t.Errorf("expected define to fail after reset, got %q", out.String())
	}
}

func TestHandleCommandUnknown(t *testing.T) {
	r := New()
	var out bytes.Buffer
	r.HandleCommand(":bogus", &out)
	if !strings.Contains(out.String(), "unknown command") {
		t.Errorf("expected unknown command message, got %q", out.String())
	}
}
