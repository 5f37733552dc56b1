package driver

import (
	"testing"

	"github.com/sunholo/pie/internal/perrors"
)

// TestIsTypeOnDefinedNonTypeReportsWrongType pins spec.md's Reference rule
// ("as an is-type, first try check(U); if that fails report
// WrongType(actual, U)"): IsType on a name already defined at a non-type
// value must surface WrongType, not the bare NotAType every other
// defaulted construct gets.
func TestIsTypeOnDefinedNonTypeReportsWrongType(t *testing.T) {
	s := New()
	if err := s.Claim("x", "Nat"); err != nil {
		t.Fatal(err)
	}
	if err := s.Define("x", "zero"); err != nil {
		t.Fatal(err)
	}
	_, err := s.IsType("x")
	requireKind(t, err, perrors.WrongType)
}
