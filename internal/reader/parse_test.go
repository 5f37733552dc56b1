package reader

import "testing"

func mustParseString(t *testing.T, src string) string {
	t.Helper()
	forms, err := ReadAll(Normalize([]byte(src)), "test.pie")
	if err != nil {
		t.Fatalf("ReadAll(%q): %v", src, err)
	}
	if len(forms) != 1 {
		t.Fatalf("ReadAll(%q): expected 1 form, got %d", src, len(forms))
	}
	e, err := Parse(forms[0])
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return e.String()
}

func TestParseAtoms(t *testing.T) {
	tests := []struct{ src, want string }{
		{"U", "U"},
		{"Nat", "Nat"},
		{"zero", "zero"},
		{"Atom", "Atom"},
		{"Trivial", "Trivial"},
		{"sole", "sole"},
		{"Absurd", "Absurd"},
		{"nil", "nil"},
		{"vecnil", "vecnil"},
		{"x", "x"},
		{"0", "zero"},
		{"3", "(add1 (add1 (add1 zero)))"},
		{"'ratatouille", "'ratatouille"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := mustParseString(t, tt.src); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseForms(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(add1 zero)", "(add1 zero)"},
		{"(the (Pair Atom Atom) (cons 'a 'b))", "(the (Pair Atom Atom) (cons 'a 'b))"},
		{"(car p)", "(car p)"},
		{"(cdr p)", "(cdr p)"},
		{"(-> Nat Nat (Pair Nat Nat))", "(-> Nat Nat (Pair Nat Nat))"},
		{"(lambda (x) x)", "(λ (x) x)"},
		{"(lambda (x y) (cons x y))", "(λ* (x y) (cons x y))"},
		{"(Pi (x Nat) (Pair x x))", "(Π (x Nat) (Pair x x))"},
		{"(Pi ((A U) (D U)) (-> A D (Pair A D)))", "(Π* ((A U) (D U)) (-> A D (Pair A D)))"},
		{"(Sigma (n Nat) (= Nat n zero))", "(Σ (n Nat) (= Nat n zero))"},
		{"(:: 'a nil)", "(:: 'a nil)"},
		{"(vec:: 'a vecnil)", "(vec:: 'a vecnil)"},
		{"(which-Nat 4 'naught (lambda (x) 'more))", "(which-Nat (add1 (add1 (add1 (add1 zero)))) 'naught (λ (x) 'more))"},
		{"(f a b c)", "(f a b c)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := mustParseString(t, tt.src); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []string{
		"()",
		"(",
		")",
		"(add1)",
		"(add1 1 2)",
		"'5",
		"(f)",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			forms, err := ReadAll(Normalize([]byte(src)), "test.pie")
			if err == nil {
				if _, perr := ParseAll(forms); perr == nil {
					t.Fatalf("expected an error for %q", src)
				}
			}
		})
	}
}

func TestReadOneRejectsTrailingInput(t *testing.T) {
	if _, err := ReadOne(Normalize([]byte("zero zero")), "test.pie"); err == nil {
		t.Fatalf("expected trailing-input error")
	}
}
