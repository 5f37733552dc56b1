package symbol

import "testing"

// TestFreshTriesSplitBeforeBumping pins the two examples from the
// reference Pie implementation's own freshen unit tests
// (original_source/src/fresh.rs), which try the as-split candidate
// before ever incrementing the subscript count.
func TestFreshTriesSplitBeforeBumping(t *testing.T) {
	cases := []struct {
		used []string
		x    string
		want string
	}{
		{[]string{"x"}, "x", "x₁"},
		{[]string{"x₁"}, "x₁", "x₂"},
	}
	for _, c := range cases {
		t.Run(c.x, func(t *testing.T) {
			syms := make([]*Symbol, len(c.used))
			for i, n := range c.used {
				syms[i] = Intern(n)
			}
			used := NewSet(syms...)
			got := Fresh(used, Intern(c.x))
			if got.Name() != c.want {
				t.Errorf("Fresh(%v, %q) = %q, want %q", c.used, c.x, got.Name(), c.want)
			}
		})
	}
}

func TestFreshReturnsUnchangedWhenUnused(t *testing.T) {
	used := NewSet(Intern("y"))
	got := Fresh(used, Intern("x"))
	if got.Name() != "x" {
		t.Errorf("Fresh with x unused = %q, want %q", got.Name(), "x")
	}
}

func TestFreshSkipsMultipleCollisions(t *testing.T) {
	used := NewSet(Intern("x"), Intern("x₁"), Intern("x₂"))
	got := Fresh(used, Intern("x"))
	if got.Name() != "x₃" {
		t.Errorf("Fresh with x, x₁, x₂ used = %q, want %q", got.Name(), "x₃")
	}
}
