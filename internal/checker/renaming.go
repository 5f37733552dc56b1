package checker

import "github.com/sunholo/pie/internal/symbol"

// Renaming is the surface-to-elaborated symbol map threaded through
// is-type/synth/check. It is purely syntactic -- unlike the typing context
// it carries no value information -- so it lives here rather than in
// package value (spec §4.3, "renaming vs substitution").
type Renaming struct {
	to     *symbol.Symbol
	from   *symbol.Symbol
	parent *Renaming
}

// Lookup returns x's renamed form, or x itself if it was never renamed.
func (r *Renaming) Lookup(x *symbol.Symbol) *symbol.Symbol {
	for n := r; n != nil; n = n.parent {
		if n.from.Eq(x) {
			return n.to
		}
	}
	return x
}

// Extend returns a new renaming mapping from to to, on top of r.
func (r *Renaming) Extend(from, to *symbol.Symbol) *Renaming {
	return &Renaming{to: to, from: from, parent: r}
}
