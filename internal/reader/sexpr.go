package reader

import "strings"

// SExpr is the untyped s-expression shape that the reader produces before
// the second pass (Parse, in parse.go) recognizes keyword forms and
// produces a core.Expr tree. Keeping these passes separate lets the first
// pass stay a plain, keyword-agnostic Lisp reader.
type SExpr interface {
	sexprNode()
	String() string
}

// Atom is a bare symbol or numeral: anything that isn't a parenthesized
// list or a quoted form.
type Atom struct {
	Text string
	Pos  Token
}

func (Atom) sexprNode()      {}
func (a Atom) String() string { return a.Text }

// List is a parenthesized sequence (e1 e2 ... en).
type List struct {
	Items []SExpr
	Pos   Token
}

func (List) sexprNode() {}
func (l List) String() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = it.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Quoted is 'x, read as sugar for (quote x) -- in Pie's surface grammar
// the only legal quoted form is a bare atom symbol, but the reader accepts
// any SExpr here and lets the second pass reject the rest with
// InvalidSyntax, so that a misplaced quote is reported with a precise
// position rather than a generic parse failure.
type Quoted struct {
	Body SExpr
	Pos  Token
}

func (Quoted) sexprNode()      {}
func (q Quoted) String() string { return "'" + q.Body.String() }
