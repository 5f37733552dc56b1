package core

import (
	"fmt"

	"github.com/sunholo/pie/internal/symbol"
)

// Sigma is the dependent sum type (Σ (x A) D).
type Sigma struct {
	Name *symbol.Symbol
	Fst  Expr
	Snd  Expr
}

func (s *Sigma) exprNode() {}
func (s *Sigma) String() string {
	return fmt.Sprintf("(Σ (%s %s) %s)", s.Name.Name(), s.Fst, s.Snd)
}
func (s *Sigma) OccurringNames() symbol.Set {
	names := occUnion(s.Fst, s.Snd)
	names.Add(s.Name)
	return names
}

// PairT is the non-dependent sugar (Pair A D), desugaring to Sigma with a
// fresh, unused binder name during is-type.
type PairT struct {
	Fst Expr
	Snd Expr
}

func (p *PairT) exprNode()              {}
func (p *PairT) String() string         { return fmt.Sprintf("(Pair %s %s)", p.Fst, p.Snd) }
func (p *PairT) OccurringNames() symbol.Set { return occUnion(p.Fst, p.Snd) }

type Cons struct {
	Fst Expr
	Snd Expr
}

func (c *Cons) exprNode()              {}
func (c *Cons) String() string         { return fmt.Sprintf("(cons %s %s)", c.Fst, c.Snd) }
func (c *Cons) OccurringNames() symbol.Set { return occUnion(c.Fst, c.Snd) }

type Car struct{ Pair Expr }

func (c *Car) exprNode()              {}
func (c *Car) String() string         { return fmt.Sprintf("(car %s)", c.Pair) }
func (c *Car) OccurringNames() symbol.Set { return occUnion(c.Pair) }

type Cdr struct{ Pair Expr }

func (c *Cdr) exprNode()              {}
func (c *Cdr) String() string         { return fmt.Sprintf("(cdr %s)", c.Pair) }
func (c *Cdr) OccurringNames() symbol.Set { return occUnion(c.Pair) }
