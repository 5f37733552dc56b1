package core

import (
	"fmt"

	"github.com/sunholo/pie/internal/symbol"
)

type EqualT struct {
	Type Expr
	From Expr
	To   Expr
}

func (e *EqualT) exprNode() {}
func (e *EqualT) String() string {
	return fmt.Sprintf("(= %s %s %s)", e.Type, e.From, e.To)
}
func (e *EqualT) OccurringNames() symbol.Set { return occUnion(e.Type, e.From, e.To) }

type Same struct{ Val Expr }

func (s *Same) exprNode()              {}
func (s *Same) String() string         { return fmt.Sprintf("(same %s)", s.Val) }
func (s *Same) OccurringNames() symbol.Set { return occUnion(s.Val) }

// Cong e f rewrites an equality at A to an equality at B, by mapping f over
// both sides.
type Cong struct {
	Eq  Expr
	Fun Expr
}

func (c *Cong) exprNode()              {}
func (c *Cong) String() string         { return fmt.Sprintf("(cong %s %s)", c.Eq, c.Fun) }
func (c *Cong) OccurringNames() symbol.Set { return occUnion(c.Eq, c.Fun) }

// Replace target motive base rewrites base's type along the target equality.
type Replace struct {
	Target Expr
	Motive Expr
	Base   Expr
}

func (r *Replace) exprNode() {}
func (r *Replace) String() string {
	return fmt.Sprintf("(replace %s %s %s)", r.Target, r.Motive, r.Base)
}
func (r *Replace) OccurringNames() symbol.Set { return occUnion(r.Target, r.Motive, r.Base) }

type Symm struct{ Eq Expr }

func (s *Symm) exprNode()              {}
func (s *Symm) String() string         { return fmt.Sprintf("(symm %s)", s.Eq) }
func (s *Symm) OccurringNames() symbol.Set { return occUnion(s.Eq) }

type Trans struct {
	Eq1 Expr
	Eq2 Expr
}

func (t *Trans) exprNode()              {}
func (t *Trans) String() string         { return fmt.Sprintf("(trans %s %s)", t.Eq1, t.Eq2) }
func (t *Trans) OccurringNames() symbol.Set { return occUnion(t.Eq1, t.Eq2) }

// IndAbsurd eliminates a value of type Absurd at an arbitrary motive type.
type IndAbsurd struct {
	Target Expr
	Motive Expr
}

func (i *IndAbsurd) exprNode()              {}
func (i *IndAbsurd) String() string         { return fmt.Sprintf("(ind-Absurd %s %s)", i.Target, i.Motive) }
func (i *IndAbsurd) OccurringNames() symbol.Set { return occUnion(i.Target, i.Motive) }
