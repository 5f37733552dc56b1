package core

import (
	"fmt"

	"github.com/sunholo/pie/internal/symbol"
)

type ListT struct{ Elem Expr }

func (l *ListT) exprNode()              {}
func (l *ListT) String() string         { return fmt.Sprintf("(List %s)", l.Elem) }
func (l *ListT) OccurringNames() symbol.Set { return occUnion(l.Elem) }

type Nil struct{}

func (Nil) exprNode()              {}
func (Nil) String() string         { return "nil" }
func (Nil) OccurringNames() symbol.Set { return symbol.Set{} }

type ListCons struct {
	Head Expr
	Tail Expr
}

func (c *ListCons) exprNode()              {}
func (c *ListCons) String() string         { return fmt.Sprintf("(:: %s %s)", c.Head, c.Tail) }
func (c *ListCons) OccurringNames() symbol.Set { return occUnion(c.Head, c.Tail) }

// ListLength is the non-dependent convenience eliminator: (length lst).
type ListLength struct{ List Expr }

func (l *ListLength) exprNode()              {}
func (l *ListLength) String() string         { return fmt.Sprintf("(length %s)", l.List) }
func (l *ListLength) OccurringNames() symbol.Set { return occUnion(l.List) }

// RecList is the untyped, non-dependent list eliminator: its base case
// needs its type recorded once synthesized (same desugaring as rec-Nat).
type RecList struct {
	Target Expr
	Base   Expr
	Step   Expr
}

func (r *RecList) exprNode() {}
func (r *RecList) String() string {
	return fmt.Sprintf("(rec-List %s %s %s)", r.Target, r.Base, r.Step)
}
func (r *RecList) OccurringNames() symbol.Set { return occUnion(r.Target, r.Base, r.Step) }

type RecListTyped struct {
	Target   Expr
	BaseType Expr
	Base     Expr
	Step     Expr
}

func (r *RecListTyped) exprNode() {}
func (r *RecListTyped) String() string {
	return fmt.Sprintf("(rec-List %s %s %s)", r.Target, r.Base, r.Step)
}
func (r *RecListTyped) OccurringNames() symbol.Set {
	return occUnion(r.Target, r.BaseType, r.Base, r.Step)
}

// IndList carries an explicit dependent motive.
type IndList struct {
	Target Expr
	Motive Expr
	Base   Expr
	Step   Expr
}

func (i *IndList) exprNode() {}
func (i *IndList) String() string {
	return fmt.Sprintf("(ind-List %s %s %s %s)", i.Target, i.Motive, i.Base, i.Step)
}
func (i *IndList) OccurringNames() symbol.Set {
	return occUnion(i.Target, i.Motive, i.Base, i.Step)
}
