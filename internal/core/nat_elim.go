package core

import (
	"fmt"

	"github.com/sunholo/pie/internal/symbol"
)

// WhichNat, RecNat and IterNat are the "untyped" surface eliminators: their
// surface form doesn't carry the base case's type, only its value. The
// checker synthesizes that type during Synth and rewrites the node into the
// corresponding *Typed form, which is the only shape Eval ever sees (see
// SPEC_FULL.md §C, "untyped vs typed eliminator variants").

type WhichNat struct {
	Target Expr
	Base   Expr
	Step   Expr
}

func (w *WhichNat) exprNode()              {}
func (w *WhichNat) String() string         { return fmt.Sprintf("(which-Nat %s %s %s)", w.Target, w.Base, w.Step) }
func (w *WhichNat) OccurringNames() symbol.Set { return occUnion(w.Target, w.Base, w.Step) }

type WhichNatTyped struct {
	Target   Expr
	BaseType Expr
	Base     Expr
	Step     Expr
}

func (w *WhichNatTyped) exprNode() {}
func (w *WhichNatTyped) String() string {
	return fmt.Sprintf("(which-Nat %s %s %s)", w.Target, w.Base, w.Step)
}
func (w *WhichNatTyped) OccurringNames() symbol.Set {
	return occUnion(w.Target, w.BaseType, w.Base, w.Step)
}

type RecNat struct {
	Target Expr
	Base   Expr
	Step   Expr
}

func (r *RecNat) exprNode()              {}
func (r *RecNat) String() string         { return fmt.Sprintf("(rec-Nat %s %s %s)", r.Target, r.Base, r.Step) }
func (r *RecNat) OccurringNames() symbol.Set { return occUnion(r.Target, r.Base, r.Step) }

type RecNatTyped struct {
	Target   Expr
	BaseType Expr
	Base     Expr
	Step     Expr
}

func (r *RecNatTyped) exprNode() {}
func (r *RecNatTyped) String() string {
	return fmt.Sprintf("(rec-Nat %s %s %s)", r.Target, r.Base, r.Step)
}
func (r *RecNatTyped) OccurringNames() symbol.Set {
	return occUnion(r.Target, r.BaseType, r.Base, r.Step)
}

type IterNat struct {
	Target Expr
	Base   Expr
	Step   Expr
}

func (i *IterNat) exprNode()              {}
func (i *IterNat) String() string         { return fmt.Sprintf("(iter-Nat %s %s %s)", i.Target, i.Base, i.Step) }
func (i *IterNat) OccurringNames() symbol.Set { return occUnion(i.Target, i.Base, i.Step) }

type IterNatTyped struct {
	Target   Expr
	BaseType Expr
	Base     Expr
	Step     Expr
}

func (i *IterNatTyped) exprNode() {}
func (i *IterNatTyped) String() string {
	return fmt.Sprintf("(iter-Nat %s %s %s)", i.Target, i.Base, i.Step)
}
func (i *IterNatTyped) OccurringNames() symbol.Set {
	return occUnion(i.Target, i.BaseType, i.Base, i.Step)
}

// IndNat carries an explicit motive, so it needs no typed/untyped split.
type IndNat struct {
	Target Expr
	Motive Expr
	Base   Expr
	Step   Expr
}

func (n *IndNat) exprNode() {}
func (n *IndNat) String() string {
	return fmt.Sprintf("(ind-Nat %s %s %s %s)", n.Target, n.Motive, n.Base, n.Step)
}
func (n *IndNat) OccurringNames() symbol.Set {
	return occUnion(n.Target, n.Motive, n.Base, n.Step)
}
