package core

import (
	"fmt"

	"github.com/sunholo/pie/internal/symbol"
)

type VecT struct {
	Elem Expr
	Len  Expr
}

func (v *VecT) exprNode()              {}
func (v *VecT) String() string         { return fmt.Sprintf("(Vec %s %s)", v.Elem, v.Len) }
func (v *VecT) OccurringNames() symbol.Set { return occUnion(v.Elem, v.Len) }

type VecNil struct{}

func (VecNil) exprNode()              {}
func (VecNil) String() string         { return "vecnil" }
func (VecNil) OccurringNames() symbol.Set { return symbol.Set{} }

type VecCons struct {
	Head Expr
	Tail Expr
}

func (c *VecCons) exprNode()              {}
func (c *VecCons) String() string         { return fmt.Sprintf("(vec:: %s %s)", c.Head, c.Tail) }
func (c *VecCons) OccurringNames() symbol.Set { return occUnion(c.Head, c.Tail) }

type VecHead struct{ Vec Expr }

func (h *VecHead) exprNode()              {}
func (h *VecHead) String() string         { return fmt.Sprintf("(head %s)", h.Vec) }
func (h *VecHead) OccurringNames() symbol.Set { return occUnion(h.Vec) }

type VecTail struct{ Vec Expr }

func (t *VecTail) exprNode()              {}
func (t *VecTail) String() string         { return fmt.Sprintf("(tail %s)", t.Vec) }
func (t *VecTail) OccurringNames() symbol.Set { return occUnion(t.Vec) }

// IndVec's motive depends on both the remaining length and the vector.
type IndVec struct {
	Len    Expr
	Target Expr
	Motive Expr
	Base   Expr
	Step   Expr
}

func (i *IndVec) exprNode() {}
func (i *IndVec) String() string {
	return fmt.Sprintf("(ind-Vec %s %s %s %s %s)", i.Len, i.Target, i.Motive, i.Base, i.Step)
}
func (i *IndVec) OccurringNames() symbol.Set {
	return occUnion(i.Len, i.Target, i.Motive, i.Base, i.Step)
}
