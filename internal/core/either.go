package core

import (
	"fmt"

	"github.com/sunholo/pie/internal/symbol"
)

type EitherT struct {
	L Expr
	R Expr
}

func (e *EitherT) exprNode()              {}
func (e *EitherT) String() string         { return fmt.Sprintf("(Either %s %s)", e.L, e.R) }
func (e *EitherT) OccurringNames() symbol.Set { return occUnion(e.L, e.R) }

type Left struct{ Val Expr }

func (l *Left) exprNode()              {}
func (l *Left) String() string         { return fmt.Sprintf("(left %s)", l.Val) }
func (l *Left) OccurringNames() symbol.Set { return occUnion(l.Val) }

type Right struct{ Val Expr }

func (r *Right) exprNode()              {}
func (r *Right) String() string         { return fmt.Sprintf("(right %s)", r.Val) }
func (r *Right) OccurringNames() symbol.Set { return occUnion(r.Val) }

type IndEither struct {
	Target Expr
	Motive Expr
	BaseL  Expr
	BaseR  Expr
}

func (i *IndEither) exprNode() {}
func (i *IndEither) String() string {
	return fmt.Sprintf("(ind-Either %s %s %s %s)", i.Target, i.Motive, i.BaseL, i.BaseR)
}
func (i *IndEither) OccurringNames() symbol.Set {
	return occUnion(i.Target, i.Motive, i.BaseL, i.BaseR)
}
