package value

import (
	"fmt"

	"github.com/sunholo/pie/internal/symbol"
)

// Neutral is a value whose reduction is blocked on a free variable. It
// carries the type it was created at so read-back can reconstruct a
// well-typed annotated syntactic form without further access to the
// context that built it (spec §4.2, §9 "Eliminator neutrals").
type Neutral struct {
	Type Value
	Kind NKind
}

func (n *Neutral) valueNode()     {}
func (n *Neutral) String() string { return n.Kind.String() }

// NKind is the closed set of stuck spines. Every eliminator gets its own
// kind so read-back-neutral can reconstruct the exact surface form.
type NKind interface {
	fmt.Stringer
	neutralKind()
}

type NVar struct{ Name *symbol.Symbol }

func (n *NVar) neutralKind()   {}
func (n *NVar) String() string { return n.Name.Name() }

type NApp struct {
	Fun NKind
	Arg Typed
}

func (n *NApp) neutralKind()     {}
func (n *NApp) String() string   { return fmt.Sprintf("(%s %s)", n.Fun, n.Arg.Val) }

type NCar struct{ Pair NKind }

func (n *NCar) neutralKind()     {}
func (n *NCar) String() string   { return fmt.Sprintf("(car %s)", n.Pair) }

type NCdr struct{ Pair NKind }

func (n *NCdr) neutralKind()     {}
func (n *NCdr) String() string   { return fmt.Sprintf("(cdr %s)", n.Pair) }

type NWhichNat struct {
	Target NKind
	Base   Typed
	Step   Typed
}

func (n *NWhichNat) neutralKind() {}
func (n *NWhichNat) String() string {
	return fmt.Sprintf("(which-Nat %s %s %s)", n.Target, n.Base.Val, n.Step.Val)
}

type NRecNat struct {
	Target NKind
	Base   Typed
	Step   Typed
}

func (n *NRecNat) neutralKind() {}
func (n *NRecNat) String() string {
	return fmt.Sprintf("(rec-Nat %s %s %s)", n.Target, n.Base.Val, n.Step.Val)
}

type NIterNat struct {
	Target NKind
	Base   Typed
	Step   Typed
}

func (n *NIterNat) neutralKind() {}
func (n *NIterNat) String() string {
	return fmt.Sprintf("(iter-Nat %s %s %s)", n.Target, n.Base.Val, n.Step.Val)
}

type NIndNat struct {
	Target NKind
	Motive Typed
	Base   Typed
	Step   Typed
}

func (n *NIndNat) neutralKind() {}
func (n *NIndNat) String() string {
	return fmt.Sprintf("(ind-Nat %s %s %s %s)", n.Target, n.Motive.Val, n.Base.Val, n.Step.Val)
}

type NListLength struct{ Target NKind }

func (n *NListLength) neutralKind()   {}
func (n *NListLength) String() string { return fmt.Sprintf("(length %s)", n.Target) }

type NRecList struct {
	Target NKind
	Base   Typed
	Step   Typed
}

func (n *NRecList) neutralKind() {}
func (n *NRecList) String() string {
	return fmt.Sprintf("(rec-List %s %s %s)", n.Target, n.Base.Val, n.Step.Val)
}

type NIndList struct {
	Target NKind
	Motive Typed
	Base   Typed
	Step   Typed
}

func (n *NIndList) neutralKind() {}
func (n *NIndList) String() string {
	return fmt.Sprintf("(ind-List %s %s %s %s)", n.Target, n.Motive.Val, n.Base.Val, n.Step.Val)
}

type NHead struct{ Target NKind }

func (n *NHead) neutralKind()   {}
func (n *NHead) String() string { return fmt.Sprintf("(head %s)", n.Target) }

type NTail struct{ Target NKind }

func (n *NTail) neutralKind()   {}
func (n *NTail) String() string { return fmt.Sprintf("(tail %s)", n.Target) }

type NIndVec struct {
	Len    Typed
	Target NKind
	Motive Typed
	Base   Typed
	Step   Typed
}

func (n *NIndVec) neutralKind() {}
func (n *NIndVec) String() string {
	return fmt.Sprintf("(ind-Vec %s %s %s %s %s)", n.Len.Val, n.Target, n.Motive.Val, n.Base.Val, n.Step.Val)
}

type NIndEither struct {
	Target NKind
	Motive Typed
	BaseL  Typed
	BaseR  Typed
}

func (n *NIndEither) neutralKind() {}
func (n *NIndEither) String() string {
	return fmt.Sprintf("(ind-Either %s %s %s %s)", n.Target, n.Motive.Val, n.BaseL.Val, n.BaseR.Val)
}

type NCong struct {
	Target NKind
	Fun    Typed
}

func (n *NCong) neutralKind()   {}
func (n *NCong) String() string { return fmt.Sprintf("(cong %s %s)", n.Target, n.Fun.Val) }

type NReplace struct {
	Target NKind
	Motive Typed
	Base   Typed
}

func (n *NReplace) neutralKind() {}
func (n *NReplace) String() string {
	return fmt.Sprintf("(replace %s %s %s)", n.Target, n.Motive.Val, n.Base.Val)
}

type NSymm struct{ Target NKind }

func (n *NSymm) neutralKind()   {}
func (n *NSymm) String() string { return fmt.Sprintf("(symm %s)", n.Target) }

type NTrans struct {
	Eq1 NKind
	Eq2 Typed
}

func (n *NTrans) neutralKind()   {}
func (n *NTrans) String() string { return fmt.Sprintf("(trans %s %s)", n.Eq1, n.Eq2.Val) }

type NIndAbsurd struct {
	Target NKind
	Motive Typed
}

func (n *NIndAbsurd) neutralKind() {}
func (n *NIndAbsurd) String() string {
	return fmt.Sprintf("(ind-Absurd %s %s)", n.Target, n.Motive.Val)
}
