package value

import (
	"github.com/sunholo/pie/internal/core"
	"github.com/sunholo/pie/internal/symbol"
)

// EntryKind distinguishes the three shapes a name can have in a Ctx.
type EntryKind int

const (
	// EntryFree is a locally introduced variable with a type but no
	// definition (bound during is-type/check when traversing a binder).
	EntryFree EntryKind = iota
	// EntryDefinition is a name bound to both a type and a value, via
	// the driver's define().
	EntryDefinition
	// EntryClaim is a name with a declared type but no value yet; legal
	// only at the driver level between claim() and define(), never
	// inside an expression being checked.
	EntryClaim
)

// Entry is what Ctx.Lookup returns for a bound name.
type Entry struct {
	Kind EntryKind
	Type Value
	Def  Value // only meaningful when Kind == EntryDefinition
}

// Ctx is the persistent typing context Γ: a mapping from symbol to Entry.
// Nil denotes the empty context. Binding never mutates an existing Ctx --
// every Bind*/Define/Claim returns a new node linking back to its parent,
// so a Ctx captured by an outer call is unaffected by further extension
// (spec §5, "no operation mutates an existing context").
type Ctx struct {
	name   *symbol.Symbol
	entry  Entry
	parent *Ctx
	env    *Env // incrementally maintained ctx.ToEnv()
}

// Lookup finds name's entry, searching from the most recently bound name
// outward.
func (c *Ctx) Lookup(name *symbol.Symbol) (Entry, bool) {
	for n := c; n != nil; n = n.parent {
		if n.name.Eq(name) {
			return n.entry, true
		}
	}
	return Entry{}, false
}

// Names returns every symbol bound in c, used to compute fresh names.
func (c *Ctx) Names() symbol.Set {
	s := symbol.Set{}
	for n := c; n != nil; n = n.parent {
		s.Add(n.name)
	}
	return s
}

// Env returns the evaluation environment corresponding to this context:
// each free name bound to a neutral variable of its declared type, each
// defined name bound to its value. Claims contribute no binding.
func (c *Ctx) Env() *Env {
	if c == nil {
		return nil
	}
	return c.env
}

// BindFree extends Γ with a fresh local variable of the given type,
// binding it (in the corresponding environment) to a neutral reference to
// itself -- what lets the checker run code with an "arbitrary" value of
// that type during e.g. lambda bodies.
func (c *Ctx) BindFree(name *symbol.Symbol, t Value) *Ctx {
	nv := NewNeutralVar(name, t)
	return &Ctx{name: name, entry: Entry{Kind: EntryFree, Type: t}, parent: c, env: c.Env().Extend(name, nv)}
}

// Define extends Γ with name bound to both its type and its value.
func (c *Ctx) Define(name *symbol.Symbol, t, v Value) *Ctx {
	return &Ctx{name: name, entry: Entry{Kind: EntryDefinition, Type: t, Def: v}, parent: c, env: c.Env().Extend(name, v)}
}

// Claim extends Γ with a declared type and no value; only the top-level
// driver ever produces or consumes this entry kind.
func (c *Ctx) Claim(name *symbol.Symbol, t Value) *Ctx {
	return &Ctx{name: name, entry: Entry{Kind: EntryClaim, Type: t}, parent: c, env: c.Env()}
}

// Fresh returns a symbol derived from x that is not already bound in Γ.
func (c *Ctx) Fresh(x *symbol.Symbol) *symbol.Symbol {
	return symbol.Fresh(c.Names(), x)
}

// FreshBinder is like Fresh but also avoids every name occurring in body,
// used when introducing a variable that must not be captured by names
// appearing deeper in an expression being read back or elaborated.
func (c *Ctx) FreshBinder(body core.Expr, x *symbol.Symbol) *symbol.Symbol {
	used := c.Names().Union(body.OccurringNames())
	return symbol.Fresh(used, x)
}

// NewNeutralVar builds the neutral value a fresh free variable evaluates
// to: a stuck reference to itself, carrying its declared type.
func NewNeutralVar(name *symbol.Symbol, t Value) Value {
	return &Neutral{Type: t, Kind: &NVar{Name: name}}
}
