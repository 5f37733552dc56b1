// Package driver implements Pie's top-level operations -- claim, define,
// check, same, is_type, normalize (spec §6, "top-level driver interface")
// -- on top of a persistent *value.Ctx session, plus the exit-code
// convention a CLI front end exposes.
package driver

import (
	"errors"

	"github.com/sunholo/pie/internal/checker"
	"github.com/sunholo/pie/internal/core"
	"github.com/sunholo/pie/internal/perrors"
	"github.com/sunholo/pie/internal/printer"
	"github.com/sunholo/pie/internal/reader"
	"github.com/sunholo/pie/internal/symbol"
	"github.com/sunholo/pie/internal/value"
)

// Session holds the running REPL/script state: a single persistent typing
// context threaded through every operation, growing by one binding per
// successful claim or define. Sessions never share or mutate a Ctx in
// place (value.Ctx's own persistence guarantee); Session.ctx is simply
// reassigned to the newest node.
type Session struct {
	ctx *value.Ctx
}

// New returns a session with the empty context.
func New() *Session {
	return &Session{}
}

// ExitCode maps a driver error (or nil) to the process exit code spec §6
// names: 0 success, 1 type error, 2 parse error, 3 internal error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var perr *perrors.Error
	if !errors.As(err, &perr) {
		return 3
	}
	if perr.Kind == perrors.InvalidSyntax {
		return 2
	}
	return 1
}

func parseOne(src, file string) (core.Expr, error) {
	form, err := reader.ReadOne(reader.Normalize([]byte(src)), file)
	if err != nil {
		return nil, err
	}
	return reader.Parse(form)
}

// unresolvedClaim scans e's free names for one that is claimed but not yet
// defined, reporting NotYetDefined instead of letting evaluation find no
// binding for it (spec §7, "NotYetDefined(sym) -- driver-level").
func (s *Session) unresolvedClaim(e core.Expr) error {
	for name := range e.OccurringNames() {
		entry, ok := s.ctx.Lookup(name)
		if ok && entry.Kind == value.EntryClaim {
			return perrors.NewNotYetDefined(perrors.PhaseDriver, name.Name())
		}
	}
	return nil
}

// Claim registers name with declared type typeSrc. Fails if name is
// already claimed or defined.
func (s *Session) Claim(name, typeSrc string) error {
	sym := symbol.Intern(name)
	if entry, ok := s.ctx.Lookup(sym); ok {
		if entry.Kind == value.EntryDefinition {
			return perrors.NewAlreadyDefined(perrors.PhaseDriver, name)
		}
		return perrors.NewAlreadyClaimed(perrors.PhaseDriver, name)
	}
	typeExpr, err := parseOne(typeSrc, "claim")
	if err != nil {
		return err
	}
	if err := s.unresolvedClaim(typeExpr); err != nil {
		return err
	}
	typeOut, err := checker.IsType(s.ctx, nil, typeExpr)
	if err != nil {
		return err
	}
	tv := value.Eval(s.ctx.Env(), typeOut)
	s.ctx = s.ctx.Claim(sym, tv)
	return nil
}

// Define binds name to exprSrc's value, requiring a prior Claim of name's
// type. Fails if name is not yet claimed or is already defined.
func (s *Session) Define(name, exprSrc string) error {
	sym := symbol.Intern(name)
	entry, ok := s.ctx.Lookup(sym)
	if !ok {
		return perrors.NewNotYetDefined(perrors.PhaseDriver, name)
	}
	if entry.Kind == value.EntryDefinition {
		return perrors.NewAlreadyDefined(perrors.PhaseDriver, name)
	}
	expr, err := parseOne(exprSrc, "define")
	if err != nil {
		return err
	}
	if err := s.unresolvedClaim(expr); err != nil {
		return err
	}
	exprOut, err := checker.Check(s.ctx, nil, expr, entry.Type)
	if err != nil {
		return err
	}
	v := value.Eval(s.ctx.Env(), exprOut)
	s.ctx = s.ctx.Define(sym, entry.Type, v)
	return nil
}

// Result is a normalized (type, expr) pair, the shape Check and Normalize
// return.
type Result struct {
	Type core.Expr
	Expr core.Expr
}

// String renders a Result as a surface "(the T e)" annotation.
func (r Result) String() string {
	return printer.Print(printer.Resugar(&core.The{Type: r.Type, Expr: r.Expr}))
}

// Check synthesizes exprSrc's type and returns both in normal form.
func (s *Session) Check(exprSrc string) (Result, error) {
	expr, err := parseOne(exprSrc, "check")
	if err != nil {
		return Result{}, err
	}
	return s.synthNormalized(expr)
}

// Normalize is an alias for Check: synth then read-back (spec §6).
func (s *Session) Normalize(exprSrc string) (Result, error) {
	return s.Check(exprSrc)
}

func (s *Session) synthNormalized(expr core.Expr) (Result, error) {
	if err := s.unresolvedClaim(expr); err != nil {
		return Result{}, err
	}
	typeOut, exprOut, err := checker.Synth(s.ctx, nil, expr)
	if err != nil {
		return Result{}, err
	}
	tv := value.Eval(s.ctx.Env(), typeOut)
	v := value.Eval(s.ctx.Env(), exprOut)
	return Result{
		Type: value.ReadBackType(s.ctx, tv),
		Expr: value.ReadBack(s.ctx, tv, v),
	}, nil
}

// Same checks that a and b, both checked against typeSrc, are convertible.
func (s *Session) Same(typeSrc, aSrc, bSrc string) error {
	typeExpr, err := parseOne(typeSrc, "same-type")
	if err != nil {
		return err
	}
	aExpr, err := parseOne(aSrc, "same-a")
	if err != nil {
		return err
	}
	bExpr, err := parseOne(bSrc, "same-b")
	if err != nil {
		return err
	}
	for _, e := range []core.Expr{typeExpr, aExpr, bExpr} {
		if err := s.unresolvedClaim(e); err != nil {
			return err
		}
	}
	typeOut, err := checker.IsType(s.ctx, nil, typeExpr)
	if err != nil {
		return err
	}
	tv := value.Eval(s.ctx.Env(), typeOut)
	aOut, err := checker.Check(s.ctx, nil, aExpr, tv)
	if err != nil {
		return err
	}
	bOut, err := checker.Check(s.ctx, nil, bExpr, tv)
	if err != nil {
		return err
	}
	av := value.Eval(s.ctx.Env(), aOut)
	bv := value.Eval(s.ctx.Env(), bOut)
	return checker.Convert(s.ctx, tv, av, bv)
}

// IsType elaborates typeSrc, requiring that it denote a type.
func (s *Session) IsType(typeSrc string) (core.Expr, error) {
	typeExpr, err := parseOne(typeSrc, "is-type")
	if err != nil {
		return nil, err
	}
	if err := s.unresolvedClaim(typeExpr); err != nil {
		return nil, err
	}
	return checker.IsType(s.ctx, nil, typeExpr)
}
