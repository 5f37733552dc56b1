// Package perrors is Pie's structured error type: every error the checker
// or driver reports to a user travels as a *Error, carrying a stable kind
// code, the phase that raised it, and whatever data a caller wants a
// machine to read back out (spec §7, "error handling design"). Internal
// invariant breaches never travel this way -- they panic, by design (see
// Kind's doc comment).
package perrors

import (
	"encoding/json"
	"fmt"
)

// Kind enumerates every user-visible error the checker and driver can
// raise, per spec §7. There is deliberately no "internal" kind: a bug that
// reaches an impossible state panics instead of being wrapped here.
type Kind string

const (
	InvalidSyntax      Kind = "InvalidSyntax"
	NotAType           Kind = "NotAType"
	NotATypeVar        Kind = "NotATypeVar"
	NotAFunctionType   Kind = "NotAFunctionType"
	NotAnEitherType    Kind = "NotAnEitherType"
	NotAListType       Kind = "NotAListType"
	NotAVecType        Kind = "NotAVecType"
	NotASigmaType      Kind = "NotASigmaType"
	NotAnEqualType     Kind = "NotAnEqualType"
	CantDetermineType  Kind = "CantDetermineType"
	WrongType          Kind = "WrongType"
	NotTheSame         Kind = "NotTheSame"
	NotTheSameType     Kind = "NotTheSameType"
	TypeMismatchVar    Kind = "TypeMismatchVar"
	LengthZero         Kind = "LengthZero"
	LengthNotZero      Kind = "LengthNotZero"
	InvalidAtom        Kind = "InvalidAtom"
	UhasNoType         Kind = "UhasNoType"
	UnknownName        Kind = "UnknownName"
	AlreadyClaimed     Kind = "AlreadyClaimed"
	AlreadyDefined     Kind = "AlreadyDefined"
	NotYetDefined      Kind = "NotYetDefined"
)

// Phase names used in Error.Phase.
const (
	PhaseRead    = "read"
	PhaseCheck   = "check"
	PhaseDriver  = "driver"
	PhaseNormal  = "normalize"
)

// Error is the canonical structured error Pie returns from is-type, synth,
// check, and the top-level driver operations. It is JSON-serializable so a
// tool (or a test) can inspect Kind/Data without parsing Message text.
type Error struct {
	Kind    Kind           `json:"kind"`
	Phase   string         `json:"phase"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "unknown pie error"
	}
	return string(e.Kind) + ": " + e.Message
}

// JSON renders e deterministically as indented JSON.
func (e *Error) JSON() (string, error) {
	b, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func New(kind Kind, phase, format string, args ...any) *Error {
	return &Error{Kind: kind, Phase: phase, Message: fmt.Sprintf(format, args...)}
}

// WithData attaches structured fields to e and returns e for chaining.
func (e *Error) WithData(data map[string]any) *Error {
	e.Data = data
	return e
}

// ---- constructors for each error kind in spec §7 ----

func NewInvalidSyntax(phase, text string) *Error {
	return New(InvalidSyntax, phase, "invalid syntax: %s", text)
}

func NewNotAType(phase string, expr fmt.Stringer) *Error {
	return New(NotAType, phase, "%s does not denote a type", expr)
}

func NewNotATypeVar(phase string, value fmt.Stringer) *Error {
	return New(NotATypeVar, phase, "%s is not a type value", value)
}

func NewNotAFunctionType(phase string, t fmt.Stringer) *Error {
	return New(NotAFunctionType, phase, "expected a Π type, got %s", t)
}

func NewNotAnEitherType(phase string, t fmt.Stringer) *Error {
	return New(NotAnEitherType, phase, "expected an Either type, got %s", t)
}

func NewNotAListType(phase string, t fmt.Stringer) *Error {
	return New(NotAListType, phase, "expected a List type, got %s", t)
}

func NewNotAVecType(phase string, t fmt.Stringer) *Error {
	return New(NotAVecType, phase, "expected a Vec type, got %s", t)
}

func NewNotASigmaType(phase string, t fmt.Stringer) *Error {
	return New(NotASigmaType, phase, "expected a Σ type, got %s", t)
}

func NewNotAnEqualType(phase string, t fmt.Stringer) *Error {
	return New(NotAnEqualType, phase, "expected an equality type, got %s", t)
}

func NewCantDetermineType(phase string, expr fmt.Stringer) *Error {
	return New(CantDetermineType, phase, "cannot determine the type of %s; try an annotation", expr)
}

func NewWrongType(phase string, expected, actual fmt.Stringer) *Error {
	return New(WrongType, phase, "expected type %s, got %s", expected, actual)
}

func NewNotTheSame(phase string, t, a, b fmt.Stringer) *Error {
	return New(NotTheSame, phase, "%s and %s are not the same %s", a, b, t)
}

func NewNotTheSameType(phase string, t1, t2 fmt.Stringer) *Error {
	return New(NotTheSameType, phase, "%s and %s are not the same type", t1, t2)
}

func NewTypeMismatchVar(phase string, v, tv fmt.Stringer) *Error {
	return New(TypeMismatchVar, phase, "%s does not have type %s", v, tv)
}

func NewLengthZero(phase string, n fmt.Stringer) *Error {
	return New(LengthZero, phase, "expected a Vec of length zero, got length %s", n)
}

func NewLengthNotZero(phase string, n fmt.Stringer) *Error {
	return New(LengthNotZero, phase, "expected a Vec of nonzero length, got length %s", n)
}

func NewInvalidAtom(phase, sym string) *Error {
	return New(InvalidAtom, phase, "%q is not a valid atom literal", sym)
}

func NewUhasNoType(phase string) *Error {
	return New(UhasNoType, phase, "U has no type")
}

func NewUnknownName(phase, name string) *Error {
	return New(UnknownName, phase, "unknown name %q", name)
}

func NewAlreadyClaimed(phase, name string) *Error {
	return New(AlreadyClaimed, phase, "%q is already claimed", name)
}

func NewAlreadyDefined(phase, name string) *Error {
	return New(AlreadyDefined, phase, "%q is already defined", name)
}

func NewNotYetDefined(phase, name string) *Error {
	return New(NotYetDefined, phase, "%q was claimed but never defined", name)
}
