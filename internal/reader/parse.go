// Package reader turns Pie's s-expression surface syntax into the core.Expr
// trees that package checker consumes. It mirrors the teacher's two-stage
// lexer/parser split, but the grammar itself is s-expression prefix
// notation throughout: spec.md leaves the concrete surface grammar
// unspecified ("out of scope... surface grammar is not"), so this package
// follows the ASCII spellings used by the Pie book and by original_source's
// own test fixtures (lambda, Pi, Sigma, ->, which-Nat, etc.) rather than
// the prose's Unicode Π/λ/Σ.
package reader

import (
	"strconv"

	"github.com/sunholo/pie/internal/core"
	"github.com/sunholo/pie/internal/perrors"
	"github.com/sunholo/pie/internal/symbol"
)

// Parse converts one already-read SExpr into a core.Expr, recognizing
// keyword forms and numeral literals. It is the second half of the surface
// reader; ReadOne/ReadAll (read.go) produce the SExpr this consumes.
func Parse(s SExpr) (core.Expr, error) {
	switch e := s.(type) {
	case Atom:
		return parseAtom(e)
	case Quoted:
		return parseQuoted(e)
	case List:
		return parseList(e)
	default:
		return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "unrecognized form")
	}
}

// ParseAll parses every element of a ReadAll result.
func ParseAll(forms []SExpr) ([]core.Expr, error) {
	out := make([]core.Expr, 0, len(forms))
	for _, f := range forms {
		e, err := Parse(f)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func parseAtom(a Atom) (core.Expr, error) {
	switch a.Text {
	case "U":
		return core.U{}, nil
	case "Nat":
		return core.Nat{}, nil
	case "zero":
		return core.Zero{}, nil
	case "Atom":
		return core.AtomT{}, nil
	case "Trivial":
		return core.TrivialT{}, nil
	case "sole":
		return core.Sole{}, nil
	case "Absurd":
		return core.AbsurdT{}, nil
	case "TODO":
		return core.TODO{}, nil
	case "nil":
		return core.Nil{}, nil
	case "vecnil":
		return core.VecNil{}, nil
	}
	if n, ok := parseNumeral(a.Text); ok {
		return numeralToCore(n), nil
	}
	if !validSymbolText(a.Text) {
		return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "malformed symbol "+a.Text+" at "+a.Pos.Position())
	}
	return &core.Var{Name: symbol.Intern(a.Text)}, nil
}

// validSymbolText rejects symbols that start with a digit but aren't a
// full numeral (e.g. "3x"), which is always a typo rather than a variable.
func validSymbolText(s string) bool {
	if s == "" {
		return false
	}
	if s[0] >= '0' && s[0] <= '9' {
		_, ok := parseNumeral(s)
		return ok
	}
	return true
}

func parseNumeral(s string) (uint64, bool) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func numeralToCore(n uint64) core.Expr {
	var e core.Expr = core.Zero{}
	for i := uint64(0); i < n; i++ {
		e = &core.Add1{N: e}
	}
	return e
}

// parseQuoted handles 'sym -- the only legal body of a quote is a bare,
// non-numeral atom naming the quoted symbol.
func parseQuoted(q Quoted) (core.Expr, error) {
	a, ok := q.Body.(Atom)
	if !ok {
		return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "quote body must be a bare atom at "+q.Pos.Position())
	}
	if _, isNum := parseNumeral(a.Text); isNum {
		return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "quote body must not be a numeral at "+q.Pos.Position())
	}
	return &core.Quote{Sym: symbol.Intern(a.Text)}, nil
}

func parseList(l List) (core.Expr, error) {
	if len(l.Items) == 0 {
		return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "empty form at "+l.Pos.Position())
	}
	head, isHeadAtom := l.Items[0].(Atom)
	rest := l.Items[1:]
	if isHeadAtom {
		if fn, ok := keywordForms[head.Text]; ok {
			return fn(l.Pos, rest)
		}
	}
	return parseApplication(l.Pos, l.Items)
}

type formParser func(pos Token, rest []SExpr) (core.Expr, error)

var keywordForms = map[string]formParser{
	"add1":       parseAdd1,
	"which-Nat":  parseNatElim3(func(t, b, s core.Expr) core.Expr { return &core.WhichNat{Target: t, Base: b, Step: s} }),
	"rec-Nat":    parseNatElim3(func(t, b, s core.Expr) core.Expr { return &core.RecNat{Target: t, Base: b, Step: s} }),
	"iter-Nat":   parseNatElim3(func(t, b, s core.Expr) core.Expr { return &core.IterNat{Target: t, Base: b, Step: s} }),
	"ind-Nat":    parseIndNat,
	"the":        parseThe,
	"Pi":         parsePi,
	"->":         parseFunStar,
	"lambda":     parseLambda,
	"Sigma":      parseSigma,
	"Pair":       parsePairT,
	"cons":       parseCons,
	"car":        parseCar,
	"cdr":        parseCdr,
	"List":       parseListT,
	"::":         parseListCons,
	"length":     parseLength,
	"rec-List":   parseRecList,
	"ind-List":   parseIndList,
	"Vec":        parseVecT,
	"vec::":      parseVecCons,
	"head":       parseHead,
	"tail":       parseTail,
	"ind-Vec":    parseIndVec,
	"Either":     parseEitherT,
	"left":       parseLeft,
	"right":      parseRight,
	"ind-Either": parseIndEither,
	"=":          parseEqualT,
	"same":       parseSame,
	"cong":       parseCong,
	"replace":    parseReplace,
	"symm":       parseSymm,
	"trans":      parseTrans,
	"ind-Absurd": parseIndAbsurd,
}

func arity(pos Token, name string, rest []SExpr, n int) error {
	if len(rest) != n {
		return perrors.NewInvalidSyntax(perrors.PhaseRead,
			name+" expects "+strconv.Itoa(n)+" argument(s) at "+pos.Position())
	}
	return nil
}

func parseEach(forms ...SExpr) ([]core.Expr, error) {
	out := make([]core.Expr, len(forms))
	for i, f := range forms {
		e, err := Parse(f)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func parseAdd1(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "add1", rest, 1); err != nil {
		return nil, err
	}
	n, err := Parse(rest[0])
	if err != nil {
		return nil, err
	}
	return &core.Add1{N: n}, nil
}

func parseNatElim3(build func(target, base, step core.Expr) core.Expr) formParser {
	return func(pos Token, rest []SExpr) (core.Expr, error) {
		if err := arity(pos, "eliminator", rest, 3); err != nil {
			return nil, err
		}
		es, err := parseEach(rest...)
		if err != nil {
			return nil, err
		}
		return build(es[0], es[1], es[2]), nil
	}
}

func parseIndNat(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "ind-Nat", rest, 4); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.IndNat{Target: es[0], Motive: es[1], Base: es[2], Step: es[3]}, nil
}

func parseThe(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "the", rest, 2); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.The{Type: es[0], Expr: es[1]}, nil
}

// parseBinderList reads ((x1 T1) (x2 T2) ...), the shape shared by Pi's
// n-ary binder list and nothing else in this grammar.
func parseBinderList(s SExpr) ([]core.Binder, bool) {
	l, ok := s.(List)
	if !ok {
		return nil, false
	}
	binders := make([]core.Binder, 0, len(l.Items))
	for _, item := range l.Items {
		pair, ok := item.(List)
		if !ok || len(pair.Items) != 2 {
			return nil, false
		}
		nameAtom, ok := pair.Items[0].(Atom)
		if !ok {
			return nil, false
		}
		ty, err := Parse(pair.Items[1])
		if err != nil {
			return nil, false
		}
		binders = append(binders, core.Binder{Name: symbol.Intern(nameAtom.Text), Type: ty})
	}
	return binders, true
}

// parseNameType reads a single (x T) binder, Pi's non-star shape.
func parseNameType(s SExpr) (*symbol.Symbol, core.Expr, bool) {
	l, ok := s.(List)
	if !ok || len(l.Items) != 2 {
		return nil, nil, false
	}
	nameAtom, ok := l.Items[0].(Atom)
	if !ok {
		return nil, nil, false
	}
	ty, err := Parse(l.Items[1])
	if err != nil {
		return nil, nil, false
	}
	return symbol.Intern(nameAtom.Text), ty, true
}

// parsePi disambiguates (Pi (x A) B), Pie's single dependent binder, from
// (Pi ((x A) (y B)) C), the n-ary Pi* sugar: the former's binder form has a
// bare symbol first; the latter's has a nested list.
func parsePi(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "Pi", rest, 2); err != nil {
		return nil, err
	}
	if isNaryBinderShape(rest[0]) {
		binders, ok := parseBinderList(rest[0])
		if !ok {
			return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "malformed Pi* binder list at "+pos.Position())
		}
		result, err := Parse(rest[1])
		if err != nil {
			return nil, err
		}
		return &core.PiStar{Binders: binders, Result: result}, nil
	}
	name, arg, ok := parseNameType(rest[0])
	if !ok {
		return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "malformed Pi binder at "+pos.Position())
	}
	body, err := Parse(rest[1])
	if err != nil {
		return nil, err
	}
	return &core.Pi{Name: name, Arg: arg, Body: body}, nil
}

// isNaryBinderShape reports whether s is a list whose own first element is
// itself a list -- i.e. ((x A) ...) rather than (x A).
func isNaryBinderShape(s SExpr) bool {
	l, ok := s.(List)
	if !ok || len(l.Items) == 0 {
		return false
	}
	_, nested := l.Items[0].(List)
	return nested
}

func parseFunStar(pos Token, rest []SExpr) (core.Expr, error) {
	if len(rest) < 1 {
		return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "-> expects at least a result type at "+pos.Position())
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.FunStar{Args: es[:len(es)-1], Result: es[len(es)-1]}, nil
}

func parseLambda(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "lambda", rest, 2); err != nil {
		return nil, err
	}
	names, ok := parseNameList(rest[0])
	if !ok || len(names) == 0 {
		return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "malformed lambda binder list at "+pos.Position())
	}
	body, err := Parse(rest[1])
	if err != nil {
		return nil, err
	}
	if len(names) == 1 {
		return &core.Lambda{Name: names[0], Body: body}, nil
	}
	return &core.LamStar{Names: names, Body: body}, nil
}

func parseNameList(s SExpr) ([]*symbol.Symbol, bool) {
	l, ok := s.(List)
	if !ok {
		return nil, false
	}
	names := make([]*symbol.Symbol, 0, len(l.Items))
	for _, item := range l.Items {
		a, ok := item.(Atom)
		if !ok {
			return nil, false
		}
		names = append(names, symbol.Intern(a.Text))
	}
	return names, true
}

func parseSigma(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "Sigma", rest, 2); err != nil {
		return nil, err
	}
	name, fst, ok := parseNameType(rest[0])
	if !ok {
		return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "malformed Sigma binder at "+pos.Position())
	}
	snd, err := Parse(rest[1])
	if err != nil {
		return nil, err
	}
	return &core.Sigma{Name: name, Fst: fst, Snd: snd}, nil
}

func parsePairT(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "Pair", rest, 2); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.PairT{Fst: es[0], Snd: es[1]}, nil
}

func parseCons(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "cons", rest, 2); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.Cons{Fst: es[0], Snd: es[1]}, nil
}

func parseCar(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "car", rest, 1); err != nil {
		return nil, err
	}
	e, err := Parse(rest[0])
	if err != nil {
		return nil, err
	}
	return &core.Car{Pair: e}, nil
}

func parseCdr(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "cdr", rest, 1); err != nil {
		return nil, err
	}
	e, err := Parse(rest[0])
	if err != nil {
		return nil, err
	}
	return &core.Cdr{Pair: e}, nil
}

func parseListT(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "List", rest, 1); err != nil {
		return nil, err
	}
	e, err := Parse(rest[0])
	if err != nil {
		return nil, err
	}
	return &core.ListT{Elem: e}, nil
}

func parseListCons(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "::", rest, 2); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.ListCons{Head: es[0], Tail: es[1]}, nil
}

func parseLength(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "length", rest, 1); err != nil {
		return nil, err
	}
	e, err := Parse(rest[0])
	if err != nil {
		return nil, err
	}
	return &core.ListLength{List: e}, nil
}

func parseRecList(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "rec-List", rest, 3); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.RecList{Target: es[0], Base: es[1], Step: es[2]}, nil
}

func parseIndList(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "ind-List", rest, 4); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.IndList{Target: es[0], Motive: es[1], Base: es[2], Step: es[3]}, nil
}

func parseVecT(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "Vec", rest, 2); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.VecT{Elem: es[0], Len: es[1]}, nil
}

func parseVecCons(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "vec::", rest, 2); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.VecCons{Head: es[0], Tail: es[1]}, nil
}

func parseHead(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "head", rest, 1); err != nil {
		return nil, err
	}
	e, err := Parse(rest[0])
	if err != nil {
		return nil, err
	}
	return &core.VecHead{Vec: e}, nil
}

func parseTail(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "tail", rest, 1); err != nil {
		return nil, err
	}
	e, err := Parse(rest[0])
	if err != nil {
		return nil, err
	}
	return &core.VecTail{Vec: e}, nil
}

func parseIndVec(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "ind-Vec", rest, 5); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.IndVec{Len: es[0], Target: es[1], Motive: es[2], Base: es[3], Step: es[4]}, nil
}

func parseEitherT(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "Either", rest, 2); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.EitherT{L: es[0], R: es[1]}, nil
}

func parseLeft(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "left", rest, 1); err != nil {
		return nil, err
	}
	e, err := Parse(rest[0])
	if err != nil {
		return nil, err
	}
	return &core.Left{Val: e}, nil
}

func parseRight(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "right", rest, 1); err != nil {
		return nil, err
	}
	e, err := Parse(rest[0])
	if err != nil {
		return nil, err
	}
	return &core.Right{Val: e}, nil
}

func parseIndEither(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "ind-Either", rest, 4); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.IndEither{Target: es[0], Motive: es[1], BaseL: es[2], BaseR: es[3]}, nil
}

func parseEqualT(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "=", rest, 3); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.EqualT{Type: es[0], From: es[1], To: es[2]}, nil
}

func parseSame(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "same", rest, 1); err != nil {
		return nil, err
	}
	e, err := Parse(rest[0])
	if err != nil {
		return nil, err
	}
	return &core.Same{Val: e}, nil
}

func parseCong(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "cong", rest, 2); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.Cong{Eq: es[0], Fun: es[1]}, nil
}

func parseReplace(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "replace", rest, 3); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.Replace{Target: es[0], Motive: es[1], Base: es[2]}, nil
}

func parseSymm(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "symm", rest, 1); err != nil {
		return nil, err
	}
	e, err := Parse(rest[0])
	if err != nil {
		return nil, err
	}
	return &core.Symm{Eq: e}, nil
}

func parseTrans(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "trans", rest, 2); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.Trans{Eq1: es[0], Eq2: es[1]}, nil
}

func parseIndAbsurd(pos Token, rest []SExpr) (core.Expr, error) {
	if err := arity(pos, "ind-Absurd", rest, 2); err != nil {
		return nil, err
	}
	es, err := parseEach(rest...)
	if err != nil {
		return nil, err
	}
	return &core.IndAbsurd{Target: es[0], Motive: es[1]}, nil
}

// parseApplication handles every list whose head isn't a reserved keyword:
// plain function application, n-ary when there's more than one argument.
func parseApplication(pos Token, items []SExpr) (core.Expr, error) {
	es, err := parseEach(items...)
	if err != nil {
		return nil, err
	}
	if len(es) == 1 {
		return nil, perrors.NewInvalidSyntax(perrors.PhaseRead, "application needs a function and at least one argument at "+pos.Position())
	}
	fun, args := es[0], es[1:]
	if len(args) == 1 {
		return &core.App{Fun: fun, Arg: args[0]}, nil
	}
	return &core.AppStar{Fun: fun, Args: args}, nil
}
